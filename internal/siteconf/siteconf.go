// Package siteconf renders Hadoop-style configuration XML
// (<configuration>/<property>/<name>/<value>) from a key/value section.
// Rendering is pure: bytes in, bytes out, no filesystem access. Properties
// are emitted in sorted key order so repeated runs produce byte-identical
// output.
package siteconf

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"sort"
)

const header = xml.Header + `<?xml-stylesheet type="text/xsl" href="configuration.xsl"?>` + "\n"

type property struct {
	XMLName xml.Name `xml:"property"`
	Name    string   `xml:"name"`
	Value   string   `xml:"value"`
}

type configuration struct {
	XMLName    xml.Name   `xml:"configuration"`
	Properties []property `xml:"property"`
}

// Render produces the XML document for a configuration section.
func Render(section map[string]string) ([]byte, error) {
	keys := make([]string, 0, len(section))
	for k := range section {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	doc := configuration{Properties: make([]property, 0, len(keys))}
	for _, k := range keys {
		doc.Properties = append(doc.Properties, property{Name: k, Value: section[k]})
	}

	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling configuration XML: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString(header)
	buf.Write(body)
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}

// Subset copies the named keys from a section into a new section. Missing
// keys are an error: the reduced client configuration must not silently
// drop settings the client depends on.
func Subset(section map[string]string, keys ...string) (map[string]string, error) {
	out := make(map[string]string, len(keys))
	for _, k := range keys {
		v, ok := section[k]
		if !ok {
			return nil, fmt.Errorf("configuration key %q not present in bundle", k)
		}
		out[k] = v
	}
	return out, nil
}
