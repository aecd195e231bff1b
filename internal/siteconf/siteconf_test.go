package siteconf

import (
	"bytes"
	"strings"
	"testing"
)

func TestRenderSortedAndEscaped(t *testing.T) {
	section := map[string]string{
		"instance.zookeeper.host": "zk1:2181,zk2:2181",
		"general.classpaths":      "/usr/lib/accumulo/lib/[^.].*.jar",
		"table.fancy":             `a<b&"c"`,
	}

	out, err := Render(section)
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	doc := string(out)

	if !strings.HasPrefix(doc, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("missing XML declaration")
	}
	if !strings.Contains(doc, "<configuration>") {
		t.Error("missing configuration root element")
	}

	// Sorted key order: general.classpaths before instance.zookeeper.host.
	gi := strings.Index(doc, "general.classpaths")
	zi := strings.Index(doc, "instance.zookeeper.host")
	if gi == -1 || zi == -1 || gi > zi {
		t.Errorf("properties not in sorted order: general=%d instance=%d", gi, zi)
	}

	if !strings.Contains(doc, "a&lt;b&amp;&#34;c&#34;") {
		t.Errorf("value not XML-escaped:\n%s", doc)
	}
}

func TestRenderDeterministic(t *testing.T) {
	section := map[string]string{"a": "1", "b": "2", "c": "3", "d": "4"}

	first, err := Render(section)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Render(section)
		if err != nil {
			t.Fatal(err)
		}
		if !bytes.Equal(first, again) {
			t.Fatal("Render output is not byte-stable")
		}
	}
}

func TestRenderEmptySection(t *testing.T) {
	out, err := Render(map[string]string{})
	if err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if !strings.Contains(string(out), "<configuration>") {
		t.Errorf("empty section should still render a configuration element:\n%s", out)
	}
}

func TestSubset(t *testing.T) {
	section := map[string]string{"a": "1", "b": "2", "c": "3"}

	sub, err := Subset(section, "a", "c")
	if err != nil {
		t.Fatalf("Subset failed: %v", err)
	}
	if len(sub) != 2 || sub["a"] != "1" || sub["c"] != "3" {
		t.Errorf("Subset = %v", sub)
	}
}

func TestSubsetMissingKey(t *testing.T) {
	if _, err := Subset(map[string]string{"a": "1"}, "a", "zz"); err == nil {
		t.Fatal("expected error for missing key")
	}
}
