package params

import (
	"fmt"
	"os"
	"strings"

	"github.com/Masterminds/semver/v3"
	"go.yaml.in/yaml/v3"
)

// SupportedFormat is the semver constraint parameter files must satisfy.
const SupportedFormat = "^1"

// Load reads, schema-validates, and decodes a parameter file.
func Load(path string) (*Params, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data)
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

// Parse validates and decodes raw parameter YAML.
func Parse(data []byte) (*Params, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, err
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid parameter file:\n%s", formatIssues(result.Issues))
	}

	var p Params
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("decoding parameter file: %w", err)
	}

	if err := checkFormatVersion(p.FormatVersion); err != nil {
		return nil, err
	}

	return &p, nil
}

// checkFormatVersion verifies the declared format version against
// SupportedFormat. A "v" prefix is tolerated.
func checkFormatVersion(version string) error {
	v, err := semver.NewVersion(strings.TrimPrefix(version, "v"))
	if err != nil {
		return fmt.Errorf("parsing format_version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(SupportedFormat)
	if err != nil {
		return fmt.Errorf("parsing format constraint %q: %w", SupportedFormat, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("unsupported parameter format %s (supported: %s)", version, SupportedFormat)
	}
	return nil
}

func formatIssues(issues []ValidationIssue) string {
	var b strings.Builder
	for _, issue := range issues {
		msg := issue.Message
		if issue.Path != "" {
			msg = issue.Path + ": " + msg
		}
		fmt.Fprintf(&b, "  - %s\n", msg)
	}
	return strings.TrimRight(b.String(), "\n")
}
