package params

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validParams = `format_version: "1.0.0"
conf_dir: /etc/accumulo/conf
pid_dir: /var/run/accumulo
log_dir: /var/log/accumulo
service_user: accumulo
service_group: hadoop
configurations:
  accumulo-site:
    instance.zookeeper.host: "zk1:2181"
    instance.dfs.dir: /accumulo
    general.classpaths: /usr/lib/accumulo/lib
    instance.secret: hush
`

func TestParseValid(t *testing.T) {
	p, err := Parse([]byte(validParams))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if p.ConfDir != "/etc/accumulo/conf" {
		t.Errorf("ConfDir = %q", p.ConfDir)
	}
	if p.ServiceUser != "accumulo" || p.ServiceGroup != "hadoop" {
		t.Errorf("service identity = %q:%q", p.ServiceUser, p.ServiceGroup)
	}

	site, ok := p.Section(SiteSection)
	if !ok {
		t.Fatal("accumulo-site section missing")
	}
	if site[ZookeeperHostKey] != "zk1:2181" {
		t.Errorf("zookeeper host = %q", site[ZookeeperHostKey])
	}

	if _, ok := p.Section(PolicySection); ok {
		t.Error("policy section should be absent")
	}
}

func TestParseMissingRequired(t *testing.T) {
	in := `format_version: "1.0.0"
conf_dir: /etc/accumulo/conf
configurations:
  accumulo-site: {}
`
	_, err := Parse([]byte(in))
	if err == nil {
		t.Fatal("expected error for missing pid_dir/log_dir")
	}
	if !strings.Contains(err.Error(), "invalid parameter file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseNonStringValue(t *testing.T) {
	in := strings.Replace(validParams, `"zk1:2181"`, "2181", 1)
	_, err := Parse([]byte(in))
	if err == nil {
		t.Fatal("expected error for non-string bundle value")
	}
}

func TestParseUnsupportedFormatVersion(t *testing.T) {
	in := strings.Replace(validParams, `"1.0.0"`, `"2.0.0"`, 1)
	_, err := Parse([]byte(in))
	if err == nil {
		t.Fatal("expected error for unsupported format version")
	}
	if !strings.Contains(err.Error(), "unsupported parameter format") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestParseFormatVersionVPrefix(t *testing.T) {
	in := strings.Replace(validParams, `"1.0.0"`, `"v1.2.0"`, 1)
	if _, err := Parse([]byte(in)); err != nil {
		t.Fatalf("v-prefixed format version should parse: %v", err)
	}
}

func TestParseMalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("conf_dir: [unclosed")); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}

func TestLoadFile(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "params.yaml")
	if err := os.WriteFile(path, []byte(validParams), 0644); err != nil {
		t.Fatal(err)
	}

	p, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if p.PidDir != "/var/run/accumulo" {
		t.Errorf("PidDir = %q", p.PidDir)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestValidateIssuesHavePaths(t *testing.T) {
	in := `format_version: "1.0.0"
conf_dir: ""
pid_dir: /var/run/accumulo
log_dir: /var/log/accumulo
configurations:
  accumulo-site: {}
`
	result, err := Validate([]byte(in))
	if err != nil {
		t.Fatalf("Validate failed: %v", err)
	}
	if result.Valid {
		t.Fatal("empty conf_dir should be invalid")
	}

	found := false
	for _, issue := range result.Issues {
		if issue.Path == "/conf_dir" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected issue at /conf_dir, got %+v", result.Issues)
	}
}
