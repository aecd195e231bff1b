package materialize

import (
	"strings"
	"testing"
)

func TestRenderTemplateEnv(t *testing.T) {
	data := TemplateData{
		ConfDir: "/etc/accumulo/conf",
		PidDir:  "/var/run/accumulo",
		LogDir:  "/var/log/accumulo",
	}

	out, err := RenderTemplate("accumulo-env.sh", "", data)
	if err != nil {
		t.Fatalf("RenderTemplate failed: %v", err)
	}
	script := string(out)

	if !strings.Contains(script, "export ACCUMULO_CONF_DIR=/etc/accumulo/conf") {
		t.Error("missing ACCUMULO_CONF_DIR export")
	}
	if !strings.Contains(script, "export ACCUMULO_PID_DIR=/var/run/accumulo") {
		t.Error("missing ACCUMULO_PID_DIR export")
	}
}

func TestRenderTemplateUnknown(t *testing.T) {
	if _, err := RenderTemplate("no-such-file", "", TemplateData{}); err == nil {
		t.Fatal("expected error for unknown template")
	}
}

func TestRenderTemplateUnknownTag(t *testing.T) {
	if _, err := RenderTemplate("accumulo-env.sh", "ha", TemplateData{}); err == nil {
		t.Fatal("expected error for unknown template variant")
	}
}

func TestStaticContent(t *testing.T) {
	for _, name := range []string{
		"masters", "slaves", "monitor", "gc", "tracers",
		"log4j.properties", "auditLog.xml", "generic_logger.xml",
		"monitor_logger.xml", "accumulo-metrics.xml",
	} {
		data, err := StaticContent(name)
		if err != nil {
			t.Errorf("StaticContent(%q) failed: %v", name, err)
			continue
		}
		if len(data) == 0 {
			t.Errorf("StaticContent(%q) is empty", name)
		}
	}
}

func TestStaticContentUnknown(t *testing.T) {
	if _, err := StaticContent("no-such-file"); err == nil {
		t.Fatal("expected error for unknown static file")
	}
}
