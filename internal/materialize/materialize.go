package materialize

import (
	"fmt"
	"io"

	"github.com/siteforge-labs/siteforge/internal/params"
	"github.com/siteforge-labs/siteforge/internal/role"
	"github.com/siteforge-labs/siteforge/internal/siteconf"
)

// File names produced in the conf directory.
const (
	SiteFile   = "accumulo-site.xml"
	EnvFile    = "accumulo-env.sh"
	Log4jFile  = "log4j.properties"
	PolicyFile = "accumulo-policy.xml"
)

// hostFiles are the static host/role list files, in materialization order.
var hostFiles = []string{"masters", "slaves", "monitor", "gc", "tracers"}

// loggingFiles are the static logging/metrics files written for every role.
var loggingFiles = []string{"auditLog.xml", "generic_logger.xml", "monitor_logger.xml", "accumulo-metrics.xml"}

// Materializer writes the configuration tree for one parameter set.
// Progress lines go to out.
type Materializer struct {
	params *params.Params
	out    io.Writer
}

// New returns a Materializer for p writing progress to out.
func New(p *params.Params, out io.Writer) *Materializer {
	return &Materializer{params: p, out: out}
}

// SetupConfDir materializes the full configuration tree for a role.
//
// Every artifact is owned by the service user/group from the parameter set.
// Server roles get pid/log directories and the complete site file with
// owner-only permissions; the client role gets neither, and its site file
// is reduced to the connection keys a client needs.
func (m *Materializer) SetupConfDir(r role.Role) error {
	p := m.params

	if err := m.ensureDir(p.ConfDir, DirPerm); err != nil {
		return err
	}

	if !r.IsClient() {
		if err := m.ensureDir(p.PidDir, DirPerm); err != nil {
			return err
		}
		if err := m.ensureDir(p.LogDir, DirPerm); err != nil {
			return err
		}

		site, ok := p.Section(params.SiteSection)
		if !ok {
			return fmt.Errorf("bundle has no %q section", params.SiteSection)
		}
		doc, err := siteconf.Render(site)
		if err != nil {
			return err
		}
		if err := m.writeConfFile(SiteFile, doc, SecretFilePerm); err != nil {
			return err
		}
	} else {
		site, ok := p.Section(params.SiteSection)
		if !ok {
			return fmt.Errorf("bundle has no %q section", params.SiteSection)
		}
		reduced, err := siteconf.Subset(site,
			params.ZookeeperHostKey, params.DFSDirKey, params.ClasspathsKey)
		if err != nil {
			return err
		}
		doc, err := siteconf.Render(reduced)
		if err != nil {
			return err
		}
		// TODO: confirm the client site file should keep the default file
		// mode; the server-role site file is restricted to 0600.
		if err := m.writeConfFile(SiteFile, doc, FilePerm); err != nil {
			return err
		}
	}

	if err := m.TemplateConfig(EnvFile, ""); err != nil {
		return err
	}

	for _, name := range hostFiles {
		if err := m.StaticFile(name); err != nil {
			return err
		}
	}

	if p.Log4jProperties != "" {
		if err := m.writeConfFile(Log4jFile, []byte(p.Log4jProperties), FilePerm); err != nil {
			return err
		}
	} else {
		if err := m.StaticFile(Log4jFile); err != nil {
			return err
		}
	}

	for _, name := range loggingFiles {
		if err := m.StaticFile(name); err != nil {
			return err
		}
	}

	if policy, ok := p.Section(params.PolicySection); ok {
		doc, err := siteconf.Render(policy)
		if err != nil {
			return err
		}
		if err := m.writeConfFile(PolicyFile, doc, FilePerm); err != nil {
			return err
		}
	}

	return nil
}

// TemplateConfig renders the packaged template for name into the conf
// directory. An optional tag selects a template variant.
func (m *Materializer) TemplateConfig(name, tag string) error {
	data := TemplateData{
		ConfDir: m.params.ConfDir,
		PidDir:  m.params.PidDir,
		LogDir:  m.params.LogDir,
	}
	rendered, err := RenderTemplate(name, tag, data)
	if err != nil {
		return err
	}
	return m.writeConfFile(name, rendered, FilePerm)
}

// StaticFile copies the packaged static file for name into the conf
// directory verbatim.
func (m *Materializer) StaticFile(name string) error {
	content, err := StaticContent(name)
	if err != nil {
		return err
	}
	return m.writeConfFile(name, content, FilePerm)
}
