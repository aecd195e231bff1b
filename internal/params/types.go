package params

// Section names within the configuration bundle.
const (
	SiteSection   = "accumulo-site"
	PolicySection = "accumulo-policy"
)

// Keys copied into the reduced client site file.
const (
	ZookeeperHostKey = "instance.zookeeper.host"
	DFSDirKey        = "instance.dfs.dir"
	ClasspathsKey    = "general.classpaths"
)

// Params is the parameter set resolved by the provisioning system for one
// materialization run on one node.
type Params struct {
	FormatVersion string `yaml:"format_version"`

	ConfDir string `yaml:"conf_dir"`
	PidDir  string `yaml:"pid_dir"`
	LogDir  string `yaml:"log_dir"`

	// ServiceUser and ServiceGroup own every artifact produced for a role.
	// Both may be empty, in which case ownership is left to the invoking
	// user (unprivileged runs).
	ServiceUser  string `yaml:"service_user"`
	ServiceGroup string `yaml:"service_group"`

	// Log4jProperties, when set, is written verbatim to log4j.properties
	// instead of the packaged default.
	Log4jProperties string `yaml:"log4j_properties"`

	// Configurations is the bundle: section name → key → value. Read-only
	// from this code's perspective.
	Configurations map[string]map[string]string `yaml:"configurations"`
}

// Section returns the named bundle section and whether it exists.
func (p *Params) Section(name string) (map[string]string, bool) {
	s, ok := p.Configurations[name]
	return s, ok
}
