package agentconfig

import (
	_ "embed"
	"fmt"

	"gopkg.in/ini.v1"
)

// Section names.
const (
	ServerSection    = "server"
	AgentSection     = "agent"
	PythonSection    = "python"
	CommandSection   = "command"
	SecuritySection  = "security"
	HeartbeatSection = "heartbeat"
)

// Well-known keys in the agent section.
const (
	AppPackageDirKey = "app_pkg_dir"
	AppPidDirKey     = "app_pid_dir"
	AppLogDirKey     = "app_log_dir"
	AppTaskDirKey    = "app_task_dir"
	LogDirKey        = "log_dir"
	LogLevelKey      = "log_level"
)

// defaultConfig contains the embedded default configuration. It is compiled
// into the binary and is the base layer before any override file is applied.
//
//go:embed default.ini
var defaultConfig []byte

// Store is a sectioned key/value configuration store. The zero value is not
// usable; construct with NewStore.
//
// A Store is intended to be written during startup (defaults, then at most
// one override file) and read-only afterwards. It is not safe for concurrent
// mutation.
type Store struct {
	file *ini.File
}

// NewStore returns a Store seeded from the embedded defaults.
func NewStore() (*Store, error) {
	f, err := ini.Load(defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	return &Store{file: f}, nil
}

// LoadFile merges an override file into the store. Later values win for a
// section/key; sections and keys absent from the file keep their prior
// values. A malformed file is an error, and the store may be left partially
// updated (standard INI merge semantics, no atomicity guarantee).
func (s *Store) LoadFile(path string) error {
	if err := s.file.Append(path); err != nil {
		return fmt.Errorf("loading configuration %s: %w", path, err)
	}
	return nil
}

// Get returns the string value for key name in the given section. Missing
// sections and missing keys are lookup errors, never silent defaults.
func (s *Store) Get(section, name string) (string, error) {
	sec, err := s.file.GetSection(section)
	if err != nil {
		return "", fmt.Errorf("no such section %q", section)
	}
	key, err := sec.GetKey(name)
	if err != nil {
		return "", fmt.Errorf("no such option %q in section %q", name, section)
	}
	return key.String(), nil
}

// Has reports whether the section/key pair is configured.
func (s *Store) Has(section, name string) bool {
	sec, err := s.file.GetSection(section)
	if err != nil {
		return false
	}
	return sec.HasKey(name)
}

// Sections returns the names of all configured sections.
func (s *Store) Sections() []string {
	names := make([]string, 0, len(s.file.Sections()))
	for _, sec := range s.file.Sections() {
		if sec.Name() == ini.DefaultSection {
			continue
		}
		names = append(names, sec.Name())
	}
	return names
}

// Keys returns the key names of a section, or a lookup error if the section
// does not exist.
func (s *Store) Keys(section string) ([]string, error) {
	sec, err := s.file.GetSection(section)
	if err != nil {
		return nil, fmt.Errorf("no such section %q", section)
	}
	return sec.KeyStrings(), nil
}
