package agentconfig

import "path/filepath"

// AgentConfig binds a Store to one agent instance: its root directory on
// disk and the label the orchestrator knows it by.
type AgentConfig struct {
	store    *Store
	rootPath string
	label    string
}

// New returns an AgentConfig reading from store, with relative paths
// resolved against rootPath.
func New(store *Store, rootPath, label string) *AgentConfig {
	return &AgentConfig{store: store, rootPath: rootPath, label: label}
}

// RootPath returns the agent's root directory.
func (a *AgentConfig) RootPath() string {
	return a.rootPath
}

// Label returns the agent's label.
func (a *AgentConfig) Label() string {
	return a.label
}

// Get returns the configured value for name in section category.
func (a *AgentConfig) Get(category, name string) (string, error) {
	return a.store.Get(category, name)
}

// ResolvedPath looks up name in the agent section and resolves it against
// the root path. Absolute values are returned unchanged. An unconfigured
// name is a lookup error.
func (a *AgentConfig) ResolvedPath(name string) (string, error) {
	p, err := a.store.Get(AgentSection, name)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(p) {
		return p, nil
	}
	return filepath.Join(a.rootPath, p), nil
}
