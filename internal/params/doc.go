// Package params loads and validates the parameter set supplied by the
// provisioning system: target directories, service identity, and the
// sectioned configuration bundle. Parameter files are YAML and are checked
// against an embedded JSON Schema plus a semver format-version constraint
// before any file is materialized from them.
package params
