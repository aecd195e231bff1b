// Package config manages operator-level CLI settings stored at
// ~/.siteforge/config.yaml, such as the default agent root directory and
// the default parameter file path. Values can be overridden through
// SITEFORGE_* environment variables.
package config
