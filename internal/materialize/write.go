package materialize

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/siteforge-labs/siteforge/internal/platform"
)

// Permission constants for materialized artifacts.
const (
	DirPerm        os.FileMode = 0755
	FilePerm       os.FileMode = 0644
	SecretFilePerm os.FileMode = 0600
)

// ensureDir creates a directory (and parents) with the given mode and the
// service identity. Re-running on an existing directory re-applies mode and
// ownership.
func (m *Materializer) ensureDir(path string, perm os.FileMode) error {
	if err := os.MkdirAll(path, perm); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	// MkdirAll may not apply exact perms if the directory already existed.
	if err := platform.Chmod(path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	if err := platform.Chown(path, m.params.ServiceUser, m.params.ServiceGroup); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "  [ OK ] Directory %s\n", path)
	return nil
}

// writeConfFile writes data to the named file in the conf directory with
// the given mode and the service identity. Existing files are replaced and
// their attributes re-applied.
func (m *Materializer) writeConfFile(name string, data []byte, perm os.FileMode) error {
	path := filepath.Join(m.params.ConfDir, name)

	if err := os.WriteFile(path, data, perm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	// WriteFile leaves the prior mode on files that already existed.
	if err := platform.Chmod(path, perm); err != nil {
		return fmt.Errorf("setting permissions on %s: %w", path, err)
	}
	if err := platform.Chown(path, m.params.ServiceUser, m.params.ServiceGroup); err != nil {
		return err
	}
	fmt.Fprintf(m.out, "  [ OK ] Wrote %s\n", path)
	return nil
}
