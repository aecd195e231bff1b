package platform

import (
	"fmt"
	"os"
	"os/user"
	"runtime"
	"strconv"
)

// Chown sets the owner and group of path by name. Empty owner and group
// skip the call entirely, which lets unprivileged runs (and tests)
// materialize files without chown permission. On Windows this is a no-op.
func Chown(path, owner, group string) error {
	if runtime.GOOS == "windows" {
		return nil
	}
	if owner == "" && group == "" {
		return nil
	}

	uid, gid := -1, -1

	if owner != "" {
		u, err := user.Lookup(owner)
		if err != nil {
			return fmt.Errorf("looking up user %q: %w", owner, err)
		}
		uid, err = strconv.Atoi(u.Uid)
		if err != nil {
			return fmt.Errorf("parsing uid %q for user %q: %w", u.Uid, owner, err)
		}
	}

	if group != "" {
		g, err := user.LookupGroup(group)
		if err != nil {
			return fmt.Errorf("looking up group %q: %w", group, err)
		}
		gid, err = strconv.Atoi(g.Gid)
		if err != nil {
			return fmt.Errorf("parsing gid %q for group %q: %w", g.Gid, group, err)
		}
	}

	if err := os.Chown(path, uid, gid); err != nil {
		return fmt.Errorf("chown %s to %s:%s: %w", path, owner, group, err)
	}
	return nil
}
