// Package platform provides cross-platform filesystem attribute operations:
// permission bits and ownership. On Unix systems it calls chmod/chown
// directly. On Windows, which has neither Unix permission bits nor
// numeric uid/gid ownership, both are no-ops.
package platform
