// Package materialize produces the on-disk configuration tree for a service
// role: conf/pid/log directories, the rendered site file, the environment
// script, host list files, and logging configuration. All writes are
// create-or-replace; running the materializer twice with the same inputs
// yields byte-identical files.
package materialize
