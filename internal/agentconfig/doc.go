// Package agentconfig holds the configuration of the node-resident agent:
// server endpoint, working directories, retry policy, and heartbeat cadence.
// A Store is seeded from embedded INI defaults and may be overridden once
// from an external file at agent startup. Stores are plain values passed to
// consumers explicitly; there is no process-wide singleton.
package agentconfig
