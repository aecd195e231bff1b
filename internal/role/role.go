// Package role defines the service roles a cluster node can be provisioned
// for. Server roles (master, tserver, monitor, gc, tracer) receive the full
// configuration tree; the client role receives a reduced one.
package role

import "fmt"

// Role is the functional identity of a service process on a node.
type Role string

const (
	Master  Role = "master"
	TServer Role = "tserver"
	Monitor Role = "monitor"
	GC      Role = "gc"
	Tracer  Role = "tracer"
	Client  Role = "client"
)

// All lists every recognized role.
var All = []Role{Master, TServer, Monitor, GC, Tracer, Client}

// Parse converts a role string to a Role. The empty string defaults to a
// server role (master). Unknown names are an error.
func Parse(s string) (Role, error) {
	if s == "" {
		return Master, nil
	}
	for _, r := range All {
		if s == string(r) {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown role %q (valid roles: master, tserver, monitor, gc, tracer, client)", s)
}

// IsClient reports whether the role is the non-serving client context.
func (r Role) IsClient() bool {
	return r == Client
}

func (r Role) String() string {
	return string(r)
}
