package sql

import "context"

// Database is a raw connection used outside the ORM, for readiness checks and
// operator commands.
type Database interface {
	Open() error
	Close()
	Ping(context.Context) error
	Command(context.Context, string) error
}

// Pinger is satisfied by anything that can report database reachability.
type Pinger interface {
	Ping(context.Context) error
}
