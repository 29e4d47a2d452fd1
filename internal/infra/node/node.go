package node

import (
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Version and CommitHash are replaced at build time through -ldflags.
var (
	Version    = "development"
	CommitHash = "unknown"
)

// Info describes the running server process.
type Info struct {
	ID         string
	Hostname   string
	Version    string
	CommitHash string
	StartedAt  time.Time
}

func (i Info) Uptime() time.Duration {
	return time.Since(i.StartedAt).Truncate(time.Second)
}

var (
	instance     Info
	instanceOnce sync.Once
)

// Current returns the process information, resolved once per process.
func Current() Info {
	instanceOnce.Do(func() {
		instance = Info{
			ID:         uuid.NewString(),
			Hostname:   resolveHostname(),
			Version:    Version,
			CommitHash: CommitHash,
			StartedAt:  time.Now(),
		}
	})
	return instance
}

func resolveHostname() string {
	hostname, err := os.Hostname()
	if err != nil || hostname == "" {
		return "localhost"
	}
	return hostname
}
