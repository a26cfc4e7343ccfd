package loadbalancer

import (
	"errors"
	"sync"
)

var ErrNoServers = errors.New("no backend servers available")

// RoundRobin distributes requests across backend instances in order.
type RoundRobin struct {
	servers []string
	current int
	mu      sync.Mutex
}

func NewRoundRobin(servers []string) *RoundRobin {
	return &RoundRobin{
		servers: servers,
	}
}

// Next returns the next server in rotation.
func (rr *RoundRobin) Next() (string, error) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	if len(rr.servers) == 0 {
		return "", ErrNoServers
	}

	server := rr.servers[rr.current]
	rr.current = (rr.current + 1) % len(rr.servers)
	return server, nil
}

// GetServers returns a copy of the current server list.
func (rr *RoundRobin) GetServers() []string {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	out := make([]string, len(rr.servers))
	copy(out, rr.servers)
	return out
}

// AddServer adds a server to the rotation if it is not already present.
func (rr *RoundRobin) AddServer(server string) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	for _, s := range rr.servers {
		if s == server {
			return
		}
	}
	rr.servers = append(rr.servers, server)
}

// RemoveServer removes a server from the rotation.
func (rr *RoundRobin) RemoveServer(server string) {
	rr.mu.Lock()
	defer rr.mu.Unlock()

	for i, s := range rr.servers {
		if s == server {
			rr.servers = append(rr.servers[:i], rr.servers[i+1:]...)
			if rr.current >= len(rr.servers) && len(rr.servers) > 0 {
				rr.current = 0
			}
			return
		}
	}
}
