package agent

import (
	"sync"
)

// StatusUnknown is reported before any status has been set.
const StatusUnknown = "unknown"

// Agent carries the identity fields and the opaque status slot shared by SAR
// role agents.
type Agent struct {
	name        string
	role        string
	description string

	mu     sync.RWMutex
	status string
}

func New(name, role, description string) *Agent {
	return &Agent{
		name:        name,
		role:        role,
		description: description,
	}
}

func (a *Agent) Name() string        { return a.name }
func (a *Agent) Role() string        { return a.role }
func (a *Agent) Description() string { return a.description }

// SetStatus stores the agent's current status and returns confirmation.
func (a *Agent) SetStatus(status string) map[string]interface{} {
	a.mu.Lock()
	a.status = status
	a.mu.Unlock()

	return map[string]interface{}{
		"status":     "updated",
		"new_status": status,
	}
}

// Status returns the stored status, or StatusUnknown if never set.
func (a *Agent) Status() string {
	a.mu.RLock()
	defer a.mu.RUnlock()

	if a.status == "" {
		return StatusUnknown
	}
	return a.status
}
