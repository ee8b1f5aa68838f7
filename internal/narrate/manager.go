package narrate

import (
	"context"
	"fmt"
)

// Manager is a small provider registry — mirrors the teacher's
// agent-manager registration idiom, generalized to a single-method
// narration interface.
type Manager struct {
	providers map[string]Provider
	active    string
}

// NewManager always registers TemplateProvider under "template" and makes
// it the initial active provider so narration never hard-fails when no
// LLM credentials are configured.
func NewManager() *Manager {
	m := &Manager{providers: make(map[string]Provider)}
	m.Register(NewTemplateProvider())
	m.active = "template"
	return m
}

func (m *Manager) Register(p Provider) {
	m.providers[p.Name()] = p
}

// Use switches the active provider; returns an error if it was never
// registered.
func (m *Manager) Use(name string) error {
	if _, ok := m.providers[name]; !ok {
		return fmt.Errorf("narrate: provider %q is not registered", name)
	}
	m.active = name
	return nil
}

func (m *Manager) Narrate(ctx context.Context, req NarrationRequest) (string, error) {
	p, ok := m.providers[m.active]
	if !ok {
		return "", fmt.Errorf("narrate: no active provider")
	}
	return p.Narrate(ctx, req)
}
