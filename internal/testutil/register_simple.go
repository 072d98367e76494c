package testutil

import "github.com/specialistvlad/figcore/internal/registry"

// SimpleModule is a test helper for easily creating a mock module that
// registers a single component or trace type.
type SimpleModule struct {
	Component *registry.Component
	TraceType *registry.TraceType
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	if m.Component != nil {
		r.RegisterComponent(m.Component)
	}
	if m.TraceType != nil {
		r.RegisterTraceType(m.TraceType)
	}
}
