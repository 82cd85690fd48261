package toolkit

import "fmt"

// Registry stores tools by unique name and lists their definitions in
// registration order. Register every tool before serving traffic; lookups
// after that point are read-only, so no locking is required.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Tool),
	}
}

// Add registers a tool under its name. Unnamed tools, tools without a
// handler, and duplicate names are rejected.
func (r *Registry) Add(tools ...Tool) error {
	for _, t := range tools {
		if t.Name == "" {
			return ErrUnnamedTool
		}
		if t.Handler == nil {
			return fmt.Errorf("%w: %s", ErrNilHandler, t.Name)
		}
		if _, exists := r.tools[t.Name]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateTool, t.Name)
		}
		r.tools[t.Name] = t
		r.order = append(r.order, t.Name)
	}
	return nil
}

// Get looks up a tool by name.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Definitions lists the registered tools in registration order.
func (r *Registry) Definitions() []Definition {
	defs := make([]Definition, 0, len(r.order))
	for _, name := range r.order {
		defs = append(defs, r.tools[name].Definition())
	}
	return defs
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.tools)
}
