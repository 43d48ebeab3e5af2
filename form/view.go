package form

// View is the read-only, render-ready model of an element.
type View struct {
	Type       string            `json:"type" yaml:"type"`
	Key        string            `json:"key,omitempty" yaml:"key,omitempty"`
	ID         string            `json:"id" yaml:"id"`
	Name       string            `json:"name" yaml:"name"`
	Label      string            `json:"label,omitempty" yaml:"label,omitempty"`
	Help       string            `json:"help,omitempty" yaml:"help,omitempty"`
	Value      any               `json:"value,omitempty" yaml:"value,omitempty"`
	Errors     []string          `json:"errors,omitempty" yaml:"errors,omitempty"`
	Required   bool              `json:"required,omitempty" yaml:"required,omitempty"`
	Disabled   bool              `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Readonly   bool              `json:"readonly,omitempty" yaml:"readonly,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty" yaml:"attributes,omitempty"`
	Extra      map[string]any    `json:"extra,omitempty" yaml:"extra,omitempty"`
	Children   []*View           `json:"children,omitempty" yaml:"children,omitempty"`
	Prototype  *View             `json:"prototype,omitempty" yaml:"prototype,omitempty"`
}

func newView(e *element) *View {
	v := &View{
		Type:       e.self.Type(),
		Key:        e.position(),
		ID:         e.ID(),
		Name:       e.FormName(),
		Label:      e.options.Label,
		Help:       e.options.Help,
		Errors:     e.renderViolations(),
		Required:   e.options.Required,
		Disabled:   e.IsDisabled(),
		Readonly:   e.IsReadonly(),
		Attributes: e.options.Attributes,
		Extra:      map[string]any{},
	}

	if e.options.Placeholder != "" {
		v.Extra["placeholder"] = e.options.Placeholder
	}

	return v
}

// Child returns the child view with the given key (name or collection key).
func (v *View) Child(key string) *View {
	for _, c := range v.Children {
		if c.Key == key {
			return c
		}
	}

	return nil
}

// Vars flattens the view into template variables.
func (v *View) Vars() map[string]any {
	vars := map[string]any{
		"type":       v.Type,
		"id":         v.ID,
		"name":       v.Name,
		"label":      v.Label,
		"help":       v.Help,
		"value":      v.Value,
		"errors":     v.Errors,
		"required":   v.Required,
		"disabled":   v.Disabled,
		"readonly":   v.Readonly,
		"attributes": v.Attributes,
	}

	for k, x := range v.Extra {
		vars[k] = x
	}

	if len(v.Children) > 0 {
		children := make([]map[string]any, 0, len(v.Children))
		for _, c := range v.Children {
			children = append(children, c.Vars())
		}

		vars["children"] = children
	}

	if v.Prototype != nil {
		vars["prototype"] = v.Prototype.Vars()
	}

	return vars
}
