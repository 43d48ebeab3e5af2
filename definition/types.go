package definition

// Element types that are not plain fields.
const (
	TypeChoice     = "choice"
	TypeGroup      = "group"
	TypeCollection = "collection"
)

// File represents the root of a YAML form definition file.
type File struct {
	// Version of the definition schema.
	Version string `yaml:"version,omitempty"`

	Forms []FormDef `yaml:"forms"`
}

// FormDef defines one form: a root group with its own submission key.
type FormDef struct {
	// Name is the key of the form in submitted data. Empty for a form that
	// reads the whole payload.
	Name string `yaml:"name"`

	Label string `yaml:"label,omitempty"`

	// DataType names the type of the object bound to the form.
	DataType string `yaml:"data_type,omitempty"`

	Elements []ElementDef `yaml:"elements"`
}

// ElementDef defines one element of a form tree.
type ElementDef struct {
	Name string `yaml:"name,omitempty"`

	// Type is a field type, "choice", "group" or "collection". Defaults to
	// "text", or "group" when Elements are present.
	Type string `yaml:"type,omitempty"`

	Label       string            `yaml:"label,omitempty"`
	Help        string            `yaml:"help,omitempty"`
	Placeholder string            `yaml:"placeholder,omitempty"`
	Attributes  map[string]string `yaml:"attributes,omitempty"`

	Required bool `yaml:"required,omitempty"`
	Disabled bool `yaml:"disabled,omitempty"`
	Readonly bool `yaml:"readonly,omitempty"`

	// Mapped defaults to true.
	Mapped *bool `yaml:"mapped,omitempty"`

	// DataType names the type of the object created for a group or a
	// collection row when the mapped object lacks it.
	DataType string `yaml:"data_type,omitempty"`

	// OnValue is the submitted value of a checked checkbox.
	OnValue string `yaml:"on_value,omitempty"`

	// Layout is the time layout of date and time fields.
	Layout string `yaml:"layout,omitempty"`

	Choices  []ChoiceDef `yaml:"choices,omitempty"`
	Multiple bool        `yaml:"multiple,omitempty"`
	Expanded bool        `yaml:"expanded,omitempty"`

	MinElements int  `yaml:"min_elements,omitempty"`
	MaxElements int  `yaml:"max_elements,omitempty"`
	Editable    bool `yaml:"editable,omitempty"`

	Transformers StringOrArray  `yaml:"transformers,omitempty"`
	Validators   []ValidatorDef `yaml:"validators,omitempty"`

	// Elements are the children of a group.
	Elements []ElementDef `yaml:"elements,omitempty"`

	// Prototype is the row template of a collection.
	Prototype *ElementDef `yaml:"prototype,omitempty"`
}

// IsMapped reports whether the element reads and writes the bound object.
func (e *ElementDef) IsMapped() bool {
	return e.Mapped == nil || *e.Mapped
}

// ChoiceDef is one option of a choice element.
type ChoiceDef struct {
	Label string `yaml:"label,omitempty"`
	Value string `yaml:"value"`
	Group string `yaml:"group,omitempty"`
}

// ValidatorDef references a named validator.
// YAML formats supported:
//   - Simple string: "not_empty"
//   - Mapping: {name: length, min: 2, max: 64, message: "..."}
type ValidatorDef struct {
	Name    string         `yaml:"name"`
	Message string         `yaml:"message,omitempty"`
	Params  map[string]any `yaml:",inline"`
}

// StringOrArray represents a YAML field that can be either a single string
// or an array of strings.
type StringOrArray []string

// Form returns the definition of the named form.
func (f *File) Form(name string) (*FormDef, bool) {
	for i := range f.Forms {
		if f.Forms[i].Name == name {
			return &f.Forms[i], true
		}
	}

	return nil, false
}

// Names returns the form names in definition order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Forms))
	for _, def := range f.Forms {
		names = append(names, def.Name)
	}

	return names
}
