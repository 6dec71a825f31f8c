package schema

// Kind classifies a field.
type Kind string

const (
	KindScalar Kind = "scalar"
	KindEnum   Kind = "enum"
	KindObject Kind = "object"

	// KindUnsupported marks a database type the schema has no client type
	// for. Its values are guessed.
	KindUnsupported Kind = "unsupported"
)

// Scalar type names as declared in Prisma schemas.
const (
	TypeString   = "String"
	TypeInt      = "Int"
	TypeBigInt   = "BigInt"
	TypeFloat    = "Float"
	TypeDecimal  = "Decimal"
	TypeBoolean  = "Boolean"
	TypeDateTime = "DateTime"
	TypeJSON     = "Json"
)

// Context is the schema a translation resolves selectors against.
// Model names the root model every selector starts from.
type Context struct {
	Model  string  `json:"model" yaml:"model"`
	Models []Model `json:"models" yaml:"models"`
}

// Model is a named set of fields.
type Model struct {
	Name   string  `json:"name" yaml:"name"`
	Fields []Field `json:"fields" yaml:"fields"`
}

// Field describes one model field.
//
// For object fields Type names the related model; for enum fields Type
// names the enum and EnumValues lists its members.
type Field struct {
	Name       string   `json:"name" yaml:"name"`
	Type       string   `json:"type" yaml:"type"`
	Kind       Kind     `json:"kind" yaml:"kind"`
	IsList     bool     `json:"isList,omitempty" yaml:"isList,omitempty"`
	IsRequired bool     `json:"isRequired,omitempty" yaml:"isRequired,omitempty"`
	EnumValues []string `json:"enumValues,omitempty" yaml:"enumValues,omitempty"`
}

// WithModel returns a shallow copy of c rooted at another model.
func (c *Context) WithModel(model string) *Context {
	cp := *c
	cp.Model = model
	return &cp
}

// FindModel returns the model with the given name.
func (c *Context) FindModel(name string) (*Model, bool) {
	for i := range c.Models {
		if c.Models[i].Name == name {
			return &c.Models[i], true
		}
	}
	return nil, false
}

// FindField returns the field with the given name.
func (m *Model) FindField(name string) (*Field, bool) {
	for i := range m.Fields {
		if m.Fields[i].Name == name {
			return &m.Fields[i], true
		}
	}
	return nil, false
}
