package schema

import "encoding/json"

// Int creates a new integer schema builder.
func Int() *IntBuilder {
	return &IntBuilder{
		node: &node{Type: "integer"},
	}
}

// IntBuilder constructs integer type schemas.
type IntBuilder struct {
	node *node
}

// Desc sets the description.
func (b *IntBuilder) Desc(description string) *IntBuilder {
	b.node.Description = description
	return b
}

// Required marks this field as required when used in an object.
func (b *IntBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

// Build serializes the schema to json.RawMessage.
func (b *IntBuilder) Build() (json.RawMessage, error) {
	return build(b.node)
}

// MustBuild is like Build but panics on error.
func (b *IntBuilder) MustBuild() json.RawMessage {
	return mustBuild(b.node)
}

func (b *IntBuilder) schema() *node {
	return b.node
}

// Number creates a new floating-point number schema builder.
func Number() *NumberBuilder {
	return &NumberBuilder{
		node: &node{Type: "number"},
	}
}

// NumberBuilder constructs number type schemas.
type NumberBuilder struct {
	node *node
}

// Desc sets the description.
func (b *NumberBuilder) Desc(description string) *NumberBuilder {
	b.node.Description = description
	return b
}

// Required marks this field as required when used in an object.
func (b *NumberBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

// Build serializes the schema to json.RawMessage.
func (b *NumberBuilder) Build() (json.RawMessage, error) {
	return build(b.node)
}

// MustBuild is like Build but panics on error.
func (b *NumberBuilder) MustBuild() json.RawMessage {
	return mustBuild(b.node)
}

func (b *NumberBuilder) schema() *node {
	return b.node
}
