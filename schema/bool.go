package schema

import "encoding/json"

// Bool creates a new boolean schema builder.
func Bool() *BoolBuilder {
	return &BoolBuilder{
		node: &node{Type: "boolean"},
	}
}

// BoolBuilder constructs boolean type schemas.
type BoolBuilder struct {
	node *node
}

// Desc sets the description.
func (b *BoolBuilder) Desc(description string) *BoolBuilder {
	b.node.Description = description
	return b
}

// Required marks this field as required when used in an object.
func (b *BoolBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

// Build serializes the schema to json.RawMessage.
func (b *BoolBuilder) Build() (json.RawMessage, error) {
	return build(b.node)
}

// MustBuild is like Build but panics on error.
func (b *BoolBuilder) MustBuild() json.RawMessage {
	return mustBuild(b.node)
}

func (b *BoolBuilder) schema() *node {
	return b.node
}
