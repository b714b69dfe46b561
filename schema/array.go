package schema

import "encoding/json"

// Array creates a new array schema builder with the specified item type.
func Array(items Builder) *ArrayBuilder {
	return &ArrayBuilder{
		node: &node{
			Type:  "array",
			Items: items.schema(),
		},
	}
}

// ArrayBuilder constructs array type schemas.
type ArrayBuilder struct {
	node *node
}

// Desc sets the description.
func (b *ArrayBuilder) Desc(description string) *ArrayBuilder {
	b.node.Description = description
	return b
}

// Required marks this field as required when used in an object.
func (b *ArrayBuilder) Required() *RequiredField {
	return &RequiredField{builder: b}
}

// Build serializes the schema to json.RawMessage.
func (b *ArrayBuilder) Build() (json.RawMessage, error) {
	return build(b.node)
}

// MustBuild is like Build but panics on error.
func (b *ArrayBuilder) MustBuild() json.RawMessage {
	return mustBuild(b.node)
}

func (b *ArrayBuilder) schema() *node {
	return b.node
}
