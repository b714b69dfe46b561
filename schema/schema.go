package schema

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Builder is the interface implemented by all schema builders.
type Builder interface {
	// Build serializes the schema to json.RawMessage.
	// Returns an error if the schema is invalid.
	Build() (json.RawMessage, error)

	// MustBuild is like Build but panics on error.
	MustBuild() json.RawMessage

	// schema returns the internal representation for composition.
	schema() *node
}

// node is the internal representation of a schema descriptor.
type node struct {
	Type        string           `json:"type,omitempty"`
	Description string           `json:"description,omitempty"`
	Enum        []any            `json:"enum,omitempty"`
	Items       *node            `json:"items,omitempty"`
	Properties  map[string]*node `json:"properties,omitempty"`
	Required    []string         `json:"required,omitempty"`
}

// ErrNilItems is returned when an array schema has no items schema.
var ErrNilItems = errors.New("schema: array requires items schema")

// validate checks the schema for internal consistency.
func (n *node) validate() error {
	switch n.Type {
	case "array":
		if n.Items == nil {
			return ErrNilItems
		}
		if err := n.Items.validate(); err != nil {
			return err
		}
	case "object":
		for name, prop := range n.Properties {
			if err := prop.validate(); err != nil {
				return fmt.Errorf("schema: field %q: %w", name, err)
			}
		}
	}
	return nil
}

// RequiredField wraps a Builder to mark it as required in an object.
type RequiredField struct {
	builder Builder
}

func build(n *node) (json.RawMessage, error) {
	if err := n.validate(); err != nil {
		return nil, err
	}
	return json.Marshal(n)
}

func mustBuild(n *node) json.RawMessage {
	data, err := build(n)
	if err != nil {
		panic(err)
	}
	return data
}
