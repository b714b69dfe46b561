// Package schema provides a fluent API for building the JSON-schema
// descriptors that constrain structured Gemini responses.
//
// Schemas are constructed programmatically from type builders, validated
// at build time, and serialized to json.RawMessage for use with
// [github.com/hueworks/aigate/gemini].
//
//	desc := schema.Object().
//		Field("palette", schema.Array(
//			schema.Object().
//				Field("name", schema.String().Required()).
//				Field("hex", schema.String().Required()),
//		).Required()).
//		MustBuild()
//
// Fields are optional unless marked with Required(). Array builders must
// be given an item schema; Build returns an error (and MustBuild panics)
// when they are not.
package schema
