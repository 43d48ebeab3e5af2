// Package binding moves data between a form tree and the objects it is
// mapped to.
//
// The Collector walks the tree and reads, for every mapped element, the
// property of the same name out of the object the parent maps to. The
// result seeds the form with SetValue.
//
// The Hydrator walks the tree the other way and writes every final value
// back. Missing objects are created on demand, either from the element
// DataType option through a Registry or from the property type itself.
//
// Property access goes through a PropertyAccessor. ReflectAccessor reads
// and writes struct fields (matched by form tag, json tag, exact name, then
// normalized name), Get/Is/Set methods, and string keyed maps.
package binding
