// Package form models a form as a tree of elements and runs the value
// resolution of every element.
//
// The tree is made of three kinds of elements:
//
//   - Field (and Choice): a leaf holding one value
//   - Group: named children, shaped like an object
//   - Collection: keyed children cloned from a prototype, shaped like a list
//
// A Form is the root Group. It owns the mapped object and the submission
// state every element reads:
//
//	Value()      = submitted value if the form is submitted, default value otherwise
//	FinalValue() = transformer.FromForm(Value())
//
// SetValue seeds defaults (transformed with ToForm), SubmitValue replaces the
// authoritative state with raw submitted data. On a Collection only
// SubmitValue deletes rows; SetValue adds and updates.
//
// Identity (ID, FormName) is always computed from the live parent chain:
//
//	person                       person
//	person_addresses_0_city      person[addresses][0][city]
//	person_addresses___name___   person[addresses][___name___]   (prototype)
package form
