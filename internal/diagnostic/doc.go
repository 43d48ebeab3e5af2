// Package diagnostic provides structured errors, warnings and notes for
// form definitions.
//
// Key capabilities:
//   - Unknown element types, transformers and validators with suggestions
//   - Duplicate element names and missing collection prototypes
//   - Inconsistent element bounds and misplaced options
package diagnostic
