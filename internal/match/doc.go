// Package match resolves form element names against Go property names.
//
// Form names are usually snake_case ("last_name") while Go fields and
// accessor methods are CamelCase ("LastName", "SetLastName"). The package
// folds both into a comparable form and ranks near misses so binding errors
// can say what the caller probably meant.
//
// Key functions:
//   - NormalizeIdent: case- and separator-insensitive identifier key
//   - SameIdent: reports whether two identifiers normalize to the same key
//   - Levenshtein: edit distance between two strings
//   - Rank: orders candidate names by similarity to a wanted name
package match
