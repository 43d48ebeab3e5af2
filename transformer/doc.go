// Package transformer converts element values between their form
// representation (what is rendered and submitted: strings, string slices)
// and their domain representation (what the mapped object holds).
//
// Every transformer is bidirectional:
//
//	ToForm(domainValue, target)   -> formValue    // used by SetValue
//	FromForm(formValue, target)   -> domainValue  // used by FinalValue
//
// Transformers never fail. Input they cannot interpret becomes nil (or is
// passed through for Enum) so that validators, which look at the raw form
// value, report the problem instead.
//
// Chain composes transformers symmetrically: ToForm runs the last added
// transformer first, FromForm runs them in insertion order.
package transformer
