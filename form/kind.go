package form

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the closed set of element shapes. Tree walks switch on it.
type Kind int

const (
	_ Kind = iota // zero is not a valid kind

	KindField
	KindGroup
	KindCollection

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)
