package document

//go:generate go tool stringer -type=Kind -linecomment -output=kind_string.go

// Kind is the JSON type of a Value.
type Kind int

const (
	// KindMissing marks a key that is not present in its parent object.
	KindMissing Kind = iota // missing
	KindNull                // null
	KindObject              // object
	KindArray               // array
	KindString              // string
	KindNumber              // number
	KindBool                // boolean
)
