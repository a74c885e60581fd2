package dialect

import "fmt"

// Kind is the language variety a text resembles.
type Kind uint8

const (
	Unknown Kind = iota
	Dutch
	Haags

	kindCount
)

func (k Kind) String() string {
	switch k {
	case Dutch:
		return "dutch"
	case Haags:
		return "haags"
	default:
		return "unknown"
	}
}

func (k Kind) GoString() string {
	return fmt.Sprintf("dialect.Kind(%s)", k.String())
}
