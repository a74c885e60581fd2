package token

// Kind represents the category of an input segment.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the input.
	EOF

	// Word is a run of letters with word-internal apostrophes or hyphens.
	Word
	// Whitespace is a maximal run of Unicode white space.
	Whitespace
	// Punctuation is a single rune, or a run of identical runes ("...", "!!").
	Punctuation
	// Number is a run of digits with at most one '.' or ',' separator.
	Number
	// Verbatim is a URL or e-mail address copied through unchanged.
	Verbatim
)

func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case EOF:
		return "EOF"
	case Word:
		return "Word"
	case Whitespace:
		return "Whitespace"
	case Punctuation:
		return "Punctuation"
	case Number:
		return "Number"
	case Verbatim:
		return "Verbatim"
	default:
		return "Kind(?)"
	}
}
