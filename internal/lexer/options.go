package lexer

// Options tunes tokenizer classification. The zero value is the default behaviour.
type Options struct {
	// PlainWords disables URL and e-mail detection; such text is then split into
	// ordinary words and punctuation and becomes eligible for translation.
	PlainWords bool
}
