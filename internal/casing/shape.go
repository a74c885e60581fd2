package casing

import (
	"unicode"
)

// Shape is the capitalisation pattern of a word.
type Shape uint8

const (
	// None means the text has no cased letters.
	None Shape = iota
	// Lower is all lowercase: "groot".
	Lower
	// Title is one leading capital, the rest lowercase: "Groot", "IJsland", "K".
	Title
	// Upper is two or more letters, all uppercase: "GROOT". A capital clitic
	// after an apostrophe also counts: "'T".
	Upper
	// Mixed is anything else: "BrEeZâH", "iPhone".
	Mixed
)

func (s Shape) String() string {
	switch s {
	case None:
		return "none"
	case Lower:
		return "lower"
	case Title:
		return "title"
	case Upper:
		return "upper"
	case Mixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// Detect classifies word. Only cased letters are considered; apostrophes,
// hyphens and caseless scripts do not influence the result.
func Detect(word string) Shape {
	var (
		letters    int
		uppers     int
		firstUpper bool
		// IJ в начале слова считается одной заглавной: IJsland
		ijDigraph bool
		// 'T, 'K: одна буква после апострофа встречается только в тексте капсом
		clitic bool
		prev   rune
	)
	for _, r := range word {
		isUpper := unicode.IsUpper(r) || unicode.IsTitle(r)
		if !isUpper && !unicode.IsLower(r) {
			if letters == 0 && (r == '\'' || r == '’') {
				clitic = true
			}
			continue
		}
		letters++
		if isUpper {
			uppers++
		}
		switch letters {
		case 1:
			firstUpper = isUpper
		case 2:
			ijDigraph = prev == 'I' && r == 'J'
		}
		prev = r
	}

	switch {
	case letters == 0:
		return None
	case uppers == 0:
		return Lower
	case uppers == letters && (letters >= 2 || clitic):
		// "IJ" само по себе неоднозначно; считаем заглавным словом
		return Upper
	case firstUpper && uppers == 1:
		return Title
	case ijDigraph && uppers == 2:
		return Title
	default:
		return Mixed
	}
}
