package inputcheck

// ContentType is the coarse classification of a string.
type ContentType int

const (
	// Number means the string has digits and no letters.
	Number ContentType = iota
	// Text means the string has no digits.
	Text
	// TextWithNumbers means the string has both digits and letters.
	TextWithNumbers
)

func (c ContentType) String() string {
	switch c {
	case Number:
		return "number"
	case Text:
		return "text"
	case TextWithNumbers:
		return "text_with_numbers"
	default:
		return "unknown"
	}
}

// Classify inspects s in a single pass. Letters of both Latin and Cyrillic
// alphabets count as text; any other symbol is neutral.
func Classify(s string) (ContentType, error) {
	if s == "" {
		return 0, ErrEmptyInput
	}

	var hasDigit, hasAlpha bool
	for _, r := range s {
		hasDigit = hasDigit || isDigit(r)
		hasAlpha = hasAlpha || IsAlphabetic(r)
	}

	switch {
	case hasDigit && hasAlpha:
		return TextWithNumbers, nil
	case hasDigit:
		return Number, nil
	default:
		return Text, nil
	}
}
