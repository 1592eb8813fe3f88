package inputcheck

// Alphabet is an immutable set of letters for one script and case.
type Alphabet struct {
	name    string
	letters string
	set     map[rune]struct{}
}

func newAlphabet(name, letters string) Alphabet {
	set := make(map[rune]struct{}, len(letters))
	for _, r := range letters {
		set[r] = struct{}{}
	}
	return Alphabet{name: name, letters: letters, set: set}
}

// Fixed alphabets. Ё/ё are part of the Cyrillic tables.
var (
	LowerLatin    = newAlphabet("lower-latin", "abcdefghijklmnopqrstuvwxyz")
	UpperLatin    = newAlphabet("upper-latin", "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	LowerCyrillic = newAlphabet("lower-cyrillic", "абвгдеёжзийклмнопрстуфхцчшщъыьэюя")
	UpperCyrillic = newAlphabet("upper-cyrillic", "АБВГДЕЁЖЗИЙКЛМНОПРСТУФХЦЧШЩЪЫЬЭЮЯ")
)

// Name returns the alphabet identifier, e.g. "upper-cyrillic".
func (a Alphabet) Name() string {
	return a.name
}

// Letters returns the alphabet letters in order.
func (a Alphabet) Letters() string {
	return a.letters
}

// Len returns the number of letters in the alphabet.
func (a Alphabet) Len() int {
	return len(a.set)
}

// Contains reports whether r belongs to the alphabet.
func (a Alphabet) Contains(r rune) bool {
	_, ok := a.set[r]
	return ok
}

// ContainsAll reports whether every rune of s belongs to the alphabet.
// The empty string trivially satisfies any alphabet.
func (a Alphabet) ContainsAll(s string) bool {
	for _, r := range s {
		if !a.Contains(r) {
			return false
		}
	}
	return true
}

// IsAlphabetic reports whether r is a letter of any known alphabet.
func IsAlphabetic(r rune) bool {
	return LowerLatin.Contains(r) || UpperLatin.Contains(r) ||
		LowerCyrillic.Contains(r) || UpperCyrillic.Contains(r)
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
