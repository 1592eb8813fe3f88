package inputcheck

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dmitrymomot/inputcheck/pkg/cache"
)

// PatternName identifies an entry of the built-in pattern table.
type PatternName string

const (
	PatternDigits   PatternName = "digits"
	PatternNumber   PatternName = "number"
	PatternEmail    PatternName = "email"
	PatternURL      PatternName = "url"
	PatternDateISO  PatternName = "date-iso"
	PatternDate     PatternName = "date"
	PatternPhone    PatternName = "phone"
	PatternHexColor PatternName = "hex-color"
)

// yearExpr is a two or four digit year from 1600 onwards.
const yearExpr = `(?:(?:1[6-9]|[2-9]\d)?\d{2})`

// dateExpr accepts D/M/Y dates with '/', '-' or '.' separators, month-length
// aware and leap-year aware for 29 February. RE2 has no backreferences, so
// the "same separator twice" rule is spelled out once per separator.
func dateExpr() string {
	var alts []string
	for _, sep := range []string{`/`, `-`, `\.`} {
		alts = append(alts,
			`(?:31`+sep+`(?:0?[13578]|1[02])`+sep+`|(?:29|30)`+sep+`(?:0?[13-9]|1[0-2])`+sep+`)`+yearExpr,
			`29`+sep+`0?2`+sep+`(?:(?:1[6-9]|[2-9]\d)?(?:0[48]|[2468][048]|[13579][26])|(?:16|[2468][048]|[3579][26])00)`,
			`(?:0?[1-9]|1\d|2[0-8])`+sep+`(?:0?[1-9]|1[0-2])`+sep+yearExpr,
		)
	}
	return strings.Join(alts, "|")
}

var patternSources = map[PatternName]string{
	PatternDigits:   `\d+`,
	PatternNumber:   `[+-]?\d+(?:\.\d+)?`,
	PatternEmail:    `[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`,
	PatternURL:      `https?://(?:www\.)?[-a-zA-Z0-9@:%._\+~#=]{2,256}\.[a-zA-Z0-9]{2,6}(?:[/?#][-a-zA-Z0-9@:%_\+.~#?&/=]*)?`,
	PatternDateISO:  `\d{4}-\d{2}-\d{2}`,
	PatternDate:     dateExpr(),
	PatternPhone:    `\+?\d{1,3}?[-.\s]?\(?\d{1,3}?\)?[-.\s]?\d{1,4}[-.\s]?\d{1,4}[-.\s]?\d{1,9}`,
	PatternHexColor: `#?(?:[a-fA-F0-9]{6}|[a-fA-F0-9]{3})`,
}

// patterns holds the anchored, pre-compiled form of patternSources.
var patterns = func() map[PatternName]*regexp.Regexp {
	m := make(map[PatternName]*regexp.Regexp, len(patternSources))
	for name, src := range patternSources {
		m[name] = regexp.MustCompile(anchor(src))
	}
	return m
}()

// PatternNames returns the names of the built-in patterns in a stable order.
func PatternNames() []PatternName {
	return []PatternName{
		PatternDigits, PatternNumber, PatternEmail, PatternURL,
		PatternDateISO, PatternDate, PatternPhone, PatternHexColor,
	}
}

// Pattern returns the compiled, fully anchored pattern registered under name.
func Pattern(name PatternName) (*regexp.Regexp, bool) {
	re, ok := patterns[name]
	return re, ok
}

// PatternSource returns the unanchored expression registered under name.
func PatternSource(name PatternName) (string, bool) {
	src, ok := patternSources[name]
	return src, ok
}

// compiled keeps the anchored form of recently used custom expressions.
var compiled = cache.NewLRU[string, *regexp.Regexp](256)

func compileAnchored(expr string) (*regexp.Regexp, error) {
	return compiled.GetOrCreate(anchor(expr), regexp.Compile)
}

// Match reports whether the whole of s matches re, regardless of whether
// re itself is anchored.
func Match(s string, re *regexp.Regexp) bool {
	if re == nil {
		return false
	}
	// re compiled, so its anchored form does too
	anchored, err := compileAnchored(re.String())
	if err != nil {
		return false
	}
	return anchored.MatchString(s)
}

// MatchString reports whether the whole of s matches expr. Compiled
// expressions are cached.
func MatchString(s, expr string) (bool, error) {
	re, err := compileAnchored(expr)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}
	return re.MatchString(s), nil
}

// MatchNamed reports whether the whole of s matches the built-in pattern name.
func MatchNamed(s string, name PatternName) (bool, error) {
	re, ok := patterns[name]
	if !ok {
		return false, fmt.Errorf("%w: %q", ErrUnknownPattern, name)
	}
	return re.MatchString(s), nil
}

func anchor(expr string) string {
	return `^(?:` + expr + `)$`
}
