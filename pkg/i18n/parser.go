package i18n

import (
	"context"
	"path"
	"strings"
)

// Parser turns the content of a translation file into per-language maps.
// The outer map is keyed by language code.
type Parser interface {
	Parse(ctx context.Context, content string) (map[string]map[string]any, error)

	// SupportsFileExtension reports whether files with ext can be parsed.
	// The leading dot is optional.
	SupportsFileExtension(ext string) bool
}

// NewParserForFile returns a parser based on the file extension, or nil when
// the format is not supported.
func NewParserForFile(filename string) Parser {
	p := NewYAMLParser()
	if p.SupportsFileExtension(path.Ext(filename)) {
		return p
	}
	return nil
}

func trimExt(ext string) string {
	return strings.TrimPrefix(ext, ".")
}
