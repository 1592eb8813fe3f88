// Package locales embeds the bundled message translations.
package locales

import "embed"

// FS holds one YAML file per language at its root.
//
//go:embed *.yaml
var FS embed.FS
