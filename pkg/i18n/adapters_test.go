package i18n_test

import (
	"context"
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputcheck/pkg/i18n"
)

func TestFSAdapter(t *testing.T) {
	t.Run("merges every yaml file of the directory", func(t *testing.T) {
		adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), os.DirFS("testdata"), ".")
		require.NotNil(t, adapter)

		tr, err := i18n.NewTranslator(context.Background(), adapter)
		require.NoError(t, err)

		assert.Equal(t, "is required", tr.T("en", "validation.required"))
		assert.Equal(t, "2 attempts left", tr.N("en", "prompt.attempts_left", 2))
		assert.Equal(t, "обязательное поле", tr.T("ru", "validation.required"))
		assert.Equal(t, "только строчные латинские буквы", tr.T("ru", "validation.casing.latin-lower"))
	})

	t.Run("nil arguments", func(t *testing.T) {
		assert.Nil(t, i18n.NewFSAdapter(nil, fstest.MapFS{}, "."))
		assert.Nil(t, i18n.NewFSAdapter(i18n.NewYAMLParser(), nil, "."))
	})

	t.Run("missing directory", func(t *testing.T) {
		adapter := i18n.NewFSAdapter(i18n.NewYAMLParser(), fstest.MapFS{}, "locales")
		_, err := adapter.Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToReadDirectory)
	})

	t.Run("no supported files", func(t *testing.T) {
		fsys := fstest.MapFS{"locales/en.json": {Data: []byte(`{}`)}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "locales").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrNoTranslationFiles)
	})

	t.Run("broken file", func(t *testing.T) {
		fsys := fstest.MapFS{"en.yaml": {Data: []byte("en: [unclosed")}}
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), fsys, "").Load(context.Background())
		assert.ErrorIs(t, err, i18n.ErrFailedToParseFile)
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := i18n.NewFSAdapter(i18n.NewYAMLParser(), os.DirFS("testdata"), ".").Load(ctx)
		assert.ErrorIs(t, err, i18n.ErrLoadingTranslationsCancelled)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestYAMLParser(t *testing.T) {
	p := i18n.NewYAMLParser()

	t.Run("extensions", func(t *testing.T) {
		for _, ext := range []string{"yaml", ".yml", "YAML"} {
			assert.True(t, p.SupportsFileExtension(ext), ext)
		}
		assert.False(t, p.SupportsFileExtension(".json"))
	})

	t.Run("parser for file", func(t *testing.T) {
		assert.NotNil(t, i18n.NewParserForFile("ru.yaml"))
		assert.Nil(t, i18n.NewParserForFile("ru.json"))
	})

	t.Run("top level must be maps", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "en: just a string")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})

	t.Run("empty document", func(t *testing.T) {
		_, err := p.Parse(context.Background(), "")
		assert.ErrorIs(t, err, i18n.ErrFailedToParseYAML)
	})
}
