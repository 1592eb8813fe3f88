package prompt

import (
	"io"
	"log/slog"

	"github.com/dmitrymomot/inputcheck/pkg/i18n"
	"github.com/dmitrymomot/inputcheck/pkg/logger"
)

// DefaultMessage is written after an invalid attempt when no message or
// translation is configured.
const DefaultMessage = "Invalid input, try again."

// DefaultMessageKey is the translation key used by WithTranslation when an
// empty key is given.
const DefaultMessageKey = "prompt.invalid"

const attemptsLeftKey = "prompt.attempts_left"

// Option configures a Loop.
type Option func(*options)

type options struct {
	maxAttempts int
	out         io.Writer
	message     string
	tr          *i18n.Translator
	lang        string
	key         string
	args        []string
	logger      *slog.Logger
}

func newOptions(opts []Option) *options {
	o := &options{
		out:     io.Discard,
		message: DefaultMessage,
	}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = logger.New(logger.WithOutput(io.Discard))
	}
	return o
}

// WithMaxAttempts limits the number of attempts. Zero or a negative value
// means no limit.
func WithMaxAttempts(n int) Option {
	return func(o *options) {
		o.maxAttempts = max(n, 0)
	}
}

// WithErrorOutput sets where rejection messages are written. Messages are
// discarded by default.
func WithErrorOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.out = w
		}
	}
}

// WithMessage sets the untranslated rejection message.
func WithMessage(msg string) Option {
	return func(o *options) {
		if msg != "" {
			o.message = msg
		}
	}
}

// WithTranslation translates the rejection message with tr. Args are key,
// value pairs for the message placeholders. When the key is missing in lang
// the WithMessage text is used.
func WithTranslation(tr *i18n.Translator, lang, key string, args ...string) Option {
	return func(o *options) {
		if tr == nil {
			return
		}
		if key == "" {
			key = DefaultMessageKey
		}
		o.tr, o.lang, o.key, o.args = tr, lang, key, args
	}
}

// WithLogger logs every attempt of the loop.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}
