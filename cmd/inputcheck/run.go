package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/inputcheck/internal/locales"
	"github.com/dmitrymomot/inputcheck/pkg/config"
	"github.com/dmitrymomot/inputcheck/pkg/environment"
	"github.com/dmitrymomot/inputcheck/pkg/i18n"
	"github.com/dmitrymomot/inputcheck/pkg/inputcheck"
	"github.com/dmitrymomot/inputcheck/pkg/logger"
	"github.com/dmitrymomot/inputcheck/pkg/prompt"
	"github.com/dmitrymomot/inputcheck/pkg/validator"
)

// Config is read from the environment (and .env) before flags are parsed;
// flags override it.
type Config struct {
	Env         environment.Environment `env:"INPUTCHECK_ENV" envDefault:"development"`
	Locale      string                  `env:"INPUTCHECK_LOCALE" envDefault:"en"`
	LogLevel    string                  `env:"INPUTCHECK_LOG_LEVEL" envDefault:"warn"`
	MaxAttempts int                     `env:"INPUTCHECK_MAX_ATTEMPTS" envDefault:"0"`
}

const (
	exitOK          = 0
	exitError       = 1
	exitUsage       = 2
	exitExhausted   = 3
	exitInterrupted = 130
)

var errUsage = errors.New("usage")

type flags struct {
	mode     string
	low      int
	high     int
	outside  bool
	base     string
	length   int
	casing   string
	pattern  string
	lang     string
	attempts int
	prompt   string
}

func parseFlags(args []string, cfg Config, stderr io.Writer) (flags, error) {
	var f flags
	fs := flag.NewFlagSet("inputcheck", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.mode, "mode", "int", "check to run: int, number, text or pattern")
	fs.IntVar(&f.low, "low", 0, "lower bound for -mode int")
	fs.IntVar(&f.high, "high", 100, "upper bound for -mode int")
	fs.BoolVar(&f.outside, "outside", false, "require the number to lie outside [low, high]")
	fs.StringVar(&f.base, "base", "dec", "base for -mode number: bin, oct, dec, hex or any")
	fs.IntVar(&f.length, "length", inputcheck.AnyLength, "exact length for -mode number, -1 for any")
	fs.StringVar(&f.casing, "casing", "EnG", "casing mode for -mode text, e.g. eng, ENG, Eng, EnG, rus, latin-title")
	fs.StringVar(&f.pattern, "pattern", string(inputcheck.PatternEmail), "pattern name for -mode pattern")
	fs.StringVar(&f.lang, "lang", cfg.Locale, "language of messages")
	fs.IntVar(&f.attempts, "attempts", cfg.MaxAttempts, "maximum attempts, 0 for no limit")
	fs.StringVar(&f.prompt, "prompt", "", "text written to stderr before reading")

	if err := fs.Parse(args); err != nil {
		return f, err
	}
	if fs.NArg() > 0 {
		return f, fmt.Errorf("%w: unexpected arguments %v", errUsage, fs.Args())
	}
	return f, nil
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintf(stderr, "inputcheck: %v\n", err)
		return exitError
	}

	f, err := parseFlags(args, cfg, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "inputcheck: %v\n", err)
		return exitUsage
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "inputcheck"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(stderr),
		logger.WithHandlerOptions(&slog.HandlerOptions{ReplaceAttr: logger.OmitTime}),
	)

	// Translator diagnostics would interleave with the prompts on stderr.
	tr, err := i18n.NewTranslator(ctx,
		i18n.NewFSAdapter(i18n.NewYAMLParser(), locales.FS, "."),
		i18n.WithNoLogging(),
	)
	if err != nil {
		if ctx.Err() != nil {
			return exitInterrupted
		}
		log.ErrorContext(ctx, "failed to load translations", logger.Error(err))
		return exitError
	}
	lang := i18n.NormalizeLanguage(f.lang, tr.SupportedLanguages())
	if lang == "" {
		log.WarnContext(ctx, "unsupported language, using default", slog.String("lang", f.lang))
		lang = tr.DefaultLanguage()
	}

	if f.prompt != "" {
		fmt.Fprintln(stderr, f.prompt)
	}

	src := prompt.NewLineSource(stdin)
	defer src.Close()

	value, err := check(ctx, f, src, func(rule validator.Rule) []prompt.Option {
		return []prompt.Option{
			prompt.WithMaxAttempts(f.attempts),
			prompt.WithErrorOutput(stderr),
			prompt.WithMessage(rule.Error.Message),
			prompt.WithTranslation(tr, lang, rule.Error.TranslationKey, rule.Error.Args()...),
			prompt.WithLogger(log),
		}
	})

	switch {
	case err == nil:
		fmt.Fprintln(stdout, value)
		return exitOK
	case errors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.Is(err, prompt.ErrAttemptsExhausted):
		fmt.Fprintf(stderr, "inputcheck: %v\n", err)
		return exitExhausted
	case errors.Is(err, errUsage),
		errors.Is(err, inputcheck.ErrUnknownBase),
		errors.Is(err, inputcheck.ErrUnknownCasingMode),
		errors.Is(err, inputcheck.ErrUnknownPattern):
		fmt.Fprintf(stderr, "inputcheck: %v\n", err)
		return exitUsage
	default:
		fmt.Fprintf(stderr, "inputcheck: %v\n", err)
		return exitError
	}
}

// check runs the prompt selected by f. The rejection message of each mode
// comes from the matching validator rule so it can be translated with the
// same keys the HTTP API uses.
func check(ctx context.Context, f flags, src prompt.Source, opts func(validator.Rule) []prompt.Option) (any, error) {
	switch strings.ToLower(f.mode) {
	case "int":
		rule := validator.Range("value", 0, f.low, f.high, !f.outside)
		return prompt.Int(ctx, src, f.low, f.high, !f.outside, opts(rule)...)
	case "number":
		base, err := inputcheck.ParseBase(f.base)
		if err != nil {
			return nil, err
		}
		rule := validator.NumberString("value", "", f.length, base)
		return prompt.NumberString(ctx, src, base, f.length, opts(rule)...)
	case "text":
		mode, err := inputcheck.ParseCasingMode(f.casing)
		if err != nil {
			return nil, err
		}
		rule := validator.Casing("value", "", mode)
		return prompt.Text(ctx, src, mode, opts(rule)...)
	case "pattern":
		name := inputcheck.PatternName(f.pattern)
		rule := validator.MatchesPattern("value", "", name)
		return prompt.Pattern(ctx, src, name, opts(rule)...)
	}
	return nil, fmt.Errorf("%w: unknown mode %q", errUsage, f.mode)
}
