package deepvalid

import (
	"context"
	"errors"
	"log/slog"

	"github.com/dmitrymomot/deepvalid/pkg/config"
	"github.com/dmitrymomot/deepvalid/pkg/i18n"
	"github.com/dmitrymomot/deepvalid/pkg/logger"
	"github.com/dmitrymomot/deepvalid/pkg/validator"
)

// Engine validates and localizes violations into a configured language.
type Engine struct {
	validator  *validator.Validator
	translator *i18n.Translator
	logger     *slog.Logger
	lang       string
}

// NewFromConfig builds an Engine from cfg.
func NewFromConfig(ctx context.Context, cfg config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := logger.New(
		logger.WithLevelName(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithContextExtractors(localeAttr),
	)

	tr, err := i18n.NewDefault(ctx, i18n.WithLogger(log))
	if err != nil {
		return nil, errors.Join(config.ErrInvalidConfig, err)
	}

	e := &Engine{
		validator: validator.New(
			validator.WithTagName(cfg.TagName),
			validator.WithCacheSize(cfg.CacheSize),
			validator.WithLogger(log),
		),
		translator: tr,
		logger:     log,
		lang:       tr.Match(cfg.Language),
	}

	log.DebugContext(ctx, "validation engine ready",
		slog.String("tag", cfg.TagName),
		slog.String("language", e.lang),
	)
	return e, nil
}

// NewFromEnv loads config.Config from the environment and optional .env
// files, then builds an Engine.
func NewFromEnv(ctx context.Context, files ...string) (*Engine, error) {
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}
	return NewFromConfig(ctx, cfg)
}

// Language returns the catalog language violations are localized into.
func (e *Engine) Language() string {
	return e.lang
}

// Validator returns the underlying validator.
func (e *Engine) Validator() *validator.Validator {
	return e.validator
}

// Validate walks v and localizes the violations into the engine language.
func (e *Engine) Validate(ctx context.Context, v any) (Violations, error) {
	return e.ValidateIn(ctx, v, e.lang)
}

// ValidateIn is Validate with an explicit language preference. lang may be
// a tag or an Accept-Language list; unmatched preferences fall back to the
// engine language.
func (e *Engine) ValidateIn(ctx context.Context, v any, lang string) (Violations, error) {
	lang = e.resolve(lang)
	ctx = i18n.SetLocale(ctx, lang)

	violations, err := e.validator.ValidateContext(ctx, v)
	if err != nil {
		return nil, err
	}
	return violations.Localize(e.translator, lang), nil
}

func (e *Engine) resolve(lang string) string {
	if lang == "" {
		return e.lang
	}
	if matched, ok := e.translator.Negotiate(lang); ok {
		return matched
	}
	return e.lang
}

// localeAttr adds the language a call is localized into to its log records.
func localeAttr(ctx context.Context) (slog.Attr, bool) {
	if lang, ok := i18n.LocaleFrom(ctx); ok {
		return slog.String("locale", lang), true
	}
	return slog.Attr{}, false
}
