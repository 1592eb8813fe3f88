package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrymomot/inputcheck/pkg/i18n"
	"github.com/dmitrymomot/inputcheck/pkg/inputcheck"
	"github.com/dmitrymomot/inputcheck/pkg/logger"
	"github.com/dmitrymomot/inputcheck/pkg/metrics"
	"github.com/dmitrymomot/inputcheck/pkg/validator"
)

// Check kinds accepted by POST /v1/validate.
const (
	CheckRequired = "required"
	CheckContent  = "content"
	CheckNumber   = "number"
	CheckCasing   = "casing"
	CheckRange    = "range"
	CheckPattern  = "pattern"
	CheckRegex    = "regex"
)

// CheckResult is the data returned by the single-value endpoints.
type CheckResult struct {
	Valid   bool   `json:"valid"`
	Value   any    `json:"value,omitempty"`
	Message string `json:"message,omitempty"`
}

type classifyRequest struct {
	Value string `json:"value"`
}

type classifyResult struct {
	ContentType string `json:"content_type"`
}

type numberRequest struct {
	Value  string `json:"value"`
	Base   string `json:"base"`
	Length *int   `json:"length,omitempty"`
}

type casingRequest struct {
	Value string `json:"value"`
	Mode  string `json:"mode"`
}

type rangeRequest struct {
	Value   json.Number `json:"value"`
	Low     json.Number `json:"low"`
	High    json.Number `json:"high"`
	Outside bool        `json:"outside"`
}

type matchRequest struct {
	Value       string `json:"value"`
	Pattern     string `json:"pattern,omitempty"`
	Regex       string `json:"regex,omitempty"`
	Description string `json:"description,omitempty"`
}

// FieldCheck is one entry of a POST /v1/validate request. Which of the
// optional parameters apply depends on Check.
type FieldCheck struct {
	Field       string      `json:"field"`
	Check       string      `json:"check"`
	Value       string      `json:"value"`
	Content     string      `json:"content,omitempty"`
	Base        string      `json:"base,omitempty"`
	Length      *int        `json:"length,omitempty"`
	Mode        string      `json:"mode,omitempty"`
	Low         json.Number `json:"low,omitempty"`
	High        json.Number `json:"high,omitempty"`
	Outside     bool        `json:"outside,omitempty"`
	Pattern     string      `json:"pattern,omitempty"`
	Regex       string      `json:"regex,omitempty"`
	Description string      `json:"description,omitempty"`
}

type validateRequest struct {
	Fields []FieldCheck `json:"fields"`
}

type patternInfo struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
}

func (a *API) patterns(w http.ResponseWriter, r *http.Request) {
	names := inputcheck.PatternNames()
	out := make([]patternInfo, 0, len(names))
	for _, name := range names {
		src, _ := inputcheck.PatternSource(name)
		out = append(out, patternInfo{Name: string(name), Expression: src})
	}
	_ = JSON(out).Render(w, r)
}

func (a *API) classify(ctx context.Context, req classifyRequest) Response {
	ct, err := inputcheck.Classify(req.Value)
	if err != nil {
		a.metrics.ObserveCheck("classify", metrics.ResultError)
		return JSONError(err)
	}
	a.metrics.ObserveCheck("classify", metrics.ResultValid)
	return JSON(classifyResult{ContentType: ct.String()})
}

func (a *API) number(ctx context.Context, req numberRequest) Response {
	rule, err := numberRule("value", req.Value, req.Base, req.Length)
	if err != nil {
		a.metrics.ObserveCheck(CheckNumber, metrics.ResultError)
		return JSONError(err)
	}
	return a.evaluate(ctx, CheckNumber, req.Value, rule)
}

func (a *API) casing(ctx context.Context, req casingRequest) Response {
	rule, err := casingRule("value", req.Value, req.Mode)
	if err != nil {
		a.metrics.ObserveCheck(CheckCasing, metrics.ResultError)
		return JSONError(err)
	}
	return a.evaluate(ctx, CheckCasing, req.Value, rule)
}

func (a *API) numericRange(ctx context.Context, req rangeRequest) Response {
	value, low, high, err := parseNumbers(req.Value, req.Low, req.High)
	if err != nil {
		a.metrics.ObserveCheck(CheckRange, metrics.ResultError)
		return JSONError(err)
	}
	return a.evaluate(ctx, CheckRange, value, validator.RangeOf("value", value, low, high, !req.Outside))
}

func (a *API) match(ctx context.Context, req matchRequest) Response {
	rule, err := matchRule("value", req.Value, req.Pattern, req.Regex, req.Description)
	if err != nil {
		a.metrics.ObserveCheck("match", metrics.ResultError)
		return JSONError(err)
	}
	return a.evaluate(ctx, "match", req.Value, rule)
}

// validate applies one rule per field and reports every failure at once.
func (a *API) validate(ctx context.Context, req validateRequest) Response {
	if len(req.Fields) == 0 {
		return JSONError(fmt.Errorf("%w: no fields to validate", ErrBadRequest))
	}

	rules := make([]validator.Rule, 0, len(req.Fields))
	for i, f := range req.Fields {
		if f.Field == "" {
			return JSONError(fmt.Errorf("%w: fields[%d] has no name", ErrBadRequest, i))
		}
		rule, err := fieldRule(f)
		if err != nil {
			a.metrics.ObserveCheck("validate", metrics.ResultError)
			return JSONError(err)
		}
		rules = append(rules, rule)
	}

	err := validator.Apply(rules...)
	if err == nil {
		a.metrics.ObserveCheck("validate", metrics.ResultValid)
		return JSON(CheckResult{Valid: true})
	}
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		a.metrics.ObserveCheck("validate", metrics.ResultError)
		a.log.DebugContext(ctx, "contract violation", logger.Error(err))
		return JSONError(err)
	}
	a.metrics.ObserveCheck("validate", metrics.ResultInvalid)

	messages := make([]string, len(verrs))
	for i, verr := range verrs {
		messages[i] = a.message(ctx, verr)
	}
	return validationFailed(verrs, messages)
}

// evaluate runs a single rule. Invalid input is a successful request with
// valid=false; contract violations become error responses.
func (a *API) evaluate(ctx context.Context, check string, value any, rule validator.Rule) Response {
	err := validator.Apply(rule)
	if err == nil {
		a.metrics.ObserveCheck(check, metrics.ResultValid)
		return JSON(CheckResult{Valid: true, Value: value})
	}
	verrs := validator.ExtractValidationErrors(err)
	if verrs == nil {
		a.metrics.ObserveCheck(check, metrics.ResultError)
		a.log.DebugContext(ctx, "contract violation", logger.Field(rule.Error.Field), logger.Error(err))
		return JSONError(err)
	}
	a.metrics.ObserveCheck(check, metrics.ResultInvalid)
	return JSON(CheckResult{Valid: false, Message: a.message(ctx, verrs[0])})
}

// message localizes verr for the request language, keeping the built-in
// English text when no translation exists.
func (a *API) message(ctx context.Context, verr validator.ValidationError) string {
	if a.tr == nil {
		return verr.Message
	}
	lang := i18n.LocaleOr(ctx, a.tr.DefaultLanguage())
	return a.tr.Td(lang, verr.TranslationKey, verr.Message, verr.Args()...)
}

func fieldRule(f FieldCheck) (validator.Rule, error) {
	switch strings.ToLower(f.Check) {
	case CheckRequired:
		return validator.Required(f.Field, f.Value), nil
	case CheckContent:
		ct, err := parseContentType(f.Content)
		if err != nil {
			return validator.Rule{}, err
		}
		return validator.Content(f.Field, f.Value, ct), nil
	case CheckNumber:
		return numberRule(f.Field, f.Value, f.Base, f.Length)
	case CheckCasing:
		return casingRule(f.Field, f.Value, f.Mode)
	case CheckRange:
		value, low, high, err := parseNumbers(json.Number(strings.TrimSpace(f.Value)), f.Low, f.High)
		if err != nil {
			return validator.Rule{}, fmt.Errorf("%s: %w", f.Field, err)
		}
		return validator.RangeOf(f.Field, value, low, high, !f.Outside), nil
	case CheckPattern:
		return matchRule(f.Field, f.Value, f.Pattern, "", "")
	case CheckRegex:
		return matchRule(f.Field, f.Value, "", f.Regex, f.Description)
	}
	return validator.Rule{}, fmt.Errorf("%w: %s: unknown check %q", ErrBadRequest, f.Field, f.Check)
}

func numberRule(field, value, base string, length *int) (validator.Rule, error) {
	b, err := inputcheck.ParseBase(base)
	if err != nil {
		return validator.Rule{}, err
	}
	n := inputcheck.AnyLength
	if length != nil {
		n = *length
	}
	return validator.NumberString(field, value, n, b), nil
}

func casingRule(field, value, mode string) (validator.Rule, error) {
	m, err := inputcheck.ParseCasingMode(mode)
	if err != nil {
		return validator.Rule{}, err
	}
	return validator.Casing(field, value, m), nil
}

// matchRule accepts exactly one of a built-in pattern name or a custom regex.
func matchRule(field, value, pattern, regex, description string) (validator.Rule, error) {
	switch {
	case pattern != "" && regex != "":
		return validator.Rule{}, fmt.Errorf("%w: pattern and regex are mutually exclusive", ErrBadRequest)
	case pattern != "":
		return validator.MatchesPattern(field, value, inputcheck.PatternName(pattern)), nil
	case regex != "":
		if description == "" {
			description = regex
		}
		return validator.MatchesRegex(field, value, regex, description), nil
	}
	return validator.Rule{}, fmt.Errorf("%w: pattern or regex is required", ErrBadRequest)
}

func parseContentType(s string) (inputcheck.ContentType, error) {
	for _, ct := range []inputcheck.ContentType{inputcheck.Number, inputcheck.Text, inputcheck.TextWithNumbers} {
		if strings.EqualFold(s, ct.String()) {
			return ct, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown content type %q", ErrBadRequest, s)
}

// parseNumbers reads the three numbers as int64 when all of them are
// integers and as float64 otherwise.
func parseNumbers(value, low, high json.Number) (any, any, any, error) {
	vi, errV := value.Int64()
	li, errL := low.Int64()
	hi, errH := high.Int64()
	if errV == nil && errL == nil && errH == nil {
		return vi, li, hi, nil
	}

	vf, errV := value.Float64()
	lf, errL := low.Float64()
	hf, errH := high.Float64()
	if errV != nil || errL != nil || errH != nil {
		return nil, nil, nil, fmt.Errorf("%w: value, low and high must be numbers", ErrBadRequest)
	}
	return vf, lf, hf, nil
}
