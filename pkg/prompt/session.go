package prompt

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-formfield/pkg/definition"
	"github.com/goliatone/go-formfield/pkg/field"
	"github.com/goliatone/go-formfield/pkg/htmltag"
)

const defaultMaxAttempts = 3

// Option customises Run.
type Option func(*session)

// WithMaxAttempts caps how many invalid answers a field may receive before
// Run gives up. Values below one are ignored.
func WithMaxAttempts(n int) Option {
	return func(s *session) {
		if n > 0 {
			s.maxAttempts = n
		}
	}
}

// WithLogger sets the logger used for per-field debug output.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *session) {
		s.logger = logger
	}
}

type session struct {
	driver      Driver
	maxAttempts int
	logger      zerolog.Logger
	answers     map[string]any
}

// Run asks every field of set in declaration order and returns the final
// validation result over all answers.
func Run(ctx context.Context, set *definition.Set, driver Driver, opts ...Option) (definition.Result, error) {
	if set == nil || driver == nil {
		return definition.Result{}, fmt.Errorf("prompt: set and driver are required")
	}
	s := &session{
		driver:      driver,
		maxAttempts: defaultMaxAttempts,
		logger:      zerolog.Nop(),
		answers:     make(map[string]any),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if title := set.Title(); title != "" {
		if err := driver.Info(ctx, title); err != nil {
			return definition.Result{}, err
		}
	}
	for _, f := range set.Fields() {
		if err := s.ask(ctx, f); err != nil {
			return definition.Result{}, fmt.Errorf("prompt: field %q: %w", f.ID(), err)
		}
	}
	return set.Validate(s.answers), nil
}

func (s *session) ask(ctx context.Context, f *field.Field) error {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		value, err := s.answer(ctx, f)
		if err != nil {
			return err
		}
		violation := f.Validate(value, s.siblings())
		if violation == nil {
			s.answers[f.ID()] = value
			if f.Type() == field.TypeRadio && value != nil {
				// a checked radio answers for its whole group
				s.answers[f.Name()] = value
			}
			s.logger.Debug().Str("field", f.ID()).Int("attempt", attempt).Msg("answer accepted")
			return nil
		}
		s.logger.Debug().
			Str("field", f.ID()).
			Str("kind", violation.Kind.String()).
			Int("attempt", attempt).
			Msg("answer rejected")
		if err := s.driver.Info(ctx, violation.Message); err != nil {
			return err
		}
	}
	return ErrTooManyAttempts
}

func (s *session) answer(ctx context.Context, f *field.Field) (any, error) {
	cfg := f.Config()
	switch {
	case cfg.Type == field.TypeCheckbox || cfg.Type == field.TypeRadio:
		return s.confirm(ctx, f)
	case cfg.Type == field.TypeSelect && len(cfg.Choices) > 0:
		if truthy(cfg.Attributes["multiple"]) {
			return s.multiSelect(ctx, f)
		}
		return s.selectOne(ctx, f)
	case cfg.Type == field.TypePassword:
		text, err := s.driver.Password(ctx, s.inputConfig(f, ""))
		return text, err
	default:
		text, err := s.driver.Input(ctx, s.inputConfig(f, htmltag.Stringify(cfg.Value)))
		return text, err
	}
}

func (s *session) inputConfig(f *field.Field, def string) InputConfig {
	return InputConfig{
		Message: question(f),
		Default: def,
		Help:    htmltag.Stringify(f.Config().Attributes["placeholder"]),
		Validator: func(text string) error {
			if violation := f.Validate(text, s.siblings()); violation != nil {
				return violation
			}
			return nil
		},
	}
}

// confirm maps a yes to the field's checked value and a no to nil.
func (s *session) confirm(ctx context.Context, f *field.Field) (any, error) {
	cfg := f.Config()
	checked := cfg.Value
	if checked == nil {
		checked = true
	}
	ok, err := s.driver.Confirm(ctx, ConfirmConfig{
		Message: question(f),
		Default: s.answers[f.ID()] != nil,
	})
	if err != nil || !ok {
		return nil, err
	}
	return checked, nil
}

func (s *session) selectOne(ctx context.Context, f *field.Field) (any, error) {
	choices := f.Choices()
	def := htmltag.Stringify(f.Default())
	cfg := SelectConfig{Message: question(f), Options: labels(choices)}
	for i, choice := range choices {
		if choice.Value == def {
			cfg.DefaultIndex = i
		}
	}
	idx, err := s.driver.Select(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(choices) {
		return nil, nil
	}
	return choices[idx].Value, nil
}

func (s *session) multiSelect(ctx context.Context, f *field.Field) (any, error) {
	choices := f.Choices()
	indices, err := s.driver.MultiSelect(ctx, SelectConfig{
		Message: question(f),
		Options: labels(choices),
	})
	if err != nil {
		return nil, err
	}
	var values []string
	for _, idx := range indices {
		if idx >= 0 && idx < len(choices) {
			values = append(values, choices[idx].Value)
		}
	}
	return values, nil
}

func (s *session) siblings() field.Siblings {
	out := make(field.Siblings, len(s.answers))
	for k, v := range s.answers {
		out[k] = v
	}
	return out
}

func question(f *field.Field) string {
	label := f.Label()
	if label == "" {
		label = f.ID()
	}
	if f.Required() {
		return label + " *"
	}
	return label
}

func labels(choices []field.Choice) []string {
	out := make([]string, len(choices))
	for i, choice := range choices {
		out[i] = choice.Label
	}
	return out
}

func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		v = strings.TrimSpace(strings.ToLower(v))
		return v != "" && v != "false" && v != "0"
	default:
		return true
	}
}
