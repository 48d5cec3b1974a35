package prompt

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formfield/pkg/definition"
	"github.com/goliatone/go-formfield/pkg/field"
)

type stubDriver struct {
	inputs       []string
	passwords    []string
	confirm      []bool
	selectIdx    []int
	multiIdx     [][]int
	infoMessages []string
	questions    []string
	inputPos     int
	passPos      int
	confirmPos   int
	selectPos    int
	multiPos     int
}

func (s *stubDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	s.questions = append(s.questions, cfg.Message)
	if s.inputPos >= len(s.inputs) {
		return "", errors.New("no input scripted")
	}
	val := s.inputs[s.inputPos]
	s.inputPos++
	return val, nil
}

func (s *stubDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	s.questions = append(s.questions, cfg.Message)
	if s.passPos >= len(s.passwords) {
		return "", errors.New("no password scripted")
	}
	val := s.passwords[s.passPos]
	s.passPos++
	return val, nil
}

func (s *stubDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	s.questions = append(s.questions, cfg.Message)
	if s.confirmPos >= len(s.confirm) {
		return false, errors.New("no confirm scripted")
	}
	val := s.confirm[s.confirmPos]
	s.confirmPos++
	return val, nil
}

func (s *stubDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	s.questions = append(s.questions, cfg.Message)
	if s.selectPos >= len(s.selectIdx) {
		return -1, errors.New("no select scripted")
	}
	val := s.selectIdx[s.selectPos]
	s.selectPos++
	return val, nil
}

func (s *stubDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	s.questions = append(s.questions, cfg.Message)
	if s.multiPos >= len(s.multiIdx) {
		return nil, errors.New("no multiselect scripted")
	}
	val := s.multiIdx[s.multiPos]
	s.multiPos++
	return val, nil
}

func (s *stubDriver) Info(_ context.Context, msg string) error {
	s.infoMessages = append(s.infoMessages, msg)
	return nil
}

func newSignupSet(t *testing.T) *definition.Set {
	t.Helper()
	set, err := definition.NewSet(definition.Form{
		ID:    "signup",
		Title: "Sign up",
		Fields: []field.Config{
			{ID: "email", Type: field.TypeEmail, Label: "Email", Required: true},
			{ID: "password", Type: field.TypePassword, Label: "Password", Required: true, MinLength: field.Int(4)},
			{ID: "confirm", Type: field.TypePassword, Label: "Confirm", Match: "password", Message: field.PerKind{field.NoMatch: "Passwords differ"}},
			{ID: "plan", Type: field.TypeSelect, Label: "Plan", Choices: []field.Choice{field.Option("free"), field.LabeledOption("Pro plan", "pro")}},
			{ID: "tags", Type: field.TypeSelect, Label: "Tags", Attributes: map[string]any{"multiple": true}, Choices: []field.Choice{field.Option("a"), field.Option("b"), field.Option("c")}},
			{ID: "terms", Type: field.TypeCheckbox, Label: "Accept terms", Required: true, Value: "yes"},
		},
	})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	return set
}

func TestRunCollectsAnswers(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"jane@example.com"},
		passwords: []string{"hunter2", "hunter2"},
		selectIdx: []int{1},
		multiIdx:  [][]int{{0, 2}},
		confirm:   []bool{true},
	}

	result, err := Run(context.Background(), newSignupSet(t), driver)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Valid() {
		t.Fatalf("expected valid result, got %v", result.Violations)
	}

	want := map[string]any{
		"email":    "jane@example.com",
		"password": "hunter2",
		"confirm":  "hunter2",
		"plan":     "pro",
		"tags":     []string{"a", "c"},
		"terms":    "yes",
	}
	if diff := cmp.Diff(want, result.Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"Sign up"}, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
	wantQuestions := []string{"Email *", "Password *", "Confirm", "Plan", "Tags", "Accept terms *"}
	if diff := cmp.Diff(wantQuestions, driver.questions); diff != "" {
		t.Fatalf("questions mismatch (-want +got):\n%s", diff)
	}
}

func TestRunReasksInvalidAnswers(t *testing.T) {
	driver := &stubDriver{
		inputs:    []string{"", "not-an-email", "jane@example.com"},
		passwords: []string{"hunter2", "other", "hunter2"},
		selectIdx: []int{0},
		multiIdx:  [][]int{nil},
		confirm:   []bool{false, true},
	}

	result, err := Run(context.Background(), newSignupSet(t), driver)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Valid() {
		t.Fatalf("expected valid result, got %v", result.Violations)
	}

	wantInfo := []string{
		"Sign up",
		field.DefaultMessage(field.ValueMissing, field.Config{ID: "email", Type: field.TypeEmail}),
		field.DefaultMessage(field.TypeMismatch, field.Config{ID: "email", Type: field.TypeEmail}),
		"Passwords differ",
		field.DefaultMessage(field.ValueMissing, field.Config{ID: "terms", Type: field.TypeCheckbox}),
	}
	if diff := cmp.Diff(wantInfo, driver.infoMessages); diff != "" {
		t.Fatalf("info mismatch (-want +got):\n%s", diff)
	}
}

func TestRunGivesUpAfterMaxAttempts(t *testing.T) {
	set, err := definition.NewSet(definition.Form{
		ID:     "short",
		Fields: []field.Config{{ID: "code", Required: true}},
	})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	driver := &stubDriver{inputs: []string{"", ""}}

	_, err = Run(context.Background(), set, driver, WithMaxAttempts(2))
	if !errors.Is(err, ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
	if len(driver.infoMessages) != 2 {
		t.Fatalf("expected one message per rejected answer, got %v", driver.infoMessages)
	}
}

func TestRunPropagatesDriverErrors(t *testing.T) {
	set, err := definition.NewSet(definition.Form{
		ID:     "short",
		Fields: []field.Config{{ID: "code"}},
	})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	_, err = Run(context.Background(), set, &stubDriver{})
	if err == nil {
		t.Fatal("expected error from exhausted driver")
	}
	if _, err := Run(context.Background(), nil, &stubDriver{}); err == nil {
		t.Fatal("expected error for nil set")
	}
}

func TestInputValidatorUsesSiblings(t *testing.T) {
	set, err := definition.NewSet(definition.Form{
		ID: "pair",
		Fields: []field.Config{
			{ID: "a"},
			{ID: "b", Match: "a"},
		},
	})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}
	s := &session{answers: map[string]any{"a": "x"}}
	b, _ := set.Field("b")

	validate := s.inputConfig(b, "").Validator
	if err := validate("x"); err != nil {
		t.Fatalf("expected match to pass, got %v", err)
	}
	err = validate("y")
	violation, ok := field.AsViolation(err)
	if !ok || violation.Kind != field.NoMatch {
		t.Fatalf("expected noMatch violation, got %v", err)
	}
}

func TestSelectionHelpers(t *testing.T) {
	options := []string{"a", "b", "c"}
	if got := indexOf(options, "c"); got != 2 {
		t.Fatalf("indexOf = %d", got)
	}
	if diff := cmp.Diff([]int{0, 2}, indicesOf(options, []string{"c", "a"})); diff != "" {
		t.Fatalf("indicesOf mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"b"}, defaultsFromIndices(options, []int{1, 7})); diff != "" {
		t.Fatalf("defaultsFromIndices mismatch (-want +got):\n%s", diff)
	}
}

func TestRunRadioGroup(t *testing.T) {
	set, err := definition.NewSet(definition.Form{
		ID: "order",
		Fields: []field.Config{
			{ID: "size-m", Name: "size", Type: field.TypeRadio, Label: "Medium", Value: "m", Required: true},
			{ID: "size-l", Name: "size", Type: field.TypeRadio, Label: "Large", Value: "l", Required: true},
		},
	})
	if err != nil {
		t.Fatalf("NewSet: %v", err)
	}

	result, err := Run(context.Background(), set, &stubDriver{confirm: []bool{false, true}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !result.Valid() {
		t.Fatalf("expected checked option to satisfy the group, got %v", result.Violations)
	}
	if diff := cmp.Diff(map[string]any{"size-m": nil, "size-l": "l"}, result.Values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}

	result, err = Run(context.Background(), set, &stubDriver{confirm: []bool{false, false}})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(result.Violations) != 2 {
		t.Fatalf("expected both options to report the empty group, got %v", result.Violations)
	}
}
