package terminal

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/futig/touchdown/internal/entity"
	"github.com/futig/touchdown/internal/form"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	title      = "Touchdown Application 🏈💘"
	tagline    = "Step onto the field: drop your name and answer quick plays to win big points."
	submitText = "Enter NOW 🏈"
	busyText   = "Sending…"
	skipOption = "(skip for now)"
)

// Runner walks one applicant through the questionnaire in a terminal
type Runner struct {
	form   *form.ApplicationForm
	driver PromptDriver
}

func NewRunner(f *form.ApplicationForm, driver PromptDriver) *Runner {
	return &Runner{
		form:   f,
		driver: driver,
	}
}

// Run asks every question, submits and collects extra notes.
// It returns the final state; a declined retry leaves the form in draft.
func (r *Runner) Run(ctx context.Context) (form.State, error) {
	if err := r.info(ctx, title, tagline, ""); err != nil {
		return r.form.Snapshot(), err
	}

	for {
		if err := r.askQuestions(ctx); err != nil {
			return r.form.Snapshot(), err
		}

		ok, err := r.driver.Confirm(ctx, ConfirmConfig{Message: submitText, Default: true})
		if err != nil {
			return r.form.Snapshot(), err
		}
		if ok {
			break
		}
		if err := r.driver.Info(ctx, "Back to the huddle: review your answers."); err != nil {
			return r.form.Snapshot(), err
		}
	}

	submitted, err := r.submit(ctx)
	if err != nil || !submitted {
		return r.form.Snapshot(), err
	}

	if err := r.askExtra(ctx); err != nil {
		return r.form.Snapshot(), err
	}

	return r.form.Snapshot(), r.driver.Info(ctx, entity.ReviewNotice)
}

func (r *Runner) askQuestions(ctx context.Context) error {
	for _, q := range entity.Questions() {
		if err := r.ask(ctx, q); err != nil {
			return fmt.Errorf("ask %s: %w", q.Field, err)
		}
		if err := r.driver.Info(ctx, Scoreboard(r.form.Progress())); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) ask(ctx context.Context, q entity.Question) error {
	current := r.form.Snapshot().Answers

	switch q.Kind {
	case entity.QuestionKindText:
		cfg := InputConfig{Message: q.Label, Default: textValue(current, q.Field), Help: q.Placeholder}
		if q.Required {
			cfg.Validator = requireNonBlank
		}
		answer, err := r.driver.Input(ctx, cfg)
		if err != nil {
			return err
		}
		return r.form.UpdateField(q.Field, answer)

	case entity.QuestionKindTextArea:
		answer, err := r.driver.TextArea(ctx, TextAreaConfig{
			Message: q.Label,
			Default: textValue(current, q.Field),
			Help:    q.Placeholder,
		})
		if err != nil {
			return err
		}
		return r.form.UpdateField(q.Field, answer)

	case entity.QuestionKindSingle:
		// A choice cannot be cleared once made, so skipping is offered only while unanswered.
		selected := choiceValue(current, q.Field)
		options := q.Options
		if selected == "" {
			options = append([]string{skipOption}, q.Options...)
		}
		answer, err := r.driver.Select(ctx, SelectConfig{
			Message: q.Label,
			Options: options,
			Default: selected,
		})
		if err != nil {
			return err
		}
		if answer == skipOption {
			return nil
		}
		return r.form.SelectSingle(q.Field, answer)

	case entity.QuestionKindMulti:
		answers, err := r.driver.MultiSelect(ctx, SelectConfig{
			Message:  q.Label,
			Options:  q.Options,
			Defaults: current.LoveLanguages,
		})
		if err != nil {
			return err
		}
		return r.applyLoveLanguages(current.LoveLanguages, answers)
	}

	return fmt.Errorf("%w: unsupported question kind %q", entity.ErrInvalidFormat, q.Kind)
}

// applyLoveLanguages toggles every option whose selection changed
func (r *Runner) applyLoveLanguages(before, after []string) error {
	for _, option := range entity.LoveLanguageOptions {
		if slices.Contains(before, option) != slices.Contains(after, option) {
			if err := r.form.ToggleLoveLanguage(option); err != nil {
				return err
			}
		}
	}
	return nil
}

// submit retries only when the applicant asks to
func (r *Runner) submit(ctx context.Context) (bool, error) {
	for {
		if err := r.driver.Info(ctx, busyText); err != nil {
			return false, err
		}

		if err := r.form.Submit(ctx); err != nil && !errors.Is(err, entity.ErrSubmitInProgress) {
			return false, err
		}

		state := r.form.Snapshot()
		if state.Submitted() {
			return true, nil
		}

		ctxzap.Debug(ctx, "submit failed, asking applicant to retry", zap.String("error", state.Error))
		if err := r.driver.Info(ctx, state.Error); err != nil {
			return false, err
		}

		retry, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Try again?", Default: true})
		if err != nil || !retry {
			return false, err
		}
	}
}

func (r *Runner) askExtra(ctx context.Context) error {
	q := entity.ExtraQuestion
	notes, err := r.driver.TextArea(ctx, TextAreaConfig{Message: q.Label, Help: q.Placeholder})
	if err != nil {
		return err
	}
	return r.form.UpdateField(q.Field, notes)
}

func (r *Runner) info(ctx context.Context, lines ...string) error {
	for _, line := range lines {
		if err := r.driver.Info(ctx, line); err != nil {
			return err
		}
	}
	return nil
}

func requireNonBlank(s string) error {
	if strings.TrimSpace(s) == "" {
		return errors.New("this field is required")
	}
	return nil
}

func textValue(a entity.Application, field entity.Field) string {
	switch field {
	case entity.FieldName:
		return a.Name
	case entity.FieldDealbreaker:
		return a.Dealbreaker
	case entity.FieldVision:
		return a.Vision
	case entity.FieldExtra:
		return a.Extra
	}
	return ""
}

func choiceValue(a entity.Application, field entity.Field) string {
	switch field {
	case entity.FieldStatus:
		return a.Status
	case entity.FieldGoals:
		return a.Goals
	case entity.FieldWeekend:
		return a.Weekend
	}
	return ""
}
