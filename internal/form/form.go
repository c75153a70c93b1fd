// Package form holds the state machine of one Touchdown application:
// draft -> sending -> submitted, with relay failures falling back to draft.
package form

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"

	"github.com/futig/touchdown/internal/entity"
	"github.com/futig/touchdown/internal/pkg/validator"
	pkghttp "github.com/futig/touchdown/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ApplicationForm owns the answers and lifecycle of a single applicant.
// It is safe for concurrent use; the lock is never held during the relay call.
type ApplicationForm struct {
	mu        sync.Mutex
	answers   entity.Application
	phase     entity.Phase
	errMsg    string
	relay     Relay
	validator *validator.Validator
}

// State is a point-in-time copy of the form
type State struct {
	Answers       entity.Application
	Phase         entity.Phase
	Error         string
	AnsweredCount int
	Progress      int
}

func (s State) Sending() bool   { return s.Phase == entity.PhaseSending }
func (s State) Submitted() bool { return s.Phase == entity.PhaseSubmitted }

func New(relay Relay, v *validator.Validator) *ApplicationForm {
	return &ApplicationForm{
		answers:   entity.Application{LoveLanguages: []string{}},
		phase:     entity.PhaseDraft,
		relay:     relay,
		validator: v,
	}
}

// UpdateField stores value verbatim in a free-text field
func (f *ApplicationForm) UpdateField(field entity.Field, value string) error {
	if err := f.validator.ValidateTextField(field); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if field == entity.FieldExtra {
		if f.phase != entity.PhaseSubmitted {
			return entity.ErrExtraNotAvailable
		}
		f.answers.Extra = value
		return nil
	}

	if f.phase == entity.PhaseSubmitted {
		return entity.ErrFormSubmitted
	}

	switch field {
	case entity.FieldName:
		f.answers.Name = value
	case entity.FieldDealbreaker:
		f.answers.Dealbreaker = value
	case entity.FieldVision:
		f.answers.Vision = value
	}
	return nil
}

// SelectSingle overwrites a single-choice field; there is no deselect
func (f *ApplicationForm) SelectSingle(field entity.Field, option string) error {
	if err := f.validator.ValidateSingleChoice(field, option); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase == entity.PhaseSubmitted {
		return entity.ErrFormSubmitted
	}

	switch field {
	case entity.FieldStatus:
		f.answers.Status = option
	case entity.FieldGoals:
		f.answers.Goals = option
	case entity.FieldWeekend:
		f.answers.Weekend = option
	}
	return nil
}

// ToggleLoveLanguage removes option when selected, appends it otherwise
func (f *ApplicationForm) ToggleLoveLanguage(option string) error {
	if err := f.validator.ValidateLoveLanguage(option); err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.phase == entity.PhaseSubmitted {
		return entity.ErrFormSubmitted
	}

	if i := slices.Index(f.answers.LoveLanguages, option); i >= 0 {
		f.answers.LoveLanguages = slices.Delete(f.answers.LoveLanguages, i, i+1)
	} else {
		f.answers.LoveLanguages = append(f.answers.LoveLanguages, option)
	}
	return nil
}

// AnsweredCount counts the non-empty primary fields
func (f *ApplicationForm) AnsweredCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return answeredCount(&f.answers)
}

// Progress is round(100 * answered / 7)
func (f *ApplicationForm) Progress() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return progress(answeredCount(&f.answers))
}

// Summary renders the text block sent as the payload summary
func (f *ApplicationForm) Summary() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return summary(&f.answers)
}

// Payload builds the relay body from the current answers
func (f *ApplicationForm) Payload() *entity.RelayPayload {
	f.mu.Lock()
	defer f.mu.Unlock()
	return payload(&f.answers)
}

func (f *ApplicationForm) Snapshot() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.snapshotLocked()
}

func (f *ApplicationForm) snapshotLocked() State {
	count := answeredCount(&f.answers)
	return State{
		Answers:       f.answers.Clone(),
		Phase:         f.phase,
		Error:         f.errMsg,
		AnsweredCount: count,
		Progress:      progress(count),
	}
}

// Submit sends the application once. Relay failures are recorded in the
// state and the form returns to draft; the returned error only reports a
// submit that was refused (already sending or already submitted).
func (f *ApplicationForm) Submit(ctx context.Context) error {
	f.mu.Lock()
	switch f.phase {
	case entity.PhaseSending:
		f.mu.Unlock()
		return entity.ErrSubmitInProgress
	case entity.PhaseSubmitted:
		f.mu.Unlock()
		return entity.ErrFormSubmitted
	}

	f.errMsg = ""

	if f.relay == nil || !f.relay.Configured() {
		f.phase = entity.PhaseSubmitted
		f.mu.Unlock()
		ctxzap.Info(ctx, "relay endpoint not configured, application accepted without sending")
		return nil
	}

	f.phase = entity.PhaseSending
	body := payload(&f.answers)
	f.mu.Unlock()

	err := f.relay.Send(ctx, body)

	f.mu.Lock()
	defer f.mu.Unlock()

	if err != nil {
		logSubmitFailure(ctx, err)
		f.errMsg = entity.SubmitFailedMessage
		f.phase = entity.PhaseDraft
		return nil
	}

	f.phase = entity.PhaseSubmitted
	ctxzap.Info(ctx, "application submitted", zap.String("applicant_name", body.ApplicantName))
	return nil
}

func logSubmitFailure(ctx context.Context, err error) {
	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		ctxzap.Error(ctx, "relay rejected application",
			zap.Int("status_code", httpErr.StatusCode),
			zap.String("response_body", httpErr.Message),
		)
		return
	}
	ctxzap.Error(ctx, "failed to reach relay", zap.Error(err))
}

func answeredCount(a *entity.Application) int {
	count := 0
	for _, s := range []string{a.Name, a.Status, a.Goals, a.Weekend, a.Dealbreaker, a.Vision} {
		if strings.TrimSpace(s) != "" {
			count++
		}
	}
	if len(a.LoveLanguages) > 0 {
		count++
	}
	return count
}

func progress(answered int) int {
	p := int(math.Round(float64(answered) / entity.TotalQuestions * 100))
	return min(max(p, 0), 100)
}

func summary(a *entity.Application) string {
	return fmt.Sprintf("Applicant: %s\nStatus: %s\n1) Relationship goals: %s\n2) Ideal weekend vibe: %s\n"+
		"3) Love languages: %s\n4) Biggest dealbreaker: %s\n5) 2–3 year vision: %s\nExtra notes: %s",
		a.Name, a.Status, a.Goals, a.Weekend,
		strings.Join(a.LoveLanguages, ", "), a.Dealbreaker, a.Vision, a.Extra)
}

// Extra notes are collected after submission, so the payload never carries them.
func payload(a *entity.Application) *entity.RelayPayload {
	return &entity.RelayPayload{
		Subject:       entity.RelaySubject,
		ApplicantName: a.Name,
		Status:        a.Status,
		Goals:         a.Goals,
		Weekend:       a.Weekend,
		LoveLanguages: strings.Join(a.LoveLanguages, ", "),
		Dealbreaker:   a.Dealbreaker,
		Vision:        a.Vision,
		Extra:         "",
		Summary:       summary(a),
	}
}
