package application

import (
	"github.com/futig/touchdown/internal/entity"
	"github.com/futig/touchdown/internal/form"
)

func toState(id string, s form.State) *entity.ApplicationState {
	state := &entity.ApplicationState{
		ID:             id,
		Phase:          s.Phase,
		Sending:        s.Sending(),
		Submitted:      s.Submitted(),
		Progress:       s.Progress,
		AnsweredCount:  s.AnsweredCount,
		TotalQuestions: entity.TotalQuestions,
		Error:          s.Error,
		Answers:        s.Answers,
	}
	if s.Submitted() {
		state.Notice = entity.ReviewNotice
	}
	return state
}
