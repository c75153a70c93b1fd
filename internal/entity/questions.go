package entity

import "slices"

// QuestionKind describes how a question is answered
type QuestionKind string

const (
	QuestionKindText     QuestionKind = "text"
	QuestionKindTextArea QuestionKind = "textarea"
	QuestionKindSingle   QuestionKind = "single"
	QuestionKindMulti    QuestionKind = "multi"
)

var (
	StatusOptions = []string{
		"Free Agent",
		"In a Relationship",
	}

	GoalOptions = []string{
		"Serious relationship",
		"Casual fun",
		"Let’s see where it goes",
		"Friends first",
		"Open to open",
	}

	WeekendOptions = []string{
		"Outdoors & brunch",
		"Gym + grocery + cuddle",
		"Netflix & chill (for real)",
		"City adventures",
		"Game night & takeout",
	}

	LoveLanguageOptions = []string{
		"Words of affirmation",
		"Quality time",
		"Acts of service",
		"Gifts",
		"Physical touch",
	}
)

// Question describes one prompt of the questionnaire
type Question struct {
	Field       Field        `json:"field"`
	Label       string       `json:"label"`
	Kind        QuestionKind `json:"kind"`
	Options     []string     `json:"options,omitempty"`
	Placeholder string       `json:"placeholder,omitempty"`
	Required    bool         `json:"required"`
}

var questions = []Question{
	{
		Field:       FieldName,
		Label:       "Your name",
		Kind:        QuestionKindText,
		Placeholder: "Enter your name",
		Required:    true,
	},
	{
		Field:   FieldStatus,
		Label:   "Are you in a relationship or a free agent?",
		Kind:    QuestionKindSingle,
		Options: StatusOptions,
	},
	{
		Field:   FieldGoals,
		Label:   "1) Game plan (relationship goals)",
		Kind:    QuestionKindSingle,
		Options: GoalOptions,
	},
	{
		Field:   FieldWeekend,
		Label:   "2) Weekend playbook",
		Kind:    QuestionKindSingle,
		Options: WeekendOptions,
	},
	{
		Field:   FieldLoveLanguages,
		Label:   "3) Love languages (your favorite plays)",
		Kind:    QuestionKindMulti,
		Options: LoveLanguageOptions,
	},
	{
		Field:       FieldDealbreaker,
		Label:       "4) Biggest flag on the play (dealbreaker)",
		Kind:        QuestionKindTextArea,
		Placeholder: "Example: poor communication, dishonesty, inconsistent effort, etc.",
	},
	{
		Field:       FieldVision,
		Label:       "5) Future season (2–3 year vision)",
		Kind:        QuestionKindTextArea,
		Placeholder: "Tell me about your goals, lifestyle, and what partnership looks like to you.",
	},
}

// ExtraQuestion is asked only after the application was submitted
var ExtraQuestion = Question{
	Field:       FieldExtra,
	Label:       "Is there anything else you would like to add?",
	Kind:        QuestionKindTextArea,
	Placeholder: "Write your extra thoughts here...",
}

// Questions returns the primary questions in display order
func Questions() []Question {
	out := make([]Question, len(questions))
	for i, q := range questions {
		q.Options = slices.Clone(q.Options)
		out[i] = q
	}
	return out
}

// LookupQuestion finds the question bound to field, including the extra notes question
func LookupQuestion(field Field) (Question, bool) {
	if field == FieldExtra {
		return ExtraQuestion, true
	}
	for _, q := range questions {
		if q.Field == field {
			return q, true
		}
	}
	return Question{}, false
}

// OptionsFor returns the fixed options of a choice field
func OptionsFor(field Field) []string {
	switch field {
	case FieldStatus:
		return StatusOptions
	case FieldGoals:
		return GoalOptions
	case FieldWeekend:
		return WeekendOptions
	case FieldLoveLanguages:
		return LoveLanguageOptions
	default:
		return nil
	}
}
