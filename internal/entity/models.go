package entity

// Phase represents the lifecycle of a single application form
type Phase string

const (
	PhaseDraft     Phase = "draft"     // Fields editable, submit allowed
	PhaseSending   Phase = "sending"   // Relay request in flight
	PhaseSubmitted Phase = "submitted" // Questionnaire closed, extra notes open
)

// Field is the wire name of an application field
type Field string

const (
	FieldName          Field = "name"
	FieldStatus        Field = "status"
	FieldGoals         Field = "relationship_goals"
	FieldWeekend       Field = "weekend_vibe"
	FieldLoveLanguages Field = "love_languages"
	FieldDealbreaker   Field = "dealbreaker"
	FieldVision        Field = "future_vision"
	FieldExtra         Field = "extra"
)

// PrimaryFields are the fields counted by the progress indicator, in display order
var PrimaryFields = []Field{
	FieldName,
	FieldStatus,
	FieldGoals,
	FieldWeekend,
	FieldLoveLanguages,
	FieldDealbreaker,
	FieldVision,
}

// TotalQuestions is the number of primary fields
const TotalQuestions = 7

// Application holds the answers of one applicant
type Application struct {
	Name          string   `json:"name"`
	Status        string   `json:"status"`
	Goals         string   `json:"relationship_goals"`
	Weekend       string   `json:"weekend_vibe"`
	LoveLanguages []string `json:"love_languages"`
	Dealbreaker   string   `json:"dealbreaker"`
	Vision        string   `json:"future_vision"`
	Extra         string   `json:"extra"`
}

// Clone returns a deep copy of the application
func (a *Application) Clone() Application {
	clone := *a
	clone.LoveLanguages = append([]string(nil), a.LoveLanguages...)
	if clone.LoveLanguages == nil {
		clone.LoveLanguages = []string{}
	}
	return clone
}
