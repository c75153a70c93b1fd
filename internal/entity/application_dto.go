package entity

// ApplicationState is the API view of one application form
type ApplicationState struct {
	ID             string      `json:"id"`
	Phase          Phase       `json:"phase"`
	Sending        bool        `json:"sending"`
	Submitted      bool        `json:"submitted"`
	Progress       int         `json:"progress"`
	AnsweredCount  int         `json:"answered_count"`
	TotalQuestions int         `json:"total_questions"`
	Error          string      `json:"error,omitempty"`
	Notice         string      `json:"notice,omitempty"`
	Answers        Application `json:"answers"`
}

// UpdateFieldRequest sets a free-text field
type UpdateFieldRequest struct {
	Value *string `json:"value"`
}

// SelectOptionRequest picks an option of a choice field
type SelectOptionRequest struct {
	Option string `json:"option"`
}

// QuestionsResponse lists the questionnaire
type QuestionsResponse struct {
	Questions []Question `json:"questions"`
	Extra     Question   `json:"extra"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
