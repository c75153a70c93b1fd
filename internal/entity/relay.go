package entity

const (
	// RelaySubject is the subject line of every relayed application
	RelaySubject = "New Touchdown Application 🏈"

	// SubmitFailedMessage is shown to the applicant whenever the relay call fails
	SubmitFailedMessage = "Couldn't send email. Check your Formspree link and try again."

	// ReviewNotice is shown once the application was submitted
	ReviewNotice = "Your answer will be reviewed and you will receive a response in 5–7 business days."
)

// RelayPayload is the JSON body posted to the form relay
type RelayPayload struct {
	Subject       string `json:"_subject"`
	ApplicantName string `json:"applicant_name"`
	Status        string `json:"status"`
	Goals         string `json:"relationship_goals"`
	Weekend       string `json:"weekend_vibe"`
	LoveLanguages string `json:"love_languages"`
	Dealbreaker   string `json:"dealbreaker"`
	Vision        string `json:"future_vision"`
	Extra         string `json:"extra"`
	Summary       string `json:"summary"`
}
