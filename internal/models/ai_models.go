package models

// Confidence levels assigned by the LLM to indicate data-coverage sufficiency.
// The backend only validates and passes them through.
const (
	ConfidenceHigh   = "high"
	ConfidenceMedium = "medium"
	ConfidenceLow    = "low"
)

// AskRequest is the /ask request body. Language is optional; when set to a
// non-English language the answer is requested in that language.
type AskRequest struct {
	Question  string `json:"question" binding:"required"`
	TimeRange string `json:"time_range"`
	Language  string `json:"language"`
}

// NumberUsed is one metric the LLM cited in its answer.
type NumberUsed struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AIResponse is the structured answer returned by the LLM, validated against
// a fixed schema before being returned to the caller.
type AIResponse struct {
	Summary            string       `json:"summary"`
	Risks              []string     `json:"risks"`
	Opportunities      []string     `json:"opportunities"`
	Actions            []string     `json:"actions"`
	NumbersUsed        []NumberUsed `json:"numbers_used"`
	Confidence         string       `json:"confidence"`
	EnglishTranslation *AIResponse  `json:"english_translation,omitempty"`
}
