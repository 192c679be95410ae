package model

// MCQKey describes the answer key for one multiple-choice question.
type MCQKey struct {
	QuestionID string  `yaml:"question_id" json:"question_id"`
	Answer     string  `yaml:"answer" json:"answer"`
	Points     float64 `yaml:"points" json:"points"`
}

// MCQResponse is one client's answer to one question.
type MCQResponse struct {
	QuestionID string `yaml:"question_id" json:"question_id"`
	Answer     string `yaml:"answer" json:"answer"`
}
