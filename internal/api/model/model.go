package model

// Candidate is the persisted candidate record. Tags cover every backend the
// storage gateway can sit on.
type Candidate struct {
	ID          string  `json:"id" db:"id" dynamodbav:"id"`
	Fullname    string  `json:"fullname" db:"fullname" dynamodbav:"fullname"`
	Email       string  `json:"email" db:"email" dynamodbav:"email"`
	Experience  float64 `json:"experience" db:"experience" dynamodbav:"experience"`
	SubmittedAt int64   `json:"submittedAt" db:"submitted_at" dynamodbav:"submittedAt"`
	UpdatedAt   int64   `json:"updatedAt" db:"updated_at" dynamodbav:"updatedAt"`
}

// CandidateSummary is the projection returned by a table scan
type CandidateSummary struct {
	ID       string `json:"id" db:"id" dynamodbav:"id"`
	Fullname string `json:"fullname" db:"fullname" dynamodbav:"fullname"`
	Email    string `json:"email" db:"email" dynamodbav:"email"`
}

// Summary projects the record down to its listable fields
func (c *Candidate) Summary() CandidateSummary {
	return CandidateSummary{
		ID:       c.ID,
		Fullname: c.Fullname,
		Email:    c.Email,
	}
}
