package models

// Label is the categorical sentiment classification of a post.
type Label string

const (
	LabelPositive Label = "positive"
	LabelNegative Label = "negative"
	LabelNeutral  Label = "neutral"
)

// Classification thresholds on the compound score.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// SentimentScore holds both sentiment estimates for a single post: the
// lexicon-based proportions plus compound, and the independent
// polarity/subjectivity pair.
type SentimentScore struct {
	PostID string `json:"post_id" db:"post_id"`

	// Lexicon method: Positive+Negative+Neutral sum to 1, Compound in [-1, 1].
	Compound float64 `json:"compound" db:"compound"`
	Positive float64 `json:"positive" db:"positive"`
	Negative float64 `json:"negative" db:"negative"`
	Neutral  float64 `json:"neutral" db:"neutral"`

	// Pattern method: Polarity in [-1, 1], Subjectivity in [0, 1].
	Polarity     float64 `json:"polarity" db:"polarity"`
	Subjectivity float64 `json:"subjectivity" db:"subjectivity"`

	Label Label `json:"label" db:"label"`
}

// ClassifyCompound maps a compound score to a categorical label.
func ClassifyCompound(compound float64) Label {
	switch {
	case compound >= PositiveThreshold:
		return LabelPositive
	case compound <= NegativeThreshold:
		return LabelNegative
	default:
		return LabelNeutral
	}
}
