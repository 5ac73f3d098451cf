package sentiment

import (
	"strings"

	"github.com/PSchramm12/ACM-Project/pkg/models"
)

// Scorer combines the two independent sentiment methods into one score record
// per post. Scoring never fails: malformed or empty text produces the neutral
// identity score rather than aborting a batch.
type Scorer struct {
	lexicon *LexiconAnalyzer
	pattern *PatternAnalyzer
}

// NewScorer creates a scorer with both analyzers ready.
func NewScorer() *Scorer {
	return &Scorer{
		lexicon: NewLexiconAnalyzer(),
		pattern: NewPatternAnalyzer(),
	}
}

// Score computes the full sentiment record for one post's cleaned text.
// Safe to call concurrently.
func (s *Scorer) Score(postID, cleanedText string) models.SentimentScore {
	if strings.TrimSpace(cleanedText) == "" {
		return neutralScore(postID)
	}

	lex := s.lexicon.Scores(cleanedText)
	pat := s.pattern.Scores(cleanedText)

	return models.SentimentScore{
		PostID:       postID,
		Compound:     lex.Compound,
		Positive:     lex.Positive,
		Negative:     lex.Negative,
		Neutral:      lex.Neutral,
		Polarity:     pat.Polarity,
		Subjectivity: pat.Subjectivity,
		Label:        models.ClassifyCompound(lex.Compound),
	}
}

// neutralScore is the identity score: neu carries the full proportion mass.
func neutralScore(postID string) models.SentimentScore {
	return models.SentimentScore{
		PostID:  postID,
		Neutral: 1,
		Label:   models.LabelNeutral,
	}
}
