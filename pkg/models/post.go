package models

import "time"

// Post is a single ingested social media post. Cleaning happens upstream;
// CleanedText is what the scoring pipeline consumes.
type Post struct {
	ID          string    `json:"id" db:"id"`
	Text        string    `json:"text" db:"text"`
	CleanedText string    `json:"cleaned_text" db:"cleaned_text"`
	Timestamp   time.Time `json:"timestamp" db:"posted_at"`
	AuthorID    string    `json:"author_id" db:"author_id"`
}

// EnrichedPost is a post augmented with sentiment scores and topic membership,
// ready for persistence and downstream visualization.
type EnrichedPost struct {
	Post
	Sentiment SentimentScore `json:"sentiment"`
	Topics    []string       `json:"topics"`
}

// HasTopic reports whether the post was assigned the given topic.
func (p *EnrichedPost) HasTopic(topic string) bool {
	for _, t := range p.Topics {
		if t == topic {
			return true
		}
	}
	return false
}
