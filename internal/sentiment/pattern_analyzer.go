package sentiment

import "strings"

// PatternScores is the alternative sentiment representation: valence plus how
// opinion-laden the text is.
type PatternScores struct {
	Polarity     float64 // [-1, 1]
	Subjectivity float64 // [0, 1]
}

type patternEntry struct {
	polarity     float64
	subjectivity float64
}

// Adjective-centric ratings in the pattern lexicon tradition: each entry is
// the mean polarity and subjectivity of human annotations.
var patternLexicon = map[string]patternEntry{
	"great": {0.8, 0.75}, "good": {0.7, 0.6}, "nice": {0.6, 1.0},
	"excellent": {1.0, 1.0}, "amazing": {0.6, 0.9}, "awesome": {1.0, 1.0},
	"wonderful": {1.0, 1.0}, "fantastic": {0.4, 0.9}, "best": {1.0, 0.3},
	"better": {0.5, 0.5}, "perfect": {1.0, 1.0}, "happy": {0.8, 1.0},
	"love": {0.5, 0.6}, "loved": {0.7, 0.8}, "hopeful": {0.3, 0.7},
	"strong": {0.4, 0.55}, "successful": {0.75, 0.95}, "effective": {0.6, 0.8},
	"fair": {0.7, 0.9}, "honest": {0.6, 0.9}, "safe": {0.5, 0.5},
	"proud": {0.8, 1.0}, "smart": {0.6, 0.9}, "promising": {0.4, 0.8},
	"popular": {0.4, 0.6}, "free": {0.4, 0.8}, "right": {0.3, 0.55},
	"important": {0.4, 1.0}, "glad": {0.5, 1.0},

	"bad": {-0.7, 0.65}, "terrible": {-1.0, 1.0}, "horrible": {-1.0, 1.0},
	"awful": {-1.0, 1.0}, "worst": {-1.0, 0.3}, "worse": {-0.5, 0.5},
	"sad": {-0.5, 1.0}, "angry": {-0.5, 1.0}, "afraid": {-0.6, 0.9},
	"unfair": {-0.5, 0.8}, "wrong": {-0.5, 0.55}, "weak": {-0.4, 0.55},
	"poor": {-0.4, 0.6}, "dangerous": {-0.6, 0.9}, "corrupt": {-0.8, 0.9},
	"broken": {-0.4, 0.5}, "failed": {-0.6, 0.7}, "failing": {-0.6, 0.7},
	"hate": {-0.8, 0.9}, "evil": {-1.0, 1.0}, "violent": {-0.8, 0.9},
	"illegal": {-0.5, 0.7}, "toxic": {-0.7, 0.8}, "disappointing": {-0.6, 0.8},
	"disastrous": {-0.9, 0.9}, "shameful": {-0.7, 0.9}, "hostile": {-0.6, 0.8},
	"scared": {-0.6, 0.9}, "worried": {-0.4, 0.8}, "dishonest": {-0.7, 0.9},
	"outrageous": {-0.8, 0.9}, "racist": {-0.9, 0.9},
}

// intensifiers scale the polarity and subjectivity of the word they precede.
var patternIntensifiers = map[string]float64{
	"very": 1.3, "really": 1.3, "extremely": 1.4, "absolutely": 1.4,
	"completely": 1.3, "totally": 1.3, "highly": 1.3, "incredibly": 1.4,
	"so": 1.2, "too": 1.2, "quite": 1.1,
	"slightly": 0.8, "somewhat": 0.8, "barely": 0.7, "hardly": 0.7,
	"kinda": 0.8, "rather": 0.9, "fairly": 0.9,
}

const patternNegationFactor = -0.5

// PatternAnalyzer computes polarity and subjectivity independently of the
// lexicon method. Stateless, safe for concurrent use.
type PatternAnalyzer struct {
	lexicon      map[string]patternEntry
	intensifiers map[string]float64
}

// NewPatternAnalyzer builds an analyzer over the embedded pattern lexicon.
func NewPatternAnalyzer() *PatternAnalyzer {
	return &PatternAnalyzer{
		lexicon:      patternLexicon,
		intensifiers: patternIntensifiers,
	}
}

// Scores averages the ratings of matched words, applying intensifier scaling
// and negation flips from the two preceding tokens. No matches yields the
// neutral (0, 0) pair.
func (a *PatternAnalyzer) Scores(text string) PatternScores {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return PatternScores{}
	}

	var polSum, subjSum float64
	matched := 0

	for i, tok := range tokens {
		entry, ok := a.lexicon[strings.ToLower(tok)]
		if !ok {
			continue
		}

		pol := entry.polarity
		subj := entry.subjectivity

		if i > 0 {
			if factor, ok := a.intensifiers[strings.ToLower(tokens[i-1])]; ok {
				pol *= factor
				subj *= factor
			}
		}
		if negatedWithin(tokens, i, 2) {
			pol *= patternNegationFactor
		}

		polSum += clamp(pol, -1, 1)
		subjSum += clamp(subj, 0, 1)
		matched++
	}

	if matched == 0 {
		return PatternScores{}
	}
	return PatternScores{
		Polarity:     polSum / float64(matched),
		Subjectivity: subjSum / float64(matched),
	}
}

// negatedWithin reports a negation word among the `window` tokens before i.
func negatedWithin(tokens []string, i, window int) bool {
	for j := i - 1; j >= 0 && j >= i-window; j-- {
		if _, ok := negationWords[strings.ToLower(tokens[j])]; ok {
			return true
		}
	}
	return false
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
