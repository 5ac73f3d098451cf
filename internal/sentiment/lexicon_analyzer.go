package sentiment

import (
	"math"
	"strings"

	"github.com/gonum/floats"
)

const (
	// empirically derived emphasis constants from the VADER paper
	capsIncr      = 0.733
	negationCoeff = -0.74
	normAlpha     = 15.0

	exclamationIncr = 0.292
	questionIncr    = 0.18
	questionCap     = 0.96
)

// LexiconScores are the four related values of the lexicon method. The three
// proportions sum to 1, Compound saturates into [-1, 1].
type LexiconScores struct {
	Positive float64
	Negative float64
	Neutral  float64
	Compound float64
}

// LexiconAnalyzer scores text against the embedded valence lexicon with
// booster, negation, contrast and emphasis rules. It holds no mutable state
// and may be shared across goroutines.
type LexiconAnalyzer struct {
	lexicon  map[string]float64
	boosters map[string]float64
}

// NewLexiconAnalyzer builds an analyzer over the embedded lexicon.
func NewLexiconAnalyzer() *LexiconAnalyzer {
	return &LexiconAnalyzer{
		lexicon:  valenceLexicon,
		boosters: boosterWords,
	}
}

// Scores computes the pos/neg/neu proportions and compound score for text.
// Text with no tokens, or no lexicon hits, comes back fully neutral.
func (a *LexiconAnalyzer) Scores(text string) LexiconScores {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return LexiconScores{Neutral: 1}
	}

	capDiff := allCapsDifferential(tokens)

	sentiments := make([]float64, 0, len(tokens))
	for i, tok := range tokens {
		lower := strings.ToLower(tok)

		// boosters carry no valence of their own
		if _, ok := a.boosters[lower]; ok {
			sentiments = append(sentiments, 0)
			continue
		}
		sentiments = append(sentiments, a.tokenValence(tokens, i, capDiff))
	}

	sentiments = contrastCheck(tokens, sentiments)
	return a.scoreValence(sentiments, text)
}

// tokenValence resolves one token's valence including the influence of up to
// three preceding tokens.
func (a *LexiconAnalyzer) tokenValence(tokens []string, i int, capDiff bool) float64 {
	lower := strings.ToLower(tokens[i])
	valence, ok := a.lexicon[lower]
	if !ok {
		return 0
	}

	if isAllCaps(tokens[i]) && capDiff {
		if valence > 0 {
			valence += capsIncr
		} else {
			valence -= capsIncr
		}
	}

	for dist := 0; dist < 3; dist++ {
		j := i - (dist + 1)
		if j < 0 {
			break
		}
		prev := tokens[j]
		prevLower := strings.ToLower(prev)
		if _, inLexicon := a.lexicon[prevLower]; inLexicon {
			continue
		}

		if scalar := a.boosterScalar(prev, valence, capDiff); scalar != 0 {
			// dampen boosters further away from the sentiment word
			switch dist {
			case 1:
				scalar *= 0.95
			case 2:
				scalar *= 0.9
			}
			valence += scalar
		}

		if _, negates := negationWords[prevLower]; negates {
			valence *= negationCoeff
		}
	}

	return valence
}

// boosterScalar returns the intensity adjustment contributed by a booster
// word, signed to match the valence it modifies.
func (a *LexiconAnalyzer) boosterScalar(word string, valence float64, capDiff bool) float64 {
	scalar, ok := a.boosters[strings.ToLower(word)]
	if !ok {
		return 0
	}
	if valence < 0 {
		scalar = -scalar
	}
	if isAllCaps(word) && capDiff {
		if valence > 0 {
			scalar += capsIncr
		} else {
			scalar -= capsIncr
		}
	}
	return scalar
}

// contrastCheck re-weights sentiments around a contrastive "but": clauses
// after the conjunction dominate.
func contrastCheck(tokens []string, sentiments []float64) []float64 {
	for bi, tok := range tokens {
		if strings.ToLower(tok) != "but" {
			continue
		}
		for si := range sentiments {
			if si < bi {
				sentiments[si] *= 0.5
			} else if si > bi {
				sentiments[si] *= 1.5
			}
		}
	}
	return sentiments
}

func (a *LexiconAnalyzer) scoreValence(sentiments []float64, text string) LexiconScores {
	if len(sentiments) == 0 {
		return LexiconScores{Neutral: 1}
	}

	sum := floats.Sum(sentiments)
	emphasis := punctuationEmphasis(text)
	if sum > 0 {
		sum += emphasis
	} else if sum < 0 {
		sum -= emphasis
	}
	compound := normalize(sum)

	var posSum, negSum float64
	var neuCount int
	for _, s := range sentiments {
		switch {
		case s > 0:
			posSum += s + 1 // +1 balances neutral tokens counted as 1
		case s < 0:
			negSum += s - 1
		default:
			neuCount++
		}
	}

	if posSum > math.Abs(negSum) {
		posSum += emphasis
	} else if posSum < math.Abs(negSum) {
		negSum -= emphasis
	}

	total := posSum + math.Abs(negSum) + float64(neuCount)
	if total == 0 {
		return LexiconScores{Neutral: 1}
	}

	return LexiconScores{
		Positive: math.Abs(posSum / total),
		Negative: math.Abs(negSum / total),
		Neutral:  math.Abs(float64(neuCount) / total),
		Compound: compound,
	}
}

// normalize maps an unbounded valence sum into [-1, 1], saturating at the
// extremes instead of clipping.
func normalize(score float64) float64 {
	norm := score / math.Sqrt(score*score+normAlpha)
	if norm < -1 {
		return -1
	}
	if norm > 1 {
		return 1
	}
	return norm
}

// punctuationEmphasis adds intensity for exclamation points (up to 4) and
// repeated question marks.
func punctuationEmphasis(text string) float64 {
	ep := strings.Count(text, "!")
	if ep > 4 {
		ep = 4
	}
	amplifier := float64(ep) * exclamationIncr

	qm := strings.Count(text, "?")
	if qm > 1 {
		if qm <= 3 {
			amplifier += float64(qm) * questionIncr
		} else {
			amplifier += questionCap
		}
	}
	return amplifier
}

// tokenize splits on whitespace and strips leading/trailing punctuation,
// keeping contractions intact. Single-character fragments are dropped.
func tokenize(text string) []string {
	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,!?;:\"()[]")
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func isAllCaps(word string) bool {
	hasLetter := false
	for _, r := range word {
		if r >= 'a' && r <= 'z' {
			return false
		}
		if r >= 'A' && r <= 'Z' {
			hasLetter = true
		}
	}
	return hasLetter
}

// allCapsDifferential reports whether some but not all tokens are ALL CAPS,
// which is when capitalization carries emphasis.
func allCapsDifferential(tokens []string) bool {
	caps := 0
	for _, t := range tokens {
		if isAllCaps(t) {
			caps++
		}
	}
	return caps > 0 && caps < len(tokens)
}
