package sentiment

import "testing"

func TestPatternAnalyzer_Scores(t *testing.T) {
	analyzer := NewPatternAnalyzer()

	tests := []struct {
		name        string
		text        string
		wantSign    int
		wantOpinion bool // subjectivity clearly above zero
	}{
		{name: "positive adjective", text: "a great result", wantSign: 1, wantOpinion: true},
		{name: "negative adjective", text: "a terrible result", wantSign: -1, wantOpinion: true},
		{name: "factual text", text: "the committee convenes on tuesday", wantSign: 0, wantOpinion: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scores := analyzer.Scores(tt.text)

			switch {
			case tt.wantSign > 0 && scores.Polarity <= 0:
				t.Errorf("Polarity = %.3f, want > 0", scores.Polarity)
			case tt.wantSign < 0 && scores.Polarity >= 0:
				t.Errorf("Polarity = %.3f, want < 0", scores.Polarity)
			case tt.wantSign == 0 && scores.Polarity != 0:
				t.Errorf("Polarity = %.3f, want 0", scores.Polarity)
			}

			if tt.wantOpinion && scores.Subjectivity <= 0 {
				t.Errorf("Subjectivity = %.3f, want > 0", scores.Subjectivity)
			}
			if !tt.wantOpinion && scores.Subjectivity != 0 {
				t.Errorf("Subjectivity = %.3f, want 0", scores.Subjectivity)
			}
		})
	}
}

func TestPatternAnalyzer_NegationFlips(t *testing.T) {
	analyzer := NewPatternAnalyzer()

	plain := analyzer.Scores("the idea is good").Polarity
	negated := analyzer.Scores("the idea is not good").Polarity

	if plain <= 0 {
		t.Fatalf("baseline polarity %.3f, want > 0", plain)
	}
	if negated >= 0 {
		t.Errorf("negated polarity = %.3f, want < 0", negated)
	}
}

func TestPatternAnalyzer_IntensifierScales(t *testing.T) {
	analyzer := NewPatternAnalyzer()

	plain := analyzer.Scores("a good result").Polarity
	intense := analyzer.Scores("a very good result").Polarity

	if intense <= plain {
		t.Errorf("intensified polarity %.3f not greater than plain %.3f", intense, plain)
	}
}

func TestPatternAnalyzer_Bounds(t *testing.T) {
	analyzer := NewPatternAnalyzer()

	scores := analyzer.Scores("extremely terrible absolutely awful really horrible")
	if scores.Polarity < -1 || scores.Polarity > 1 {
		t.Errorf("Polarity %.3f out of range", scores.Polarity)
	}
	if scores.Subjectivity < 0 || scores.Subjectivity > 1 {
		t.Errorf("Subjectivity %.3f out of range", scores.Subjectivity)
	}
}
