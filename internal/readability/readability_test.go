package readability

import (
	"math"
	"strings"
	"testing"
)

func TestCatSatBaseline(t *testing.T) {
	m := Analyze("The cat sat. The cat sat. The cat sat.")
	if m.TotalWords != 9 {
		t.Fatalf("expected 9 words, got %d", m.TotalWords)
	}
	if m.TotalSentences != 3 {
		t.Fatalf("expected 3 sentences, got %d", m.TotalSentences)
	}
	if m.TotalSyllables != 9 {
		t.Fatalf("expected 9 syllables, got %d", m.TotalSyllables)
	}
	if m.ComplexWords != 0 {
		t.Fatalf("expected no complex words, got %d", m.ComplexWords)
	}
	if m.AverageWordsPerSentence != 3 {
		t.Fatalf("expected average 3 words per sentence, got %f", m.AverageWordsPerSentence)
	}
	want := 206.835 - 1.015*3 - 84.6*1
	if math.Abs(m.FleschReadingEase-want) > 1e-9 {
		t.Fatalf("FRE = %f, want %f", m.FleschReadingEase, want)
	}
	if m.ReadingLevel != "5th grade" {
		t.Fatalf("expected 5th grade, got %q", m.ReadingLevel)
	}
	if m.ReadingTimeDisplay != "< 1 min" {
		t.Fatalf("expected sub-minute reading time, got %q", m.ReadingTimeDisplay)
	}
}

func TestEmptyInputDefaults(t *testing.T) {
	m := Analyze("")
	if m.TotalWords != 0 || m.TotalSentences != 0 {
		t.Fatalf("expected zero counts, got %d/%d", m.TotalWords, m.TotalSentences)
	}
	if m.ReadingLevel != "N/A" {
		t.Fatalf("expected N/A level, got %q", m.ReadingLevel)
	}
	if m.ReadingTimeDisplay != "< 1 min" {
		t.Fatalf("expected < 1 min, got %q", m.ReadingTimeDisplay)
	}
	if m.Recommendations == nil || len(m.Recommendations) != 0 {
		t.Fatalf("expected empty recommendation list, got %v", m.Recommendations)
	}
}

func TestReadingTimeRoundsUp(t *testing.T) {
	text := strings.Repeat("word ", 239)
	m := Analyze(text)
	if m.ReadingTimeMinutes != 2 {
		t.Fatalf("239 words should round up to 2 minutes, got %d", m.ReadingTimeMinutes)
	}
	if m.ReadingTimeDisplay != "2 min" {
		t.Fatalf("unexpected display %q", m.ReadingTimeDisplay)
	}
}

func TestComplexProseRecommendations(t *testing.T) {
	sentence := strings.Repeat("extraordinary complicated meandering deliberation ", 7)
	m := Analyze(sentence + ".")
	if m.PercentComplexWords <= 20 {
		t.Fatalf("expected heavily complex prose, got %.1f%%", m.PercentComplexWords)
	}
	if len(m.Recommendations) == 0 {
		t.Fatalf("expected recommendations for dense prose")
	}
}

func TestIdempotent(t *testing.T) {
	text := "She opened the letter slowly. The news inside changed everything she believed."
	a := Analyze(text)
	b := Analyze(text)
	if a.FleschReadingEase != b.FleschReadingEase || a.TotalSyllables != b.TotalSyllables {
		t.Fatalf("repeated analysis diverged: %+v vs %+v", a, b)
	}
}
