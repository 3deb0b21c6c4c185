// Package readability derives the four standard readability indices from a
// single tokenization pass. All formulas are fixed published arithmetic; only
// the syllable estimate is heuristic.
package readability

import (
	"fmt"
	"math"

	"prosecraft/internal/lexicon"
	"prosecraft/internal/textindex"
)

// wordsPerMinute is the average adult silent-reading rate used for the
// reading-time estimate.
const wordsPerMinute = 238

type Metrics struct {
	TotalWords              int      `json:"totalWords"`
	TotalSentences          int      `json:"totalSentences"`
	TotalSyllables          int      `json:"totalSyllables"`
	ComplexWords            int      `json:"complexWords"`
	AverageWordsPerSentence float64  `json:"averageWordsPerSentence"`
	AverageSyllablesPerWord float64  `json:"averageSyllablesPerWord"`
	PercentComplexWords     float64  `json:"percentComplexWords"`
	FleschReadingEase       float64  `json:"fleschReadingEase"`
	FleschKincaidGrade      float64  `json:"fleschKincaidGrade"`
	GunningFog              float64  `json:"gunningFog"`
	SMOGIndex               float64  `json:"smogIndex"`
	ReadingLevel            string   `json:"readingLevel"`
	ReadingTimeMinutes      int      `json:"readingTimeMinutes"`
	ReadingTimeDisplay      string   `json:"readingTimeDisplay"`
	Recommendations         []string `json:"recommendations"`
}

// Analyze tokenizes text and computes the full metrics record.
func Analyze(text string) Metrics {
	return FromIndex(textindex.Build(text))
}

// FromIndex computes metrics from an existing index, letting the engine share
// one tokenization pass across analyzers.
func FromIndex(ix *textindex.Index) Metrics {
	m := Metrics{
		TotalWords:      len(ix.Words),
		TotalSentences:  len(ix.Sentences),
		ReadingLevel:    "N/A",
		Recommendations: []string{},
	}
	if m.TotalWords == 0 || m.TotalSentences == 0 {
		m.ReadingTimeDisplay = "< 1 min"
		return m
	}

	for _, w := range ix.Words {
		s := lexicon.Syllables(w.Text)
		m.TotalSyllables += s
		if s >= 3 {
			m.ComplexWords++
		}
	}

	words := float64(m.TotalWords)
	sentences := float64(m.TotalSentences)
	m.AverageWordsPerSentence = words / sentences
	m.AverageSyllablesPerWord = float64(m.TotalSyllables) / words
	m.PercentComplexWords = float64(m.ComplexWords) / words * 100

	m.FleschReadingEase = 206.835 - 1.015*m.AverageWordsPerSentence - 84.6*m.AverageSyllablesPerWord
	m.FleschKincaidGrade = 0.39*m.AverageWordsPerSentence + 11.8*m.AverageSyllablesPerWord - 15.59
	m.GunningFog = 0.4 * (m.AverageWordsPerSentence + m.PercentComplexWords)
	m.SMOGIndex = 1.0430*math.Sqrt(float64(m.ComplexWords)*(30.0/sentences)) + 3.1291

	m.ReadingLevel = readingLevel(m.FleschReadingEase)
	m.ReadingTimeMinutes = int(math.Ceil(words / wordsPerMinute))
	if m.TotalWords < wordsPerMinute {
		m.ReadingTimeDisplay = "< 1 min"
	} else {
		m.ReadingTimeDisplay = fmt.Sprintf("%d min", m.ReadingTimeMinutes)
	}

	m.Recommendations = recommendations(m)
	return m
}

// readingLevel buckets Flesch Reading Ease into a qualitative grade band.
func readingLevel(fre float64) string {
	switch {
	case fre >= 90:
		return "5th grade"
	case fre >= 80:
		return "6th grade"
	case fre >= 70:
		return "7th grade"
	case fre >= 60:
		return "8th-9th grade"
	case fre >= 50:
		return "10th-12th grade"
	case fre >= 30:
		return "College"
	default:
		return "College graduate"
	}
}

func recommendations(m Metrics) []string {
	out := []string{}
	if m.AverageWordsPerSentence > 25 {
		out = append(out, fmt.Sprintf("Average sentence runs %.1f words; consider splitting longer sentences.", m.AverageWordsPerSentence))
	}
	if m.PercentComplexWords > 20 {
		out = append(out, fmt.Sprintf("%.1f%% of words have three or more syllables; simpler vocabulary would ease reading.", m.PercentComplexWords))
	}
	if m.FleschReadingEase < 50 {
		out = append(out, fmt.Sprintf("Flesch Reading Ease is %.1f; most adult fiction sits between 70 and 90.", m.FleschReadingEase))
	}
	if m.FleschKincaidGrade > 12 {
		out = append(out, fmt.Sprintf("Flesch-Kincaid grade %.1f exceeds a high-school reading level.", m.FleschKincaidGrade))
	}
	return out
}
