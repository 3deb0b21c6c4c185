package beats

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"prosecraft/internal/finding"
	"prosecraft/internal/textindex"
)

// Frozen scoring constants. Changing any of these rebaselines the detector.
const (
	searchWindowPercent = 10  // half-width of the search window, percent of total words
	contextRadius       = 50  // words of context on each side of a candidate position
	keywordScore        = 10  // base score per keyword match
	proximityCeiling    = 10  // maximum proximity bonus per match
	confidenceFactor    = 2   // confidence = min(100, score*confidenceFactor)
	deviationThreshold  = 15  // percentage points of expected/actual drift worth flagging
	actOneBoundary      = 25  // percent; default Act 1 / Act 2 split
	actTwoBoundary      = 75  // percent; default Act 2 / Act 3 split
)

// BeatResult is one located beat. WordOrdinal indexes the best-scoring word
// position; Start/End are its offsets in the source.
type BeatResult struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	ExpectedPercent float64 `json:"expectedPercent"`
	ActualPercent   float64 `json:"actualPercent"`
	WordOrdinal     int     `json:"wordOrdinal"`
	Start           int     `json:"start"`
	End             int     `json:"end"`
	Confidence      float64 `json:"confidence"`
	Excerpt         string  `json:"excerpt"`
}

// ActStats reports how the manuscript's words distribute across the three
// acts implied by the detected structure.
type ActStats struct {
	Name           string  `json:"name"`
	Words          int     `json:"words"`
	PercentOfTotal float64 `json:"percentOfTotal"`
}

type Analysis struct {
	Template        string            `json:"template"`
	TotalWords      int               `json:"totalWords"`
	Beats           []BeatResult      `json:"beats"`
	Acts            []ActStats        `json:"acts"`
	Findings        []finding.Finding `json:"findings"`
	Recommendations []string          `json:"recommendations"`
}

// Analyze locates the template's beats in text.
func Analyze(text string, tpl Template) Analysis {
	return FromIndex(textindex.Build(text), tpl)
}

// FromIndex runs the positional keyword search over an existing word index.
// A beat that never scores above zero is omitted; templates need not be fully
// realized.
func FromIndex(ix *textindex.Index, tpl Template) Analysis {
	out := Analysis{
		Template:        tpl.Name,
		TotalWords:      len(ix.Words),
		Beats:           []BeatResult{},
		Acts:            []ActStats{},
		Findings:        []finding.Finding{},
		Recommendations: []string{},
	}
	total := len(ix.Words)
	if total == 0 {
		return out
	}

	lower := make([]string, total)
	for i, w := range ix.Words {
		lower[i] = strings.ToLower(w.Text)
	}

	for _, def := range tpl.Beats {
		expected := def.ExpectedPercent / 100 * float64(total)
		window := total * searchWindowPercent / 100
		lo := int(expected) - window
		if lo < 0 {
			lo = 0
		}
		hi := int(expected) + window
		if hi > total-1 {
			hi = total - 1
		}

		bestScore := 0.0
		bestPos := -1
		for pos := lo; pos <= hi; pos++ {
			score := scorePosition(lower, pos, expected, total, def.Keywords)
			if score > bestScore {
				bestScore = score
				bestPos = pos
			}
		}
		if bestScore <= 0 || bestPos < 0 {
			continue
		}

		word := ix.Words[bestPos]
		br := BeatResult{
			Name:            def.Name,
			Description:     def.Description,
			ExpectedPercent: def.ExpectedPercent,
			ActualPercent:   float64(bestPos) / float64(total) * 100,
			WordOrdinal:     bestPos,
			Start:           word.Start,
			End:             word.End,
			Confidence:      math.Min(100, bestScore*confidenceFactor),
			Excerpt:         ix.Excerpt(word.Start, word.End, 80),
		}
		out.Beats = append(out.Beats, br)
		out.Findings = append(out.Findings, finding.Finding{
			Category:    "beat",
			Start:       br.Start,
			End:         br.End,
			WordOrdinal: br.WordOrdinal,
			Excerpt:     br.Excerpt,
			Description: fmt.Sprintf("%s near %.1f%% (expected %.0f%%)", br.Name, br.ActualPercent, br.ExpectedPercent),
			Confidence:  br.Confidence,
		})
	}

	sort.Slice(out.Beats, func(i, j int) bool { return out.Beats[i].WordOrdinal < out.Beats[j].WordOrdinal })
	sort.Slice(out.Findings, func(i, j int) bool { return out.Findings[i].WordOrdinal < out.Findings[j].WordOrdinal })

	out.Acts = actStats(out.Beats, total)
	out.Recommendations = recommendations(tpl, out)
	return out
}

// scorePosition scores a candidate word position: +10 per keyword present in
// the surrounding ±50-word context, plus a proximity bonus that decays with
// distance from the expected position.
func scorePosition(lower []string, pos int, expected float64, total int, keywords []string) float64 {
	lo := pos - contextRadius
	if lo < 0 {
		lo = 0
	}
	hi := pos + contextRadius
	if hi > len(lower) {
		hi = len(lower)
	}
	context := strings.Join(lower[lo:hi], " ")

	distance := math.Abs(float64(pos) - expected)
	bonus := proximityCeiling - distance/float64(total)*100
	if bonus < 0 {
		bonus = 0
	}

	score := 0.0
	for _, kw := range keywords {
		if strings.Contains(context, kw) {
			score += keywordScore + bonus
		}
	}
	return score
}

// actStats splits the word count at the detected beats closest to the 25% and
// 75% expected positions, falling back to the fixed boundaries when those
// beats are missing.
func actStats(found []BeatResult, total int) []ActStats {
	b1 := float64(actOneBoundary)
	b2 := float64(actTwoBoundary)
	if beat, ok := nearestExpected(found, actOneBoundary); ok {
		b1 = beat.ActualPercent
	}
	if beat, ok := nearestExpected(found, actTwoBoundary); ok {
		b2 = beat.ActualPercent
	}
	if b2 < b1 {
		b2 = b1
	}

	act1 := int(b1 / 100 * float64(total))
	act2 := int(b2/100*float64(total)) - act1
	act3 := total - act1 - act2
	stats := []ActStats{
		{Name: "Act 1", Words: act1},
		{Name: "Act 2", Words: act2},
		{Name: "Act 3", Words: act3},
	}
	for i := range stats {
		stats[i].PercentOfTotal = float64(stats[i].Words) / float64(total) * 100
	}
	return stats
}

// nearestExpected picks the detected beat whose expected position sits within
// the deviation threshold of the target percentage.
func nearestExpected(found []BeatResult, target float64) (BeatResult, bool) {
	best := BeatResult{}
	bestDist := math.MaxFloat64
	for _, b := range found {
		d := math.Abs(b.ExpectedPercent - target)
		if d < bestDist {
			bestDist = d
			best = b
		}
	}
	return best, bestDist <= deviationThreshold
}

func recommendations(tpl Template, a Analysis) []string {
	out := []string{}
	if len(a.Beats)*2 < len(tpl.Beats) {
		out = append(out, fmt.Sprintf("Structure unclear: only %d of %d %s beats were located.", len(a.Beats), len(tpl.Beats), tpl.Name))
	}
	for _, b := range a.Beats {
		if math.Abs(b.ActualPercent-b.ExpectedPercent) > deviationThreshold {
			out = append(out, fmt.Sprintf("%s lands at %.1f%% but is expected near %.0f%%.", b.Name, b.ActualPercent, b.ExpectedPercent))
		}
	}
	if len(a.Acts) == 3 {
		if a.Acts[0].PercentOfTotal > 30 {
			out = append(out, fmt.Sprintf("Act 1 spans %.0f%% of the manuscript; over 30%% usually means a slow setup.", a.Acts[0].PercentOfTotal))
		}
		if a.Acts[1].PercentOfTotal < 40 {
			out = append(out, fmt.Sprintf("Act 2 covers only %.0f%%; under 40%% leaves the middle underdeveloped.", a.Acts[1].PercentOfTotal))
		}
	}
	return out
}
