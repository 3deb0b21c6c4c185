// Package pov classifies each paragraph's point of view from pronoun counts
// and walks the paragraph sequence with an explicit accumulator to flag
// shifts, head-hopping and mixed narration styles.
package pov

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"prosecraft/internal/finding"
	"prosecraft/internal/textindex"
)

const (
	First   = "first"
	Second  = "second"
	Third   = "third"
	Unknown = "unknown"
)

const excerptLimit = 150

var firstPersonPattern = regexp.MustCompile(`(?i)\b(i|me|my|mine|myself|we|us|our|ours|ourselves)\b`)
var secondPersonPattern = regexp.MustCompile(`(?i)\b(you|your|yours|yourself|yourselves)\b`)
var thirdPersonPattern = regexp.MustCompile(`(?i)\b(he|him|his|she|her|hers|they|them|their|theirs|himself|herself|themselves)\b`)

const thoughtVerbAlternation = `(thought|wondered|realized|knew|felt|remembered|believed)`

var thoughtVerbPattern = regexp.MustCompile(`(?i)\b` + thoughtVerbAlternation + `\b`)
var namedThoughtPattern = regexp.MustCompile(`\b([A-Z][a-z]+)\s+` + thoughtVerbAlternation + `\b`)

var deepPOVMarkers = []string{"felt like", "seemed to", "appeared to"}
var distantMarkers = []string{"the man", "the woman", "the person"}

// ParagraphPOV is the classification of one paragraph.
type ParagraphPOV struct {
	Ordinal     int    `json:"ordinal"`
	Start       int    `json:"start"`
	End         int    `json:"end"`
	POV         string `json:"pov"`
	FirstCount  int    `json:"firstCount"`
	SecondCount int    `json:"secondCount"`
	ThirdCount  int    `json:"thirdCount"`
}

type Analysis struct {
	DominantPOV           string            `json:"dominantPov"`
	ParagraphCount        int               `json:"paragraphCount"`
	ShiftCount            int               `json:"shiftCount"`
	PerspectiveCharacters map[string]int    `json:"perspectiveCharacters"`
	ConsistencyScore      int               `json:"consistencyScore"`
	Paragraphs            []ParagraphPOV    `json:"paragraphs"`
	Findings              []finding.Finding `json:"findings"`
	Recommendations       []string          `json:"recommendations"`
}

// Analyze classifies text paragraph by paragraph.
func Analyze(text string) Analysis {
	return FromIndex(textindex.Build(text))
}

// tracker is the fold state carried across paragraphs: the previous known
// classification plus everything accumulated so far.
type tracker struct {
	prev         string
	shifts       int
	firstTotal   int
	secondTotal  int
	thirdTotal   int
	perspectives map[string]int
	paragraphs   []ParagraphPOV
	findings     []finding.Finding
}

// FromIndex runs the classification over an existing paragraph index.
func FromIndex(ix *textindex.Index) Analysis {
	st := tracker{
		prev:         Unknown,
		perspectives: map[string]int{},
		paragraphs:   []ParagraphPOV{},
		findings:     []finding.Finding{},
	}
	for _, para := range ix.Paragraphs {
		st = st.observe(para)
	}

	a := Analysis{
		DominantPOV:           st.dominant(),
		ParagraphCount:        len(st.paragraphs),
		ShiftCount:            st.shifts,
		PerspectiveCharacters: st.perspectives,
		ConsistencyScore:      consistencyScore(st.findings),
		Paragraphs:            st.paragraphs,
		Findings:              st.findings,
	}
	a.Recommendations = recommendations(a)
	return a
}

func (st tracker) observe(para textindex.Token) tracker {
	fc := len(firstPersonPattern.FindAllString(para.Text, -1))
	sc := len(secondPersonPattern.FindAllString(para.Text, -1))
	tc := len(thirdPersonPattern.FindAllString(para.Text, -1))
	st.firstTotal += fc
	st.secondTotal += sc
	st.thirdTotal += tc

	cur := classify(fc, sc, tc)
	st.paragraphs = append(st.paragraphs, ParagraphPOV{
		Ordinal:     para.Ordinal,
		Start:       para.Start,
		End:         para.End,
		POV:         cur,
		FirstCount:  fc,
		SecondCount: sc,
		ThirdCount:  tc,
	})

	if st.prev != Unknown && cur != Unknown && st.prev != cur {
		st.shifts++
		st.findings = append(st.findings, finding.Finding{
			Category:    "shift",
			Start:       para.Start,
			End:         para.End,
			WordOrdinal: -1,
			Excerpt:     excerpt(para.Text),
			Description: fmt.Sprintf("Point of view shifts from %s person to %s person.", st.prev, cur),
			Severity:    finding.SeverityHigh,
		})
	}

	if cur == Third {
		st = st.checkHeadHopping(para)
		st = st.checkMixedStyle(para)
	}

	if cur != Unknown {
		st.prev = cur
	}
	return st
}

// checkHeadHopping flags third-person paragraphs where more than two internal
// thought verbs attach to two or more distinct character names.
func (st tracker) checkHeadHopping(para textindex.Token) tracker {
	if len(thoughtVerbPattern.FindAllString(para.Text, -1)) <= 2 {
		return st
	}
	names := map[string]struct{}{}
	for _, m := range namedThoughtPattern.FindAllStringSubmatch(para.Text, -1) {
		names[m[1]] = struct{}{}
	}
	if len(names) < 2 {
		return st
	}
	sorted := make([]string, 0, len(names))
	for n := range names {
		sorted = append(sorted, n)
		st.perspectives[n]++
	}
	sort.Strings(sorted)
	st.findings = append(st.findings, finding.Finding{
		Category:    "head-hopping",
		Start:       para.Start,
		End:         para.End,
		WordOrdinal: -1,
		Excerpt:     excerpt(para.Text),
		Description: fmt.Sprintf("Multiple characters' inner thoughts in one paragraph: %s.", strings.Join(sorted, ", ")),
		Severity:    finding.SeverityHigh,
	})
	return st
}

// checkMixedStyle flags paragraphs that mix deep-POV phrasing with distant
// narration labels.
func (st tracker) checkMixedStyle(para textindex.Token) tracker {
	lower := strings.ToLower(para.Text)
	if !containsAny(lower, deepPOVMarkers) || !containsAny(lower, distantMarkers) {
		return st
	}
	st.findings = append(st.findings, finding.Finding{
		Category:    "inconsistent",
		Start:       para.Start,
		End:         para.End,
		WordOrdinal: -1,
		Excerpt:     excerpt(para.Text),
		Description: "Deep point-of-view phrasing mixes with distant narration in the same paragraph.",
		Severity:    finding.SeverityMedium,
	})
	return st
}

// dominant applies the 60% share rule over global pronoun totals; third
// person splits into limited or omniscient by perspective-character count.
func (st tracker) dominant() string {
	total := st.firstTotal + st.secondTotal + st.thirdTotal
	if total == 0 {
		return Unknown
	}
	switch {
	case float64(st.firstTotal)/float64(total) > 0.6:
		return First
	case float64(st.secondTotal)/float64(total) > 0.6:
		return Second
	case float64(st.thirdTotal)/float64(total) > 0.6:
		if len(st.perspectives) > 1 {
			return "third-omniscient"
		}
		return "third-limited"
	default:
		return "mixed"
	}
}

// classify picks the strict plurality class; ties and zero counts are
// unknown, carried forward rather than discarded.
func classify(first, second, third int) string {
	switch {
	case first > second && first > third:
		return First
	case second > first && second > third:
		return Second
	case third > first && third > second:
		return Third
	default:
		return Unknown
	}
}

// consistencyScore starts at 100 and loses 15/8/3 points per high, medium and
// low severity finding, floored at zero.
func consistencyScore(findings []finding.Finding) int {
	score := 100
	for _, f := range findings {
		switch f.Severity {
		case finding.SeverityHigh:
			score -= 15
		case finding.SeverityMedium:
			score -= 8
		case finding.SeverityLow:
			score -= 3
		}
	}
	if score < 0 {
		score = 0
	}
	return score
}

func recommendations(a Analysis) []string {
	out := []string{}
	if a.ShiftCount > 2 {
		out = append(out, fmt.Sprintf("Point of view shifts %d times between paragraphs; hold one viewpoint per scene.", a.ShiftCount))
	}
	if len(a.PerspectiveCharacters) > 5 {
		out = append(out, fmt.Sprintf("%d characters receive interior access; most narratives sustain far fewer.", len(a.PerspectiveCharacters)))
	}
	if a.ConsistencyScore < 70 {
		out = append(out, fmt.Sprintf("POV consistency score is %d; review the flagged paragraphs before line edits.", a.ConsistencyScore))
	}
	return out
}

func excerpt(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) > excerptLimit {
		return text[:excerptLimit]
	}
	return text
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
