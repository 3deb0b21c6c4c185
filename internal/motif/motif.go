// Package motif surfaces recurring language: literal symbol mentions checked
// against a symbolism dictionary, thematic keyword clusters, and repeated
// 3- to 5-word phrases.
package motif

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"prosecraft/internal/lexicon"
	"prosecraft/internal/textindex"
)

const (
	minPhraseLen        = 3 // n-gram window sizes run minPhraseLen..maxPhraseLen
	maxPhraseLen        = 5
	minPhraseCount      = 3 // repetitions before a phrase counts as a motif
	maxPhraseMotifs     = 20
	minSymbolCount      = 2 // mentions before a symbol counts as a motif
	minThemeCount       = 5 // keyword hits before a theme counts as a motif
	maxThemeOccurrences = 10
	symbolContextPad    = 100 // bytes of context kept around a symbol mention
	themeContextPad     = 80  // bytes of context kept around a theme keyword
	shortWordLen        = 2   // n-gram windows containing words this short are skipped
)

const (
	CategorySymbol = "symbol"
	CategoryTheme  = "theme"
	CategoryPhrase = "phrase"
	CategoryImage  = "image"
)

// symbolPatterns holds one compiled whole-word pattern per dictionary symbol.
var symbolPatterns = func() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(lexicon.Symbols))
	for _, s := range lexicon.Symbols {
		out[s.Symbol] = regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(s.Symbol) + `\b`)
	}
	return out
}()

// themePatterns holds one alternation pattern per theme group covering all of
// its keywords.
var themePatterns = func() map[string]*regexp.Regexp {
	out := make(map[string]*regexp.Regexp, len(lexicon.Themes))
	for _, g := range lexicon.Themes {
		quoted := make([]string, len(g.Keywords))
		for i, kw := range g.Keywords {
			quoted[i] = regexp.QuoteMeta(kw)
		}
		out[g.Name] = regexp.MustCompile(`(?i)\b(` + strings.Join(quoted, "|") + `)\b`)
	}
	return out
}()

// Occurrence is one located instance of a motif. Chapter is 1-based, 0 when
// the mention precedes any chapter heading.
type Occurrence struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Chapter int    `json:"chapter"`
	Context string `json:"context"`
}

// Motif is one recurring element with every location it was seen at.
type Motif struct {
	Category     string       `json:"category"`
	Name         string       `json:"name"`
	Count        int          `json:"count"`
	Significance string       `json:"significance,omitempty"`
	Occurrences  []Occurrence `json:"occurrences"`
}

type Analysis struct {
	Motifs          []Motif  `json:"motifs"`
	SymbolCount     int      `json:"symbolCount"`
	ThemeCount      int      `json:"themeCount"`
	PhraseCount     int      `json:"phraseCount"`
	Recommendations []string `json:"recommendations"`
}

// Analyze tokenizes text and extracts symbols, themes and repeated phrases.
func Analyze(text string) Analysis {
	return FromIndex(textindex.Build(text))
}

// FromIndex extracts motifs from an existing index. Motifs are ordered by
// occurrence count, most frequent first.
func FromIndex(ix *textindex.Index) Analysis {
	out := Analysis{
		Motifs:          []Motif{},
		Recommendations: []string{},
	}

	symbols := scanSymbols(ix)
	themes := scanThemes(ix)
	phrases := scanPhrases(ix)
	out.SymbolCount = len(symbols)
	out.ThemeCount = len(themes)
	out.PhraseCount = len(phrases)

	out.Motifs = append(out.Motifs, symbols...)
	out.Motifs = append(out.Motifs, themes...)
	out.Motifs = append(out.Motifs, phrases...)
	sort.SliceStable(out.Motifs, func(i, j int) bool {
		if out.Motifs[i].Count != out.Motifs[j].Count {
			return out.Motifs[i].Count > out.Motifs[j].Count
		}
		return out.Motifs[i].Name < out.Motifs[j].Name
	})

	out.Recommendations = recommendations(phrases, symbols)
	return out
}

// scanSymbols matches each dictionary symbol as a whole word and keeps those
// mentioned at least twice, attaching the dictionary meanings as significance.
func scanSymbols(ix *textindex.Index) []Motif {
	out := []Motif{}
	for _, entry := range lexicon.Symbols {
		locs := symbolPatterns[entry.Symbol].FindAllStringIndex(ix.Text, -1)
		if len(locs) < minSymbolCount {
			continue
		}
		m := Motif{
			Category:     CategorySymbol,
			Name:         entry.Symbol,
			Count:        len(locs),
			Significance: strings.Join(entry.Meanings, ", "),
			Occurrences:  make([]Occurrence, 0, len(locs)),
		}
		for _, loc := range locs {
			m.Occurrences = append(m.Occurrences, Occurrence{
				Start:   loc[0],
				End:     loc[1],
				Chapter: ix.ChapterAt(loc[0]),
				Context: ix.Excerpt(loc[0], loc[1], symbolContextPad),
			})
		}
		out = append(out, m)
	}
	return out
}

// scanThemes totals keyword hits per theme group and keeps groups with five or
// more, capping the stored occurrences at ten.
func scanThemes(ix *textindex.Index) []Motif {
	out := []Motif{}
	for _, group := range lexicon.Themes {
		locs := themePatterns[group.Name].FindAllStringIndex(ix.Text, -1)
		if len(locs) < minThemeCount {
			continue
		}
		m := Motif{
			Category:    CategoryTheme,
			Name:        group.Name,
			Count:       len(locs),
			Occurrences: make([]Occurrence, 0, maxThemeOccurrences),
		}
		for _, loc := range locs {
			if len(m.Occurrences) >= maxThemeOccurrences {
				break
			}
			m.Occurrences = append(m.Occurrences, Occurrence{
				Start:   loc[0],
				End:     loc[1],
				Chapter: ix.ChapterAt(loc[0]),
				Context: ix.Excerpt(loc[0], loc[1], themeContextPad),
			})
		}
		out = append(out, m)
	}
	return out
}

// phraseHit records where one n-gram window sits in the source.
type phraseHit struct {
	start, end int
}

// scanPhrases slides 3-, 4- and 5-word windows over the cleaned word stream.
// Windows containing any word of two letters or fewer are skipped so phrases
// built around articles and pronouns do not dominate.
func scanPhrases(ix *textindex.Index) []Motif {
	cleaned := make([]string, len(ix.Words))
	for i, w := range ix.Words {
		cleaned[i] = lexicon.CleanWord(w.Text)
	}

	counts := map[string][]phraseHit{}
	for n := minPhraseLen; n <= maxPhraseLen; n++ {
		for i := 0; i+n <= len(cleaned); i++ {
			window := cleaned[i : i+n]
			if hasShortWord(window) {
				continue
			}
			key := strings.Join(window, " ")
			counts[key] = append(counts[key], phraseHit{
				start: ix.Words[i].Start,
				end:   ix.Words[i+n-1].End,
			})
		}
	}

	out := []Motif{}
	for phrase, hits := range counts {
		if len(hits) < minPhraseCount {
			continue
		}
		m := Motif{
			Category:    CategoryPhrase,
			Name:        phrase,
			Count:       len(hits),
			Occurrences: make([]Occurrence, 0, len(hits)),
		}
		for _, h := range hits {
			m.Occurrences = append(m.Occurrences, Occurrence{
				Start:   h.start,
				End:     h.end,
				Chapter: ix.ChapterAt(h.start),
				Context: ix.Excerpt(h.start, h.end, 0),
			})
		}
		out = append(out, m)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if len(out) > maxPhraseMotifs {
		out = out[:maxPhraseMotifs]
	}
	return out
}

func hasShortWord(window []string) bool {
	for _, w := range window {
		if len(w) <= shortWordLen {
			return true
		}
	}
	return false
}

func recommendations(phrases, symbols []Motif) []string {
	out := []string{}
	for _, p := range phrases {
		if p.Count < minPhraseCount+2 {
			continue
		}
		rec := fmt.Sprintf("The phrase %q repeats %d times; vary the wording.", p.Name, p.Count)
		for _, w := range strings.Fields(p.Name) {
			if alts := lexicon.SynonymsFor(w); len(alts) > 0 {
				rec = fmt.Sprintf("The phrase %q repeats %d times; for %q try %s.",
					p.Name, p.Count, w, strings.Join(alts, ", "))
				break
			}
		}
		out = append(out, rec)
		if len(out) >= 5 {
			break
		}
	}
	for _, s := range symbols {
		if s.Count >= 10 {
			out = append(out, fmt.Sprintf("The symbol %q appears %d times; heavy repetition can dull its effect.", s.Name, s.Count))
		}
	}
	return out
}
