// Package engine runs every analyzer over one manuscript and aggregates the
// results into a single report. Each run tokenizes from scratch; nothing is
// carried over between invocations except the static dictionaries.
package engine

import (
	"math"
	"time"

	"github.com/google/uuid"

	"prosecraft/internal/beats"
	"prosecraft/internal/finding"
	"prosecraft/internal/log"
	"prosecraft/internal/motif"
	"prosecraft/internal/pov"
	"prosecraft/internal/readability"
	"prosecraft/internal/textindex"
)

type Options struct {
	Template beats.Template // zero value selects the three-act template
}

// Report is the aggregate of one full analysis run.
type Report struct {
	RunID        string              `json:"runId"`
	Title        string              `json:"title"`
	GeneratedAt  time.Time           `json:"generatedAt"`
	WordCount    int                 `json:"wordCount"`
	Template     string              `json:"template"`
	Readability  readability.Metrics `json:"readability"`
	Structure    beats.Analysis      `json:"structure"`
	POV          pov.Analysis        `json:"pov"`
	Motifs       motif.Analysis      `json:"motifs"`
	OverallScore int                 `json:"overallScore"`
	Findings     []finding.Finding   `json:"findings"`
}

// BuildReport tokenizes once and feeds the shared index to all four
// analyzers.
func BuildReport(title, text string, opts Options) Report {
	tpl := opts.Template
	if len(tpl.Beats) == 0 {
		tpl = beats.ThreeAct
	}

	logger := log.WithComponent("engine")
	started := time.Now()

	ix := textindex.Build(text)
	rep := Report{
		RunID:       uuid.NewString(),
		Title:       title,
		GeneratedAt: started.UTC(),
		WordCount:   len(ix.Words),
		Template:    tpl.Name,
		Findings:    []finding.Finding{},
	}
	logger.Info("tokenized", "run", rep.RunID, "title", title,
		"words", len(ix.Words), "sentences", len(ix.Sentences), "paragraphs", len(ix.Paragraphs))

	rep.Readability = readability.FromIndex(ix)
	logger.Info("readability done", "run", rep.RunID, "fre", rep.Readability.FleschReadingEase)

	rep.Structure = beats.FromIndex(ix, tpl)
	logger.Info("structure done", "run", rep.RunID, "template", tpl.Name, "beats", len(rep.Structure.Beats))

	rep.POV = pov.FromIndex(ix)
	logger.Info("pov done", "run", rep.RunID, "dominant", rep.POV.DominantPOV, "shifts", rep.POV.ShiftCount)

	rep.Motifs = motif.FromIndex(ix)
	logger.Info("motifs done", "run", rep.RunID, "motifs", len(rep.Motifs.Motifs))

	rep.Findings = append(rep.Findings, rep.Structure.Findings...)
	rep.Findings = append(rep.Findings, rep.POV.Findings...)
	rep.OverallScore = overallScore(rep)

	logger.Info("report built", "run", rep.RunID, "score", rep.OverallScore,
		"findings", len(rep.Findings), "elapsed", time.Since(started))
	return rep
}

// overallScore averages three 0-100 component scores: Flesch Reading Ease
// clamped to its scale, the mean beat confidence, and the POV consistency
// score. An empty manuscript scores zero.
func overallScore(rep Report) int {
	if rep.WordCount == 0 {
		return 0
	}
	read := clamp(rep.Readability.FleschReadingEase, 0, 100)

	structure := 0.0
	if len(rep.Structure.Beats) > 0 {
		for _, b := range rep.Structure.Beats {
			structure += b.Confidence
		}
		structure /= float64(len(rep.Structure.Beats))
	}

	return int(math.Round((read + structure + float64(rep.POV.ConsistencyScore)) / 3))
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
