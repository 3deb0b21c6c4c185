// Package finding defines the one contract every analyzer honors: a flagged
// observation whose location resolves back into the source text, so a host
// can scroll to and highlight it.
package finding

const (
	SeverityHigh   = "high"
	SeverityMedium = "medium"
	SeverityLow    = "low"
)

// Finding is a single flagged observation. Start and End are offsets into the
// analyzed text; WordOrdinal is the index of the nearest word token, -1 when
// the finding is not word-addressed.
type Finding struct {
	Category    string  `json:"category"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
	WordOrdinal int     `json:"wordOrdinal"`
	Excerpt     string  `json:"excerpt"`
	Description string  `json:"description"`
	Severity    string  `json:"severity,omitempty"`
	Confidence  float64 `json:"confidence,omitempty"`
}
