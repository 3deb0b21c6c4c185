package textindex

import (
	"regexp"
	"sort"
	"strings"
)

// Chapter marks where a "Chapter N" heading begins. End is the offset of the
// next heading (or the end of the text for the last chapter).
type Chapter struct {
	Index int    `json:"index"`
	Title string `json:"title"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

var chapterMarkerPattern = regexp.MustCompile(`(?i)\b(chapter|ch\.)\s+([0-9ivxlcdm]+|one|two|three|four|five|six|seven|eight|nine|ten|eleven|twelve|thirteen|fourteen|fifteen|sixteen|seventeen|eighteen|nineteen|twenty)\b`)

// scanChapters precomputes heading boundaries once so occurrence attribution
// is a binary search instead of a cumulative-length rescan.
func scanChapters(text string) []Chapter {
	matches := chapterMarkerPattern.FindAllStringIndex(text, -1)
	if len(matches) == 0 {
		return nil
	}
	out := make([]Chapter, 0, len(matches))
	for i, m := range matches {
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		out = append(out, Chapter{
			Index: i + 1,
			Title: headingLine(text[m[0]:end]),
			Start: m[0],
			End:   end,
		})
	}
	return out
}

func headingLine(chunk string) string {
	if nl := strings.IndexByte(chunk, '\n'); nl >= 0 {
		chunk = chunk[:nl]
	}
	words := strings.Fields(chunk)
	if len(words) > 8 {
		words = words[:8]
	}
	return strings.Join(words, " ")
}

// ChapterAt returns the 1-based chapter containing offset, or 0 when the text
// has no chapter headings or the offset precedes the first one.
func (ix *Index) ChapterAt(offset int) int {
	n := len(ix.Chapters)
	if n == 0 {
		return 0
	}
	i := sort.Search(n, func(i int) bool { return ix.Chapters[i].Start > offset })
	return i
}
