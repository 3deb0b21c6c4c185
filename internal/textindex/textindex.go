// Package textindex splits raw manuscript text into words, sentences and
// paragraphs while recording each unit's offset range in the original string.
// Every analyzer consumes this index instead of re-scanning raw text, so a
// finding's location always resolves back to the source.
package textindex

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Token is one positional unit of the manuscript. Start and End are offsets
// into the source string the index was built from; Ordinal is the token's
// sequence number within its own kind.
type Token struct {
	Text    string `json:"text"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Ordinal int    `json:"ordinal"`
}

// Index holds the three aligned token sequences plus chapter boundaries.
type Index struct {
	Text       string
	Words      []Token
	Sentences  []Token
	Paragraphs []Token
	Chapters   []Chapter
}

// Build tokenizes text in a single pass per kind. Empty or whitespace-only
// input yields empty sequences; callers guard their own ratios.
func Build(text string) *Index {
	return &Index{
		Text:       text,
		Words:      splitWords(text),
		Sentences:  splitSentences(text),
		Paragraphs: splitParagraphs(text),
		Chapters:   scanChapters(text),
	}
}

// splitWords is whitespace-delimited; punctuation stays inside the stored
// offset range so excerpts reproduce the source exactly.
func splitWords(text string) []Token {
	out := make([]Token, 0, len(text)/6)
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		out = append(out, Token{Text: text[start:i], Start: start, End: i, Ordinal: len(out)})
	}
	return out
}

// splitSentences delimits on runs of '.', '!' and '?'. The delimiter run
// belongs to the sentence that precedes it; whitespace-only segments are
// discarded.
func splitSentences(text string) []Token {
	out := make([]Token, 0, 64)
	segStart := 0
	i := 0
	flush := func(end int) {
		tok, ok := trimmedToken(text, segStart, end, len(out))
		if ok {
			out = append(out, tok)
		}
	}
	for i < len(text) {
		if isSentenceEnd(text[i]) {
			runEnd := i
			for runEnd < len(text) && isSentenceEnd(text[runEnd]) {
				runEnd++
			}
			flush(runEnd)
			segStart = runEnd
			i = runEnd
			continue
		}
		i++
	}
	flush(len(text))
	return out
}

// splitParagraphs delimits on two or more consecutive newlines.
func splitParagraphs(text string) []Token {
	out := make([]Token, 0, 32)
	segStart := 0
	i := 0
	for i < len(text) {
		if text[i] == '\n' {
			runEnd := i
			for runEnd < len(text) && (text[runEnd] == '\n' || text[runEnd] == '\r') {
				runEnd++
			}
			if strings.Count(text[i:runEnd], "\n") >= 2 {
				if tok, ok := trimmedToken(text, segStart, i, len(out)); ok {
					out = append(out, tok)
				}
				segStart = runEnd
			}
			i = runEnd
			continue
		}
		i++
	}
	if tok, ok := trimmedToken(text, segStart, len(text), len(out)); ok {
		out = append(out, tok)
	}
	return out
}

// trimmedToken narrows [start,end) past surrounding whitespace. Returns false
// when nothing remains.
func trimmedToken(text string, start, end, ordinal int) (Token, bool) {
	for start < end {
		r, size := utf8.DecodeRuneInString(text[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		start += size
	}
	for end > start {
		r, size := utf8.DecodeLastRuneInString(text[start:end])
		if !unicode.IsSpace(r) {
			break
		}
		end -= size
	}
	if start >= end {
		return Token{}, false
	}
	return Token{Text: text[start:end], Start: start, End: end, Ordinal: ordinal}, true
}

func isSentenceEnd(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

// Excerpt returns the source slice around [start,end) widened by pad bytes on
// each side, clamped to the text and compacted to single spaces.
func (ix *Index) Excerpt(start, end, pad int) string {
	if start < 0 {
		start = 0
	}
	if start > len(ix.Text) {
		start = len(ix.Text)
	}
	if end > len(ix.Text) {
		end = len(ix.Text)
	}
	if end < start {
		end = start
	}
	lo := start - pad
	if lo < 0 {
		lo = 0
	}
	hi := end + pad
	if hi > len(ix.Text) {
		hi = len(ix.Text)
	}
	return strings.Join(strings.Fields(ix.Text[lo:hi]), " ")
}
