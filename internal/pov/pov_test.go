package pov

import (
	"strings"
	"testing"
)

func TestFirstPersonParagraph(t *testing.T) {
	a := Analyze("I walked to my house. I had forgotten my keys again.")
	if len(a.Paragraphs) != 1 {
		t.Fatalf("expected 1 paragraph, got %d", len(a.Paragraphs))
	}
	if a.Paragraphs[0].POV != First {
		t.Fatalf("expected first person, got %q", a.Paragraphs[0].POV)
	}
	if a.DominantPOV != First {
		t.Fatalf("expected dominant first, got %q", a.DominantPOV)
	}
	if a.ConsistencyScore != 100 {
		t.Fatalf("clean text should score 100, got %d", a.ConsistencyScore)
	}
}

func TestShiftBetweenParagraphs(t *testing.T) {
	text := "I went home and I slept in my bed.\n\nHe went home. He fed his dog and he slept."
	a := Analyze(text)
	if a.ShiftCount != 1 {
		t.Fatalf("expected 1 shift, got %d", a.ShiftCount)
	}
	if len(a.Findings) != 1 {
		t.Fatalf("expected 1 finding, got %d", len(a.Findings))
	}
	f := a.Findings[0]
	if f.Category != "shift" || f.Severity != "high" {
		t.Fatalf("unexpected finding %+v", f)
	}
	if a.ConsistencyScore != 85 {
		t.Fatalf("one high finding should score 85, got %d", a.ConsistencyScore)
	}
	if a.ConsistencyScore >= 100 {
		t.Fatalf("a shift must lower the score")
	}
}

func TestUnknownParagraphDoesNotShift(t *testing.T) {
	// The middle paragraph has no pronouns; the earlier classification carries
	// forward and no shift fires on re-entry into first person.
	text := "I opened the letter with my own hands.\n\nRain fell on the rooftops.\n\nI read it twice to myself."
	a := Analyze(text)
	if a.ShiftCount != 0 {
		t.Fatalf("expected no shifts, got %d", a.ShiftCount)
	}
	if a.Paragraphs[1].POV != Unknown {
		t.Fatalf("expected middle paragraph unknown, got %q", a.Paragraphs[1].POV)
	}
}

func TestHeadHopping(t *testing.T) {
	para := "He paused at the gate. John thought the road looked endless. She frowned beside him. Mary wondered about the map. Sarah realized they were lost."
	a := Analyze(para)
	var hop int
	for _, f := range a.Findings {
		if f.Category == "head-hopping" {
			hop++
			if f.Severity != "high" {
				t.Fatalf("head-hopping should be high severity, got %q", f.Severity)
			}
			for _, name := range []string{"John", "Mary", "Sarah"} {
				if !strings.Contains(f.Description, name) {
					t.Fatalf("description should list %s: %q", name, f.Description)
				}
			}
		}
	}
	if hop != 1 {
		t.Fatalf("expected 1 head-hopping finding, got %d", hop)
	}
	if len(a.PerspectiveCharacters) != 3 {
		t.Fatalf("expected 3 perspective characters, got %v", a.PerspectiveCharacters)
	}
	if a.DominantPOV != "third-omniscient" {
		t.Fatalf("multiple perspective characters imply omniscient, got %q", a.DominantPOV)
	}
}

func TestTwoThoughtVerbsDoNotFlag(t *testing.T) {
	para := "He paused at the gate. John thought the road looked endless. Mary wondered about him."
	a := Analyze(para)
	for _, f := range a.Findings {
		if f.Category == "head-hopping" {
			t.Fatalf("two thought verbs should not flag: %+v", f)
		}
	}
}

func TestThirdLimited(t *testing.T) {
	a := Analyze("She watched the harbor lights. She pulled her coat tighter and counted the ships as they came in.")
	if a.DominantPOV != "third-limited" {
		t.Fatalf("expected third-limited, got %q", a.DominantPOV)
	}
}

func TestMixedStyleParagraph(t *testing.T) {
	para := "He felt like the night would never end. Across the square the man seemed to watch him without blinking, and he looked away."
	a := Analyze(para)
	var found bool
	for _, f := range a.Findings {
		if f.Category == "inconsistent" {
			found = true
			if f.Severity != "medium" {
				t.Fatalf("inconsistent style should be medium severity, got %q", f.Severity)
			}
		}
	}
	if !found {
		t.Fatalf("expected an inconsistent-style finding, got %+v", a.Findings)
	}
}

func TestEmptyInput(t *testing.T) {
	a := Analyze("")
	if a.DominantPOV != Unknown {
		t.Fatalf("expected unknown dominant POV, got %q", a.DominantPOV)
	}
	if len(a.Findings) != 0 || len(a.Paragraphs) != 0 {
		t.Fatalf("expected empty analysis, got %+v", a)
	}
	if a.ConsistencyScore != 100 {
		t.Fatalf("empty text should score 100, got %d", a.ConsistencyScore)
	}
}

func TestExcerptTruncated(t *testing.T) {
	long := "He left early. " + strings.Repeat("He never said why he left. ", 20)
	text := "I read the note with my coffee.\n\n" + long
	a := Analyze(text)
	if len(a.Findings) == 0 {
		t.Fatalf("expected a shift finding")
	}
	if len(a.Findings[0].Excerpt) > 150 {
		t.Fatalf("excerpt should be capped at 150 bytes, got %d", len(a.Findings[0].Excerpt))
	}
}
