package motif

import (
	"strings"
	"testing"
)

func findMotif(a Analysis, category, name string) (Motif, bool) {
	for _, m := range a.Motifs {
		if m.Category == category && m.Name == name {
			return m, true
		}
	}
	return Motif{}, false
}

func TestSymbolTracking(t *testing.T) {
	text := "She cleaned the mirror. The mirror cracked. A mirror never lies. The mirror fogged over. One last mirror remained."
	a := Analyze(text)
	m, ok := findMotif(a, CategorySymbol, "mirror")
	if !ok {
		t.Fatalf("mirror symbol not tracked: %+v", a.Motifs)
	}
	if m.Count != 5 {
		t.Fatalf("expected 5 mirror occurrences, got %d", m.Count)
	}
	if len(m.Occurrences) != 5 {
		t.Fatalf("expected 5 recorded occurrences, got %d", len(m.Occurrences))
	}
	if m.Significance != "self-reflection, duality, hidden truth" {
		t.Fatalf("unexpected significance %q", m.Significance)
	}
	for _, occ := range m.Occurrences {
		if occ.Context == "" {
			t.Fatalf("occurrence missing context: %+v", occ)
		}
		if !strings.Contains(strings.ToLower(occ.Context), "mirror") {
			t.Fatalf("context should contain the symbol: %q", occ.Context)
		}
	}
}

func TestSingleMentionIsNotAMotif(t *testing.T) {
	a := Analyze("A single mirror hung on the wall.")
	if _, ok := findMotif(a, CategorySymbol, "mirror"); ok {
		t.Fatalf("one mention must not register as a motif")
	}
}

func TestSymbolMatchesWholeWordOnly(t *testing.T) {
	a := Analyze("The firefly drifted past. Another firefly followed. A third firefly landed.")
	if _, ok := findMotif(a, CategorySymbol, "fire"); ok {
		t.Fatalf("fire must not match inside firefly")
	}
}

func TestRepeatedPhrase(t *testing.T) {
	text := "The dark forest waited. The dark forest waited. The dark forest waited."
	a := Analyze(text)
	m, ok := findMotif(a, CategoryPhrase, "dark forest waited")
	if !ok {
		t.Fatalf("repeated phrase not tracked: %+v", a.Motifs)
	}
	if m.Count != 3 {
		t.Fatalf("expected count 3, got %d", m.Count)
	}
}

func TestPhraseWindowsSkipShortWords(t *testing.T) {
	text := strings.Repeat("he is at home today. ", 5)
	a := Analyze(text)
	for _, m := range a.Motifs {
		if m.Category != CategoryPhrase {
			continue
		}
		for _, w := range strings.Fields(m.Name) {
			if len(w) <= 2 {
				t.Fatalf("phrase %q contains a short word", m.Name)
			}
		}
	}
}

func TestThemeTracking(t *testing.T) {
	text := "Death came quietly. The funeral was small and the grief enormous. At the grave she spoke of mortality, and of dying well."
	a := Analyze(text)
	m, ok := findMotif(a, CategoryTheme, "death")
	if !ok {
		t.Fatalf("death theme not tracked: %+v", a.Motifs)
	}
	if m.Count < 5 {
		t.Fatalf("expected at least 5 keyword hits, got %d", m.Count)
	}
	if len(m.Occurrences) > 10 {
		t.Fatalf("theme occurrences must be capped at 10, got %d", len(m.Occurrences))
	}
}

func TestFourThemeHitsBelowThreshold(t *testing.T) {
	a := Analyze("Death came. The funeral was small. The grief was real. The grave was fresh.")
	if _, ok := findMotif(a, CategoryTheme, "death"); ok {
		t.Fatalf("four hits sit below the five-hit threshold")
	}
}

func TestMotifsSortedByCount(t *testing.T) {
	text := strings.Repeat("The mirror waited under water. ", 4) + strings.Repeat("Cold water ran. ", 3)
	a := Analyze(text)
	for i := 1; i < len(a.Motifs); i++ {
		if a.Motifs[i].Count > a.Motifs[i-1].Count {
			t.Fatalf("motifs not sorted by count: %+v", a.Motifs)
		}
	}
}

func TestEmptyInput(t *testing.T) {
	a := Analyze("")
	if len(a.Motifs) != 0 {
		t.Fatalf("expected no motifs, got %+v", a.Motifs)
	}
	if len(a.Recommendations) != 0 {
		t.Fatalf("expected no recommendations, got %v", a.Recommendations)
	}
}

func TestOverusedPhraseRecommendation(t *testing.T) {
	text := strings.Repeat("She walked slowly forward. ", 6)
	a := Analyze(text)
	if len(a.Recommendations) == 0 {
		t.Fatalf("a phrase repeated six times should draw a recommendation")
	}
	var found bool
	for _, r := range a.Recommendations {
		if strings.Contains(r, "walked") {
			found = true
		}
	}
	if !found {
		t.Fatalf("recommendation should reference the repeated phrase: %v", a.Recommendations)
	}
}
