// Package beats locates narrative beats by keyword density weighted by
// proximity to each beat's expected position. It is a best-effort positional
// heuristic, not structural parsing; the window, scoring and threshold
// constants are calibration values.
package beats

import "strings"

// BeatDef describes one expected story beat within a structure template.
type BeatDef struct {
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	Keywords        []string `json:"keywords"`
	ExpectedPercent float64  `json:"expectedPercent"`
}

// Template is an ordered list of beats for one narrative structure.
type Template struct {
	Name  string    `json:"name"`
	Beats []BeatDef `json:"beats"`
}

var ThreeAct = Template{
	Name: "three-act",
	Beats: []BeatDef{
		{Name: "Opening", Description: "The ordinary world and the status quo.", ExpectedPercent: 2,
			Keywords: []string{"morning", "ordinary", "always", "routine", "home", "quiet", "everyday", "usual"}},
		{Name: "Inciting Incident", Description: "An external event disrupts the status quo.", ExpectedPercent: 12,
			Keywords: []string{"suddenly", "arrived", "letter", "news", "stranger", "discovered", "changed", "unexpected"}},
		{Name: "First Plot Point", Description: "The protagonist commits to engaging the problem.", ExpectedPercent: 25,
			Keywords: []string{"decided", "journey", "leave", "left", "promise", "began", "commit", "no turning back"}},
		{Name: "Midpoint", Description: "A revelation or reversal raises the stakes.", ExpectedPercent: 50,
			Keywords: []string{"revealed", "truth", "realized", "betrayed", "secret", "victory", "defeat", "everything changed"}},
		{Name: "Second Plot Point", Description: "The darkest moment before the final push.", ExpectedPercent: 75,
			Keywords: []string{"lost", "alone", "hopeless", "failed", "despair", "broken", "death", "darkest"}},
		{Name: "Climax", Description: "The final confrontation.", ExpectedPercent: 90,
			Keywords: []string{"final", "confronted", "faced", "battle", "fought", "showdown", "last chance", "confrontation"}},
		{Name: "Resolution", Description: "The aftermath and the new normal.", ExpectedPercent: 98,
			Keywords: []string{"afterward", "peace", "returned", "finally", "settled", "home", "changed forever", "new life"}},
	},
}

var FiveAct = Template{
	Name: "five-act",
	Beats: []BeatDef{
		{Name: "Exposition", Description: "Characters, setting and stakes are established.", ExpectedPercent: 5,
			Keywords: []string{"lived", "known", "home", "family", "always", "began", "city", "village"}},
		{Name: "Rising Action", Description: "Complications accumulate toward the crisis.", ExpectedPercent: 25,
			Keywords: []string{"trouble", "warned", "danger", "plan", "grew", "worse", "conflict", "tension"}},
		{Name: "Climax", Description: "The turning point of greatest tension.", ExpectedPercent: 50,
			Keywords: []string{"confronted", "struck", "revealed", "turned", "decision", "crisis", "moment", "truth"}},
		{Name: "Falling Action", Description: "Consequences of the climax unfold.", ExpectedPercent: 75,
			Keywords: []string{"aftermath", "consequence", "retreated", "unraveled", "escaped", "pursued", "price", "toll"}},
		{Name: "Denouement", Description: "Threads resolve and order returns.", ExpectedPercent: 95,
			Keywords: []string{"finally", "resolved", "peace", "settled", "ended", "farewell", "rest", "quiet"}},
	},
}

var HerosJourney = Template{
	Name: "heros-journey",
	Beats: []BeatDef{
		{Name: "Ordinary World", Description: "The hero's life before the journey.", ExpectedPercent: 2,
			Keywords: []string{"ordinary", "home", "routine", "everyday", "familiar", "quiet", "always", "village"}},
		{Name: "Call to Adventure", Description: "A challenge or opportunity presents itself.", ExpectedPercent: 10,
			Keywords: []string{"call", "summons", "message", "invitation", "quest", "challenge", "arrived", "news"}},
		{Name: "Refusal of the Call", Description: "Fear or duty makes the hero hesitate.", ExpectedPercent: 15,
			Keywords: []string{"refused", "hesitated", "afraid", "doubt", "cannot", "stayed", "denied", "reluctant"}},
		{Name: "Meeting the Mentor", Description: "Guidance and tools for the road ahead.", ExpectedPercent: 20,
			Keywords: []string{"mentor", "teacher", "guide", "wisdom", "advice", "gift", "taught", "old"}},
		{Name: "Crossing the Threshold", Description: "The hero leaves the known world.", ExpectedPercent: 25,
			Keywords: []string{"crossed", "threshold", "departed", "boundary", "beyond", "left behind", "entered", "gate"}},
		{Name: "Tests, Allies, Enemies", Description: "The rules of the special world.", ExpectedPercent: 40,
			Keywords: []string{"tested", "ally", "allies", "enemy", "trial", "friend", "rival", "learned"}},
		{Name: "The Ordeal", Description: "The central crisis and brush with death.", ExpectedPercent: 55,
			Keywords: []string{"ordeal", "death", "darkest", "abyss", "faced", "greatest fear", "nearly", "survived"}},
		{Name: "The Reward", Description: "The hero seizes the prize.", ExpectedPercent: 65,
			Keywords: []string{"reward", "seized", "prize", "treasure", "sword", "elixir", "won", "claimed"}},
		{Name: "The Road Back", Description: "Pursuit and the urgency of return.", ExpectedPercent: 75,
			Keywords: []string{"return", "pursued", "chase", "fled", "escape", "hurried", "back", "race"}},
		{Name: "Resurrection", Description: "The final test and purification.", ExpectedPercent: 90,
			Keywords: []string{"resurrection", "reborn", "final test", "sacrifice", "transformed", "rose", "last stand", "purified"}},
		{Name: "Return with the Elixir", Description: "The hero brings the boon home.", ExpectedPercent: 98,
			Keywords: []string{"elixir", "returned", "home", "healed", "shared", "wisdom", "changed", "master"}},
	},
}

var builtins = []Template{ThreeAct, FiveAct, HerosJourney}

// Builtin resolves a template by name, tolerating common spellings such as
// "three act" or "hero's journey".
func Builtin(name string) (Template, bool) {
	key := normalizeName(name)
	for _, t := range builtins {
		if normalizeName(t.Name) == key {
			return t, true
		}
	}
	if key == "herosjourney" || key == "monomyth" {
		return HerosJourney, true
	}
	return Template{}, false
}

// Names lists the built-in template names.
func Names() []string {
	out := make([]string, 0, len(builtins))
	for _, t := range builtins {
		out = append(out, t.Name)
	}
	return out
}

func normalizeName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		if r >= 'a' && r <= 'z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
