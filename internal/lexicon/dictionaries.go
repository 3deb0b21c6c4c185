package lexicon

// SymbolEntry maps a canonical literary image to its conventional meanings.
type SymbolEntry struct {
	Symbol   string   `json:"symbol"`
	Meanings []string `json:"meanings"`
}

// Symbols is the fixed symbol dictionary used by the motif tracker. Matching
// is whole-word and case-insensitive; the meaning strings surface verbatim in
// motif significance text.
var Symbols = []SymbolEntry{
	{Symbol: "mirror", Meanings: []string{"self-reflection", "duality", "hidden truth"}},
	{Symbol: "water", Meanings: []string{"cleansing", "rebirth", "the unconscious"}},
	{Symbol: "fire", Meanings: []string{"passion", "destruction", "transformation"}},
	{Symbol: "light", Meanings: []string{"knowledge", "hope", "revelation"}},
	{Symbol: "darkness", Meanings: []string{"the unknown", "fear", "concealment"}},
	{Symbol: "door", Meanings: []string{"opportunity", "transition", "choice"}},
	{Symbol: "window", Meanings: []string{"perspective", "longing", "separation"}},
	{Symbol: "bird", Meanings: []string{"freedom", "the soul", "omen"}},
	{Symbol: "snake", Meanings: []string{"temptation", "deceit", "renewal"}},
	{Symbol: "rose", Meanings: []string{"love", "beauty", "secrecy"}},
	{Symbol: "moon", Meanings: []string{"change", "mystery", "the feminine"}},
	{Symbol: "sun", Meanings: []string{"vitality", "clarity", "the self"}},
	{Symbol: "storm", Meanings: []string{"turmoil", "conflict", "cleansing violence"}},
	{Symbol: "river", Meanings: []string{"the passage of time", "fate", "boundary"}},
	{Symbol: "tree", Meanings: []string{"growth", "family", "endurance"}},
	{Symbol: "key", Meanings: []string{"access", "secrets", "solution"}},
	{Symbol: "mask", Meanings: []string{"disguise", "performance", "hidden identity"}},
	{Symbol: "clock", Meanings: []string{"mortality", "pressure", "inevitability"}},
	{Symbol: "blood", Meanings: []string{"kinship", "sacrifice", "guilt"}},
	{Symbol: "shadow", Meanings: []string{"the repressed self", "threat", "the past"}},
	{Symbol: "bridge", Meanings: []string{"connection", "transition", "risk"}},
	{Symbol: "garden", Meanings: []string{"innocence", "cultivation", "paradise"}},
	{Symbol: "winter", Meanings: []string{"death", "dormancy", "hardship"}},
	{Symbol: "spring", Meanings: []string{"renewal", "youth", "hope"}},
	{Symbol: "crown", Meanings: []string{"authority", "burden", "ambition"}},
}

// ThemeGroup names a theme and the keywords whose combined frequency signals
// it. A theme registers only when its total match count reaches the motif
// tracker's threshold.
type ThemeGroup struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

var Themes = []ThemeGroup{
	{Name: "identity", Keywords: []string{"identity", "self", "belong", "name", "stranger", "reflection", "become"}},
	{Name: "betrayal", Keywords: []string{"betray", "betrayal", "traitor", "deceive", "lied", "backstab", "trust"}},
	{Name: "redemption", Keywords: []string{"redeem", "redemption", "forgive", "forgiveness", "atone", "second chance", "absolution"}},
	{Name: "sacrifice", Keywords: []string{"sacrifice", "give up", "surrender", "cost", "lose everything", "offered", "martyr"}},
	{Name: "power", Keywords: []string{"power", "control", "command", "throne", "dominate", "authority", "rule"}},
	{Name: "freedom", Keywords: []string{"freedom", "free", "escape", "liberty", "chains", "cage", "release"}},
	{Name: "revenge", Keywords: []string{"revenge", "vengeance", "avenge", "payback", "retribution", "settle the score", "vendetta"}},
	{Name: "love", Keywords: []string{"love", "heart", "beloved", "devotion", "longing", "passion", "tenderness"}},
	{Name: "death", Keywords: []string{"death", "dying", "grave", "funeral", "mortality", "grief", "mourn"}},
	{Name: "justice", Keywords: []string{"justice", "judge", "guilt", "innocent", "verdict", "law", "punishment"}},
}

// synonyms offers alternatives for words writers lean on. Keyed by cleaned
// form.
var synonyms = map[string][]string{
	"very":      {"deeply", "remarkably", "intensely"},
	"really":    {"genuinely", "truly", "notably"},
	"said":      {"replied", "murmured", "answered", "remarked"},
	"walked":    {"strode", "wandered", "paced", "shuffled"},
	"looked":    {"glanced", "studied", "peered", "regarded"},
	"suddenly":  {"abruptly", "without warning", "all at once"},
	"beautiful": {"striking", "radiant", "luminous"},
	"big":       {"vast", "immense", "towering"},
	"small":     {"slight", "modest", "cramped"},
	"felt":      {"sensed", "registered", "noticed"},
	"thought":   {"considered", "reflected", "mused"},
	"good":      {"fine", "capable", "worthy"},
	"bad":       {"grim", "rotten", "dire"},
	"happy":     {"content", "delighted", "buoyant"},
	"sad":       {"mournful", "heavy-hearted", "forlorn"},
}
