package recommend

import "strings"

// styleAliases bridges frontend style labels and catalog tags. Entries are
// bidirectional where the two vocabularies overlap, so a user asking for
// "mountains" also matches "snow"-tagged destinations and vice versa.
var styleAliases = map[string][]string{
	"hill stations":         {"hill stations"},
	"mountains":             {"mountains", "snow"},
	"forests & wildlife":    {"forests & wildlife"},
	"waterfalls":            {"waterfalls", "nature & landscape"},
	"beaches":               {"beaches"},
	"backwaters & lakes":    {"backwaters & lakes", "water-based"},
	"islands":               {"islands"},
	"heritage sites":        {"heritage sites", "culture & heritage"},
	"temples & spiritual":   {"temples & spiritual"},
	"museums & arts":        {"museums & arts", "culture & heritage"},
	"deserts":               {"deserts"},
	"caves":                 {"caves"},
	"adventure":             {"adventure"},
	"city life":             {"city life"},
	"village/rural tourism": {"village/rural tourism"},
	"culture & heritage":    {"culture & heritage", "heritage sites"},
	"water-based":           {"water-based", "backwaters & lakes"},
	"nature & landscape":    {"nature & landscape", "waterfalls"},
	"snow":                  {"snow", "mountains"},
	"food & culinary":       {"food & culinary"},
}

// NormalizeStyle expands a user-selected style label into the set of catalog
// tags it should match. Unknown labels fall back to a singleton set so word
// level matching can still apply.
func NormalizeStyle(label string) map[string]bool {
	s := strings.ToLower(strings.TrimSpace(label))
	if tags, ok := styleAliases[s]; ok {
		set := make(map[string]bool, len(tags))
		for _, t := range tags {
			set[t] = true
		}
		return set
	}
	return map[string]bool{s: true}
}
