package recommend

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"travel-backend/internal/catalog"
)

// Band caps and backfill targets. These are display-size limits, not data
// limits.
const (
	maxWithinBudget     = 6
	maxAspirational     = 3
	minAspirational     = 2
	relaxedWithinLimit  = 4
	aspirationalCeiling = 1.5
)

var stopwords = map[string]bool{"&": true, "and": true, "the": true}

const missingKeyHint = " (Add your free Gemini API key in .env for real-time AI-powered recommendations — visit aistudio.google.com/app/apikey)"

type candidate struct {
	dest  catalog.Destination
	score int
	cost  float64
}

// Select ranks the catalog against the traveler's preferences and assembles
// within-budget and aspirational bands. It never fails and never touches the
// network. The caller supplies the randomness source so tests can pin the
// shuffle; aiConfigured only affects the summary wording.
func Select(prefs Preferences, pool []catalog.Destination, rng *rand.Rand, aiConfigured bool) Result {
	styles := make([]string, 0, len(prefs.DestinationStyles))
	for _, s := range prefs.DestinationStyles {
		styles = append(styles, strings.ToLower(s))
	}

	budgetRef := ToReference(prefs.Budget, prefs.Currency)
	filtered := filterByScope(pool, prefs.TravelScope)

	candidates := make([]candidate, 0, len(filtered))
	for _, d := range filtered {
		candidates = append(candidates, candidate{
			dest:  d,
			score: scoreDestination(styles, d),
			cost:  ProjectCost(d, prefs.NumDays, prefs.TravelMedium),
		})
	}

	// Shuffle first so equally-scored destinations vary across calls, then
	// stable-sort by score so the shuffle only breaks ties.
	rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	ceiling := budgetRef * aspirationalCeiling
	var within, aspirational []Recommendation

	for _, c := range candidates {
		if c.score <= 0 && len(styles) > 0 {
			continue
		}
		switch {
		case c.cost <= budgetRef:
			if len(within) < maxWithinBudget {
				within = append(within, buildRecommendation(c, prefs, budgetRef))
			}
		case c.cost <= ceiling:
			if len(aspirational) < maxAspirational {
				aspirational = append(aspirational, buildRecommendation(c, prefs, budgetRef))
			}
		}
	}

	// Never show zero affordable destinations when any exist: relax the
	// style gate and take the first affordable candidates.
	if len(within) == 0 {
		for _, c := range candidates {
			if c.cost <= budgetRef && len(within) < relaxedWithinLimit {
				within = append(within, buildRecommendation(c, prefs, budgetRef))
			}
		}
	}

	if len(aspirational) < minAspirational {
		used := make(map[string]bool, len(within)+len(aspirational))
		for _, r := range within {
			used[r.Name] = true
		}
		for _, r := range aspirational {
			used[r.Name] = true
		}
		for _, c := range candidates {
			if used[c.dest.Name] {
				continue
			}
			if c.cost > budgetRef && c.cost <= ceiling {
				aspirational = append(aspirational, buildRecommendation(c, prefs, budgetRef))
				if len(aspirational) >= maxAspirational {
					break
				}
			}
		}
	}

	recs := append(within, aspirational...)
	for i := range recs {
		recs[i].ID = i + 1
	}

	return Result{
		Recommendations: recs,
		AISummary:       buildSummary(prefs, styles, len(recs), len(within), len(aspirational), aiConfigured),
	}
}

func filterByScope(pool []catalog.Destination, scope string) []catalog.Destination {
	wantInternational := scope != "within_country"
	out := make([]catalog.Destination, 0, len(pool))
	for _, d := range pool {
		if d.International == wantInternational {
			out = append(out, d)
		}
	}
	// A catalog with no international entries still yields candidates; the
	// domestic pool gets no such safety net.
	if len(out) == 0 && wantInternational {
		return pool
	}
	return out
}

// scoreDestination awards 2 points per user style whose alias set intersects
// the destination's tags, or 1 point on a word-level overlap ignoring
// stopwords. No styles means no preference, so every destination scores a
// neutral 1.
func scoreDestination(styles []string, d catalog.Destination) int {
	if len(styles) == 0 {
		return 1
	}
	tags := d.StyleSet()
	score := 0
	for _, userStyle := range styles {
		expanded := NormalizeStyle(userStyle)
		if intersects(expanded, tags) {
			score += 2
			continue
		}
		userWords := wordSet(userStyle)
		for tag := range tags {
			if sharesWord(userWords, wordSet(tag)) {
				score++
				break
			}
		}
	}
	return score
}

func intersects(a, b map[string]bool) bool {
	for k := range a {
		if b[k] {
			return true
		}
	}
	return false
}

func wordSet(s string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range strings.Fields(s) {
		set[w] = true
	}
	return set
}

func sharesWord(a, b map[string]bool) bool {
	for w := range a {
		if stopwords[w] {
			continue
		}
		if b[w] {
			return true
		}
	}
	return false
}

func buildRecommendation(c candidate, prefs Preferences, budgetRef float64) Recommendation {
	currency := strings.ToUpper(strings.TrimSpace(prefs.Currency))
	if currency == "" {
		currency = ReferenceCurrency
	}

	bestFor := make([]string, 0, 4)
	for _, s := range c.dest.Styles {
		if len(bestFor) == 4 {
			break
		}
		bestFor = append(bestFor, titleCase(s))
	}

	rec := Recommendation{
		Name:              c.dest.Name,
		Location:          c.dest.Location,
		Tagline:           c.dest.Tagline,
		DistanceFromStart: c.dest.Distance,
		TravelTime:        c.dest.TravelTime,
		WithinBudget:      c.cost <= budgetRef,
		EstimatedTotal:    FromReference(c.cost, currency),
		Currency:          currency,
		CostPerDay:        FromReference(c.dest.CostPerDay, currency),
		BestFor:           bestFor,
		Highlight:         c.dest.Highlight,
		ImageKeyword:      c.dest.ImageKeyword,
		FamousFor:         c.dest.FamousFor,
	}
	if !rec.WithinBudget {
		pct := int(math.Round((c.cost - budgetRef) / budgetRef * 100))
		note := fmt.Sprintf("~%d%% over budget — but the experience is absolutely worth it!", pct)
		rec.OverBudgetNote = &note
	}
	return rec
}

func buildSummary(prefs Preferences, styles []string, total, within, aspirational int, aiConfigured bool) string {
	who := prefs.Name
	if who == "" {
		who = "you"
	}
	stylesDisplay := "various destinations"
	if len(styles) > 0 {
		stylesDisplay = titleCase(strings.Join(styles, ", "))
	}
	currency := strings.ToUpper(strings.TrimSpace(prefs.Currency))
	if currency == "" {
		currency = ReferenceCurrency
	}
	hint := ""
	if !aiConfigured {
		hint = missingKeyHint
	}
	return fmt.Sprintf(
		"Showing %d curated destinations for %s matching %s. "+
			"%d destinations fit your %s %s budget, "+
			"and %d premium options are included as aspirational picks.%s",
		total, who, stylesDisplay, within, currency, groupDigits(prefs.Budget), aspirational, hint)
}

// titleCase uppercases the first letter of every alphabetic run, so
// "village/rural tourism" becomes "Village/Rural Tourism".
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToUpper(r))
			}
			prevLetter = true
		} else {
			b.WriteRune(r)
			prevLetter = false
		}
	}
	return b.String()
}

// groupDigits renders a budget with thousands separators, e.g. 50000 ->
// "50,000".
func groupDigits(amount float64) string {
	s := strconv.FormatFloat(math.Round(amount), 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
