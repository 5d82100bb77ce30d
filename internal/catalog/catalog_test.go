package catalog

import (
	"strings"
	"testing"
)

func TestAllHasEntries(t *testing.T) {
	all := All()
	if len(all) < 40 {
		t.Fatalf("expected a populated catalog, got %d entries", len(all))
	}
	seen := make(map[string]bool, len(all))
	for _, d := range all {
		if d.Name == "" {
			t.Fatal("catalog entry with empty name")
		}
		if seen[d.Name] {
			t.Fatalf("duplicate catalog entry %q", d.Name)
		}
		seen[d.Name] = true
		if d.BaseCost <= 0 || d.CostPerDay <= 0 {
			t.Errorf("%s: costs must be positive (base=%v perDay=%v)", d.Name, d.BaseCost, d.CostPerDay)
		}
		if len(d.Styles) == 0 {
			t.Errorf("%s: no styles", d.Name)
		}
	}
}

func TestStyleSetLowercasesTags(t *testing.T) {
	d := Destination{Styles: []string{"  Beaches ", "Water-Based"}}
	set := d.StyleSet()
	if !set["beaches"] || !set["water-based"] {
		t.Fatalf("unexpected style set: %v", set)
	}
	if len(set) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(set))
	}
	if set["mountains"] {
		t.Fatal("absent tag must read false")
	}
}

func TestInternationalFlagged(t *testing.T) {
	var domestic, international int
	for _, d := range All() {
		if d.International {
			international++
			if strings.HasSuffix(d.Location, ", India") {
				t.Errorf("%s flagged international but located in India", d.Name)
			}
		} else {
			domestic++
		}
	}
	if domestic == 0 || international == 0 {
		t.Fatalf("catalog must mix domestic (%d) and international (%d) entries", domestic, international)
	}
}
