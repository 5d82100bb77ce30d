package trips

import (
	"encoding/json"
	"testing"
)

func TestRecommendationsRequestDefaults(t *testing.T) {
	var req recommendationsRequest
	if err := json.Unmarshal([]byte(`{
		"name": " Asha ",
		"budget": 5000,
		"num_days": 3,
		"from_location": "Chennai"
	}`), &req); err != nil {
		t.Fatal(err)
	}
	if field := req.missingField(); field != "" {
		t.Fatalf("unexpected missing field %q", field)
	}
	prefs := req.toPreferences()
	if prefs.Name != "Asha" {
		t.Errorf("name = %q", prefs.Name)
	}
	if prefs.Currency != "INR" || prefs.TravelType != "solo" || prefs.GroupSize != 1 {
		t.Errorf("defaults not applied: %+v", prefs)
	}
	if prefs.TravelScope != "within_country" || prefs.FoodAccommodation != "with" || prefs.TravelMedium != "any" {
		t.Errorf("defaults not applied: %+v", prefs)
	}
}

func TestRecommendationsRequestMissingFields(t *testing.T) {
	cases := map[string]string{
		`{}`:                             "name",
		`{"name":"A"}`:                   "budget",
		`{"name":"A","budget":100}`:      "num_days",
		`{"name":"A","budget":100,"num_days":2}`: "from_location",
	}
	for body, want := range cases {
		var req recommendationsRequest
		if err := json.Unmarshal([]byte(body), &req); err != nil {
			t.Fatal(err)
		}
		if got := req.missingField(); got != want {
			t.Errorf("%s: missing field %q, want %q", body, got, want)
		}
	}
}

func TestStyleListAcceptsArrayAndCSV(t *testing.T) {
	var fromArray styleList
	if err := json.Unmarshal([]byte(`["beaches","hill stations"]`), &fromArray); err != nil {
		t.Fatal(err)
	}
	if len(fromArray) != 2 || fromArray[1] != "hill stations" {
		t.Fatalf("array form: %v", fromArray)
	}

	var fromCSV styleList
	if err := json.Unmarshal([]byte(`"beaches, hill stations , "`), &fromCSV); err != nil {
		t.Fatal(err)
	}
	if len(fromCSV) != 2 || fromCSV[0] != "beaches" {
		t.Fatalf("csv form: %v", fromCSV)
	}

	var fromJunk styleList
	if err := json.Unmarshal([]byte(`42`), &fromJunk); err != nil {
		t.Fatal(err)
	}
	if fromJunk != nil {
		t.Fatalf("junk form should yield no styles, got %v", fromJunk)
	}
}

func TestFlexNumberAcceptsStrings(t *testing.T) {
	var req recommendationsRequest
	if err := json.Unmarshal([]byte(`{"name":"A","budget":"7500","num_days":"4","from_location":"Pune"}`), &req); err != nil {
		t.Fatal(err)
	}
	prefs := req.toPreferences()
	if prefs.Budget != 7500 || prefs.NumDays != 4 {
		t.Fatalf("string numbers not parsed: %+v", prefs)
	}
}
