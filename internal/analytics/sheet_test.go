package analytics

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"travel-backend/internal/recommend"
)

func testPrefs() recommend.Preferences {
	return recommend.Preferences{
		Name: "Asha", Budget: 5000, Currency: "INR",
		TravelType: "group", GroupSize: 3, TravelScope: "within_country",
		NumDays: 3, FoodAccommodation: "with", FromLocation: "Chennai",
		TravelMedium: "bus", DestinationStyles: []string{"hill stations", "waterfalls"},
	}
}

func readAll(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	return rows
}

func TestAppendCreatesSheetWithHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "trips.csv")
	s := NewSheet(path)
	s.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }

	if err := s.Append(testPrefs(), "1.2.3.4", "Chennai, Tamil Nadu, India"); err != nil {
		t.Fatal(err)
	}

	rows := readAll(t, path)
	if len(rows) != 2 {
		t.Fatalf("expected header + 1 row, got %d rows", len(rows))
	}
	if rows[0][0] != "S.No" || rows[0][1] != "User Name" {
		t.Fatalf("unexpected header: %v", rows[0])
	}
	row := rows[1]
	if row[0] != "1" || row[1] != "Asha" || row[6] != "INR" {
		t.Fatalf("unexpected row: %v", row)
	}
	if row[7] != "Group" || row[8] != "3" {
		t.Fatalf("group fields: %v", row)
	}
	if row[9] != "Within Country" {
		t.Fatalf("scope formatting: %q", row[9])
	}
	if row[13] != "hill stations, waterfalls" {
		t.Fatalf("styles column: %q", row[13])
	}
	if row[14] != "2026-08-31 12:00:00" {
		t.Fatalf("timestamp column: %q", row[14])
	}
}

func TestAppendNumbersRowsSequentially(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips.csv")
	s := NewSheet(path)

	prefs := testPrefs()
	prefs.TravelType = "solo"
	for i := 0; i < 3; i++ {
		if err := s.Append(prefs, "1.2.3.4", "Unknown"); err != nil {
			t.Fatal(err)
		}
	}
	rows := readAll(t, path)
	if len(rows) != 4 {
		t.Fatalf("expected 4 rows, got %d", len(rows))
	}
	for i := 1; i < len(rows); i++ {
		if rows[i][0] != string(rune('0'+i)) {
			t.Errorf("row %d serial = %q", i, rows[i][0])
		}
		if rows[i][8] != "Solo" {
			t.Errorf("solo traveler group size = %q", rows[i][8])
		}
	}
}

func TestAppendRecreatesCorruptSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "trips.csv")
	if err := os.WriteFile(path, []byte("\"unterminated\nmess,,,"), 0o644); err != nil {
		t.Fatal(err)
	}
	s := NewSheet(path)
	if err := s.Append(testPrefs(), "1.2.3.4", "Unknown"); err != nil {
		t.Fatal(err)
	}
	rows := readAll(t, path)
	if len(rows) != 2 || rows[0][0] != "S.No" {
		t.Fatalf("corrupt sheet was not recreated: %v", rows)
	}
}
