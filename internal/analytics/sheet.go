// Package analytics appends trip-request rows to a local CSV sheet. Writes
// are best effort; callers log and ignore failures so the primary response
// is never blocked on bookkeeping.
package analytics

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"travel-backend/internal/recommend"
)

var header = []string{
	"S.No", "User Name", "IP Address", "IP-Based Location",
	"Start Location (User)", "Budget", "Currency", "Travel Type",
	"Group Size", "Travel Scope", "No. of Days", "Food & Accommodation",
	"Travel Medium", "Destination Styles", "Timestamp",
}

// Sheet is an append-only CSV sink. A missing or corrupt file is recreated
// with a header row on the next write.
type Sheet struct {
	path string
	mu   sync.Mutex
	now  func() time.Time
}

func NewSheet(path string) *Sheet {
	return &Sheet{path: path, now: time.Now}
}

// Append records one trip request. Safe for concurrent use.
func (s *Sheet) Append(prefs recommend.Preferences, ip, ipLocation string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.readRows()
	if err != nil {
		// Unreadable sheet: start over with just the header.
		rows = [][]string{header}
	}
	if len(rows) == 0 {
		rows = [][]string{header}
	}

	groupSize := "Solo"
	if prefs.TravelType == "group" {
		groupSize = fmt.Sprintf("%d", prefs.GroupSize)
	}
	rows = append(rows, []string{
		fmt.Sprintf("%d", len(rows)),
		prefs.Name,
		ip,
		ipLocation,
		prefs.FromLocation,
		fmt.Sprintf("%.0f", prefs.Budget),
		prefs.Currency,
		titleWords(prefs.TravelType),
		groupSize,
		titleWords(prefs.TravelScope),
		fmt.Sprintf("%d", prefs.NumDays),
		titleWords(prefs.FoodAccommodation),
		titleWords(prefs.TravelMedium),
		strings.Join(prefs.DestinationStyles, ", "),
		s.now().Format("2006-01-02 15:04:05"),
	})

	return s.writeRows(rows)
}

func (s *Sheet) readRows() ([][]string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	return r.ReadAll()
}

func (s *Sheet) writeRows(rows [][]string) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// titleWords renders an enum-ish value for the sheet, e.g. "within_country"
// becomes "Within Country".
func titleWords(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
