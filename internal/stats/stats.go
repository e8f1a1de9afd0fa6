// Package stats keeps a persistent history of worship events in a JSON file
// (default ~/.dot/stats.json). It is separate from the in-process counter of
// the dot package, which always starts at zero.
package stats

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/renameio/v2"
)

// Worshipper aggregates the events of one name.
type Worshipper struct {
	Name  string    `json:"name" yaml:"name"`
	Count int       `json:"count" yaml:"count"`
	First time.Time `json:"first_worship" yaml:"first_worship"`
	Last  time.Time `json:"last_worship" yaml:"last_worship"`
}

// Stats is the on-disk document.
type Stats struct {
	Total       int            `json:"total_worships"`
	Worshippers []Worshipper   `json:"worshippers"`
	Daily       map[string]int `json:"daily_worships"` // YYYY-MM-DD -> count
	First       *time.Time     `json:"first_worship,omitempty"`
	Last        *time.Time     `json:"last_worship,omitempty"`

	path string
	now  func() time.Time
}

// Summary condenses Stats for display.
type Summary struct {
	Total      int        `json:"total_worships" yaml:"total_worships"`
	Unique     int        `json:"unique_worshippers" yaml:"unique_worshippers"`
	DaysActive int        `json:"days_active" yaml:"days_active"`
	First      *time.Time `json:"first_worship,omitempty" yaml:"first_worship,omitempty"`
	Last       *time.Time `json:"last_worship,omitempty" yaml:"last_worship,omitempty"`
}

func empty(path string) *Stats {
	return &Stats{Daily: map[string]int{}, path: path, now: time.Now}
}

// Load reads stats from path. A missing or corrupted file yields empty stats.
func Load(path string) (*Stats, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return empty(path), nil
		}
		return nil, err
	}

	s := empty(path)
	if err := json.Unmarshal(data, s); err != nil {
		// Corrupted - start fresh
		return empty(path), nil
	}
	if s.Daily == nil {
		s.Daily = map[string]int{}
	}
	return s, nil
}

// Record adds a worship event for name and returns that worshipper's entry.
// The caller persists with Save.
func (s *Stats) Record(name string) Worshipper {
	now := s.now()
	s.Total++
	s.Daily[now.Format(time.DateOnly)]++
	if s.First == nil {
		s.First = &now
	}
	s.Last = &now

	for i := range s.Worshippers {
		if s.Worshippers[i].Name == name {
			s.Worshippers[i].Count++
			s.Worshippers[i].Last = now
			return s.Worshippers[i]
		}
	}
	w := Worshipper{Name: name, Count: 1, First: now, Last: now}
	s.Worshippers = append(s.Worshippers, w)
	return w
}

// Summary returns the aggregate view.
func (s *Stats) Summary() Summary {
	return Summary{
		Total:      s.Total,
		Unique:     len(s.Worshippers),
		DaysActive: len(s.Daily),
		First:      s.First,
		Last:       s.Last,
	}
}

// Top returns up to n worshippers by count, ties broken by name.
func (s *Stats) Top(n int) []Worshipper {
	out := make([]Worshipper, len(s.Worshippers))
	copy(out, s.Worshippers)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}

// DayCount is the number of worships on one date.
type DayCount struct {
	Date  string `json:"date" yaml:"date"`
	Count int    `json:"count" yaml:"count"`
}

// Recent returns the counts of the latest days with activity, newest first.
func (s *Stats) Recent(days int) []DayCount {
	dates := make([]string, 0, len(s.Daily))
	for d := range s.Daily {
		dates = append(dates, d)
	}
	// YYYY-MM-DD sorts chronologically
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if days >= 0 && days < len(dates) {
		dates = dates[:days]
	}

	out := make([]DayCount, 0, len(dates))
	for _, d := range dates {
		out = append(out, DayCount{Date: d, Count: s.Daily[d]})
	}
	return out
}

// Reset clears all history. The caller persists with Save.
func (s *Stats) Reset() {
	path, now := s.path, s.now
	*s = *empty(path)
	s.now = now
}

// Save writes the stats atomically, creating the parent directory.
func (s *Stats) Save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return renameio.WriteFile(s.path, data, 0o600)
}

// Path returns the file backing s.
func (s *Stats) Path() string {
	return s.path
}
