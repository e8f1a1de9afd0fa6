package static

import (
	"strings"
	"testing"
	"time"

	"github.com/raphi011/dot/internal/stats"
)

func TestWorshipperTableRow(t *testing.T) {
	t.Parallel()

	w := stats.Worshipper{
		Name:  "Ada",
		Count: 42,
		First: time.Date(2026, 1, 2, 8, 0, 0, 0, time.UTC),
		Last:  time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC),
	}

	row := WorshipperTableRow(3, w)

	// Must match headers: #, NAME, WORSHIPS, LAST
	if len(row) != len(WorshipperHeaders) {
		t.Fatalf("expected %d columns, got %d", len(WorshipperHeaders), len(row))
	}
	want := []string{"3", "Ada", "42", "2026-10-19"}
	for i := range want {
		if row[i] != want[i] {
			t.Errorf("column %d (%s) = %q, want %q", i, WorshipperHeaders[i], row[i], want[i])
		}
	}
}

func TestWorshipperTableRow_NoTimestamp(t *testing.T) {
	t.Parallel()

	row := WorshipperTableRow(1, stats.Worshipper{Name: "Grace", Count: 1})
	if row[3] != "" {
		t.Errorf("LAST column without timestamp = %q, want empty", row[3])
	}
}

func TestRenderTable(t *testing.T) {
	t.Parallel()

	got := RenderTable([]string{"NAME", "WORSHIPS"}, [][]string{
		{"Ada", "3"},
		{"Grace", "12"},
	})

	lines := strings.Split(strings.TrimRight(got, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("RenderTable() produced %d lines, want header + 2 rows:\n%s", len(lines), got)
	}
	if fields := strings.Fields(lines[0]); len(fields) != 2 || !strings.Contains(lines[0], "NAME") {
		t.Errorf("header line = %q", lines[0])
	}
	if fields := strings.Fields(lines[2]); len(fields) != 2 || fields[0] != "Grace" || fields[1] != "12" {
		t.Errorf("row line = %q", lines[2])
	}

	// Columns are aligned
	if strings.Index(lines[1], "3") != strings.Index(lines[2], "12") {
		t.Errorf("columns not aligned:\n%s", got)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	t.Parallel()

	if got := RenderTable([]string{"NAME"}, nil); got != "" {
		t.Errorf("RenderTable() without rows = %q, want empty", got)
	}
}
