package tui

import (
	"testing"

	"github.com/checkit/checkit/internal/checklist"
)

func TestBuildRows(t *testing.T) {
	secs := []checklist.Section{
		{ID: "s1", Name: "Shop", Items: []checklist.Item{
			{ID: "i1", Text: "Milk"},
			{ID: "i2", Text: "Bread"},
		}},
		{ID: "s2", Name: "Home"},
	}

	rows := buildRows(secs)

	wantKinds := []rowKind{rowSection, rowItem, rowItem, rowSection}
	if len(rows) != len(wantKinds) {
		t.Fatalf("expected %d rows, got %d", len(wantKinds), len(rows))
	}
	for i, want := range wantKinds {
		if rows[i].kind != want {
			t.Errorf("row %d kind = %v, want %v", i, rows[i].kind, want)
		}
	}
	if rows[1].itemIndex != 0 || rows[2].itemIndex != 1 {
		t.Errorf("item indices = %d, %d", rows[1].itemIndex, rows[2].itemIndex)
	}
	if rows[3].sectionID != "s2" {
		t.Errorf("last row section = %s", rows[3].sectionID)
	}
}

func TestPreviewMove(t *testing.T) {
	items := []checklist.Item{
		{ID: "a"}, {ID: "b"}, {ID: "c"},
	}

	ids := func(items []checklist.Item) string {
		s := ""
		for _, it := range items {
			s += it.ID
		}
		return s
	}

	tests := []struct {
		name     string
		from, to int
		want     string
	}{
		{"down", 0, 2, "bca"},
		{"up", 2, 0, "cab"},
		{"same", 1, 1, "abc"},
		{"clamped", -4, 9, "bca"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := previewMove(items, tt.from, tt.to)
			if ids(got) != tt.want {
				t.Errorf("preview = %s, want %s", ids(got), tt.want)
			}
			if ids(items) != "abc" {
				t.Fatalf("preview mutated the source: %s", ids(items))
			}
		})
	}

	if got := previewMove(nil, 0, 1); len(got) != 0 {
		t.Errorf("empty preview = %v", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{"exactly ten.", 12, "exactly ten."},
		{"a very long item text", 10, "a very lo…"},
		{"anything", 0, ""},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}

func TestValidDueDate(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"2025-03-15", true},
		{"2025-3-15", false},
		{"15-03-2025", false},
		{"banana", false},
		{"2025-13-40", false},
	}
	for _, tt := range tests {
		if got := validDueDate(tt.in); got != tt.want {
			t.Errorf("validDueDate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
