package checklist

import (
	"reflect"
	"testing"
)

func TestParseDocumentMalformedJSON(t *testing.T) {
	_, err := ParseDocument([]byte("{not json"))
	pe, ok := AsParseError(err)
	if !ok {
		t.Fatalf("expected ParseError, got %v", err)
	}
	if !pe.IsMalformedJSON() {
		t.Errorf("expected MalformedJSON kind, got %v", pe.Kind)
	}
}

func TestParseDocumentSchemaMismatch(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"array at top level", `[1, 2, 3]`},
		{"string at top level", `"hello"`},
		{"missing sections", `{"title": "x"}`},
		{"sections not an array", `{"sections": 5}`},
		{"sections is object", `{"sections": {"a": 1}}`},
		{"null", `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDocument([]byte(tt.in))
			pe, ok := AsParseError(err)
			if !ok {
				t.Fatalf("expected ParseError, got %v", err)
			}
			if !pe.IsSchemaMismatch() {
				t.Errorf("expected SchemaMismatch kind, got %v", pe.Kind)
			}
		})
	}
}

func TestParseDocumentCoercesLeafFields(t *testing.T) {
	in := `{"sections":[{"name":"X","items":[{"text":"t","done":"yes","dueDate":5}]}]}`

	doc, err := ParseDocument([]byte(in))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Title != DefaultTitle {
		t.Errorf("title = %q, want default %q", doc.Title, DefaultTitle)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(doc.Sections))
	}
	sec := doc.Sections[0]
	if sec.Name != "X" {
		t.Errorf("name = %q", sec.Name)
	}
	if sec.ID == "" {
		t.Error("missing section id was not generated")
	}
	if len(sec.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(sec.Items))
	}
	it := sec.Items[0]
	if it.Text != "t" {
		t.Errorf("text = %q", it.Text)
	}
	if !it.Done {
		t.Error(`done = false, want true ("yes" is truthy)`)
	}
	if it.DueDate != "" {
		t.Errorf("dueDate = %q, want empty (non-string rejected)", it.DueDate)
	}
	if it.ID == "" {
		t.Error("missing item id was not generated")
	}
}

func TestParseDocumentTruthiness(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"true", `true`, true},
		{"false", `false`, false},
		{"null", `null`, false},
		{"zero", `0`, false},
		{"number", `2`, true},
		{"empty string", `""`, false},
		{"string", `"no"`, true},
		{"object", `{}`, true},
		{"array", `[]`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := `{"sections":[{"items":[{"done":` + tt.in + `}]}]}`
			doc, err := ParseDocument([]byte(in))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := doc.Sections[0].Items[0].Done; got != tt.want {
				t.Errorf("done = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseDocumentDefaultSectionName(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"sections":[{"id":"s1"},{"name":42}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Sections[0].Name != "Section" {
		t.Errorf("absent name = %q, want %q", doc.Sections[0].Name, "Section")
	}
	if doc.Sections[1].Name != "Section" {
		t.Errorf("non-string name = %q, want %q", doc.Sections[1].Name, "Section")
	}
	if doc.Sections[0].ID != "s1" {
		t.Errorf("existing id should be kept, got %q", doc.Sections[0].ID)
	}
}

func TestParseDocumentNonObjectSection(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"sections":[42, "x"]}`))
	if err != nil {
		t.Fatalf("coercion should be total after the schema check: %v", err)
	}
	if len(doc.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(doc.Sections))
	}
	for i, sec := range doc.Sections {
		if sec.Name != "Section" || sec.ID == "" {
			t.Errorf("section %d = %+v", i, sec)
		}
	}
}

func TestParseDocumentEmptySectionsRestoresDefault(t *testing.T) {
	doc, err := ParseDocument([]byte(`{"sections":[]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(doc.Sections) != 1 {
		t.Fatalf("expected the default section, got %d sections", len(doc.Sections))
	}
	if doc.Sections[0].Name != "General" {
		t.Errorf("section name = %q, want %q", doc.Sections[0].Name, "General")
	}
}

func TestRoundTrip(t *testing.T) {
	s := NewStore(Seed(), nil)
	s.SetTitle("Trip list")
	sec := s.AddSection()
	s.RenameSection(sec.ID, "Packing")
	it := s.AddItem(sec.ID)
	due := "2030-06-01"
	text := "Passport"
	done := true
	s.UpdateItem(sec.ID, it.ID, ItemPatch{Text: &text, DueDate: &due, Done: &done})
	s.AddItem(sec.ID)
	s.ReorderItems(sec.ID, 0, 1)

	data, err := Serialize(s.Document())
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	got, err := ParseDocument(data)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if !reflect.DeepEqual(got, s.Document()) {
		t.Errorf("round-trip altered the document:\n got %+v\nwant %+v", got, s.Document())
	}
}
