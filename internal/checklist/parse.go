package checklist

import (
	"encoding/json"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// documentSchema is the structural contract for imported documents:
// an object carrying a sections array. Everything below that level is
// coerced rather than validated, so a backup with damaged leaf fields
// restores as much as possible instead of failing wholesale.
const documentSchema = `{
	"type": "object",
	"required": ["sections"],
	"properties": {
		"sections": {"type": "array"}
	}
}`

var documentSchemaCompiled = jsonschema.MustCompileString("document.json", documentSchema)

// ParseDocument turns untrusted JSON into a well-formed document or
// rejects it with a *ParseError. After the structural check passes,
// parsing is total: malformed leaf fields are normalized to safe
// defaults, never rejected.
func ParseDocument(data []byte) (*Document, error) {
	var raw interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Kind: MalformedJSON, Err: err}
	}
	if err := documentSchemaCompiled.Validate(raw); err != nil {
		return nil, &ParseError{Kind: SchemaMismatch, Err: err}
	}

	obj := raw.(map[string]interface{})
	doc := &Document{Title: coerceTitle(obj["title"])}

	rawSections, _ := obj["sections"].([]interface{})
	doc.Sections = make([]Section, 0, len(rawSections))
	for _, rs := range rawSections {
		// A non-object entry degrades to an empty default section.
		m, _ := rs.(map[string]interface{})
		sec := Section{
			ID:   coerceID(m["id"]),
			Name: coerceString(m["name"], "Section"),
		}
		rawItems, _ := m["items"].([]interface{})
		sec.Items = make([]Item, 0, len(rawItems))
		for _, ri := range rawItems {
			im, _ := ri.(map[string]interface{})
			sec.Items = append(sec.Items, Item{
				ID:      coerceID(im["id"]),
				Text:    coerceString(im["text"], ""),
				Done:    truthy(im["done"]),
				DueDate: coerceString(im["dueDate"], ""),
			})
		}
		doc.Sections = append(doc.Sections, sec)
	}
	// A document never has zero sections; an empty array restores to
	// the same default a fresh start would use.
	if len(doc.Sections) == 0 {
		doc.Sections = Seed().Sections
	}
	return doc, nil
}

// Serialize renders the document as pretty-printed JSON, the shape
// both the autosave slot and backup files use.
func Serialize(doc *Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}

// coerceTitle keeps a non-empty string title, else the default.
func coerceTitle(v interface{}) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return DefaultTitle
}

// coerceID keeps a non-empty string id, else generates a fresh one.
func coerceID(v interface{}) string {
	if s, ok := v.(string); ok && s != "" {
		return s
	}
	return NewID()
}

// coerceString keeps string values and replaces anything else.
func coerceString(v interface{}, def string) string {
	if s, ok := v.(string); ok {
		return s
	}
	return def
}

// truthy maps any JSON value onto a boolean the way a dynamically
// typed reader of old backups would: null/false/""/0 are false,
// everything else is true.
func truthy(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0
	default:
		return true
	}
}
