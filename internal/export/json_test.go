package export

import (
	"errors"
	"fmt"
	"testing"

	"github.com/nightcatdev/aiwrap/internal/model"
)

// conversationJSON builds one raw conversation object in the mapping
// graph layout the real export uses.
func conversationJSON(title string, createTime float64) string {
	return fmt.Sprintf(`{
		"title": %q,
		"create_time": %v,
		"mapping": {
			"node-b": {"message": {
				"author": {"role": "assistant"},
				"content": {"parts": ["Sure, here is how."]},
				"create_time": %v
			}},
			"node-a": {"message": {
				"author": {"role": "user"},
				"content": {"parts": ["How do I sort a slice?"]},
				"create_time": %v
			}},
			"node-sys": {"message": {
				"author": {"role": "system"},
				"content": {"parts": ["system prompt"]}
			}},
			"node-empty": {}
		}
	}`, title, createTime, createTime+60, createTime)
}

func TestDetectShape(t *testing.T) {
	conv := conversationJSON("Sorting help", 1710000000)

	tests := []struct {
		name      string
		data      string
		wantShape Shape
		wantCount int
	}{
		{"array", "[" + conv + "]", ShapeArray, 1},
		{"keyed object", `{"conversations": [` + conv + `]}`, ShapeKeyedObject, 1},
		{"id map", `{"conv-xyz": ` + conv + `, "conv-abc": ` + conv + `}`, ShapeIDMap, 2},
		{"empty array", "[]", ShapeArray, 0},
		{"unrelated object", `{"version": 3}`, ShapeUnknown, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape, raws, err := DetectShape([]byte(tt.data))
			if err != nil {
				t.Fatalf("DetectShape: %v", err)
			}
			if shape != tt.wantShape {
				t.Errorf("shape = %v, want %v", shape, tt.wantShape)
			}
			if len(raws) != tt.wantCount {
				t.Errorf("got %d conversations, want %d", len(raws), tt.wantCount)
			}
		})
	}
}

func TestDetectShapeMalformed(t *testing.T) {
	_, _, err := DetectShape([]byte(`{"conversations": [`))
	var pe *model.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error = %v, want *model.ParseError", err)
	}
}

func TestExtractJSONShapeEquivalence(t *testing.T) {
	conv := conversationJSON("Sorting help", 1710000000)
	variants := map[string]string{
		"array":        "[" + conv + "]",
		"keyed object": `{"conversations": [` + conv + `]}`,
		"id map":       `{"conv-xyz": ` + conv + `}`,
	}

	for name, data := range variants {
		t.Run(name, func(t *testing.T) {
			records, err := ExtractJSON([]byte(data))
			if err != nil {
				t.Fatalf("ExtractJSON: %v", err)
			}
			if len(records) != 1 {
				t.Fatalf("got %d records, want 1", len(records))
			}

			rec := records[0]
			if rec.Title != "Sorting help" {
				t.Errorf("Title = %q", rec.Title)
			}
			if rec.CreatedAt.IsZero() {
				t.Error("CreatedAt is zero")
			}
			// System node skipped, empty node skipped
			if len(rec.Turns) != 2 {
				t.Fatalf("got %d turns, want 2", len(rec.Turns))
			}
			// Timestamp ordering puts the user turn first
			if rec.Turns[0].Role != model.RoleUser {
				t.Errorf("Turns[0].Role = %q, want user", rec.Turns[0].Role)
			}
			if rec.Turns[1].Role != model.RoleAssistant {
				t.Errorf("Turns[1].Role = %q, want assistant", rec.Turns[1].Role)
			}
			if rec.Turns[0].Text != "How do I sort a slice?" {
				t.Errorf("Turns[0].Text = %q", rec.Turns[0].Text)
			}
		})
	}
}

func TestExtractJSONUntitled(t *testing.T) {
	records, err := ExtractJSON([]byte(`[{"mapping": {
		"n1": {"message": {"author": {"role": "user"}, "content": {"parts": ["hi"]}}}
	}}]`))
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Title != model.DefaultTitle {
		t.Errorf("Title = %q, want %q", records[0].Title, model.DefaultTitle)
	}
}

func TestExtractJSONNonStringParts(t *testing.T) {
	// Multimodal parts appear as objects; only string parts count as text
	records, err := ExtractJSON([]byte(`[{"title": "mixed", "mapping": {
		"n1": {"message": {"author": {"role": "user"},
			"content": {"parts": [{"content_type": "image"}, "describe this"]}}}
	}}]`))
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	if got := records[0].Turns[0].Text; got != "describe this" {
		t.Errorf("Text = %q, want just the string part", got)
	}
}

func TestExtractJSONDeterministic(t *testing.T) {
	data := []byte(`{"conv-b": ` + conversationJSON("Second", 1710005000) +
		`, "conv-a": ` + conversationJSON("First", 1710000000) + `}`)

	first, err := ExtractJSON(data)
	if err != nil {
		t.Fatalf("ExtractJSON: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := ExtractJSON(data)
		if err != nil {
			t.Fatalf("ExtractJSON: %v", err)
		}
		if len(again) != len(first) {
			t.Fatalf("record count flapped: %d vs %d", len(again), len(first))
		}
		for j := range again {
			if again[j].ID != first[j].ID || again[j].Title != first[j].Title {
				t.Fatalf("record order flapped at %d: %q vs %q", j, again[j].Title, first[j].Title)
			}
		}
	}
}
