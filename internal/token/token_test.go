package token_test

import (
	"strings"
	"testing"

	"notedown/internal/token"
)

var noteExtensions = []string{".md", ".markdown"}

func TestClassify(t *testing.T) {
	doc := "See [[Project Plan]] for #urgent items."

	tests := []struct {
		name         string
		doc          string
		offset       int
		wantKind     token.Kind
		wantText     string
		wantHasExt   bool
		wantSpanText string
	}{
		{
			name:         "cursor inside link word",
			doc:          doc,
			offset:       strings.Index(doc, "Project") + 2,
			wantKind:     token.Link,
			wantText:     "Project Plan",
			wantSpanText: "[[Project Plan",
		},
		{
			name:         "cursor inside tag",
			doc:          doc,
			offset:       strings.Index(doc, "urgent") + 3,
			wantKind:     token.Tag,
			wantText:     "urgent",
			wantSpanText: "#urgent",
		},
		{
			name:     "cursor in plain text",
			doc:      doc,
			offset:   strings.Index(doc, "See") + 1,
			wantKind: token.None,
		},
		{
			name:         "link with extension",
			doc:          "open [[notes/plan.md]] now",
			offset:       10,
			wantKind:     token.Link,
			wantText:     "notes/plan.md",
			wantHasExt:   true,
			wantSpanText: "[[notes/plan.md",
		},
		{
			name:         "extension match is case-insensitive",
			doc:          "open [[PLAN.MD]]",
			offset:       9,
			wantKind:     token.Link,
			wantText:     "PLAN.MD",
			wantHasExt:   true,
			wantSpanText: "[[PLAN.MD",
		},
		{
			name:         "tag keeps marker in span only",
			doc:          "#todo",
			offset:       3,
			wantKind:     token.Tag,
			wantText:     "todo",
			wantSpanText: "#todo",
		},
		{
			name:         "cursor at token end boundary",
			doc:          "#todo next",
			offset:       5,
			wantKind:     token.Tag,
			wantText:     "todo",
			wantSpanText: "#todo",
		},
		{
			name:     "empty document",
			doc:      "",
			offset:   0,
			wantKind: token.None,
		},
		{
			name:     "offset out of range",
			doc:      "#todo",
			offset:   99,
			wantKind: token.None,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := token.Classify(tt.doc, tt.offset, noteExtensions)
			if tok.Kind != tt.wantKind {
				t.Fatalf("Classify() kind = %v, want %v", tok.Kind, tt.wantKind)
			}
			if tok.Text != tt.wantText {
				t.Errorf("Classify() text = %q, want %q", tok.Text, tt.wantText)
			}
			if tok.HasExtension != tt.wantHasExt {
				t.Errorf("Classify() hasExtension = %v, want %v", tok.HasExtension, tt.wantHasExt)
			}
			if tt.wantSpanText != "" {
				got := tt.doc[tok.Span.Start:tok.Span.End]
				if got != tt.wantSpanText {
					t.Errorf("Classify() span covers %q, want %q", got, tt.wantSpanText)
				}
			}
		})
	}
}

// Exactly one kind may ever be active for a given position.
func TestClassifyExclusive(t *testing.T) {
	doc := "mix of [[a-link]] and #a-tag and text\nsecond #line [[here]]"
	for offset := 0; offset <= len(doc); offset++ {
		tok := token.Classify(doc, offset, noteExtensions)
		switch tok.Kind {
		case token.None:
			if tok.Text != "" || tok.Span != (token.Span{}) {
				t.Errorf("offset %d: None kind carries text/span: %+v", offset, tok)
			}
		case token.Tag, token.Link:
			if tok.Text == "" {
				t.Errorf("offset %d: %v kind with empty text", offset, tok.Kind)
			}
			if tok.Span.End <= tok.Span.Start {
				t.Errorf("offset %d: empty span: %+v", offset, tok)
			}
		default:
			t.Fatalf("offset %d: impossible kind %v", offset, tok.Kind)
		}
	}
}

func TestTagsIn(t *testing.T) {
	doc := "#urgent stuff\nplain line\nmore #urgent and #later_maybe #x-1"
	got := token.TagsIn(doc)
	want := []string{"urgent", "urgent", "later_maybe", "x-1"}
	if len(got) != len(want) {
		t.Fatalf("TagsIn() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TagsIn()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
