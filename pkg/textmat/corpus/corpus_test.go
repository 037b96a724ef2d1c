package corpus

import (
	"strings"
	"testing"
)

func TestNewAssignsIDsInOrder(t *testing.T) {
	c := New([]string{"first", "second", "third"})

	if c.Len() != 3 {
		t.Fatalf("Expected 3 documents, got %d", c.Len())
	}
	for i := 0; i < c.Len(); i++ {
		if c.Doc(i).ID != i {
			t.Errorf("Document %d has ID %d", i, c.Doc(i).ID)
		}
	}
	if c.Doc(1).Text != "second" {
		t.Errorf("Expected 'second', got %q", c.Doc(1).Text)
	}
}

func TestApplyReturnsNewCorpus(t *testing.T) {
	original := New([]string{"Hello", "World"})
	upper := original.Apply(strings.ToUpper)

	// original must be untouched
	if original.Doc(0).Text != "Hello" {
		t.Errorf("Original corpus was mutated: %q", original.Doc(0).Text)
	}
	if upper.Doc(0).Text != "HELLO" || upper.Doc(1).Text != "WORLD" {
		t.Errorf("Transform not applied: %v", upper.Texts())
	}
	if upper.Len() != original.Len() {
		t.Errorf("Document count changed: %d vs %d", upper.Len(), original.Len())
	}
}

func TestApplyPreservesIDs(t *testing.T) {
	c := New([]string{"a", "b"}).Apply(strings.ToUpper)
	if c.Doc(0).ID != 0 || c.Doc(1).ID != 1 {
		t.Errorf("IDs changed: %d, %d", c.Doc(0).ID, c.Doc(1).ID)
	}
}

func TestPipelineRunsInOrder(t *testing.T) {
	p := Pipeline{
		func(s string) string { return s + "b" },
		func(s string) string { return s + "c" },
	}
	c := p.Run(New([]string{"a"}))
	if got := c.Doc(0).Text; got != "abc" {
		t.Errorf("Expected 'abc', got %q", got)
	}
}

func TestEmptyPipeline(t *testing.T) {
	c := New([]string{"unchanged"})
	out := Pipeline{}.Run(c)
	if out.Doc(0).Text != "unchanged" {
		t.Errorf("Empty pipeline altered text: %q", out.Doc(0).Text)
	}
}

func TestTextsCopy(t *testing.T) {
	c := New([]string{"a", "b"})
	texts := c.Texts()
	texts[0] = "mutated"
	if c.Doc(0).Text != "a" {
		t.Error("Texts() should return a copy")
	}
}
