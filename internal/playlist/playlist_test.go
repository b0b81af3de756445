package playlist

import "testing"

func TestFromPathsDerivesTitles(t *testing.T) {
	p := FromPaths([]string{"notes/intro.md", "outro.txt"})
	if p.Len() != 2 {
		t.Fatalf("expected 2 documents, got %d", p.Len())
	}
	if got := p.Current().Title; got != "intro" {
		t.Fatalf("expected title intro, got %q", got)
	}
	if got := p.Current().Path; got != "notes/intro.md" {
		t.Fatalf("expected original path, got %q", got)
	}
}

func TestAdvanceAndPreviousStopAtEnds(t *testing.T) {
	p := FromPaths([]string{"a.txt", "b.txt"})

	if p.Previous() {
		t.Fatal("expected Previous to fail at the start")
	}
	if !p.Advance() {
		t.Fatal("expected Advance to succeed")
	}
	if got := p.Current().Title; got != "b" {
		t.Fatalf("expected b, got %q", got)
	}
	if p.Advance() {
		t.Fatal("expected Advance to fail at the end")
	}
	if !p.Previous() {
		t.Fatal("expected Previous to succeed")
	}
	if got := p.CurrentIndex(); got != 0 {
		t.Fatalf("expected index 0, got %d", got)
	}
}

func TestSetCurrentIndexIgnoresOutOfRange(t *testing.T) {
	p := FromPaths([]string{"a.txt", "b.txt"})
	p.SetCurrentIndex(5)
	if got := p.CurrentIndex(); got != 0 {
		t.Fatalf("expected unchanged index, got %d", got)
	}
	p.SetCurrentIndex(1)
	if got := p.CurrentIndex(); got != 1 {
		t.Fatalf("expected index 1, got %d", got)
	}
}

func TestCurrentNilWhenEmpty(t *testing.T) {
	p := New(nil)
	if p.Current() != nil {
		t.Fatal("expected nil current document")
	}
}
