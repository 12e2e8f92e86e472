package sources

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestNotesSource_Fetch(t *testing.T) {
	dir := t.TempDir()
	subjectDir := filepath.Join(dir, "new-york")
	if err := os.MkdirAll(subjectDir, 0755); err != nil {
		t.Fatal(err)
	}
	content := "The High Line is free to walk.\n\nBook Broadway tickets early.\n\n"
	if err := os.WriteFile(filepath.Join(subjectDir, "tips.txt"), []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	// Unsupported extension is skipped.
	if err := os.WriteFile(filepath.Join(subjectDir, "photo.jpg"), []byte{0xff}, 0644); err != nil {
		t.Fatal(err)
	}

	src := NewNotesSource(dir)
	facts, err := src.Fetch(context.Background(), "New York")
	if err != nil {
		t.Fatal(err)
	}
	if len(facts) != 2 {
		t.Fatalf("expected 2 facts, got %d: %v", len(facts), facts)
	}
	if facts[0] != "The High Line is free to walk." {
		t.Errorf("fact 0 = %q", facts[0])
	}
	if facts[1] != "Book Broadway tickets early." {
		t.Errorf("fact 1 = %q", facts[1])
	}
}

func TestNotesSource_MissingSubjectDir(t *testing.T) {
	src := NewNotesSource(t.TempDir())
	facts, err := src.Fetch(context.Background(), "Atlantis")
	if err != nil {
		t.Fatalf("missing notes dir is not an error: %v", err)
	}
	if len(facts) != 0 {
		t.Errorf("expected no facts, got %v", facts)
	}
}
