package sources

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/extract"
	"github.com/Prateekkumar12345/AI-Travel-Planner/pkg/utils"
)

// NotesSource serves facts from local travel-note files. Notes for a subject
// live in <dir>/<subject slug>/ as .txt, .md, or .pdf files; each non-empty
// paragraph becomes one fact. A subject without a notes directory simply has
// no local facts.
type NotesSource struct {
	dir       string
	extractor *extract.Extractor
}

// NewNotesSource creates a notes source rooted at dir.
func NewNotesSource(dir string) *NotesSource {
	return &NotesSource{dir: dir, extractor: extract.NewExtractor()}
}

// Name returns the source name.
func (s *NotesSource) Name() string { return "notes" }

// Fetch reads every supported note file for subject, in file-name order.
func (s *NotesSource) Fetch(ctx context.Context, subject string) ([]string, error) {
	subjectDir := filepath.Join(s.dir, slug(subject))
	entries, err := os.ReadDir(subjectDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("notes: read dir: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !s.extractor.Supported(filepath.Ext(entry.Name())) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var facts []string
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		text, err := s.extractor.Extract(filepath.Join(subjectDir, name))
		if err != nil {
			return nil, fmt.Errorf("notes: %s: %w", name, err)
		}
		facts = append(facts, paragraphs(text)...)
	}
	return facts, nil
}

// paragraphs splits text on blank lines into cleaned snippets.
func paragraphs(text string) []string {
	var out []string
	for _, block := range strings.Split(text, "\n\n") {
		if p := utils.CleanSnippet(block); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// slug lowercases the subject and replaces spaces so "New York" maps to the
// directory name "new-york".
func slug(subject string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(subject)), " ", "-")
}
