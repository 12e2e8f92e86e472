// Package cli provides CLI output utilities for the travel planner.
package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/knowledge"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/models"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/sources"
)

// OutputFormat is the format for command output.
type OutputFormat string

const (
	// OutputText is human-readable text (default).
	OutputText OutputFormat = "text"
	// OutputJSON is structured JSON for machine consumption.
	OutputJSON OutputFormat = "json"
)

// ParseFormat validates a format flag value.
func ParseFormat(s string) (OutputFormat, error) {
	switch s {
	case "text", "":
		return OutputText, nil
	case "json":
		return OutputJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q; use text or json", s)
	}
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// WriteFacts writes retrieved facts to w in the given format.
func WriteFacts(w io.Writer, query, destination string, facts []knowledge.Fact, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, map[string]interface{}{
			"query":       query,
			"destination": destination,
			"facts":       facts,
		})
	}
	if len(facts) == 0 {
		fmt.Fprintf(w, "No facts found for %q.\n", query)
		return nil
	}
	fmt.Fprintf(w, "\nTop %d facts for %q", len(facts), query)
	if destination != "" {
		fmt.Fprintf(w, " (%s)", destination)
	}
	fmt.Fprintf(w, "\n\n")
	for i, f := range facts {
		fmt.Fprintf(w, "%d. [%.4f] %s\n", i+1, f.Distance, f.Text)
	}
	return nil
}

// WriteItinerary writes a generated itinerary to w in the given format.
func WriteItinerary(w io.Writer, itinerary *models.Itinerary, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, itinerary)
	}
	fmt.Fprintf(w, "\n=== Itinerary: %s ===\n\n", itinerary.Destination)
	fmt.Fprintln(w, itinerary.Content)
	if len(itinerary.Images) > 0 {
		fmt.Fprintln(w, "\nImages:")
		for _, img := range itinerary.Images {
			fmt.Fprintf(w, "  %s\n", img)
		}
	}
	return nil
}

// WriteAnswer writes an answer and its grounding facts to w in the given format.
func WriteAnswer(w io.Writer, answer *models.Answer, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, answer)
	}
	fmt.Fprintf(w, "\n%s\n", answer.Content)
	if len(answer.Facts) > 0 {
		fmt.Fprintln(w, "\nBased on:")
		for _, f := range answer.Facts {
			fmt.Fprintf(w, "  - %s\n", f)
		}
	}
	return nil
}

// WriteBuildSummary summarizes a knowledge-base build to w in the given format.
func WriteBuildSummary(w io.Writer, destination string, total int, outcomes []sources.Outcome, format OutputFormat) error {
	if format == OutputJSON {
		return writeJSON(w, map[string]interface{}{
			"destination": destination,
			"facts":       total,
			"sources":     outcomes,
		})
	}
	fmt.Fprintf(w, "Knowledge base for %s: %d facts\n", destination, total)
	for _, o := range outcomes {
		if o.Failed() {
			fmt.Fprintf(w, "  %-12s failed: %s\n", o.Source, o.Error)
		} else {
			fmt.Fprintf(w, "  %-12s %d facts\n", o.Source, o.Count)
		}
	}
	return nil
}
