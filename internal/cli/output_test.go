package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/knowledge"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/models"
	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/sources"
)

func TestParseFormat(t *testing.T) {
	if f, err := ParseFormat(""); err != nil || f != OutputText {
		t.Errorf("empty: %v %v", f, err)
	}
	if f, err := ParseFormat("json"); err != nil || f != OutputJSON {
		t.Errorf("json: %v %v", f, err)
	}
	if _, err := ParseFormat("yaml"); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriteFacts_text(t *testing.T) {
	var buf bytes.Buffer
	facts := []knowledge.Fact{
		{Text: "Best pasta is at Trattoria Roma.", Distance: 0.12},
		{Text: "The museum opens at 9am.", Distance: 0.80},
	}
	if err := WriteFacts(&buf, "pasta", "Rome", facts, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Trattoria Roma") || !strings.Contains(out, "1. ") {
		t.Errorf("output:\n%s", out)
	}
}

func TestWriteFacts_emptyText(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFacts(&buf, "pasta", "", nil, OutputText); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No facts found") {
		t.Errorf("output: %s", buf.String())
	}
}

func TestWriteFacts_json(t *testing.T) {
	var buf bytes.Buffer
	facts := []knowledge.Fact{{Text: "a fact", Distance: 0.5}}
	if err := WriteFacts(&buf, "q", "Rome", facts, OutputJSON); err != nil {
		t.Fatal(err)
	}
	var parsed struct {
		Query string `json:"query"`
		Facts []struct {
			Text string `json:"text"`
		} `json:"facts"`
	}
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatal(err)
	}
	if parsed.Query != "q" || len(parsed.Facts) != 1 || parsed.Facts[0].Text != "a fact" {
		t.Errorf("parsed: %+v", parsed)
	}
}

func TestWriteItinerary_text(t *testing.T) {
	var buf bytes.Buffer
	it := &models.Itinerary{
		Destination: "Rome",
		Content:     "Day 1: Colosseum.",
		Images:      []string{"http://img/1.jpg"},
	}
	if err := WriteItinerary(&buf, it, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Itinerary: Rome") || !strings.Contains(out, "Day 1") || !strings.Contains(out, "http://img/1.jpg") {
		t.Errorf("output:\n%s", out)
	}
}

func TestWriteAnswer_text(t *testing.T) {
	var buf bytes.Buffer
	ans := &models.Answer{
		Query:   "where to eat",
		Content: "Try Trattoria Roma.",
		Facts:   []string{"Best pasta is at Trattoria Roma."},
	}
	if err := WriteAnswer(&buf, ans, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "Try Trattoria Roma.") || !strings.Contains(out, "Based on:") {
		t.Errorf("output:\n%s", out)
	}
}

func TestWriteBuildSummary(t *testing.T) {
	var buf bytes.Buffer
	outcomes := []sources.Outcome{
		{Source: "wikipedia", Count: 1},
		{Source: "attractions", Error: "missing API key"},
	}
	if err := WriteBuildSummary(&buf, "Rome", 1, outcomes, OutputText); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "1 facts") || !strings.Contains(out, "failed: missing API key") {
		t.Errorf("output:\n%s", out)
	}
}
