// Package models defines request and response types shared by the planner,
// server, and CLI.
package models

import "fmt"

// Preferences describes the traveler profile used to generate an itinerary.
type Preferences struct {
	Destination            string   `json:"destination" yaml:"destination"`
	DurationDays           int      `json:"duration_days" yaml:"duration_days"`
	TravelStyle            string   `json:"travel_style" yaml:"travel_style"`
	Interests              []string `json:"interests" yaml:"interests"`
	Budget                 string   `json:"budget" yaml:"budget"`
	Travelers              string   `json:"travelers" yaml:"travelers"`
	TravelMonth            string   `json:"travel_month" yaml:"travel_month"`
	SpecificActivities     string   `json:"specific_activities,omitempty" yaml:"specific_activities"`
	DietaryRestrictions    string   `json:"dietary_restrictions,omitempty" yaml:"dietary_restrictions"`
	MobilityConsiderations string   `json:"mobility_considerations,omitempty" yaml:"mobility_considerations"`
}

// Validate checks required fields and normalizes the duration.
func (p *Preferences) Validate() error {
	if p.Destination == "" {
		return fmt.Errorf("destination is required")
	}
	if p.DurationDays <= 0 {
		p.DurationDays = 7
	}
	if p.DurationDays > 30 {
		p.DurationDays = 30
	}
	return nil
}

// Hotel is one hotel entry from the travel search engine.
type Hotel struct {
	Name        string  `json:"name"`
	Rating      float64 `json:"rating,omitempty"`
	Price       string  `json:"price,omitempty"`
	Description string  `json:"description,omitempty"`
}

// DestinationInfo bundles the presentation data fetched for a destination
// alongside the knowledge-base build.
type DestinationInfo struct {
	Destination string   `json:"destination"`
	Overview    string   `json:"overview,omitempty"`
	Images      []string `json:"images,omitempty"`
	Hotels      []Hotel  `json:"hotels,omitempty"`
}

// Itinerary is a generated day-by-day travel plan.
type Itinerary struct {
	Destination string   `json:"destination"`
	Content     string   `json:"content"`
	Images      []string `json:"images,omitempty"`
}

// Answer is a RAG-grounded reply to a free-text destination question.
type Answer struct {
	Query   string   `json:"query"`
	Subject string   `json:"subject,omitempty"`
	Content string   `json:"content"`
	Facts   []string `json:"facts,omitempty"`
	Images  []string `json:"images,omitempty"`
}
