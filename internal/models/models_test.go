package models

import "testing"

func TestPreferences_Validate(t *testing.T) {
	p := &Preferences{Destination: "Kyoto"}
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
	if p.DurationDays != 7 {
		t.Errorf("expected default duration 7, got %d", p.DurationDays)
	}

	p = &Preferences{Destination: "Kyoto", DurationDays: 90}
	if err := p.Validate(); err != nil {
		t.Fatal(err)
	}
	if p.DurationDays != 30 {
		t.Errorf("expected duration clamped to 30, got %d", p.DurationDays)
	}

	p = &Preferences{}
	if err := p.Validate(); err == nil {
		t.Error("expected error for missing destination")
	}
}
