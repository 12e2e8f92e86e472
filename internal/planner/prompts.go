package planner

import (
	"fmt"
	"strings"

	"github.com/Prateekkumar12345/AI-Travel-Planner/internal/models"
)

const itinerarySystemPrompt = `You are an expert travel planner. Your goal is to create a highly personalized and detailed travel itinerary based on the user's specific preferences.

Consider the following guidelines:
1. Tailor recommendations to the user's interests, budget, and travel style
2. Include a mix of popular attractions and off-the-beaten-path experiences
3. Provide practical details like estimated travel times, costs, and logistics
4. Suggest restaurants, activities, and accommodations that match the traveler's profile
5. Include cultural insights and local recommendations
6. Ensure the itinerary is realistic and well-paced`

const answerSystemPrompt = `You are a helpful travel assistant. Provide detailed and accurate answers to user queries about destinations, including recommendations for food, hotels, and activities based on their budget.`

func itineraryUserPrompt(p models.Preferences) string {
	orNone := func(s string) string {
		if s == "" {
			return "None specified"
		}
		return s
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Please create a detailed travel itinerary for my trip to %s:\n\n", p.Destination)
	fmt.Fprintf(&b, "Trip Details:\n")
	fmt.Fprintf(&b, "- Destination: %s\n", p.Destination)
	fmt.Fprintf(&b, "- Duration: %d days\n", p.DurationDays)
	fmt.Fprintf(&b, "- Travel Style: %s\n", p.TravelStyle)
	fmt.Fprintf(&b, "- Interests: %s\n", strings.Join(p.Interests, ", "))
	fmt.Fprintf(&b, "- Budget: %s\n", p.Budget)
	fmt.Fprintf(&b, "- Travelers: %s\n", p.Travelers)
	fmt.Fprintf(&b, "- Season/Month: %s\n\n", p.TravelMonth)
	fmt.Fprintf(&b, "Additional Context:\n")
	fmt.Fprintf(&b, "- Specific activities I'm interested in: %s\n", orNone(p.SpecificActivities))
	fmt.Fprintf(&b, "- Dietary restrictions: %s\n", orNone(p.DietaryRestrictions))
	fmt.Fprintf(&b, "- Mobility considerations: %s\n\n", orNone(p.MobilityConsiderations))
	fmt.Fprintf(&b, "Could you create a day-by-day itinerary that captures these preferences? Include recommended attractions, dining options, transportation details, and any special recommendations.")
	return b.String()
}

func answerUserPrompt(query, destination string, facts []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "User Query: %s\n", query)
	fmt.Fprintf(&b, "Destination: %s\n\n", destination)
	fmt.Fprintf(&b, "Relevant Information:\n%s\n\n", strings.Join(facts, "\n"))
	fmt.Fprintf(&b, "Provide a detailed response with recommendations. Include:\n")
	fmt.Fprintf(&b, "1. Specific places or activities\n")
	fmt.Fprintf(&b, "2. Estimated costs\n")
	fmt.Fprintf(&b, "3. Any additional tips or insights")
	return b.String()
}
