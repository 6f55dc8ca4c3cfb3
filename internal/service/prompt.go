package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkordes/holiday-planner/backend/internal/domain"
)

// PromptInput is everything the day plan prompts are built from.
type PromptInput struct {
	Trip        domain.TripContext
	DayNumber   int
	DayDate     time.Time
	Preferences string
	Exclusions  domain.Exclusions
}

const plannerGuidelines = `Guidelines:
- Plan 3-6 activities for a full day (can be fewer for relaxed days)
- Include a mix of activities: sightseeing, dining, entertainment, relaxation
- Use realistic timing (consider travel time, meal times, opening hours)
- Start the day around 8:00-9:00 AM
- Include at least one meal (lunch or dinner)
- Ensure activities are logically sequenced geographically when possible
- Provide specific venue names (real places when possible, or realistic examples)
- Consider the day of the week for opening hours and availability
- Suggest activities and venues that are different from any already planned

Time format: Use 24-hour format (HH:MM) for all times.`

// BuildSystemPrompt renders the planner instructions: trip context, the
// formatted date, the exclusion lists and the fixed authoring guidelines.
// The output depends only on in.
func BuildSystemPrompt(in PromptInput) string {
	var b strings.Builder

	b.WriteString("You are a professional travel planner creating detailed daily itineraries. ")
	b.WriteString("Your task is to generate a realistic and enjoyable day plan with specific activities, venues, and timing.\n\n")

	b.WriteString("Context:\n")
	fmt.Fprintf(&b, "- Holiday: %s in %s\n", in.Trip.DisplayName(), in.Trip.DisplayDestination())
	fmt.Fprintf(&b, "- Day: %d (%s)\n", in.DayNumber, in.DayDate.Format("Monday, January 2, 2006"))
	fmt.Fprintf(&b, "- Date: %s\n\n", in.DayDate.Format(domain.DateLayout))

	b.WriteString("IMPORTANT - Avoid Duplicates:\n")
	if in.Exclusions.Empty() {
		b.WriteString("This is the first day being planned, so no existing activities to avoid.\n\n")
	} else {
		b.WriteString("Do NOT suggest any of these activities that are already planned for other days:\n")
		writeBullets(&b, in.Exclusions.ActivityNames)
		b.WriteString("\nDo NOT suggest any of these venues that are already being visited:\n")
		writeBullets(&b, in.Exclusions.VenueNames)
		b.WriteString("\nMake sure to suggest completely different activities and venues from those listed above.\n\n")
	}

	b.WriteString(plannerGuidelines)
	return b.String()
}

// BuildUserPrompt renders the request for one day: destination, the user's
// preferences verbatim (or a well-rounded-day fallback) and, when other days
// are already planned, a reminder to avoid repeating them.
func BuildUserPrompt(in PromptInput) string {
	var b strings.Builder

	destination := in.Trip.Destination
	if destination == "" {
		destination = "the destination"
	}
	fmt.Fprintf(&b, "Plan activities for day %d of a trip to %s.", in.DayNumber, destination)

	if prefs := strings.TrimSpace(in.Preferences); prefs != "" {
		fmt.Fprintf(&b, "\n\nUser preferences: %s", prefs)
	} else {
		b.WriteString("\n\nNo specific preferences provided - create a well-rounded day with popular attractions, good food, and a mix of activities.")
	}

	if n := len(in.Exclusions.ActivityNames); n > 0 {
		fmt.Fprintf(&b, "\n\nIMPORTANT: This holiday already has %d activities planned for other days. ", n)
		b.WriteString("Make sure to suggest completely different activities and venues to avoid repetition and ensure variety throughout the trip.")
	}

	b.WriteString("\n\nGenerate a structured day plan with activities, specific venues, realistic timing, and helpful descriptions.")
	return b.String()
}

func writeBullets(b *strings.Builder, items []string) {
	for _, item := range items {
		b.WriteString("- ")
		b.WriteString(item)
		b.WriteByte('\n')
	}
}
