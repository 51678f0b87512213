package utils

import (
	"fmt"
	"strings"

	"globetrotter/internal/models/request_models"
)

const itinerarySchema = `{
  "sections": [
    {
      "name": "Day 1",
      "description": "short summary",
      "budget": 120,
      "start_date": "YYYY-MM-DD",
      "end_date": "YYYY-MM-DD",
      "activities": [
        {"activityId": "<id from the catalog>"},
        {"name": "<free text when nothing in the catalog fits>"}
      ]
    }
  ]
}`

// BuildItineraryPrompt renders the instruction shared by the LLM backed generators.
func BuildItineraryPrompt(p request_models.ItineraryPrompt) string {
	var catalog strings.Builder
	for _, a := range p.Activities {
		fmt.Fprintf(&catalog, "- ID:%s | Name:%s | Category:%s | City:%s", a.ID, a.Name, a.Category, a.CityID)
		if a.Cost != nil {
			fmt.Fprintf(&catalog, " | Cost:%.2f", *a.Cost)
		}
		if a.Duration != nil {
			fmt.Fprintf(&catalog, " | Hours:%.1f", *a.Duration)
		}
		catalog.WriteString("\n")
	}
	if catalog.Len() == 0 {
		catalog.WriteString("(catalog is empty, use free-text names)\n")
	}

	return fmt.Sprintf(`
You are planning a trip itinerary. Return **JSON only** matching the schema below.
Split the trip into sections (usually one per day) between %s and %s inclusive.
Prefer activities from the catalog and reference them by "activityId". Use "name" only when
no catalog entry fits. Budgets are numbers in the trip currency.

Schema (match keys exactly):
%s

Trip:
- Name: %s
- Description: %s

Catalog:
%s
Return JSON only. No comments, no markdown.
`, p.StartDate, p.EndDate, itinerarySchema, p.Name, p.Description, catalog.String())
}
