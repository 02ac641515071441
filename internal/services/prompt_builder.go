package services

import (
	"fmt"
	"strings"

	"github.com/yuqiannemo/WanderMind/internal/models/response_models"
)

// The system prompt is shared by all three operations: it pins the model to
// JSON-only output.
const jsonOnlySystemPrompt = "You are a travel expert who returns responses in valid JSON format only."

// attractionCategories is the advisory vocabulary given to the model for
// recommendations. It is not enforced on the way back in.
var attractionCategories = []string{
	"Museum", "Historical Site", "Nature & Parks", "Food & Dining",
	"Shopping", "Entertainment", "Architecture", "Cultural Experience",
	"Adventure", "Beach",
}

// BuildRecommendPrompt constructs the prompt pair asking for 8-10 attraction
// proposals matching the trip parameters.
func BuildRecommendPrompt(city string, days int, interests []string) (string, string) {
	var prompt strings.Builder

	prompt.WriteString("You are an expert travel planner. Generate attraction recommendations for a trip.\n\n")
	prompt.WriteString(fmt.Sprintf("Location: %s\n", city))
	prompt.WriteString(fmt.Sprintf("Duration: %d days\n", days))
	prompt.WriteString(fmt.Sprintf("Interests: %s\n\n", strings.Join(interests, ", ")))

	prompt.WriteString("Generate 8-10 diverse attractions that match the user's interests. Return ONLY a valid JSON array with this exact structure:\n")
	prompt.WriteString(`[
  {
    "name": "Attraction Name",
    "description": "Brief engaging description (1-2 sentences)",
    "duration_hr": 2.5,
    "category": "Museum"
  }
]`)
	prompt.WriteString("\n\nCategories should be one of: ")
	prompt.WriteString(strings.Join(attractionCategories, ", "))
	prompt.WriteString("\n\nEnsure the JSON is properly formatted and parseable. Do not include any text before or after the JSON array.")

	return jsonOnlySystemPrompt, prompt.String()
}

// BuildRoutePrompt constructs the prompt pair asking the model to sequence
// the selected attractions into a day-by-day itinerary. The operational
// constraints (opening hours, travel times, daily budget, start time) are
// guidance only; the pipeline does not verify the model obeyed them.
func BuildRoutePrompt(city string, days int, attractions []response_models.Attraction) (string, string) {
	var attractionList strings.Builder
	for _, a := range attractions {
		attractionList.WriteString(fmt.Sprintf("- %s (%s, %gh)\n", a.Name, a.Category, a.DurationHr))
	}

	var prompt strings.Builder
	prompt.WriteString("You are an expert travel planner. Create an optimized itinerary.\n\n")
	prompt.WriteString(fmt.Sprintf("Location: %s\n", city))
	prompt.WriteString(fmt.Sprintf("Duration: %d days\n", days))
	prompt.WriteString("Selected Attractions:\n")
	prompt.WriteString(attractionList.String())

	prompt.WriteString(`
Create a logical route that:
1. Groups nearby attractions
2. Considers opening hours (assume museums 10am-6pm, outdoor sites 8am-8pm)
3. Includes realistic travel times (15-30 min between stops)
4. Balances each day (6-8 hours of activities)
5. Starts at 9:00 AM each day

Return ONLY a valid JSON object with this structure:
{
  "stops": [
    {
      "attraction_name": "Name",
      "order": 1,
      "day": 1,
      "startTime": "09:00",
      "endTime": "11:00",
      "travelTimeToNext": 20
    }
  ],
  "summary": "A natural language summary of the itinerary (2-3 sentences)"
}

Ensure order starts at 1 and increments. The last stop of each day should have travelTimeToNext: null.
Return ONLY valid JSON, no other text.`)

	return jsonOnlySystemPrompt, prompt.String()
}

// BuildRefinePrompt constructs the prompt pair that seeds the model with the
// current route and the user's free-text change request.
func BuildRefinePrompt(currentRoute response_models.TravelRoute, message string) (string, string) {
	var routeText strings.Builder
	for _, stop := range currentRoute.Stops {
		routeText.WriteString(fmt.Sprintf("Day %d, Stop %d: %s (%s-%s)\n",
			stop.Day, stop.Order, stop.Attraction.Name, stop.StartTime, stop.EndTime))
	}

	var prompt strings.Builder
	prompt.WriteString("You are a travel planner helping refine an itinerary.\n\n")
	prompt.WriteString("Current Route:\n")
	prompt.WriteString(routeText.String())
	prompt.WriteString(fmt.Sprintf("\nUser Request: %s\n", message))

	prompt.WriteString(`
Modify the route according to the user's request. Return ONLY a valid JSON object with this structure:
{
  "stops": [
    {
      "attraction_name": "Name",
      "order": 1,
      "day": 1,
      "startTime": "09:00",
      "endTime": "11:00",
      "travelTimeToNext": 20
    }
  ],
  "summary": "A natural language summary explaining the changes made (2-3 sentences)"
}

Return ONLY valid JSON, no other text.`)

	return jsonOnlySystemPrompt, prompt.String()
}
