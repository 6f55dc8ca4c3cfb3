package service

// Generation settings for a day plan.
const (
	dayPlanSchemaName  = "day_plan"
	dayPlanTemperature = 0.7
	dayPlanMaxTokens   = 2000
	minPlanActivities  = 1
	maxPlanActivities  = 8
)

// DayPlanSchema returns the JSON Schema the model output is constrained to.
// The same bounds are enforced again by ParseDayPlan after the call returns.
// A new map is built on every call so callers may not mutate a shared value.
func DayPlanSchema() map[string]any {
	activity := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"activity_name": map[string]any{
				"type":        "string",
				"description": "Name of the activity",
			},
			"venue_name": map[string]any{
				"type":        "string",
				"description": "Location/venue where the activity takes place",
			},
			"start_time": map[string]any{
				"type":        "string",
				"pattern":     clockPattern,
				"description": "Start time in HH:MM format (24-hour)",
			},
			"description": map[string]any{
				"type":        "string",
				"description": "Optional description or notes about the activity",
			},
			"sort_order": map[string]any{
				"type":        "integer",
				"minimum":     1,
				"description": "Order of the activity in the day (starting from 1)",
			},
		},
		"required":             []string{"activity_name", "venue_name", "start_time", "sort_order"},
		"additionalProperties": false,
	}

	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"activities": map[string]any{
				"type":        "array",
				"minItems":    minPlanActivities,
				"maxItems":    maxPlanActivities,
				"items":       activity,
				"description": "List of activities for the day (1-8 activities)",
			},
		},
		"required":             []string{"activities"},
		"additionalProperties": false,
	}
}
