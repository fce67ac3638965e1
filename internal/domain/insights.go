package domain

// LLMInsightsOutput contains the structured output from the LLM.
// @Description LLM-generated sleep debt insights.
type LLMInsightsOutput struct {
	// Summary of sleep debt situation (2-3 sentences)
	Summary string `json:"summary" example:"Your sleep debt has grown to 12.5 hours over the last month..."`
	// Observations about debt and data quality (3-6 items)
	Observations []string `json:"observations" example:"[\"Most of the debt accumulated on weekdays\"]"`
	// Actionable guidance (3-5 items)
	Guidance []string `json:"guidance" example:"[\"Move bedtime 20 minutes earlier on weeknights\"]"`
}

// InsightsContext is the context object sent to the LLM.
// @Description Context data for LLM insights generation.
type InsightsContext struct {
	// Primary tracking goal, so guidance matches what the user cares about
	Goal TrackingGoal `json:"goal"`
	// Automated calculation over the trailing 30 days
	History AutomatedResult `json:"history"`
	// Automated calculation over the trailing 7 days
	Recent AutomatedResult `json:"recent"`
}

// InsightsResponse is the response for the insights endpoint.
// @Description Complete sleep debt insights response.
type InsightsResponse struct {
	// Automated calculation over the trailing 30 days
	History AutomatedResult `json:"history"`
	// Automated calculation over the trailing 7 days
	Recent AutomatedResult `json:"recent"`
	// LLM-generated insights
	Insights LLMInsightsOutput `json:"insights"`
	// Trace ID for feedback (optional, only present when Langfuse is enabled)
	TraceID string `json:"trace_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
}
