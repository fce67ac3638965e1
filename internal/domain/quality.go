package domain

// DataQuality is the computed quality assessment for one (records, period)
// pair. Planned records never count as real data here.
// @Description Data quality signals for a record set over a period.
type DataQuality struct {
	// availableDays / totalDaysInPeriod
	Completeness float64 `json:"completeness" example:"0.8"`
	// 1 - stddev(duration)/4h, floored at 0; 0 with fewer than two records
	Consistency float64 `json:"consistency" example:"0.7"`
	// Real records in the last 7 days of the period divided by 7 (unclamped)
	Recency float64 `json:"recency" example:"0.86"`
	// True when weekend and weekday mean durations differ by more than 30 minutes
	HasWeekendPattern bool `json:"has_weekend_pattern" example:"true"`
	TotalDays         int  `json:"total_days" example:"30"`
	AvailableDays     int  `json:"available_days" example:"24"`
	// Mean of completeness, consistency and recency
	OverallScore float64 `json:"overall_score" example:"0.79"`
	// Letter grade bucketed from the overall score
	Grade string `json:"grade" example:"C"`
}

// GradeFor buckets an overall score into a letter grade.
func GradeFor(overallScore float64) string {
	switch {
	case overallScore >= 0.9:
		return "A"
	case overallScore >= 0.8:
		return "B"
	case overallScore >= 0.7:
		return "C"
	case overallScore >= 0.6:
		return "D"
	default:
		return "F"
	}
}
