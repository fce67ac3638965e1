package domain

// TrackingGoal is the user's primary reason for tracking sleep. It drives
// strategy selection when data quality is too poor for an adaptive pick.
// @Description Primary tracking goal.
type TrackingGoal string

const (
	GoalMotivation TrackingGoal = "motivation"
	GoalHealth     TrackingGoal = "health"
	GoalAccuracy   TrackingGoal = "accuracy"
	GoalBalanced   TrackingGoal = "balanced"
)

// Valid reports whether g is one of the known tracking goals.
func (g TrackingGoal) Valid() bool {
	switch g {
	case GoalMotivation, GoalHealth, GoalAccuracy, GoalBalanced:
		return true
	}
	return false
}

// CalculationQuery carries the per-request inputs of one automated
// calculation. A nil Period means the default trailing lookback. Goal and
// Adaptive, when set, override the user's stored settings for this run
// only; nothing is persisted.
type CalculationQuery struct {
	Period           *Period
	FillFromSchedule bool
	Goal             TrackingGoal
	Adaptive         *bool
}

// AutomationSettings configures the automated debt calculation. It is an
// explicit immutable value passed into every orchestrator call; there is
// no process-wide default mutation.
// @Description Settings for automated sleep debt calculation.
type AutomationSettings struct {
	PrimaryGoal TrackingGoal `json:"primary_goal" example:"balanced"`
	// Completeness below this triggers a data-collection recommendation
	DataQualityThreshold float64 `json:"data_quality_threshold" example:"0.7"`
	// Pick the strategy from measured data quality instead of the goal table
	AdaptiveStrategy    bool `json:"adaptive_strategy" example:"true"`
	WeeklyRecalculation bool `json:"weekly_recalculation" example:"true"`
	// Hours of debt above which companion notifications fire (external concern)
	NotificationThreshold float64 `json:"notification_threshold" example:"10"`
}

// DefaultAutomationSettings returns the stock settings.
func DefaultAutomationSettings() AutomationSettings {
	return AutomationSettings{
		PrimaryGoal:           GoalBalanced,
		DataQualityThreshold:  0.7,
		AdaptiveStrategy:      true,
		WeeklyRecalculation:   true,
		NotificationThreshold: 10.0,
	}
}

// RecommendationKind tags an advisory recommendation.
// @Description Advisory recommendation kind.
type RecommendationKind string

const (
	RecommendMaintain              RecommendationKind = "maintain"
	RecommendGradualImprovement    RecommendationKind = "gradual_improvement"
	RecommendActiveRecovery        RecommendationKind = "active_recovery"
	RecommendUrgentAttention       RecommendationKind = "urgent_attention"
	RecommendImproveDataCollection RecommendationKind = "improve_data_collection"
	RecommendEstablishRoutine      RecommendationKind = "establish_routine"
	RecommendRecentTracking        RecommendationKind = "recent_tracking"
)

// Recommendation is one human-readable advisory item.
// @Description Advisory recommendation with templated description.
type Recommendation struct {
	Kind        RecommendationKind `json:"kind" example:"gradual_improvement"`
	Title       string             `json:"title" example:"Gradual Sleep Improvement"`
	Description string             `json:"description" example:"You have 7.5 hours of sleep debt. Try going to bed 15-30 minutes earlier."`
}

// AutomatedResult bundles a full automated calculation: the debt result,
// the quality assessment it was based on, the strategy chosen from it,
// the advisory recommendations, and the settings used.
// @Description Complete automated sleep debt calculation result.
type AutomatedResult struct {
	Debt            SleepDebtResult     `json:"debt"`
	DataQuality     DataQuality         `json:"data_quality"`
	Strategy        MissingDataStrategy `json:"strategy" example:"use_average"`
	Recommendations []Recommendation    `json:"recommendations"`
	Settings        AutomationSettings  `json:"settings"`
	// True when the overall quality score exceeds 0.6
	IsReliable bool `json:"is_reliable" example:"true"`
	// Five-bucket confidence label derived from the overall quality score
	ConfidenceLevel string `json:"confidence_level" example:"High"`
}

// ConfidenceFor buckets an overall quality score into a confidence label.
func ConfidenceFor(overallScore float64) string {
	switch {
	case overallScore >= 0.85:
		return "Very High"
	case overallScore >= 0.7:
		return "High"
	case overallScore >= 0.55:
		return "Medium"
	case overallScore >= 0.4:
		return "Low"
	default:
		return "Very Low"
	}
}

// CalculationFrequency is how often a scheduled recalculation runs.
type CalculationFrequency string

const (
	FrequencyDaily   CalculationFrequency = "daily"
	FrequencyWeekly  CalculationFrequency = "weekly"
	FrequencyMonthly CalculationFrequency = "monthly"
)

// CalculationWindow is the lookback window of a scheduled recalculation.
type CalculationWindow string

const (
	WindowLast7Days  CalculationWindow = "last_7_days"
	WindowLast30Days CalculationWindow = "last_30_days"
	WindowLast90Days CalculationWindow = "last_90_days"
)

// CalculationMode is the strategy mode of a scheduled recalculation.
type CalculationMode string

const (
	ModeAdaptive      CalculationMode = "adaptive"
	ModeComprehensive CalculationMode = "comprehensive"
	ModeMinimal       CalculationMode = "minimal"
)

// ScheduledCalculation is a purely declarative descriptor of a periodic
// recalculation. Executing it is an external scheduler's responsibility.
// @Description Declarative periodic recalculation descriptor.
type ScheduledCalculation struct {
	Frequency CalculationFrequency `json:"frequency" example:"daily"`
	Window    CalculationWindow    `json:"window" example:"last_7_days"`
	Mode      CalculationMode      `json:"mode" example:"adaptive"`
}

// ScheduledCalculations is the descriptor list for a user's automation.
// @Description Set of declarative recalculation descriptors.
type ScheduledCalculations struct {
	Calculations []ScheduledCalculation `json:"calculations"`
}
