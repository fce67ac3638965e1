package debt

import "github.com/cloudnine/sleep-debt-api/internal/domain"

// SelectStrategy maps data-quality signals plus the user's tracking goal
// to an imputation strategy. With AdaptiveStrategy enabled the measured
// quality drives the pick; otherwise a fixed per-goal table applies. The
// two tables intentionally disagree for the accuracy and balanced goals.
func SelectStrategy(quality domain.DataQuality, settings domain.AutomationSettings) domain.MissingDataStrategy {
	if settings.AdaptiveStrategy {
		return adaptiveStrategy(quality, settings)
	}
	return staticStrategy(settings)
}

func adaptiveStrategy(quality domain.DataQuality, settings domain.AutomationSettings) domain.MissingDataStrategy {
	// Near-complete, regular data: interpolation is accurate.
	if quality.Completeness > 0.85 && quality.Consistency > 0.7 {
		return domain.StrategyInterpolate
	}

	// Good completeness with a weekend pattern: same-weekday averages.
	if quality.Completeness > 0.7 && quality.HasWeekendPattern {
		return domain.StrategyUseWeeklyPattern
	}

	// Moderate completeness: overall average.
	if quality.Completeness > 0.5 {
		return domain.StrategyUseAverage
	}

	// Poor data: fall back to the user's goal.
	switch settings.PrimaryGoal {
	case domain.GoalMotivation:
		return domain.StrategyAssumeRecommended
	case domain.GoalHealth:
		return domain.StrategyConservative
	case domain.GoalAccuracy:
		return domain.StrategyUseAverage
	default: // balanced
		if quality.Recency > 0.5 {
			return domain.StrategyUseAverage
		}
		return domain.StrategyConservative
	}
}

func staticStrategy(settings domain.AutomationSettings) domain.MissingDataStrategy {
	switch settings.PrimaryGoal {
	case domain.GoalMotivation:
		return domain.StrategyAssumeRecommended
	case domain.GoalHealth:
		return domain.StrategyConservative
	case domain.GoalAccuracy:
		return domain.StrategyInterpolate
	default: // balanced
		return domain.StrategyUseWeeklyPattern
	}
}
