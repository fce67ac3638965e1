package debt

import (
	"fmt"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
)

const (
	lowConsistencyThreshold = 0.5
	lowRecencyThreshold     = 0.5
)

// GenerateRecommendations assembles the advisory list for a debt result
// and its quality assessment, in fixed order: data collection first, then
// exactly one severity-driven item, then routine and recency nudges.
func GenerateRecommendations(result domain.SleepDebtResult, quality domain.DataQuality, settings domain.AutomationSettings) []domain.Recommendation {
	var recs []domain.Recommendation

	if quality.Completeness < settings.DataQualityThreshold {
		recs = append(recs, improveDataCollection(quality.Completeness, settings.DataQualityThreshold))
	}

	switch result.Severity {
	case domain.SeverityMinimal:
		recs = append(recs, maintain())
	case domain.SeverityModerate:
		recs = append(recs, gradualImprovement(result.TotalDebtHours))
	case domain.SeveritySignificant:
		recs = append(recs, activeRecovery(result.TotalDebtHours))
	case domain.SeveritySevere:
		recs = append(recs, urgentAttention(result.TotalDebtHours))
	}

	if quality.Consistency < lowConsistencyThreshold {
		recs = append(recs, establishRoutine())
	}

	if quality.Recency < lowRecencyThreshold {
		recs = append(recs, recentTracking())
	}

	return recs
}

func maintain() domain.Recommendation {
	return domain.Recommendation{
		Kind:        domain.RecommendMaintain,
		Title:       "Keep It Up!",
		Description: "Your sleep debt is minimal. Continue your current habits.",
	}
}

func gradualImprovement(debtHours float64) domain.Recommendation {
	return domain.Recommendation{
		Kind:        domain.RecommendGradualImprovement,
		Title:       "Gradual Sleep Improvement",
		Description: fmt.Sprintf("You have %.1f hours of sleep debt. Try going to bed 15-30 minutes earlier.", debtHours),
	}
}

func activeRecovery(debtHours float64) domain.Recommendation {
	return domain.Recommendation{
		Kind:        domain.RecommendActiveRecovery,
		Title:       "Active Sleep Recovery",
		Description: fmt.Sprintf("You have %.1f hours of sleep debt. Consider weekend recovery sleep and earlier bedtimes.", debtHours),
	}
}

func urgentAttention(debtHours float64) domain.Recommendation {
	return domain.Recommendation{
		Kind:        domain.RecommendUrgentAttention,
		Title:       "Urgent Sleep Attention Needed",
		Description: fmt.Sprintf("You have %.1f hours of sleep debt. This may impact your health. Prioritize sleep immediately.", debtHours),
	}
}

func improveDataCollection(currentRate, target float64) domain.Recommendation {
	return domain.Recommendation{
		Kind:        domain.RecommendImproveDataCollection,
		Title:       "Improve Sleep Tracking",
		Description: fmt.Sprintf("Only %.0f%% of sleep data available. Aim for %.0f%% for better insights.", currentRate*100, target*100),
	}
}

func establishRoutine() domain.Recommendation {
	return domain.Recommendation{
		Kind:        domain.RecommendEstablishRoutine,
		Title:       "Establish Sleep Routine",
		Description: "Your sleep patterns are inconsistent. Try to maintain regular bedtimes and wake times.",
	}
}

func recentTracking() domain.Recommendation {
	return domain.Recommendation{
		Kind:        domain.RecommendRecentTracking,
		Title:       "Recent Data Needed",
		Description: "Recent sleep data is missing. Consistent tracking helps provide better insights.",
	}
}
