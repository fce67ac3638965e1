package debt

import (
	"testing"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
)

func TestOrchestrator_CalculateDebt(t *testing.T) {
	orch := NewOrchestrator(NewCalculator(8), domain.DefaultAutomationSettings())

	var records []domain.SleepRecord
	for n := 1; n <= 7; n++ {
		records = append(records, record(day(n), 7))
	}

	period := domain.Period{Start: day(1), End: day(7)}
	result, err := orch.CalculateDebt(records, &period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Perfect completeness and consistency: adaptive mode interpolates.
	if result.Strategy != domain.StrategyInterpolate {
		t.Errorf("Strategy = %v, want interpolate", result.Strategy)
	}
	if !almostEqual(result.Debt.TotalDebtHours, 7) {
		t.Errorf("TotalDebtHours = %v, want 7", result.Debt.TotalDebtHours)
	}
	if !result.IsReliable {
		t.Error("complete week should be reliable")
	}
	if result.ConfidenceLevel != "Very High" {
		t.Errorf("ConfidenceLevel = %q, want Very High", result.ConfidenceLevel)
	}
	if len(result.Recommendations) == 0 {
		t.Fatal("expected at least the severity recommendation")
	}
	if result.Recommendations[0].Kind != domain.RecommendGradualImprovement {
		t.Errorf("severity recommendation = %v, want gradual improvement", result.Recommendations[0].Kind)
	}
}

func TestOrchestrator_CalculateDebt_NewUser(t *testing.T) {
	// No records at all: degraded but valid result, never an error.
	orch := NewOrchestrator(NewCalculator(8), domain.DefaultAutomationSettings())

	period := domain.Period{Start: day(1), End: day(7)}
	result, err := orch.CalculateDebt(nil, &period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.DataQuality.Completeness != 0 {
		t.Errorf("Completeness = %v, want 0", result.DataQuality.Completeness)
	}
	if len(result.Debt.MissingDays) != 7 {
		t.Errorf("MissingDays = %d, want 7", len(result.Debt.MissingDays))
	}
	// Balanced goal with zero recency falls back to conservative.
	if result.Strategy != domain.StrategyConservative {
		t.Errorf("Strategy = %v, want conservative", result.Strategy)
	}
	if result.IsReliable {
		t.Error("empty data must not be reliable")
	}
	if result.ConfidenceLevel != "Very Low" {
		t.Errorf("ConfidenceLevel = %q, want Very Low", result.ConfidenceLevel)
	}
}

func TestOrchestrator_CalculateDebt_DefaultPeriod(t *testing.T) {
	orch := NewOrchestrator(NewCalculator(8), domain.DefaultAutomationSettings())

	result, err := orch.CalculateDebt(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Default period is the trailing 30 days, 31 days inclusive.
	if len(result.Debt.DailyDebtHours) != 31 {
		t.Errorf("default period covers %d days, want 31", len(result.Debt.DailyDebtHours))
	}
}

func TestOrchestrator_QualityCache(t *testing.T) {
	orch := NewOrchestrator(NewCalculator(8), domain.DefaultAutomationSettings())
	period := domain.Period{Start: day(1), End: day(7)}

	if _, ok := orch.CachedQuality(period); ok {
		t.Fatal("cache should start empty")
	}

	result, err := orch.CalculateDebt([]domain.SleepRecord{record(day(3), 6)}, &period)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cached, ok := orch.CachedQuality(period)
	if !ok {
		t.Fatal("expected cached quality after a calculation")
	}
	if cached != result.DataQuality {
		t.Errorf("cached quality %+v differs from result %+v", cached, result.DataQuality)
	}

	// Value-equal periods hit the same entry even from a distinct struct.
	same := domain.Period{Start: day(1), End: day(7)}
	if _, ok := orch.CachedQuality(same); !ok {
		t.Error("value-equal period should hit the cache")
	}
}

func TestOrchestrator_ScheduleCalculations(t *testing.T) {
	settings := domain.DefaultAutomationSettings()
	orch := NewOrchestrator(NewCalculator(8), settings)

	scheduled := orch.ScheduleCalculations()
	if len(scheduled.Calculations) != 3 {
		t.Fatalf("got %d descriptors, want 3", len(scheduled.Calculations))
	}

	want := []domain.ScheduledCalculation{
		{Frequency: domain.FrequencyDaily, Window: domain.WindowLast7Days, Mode: domain.ModeAdaptive},
		{Frequency: domain.FrequencyWeekly, Window: domain.WindowLast30Days, Mode: domain.ModeAdaptive},
		{Frequency: domain.FrequencyMonthly, Window: domain.WindowLast90Days, Mode: domain.ModeComprehensive},
	}
	for i, w := range want {
		if scheduled.Calculations[i] != w {
			t.Errorf("descriptor %d = %+v, want %+v", i, scheduled.Calculations[i], w)
		}
	}

	// Without weekly recalculation the weekly descriptor disappears.
	settings.WeeklyRecalculation = false
	scheduled = NewOrchestrator(NewCalculator(8), settings).ScheduleCalculations()
	if len(scheduled.Calculations) != 2 {
		t.Fatalf("got %d descriptors, want 2", len(scheduled.Calculations))
	}
	for _, c := range scheduled.Calculations {
		if c.Frequency == domain.FrequencyWeekly {
			t.Error("weekly descriptor present despite weekly recalculation disabled")
		}
	}
}
