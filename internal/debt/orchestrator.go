package debt

import (
	"sync"
	"time"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
)

// reliableScoreThreshold is the overall quality score above which an
// automated result is flagged reliable.
const reliableScoreThreshold = 0.6

// defaultPeriodDays is the lookback used when no period is given.
const defaultPeriodDays = 30

// Orchestrator wires the quality assessor, strategy selector, calculator
// and recommendation engine into a single automated calculation. It is
// composed of its collaborators rather than layered on top of the
// calculator, so each piece stays independently testable.
//
// The per-period quality cache is diagnostic only: calculation logic
// never reads it.
type Orchestrator struct {
	calc     *Calculator
	settings domain.AutomationSettings

	mu           sync.Mutex
	qualityCache map[domain.Period]domain.DataQuality

	now func() time.Time
}

// NewOrchestrator creates an Orchestrator around a calculator and an
// explicit settings value.
func NewOrchestrator(calc *Calculator, settings domain.AutomationSettings) *Orchestrator {
	return &Orchestrator{
		calc:         calc,
		settings:     settings,
		qualityCache: make(map[domain.Period]domain.DataQuality),
		now:          time.Now,
	}
}

// Settings returns the settings this orchestrator applies.
func (o *Orchestrator) Settings() domain.AutomationSettings {
	return o.settings
}

// CalculateDebt runs one automated calculation: assess quality, select a
// strategy from it, compute cumulative debt with that strategy, and
// generate recommendations. A nil period defaults to the last 30 days.
func (o *Orchestrator) CalculateDebt(records []domain.SleepRecord, period *domain.Period) (*domain.AutomatedResult, error) {
	p := o.resolvePeriod(period)

	quality := AssessDataQuality(records, p)
	strategy := SelectStrategy(quality, o.settings)

	result, err := o.calc.CumulativeDebt(records, p.Start, p.End, strategy)
	if err != nil {
		return nil, err
	}

	automated := &domain.AutomatedResult{
		Debt:            *result,
		DataQuality:     quality,
		Strategy:        strategy,
		Recommendations: GenerateRecommendations(*result, quality, o.settings),
		Settings:        o.settings,
		IsReliable:      quality.OverallScore > reliableScoreThreshold,
		ConfidenceLevel: domain.ConfidenceFor(quality.OverallScore),
	}

	o.mu.Lock()
	o.qualityCache[p] = quality
	o.mu.Unlock()

	return automated, nil
}

// CachedQuality exposes the last assessment computed for a period, for
// diagnostics only.
func (o *Orchestrator) CachedQuality(period domain.Period) (domain.DataQuality, bool) {
	normalized := domain.Period{Start: startOfDay(period.Start), End: startOfDay(period.End)}

	o.mu.Lock()
	defer o.mu.Unlock()
	q, ok := o.qualityCache[normalized]
	return q, ok
}

// ScheduleCalculations returns the declarative recalculation descriptors
// for these settings. No timers run here; execution belongs to an
// external scheduler.
func (o *Orchestrator) ScheduleCalculations() domain.ScheduledCalculations {
	scheduled := []domain.ScheduledCalculation{
		{Frequency: domain.FrequencyDaily, Window: domain.WindowLast7Days, Mode: domain.ModeAdaptive},
	}

	if o.settings.WeeklyRecalculation {
		scheduled = append(scheduled, domain.ScheduledCalculation{
			Frequency: domain.FrequencyWeekly, Window: domain.WindowLast30Days, Mode: domain.ModeAdaptive,
		})
	}

	scheduled = append(scheduled, domain.ScheduledCalculation{
		Frequency: domain.FrequencyMonthly, Window: domain.WindowLast90Days, Mode: domain.ModeComprehensive,
	})

	return domain.ScheduledCalculations{Calculations: scheduled}
}

func (o *Orchestrator) resolvePeriod(period *domain.Period) domain.Period {
	if period != nil {
		return domain.Period{Start: startOfDay(period.Start), End: startOfDay(period.End)}
	}
	end := startOfDay(o.now().UTC())
	return domain.Period{Start: end.AddDate(0, 0, -defaultPeriodDays), End: end}
}
