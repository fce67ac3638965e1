package debt

import (
	"strings"
	"testing"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
)

func kinds(recs []domain.Recommendation) []domain.RecommendationKind {
	out := make([]domain.RecommendationKind, len(recs))
	for i, r := range recs {
		out[i] = r.Kind
	}
	return out
}

func TestGenerateRecommendations_OrderAndSelection(t *testing.T) {
	settings := domain.DefaultAutomationSettings()

	tests := []struct {
		name    string
		result  domain.SleepDebtResult
		quality domain.DataQuality
		want    []domain.RecommendationKind
	}{
		{
			name:    "healthy tracker only maintains",
			result:  domain.SleepDebtResult{TotalDebtHours: 2, Severity: domain.SeverityMinimal},
			quality: domain.DataQuality{Completeness: 0.9, Consistency: 0.8, Recency: 0.9},
			want:    []domain.RecommendationKind{domain.RecommendMaintain},
		},
		{
			name:    "moderate debt with sparse stale data gets everything",
			result:  domain.SleepDebtResult{TotalDebtHours: 7.5, Severity: domain.SeverityModerate},
			quality: domain.DataQuality{Completeness: 0.4, Consistency: 0.3, Recency: 0.2},
			want: []domain.RecommendationKind{
				domain.RecommendImproveDataCollection,
				domain.RecommendGradualImprovement,
				domain.RecommendEstablishRoutine,
				domain.RecommendRecentTracking,
			},
		},
		{
			name:    "significant debt",
			result:  domain.SleepDebtResult{TotalDebtHours: 20, Severity: domain.SeveritySignificant},
			quality: domain.DataQuality{Completeness: 0.9, Consistency: 0.8, Recency: 0.9},
			want:    []domain.RecommendationKind{domain.RecommendActiveRecovery},
		},
		{
			name:    "severe debt",
			result:  domain.SleepDebtResult{TotalDebtHours: 40, Severity: domain.SeveritySevere},
			quality: domain.DataQuality{Completeness: 0.9, Consistency: 0.8, Recency: 0.9},
			want:    []domain.RecommendationKind{domain.RecommendUrgentAttention},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := kinds(GenerateRecommendations(tt.result, tt.quality, settings))
			if len(got) != len(tt.want) {
				t.Fatalf("got kinds %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("position %d: got %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestGenerateRecommendations_Formatting(t *testing.T) {
	settings := domain.DefaultAutomationSettings()

	recs := GenerateRecommendations(
		domain.SleepDebtResult{TotalDebtHours: 7.54, Severity: domain.SeverityModerate},
		domain.DataQuality{Completeness: 0.456, Consistency: 0.8, Recency: 0.9},
		settings,
	)

	if len(recs) != 2 {
		t.Fatalf("got %d recommendations, want 2", len(recs))
	}

	if recs[0].Title != "Improve Sleep Tracking" {
		t.Errorf("title = %q", recs[0].Title)
	}
	if !strings.Contains(recs[0].Description, "46%") || !strings.Contains(recs[0].Description, "70%") {
		t.Errorf("rates should be integer percent: %q", recs[0].Description)
	}

	if recs[1].Title != "Gradual Sleep Improvement" {
		t.Errorf("title = %q", recs[1].Title)
	}
	if !strings.Contains(recs[1].Description, "7.5 hours") {
		t.Errorf("hours should be one decimal place: %q", recs[1].Description)
	}
}
