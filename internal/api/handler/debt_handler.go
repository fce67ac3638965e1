package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
	"github.com/cloudnine/sleep-debt-api/internal/service"
	"github.com/cloudnine/sleep-debt-api/pkg/problem"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// DebtHandler handles automated sleep debt endpoints.
type DebtHandler struct {
	service service.DebtService
}

// NewDebtHandler creates a new DebtHandler.
func NewDebtHandler(service service.DebtService) *DebtHandler {
	return &DebtHandler{service: service}
}

// GetDebt handles GET /v1/users/{userId}/sleep-debt
// @Summary Get automated sleep debt calculation
// @Description Run the automated calculation for a period: data quality assessment, adaptive strategy selection, cumulative debt with missing-day imputation, and advisory recommendations. Defaults to the trailing 30 days.
// @Tags sleep-debt
// @Produce json
// @Param userId path string true "User UUID" format(uuid) example(550e8400-e29b-41d4-a716-446655440000)
// @Param days query integer false "Trailing lookback in days (ignored when from/to are given)" minimum(1) maximum(365)
// @Param from query string false "Period start (RFC3339); requires 'to'" format(date-time) example(2024-01-01T00:00:00Z)
// @Param to query string false "Period end (RFC3339); requires 'from'" format(date-time) example(2024-01-31T00:00:00Z)
// @Param fill_schedule query boolean false "Cover untracked days with planned records from the user's habitual schedule" default(false)
// @Param goal query string false "Override the user's tracking goal for this calculation" Enums(motivation, health, accuracy, balanced)
// @Param adaptive query boolean false "Pick the strategy from measured data quality; false uses the static goal table" default(true)
// @Success 200 {object} domain.AutomatedResult "Automated calculation result"
// @Failure 400 {object} problem.Problem "Invalid query parameters"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-debt [get]
func (h *DebtHandler) GetDebt(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	query, fieldErrors := parseDebtQuery(r)
	if fieldErrors != nil {
		problem.ValidationError("Invalid query parameters", fieldErrors).Write(w)
		return
	}

	result, err := h.service.Calculate(r.Context(), userID, query)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		if errors.Is(err, domain.ErrInvalidRange) {
			problem.BadRequest("Period start must not be after period end").Write(w)
			return
		}
		problem.InternalError("Failed to calculate sleep debt").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// GetSchedule handles GET /v1/users/{userId}/sleep-debt/schedule
// @Summary Get scheduled recalculation descriptors
// @Description Return the declarative periodic recalculation descriptors for the user's automation settings. No timers run server-side; execution belongs to the caller's scheduler.
// @Tags sleep-debt
// @Produce json
// @Param userId path string true "User UUID" format(uuid)
// @Success 200 {object} domain.ScheduledCalculations "Recalculation descriptors"
// @Failure 400 {object} problem.Problem "Invalid user ID"
// @Failure 404 {object} problem.Problem "User not found"
// @Failure 500 {object} problem.Problem "Server error"
// @Router /users/{userId}/sleep-debt/schedule [get]
func (h *DebtHandler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	userID, err := uuid.Parse(chi.URLParam(r, "userId"))
	if err != nil {
		problem.BadRequest("Invalid user ID format").Write(w)
		return
	}

	scheduled, err := h.service.Schedule(r.Context(), userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			problem.NotFound("User not found").Write(w)
			return
		}
		problem.InternalError("Failed to build recalculation schedule").Write(w)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(scheduled)
}

// parseDebtQuery resolves the calculation query parameters: the period
// (days or from/to), the schedule fill flag, and the per-request settings
// overrides.
func parseDebtQuery(r *http.Request) (domain.CalculationQuery, []problem.FieldError) {
	query := domain.CalculationQuery{
		FillFromSchedule: r.URL.Query().Get("fill_schedule") == "true",
	}

	period, fieldErrors := parseDebtPeriod(r)
	if fieldErrors != nil {
		return query, fieldErrors
	}
	query.Period = period

	params := r.URL.Query()
	if goalStr := params.Get("goal"); goalStr != "" {
		goal := domain.TrackingGoal(goalStr)
		if !goal.Valid() {
			return query, []problem.FieldError{{
				Field:   "goal",
				Message: "must be one of motivation, health, accuracy, balanced",
			}}
		}
		query.Goal = goal
	}
	if adaptiveStr := params.Get("adaptive"); adaptiveStr != "" {
		adaptive, err := strconv.ParseBool(adaptiveStr)
		if err != nil {
			return query, []problem.FieldError{{
				Field:   "adaptive",
				Message: "must be a boolean",
			}}
		}
		query.Adaptive = &adaptive
	}

	return query, nil
}

// parseDebtPeriod resolves the period query parameters. Returns a nil
// period when neither days nor from/to are given, which means the
// default trailing lookback.
func parseDebtPeriod(r *http.Request) (*domain.Period, []problem.FieldError) {
	query := r.URL.Query()
	fromStr := query.Get("from")
	toStr := query.Get("to")

	if fromStr != "" || toStr != "" {
		var fieldErrors []problem.FieldError
		if fromStr == "" || toStr == "" {
			return nil, []problem.FieldError{{
				Field:   "from",
				Message: "from and to must be given together",
			}}
		}

		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "from",
				Message: "must be a valid RFC3339 timestamp",
			})
		}
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			fieldErrors = append(fieldErrors, problem.FieldError{
				Field:   "to",
				Message: "must be a valid RFC3339 timestamp",
			})
		}
		if fieldErrors != nil {
			return nil, fieldErrors
		}

		return &domain.Period{Start: from, End: to}, nil
	}

	if daysStr := query.Get("days"); daysStr != "" {
		days := parseIntParam(r, "days", 0)
		if days < 1 || days > 365 {
			return nil, []problem.FieldError{{
				Field:   "days",
				Message: "must be between 1 and 365",
			}}
		}
		end := time.Now().UTC()
		return &domain.Period{Start: end.AddDate(0, 0, -days), End: end}, nil
	}

	return nil, nil
}
