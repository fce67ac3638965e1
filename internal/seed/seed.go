package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/cloudnine/sleep-debt-api/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const seededDays = 40

// Run seeds the database with sample users and sleep records. Safe to call
// multiple times. Each user gets a different tracking profile so the debt
// endpoints return interesting data quality grades out of the box.
func Run(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.SleepRecord{}); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}

	users := []seedUser{
		{
			user: domain.User{
				ID:            uuid.MustParse("11111111-1111-1111-1111-111111111111"),
				Timezone:      "Europe/Amsterdam",
				UsualBedtime:  "23:00",
				UsualWakeTime: "07:00",
				TrackingGoal:  domain.GoalBalanced,
			},
			trackChance: 0.95, // diligent tracker, near-complete history
		},
		{
			user: domain.User{
				ID:            uuid.MustParse("22222222-2222-2222-2222-222222222222"),
				Timezone:      "America/New_York",
				UsualBedtime:  "00:30",
				UsualWakeTime: "07:30",
				TrackingGoal:  domain.GoalHealth,
			},
			trackChance: 0.6, // patchy history with real gaps
		},
		{
			user: domain.User{
				ID:            uuid.MustParse("33333333-3333-3333-3333-333333333333"),
				Timezone:      "Asia/Tokyo",
				UsualBedtime:  "22:30",
				UsualWakeTime: "06:00",
				TrackingGoal:  domain.GoalAccuracy,
			},
			trackChance: 0.85,
		},
		{
			user: domain.User{
				ID:            uuid.MustParse("44444444-4444-4444-4444-444444444444"),
				Timezone:      "Australia/Sydney",
				UsualBedtime:  "23:30",
				UsualWakeTime: "06:30",
				TrackingGoal:  domain.GoalMotivation,
			},
			trackChance: 0.3, // sparse tracker, conservative strategy territory
		},
	}

	for _, su := range users {
		user := su.user
		if err := db.Where("id = ?", user.ID).FirstOrCreate(&user).Error; err != nil {
			return fmt.Errorf("failed to create user %s: %w", user.ID, err)
		}
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	for _, su := range users {
		if err := seedRecordsForUser(db, su, rng); err != nil {
			return err
		}
	}

	log.Println("Seed completed")
	return nil
}

type seedUser struct {
	user        domain.User
	trackChance float64
}

var seedQualities = []domain.SleepQuality{
	domain.QualityExcellent,
	domain.QualityGood,
	domain.QualityGood,
	domain.QualityFair,
	domain.QualityPoor,
}

func seedRecordsForUser(db *gorm.DB, su seedUser, rng *rand.Rand) error {
	now := time.Now().UTC()
	for i := 0; i < seededDays; i++ {
		if rng.Float64() > su.trackChance {
			continue // untracked night, leaves a gap for imputation
		}

		date := now.AddDate(0, 0, -i)
		bedtime := time.Date(date.Year(), date.Month(), date.Day(), 22+rng.Intn(2), rng.Intn(60), 0, 0, time.UTC)

		// Weekend lie-ins push durations up and keep the weekend pattern
		// detector honest.
		durationMinutes := 6*60 + rng.Intn(150)
		if wd := bedtime.Weekday(); wd == time.Friday || wd == time.Saturday {
			durationMinutes += 45 + rng.Intn(60)
		}
		wakeTime := bedtime.Add(time.Duration(durationMinutes) * time.Minute)

		quality := seedQualities[rng.Intn(len(seedQualities))]
		clientReqID := fmt.Sprintf("seed-night-%s-%d", su.user.ID, i)
		record := domain.SleepRecord{
			UserID:          su.user.ID,
			Date:            time.Date(bedtime.Year(), bedtime.Month(), bedtime.Day(), 0, 0, 0, 0, time.UTC),
			Bedtime:         bedtime,
			WakeTime:        wakeTime,
			DurationHours:   wakeTime.Sub(bedtime).Hours(),
			Quality:         &quality,
			LocalTimezone:   su.user.Timezone,
			ClientRequestID: &clientReqID,
		}

		if err := db.Where("client_request_id = ?", clientReqID).FirstOrCreate(&record).Error; err != nil {
			return fmt.Errorf("failed to create sleep record: %w", err)
		}
	}
	return nil
}
