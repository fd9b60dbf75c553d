package profile

import (
	"time"

	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
)

type Profile struct {
	UserID                     string
	Name                       *string
	PreferredLanguage          string
	WeekStartDay               int
	HasVariableSchedule        bool
	DefaultHourlyRate          float64
	AverageDeductionPercentage float64
	DefaultEmployerID          *string
	Targets                    earnings.UserTargets
	CreatedAt                  time.Time
	UpdatedAt                  time.Time
}

var LanguageValues = []string{"en", "fr", "es"}

// Default is the profile assumed for a user who never saved settings.
func Default(userID string) Profile {
	return Profile{
		UserID:                     userID,
		PreferredLanguage:          "en",
		WeekStartDay:               0,
		DefaultHourlyRate:          earnings.DefaultHourlyRate,
		AverageDeductionPercentage: earnings.DefaultDeductionPercentage,
	}
}

func (p Profile) AggregateOptions() earnings.AggregateOptions {
	return earnings.AggregateOptions{
		DeductionPercentage: p.AverageDeductionPercentage,
		DefaultHourlyRate:   p.DefaultHourlyRate,
	}
}
