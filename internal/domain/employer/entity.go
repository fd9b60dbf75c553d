package employer

import "time"

type Employer struct {
	ID         string
	UserID     string
	Name       string
	HourlyRate float64
	Active     bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
