package profile

import (
	"context"
	"testing"
	"time"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/profile"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/earnings"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/jwt"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/sse"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryProfileRepo struct {
	profiles map[string]profile.Profile
}

func newMemoryProfileRepo() *memoryProfileRepo {
	return &memoryProfileRepo{profiles: map[string]profile.Profile{}}
}

func (m *memoryProfileRepo) GetByUserID(_ context.Context, userID string) (profile.Profile, error) {
	p, ok := m.profiles[userID]
	if !ok {
		return profile.Profile{}, profile.ErrProfileNotFound
	}
	return p, nil
}

func (m *memoryProfileRepo) Upsert(_ context.Context, p profile.Profile) (profile.Profile, error) {
	p.UpdatedAt = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m.profiles[p.UserID] = p
	return p, nil
}

type recordingPublisher struct {
	events []sse.Event
}

func (r *recordingPublisher) Publish(event sse.Event) {
	r.events = append(r.events, event)
}

func (r *recordingPublisher) PublishToUsers(userIDs []string, name string, data interface{}) {
	for _, userID := range userIDs {
		r.Publish(sse.Event{UserID: userID, Event: name, Data: data})
	}
}

func authContext(t *testing.T, userID string) context.Context {
	t.Helper()
	svc := jwt.NewJWTService("test-secret", time.Hour, time.Minute)
	tokenString, _, err := svc.GenerateAccessToken(userID, "user@example.com")
	require.NoError(t, err)
	token, err := svc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestProfileService_GetProfile_DefaultsWhenMissing(t *testing.T) {
	svc := NewProfileService(newMemoryProfileRepo(), &recordingPublisher{})

	resp, err := svc.GetProfile(authContext(t, "user-1"))

	require.NoError(t, err)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "en", resp.PreferredLanguage)
	assert.Equal(t, 0, resp.WeekStartDay)
	assert.Equal(t, float64(earnings.DefaultDeductionPercentage), resp.AverageDeductionPercentage)
	assert.True(t, resp.DefaultHourlyRate.Equal(decimal.NewFromInt(15)))
	assert.Nil(t, resp.UpdatedAt)
}

func TestProfileService_GetProfile_Unauthenticated(t *testing.T) {
	svc := NewProfileService(newMemoryProfileRepo(), &recordingPublisher{})

	_, err := svc.GetProfile(context.Background())

	assert.Error(t, err)
}

func TestProfileService_UpdateProfile(t *testing.T) {
	repo := newMemoryProfileRepo()
	pub := &recordingPublisher{}
	svc := NewProfileService(repo, pub)

	name := "<b>Sam</b>"
	lang := "fr"
	weekStart := 1
	rate := decimal.NewFromFloat(18.5)
	resp, err := svc.UpdateProfile(authContext(t, "user-1"), profile.UpdateProfileRequest{
		Name:              &name,
		PreferredLanguage: &lang,
		WeekStartDay:      &weekStart,
		DefaultHourlyRate: &rate,
	})

	require.NoError(t, err)
	require.NotNil(t, resp.Name)
	assert.Equal(t, "Sam", *resp.Name)
	assert.Equal(t, "fr", resp.PreferredLanguage)
	assert.Equal(t, 1, resp.WeekStartDay)
	assert.Equal(t, 18.5, repo.profiles["user-1"].DefaultHourlyRate)
	require.Len(t, pub.events, 1)
	assert.Equal(t, sse.EventProfileChanged, pub.events[0].Event)
	assert.Equal(t, "user-1", pub.events[0].UserID)
}

func TestProfileService_UpdateProfile_Invalid(t *testing.T) {
	svc := NewProfileService(newMemoryProfileRepo(), &recordingPublisher{})

	weekStart := 9
	_, err := svc.UpdateProfile(authContext(t, "user-1"), profile.UpdateProfileRequest{WeekStartDay: &weekStart})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "week_start_day")
}

func TestProfileService_UpdateTargets_KeepsUntouchedGoals(t *testing.T) {
	repo := newMemoryProfileRepo()
	existing := profile.Default("user-1")
	existing.Targets.WeeklyHours = 30
	repo.profiles["user-1"] = existing
	svc := NewProfileService(repo, &recordingPublisher{})

	sales := decimal.NewFromInt(500)
	tip := 18.0
	_, err := svc.UpdateTargets(authContext(t, "user-1"), profile.UpdateTargetsRequest{
		DailySales:    &sales,
		TipPercentage: &tip,
	})

	require.NoError(t, err)
	saved := repo.profiles["user-1"].Targets
	assert.Equal(t, 500.0, saved.DailySales)
	assert.Equal(t, 18.0, saved.TipPercentage)
	assert.Equal(t, 30.0, saved.WeeklyHours)
}

func TestProfileService_Resolve(t *testing.T) {
	repo := newMemoryProfileRepo()
	stored := profile.Default("user-2")
	stored.WeekStartDay = 1
	repo.profiles["user-2"] = stored
	svc := NewProfileService(repo, &recordingPublisher{})

	got, err := svc.Resolve(context.Background(), "user-2")
	require.NoError(t, err)
	assert.Equal(t, 1, got.WeekStartDay)

	fallback, err := svc.Resolve(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, profile.Default("nobody"), fallback)
}
