package employer

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/DeFacto365/Protip365-sub004/internal/domain/employer"
	"github.com/DeFacto365/Protip365-sub004/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryEmployerRepo struct {
	seq       int
	employers map[string]employer.Employer
}

func newMemoryEmployerRepo() *memoryEmployerRepo {
	return &memoryEmployerRepo{employers: map[string]employer.Employer{}}
}

func (m *memoryEmployerRepo) nameTaken(e employer.Employer) bool {
	for _, other := range m.employers {
		if other.UserID == e.UserID && other.Name == e.Name && other.ID != e.ID {
			return true
		}
	}
	return false
}

func (m *memoryEmployerRepo) Create(_ context.Context, e employer.Employer) (employer.Employer, error) {
	if m.nameTaken(e) {
		return employer.Employer{}, &pgconn.PgError{Code: "23505"}
	}
	m.seq++
	e.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", m.seq)
	e.Active = true
	m.employers[e.ID] = e
	return e, nil
}

func (m *memoryEmployerRepo) GetByID(_ context.Context, id, userID string) (employer.Employer, error) {
	e, ok := m.employers[id]
	if !ok || e.UserID != userID {
		return employer.Employer{}, employer.ErrEmployerNotFound
	}
	return e, nil
}

func (m *memoryEmployerRepo) List(_ context.Context, userID string, activeOnly bool) ([]employer.Employer, error) {
	var out []employer.Employer
	for _, e := range m.employers {
		if e.UserID == userID && (!activeOnly || e.Active) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memoryEmployerRepo) Update(_ context.Context, e employer.Employer) (employer.Employer, error) {
	if m.nameTaken(e) {
		return employer.Employer{}, &pgconn.PgError{Code: "23505"}
	}
	m.employers[e.ID] = e
	return e, nil
}

func (m *memoryEmployerRepo) SetActive(_ context.Context, id, userID string, active bool) error {
	e, ok := m.employers[id]
	if !ok || e.UserID != userID {
		return employer.ErrEmployerNotFound
	}
	e.Active = active
	m.employers[id] = e
	return nil
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

func TestEmployerService_CreateAndList(t *testing.T) {
	repo := newMemoryEmployerRepo()
	svc := NewEmployerService(repo)
	ctx := authContext(t, "user-1")

	_, err := svc.CreateEmployer(ctx, employer.CreateEmployerRequest{Name: " Bistro ", HourlyRate: decimal.NewFromInt(16)})
	require.NoError(t, err)
	_, err = svc.CreateEmployer(ctx, employer.CreateEmployerRequest{Name: "Attic Bar", HourlyRate: decimal.NewFromInt(12)})
	require.NoError(t, err)

	list, err := svc.ListEmployers(ctx, false)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Attic Bar", list[0].Name)
	assert.Equal(t, "Bistro", list[1].Name)
	assert.True(t, list[1].HourlyRate.Equal(decimal.NewFromInt(16)))
}

func TestEmployerService_CreateDuplicateName(t *testing.T) {
	svc := NewEmployerService(newMemoryEmployerRepo())
	ctx := authContext(t, "user-1")

	_, err := svc.CreateEmployer(ctx, employer.CreateEmployerRequest{Name: "Bistro"})
	require.NoError(t, err)

	_, err = svc.CreateEmployer(ctx, employer.CreateEmployerRequest{Name: "Bistro"})
	assert.ErrorIs(t, err, employer.ErrEmployerNameExists)
}

func TestEmployerService_CreateRequiresName(t *testing.T) {
	svc := NewEmployerService(newMemoryEmployerRepo())

	_, err := svc.CreateEmployer(authContext(t, "user-1"), employer.CreateEmployerRequest{})
	assert.Error(t, err)
}

func TestEmployerService_OtherUsersEmployerIsNotFound(t *testing.T) {
	svc := NewEmployerService(newMemoryEmployerRepo())

	created, err := svc.CreateEmployer(authContext(t, "user-1"), employer.CreateEmployerRequest{Name: "Bistro"})
	require.NoError(t, err)

	_, err = svc.GetEmployer(authContext(t, "user-2"), created.ID)
	assert.ErrorIs(t, err, employer.ErrEmployerNotFound)
}

func TestEmployerService_Deactivate(t *testing.T) {
	svc := NewEmployerService(newMemoryEmployerRepo())
	ctx := authContext(t, "user-1")

	created, err := svc.CreateEmployer(ctx, employer.CreateEmployerRequest{Name: "Bistro"})
	require.NoError(t, err)

	require.NoError(t, svc.DeactivateEmployer(ctx, created.ID))

	active, err := svc.ListEmployers(ctx, true)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := svc.ListEmployers(ctx, false)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].Active)
}

func TestEmployerService_Update(t *testing.T) {
	svc := NewEmployerService(newMemoryEmployerRepo())
	ctx := authContext(t, "user-1")

	created, err := svc.CreateEmployer(ctx, employer.CreateEmployerRequest{Name: "Bistro"})
	require.NoError(t, err)

	name := "Bistro Centre"
	rate := decimal.NewFromFloat(17.25)
	updated, err := svc.UpdateEmployer(ctx, employer.UpdateEmployerRequest{ID: created.ID, Name: &name, HourlyRate: &rate})
	require.NoError(t, err)
	assert.Equal(t, "Bistro Centre", updated.Name)
	assert.True(t, updated.HourlyRate.Equal(decimal.NewFromFloat(17.25)))
}
