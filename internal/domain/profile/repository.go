package profile

import "context"

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID string) (Profile, error)
	// Upsert creates the profile row on first save.
	Upsert(ctx context.Context, profile Profile) (Profile, error)
}
