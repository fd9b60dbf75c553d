package profile

import "context"

type ProfileService interface {
	GetProfile(ctx context.Context) (ProfileResponse, error)
	UpdateProfile(ctx context.Context, req UpdateProfileRequest) (ProfileResponse, error)
	UpdateTargets(ctx context.Context, req UpdateTargetsRequest) (ProfileResponse, error)

	// Resolve returns the stored profile or the defaults for the user.
	Resolve(ctx context.Context, userID string) (Profile, error)
}
