package service

import (
	"context"

	"photoshare/internal/models"
	"photoshare/internal/observability"
	"photoshare/internal/repository"
)

// FollowService manages the follow graph.
type FollowService struct {
	follows repository.FollowRepository
	users   repository.UserRepository
}

func NewFollowService(follows repository.FollowRepository, users repository.UserRepository) *FollowService {
	return &FollowService{follows: follows, users: users}
}

// Follow records actorID following targetID and returns the target. Both users must exist.
// Repeated follows and self-follows are allowed.
func (s *FollowService) Follow(ctx context.Context, actorID, targetID uint) (*models.User, error) {
	if targetID == 0 {
		return nil, models.NewValidationError("follow_id is required")
	}
	if _, err := s.users.GetByID(ctx, actorID); err != nil {
		return nil, err
	}
	target, err := s.users.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if err := s.follows.Create(ctx, &models.Follow{UserID: actorID, FollowerID: targetID}); err != nil {
		return nil, err
	}
	observability.Follows.Inc()
	return target, nil
}

// Counts returns how many edges point at userID and how many userID created.
func (s *FollowService) Counts(ctx context.Context, userID uint) (models.FollowCounts, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return models.FollowCounts{}, err
	}
	followers, err := s.follows.CountFollowers(ctx, userID)
	if err != nil {
		return models.FollowCounts{}, err
	}
	following, err := s.follows.CountFollowing(ctx, userID)
	if err != nil {
		return models.FollowCounts{}, err
	}
	return models.FollowCounts{Followers: followers, Following: following}, nil
}
