package service

import (
	"context"

	"photoshare/internal/models"
)

type userRepoStub struct {
	getByIDFn       func(context.Context, uint) (*models.User, error)
	getByUsernameFn func(context.Context, string) (*models.User, error)
	createFn        func(context.Context, *models.User) error
	createCalls     int
}

func (s *userRepoStub) GetByID(ctx context.Context, id uint) (*models.User, error) {
	return s.getByIDFn(ctx, id)
}
func (s *userRepoStub) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getByUsernameFn(ctx, username)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	s.createCalls++
	return s.createFn(ctx, user)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id uint) (*models.User, error) {
			return &models.User{ID: id, Username: "user"}, nil
		},
		getByUsernameFn: func(_ context.Context, username string) (*models.User, error) {
			return nil, models.NewNotFoundError("User", username)
		},
		createFn: func(_ context.Context, u *models.User) error {
			u.ID = 1
			return nil
		},
	}
}

type postRepoStub struct {
	createFn     func(context.Context, *models.Post) error
	getByIDFn    func(context.Context, uint) (*models.Post, error)
	listByUserFn func(context.Context, uint) ([]models.Post, error)
	listAllFn    func(context.Context) ([]models.Post, error)
	createCalls  int
}

func (s *postRepoStub) Create(ctx context.Context, post *models.Post) error {
	s.createCalls++
	return s.createFn(ctx, post)
}
func (s *postRepoStub) GetByID(ctx context.Context, id uint) (*models.Post, error) {
	return s.getByIDFn(ctx, id)
}
func (s *postRepoStub) ListByUser(ctx context.Context, userID uint) ([]models.Post, error) {
	return s.listByUserFn(ctx, userID)
}
func (s *postRepoStub) ListAll(ctx context.Context) ([]models.Post, error) {
	return s.listAllFn(ctx)
}

func noopPostRepo() *postRepoStub {
	return &postRepoStub{
		createFn:     func(_ context.Context, p *models.Post) error { p.ID = 1; return nil },
		getByIDFn:    func(_ context.Context, id uint) (*models.Post, error) { return &models.Post{ID: id}, nil },
		listByUserFn: func(context.Context, uint) ([]models.Post, error) { return nil, nil },
		listAllFn:    func(context.Context) ([]models.Post, error) { return nil, nil },
	}
}

type likeRepoStub struct {
	likes []models.Like
}

func (s *likeRepoStub) Create(_ context.Context, like *models.Like) error {
	like.ID = uint(len(s.likes) + 1)
	s.likes = append(s.likes, *like)
	return nil
}
func (s *likeRepoStub) CountByPost(_ context.Context, postID uint) (int64, error) {
	var n int64
	for _, l := range s.likes {
		if l.PostID == postID {
			n++
		}
	}
	return n, nil
}

type followRepoStub struct {
	edges []models.Follow
}

func (s *followRepoStub) Create(_ context.Context, f *models.Follow) error {
	s.edges = append(s.edges, *f)
	return nil
}
func (s *followRepoStub) CountFollowers(_ context.Context, userID uint) (int64, error) {
	var n int64
	for _, e := range s.edges {
		if e.FollowerID == userID {
			n++
		}
	}
	return n, nil
}
func (s *followRepoStub) CountFollowing(_ context.Context, userID uint) (int64, error) {
	var n int64
	for _, e := range s.edges {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}
