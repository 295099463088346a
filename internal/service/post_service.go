package service

import (
	"context"
	"fmt"

	"photoshare/internal/models"
	"photoshare/internal/observability"
	"photoshare/internal/repository"
	"photoshare/internal/storage"
	"photoshare/internal/validation"

	"go.opentelemetry.io/otel/attribute"
)

// CreatePostInput is the post form for one user.
type CreatePostInput struct {
	UserID  uint
	Caption string
	Photo   *Upload
}

// PostService manages posts and likes.
type PostService struct {
	posts repository.PostRepository
	likes repository.LikeRepository
	users repository.UserRepository
	blobs storage.Store
}

func NewPostService(posts repository.PostRepository, likes repository.LikeRepository, users repository.UserRepository, blobs storage.Store) *PostService {
	return &PostService{posts: posts, likes: likes, users: users, blobs: blobs}
}

// CreatePost stores the photo and inserts the post. The photo is removed if the insert fails.
func (s *PostService) CreatePost(ctx context.Context, in CreatePostInput) (post *models.Post, err error) {
	ctx, span := observability.StartSpan(ctx, "PostService", "CreatePost", attribute.Int64("user.id", int64(in.UserID)))
	defer func() { observability.EndSpan(span, err) }()

	if _, err := s.users.GetByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	var form validation.Form
	form.Image("Photo", in.Photo.name(), in.Photo.bytes(), in.Photo.present())
	form.Required("Caption", in.Caption)
	if err := form.Err(); err != nil {
		return nil, err
	}

	filename, err := s.blobs.Save(in.Photo.Filename, in.Photo.Content)
	if err != nil {
		return nil, models.NewInternalError(fmt.Errorf("save photo: %w", err))
	}

	post = &models.Post{
		UserID:  in.UserID,
		Photo:   filename,
		Caption: in.Caption,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		discardBlob(ctx, s.blobs, filename)
		return nil, err
	}

	observability.PostsCreated.Inc()
	return post, nil
}

// ListUserPosts returns a user's posts oldest first.
func (s *PostService) ListUserPosts(ctx context.Context, userID uint) ([]models.Post, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.posts.ListByUser(ctx, userID)
}

// ListAllPosts returns every post with its current like count.
func (s *PostService) ListAllPosts(ctx context.Context) ([]models.Post, error) {
	return s.posts.ListAll(ctx)
}

// Like records userID liking postID and returns the post's like count afterwards.
// Repeated likes by the same user are recorded and counted.
func (s *PostService) Like(ctx context.Context, userID, postID uint) (count int64, err error) {
	ctx, span := observability.StartSpan(ctx, "PostService", "Like", attribute.Int64("post.id", int64(postID)))
	defer func() { observability.EndSpan(span, err) }()

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return 0, err
	}
	if _, err := s.posts.GetByID(ctx, postID); err != nil {
		return 0, err
	}

	if err := s.likes.Create(ctx, &models.Like{UserID: userID, PostID: postID}); err != nil {
		return 0, err
	}
	observability.Likes.Inc()

	return s.likes.CountByPost(ctx, postID)
}
