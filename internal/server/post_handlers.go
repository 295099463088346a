package server

import (
	"photoshare/internal/middleware"
	"photoshare/internal/models"
	"photoshare/internal/service"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/v1/users/:userId/posts
// @Summary Create a post
// @Tags posts
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID or currentuser"
// @Param photo formData file true "Photo"
// @Param caption formData string true "Caption"
// @Success 201 {object} object{message=string,post=object}
// @Failure 400 {object} models.FormErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{userId}/posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID, err := s.resolveSelf(c, "userId")
	if err != nil {
		return nil
	}

	photo, err := formUpload(c, "photo")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid photo upload"))
	}

	post, err := s.postService.CreatePost(c.UserContext(), service.CreatePostInput{
		UserID:  userID,
		Caption: c.FormValue("caption"),
		Photo:   photo,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "post created",
		"post":    postResponse(post),
	})
}

// GetUserPosts handles GET /api/v1/users/:userId/posts
// @Summary List a user's posts
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID or currentuser"
// @Success 200 {object} object{posts=[]object}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{userId}/posts [get]
func (s *Server) GetUserPosts(c *fiber.Ctx) error {
	userID, err := s.resolveUserID(c, "userId")
	if err != nil {
		return nil
	}

	posts, err := s.postService.ListUserPosts(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"posts": postsResponse(posts)})
}

// GetAllPosts handles GET /api/v1/posts
// @Summary List every post with its like count
// @Tags posts
// @Produce json
// @Success 200 {object} object{posts=[]object}
// @Router /posts [get]
func (s *Server) GetAllPosts(c *fiber.Ctx) error {
	posts, err := s.postService.ListAllPosts(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"posts": postsResponse(posts)})
}

// LikePost handles POST /api/v1/posts/:postId/like
// @Summary Like a post
// @Tags posts
// @Produce json
// @Security BearerAuth
// @Param postId path int true "Post ID"
// @Success 200 {object} object{message=string,likes=int}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{postId}/like [post]
func (s *Server) LikePost(c *fiber.Ctx) error {
	postID, err := parseID(c, "postId")
	if err != nil {
		return nil
	}
	userID, _ := middleware.UserID(c)

	likes, err := s.postService.Like(c.UserContext(), userID, postID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "You liked the post",
		"likes":   likes,
	})
}
