package server

import (
	"photoshare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// Follow handles POST /api/users/:userId/follow
// @Summary Follow a user
// @Tags follows
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param userId path string true "Acting user ID or currentuser"
// @Param request body object{follow_id=int} true "User to follow"
// @Success 201 {object} object{message=string}
// @Failure 400 {object} models.ErrorResponse
// @Failure 403 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{userId}/follow [post]
func (s *Server) Follow(c *fiber.Ctx) error {
	actorID, err := s.resolveSelf(c, "userId")
	if err != nil {
		return nil
	}

	var req struct {
		FollowID uint `json:"follow_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	target, err := s.followService.Follow(c.UserContext(), actorID, req.FollowID)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "You are now following " + target.Username,
	})
}

// FollowCounts handles GET /api/users/:userId/follow. "followers" counts the users following
// userId; "following" counts the users userId follows.
// @Summary Follower and following counts
// @Tags follows
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID or currentuser"
// @Success 200 {object} object{followers=int,following=int}
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{userId}/follow [get]
func (s *Server) FollowCounts(c *fiber.Ctx) error {
	userID, err := s.resolveUserID(c, "userId")
	if err != nil {
		return nil
	}

	counts, err := s.followService.Counts(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"followers": counts.Followers,
		"following": counts.Following,
	})
}
