package server

import (
	"github.com/gofiber/fiber/v2"
)

// GetUser handles GET /api/v1/users/:userId
// @Summary Get a user
// @Description Fetch a profile by ID, or the caller's own profile with "currentuser"
// @Tags users
// @Produce json
// @Param userId path string true "User ID or currentuser"
// @Success 200 {object} object{id=int,username=string,firstname=string,lastname=string,email=string,location=string,biography=string,profile_photo=string,joined_on=string}
// @Failure 401 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /users/{userId} [get]
func (s *Server) GetUser(c *fiber.Ctx) error {
	userID, err := s.resolveUserID(c, "userId")
	if err != nil {
		return nil
	}

	user, err := s.userService.GetUser(c.UserContext(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(s.userResponse(user))
}
