package server

import (
	"photoshare/internal/models"
	"photoshare/internal/service"

	"github.com/gofiber/fiber/v2"
)

// Register handles POST /api/v1/register
// @Summary Register a user
// @Description Create an account from a multipart form with a jpg or png profile photo
// @Tags auth
// @Accept mpfd
// @Produce json
// @Param username formData string true "Username"
// @Param password formData string true "Password"
// @Param firstname formData string true "First name"
// @Param lastname formData string true "Last name"
// @Param email formData string true "Email"
// @Param location formData string true "Location"
// @Param biography formData string true "Biography"
// @Param profile formData file true "Profile photo"
// @Success 200 {object} object{message=string,id=int,username=string,profile_photo=string}
// @Failure 400 {object} models.FormErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Router /register [post]
func (s *Server) Register(c *fiber.Ctx) error {
	profile, err := formUpload(c, "profile")
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid profile upload"))
	}

	user, err := s.authService.Register(c.UserContext(), service.RegisterInput{
		Username:  c.FormValue("username"),
		Password:  c.FormValue("password"),
		FirstName: c.FormValue("firstname"),
		LastName:  c.FormValue("lastname"),
		Email:     c.FormValue("email"),
		Location:  c.FormValue("location"),
		Biography: c.FormValue("biography"),
		Profile:   profile,
	})
	if err != nil {
		return respondError(c, err)
	}

	body := s.userResponse(user)
	body["message"] = "User successfully added"
	return c.Status(fiber.StatusOK).JSON(body)
}

// Login handles POST /api/v1/auth/login
// @Summary User login
// @Description Check credentials and return a bearer token
// @Tags auth
// @Accept json,x-www-form-urlencoded,mpfd
// @Produce json
// @Param request body object{username=string,password=string} true "Login credentials"
// @Success 200 {object} object{message=string,token=string}
// @Failure 400 {object} models.FormErrorResponse
// @Failure 401 {object} models.ErrorResponse
// @Router /auth/login [post]
func (s *Server) Login(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username" form:"username"`
		Password string `json:"password" form:"password"`
	}
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return models.RespondWithError(c, fiber.StatusBadRequest,
				models.NewValidationError("Invalid request body"))
		}
	}

	token, err := s.authService.Login(c.UserContext(), req.Username, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "User successfully logged in",
		"token":   token,
	})
}

// Logout handles POST /api/v1/auth/logout. Tokens are stateless; clients discard theirs.
// @Summary User logout
// @Tags auth
// @Produce json
// @Success 200 {object} object{message=string}
// @Router /auth/logout [post]
func (s *Server) Logout(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "User logged out"})
}
