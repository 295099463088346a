package server

import (
	"errors"
	"io"
	"log/slog"
	"strconv"

	"photoshare/internal/middleware"
	"photoshare/internal/models"
	"photoshare/internal/service"

	"github.com/gofiber/fiber/v2"
)

// PhotoPrefix is the public path under which uploaded photos are served.
const PhotoPrefix = "/api/v1/photo/"

// currentUserAlias may replace a numeric user ID in a path; it resolves to the token's user.
const currentUserAlias = "currentuser"

// errResponseWritten is a sentinel indicating the HTTP response was already
// committed by a helper. Handlers must return nil (not this error) to avoid
// Fiber's ErrorHandler overwriting the response.
var errResponseWritten = errors.New("response already written")

// mapServiceError converts a service or repository error into a status code.
func mapServiceError(err error) int {
	var appErr *models.AppError
	if !errors.As(err, &appErr) {
		return fiber.StatusInternalServerError
	}
	switch appErr.Code {
	case models.CodeValidation:
		return fiber.StatusBadRequest
	case models.CodeUnauthorized:
		return fiber.StatusUnauthorized
	case models.CodeForbidden:
		return fiber.StatusForbidden
	case models.CodeNotFound:
		return fiber.StatusNotFound
	case models.CodeConflict:
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

// respondError writes err with the status mapped from it. Internal errors are logged with
// their cause; the client only sees a generic message.
func respondError(c *fiber.Ctx, err error) error {
	status := mapServiceError(err)
	if status >= fiber.StatusInternalServerError {
		middleware.Logger.ErrorContext(c.UserContext(), "request failed",
			slog.String("path", c.Path()),
			slog.String("error", err.Error()),
		)
	}
	return models.RespondWithError(c, status, err)
}

// parseID extracts a route parameter by name as a positive uint.
// On failure it writes a 400 JSON response and returns errResponseWritten.
func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 64)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid "+param))
		return 0, errResponseWritten
	}
	return uint(id), nil
}

// resolveUserID reads a user ID path parameter, accepting the "currentuser" alias.
// The alias needs a valid bearer token; without one the response is 401.
func (s *Server) resolveUserID(c *fiber.Ctx, param string) (uint, error) {
	if c.Params(param) != currentUserAlias {
		return parseID(c, param)
	}
	claims, ok := middleware.OptionalClaims(c, s.tokens)
	if !ok {
		_ = models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError(middleware.MsgTokenMissing))
		return 0, errResponseWritten
	}
	return claims.ID, nil
}

// resolveSelf resolves the path user and requires it to be the authenticated user.
func (s *Server) resolveSelf(c *fiber.Ctx, param string) (uint, error) {
	userID, err := s.resolveUserID(c, param)
	if err != nil {
		return 0, err
	}
	tokenID, ok := middleware.UserID(c)
	if !ok {
		_ = models.RespondWithError(c, fiber.StatusUnauthorized,
			models.NewUnauthorizedError(middleware.MsgTokenMissing))
		return 0, errResponseWritten
	}
	if userID != tokenID {
		_ = models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only act on behalf of yourself"))
		return 0, errResponseWritten
	}
	return userID, nil
}

// formUpload reads a multipart file field. A missing field yields nil so the form
// validator can report it alongside the other fields.
func formUpload(c *fiber.Ctx, field string) (*service.Upload, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	content, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return &service.Upload{Filename: fh.Filename, Content: content}, nil
}

func photoURL(name string) string {
	return PhotoPrefix + name
}

// userResponse renders a user. The password hash is included only when the
// deployment opts in for compatibility with old clients.
func (s *Server) userResponse(u *models.User) fiber.Map {
	body := fiber.Map{
		"id":            u.ID,
		"username":      u.Username,
		"firstname":     u.FirstName,
		"lastname":      u.LastName,
		"email":         u.Email,
		"location":      u.Location,
		"biography":     u.Biography,
		"profile_photo": photoURL(u.Profile),
		"joined_on":     u.JoinedOn,
	}
	if s.config.ExposePasswordHash {
		body["password"] = u.Password
	}
	return body
}

func postResponse(p *models.Post) fiber.Map {
	return fiber.Map{
		"id":         p.ID,
		"user_id":    p.UserID,
		"photo":      photoURL(p.Photo),
		"caption":    p.Caption,
		"created_at": p.CreatedAt,
		"likes":      p.LikesCount,
	}
}

func postsResponse(posts []models.Post) []fiber.Map {
	out := make([]fiber.Map, 0, len(posts))
	for i := range posts {
		out = append(out, postResponse(&posts[i]))
	}
	return out
}
