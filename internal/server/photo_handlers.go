package server

import (
	"photoshare/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetPhoto handles GET /api/v1/photo/:filename
// @Summary Serve an uploaded photo
// @Tags photos
// @Produce image/jpeg,image/png
// @Param filename path string true "Stored file name"
// @Success 200 {file} binary
// @Failure 404 {object} models.ErrorResponse
// @Router /photo/{filename} [get]
func (s *Server) GetPhoto(c *fiber.Ctx) error {
	name := c.Params("filename")
	path, err := s.blobs.Path(name)
	if err != nil {
		// Unsafe names are indistinguishable from missing files.
		return models.RespondWithError(c, fiber.StatusNotFound, models.NewNotFoundError("Photo", name))
	}
	return c.SendFile(path)
}
