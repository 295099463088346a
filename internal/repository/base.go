// Package repository implements the data access layer for the application.
package repository

import (
	"errors"

	"photoshare/internal/database"
	"photoshare/internal/models"

	"gorm.io/gorm"
)

// translate maps GORM errors onto application errors.
func translate(err error, resource string, id interface{}) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return models.NewNotFoundError(resource, id)
	case database.IsUniqueViolation(err):
		return &models.AppError{Code: models.CodeConflict, Message: resource + " already exists", Err: err}
	default:
		return models.NewInternalError(err)
	}
}
