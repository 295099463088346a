package database

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"photoshare/internal/config"
	"photoshare/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func sqliteConfig() *config.Config {
	return &config.Config{DBDriver: "sqlite", SQLitePath: ":memory:"}
}

func TestConnect_SQLiteMigratesSchema(t *testing.T) {
	db, err := Connect(sqliteConfig())
	require.NoError(t, err)

	for _, model := range PersistentModels() {
		assert.True(t, db.Migrator().HasTable(model), "%T", model)
	}
	assert.False(t, db.Migrator().HasColumn(&models.Post{}, "likes_count"))
	assert.NoError(t, Ping(context.Background(), db))
}

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := Connect(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestUsernameUniqueIndex(t *testing.T) {
	db, err := Connect(sqliteConfig())
	require.NoError(t, err)

	require.NoError(t, db.Create(&models.User{Username: "ada", Password: "x"}).Error)
	err = db.Create(&models.User{Username: "ada", Password: "y"}).Error
	require.Error(t, err)
	assert.True(t, IsUniqueViolation(err))
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{gorm.ErrDuplicatedKey, true},
		{fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey), true},
		{errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_username" (SQLSTATE 23505)`), true},
		{errors.New("UNIQUE constraint failed: users.username"), true},
		{errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsUniqueViolation(tt.err), "%v", tt.err)
	}
}
