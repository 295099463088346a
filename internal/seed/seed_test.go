package seed

import (
	"testing"

	"photoshare/internal/models"
	"photoshare/internal/storage"
	"photoshare/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeed_CreatesConsistentData(t *testing.T) {
	db := testutil.NewDB(t)
	blobs, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	summary, err := Seed(db, blobs, Options{
		NumUsers:       4,
		NumPosts:       6,
		MaxLikes:       3,
		FollowsPerUser: 2,
		BcryptCost:     bcrypt.MinCost,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, summary.Users)
	assert.Equal(t, 6, summary.Posts)

	var users []models.User
	require.NoError(t, db.Find(&users).Error)
	require.Len(t, users, 4)
	for _, u := range users {
		_, err := blobs.Path(u.Profile)
		assert.NoError(t, err, u.Profile)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(DefaultPassword)))
	}

	var posts []models.Post
	require.NoError(t, db.Find(&posts).Error)
	require.Len(t, posts, 6)
	for _, p := range posts {
		_, err := blobs.Path(p.Photo)
		assert.NoError(t, err, p.Photo)
	}

	var likes, follows int64
	require.NoError(t, db.Model(&models.Like{}).Count(&likes).Error)
	require.NoError(t, db.Model(&models.Follow{}).Count(&follows).Error)
	assert.Equal(t, int64(summary.Likes), likes)
	assert.Equal(t, int64(summary.Follows), follows)

	var selfFollows int64
	require.NoError(t, db.Model(&models.Follow{}).Where("user_id = follower_id").Count(&selfFollows).Error)
	assert.Zero(t, selfFollows)
}

func TestSeed_CleanRemovesPreviousRows(t *testing.T) {
	db := testutil.NewDB(t)
	blobs, err := storage.NewLocalStore(t.TempDir())
	require.NoError(t, err)
	opts := Options{NumUsers: 2, NumPosts: 2, MaxLikes: 1, BcryptCost: bcrypt.MinCost}

	_, err = Seed(db, blobs, opts)
	require.NoError(t, err)

	opts.ShouldClean = true
	_, err = Seed(db, blobs, opts)
	require.NoError(t, err)

	var users, posts int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Post{}).Count(&posts).Error)
	assert.Equal(t, int64(2), users)
	assert.Equal(t, int64(2), posts)
}

func TestFactory_CreateUserOverrides(t *testing.T) {
	db := testutil.NewDB(t)
	blobs := testutil.NewBlobStoreStub()
	f, err := NewFactory(db, blobs, Options{BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)

	u, err := f.CreateUser(func(u *models.User) { u.Username = "ada" })
	require.NoError(t, err)
	assert.Equal(t, "ada", u.Username)
	assert.Equal(t, "ada.png", u.Profile)
	assert.Contains(t, blobs.Files, "ada.png")

	_, err = f.CreateUser(func(u *models.User) { u.Username = "ada" })
	require.Error(t, err)
	assert.Contains(t, blobs.Removed, "ada.png")
}
