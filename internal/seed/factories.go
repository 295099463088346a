// Package seed provides helpers to create demo data for the application database.
// These helpers are intended for development and testing only.
package seed

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"

	"photoshare/internal/models"
	"photoshare/internal/storage"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// DefaultPassword is the password of every seeded user.
const DefaultPassword = "password123"

// Factory builds domain entities and persists them to the database and the blob store.
type Factory struct {
	db    *gorm.DB
	blobs storage.Store
	opts  Options
	hash  string
}

// NewFactory creates a new Factory. The shared password is hashed once.
func NewFactory(db *gorm.DB, blobs storage.Store, opts Options) (*Factory, error) {
	cost := opts.BcryptCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), cost)
	if err != nil {
		return nil, fmt.Errorf("hash seed password: %w", err)
	}
	return &Factory{db: db, blobs: blobs, opts: opts, hash: string(hash)}, nil
}

// CreateUser persists a fake user with a generated profile photo.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	first, last := gofakeit.FirstName(), gofakeit.LastName()
	user := &models.User{
		Username:  gofakeit.Username() + fmt.Sprintf("%d", gofakeit.Number(100, 999)),
		Password:  f.hash,
		FirstName: first,
		LastName:  last,
		Email:     gofakeit.Email(),
		Location:  gofakeit.City(),
		Biography: gofakeit.Sentence(10),
	}
	for _, override := range overrides {
		override(user)
	}

	name, err := f.savePhoto(user.Username + ".png")
	if err != nil {
		return nil, err
	}
	user.Profile = name

	if err := f.db.Create(user).Error; err != nil {
		_ = f.blobs.Remove(name)
		return nil, err
	}
	return user, nil
}

// CreatePost persists a post with a generated photo for the given user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	name, err := f.savePhoto(fmt.Sprintf("%s_%s.png", user.Username, gofakeit.Word()))
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		UserID:  user.ID,
		Photo:   name,
		Caption: gofakeit.Sentence(gofakeit.Number(3, 12)),
	}
	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		_ = f.blobs.Remove(name)
		return nil, err
	}
	return post, nil
}

// CreateLike records user liking post.
func (f *Factory) CreateLike(user *models.User, post *models.Post) error {
	return f.db.Create(&models.Like{UserID: user.ID, PostID: post.ID}).Error
}

// CreateFollow records actor following target.
func (f *Factory) CreateFollow(actor, target *models.User) error {
	return f.db.Create(&models.Follow{UserID: actor.ID, FollowerID: target.ID}).Error
}

// savePhoto writes a small solid-colour PNG and returns its stored name.
func (f *Factory) savePhoto(filename string) (string, error) {
	img := image.NewRGBA(image.Rect(0, 0, 32, 32))
	fill := color.RGBA{R: gofakeit.Uint8(), G: gofakeit.Uint8(), B: gofakeit.Uint8(), A: 255}
	for x := 0; x < 32; x++ {
		for y := 0; y < 32; y++ {
			img.Set(x, y, fill)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	name, err := f.blobs.Save(filename, buf.Bytes())
	if err != nil {
		return "", fmt.Errorf("save seed photo: %w", err)
	}
	return name, nil
}
