package seed

import (
	"fmt"
	"log"

	"photoshare/internal/models"
	"photoshare/internal/storage"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers       int
	NumPosts       int
	MaxLikes       int
	FollowsPerUser int
	ShouldClean    bool
	BcryptCost     int
}

// Summary counts what a seeding run created.
type Summary struct {
	Users   int
	Posts   int
	Likes   int
	Follows int
}

// Seed populates the database with demo users, posts, likes and follows.
func Seed(db *gorm.DB, blobs storage.Store, opts Options) (Summary, error) {
	var summary Summary
	log.Printf("Starting database seeding with %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return summary, fmt.Errorf("failed to clear data: %w", err)
		}
	}

	f, err := NewFactory(db, blobs, opts)
	if err != nil {
		return summary, err
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		u, err := f.CreateUser()
		if err != nil {
			return summary, fmt.Errorf("failed to create users: %w", err)
		}
		users = append(users, u)
	}
	summary.Users = len(users)
	log.Printf("%d users created", summary.Users)
	if len(users) == 0 {
		return summary, nil
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		owner := users[gofakeit.Number(0, len(users)-1)]
		p, err := f.CreatePost(owner)
		if err != nil {
			return summary, fmt.Errorf("failed to create posts: %w", err)
		}
		posts = append(posts, p)
	}
	summary.Posts = len(posts)
	log.Printf("%d posts created", summary.Posts)

	for _, p := range posts {
		n := 0
		if opts.MaxLikes > 0 {
			n = gofakeit.Number(0, opts.MaxLikes)
		}
		for i := 0; i < n; i++ {
			if err := f.CreateLike(users[gofakeit.Number(0, len(users)-1)], p); err != nil {
				return summary, fmt.Errorf("failed to create likes: %w", err)
			}
			summary.Likes++
		}
	}
	log.Printf("%d likes created", summary.Likes)

	for _, actor := range users {
		for i := 0; i < opts.FollowsPerUser; i++ {
			target := users[gofakeit.Number(0, len(users)-1)]
			if target.ID == actor.ID {
				continue
			}
			if err := f.CreateFollow(actor, target); err != nil {
				return summary, fmt.Errorf("failed to create follows: %w", err)
			}
			summary.Follows++
		}
	}
	log.Printf("%d follows created", summary.Follows)

	log.Println("Database seeding completed successfully!")
	return summary, nil
}

// clearData removes every row, children first. Uploaded files are left in place.
func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	session := db.Session(&gorm.Session{AllowGlobalUpdate: true})
	for _, model := range []interface{}{&models.Like{}, &models.Follow{}, &models.Post{}, &models.User{}} {
		if err := session.Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
