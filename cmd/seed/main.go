// Command main runs the demo data seeder.
package main

import (
	"flag"
	"log"

	"photoshare/internal/config"
	"photoshare/internal/database"
	"photoshare/internal/seed"
	"photoshare/internal/storage"
)

func main() {
	numUsers := flag.Int("users", 20, "Number of users to create")
	numPosts := flag.Int("posts", 60, "Number of posts to create")
	maxLikes := flag.Int("likes", 10, "Maximum likes per post")
	follows := flag.Int("follows", 5, "Follows created per user")
	shouldClean := flag.Bool("clean", false, "Clean database before seeding")
	flag.Parse()

	log.Println("Database Seeder")
	log.Printf("Target: %d users, %d posts, clean=%v\n", *numUsers, *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	blobs, err := storage.NewLocalStore(cfg.UploadFolder)
	if err != nil {
		log.Fatalf("Failed to open upload folder: %v", err)
	}

	summary, err := seed.Seed(db, blobs, seed.Options{
		NumUsers:       *numUsers,
		NumPosts:       *numPosts,
		MaxLikes:       *maxLikes,
		FollowsPerUser: *follows,
		ShouldClean:    *shouldClean,
		BcryptCost:     cfg.BcryptCost,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Printf("Done: %d users, %d posts, %d likes, %d follows", summary.Users, summary.Posts, summary.Likes, summary.Follows)
	log.Printf("All seeded users have the password: %s", seed.DefaultPassword)
}
