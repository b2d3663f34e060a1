// Package seed provides database seeding utilities for development and testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"devconnector/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// DefaultPassword is set on every seeded account for local login.
const DefaultPassword = "password123"

// Seeder populates the database with fake development data.
type Seeder struct {
	db *gorm.DB
}

// NewSeeder returns a Seeder bound to the given database.
func NewSeeder(db *gorm.DB) *Seeder {
	gofakeit.Seed(time.Now().UnixNano())
	return &Seeder{db: db}
}

// ClearAll removes all seed-managed rows, children before parents.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	for _, model := range []interface{}{
		&models.Like{},
		&models.Comment{},
		&models.Post{},
		&models.Profile{},
		&models.User{},
	} {
		if err := s.db.Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	return nil
}

// Run seeds users with profiles, posts, and a mesh of likes and comments.
func (s *Seeder) Run(opts Options) error {
	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if opts.ShouldClean {
		if err := s.ClearAll(); err != nil {
			return err
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hashing seed password: %w", err)
	}

	users := make([]*models.User, 0, opts.NumUsers)
	for i := 0; i < opts.NumUsers; i++ {
		user := NewFakeUser(string(hash))
		if err := s.db.Create(user).Error; err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		users = append(users, user)

		// Roughly three quarters of users fill in a profile.
		if gofakeit.Number(0, 3) > 0 {
			profile := NewFakeProfile(user.ID)
			if err := s.db.Create(profile).Error; err != nil {
				return fmt.Errorf("creating profile: %w", err)
			}
		}
	}

	posts := make([]*models.Post, 0, opts.NumPosts)
	for i := 0; i < opts.NumPosts; i++ {
		author := users[rand.Intn(len(users))]
		post := NewFakePost(author)
		if err := s.db.Create(post).Error; err != nil {
			return fmt.Errorf("creating post: %w", err)
		}
		posts = append(posts, post)
	}

	likes, comments := 0, 0
	for _, post := range posts {
		for _, user := range users {
			if gofakeit.Number(0, 9) < 3 {
				like := &models.Like{UserID: user.ID, PostID: post.ID}
				if err := s.db.Create(like).Error; err != nil {
					return fmt.Errorf("creating like: %w", err)
				}
				likes++
			}
			if gofakeit.Number(0, 9) == 0 {
				comment := NewFakeComment(user, post.ID)
				if err := s.db.Create(comment).Error; err != nil {
					return fmt.Errorf("creating comment: %w", err)
				}
				comments++
			}
		}
	}

	log.Printf("Seeded %d users, %d posts, %d likes, %d comments",
		len(users), len(posts), likes, comments)
	log.Printf("All accounts use password %q", DefaultPassword)
	return nil
}
