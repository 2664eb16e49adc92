// Package seed provides database seeding utilities for development and
// testing. Generated data follows the same rules the API enforces, so a
// seeded database behaves like one populated through the endpoints.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"ripple/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Options configures the seeder.
type Options struct {
	NumUsers    int
	NumPosts    int
	ShouldClean bool
}

// Seed populates the database with a social mesh of users, follows, posts,
// comments, likes and the notifications those actions would have produced.
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			return fmt.Errorf("failed to clear existing data: %w", err)
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d users created", len(users))

	follows, err := createFollows(db, users)
	if err != nil {
		return fmt.Errorf("failed to create follows: %w", err)
	}
	log.Printf("✓ %d follow edges created", follows)

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	comments, likes, err := createEngagement(db, users, posts)
	if err != nil {
		return fmt.Errorf("failed to create engagement: %w", err)
	}
	log.Printf("✓ %d comments and %d likes created", comments, likes)

	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE notifications, likes, comments, posts, follows, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

// All seeded users share this password for easy manual testing.
const seedPassword = "SeededPass123!"

func createUsers(db *gorm.DB, count int) ([]*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(seedPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		users = append(users, &models.User{
			Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
			Email:    gofakeit.Email(),
			Password: string(hashed),
			Bio:      gofakeit.Sentence(10),
			Avatar:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		})
	}

	if err := db.CreateInBatches(&users, 100).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// createFollows gives every user a handful of follows. Duplicate edges are
// dropped by the unique index, matching the idempotent follow endpoint.
func createFollows(db *gorm.DB, users []*models.User) (int, error) {
	if len(users) < 2 {
		return 0, nil
	}

	var created int
	for _, follower := range users {
		count := rand.Intn(6) + 2
		for i := 0; i < count; i++ {
			followee := users[rand.Intn(len(users))]
			if followee.ID == follower.ID {
				continue
			}
			res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Follow{
				FollowerID: follower.ID,
				FolloweeID: followee.ID,
			})
			if res.Error != nil {
				return created, res.Error
			}
			if res.RowsAffected > 0 {
				created++
				notify(db, followee.ID, follower.ID, models.VerbNewFollower, "", 0)
			}
		}
	}

	return created, nil
}

func createPosts(db *gorm.DB, users []*models.User, count int) ([]*models.Post, error) {
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[rand.Intn(len(users))]
		posts = append(posts, &models.Post{
			Title:     gofakeit.Sentence(5),
			Content:   gofakeit.Paragraph(1, 3, 5, "\n"),
			UserID:    author.ID,
			CreatedAt: spreadCreatedAt(90),
		})
	}

	if err := db.CreateInBatches(&posts, 100).Error; err != nil {
		return nil, err
	}
	return posts, nil
}

// createEngagement sprinkles comments and likes over the posts, recording
// the notification each fresh action would have produced.
func createEngagement(db *gorm.DB, users []*models.User, posts []*models.Post) (int, int, error) {
	var commentCount, likeCount int

	for _, post := range posts {
		for i := 0; i < rand.Intn(4); i++ {
			commenter := users[rand.Intn(len(users))]
			comment := models.Comment{
				Content: gofakeit.Sentence(12),
				PostID:  post.ID,
				UserID:  commenter.ID,
			}
			if err := db.Create(&comment).Error; err != nil {
				return commentCount, likeCount, err
			}
			commentCount++
			if commenter.ID != post.UserID {
				notify(db, post.UserID, commenter.ID, models.VerbCommented, models.TargetTypeComment, comment.ID)
			}
		}

		for i := 0; i < rand.Intn(6); i++ {
			liker := users[rand.Intn(len(users))]
			res := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&models.Like{
				UserID: liker.ID,
				PostID: post.ID,
			})
			if res.Error != nil {
				return commentCount, likeCount, res.Error
			}
			if res.RowsAffected > 0 {
				likeCount++
				if liker.ID != post.UserID {
					notify(db, post.UserID, liker.ID, models.VerbLiked, models.TargetTypePost, post.ID)
				}
			}
		}
	}

	return commentCount, likeCount, nil
}

func notify(db *gorm.DB, recipientID, actorID uint, verb, targetType string, targetID uint) {
	if recipientID == actorID {
		return
	}
	_ = db.Create(&models.Notification{
		RecipientID: recipientID,
		ActorID:     actorID,
		Verb:        verb,
		TargetType:  targetType,
		TargetID:    targetID,
		IsRead:      gofakeit.Bool(),
	}).Error
}

// spreadCreatedAt returns a timestamp up to maxDays in the past so feeds
// and profiles look lived-in.
func spreadCreatedAt(maxDays int) time.Time {
	daysBack := rand.Intn(maxDays)
	hoursBack := rand.Intn(24)
	minsBack := rand.Intn(60)
	return time.Now().Add(
		-time.Duration(daysBack)*24*time.Hour -
			time.Duration(hoursBack)*time.Hour -
			time.Duration(minsBack)*time.Minute)
}
