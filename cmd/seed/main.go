// Command seed fills the document store with fake users, posts, comments,
// subscriptions and messages for local development.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/craftygram/craftygram-backend/internal/config"
	"github.com/craftygram/craftygram-backend/internal/logging"
	"github.com/craftygram/craftygram-backend/internal/models"
	"github.com/craftygram/craftygram-backend/internal/store"
)

const userCount = 10

func main() {
	logging.Setup()
	_ = godotenv.Load()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	st, err := store.Connect(ctx, cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		slog.Error("store connection failed", "error", err)
		os.Exit(1)
	}
	defer st.Disconnect(context.Background())

	userIDs, err := seedUsers(ctx, st)
	if err != nil {
		slog.Error("seeding users failed", "error", err)
		os.Exit(1)
	}
	if err := seedContent(ctx, st, userIDs); err != nil {
		slog.Error("seeding content failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seed complete", "users", len(userIDs))
}

func seedUsers(ctx context.Context, st store.Store) ([]string, error) {
	// MinCost keeps seeding fast; these are throwaway dev accounts.
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}

	roles := []string{models.RoleArtist, models.RolePatron}
	users := st.Collection("users")
	ids := make([]string, 0, userCount)

	for i := 0; i < userCount; i++ {
		now := time.Now().UTC()
		user := models.User{
			Username: gofakeit.Username(),
			Email:    gofakeit.Email(),
			Role:     roles[i%len(roles)],
			Profile: &models.Profile{
				Name:       gofakeit.Name(),
				Bio:        gofakeit.Sentence(8),
				AvatarURL:  gofakeit.ImageURL(256, 256),
				University: gofakeit.Company(),
				SocialLinks: &models.SocialLinks{
					Instagram: "@" + gofakeit.Username(),
				},
			},
			PasswordHash: string(hash),
			CreatedAt:    &now,
		}

		id, err := users.InsertOne(ctx, user)
		if err != nil {
			return nil, err
		}
		if oid, ok := id.(primitive.ObjectID); ok {
			ids = append(ids, oid.Hex())
		}
	}
	return ids, nil
}

func seedContent(ctx context.Context, st store.Store, userIDs []string) error {
	posts := st.Collection("posts")
	comments := st.Collection("comments")
	subscriptions := st.Collection("subscriptions")
	messages := st.Collection("messages")

	for _, authorID := range userIDs {
		post := models.Post{
			AuthorID:    authorID,
			Title:       gofakeit.Sentence(4),
			Description: gofakeit.Paragraph(1, 3, 12, " "),
			Media: []map[string]any{{
				"type": "image",
				"url":  "https://cdn.craftygram.app/media/" + uuid.NewString() + ".jpg",
			}},
			Visibility: "public",
		}
		postID, err := posts.InsertOne(ctx, post)
		if err != nil {
			return err
		}

		oid, ok := postID.(primitive.ObjectID)
		if !ok {
			return fmt.Errorf("unexpected inserted id type %T", postID)
		}
		comment := models.Comment{
			PostID:  oid.Hex(),
			UserID:  pick(userIDs),
			Content: gofakeit.Sentence(10),
		}
		if _, err := comments.InsertOne(ctx, comment); err != nil {
			return err
		}
	}

	for i := 0; i < userCount/2; i++ {
		price, err := primitive.ParseDecimal128(strconv.FormatFloat(gofakeit.Price(1, 50), 'f', 2, 64))
		if err != nil {
			return err
		}
		sub := models.Subscription{
			PatronID:    pick(userIDs),
			ArtistID:    pick(userIDs),
			Tier:        "supporter",
			PriceUSD:    price,
			Status:      "active",
			StartedAt:   gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now()).UTC().Format(time.RFC3339),
			RenewalDate: time.Now().AddDate(0, 1, 0).UTC().Format(time.RFC3339),
			LastPayment: map[string]any{
				"amount": gofakeit.Price(1, 50),
				"method": "card",
			},
		}
		if _, err := subscriptions.InsertOne(ctx, sub); err != nil {
			return err
		}

		msg := models.Message{
			SenderID:    pick(userIDs),
			ReceiverID:  pick(userIDs),
			Content:     gofakeit.Sentence(12),
			Attachments: []string{},
			SentAt:      time.Now().UTC().Format(time.RFC3339),
		}
		if _, err := messages.InsertOne(ctx, msg); err != nil {
			return err
		}
	}
	return nil
}

func pick(ids []string) string {
	return ids[rand.Intn(len(ids))]
}
