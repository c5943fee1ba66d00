// Command seed resets the development database and loads it with a known
// data set: one administrator, one regular user, two posts, and two
// comments. Seed credentials satisfy the shared password predicate, so the
// seeded accounts can log in through the normal flow.
package main

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/flowdash/flowdash/internal/config"
	"github.com/flowdash/flowdash/internal/logger"
	"github.com/flowdash/flowdash/internal/store"
	"github.com/flowdash/flowdash/internal/utils"
	"github.com/flowdash/flowdash/models"
)

func main() {
	log := logger.NewLogger("seed")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	if err = storages.SeedRepository.Wipe(ctx); err != nil {
		log.Fatal().Err(err).Msg("error wiping database")
	}
	log.Info().Msg("database wiped")

	ids := utils.NewUUIDGenerator()
	now := time.Now().UTC()

	admin, err := seedUser(ctx, storages, seedAccount{
		id:       ids.Generate(),
		email:    "admin@example.com",
		password: "Admin123!",
		name:     "Admin User",
		role:     models.RoleAdmin,
		profile: &models.Profile{
			Bio:    "Platform administrator",
			Avatar: "https://i.pravatar.cc/150?u=admin",
		},
		cost: cfg.App.BcryptCost,
		now:  now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error seeding admin")
	}
	log.Info().Str("id", admin.ID).Str("email", admin.Email).Msg("admin seeded")

	regular, err := seedUser(ctx, storages, seedAccount{
		id:       ids.Generate(),
		email:    "user@example.com",
		password: "User123!",
		name:     "Regular User",
		role:     models.RoleUser,
		cost:     cfg.App.BcryptCost,
		now:      now,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error seeding user")
	}
	log.Info().Str("id", regular.ID).Str("email", regular.Email).Msg("regular user seeded")

	firstPost := models.Post{
		ID:        ids.Generate(),
		Title:     "Welcome to Flowdash",
		Content:   "This is the first seeded post.",
		Published: true,
		AuthorID:  admin.ID,
		CreatedAt: now,
	}
	secondPost := models.Post{
		ID:        ids.Generate(),
		Title:     "Getting started",
		Content:   "A draft on configuring your dashboard.",
		Published: false,
		AuthorID:  regular.ID,
		CreatedAt: now,
	}
	for _, post := range []models.Post{firstPost, secondPost} {
		if err = storages.SeedRepository.InsertPost(ctx, post); err != nil {
			log.Fatal().Err(err).Str("title", post.Title).Msg("error seeding post")
		}
	}

	comments := []models.Comment{
		{ID: ids.Generate(), Content: "Great to see this live!", PostID: firstPost.ID, CreatedAt: now},
		{ID: ids.Generate(), Content: "Looking forward to the full guide.", PostID: firstPost.ID, CreatedAt: now},
	}
	for _, comment := range comments {
		if err = storages.SeedRepository.InsertComment(ctx, comment); err != nil {
			log.Fatal().Err(err).Msg("error seeding comment")
		}
	}

	log.Info().Msg("seeding finished")
}

type seedAccount struct {
	id       string
	email    string
	password string
	name     string
	role     models.Role
	profile  *models.Profile
	cost     int
	now      time.Time
}

func seedUser(ctx context.Context, storages *store.Storages, account seedAccount) (models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(account.password), account.cost)
	if err != nil {
		return models.User{}, err
	}

	return storages.UserRepository.Insert(ctx, models.User{
		ID:           account.id,
		Email:        account.email,
		Name:         account.name,
		PasswordHash: string(hash),
		Role:         account.role,
		Profile:      account.profile,
		CreatedAt:    account.now,
		UpdatedAt:    account.now,
	})
}
