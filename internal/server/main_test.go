package server

import (
	"strconv"
	"testing"

	"constella/internal/config"
	"constella/internal/database"
	"constella/internal/repository"
	"constella/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupHandlerTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// newTestServer wires a Server against the given DB without touching the
// metrics registry or global middleware state.
func newTestServer(db *gorm.DB, redisClient *redis.Client) *Server {
	s := &Server{
		config:      &config.Config{JWTSecret: "handler-test-secret"},
		db:          db,
		redis:       redisClient,
		userRepo:    repository.NewUserRepository(db),
		profileRepo: repository.NewProfileRepository(db),
		circleRepo:  repository.NewCircleRepository(db),
		momentRepo:  repository.NewMomentRepository(db),
		connRepo:    repository.NewConnectionRepository(db),
		noteRepo:    repository.NewNoteRepository(db),
	}
	s.profileService = service.NewProfileService(s.profileRepo)
	s.circleService = service.NewCircleService(s.circleRepo)
	s.momentService = service.NewMomentService(s.momentRepo, s.circleRepo)
	s.connectionService = service.NewConnectionService(s.connRepo, s.profileRepo, s.userRepo)
	s.feedService = service.NewFeedService(s.momentRepo, s.connRepo)
	s.noteService = service.NewNoteService(s.noteRepo)
	return s
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// authedApp returns a Fiber app whose requests carry the given user id, the
// way AuthRequired would set it after token validation.
func authedApp(userID uint) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("userID", userID)
		return c.Next()
	})
	return app
}
