// Package seed provides helpers to create demo data for the application
// database. These helpers are intended for development and testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"constella/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumMoments  int
	ShouldClean bool
}

var circleTemplates = []struct {
	Name        string
	Description string
}{
	{"Trabajo", "Projects, deadlines, and small wins at work."},
	{"Familia", "Time with the people at home."},
	{"Salud", "Training, rest, and how the body feels."},
	{"Lectura", "Books in progress and the ideas they leave behind."},
	{"Viajes", "Places visited and places still on the list."},
	{"Música", "What is playing on repeat this week."},
	{"Cocina", "Experiments in the kitchen, good and bad."},
	{"Amistades", "Catching up with old friends."},
}

// Seed populates the database with demo users, circles, moments,
// connections, and notes.
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Seeding %d users and %d moments...", opts.NumUsers, opts.NumMoments)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway...")
		}
	}

	f := NewFactory(db)

	users, err := f.CreateUsers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("created %d users with profiles", len(users))

	circlesByUser, err := f.CreateCircles(users)
	if err != nil {
		return fmt.Errorf("failed to create circles: %w", err)
	}

	if err := f.CreateMoments(users, circlesByUser, opts.NumMoments); err != nil {
		return fmt.Errorf("failed to create moments: %w", err)
	}
	log.Printf("created %d moments", opts.NumMoments)

	connections, err := f.CreateConnections(users)
	if err != nil {
		return fmt.Errorf("failed to create connections: %w", err)
	}
	log.Printf("created %d connections", connections)

	if err := f.CreateNotes(users); err != nil {
		return fmt.Errorf("failed to create notes: %w", err)
	}

	log.Println("Seeding completed.")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE notes, connections, moments, circles, profiles, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

// Factory builds domain entities and persists them to the database.
type Factory struct {
	db *gorm.DB
	r  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // weak randomness is fine for seeding
	return &Factory{db: db, r: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUsers persists n users, each with a profile. All seed users share
// the password "password123".
func (f *Factory) CreateUsers(n int) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, n)
	for i := 0; i < n; i++ {
		first := gofakeit.FirstName()
		last := gofakeit.LastName()
		username := strings.ToLower(fmt.Sprintf("%s_%s%d", first, last, f.r.Intn(1000)))
		user := models.User{
			Username: username,
			Email:    fmt.Sprintf("%s@%s", username, gofakeit.DomainName()),
			Password: string(hashed),
		}
		if err := f.db.Create(&user).Error; err != nil {
			return nil, err
		}

		profile := models.Profile{
			UserID:      user.ID,
			Username:    user.Username,
			DisplayName: first + " " + last,
			Email:       user.Email,
			AvatarURL:   fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		}
		if err := f.db.Create(&profile).Error; err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// CreateCircles gives each user a few circles drawn from the templates.
func (f *Factory) CreateCircles(users []models.User) (map[uint][]models.Circle, error) {
	byUser := make(map[uint][]models.Circle, len(users))
	for _, user := range users {
		count := 2 + f.r.Intn(3)
		picks := f.r.Perm(len(circleTemplates))[:count]
		for _, idx := range picks {
			tpl := circleTemplates[idx]
			circle := models.Circle{
				UserID:      user.ID,
				Name:        tpl.Name,
				Description: tpl.Description,
				Color:       models.SuggestedCircleColors[f.r.Intn(len(models.SuggestedCircleColors))],
			}
			if err := f.db.Create(&circle).Error; err != nil {
				return nil, err
			}
			byUser[user.ID] = append(byUser[user.ID], circle)
		}
	}
	return byUser, nil
}

// CreateMoments spreads n moments over the users' circles with a mix of
// moods and visibilities and a realistic created_at spread.
func (f *Factory) CreateMoments(users []models.User, circlesByUser map[uint][]models.Circle, n int) error {
	visibilities := []models.Visibility{
		models.VisibilityPrivate,
		models.VisibilityConnections,
		models.VisibilityConnections,
		models.VisibilityPublic,
	}
	for i := 0; i < n; i++ {
		user := users[f.r.Intn(len(users))]
		circles := circlesByUser[user.ID]
		if len(circles) == 0 {
			continue
		}
		circle := circles[f.r.Intn(len(circles))]

		daysBack := f.r.Intn(30)
		hoursBack := f.r.Intn(24)
		moment := models.Moment{
			UserID:     user.ID,
			CircleID:   circle.ID,
			Title:      gofakeit.Sentence(4),
			Content:    gofakeit.Paragraph(1, 2, 8, "\n"),
			Mood:       models.Moods[f.r.Intn(len(models.Moods))],
			Visibility: visibilities[f.r.Intn(len(visibilities))],
			CreatedAt:  time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour),
		}
		if err := f.db.Create(&moment).Error; err != nil {
			return err
		}
	}
	return nil
}

// CreateConnections wires a partial mesh between the users. Roughly two
// thirds of the created pairs are accepted, the rest stay pending.
func (f *Factory) CreateConnections(users []models.User) (int, error) {
	created := 0
	for i := range users {
		for j := i + 1; j < len(users); j++ {
			if f.r.Float64() > 0.3 {
				continue
			}
			status := models.ConnectionStatusAccepted
			if f.r.Float64() < 0.33 {
				status = models.ConnectionStatusPending
			}
			conn := models.Connection{
				UserID:       users[i].ID,
				TargetUserID: users[j].ID,
				Status:       status,
			}
			if f.r.Intn(2) == 0 {
				conn.UserID, conn.TargetUserID = conn.TargetUserID, conn.UserID
			}
			if err := f.db.Create(&conn).Error; err != nil {
				return created, err
			}
			created++
		}
	}
	return created, nil
}

// CreateNotes gives each user a handful of personal notes.
func (f *Factory) CreateNotes(users []models.User) error {
	for _, user := range users {
		count := 1 + f.r.Intn(4)
		for i := 0; i < count; i++ {
			note := models.Note{
				UserID: user.ID,
				Text:   gofakeit.Sentence(8),
			}
			if err := f.db.Create(&note).Error; err != nil {
				return err
			}
		}
	}
	return nil
}
