package stores

import (
	"context"
	"errors"

	"tastebook/models"
)

// ErrNotFound is returned when a lookup matches no document, including
// lookups with identifiers that do not parse as ObjectIDs.
var ErrNotFound = errors.New("not found")

type RecipeStore interface {
	Insert(ctx context.Context, recipe *models.Recipe) (string, error)
	FindByID(ctx context.Context, id string) (*models.Recipe, error)
	// FindAll returns every recipe, newest first.
	FindAll(ctx context.Context) ([]models.Recipe, error)
	Update(ctx context.Context, id string, fields map[string]any) (int64, error)
	Delete(ctx context.Context, id string) (int64, error)
	// Search matches a case-insensitive substring against title, any tag,
	// or any ingredient line.
	Search(ctx context.Context, query string) ([]models.Recipe, error)
}

// UserStore persists credentials. Insert does not enforce email
// uniqueness; callers check FindByEmail first, and that check-then-insert
// pair is not atomic.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, username, email, passwordHash string) (string, error)
	UpdatePassword(ctx context.Context, email, newHash string) (int64, error)
}

type DoubtStore interface {
	Insert(ctx context.Context, doubt *models.Doubt) error
}
