package profile

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Profile struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Education string    `json:"education"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Skills   []Skill   `json:"skills"`
	Projects []Project `json:"projects"`
	Work     []Work    `json:"work"`
	Links    *Links    `json:"links"`
}

type Skill struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	SkillName string    `json:"skill_name"`
	Level     *string   `json:"level"`
}

type Project struct {
	ID          uuid.UUID `json:"id"`
	ProfileID   uuid.UUID `json:"profile_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
}

type Work struct {
	ID        uuid.UUID `json:"id"`
	ProfileID uuid.UUID `json:"profile_id"`
	Company   string    `json:"company"`
	Position  string    `json:"position"`
}

type Links struct {
	ProfileID uuid.UUID `json:"profile_id"`
	GitHub    *string   `json:"github"`
	LinkedIn  *string   `json:"linkedin"`
	Portfolio *string   `json:"portfolio"`
}

// Repository is the narrow boundary to the database. Email is the lookup
// key; skills, projects, work and links are read-only through this API.
type Repository interface {
	// GetByEmail loads the profile with all nested collections.
	GetByEmail(ctx context.Context, email string) (*Profile, error)
	// Create inserts the profile and fills in the stored row.
	Create(ctx context.Context, p *Profile) error
	// Update patches name and education of the profile matching email
	// and returns the updated row without nested collections.
	Update(ctx context.Context, email, name, education string) (*Profile, error)
}
