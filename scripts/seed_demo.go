package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("adding demo data into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	ctx := context.Background()

	type seedProfile struct {
		email     string
		name      string
		education string
		skills    []string
		projects  []string
		company   string
		position  string
	}

	seeds := []seedProfile{
		{
			email:     "alice@x.com",
			name:      "Alice",
			education: "MIT",
			skills:    []string{"Go", "PostgreSQL"},
			projects:  []string{"Router"},
			company:   "Acme",
			position:  "Backend Engineer",
		},
		{
			email:     "bob@x.com",
			name:      "Bob",
			education: "Stanford",
			skills:    []string{"JavaScript", "React"},
			projects:  []string{"Dashboard"},
			company:   "Initech",
			position:  "Frontend Engineer",
		},
	}

	for _, s := range seeds {
		profileID := uuid.New()
		err := pool.QueryRow(ctx, `
			INSERT INTO profiles (id, email, name, education)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (email) DO UPDATE SET name = $3, education = $4, updated_at = NOW()
			RETURNING id
		`, profileID, s.email, s.name, s.education).Scan(&profileID)
		if err != nil {
			log.Fatalf("cannot add profile '%s': %v", s.email, err)
		}

		for _, skill := range s.skills {
			_, err = pool.Exec(ctx, `
				INSERT INTO skills (id, profile_id, skill_name) VALUES ($1, $2, $3)
			`, uuid.New(), profileID, skill)
			if err != nil {
				log.Fatalf("cannot add skill '%s': %v", skill, err)
			}
		}

		for _, title := range s.projects {
			_, err = pool.Exec(ctx, `
				INSERT INTO projects (id, profile_id, title, description) VALUES ($1, $2, $3, $4)
			`, uuid.New(), profileID, title, "demo project")
			if err != nil {
				log.Fatalf("cannot add project '%s': %v", title, err)
			}
		}

		_, err = pool.Exec(ctx, `
			INSERT INTO work (id, profile_id, company, position) VALUES ($1, $2, $3, $4)
		`, uuid.New(), profileID, s.company, s.position)
		if err != nil {
			log.Fatalf("cannot add work for '%s': %v", s.email, err)
		}

		fmt.Printf("added or updated profile '%s' successfully!\n", s.email)
	}
}
