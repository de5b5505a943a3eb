package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

type demoContact struct {
	name            string
	role            string
	company         string
	location        string
	email           string
	warmthScore     int
	lastInteraction time.Time
	nextFollowUp    *time.Time
	tags            []string
	notes           string
}

type demoNudge struct {
	contactIdx int
	nudgeType  string
	message    string
	priority   string
	date       time.Time
}

func main() {
	fmt.Println("seeding demo contacts into database...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	DSN := os.Getenv("DB_DSN")

	pool, err := pgxpool.New(context.Background(), DSN)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	day := func(s string) time.Time {
		t, err := time.Parse("2006-01-02", s)
		if err != nil {
			log.Fatalf("bad seed date %q: %v", s, err)
		}
		return t
	}
	followUp := day("2024-11-20")

	contacts := []demoContact{
		{
			name: "Maya Patel", role: "Founder & CEO", company: "Lumina Health",
			location: "San Francisco, CA", email: "maya@lumina.health",
			warmthScore: 85, lastInteraction: day("2024-11-10"),
			tags:  []string{"HealthTech", "Founder", "SF"},
			notes: "Met at TechCrunch Disrupt. Interested in Series A intros.",
		},
		{
			name: "Alex Chen", role: "Partner", company: "Greylock",
			location: "Menlo Park, CA", email: "achen@greylock.com",
			warmthScore: 42, lastInteraction: day("2024-09-15"), nextFollowUp: &followUp,
			tags:  []string{"VC", "Series A", "AI"},
			notes: "Key contact for AI infra deals. Loves hiking.",
		},
		{
			name: "Sarah Jenkins", role: "VP of Engineering", company: "Stripe",
			location: "New York, NY", email: "sarah.j@stripe.com",
			warmthScore: 92, lastInteraction: day("2024-11-15"),
			tags:  []string{"Fintech", "Engineering", "Operator"},
			notes: "Former colleague. Good for technical due diligence.",
		},
		{
			name: "David Kim", role: "Angel Investor", company: "Self-employed",
			location: "Austin, TX", email: "dkim@angel.co",
			warmthScore: 25, lastInteraction: day("2024-06-20"),
			tags:  []string{"Angel", "Consumer", "Austin"},
			notes: "Invests in consumer social. Has been quiet recently.",
		},
		{
			name: "Elena Rodriguez", role: "Product Lead", company: "Notion",
			location: "San Francisco, CA", email: "elena@notion.so",
			warmthScore: 60, lastInteraction: day("2024-10-01"),
			tags:  []string{"Product", "SaaS", "SF"},
			notes: "Great product thinker. Potential advisor.",
		},
	}

	contactQuery := `
		INSERT INTO contacts (
			id, name, role, company, location, email,
			warmth_score, priority_score, last_interaction, next_follow_up,
			tags, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
		ON CONFLICT DO NOTHING
	`

	ids := make([]uuid.UUID, len(contacts))
	for i, c := range contacts {
		ids[i] = uuid.New()
		_, err := pool.Exec(context.Background(), contactQuery,
			ids[i], c.name, c.role, c.company, c.location, c.email,
			c.warmthScore, 50, c.lastInteraction, c.nextFollowUp,
			c.tags, c.notes,
		)
		if err != nil {
			log.Fatalf("cannot add contact '%s': %v", c.name, err)
		}
		fmt.Printf("added contact '%s'\n", c.name)
	}

	nudges := []demoNudge{
		{
			contactIdx: 1, nudgeType: "decay", priority: "high", date: day("2024-11-19"),
			message: "It's been 60 days since you last spoke with Alex. Keep warm?",
		},
		{
			contactIdx: 3, nudgeType: "location", priority: "medium", date: day("2024-11-18"),
			message: "You're visiting Austin next week. Grab coffee with David?",
		},
		{
			contactIdx: 0, nudgeType: "milestone", priority: "medium", date: day("2024-11-17"),
			message: "Maya just raised a new round. Send congratulations?",
		},
	}

	nudgeQuery := `
		INSERT INTO nudges (id, contact_id, type, message, priority, date, status)
		VALUES ($1, $2, $3, $4, $5, $6, 'pending')
	`
	for _, n := range nudges {
		_, err := pool.Exec(context.Background(), nudgeQuery,
			uuid.New(), ids[n.contactIdx], n.nudgeType, n.message, n.priority, n.date,
		)
		if err != nil {
			log.Fatalf("cannot add nudge: %v", err)
		}
	}

	fmt.Println("seeded demo data successfully!")
}
