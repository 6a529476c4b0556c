package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"workforce/internal/database"
	"workforce/internal/domain/scoring"
)

type WorkersSeeder struct{}

func (WorkersSeeder) Name() string { return "workers" }

func (WorkersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "workers",
		"id", "name", "age", "experience", "skills", "fatigue_level",
		"hours_per_day", "hours_per_week", "performance_score", "created_at",
	); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		Name        string
		Age         int
		Experience  float64
		Skills      []string
		HoursDay    float64
		HoursWeek   float64
		Performance float64
	}{
		{Name: "Aiko Tanaka", Age: 34, Experience: 8, Skills: []string{"welding", "assembly", "quality inspection"}, HoursDay: 8, HoursWeek: 40, Performance: 0.88},
		{Name: "Budi Santoso", Age: 41, Experience: 15, Skills: []string{"cnc machining", "maintenance", "welding"}, HoursDay: 8, HoursWeek: 44, Performance: 0.82},
		{Name: "Carlos Mendes", Age: 27, Experience: 3, Skills: []string{"assembly", "packaging"}, HoursDay: 7.5, HoursWeek: 38, Performance: 0.71},
		{Name: "Dewi Lestari", Age: 30, Experience: 6, Skills: []string{"quality inspection", "logistics", "forklift operation"}, HoursDay: 8, HoursWeek: 40, Performance: 0.79},
		{Name: "Elena Petrova", Age: 45, Experience: 20, Skills: []string{"maintenance", "electrical systems", "cnc machining"}, HoursDay: 8.5, HoursWeek: 48, Performance: 0.91},
		{Name: "Farhan Akbar", Age: 23, Experience: 1, Skills: []string{"packaging"}, HoursDay: 7, HoursWeek: 35, Performance: 0.60},
	}

	for _, it := range items {
		skills, err := json.Marshal(scoring.NormalizeSkills(it.Skills))
		if err != nil {
			return err
		}
		fatigue := scoring.Fatigue(it.HoursDay, it.HoursWeek)
		if _, err := tx.Exec(ctx,
			`INSERT INTO workers (name, age, experience, skills, fatigue_level, hours_per_day, hours_per_week, performance_score)
			 SELECT $1, $2, $3, $4, $5, $6, $7, $8
			 WHERE NOT EXISTS (SELECT 1 FROM workers WHERE name = $1)`,
			it.Name, it.Age, it.Experience, skills, fatigue, it.HoursDay, it.HoursWeek, it.Performance,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
