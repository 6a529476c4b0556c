package seeder

import (
	"context"
	"encoding/json"
	"fmt"

	"workforce/internal/database"
	"workforce/internal/domain/scoring"
)

type RolesSeeder struct{}

func (RolesSeeder) Name() string { return "roles" }

func (RolesSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "roles",
		"id", "name", "description", "required_skills", "difficulty_level", "created_at",
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
		Description string
		Skills      []string
		Difficulty  float64
		Tasks       []string
	}{
		{
			Name:        "Welding Station Operator",
			Description: "Operates the MIG welding station on the main assembly line.",
			Skills:      []string{"welding", "quality inspection"},
			Difficulty:  0.7,
			Tasks:       []string{"weld chassis joints", "inspect weld seams", "log defects"},
		},
		{
			Name:        "Assembly Line Technician",
			Description: "Assembles components at takt time on line 2.",
			Skills:      []string{"assembly"},
			Difficulty:  0.4,
			Tasks:       []string{"fit components", "torque fasteners", "report line stoppages"},
		},
		{
			Name:        "CNC Machinist",
			Description: "Programs and runs the CNC milling cells.",
			Skills:      []string{"cnc machining", "maintenance"},
			Difficulty:  0.8,
			Tasks:       []string{"set up fixtures", "run milling programs", "measure tolerances"},
		},
		{
			Name:        "Logistics Coordinator",
			Description: "Moves material between warehouse and production floor.",
			Skills:      []string{"logistics", "forklift operation"},
			Difficulty:  0.5,
			Tasks:       []string{"stage materials", "drive forklift", "update inventory counts"},
		},
	}

	for _, it := range items {
		skills, err := json.Marshal(scoring.NormalizeSkills(it.Skills))
		if err != nil {
			return err
		}
		tasks, err := json.Marshal(it.Tasks)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(ctx,
			`INSERT INTO roles (name, description, required_skills, difficulty_level, typical_tasks)
			 VALUES ($1, $2, $3, $4, $5) ON CONFLICT (name) DO NOTHING`,
			it.Name, it.Description, skills, it.Difficulty, tasks,
		); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
