package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/config"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/database"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/logger"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/model"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/repository"
	"github.com/Nithinhelloweb/CGPA-REACT-V1/internal/service"
)

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

// The built-in regulations. Only the ones already in force start active.
var seeds = []model.RegulationRequest{
	{Regulation: 21, StartBatchYear: 2021, EndBatchYear: intPtr(2024), IsActive: boolPtr(true)},
	{Regulation: 25, StartBatchYear: 2025, EndBatchYear: intPtr(2028), IsActive: boolPtr(true)},
	{Regulation: 29, StartBatchYear: 2029, EndBatchYear: intPtr(2032), IsActive: boolPtr(false)},
	{Regulation: 33, StartBatchYear: 2033, EndBatchYear: intPtr(2036), IsActive: boolPtr(false)},
}

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// No Redis here; the API picks up the new rows once its cache expires.
	regulations := service.NewRegulationService(repository.NewRegulationRepository(pool), nil, cfg, log)

	existing, err := regulations.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to list regulations")
	}
	seen := make(map[int]bool, len(existing))
	for _, r := range existing {
		seen[int(r.Regulation)] = true
	}

	fmt.Println("=== Seeding Regulations ===")

	created := 0
	for _, req := range seeds {
		if seen[req.Regulation] {
			fmt.Printf("Regulation %d already present, skipping\n", req.Regulation)
			continue
		}
		reg, err := regulations.Create(ctx, req)
		if errors.Is(err, service.ErrOverlappingRange) {
			fmt.Printf("Regulation %d overlaps an existing range, skipping\n", req.Regulation)
			continue
		}
		if err != nil {
			log.Fatal().Err(err).Int("regulation", req.Regulation).Msg("Failed to create regulation")
		}
		created++
		fmt.Printf("Created %s (%d-%d, active=%t)\n", reg.Name, reg.StartBatchYear, *reg.EndBatchYear, reg.IsActive)
	}

	fmt.Printf("\nSeed completed! Added %d/%d regulations.\n", created, len(seeds))
}
