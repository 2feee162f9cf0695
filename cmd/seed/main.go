package main

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/guardianpro/guardianpro-api/internal/config"
	"github.com/guardianpro/guardianpro-api/internal/database"
	"github.com/guardianpro/guardianpro-api/internal/repository"
	"github.com/guardianpro/guardianpro-api/internal/service"
)

// Seeds the initial admin account and a starter set of marketing content.
// Safe to run repeatedly; existing rows are left alone.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.Connect(&cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	defer db.Close()

	adminRepo := repository.NewAdminUserRepository(db)
	serviceRepo := repository.NewServiceRepository(db)
	faqRepo := repository.NewFAQRepository(db)
	activityRepo := repository.NewActivityLogRepository(db)
	authSvc := service.NewAdminAuthService(adminRepo, activityRepo)
	contentSvc := service.NewContentService(serviceRepo, repository.NewNewsRepository(db), faqRepo, activityRepo)

	// Admin account
	username := getEnv("SEED_ADMIN_USERNAME", "admin")
	password := getEnv("SEED_ADMIN_PASSWORD", "")
	if password == "" {
		log.Fatal().Msg("SEED_ADMIN_PASSWORD is required")
	}

	if _, err := adminRepo.GetActiveByUsername(username); err == nil {
		log.Info().Str("username", username).Msg("Admin already exists")
	} else if errors.Is(err, sql.ErrNoRows) {
		admin, err := authSvc.CreateAdmin(username, password, "admin", "Site Administrator")
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to create admin")
		}
		log.Info().Str("id", admin.ID).Str("username", admin.Username).Msg("Created admin")
	} else {
		log.Fatal().Err(err).Msg("Failed to look up admin")
	}

	// Starter content, only on an empty database
	count, err := serviceRepo.Count()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to count services")
	}
	if count > 0 {
		log.Info().Int("services", count).Msg("Content already present, skipping")
		return
	}

	services := []service.CreateServiceRequest{
		{
			Title:       "Manned Guarding",
			Description: "Uniformed security officers for offices, retail and residential estates, available around the clock.",
			Price:       decPtr("450.00"),
		},
		{
			Title:       "Mobile Patrols",
			Description: "Scheduled and random vehicle patrols with checkpoint scanning and incident reporting.",
			Price:       decPtr("180.00"),
		},
		{
			Title:       "Alarm Response",
			Description: "Rapid response to triggered alarms with keyholding and premises checks.",
			Price:       decPtr("95.00"),
		},
		{
			Title:       "Event Security",
			Description: "Crowd management and access control for corporate and public events.",
		},
	}
	for i := range services {
		item, err := contentSvc.CreateService(&services[i], "")
		if err != nil {
			log.Error().Err(err).Str("title", services[i].Title).Msg("Failed to seed service")
			continue
		}
		log.Info().Str("id", item.ID).Str("title", item.Title).Msg("Seeded service")
	}

	faqs := []service.CreateFAQRequest{
		{
			Question:  "Are your guards licensed?",
			Answer:    "Yes. Every officer holds a current security industry license and completes our in-house training program.",
			Category:  strPtr("general"),
			SortOrder: intPtr(1),
		},
		{
			Question:  "Do you cover 24/7 shifts?",
			Answer:    "We operate day, night and rotating shifts, including weekends and public holidays.",
			Category:  strPtr("general"),
			SortOrder: intPtr(2),
		},
		{
			Question:  "How quickly can a patrol respond to an alarm?",
			Answer:    "Our average response time inside covered zones is under 15 minutes.",
			Category:  strPtr("operations"),
			SortOrder: intPtr(3),
		},
	}
	for i := range faqs {
		item, err := contentSvc.CreateFAQ(&faqs[i], "")
		if err != nil {
			log.Error().Err(err).Str("question", faqs[i].Question).Msg("Failed to seed FAQ")
			continue
		}
		log.Info().Str("id", item.ID).Msg("Seeded FAQ")
	}

	log.Info().Msg("Seed completed")
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
