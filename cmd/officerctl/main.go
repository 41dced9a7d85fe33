package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"os"
	"strconv"
	"time"

	"github.com/shenikar/citizen_watch/internal/config"
	"github.com/shenikar/citizen_watch/internal/demo"
	"github.com/shenikar/citizen_watch/internal/models"
	"github.com/shenikar/citizen_watch/internal/repository"
	"github.com/shenikar/citizen_watch/internal/service"
	"github.com/shenikar/citizen_watch/pkg/logger"
	"github.com/shenikar/citizen_watch/pkg/postgres"
	"github.com/sirupsen/logrus"
)

const usage = `Usage: officerctl <command> [args]

Commands:
  create <badge> <email> <password> <name> [rank] [station] [district]
  deactivate <badge>
  activate <badge>
  seed-demo [generated_count]`

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		os.Exit(1)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}
	log := logger.New(cfg.LogLevel, "text")

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()

	officerRepo := repository.NewOfficerRepository(dbpool)
	authService := service.NewAuthService(officerRepo, service.NewBcryptVerifier(officerRepo), log, cfg.JWTSecret, cfg.JWTTTL)

	args := os.Args[2:]
	switch os.Args[1] {
	case "create":
		if len(args) < 4 || len(args) > 7 {
			fmt.Println("Usage: officerctl create <badge> <email> <password> <name> [rank] [station] [district]")
			os.Exit(1)
		}
		officer := &models.Officer{
			BadgeNumber: args[0],
			Email:       args[1],
			Name:        args[3],
			Rank:        optional(args, 4),
			Station:     optional(args, 5),
			District:    optional(args, 6),
		}
		if err := authService.RegisterOfficer(ctx, officer, args[2]); err != nil {
			log.Fatalf("Error creating officer: %v", err)
		}
		fmt.Printf("Officer %s created with uid %s.\n", officer.BadgeNumber, officer.UID)
	case "deactivate", "activate":
		if len(args) != 1 {
			fmt.Printf("Usage: officerctl %s <badge>\n", os.Args[1])
			os.Exit(1)
		}
		active := os.Args[1] == "activate"
		if err := authService.SetOfficerActive(ctx, args[0], active); err != nil {
			log.Fatalf("Error updating officer: %v", err)
		}
		fmt.Printf("Officer %s is now %s.\n", args[0], map[bool]string{true: "active", false: "deactivated"}[active])
	case "seed-demo":
		count := 0
		if len(args) > 0 {
			count, err = strconv.Atoi(args[0])
			if err != nil || count < 0 {
				fmt.Println("Invalid count. Please provide a non-negative integer.")
				os.Exit(1)
			}
		}
		incidentRepo := repository.NewIncidentRepository(dbpool, nil, 0)
		n, err := seedDemo(ctx, incidentRepo, count)
		if err != nil {
			log.Fatalf("Error seeding demo incidents: %v", err)
		}
		fmt.Printf("Inserted %d demo incidents.\n", n)
	default:
		fmt.Println(usage)
		os.Exit(1)
	}
}

func seedDemo(ctx context.Context, repo service.IncidentRepository, generated int) (int, error) {
	items := demo.Incidents()
	if generated > 0 {
		rng := rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0))
		items = append(items, demo.Generate(rng, len(items)+1, generated, time.Now())...)
	}
	for i, item := range items {
		if err := repo.Create(ctx, item); err != nil {
			return i, err
		}
	}
	return len(items), nil
}

func optional(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
