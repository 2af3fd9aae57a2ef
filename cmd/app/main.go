package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"taxidispatch/cmd"
	httpin "taxidispatch/internal/adapters/in/http"
	"taxidispatch/internal/adapters/out/postgres/accountrepo"
	"taxidispatch/internal/adapters/out/postgres/orderrepo"
	"taxidispatch/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrate(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	if configs.SeedDemoData {
		if err := app.SeedDemoData(context.Background()); err != nil {
			log.Fatalf("Failed to seed demo data: %v", err)
		}
		logger.Info("Demo data seeded")
	}

	jobManager := jobs.NewJobManager(app.CreateGetDashboardStatsQueryHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Warnf("No .env file loaded: %v", err)
	}

	config := cmd.Config{
		HTTPPort:     os.Getenv("HTTP_PORT"),
		DBHost:       os.Getenv("DB_HOST"),
		DBPort:       os.Getenv("DB_PORT"),
		DBUser:       os.Getenv("DB_USER"),
		DBPassword:   os.Getenv("DB_PASSWORD"),
		DBName:       os.Getenv("DB_NAME"),
		DBSslMode:    os.Getenv("DB_SSLMODE"),
		SeedDemoData: os.Getenv("SEED_DEMO_DATA") == "true",
	}
	return config
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost,
		configs.DBPort,
		configs.DBUser,
		configs.DBPassword,
		configs.DBName,
		configs.DBSslMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return db
}

func mustMigrate(db *gorm.DB) {
	if err := db.AutoMigrate(&accountrepo.AccountDTO{}, &orderrepo.OrderDTO{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	server := httpin.NewServer(
		app.CreateSubmitOrderCommandHandler(),
		app.CreateApproveDriverCommandHandler(),
		app.CreateResetDriverCommandHandler(),
		app.CreateStartTripCommandHandler(),
		app.CreateFinishTripCommandHandler(),
		app.CreateAssignOrderCommandHandler(),
		app.CreateGetDashboardStatsQueryHandler(),
		app.CreateGetOrdersQueryHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetAllDriversQueryHandler(),
		app.CreateGetDriverCurrentOrderQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
