package main

import (
	"context"
	"os"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"kakunin/internal/domain/sqlite"
	"kakunin/internal/domain/sqlite/repository"
	"kakunin/internal/http/handler"
	"kakunin/internal/infrastructure/zipcloud"
	"kakunin/internal/service"
	"kakunin/internal/service/jobs"
	"kakunin/internal/utils/uid"
)

const envVarsPrefix = "/kakunin/prod/"

func main() {
	validate := validator.New()

	// Loads env vars depending on environment
	if os.Getenv("GO_ENV") == "production" {
		loadProdEnv() // AWS SSM Parameter Store
	} else {
		// Loads from .env
		if err := godotenv.Load(); err != nil {
			log.Warnf("no .env file loaded: %v", err)
		}
	}

	uid.Init(machineID())

	// Init SQLite
	db, err := sqlite.Init()
	if err != nil {
		panic(err)
	}

	// External postal-code API
	zipClient := zipcloud.NewClient()

	// Gettings repos
	projectRepo := repository.NewProjectRepository(db)
	financialRepo := repository.NewFinancialRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	appRepo := repository.NewApplicationRepository(db)
	addressRepo := repository.NewAddressCacheRepository(db)
	orphanRepo := repository.NewOrphanRepository(db)

	// Getting services
	projectService := service.NewProjectService(projectRepo)
	detailService := service.NewDetailService(projectRepo, financialRepo, scheduleRepo, validate)
	appService := service.NewApplicationService(projectRepo, appRepo, validate)
	lookupService := service.NewLookupService(zipClient, addressRepo)
	healthService := service.NewHealthService(projectRepo)

	// Gettings handlers
	projectRoutes := handler.NewProjectDefault(projectService)
	detailRoutes := handler.NewDetailDefault(detailService)
	appRoutes := handler.NewApplicationDefault(appService)
	miscRoutes := handler.NewMiscDefault(lookupService, healthService)

	// Background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := jobs.NewOrphanSweeper(orphanRepo)
	cleaner := jobs.NewAddressCacheCleaner(addressRepo)
	go sweeper.Start(ctx)
	go cleaner.Start(ctx)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	// Projects
	e.GET("/api/projects", projectRoutes.GetProjects)
	e.POST("/api/projects", projectRoutes.CreateProject)
	e.GET("/api/projects/:id", projectRoutes.GetProject)
	e.PUT("/api/projects/:id", projectRoutes.UpdateProject)
	e.DELETE("/api/projects/:id", projectRoutes.DeleteProject)

	// Financial / schedule details
	e.PUT("/api/projects/:id/financial", detailRoutes.UpdateFinancial)
	e.PUT("/api/projects/:id/schedule", detailRoutes.UpdateSchedule)

	// Applications
	e.GET("/api/projects/:id/applications", appRoutes.GetApplications)
	e.POST("/api/projects/:id/applications", appRoutes.CreateApplication)

	// Postal lookup
	e.GET("/api/postal/:code", miscRoutes.GetAddress)

	// Healthcheck
	e.GET("/api/health", miscRoutes.GetHealth)

	if err := e.Start(":" + port()); err != nil {
		panic(err)
	}
}

func port() string {
	p := os.Getenv("PORT")
	if p == "" {
		return "8080"
	}
	return p
}

func machineID() int64 {
	raw := os.Getenv("MACHINE_ID")
	if raw == "" {
		return 1
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		log.Fatalf("invalid MACHINE_ID %q: %v", raw, err)
	}
	return id
}

func loadProdEnv() {
	ctx := context.Background()
	cfg, err := config.LoadDefaultConfig(ctx, config.WithRegion("ap-northeast-1"))
	if err != nil {
		log.Fatalf("unable to load SDK config, %v", err)
	}

	client := ssm.NewFromConfig(cfg)
	out, err := client.GetParametersByPath(ctx, &ssm.GetParametersByPathInput{
		Path:           aws.String(envVarsPrefix),
		WithDecryption: aws.Bool(true),
		Recursive:      aws.Bool(true),
	})
	if err != nil {
		log.Fatalf("unable to load prod environment, %v", err)
	}

	prefixLength := len(envVarsPrefix)
	// Export vars
	for _, param := range out.Parameters {
		key := (*param.Name)[prefixLength:]
		value := *param.Value
		enverr := os.Setenv(key, value)
		if enverr != nil {
			log.Fatalf("unable to set environment variable, %v", enverr)
		}
	}
	log.Debugf("loaded %d prod environment variables", len(out.Parameters))
}
