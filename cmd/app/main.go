package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"minishop/cmd"
	httpadapter "minishop/internal/adapters/in/http"
	"minishop/internal/adapters/out/postgres/orderrepo"
	"minishop/internal/adapters/out/postgres/productrepo"
	"minishop/internal/adapters/out/postgres/revenuerepo"
	"minishop/internal/adapters/out/postgres/tariffrepo"
	"minishop/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultOrderGracePeriod = 30 * time.Minute

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	if err := app.SeedDefaultFees(context.Background()); err != nil {
		log.Fatalf("Failed to seed default fees: %v", err)
	}

	jobManager := jobs.NewJobManager(app.CreateCancelStaleOrdersCommandHandler(), logger)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:          goDotEnvVariable("HTTP_PORT"),
		DBHost:            goDotEnvVariable("DB_HOST"),
		DBPort:            goDotEnvVariable("DB_PORT"),
		DBUser:            goDotEnvVariable("DB_USER"),
		DBPassword:        goDotEnvVariable("DB_PASSWORD"),
		DBName:            goDotEnvVariable("DB_NAME"),
		DBSslMode:         goDotEnvVariable("DB_SSLMODE"),
		CourierWebhookURL: goDotEnvVariable("COURIER_WEBHOOK_URL"),
		OrderGracePeriod:  getGracePeriod(),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func getGracePeriod() time.Duration {
	raw := goDotEnvVariable("ORDER_GRACE_PERIOD")
	if raw == "" {
		return defaultOrderGracePeriod
	}

	grace, err := time.ParseDuration(raw)
	if err != nil || grace <= 0 {
		log.Fatalf("Invalid ORDER_GRACE_PERIOD: %q", raw)
	}
	return grace
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&productrepo.ProductDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.OrderLineDTO{},
		&revenuerepo.RevenueEntryDTO{},
		&tariffrepo.FeeTierDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := httpadapter.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateDispatchOrderCommandHandler(),
		app.CreateConfirmDeliveryCommandHandler(),
		app.CreateCancelOrderCommandHandler(),
		app.CreateAddProductCommandHandler(),
		app.CreateSetFeesCommandHandler(),
		app.CreateGetFeesQueryHandler(),
		app.CreateGetStockQueryHandler(),
		app.CreateGetRevenueReportQueryHandler(),
		app.CreateReportExporters(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
