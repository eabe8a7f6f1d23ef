package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"exportflow/cmd"
	"exportflow/internal/adapters/out/postgres/auditrepo"
	"exportflow/internal/adapters/out/postgres/bagrepo"
	"exportflow/internal/adapters/out/postgres/identifiergen"
	"exportflow/internal/adapters/out/postgres/manifestrepo"
	"exportflow/internal/adapters/out/postgres/shipmentrepo"
	"exportflow/internal/adapters/out/postgres/trackingrepo"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	configs := getConfigs()

	db := openDatabase(configs)
	migrateDatabase(db)

	app, err := cmd.NewCompositionRoot(configs, db, logger)
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),

		WeightTolerance:    goDotEnvFloat("WEIGHT_TOLERANCE_PCT"),
		DimensionTolerance: goDotEnvFloat("DIMENSION_TOLERANCE_PCT"),
		RequireSealedBags:  goDotEnvBool("REQUIRE_SEALED_BAGS"),

		KafkaHost:          goDotEnvVariable("KAFKA_HOST"),
		KafkaTrackingTopic: goDotEnvVariable("KAFKA_TRACKING_TOPIC"),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func goDotEnvFloat(key string) float64 {
	value, err := strconv.ParseFloat(goDotEnvVariable(key), 64)
	if err != nil {
		log.Fatalf("Invalid float for %s: %v", key, err)
	}
	return value
}

func goDotEnvBool(key string) bool {
	value, err := strconv.ParseBool(goDotEnvVariable(key))
	if err != nil {
		log.Fatalf("Invalid bool for %s: %v", key, err)
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode,
	)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	return db
}

func migrateDatabase(db *gorm.DB) {
	err := db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&bagrepo.BagDTO{},
		&bagrepo.BagShipmentDTO{},
		&manifestrepo.ManifestDTO{},
		&manifestrepo.ManifestBagDTO{},
		&auditrepo.EntryDTO{},
		&trackingrepo.EventDTO{},
		&identifiergen.IssuedIdentifierDTO{},
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

	app.CreateHTTPServer().RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
