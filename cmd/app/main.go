package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/kaisalokaidi-lgtm/kitchen-orders/cmd"
	httpin "github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/in/http"
	postgresout "github.com/kaisalokaidi-lgtm/kitchen-orders/internal/adapters/out/postgres"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const defaultPendingReminderAfter = 10 * time.Minute

func main() {
	configs := getConfigs()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	gormDB := openDatabase(configs)
	if err := postgresout.Migrate(gormDB); err != nil {
		log.Fatalf("Error migrating database: %v", err)
	}

	app := cmd.NewCompositionRoot(configs, gormDB, logger)
	defer app.Hub().Close()

	jobManager := app.CreateJobManager()
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	return cmd.Config{
		HTTPPort:                  goDotEnvVariable("HTTP_PORT"),
		DBHost:                    goDotEnvVariable("DB_HOST"),
		DBPort:                    goDotEnvVariable("DB_PORT"),
		DBUser:                    goDotEnvVariable("DB_USER"),
		DBPassword:                goDotEnvVariable("DB_PASSWORD"),
		DBName:                    goDotEnvVariable("DB_NAME"),
		DBSslMode:                 goDotEnvVariable("DB_SSLMODE"),
		IncludeAdminsInBulkToggle: boolEnvVariable("INCLUDE_ADMINS_IN_BULK_TOGGLE"),
		PendingReminderAfter:      durationEnvVariable("PENDING_REMINDER_AFTER", defaultPendingReminderAfter),
	}
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func boolEnvVariable(key string) bool {
	value, err := strconv.ParseBool(goDotEnvVariable(key))
	if err != nil {
		return false
	}
	return value
}

func durationEnvVariable(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(goDotEnvVariable(key))
	if err != nil {
		return fallback
	}
	return value
}

func openDatabase(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser, configs.DBPassword,
		configs.DBName, configs.DBSslMode)

	gormDB, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	server := httpin.NewServer(
		app.CreatePlaceOrderCommandHandler(),
		app.CreateStartPreparingCommandHandler(),
		app.CreateMarkReadyCommandHandler(),
		app.CreateToggleIngredientCheckedCommandHandler(),
		app.CreateCollectOrderCommandHandler(),
		app.CreateDeliverOrderCommandHandler(),
		app.CreateClearOrdersCommandHandler(),
		app.CreateSetEligibilityCommandHandler(),
		app.CreateSetCohortEligibilityCommandHandler(),
		app.CreateCreateUserCommandHandler(),
		app.CreateUpdateUserCommandHandler(),
		app.CreateDeleteUserCommandHandler(),
		app.CreateCreateIngredientCommandHandler(),
		app.CreateUpdateIngredientCommandHandler(),
		app.CreateDeleteIngredientCommandHandler(),
		app.CreateGetOrderBoardQueryHandler(),
		app.CreateGetReadyOrdersQueryHandler(),
		app.CreateGetCourierDeliveriesQueryHandler(),
		app.CreateGetDeliveredOrdersQueryHandler(),
		app.CreateGetMenuQueryHandler(),
		app.Hub(),
	)

	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
