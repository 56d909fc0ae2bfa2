package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"licensing-backend/config"
	"licensing-backend/internal/bootstrap"
	internal_services "licensing-backend/internal/services"
	"licensing-backend/middleware"
	"licensing-backend/seeds"
	"licensing-backend/token"

	// Repositories
	client_repositories "licensing-backend/clients/repositories"
	contract_repositories "licensing-backend/contracts/repositories"
	currency_repositories "licensing-backend/currency/repositories"
	income_repositories "licensing-backend/income/repositories"
	software_repositories "licensing-backend/softwares/repositories"
	user_repositories "licensing-backend/users/repositories"

	// Services
	client_services "licensing-backend/clients/services"
	contract_services "licensing-backend/contracts/services"
	currency_services "licensing-backend/currency/services"
	income_services "licensing-backend/income/services"
	software_services "licensing-backend/softwares/services"
	user_services "licensing-backend/users/services"

	// Controllers
	client_controllers "licensing-backend/clients/controllers"
	contract_controllers "licensing-backend/contracts/controllers"
	currency_controllers "licensing-backend/currency/controllers"
	income_controllers "licensing-backend/income/controllers"
	software_controllers "licensing-backend/softwares/controllers"
	user_controllers "licensing-backend/users/controllers"

	// Routes
	client_routes "licensing-backend/clients/routes"
	contract_routes "licensing-backend/contracts/routes"
	currency_routes "licensing-backend/currency/routes"
	income_routes "licensing-backend/income/routes"
	software_routes "licensing-backend/softwares/routes"
	user_routes "licensing-backend/users/routes"

	// bleve
	bleveControllers "licensing-backend/bleve/controllers"
	bleveRepositories "licensing-backend/bleve/repositories"
	bleveRoutes "licensing-backend/bleve/routes"
	bleveServices "licensing-backend/bleve/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func main() {
	config.LoadEnv()
	settings := config.LoadSettings()
	config.InitLogger(settings.LogStdout)
	defer config.Logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db := config.ConfigureDatabase(settings)
	redisClient := config.InitRedisServer(ctx, settings)
	defer redisClient.Close()

	tokenMaker, err := token.NewMaker(settings.TokenType, settings.TokenSymmetricKey)
	if err != nil {
		config.Logger.Fatal("Cannot create token maker", zap.Error(err))
	}
	appCtx := &middleware.AppContext{
		TokenMaker:      tokenMaker,
		Ctx:             ctx,
		RedisClient:     redisClient,
		AccessDuration:  settings.TokenDuration,
		RefreshDuration: settings.RefreshDuration,
		SecureCookies:   settings.SecureCookies,
	}

	// Search index
	bleveIndexingService := bleveServices.NewIndexingService(config.Logger, settings.BleveIndexPath)
	defer bleveIndexingService.Close()
	bleveRepo := bleveRepositories.NewBleveRepository(bleveIndexingService)

	// Currency: upstream API -> Redis -> last known rate in postgres
	var upstream currency_services.RatesFetcher = currency_services.OfflineFetcher{}
	exchangeRateService, err := internal_services.NewExchangeRateService(
		settings.ExchangeAPIURL,
		settings.ExchangeAPIKey,
		internal_services.WithRateLimit(time.Second, 5),
		internal_services.WithRetry(3, 500*time.Millisecond),
	)
	if err != nil {
		config.Logger.Warn("Exchange rate API disabled, serving stored rates only", zap.Error(err))
	} else {
		upstream = exchangeRateService
	}
	rateProvider := currency_services.NewCachedRateProvider(
		redisClient,
		currency_repositories.NewExchangeRateRepository(db),
		upstream,
		settings.RateCacheTTL,
	)
	converter := currency_services.NewConverter(settings.BaseCurrency, rateProvider)

	// Repositories
	clientStore := client_repositories.NewStore(db)
	contractStore := contract_repositories.NewStore(db)
	softwareRepo := software_repositories.NewSoftwareRepository(db)
	userRepo := user_repositories.NewUserRepository(db)
	incomeRepo := income_repositories.NewIncomeRepository(db)

	// Services
	authService := user_services.NewAuthService(userRepo)
	clientService := client_services.NewClientService(clientStore, bleveRepo)
	softwareService := software_services.NewSoftwareService(softwareRepo)
	contractService := contract_services.NewContractService(contractStore)
	discountService := contract_services.NewDiscountService(contractStore)
	incomeService := income_services.NewIncomeService(incomeRepo, clientStore.Clients(), softwareRepo, converter)

	//------ Seed roles, administrator and demo catalogue ------//
	seeder := &seeds.Seeder{Auth: authService, Softwares: softwareService, Discounts: discountService}
	if err := seeder.SeedLicensingAll(ctx, seeds.AdminAccount{
		Login:    settings.AdminLogin,
		Password: settings.AdminPassword,
		Email:    settings.AdminEmail,
	}); err != nil {
		config.Logger.Fatal("Database seeding failed", zap.Error(err))
	}

	bootstrap.IndexBleveData(ctx, clientStore.Clients(), bleveRepo)

	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler})
	middleware.InitCors(app, settings.CORSOrigins)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	user_routes.InitRoutes(api, user_controllers.NewAuthController(authService, appCtx))

	protected := api.Group("", middleware.ProtectedRoute(appCtx))
	bleveRoutes.InitBleveRoutes(protected, bleveControllers.NewSearchController(bleveRepo))
	income_routes.IncomeInitRoutes(protected, income_controllers.NewIncomeController(incomeService))
	client_routes.ClientInitRoutes(protected, client_controllers.NewClientController(clientService))
	software_routes.SoftwareInitRoutes(protected, software_controllers.NewSoftwareController(softwareService))
	contract_routes.ContractInitRoutes(protected, contract_controllers.NewContractController(contractService, discountService))
	currency_routes.CurrencyInitRoutes(protected, currency_controllers.NewCurrencyController(converter, rateProvider))

	go func() {
		<-ctx.Done()
		config.Logger.Info("Shutting down server")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			config.Logger.Error("Server shutdown failed", zap.Error(err))
		}
	}()

	config.Logger.Info("Server starting", zap.String("port", settings.Port))
	if err := app.Listen(":" + settings.Port); err != nil {
		config.Logger.Fatal("Server failed", zap.String("port", settings.Port), zap.Error(err))
	}
}
