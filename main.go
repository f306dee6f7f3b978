package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/orgmatch/orgmatch/api"
	"github.com/orgmatch/orgmatch/cache"
	"github.com/orgmatch/orgmatch/config"
	"github.com/orgmatch/orgmatch/db"
	"github.com/orgmatch/orgmatch/middleware"
	"github.com/orgmatch/orgmatch/providers"
	"github.com/orgmatch/orgmatch/security"
	"github.com/orgmatch/orgmatch/services"
	"github.com/orgmatch/orgmatch/stores"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorBlue   = "\033[34m"
	colorPurple = "\033[35m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

func printBanner() {
	fmt.Printf("%s%s", colorCyan, colorBold)
	fmt.Println("╔══════════════════════════════════════════════════════════════╗")
	fmt.Println("║                                                              ║")
	fmt.Println("║  🤝 OrgMatch Supply/Demand Marketplace                       ║")
	fmt.Println("║                                                              ║")
	fmt.Println("║  Geospatial matching between organisations                   ║")
	fmt.Println("║                                                              ║")
	fmt.Println("╚══════════════════════════════════════════════════════════════╝")
	fmt.Printf("%s", colorReset)
}

func printStep(step, message string) {
	fmt.Printf("%s[%s]%s %s%s%s\n", colorBlue, step, colorReset, colorBold, message, colorReset)
}

func printSuccess(message string) {
	fmt.Printf("%s✓%s %s\n", colorGreen, colorReset, message)
}

func printWarning(message string) {
	fmt.Printf("%s⚠%s %s\n", colorYellow, colorReset, message)
}

func printError(message string) {
	fmt.Printf("%s✗%s %s\n", colorRed, colorReset, message)
}

func printInfo(message string) {
	fmt.Printf("%sℹ%s %s\n", colorCyan, colorReset, message)
}

func main() {
	printBanner()
	fmt.Println()

	printStep("1/9", "Loading configuration...")
	if err := godotenv.Load(); err == nil {
		printInfo("Loaded environment from .env")
	}
	cfg, err := config.LoadConfig()
	if err != nil {
		printError(fmt.Sprintf("Failed to load configuration: %v", err))
		os.Exit(1)
	}
	printSuccess("Configuration loaded successfully")

	printStep("2/9", "Validating configuration...")
	if err := cfg.Validate(); err != nil {
		printError(fmt.Sprintf("Configuration validation failed: %v", err))
		os.Exit(1)
	}
	printSuccess("Configuration validation passed")

	printStep("3/9", "Connecting to database...")
	ctx := context.Background()
	database, err := db.Connect(ctx, cfg)
	if err != nil {
		printError(fmt.Sprintf("Failed to connect to database: %v", err))
		os.Exit(1)
	}
	sqlDB, err := database.DB()
	if err != nil {
		printError(fmt.Sprintf("Failed to get database instance: %v", err))
		os.Exit(1)
	}
	defer sqlDB.Close()
	printSuccess(fmt.Sprintf("Connected to PostgreSQL at %s:%d", cfg.Database.Host, cfg.Database.Port))

	printStep("4/9", "Applying database migrations...")
	migrator := db.CreateMigrator(database)
	if err := migrator.LoadMigrationsFromDir("db/migrations"); err != nil {
		printError(fmt.Sprintf("Failed to load migrations: %v", err))
		os.Exit(1)
	}
	if err := migrator.Up(); err != nil {
		printError(fmt.Sprintf("Failed to apply migrations: %v", err))
		os.Exit(1)
	}
	printSuccess("Database schema up to date")

	printStep("5/9", "Connecting to Redis...")
	redisCache := cache.CreateRedisCache(cache.RedisConfig{
		Host:     cfg.Redis.Host,
		Port:     cfg.Redis.Port,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
		PoolSize: cfg.Redis.PoolSize,
	})
	defer redisCache.Close()
	if err := redisCache.Ping(ctx); err != nil {
		printWarning(fmt.Sprintf("Redis unreachable: %v (searches will skip the cache)", err))
	} else {
		printSuccess(fmt.Sprintf("Connected to Redis at %s:%d", cfg.Redis.Host, cfg.Redis.Port))
	}

	printStep("6/9", "Checking matching worker...")
	matcher := providers.CreateHTTPMatchProvider(cfg.Worker.URL, cfg.Worker.Timeout)
	if matcher.IsAvailable(ctx) {
		printSuccess(fmt.Sprintf("Matching worker reachable at %s", cfg.Worker.URL))
	} else {
		printWarning(fmt.Sprintf("Matching worker unreachable at %s (searches will fail until it is up)", cfg.Worker.URL))
	}

	printStep("7/9", "Initializing stores...")
	supplyStore := stores.CreateSupplyStore(database)
	demandStore := stores.CreateDemandStore(database)
	categoryStore := stores.CreateCategoryStore(database)
	if _, err := categoryStore.EnsureDefault(ctx); err != nil {
		printWarning(fmt.Sprintf("Could not ensure default category: %v", err))
	}
	printSuccess("Stores initialized")

	printStep("8/9", "Initializing services...")
	tokenManager := security.CreateTokenManager(cfg.Security.JWTSecret, cfg.Security.JWTIssuer)
	fetcher := services.CreateFetcher(supplyStore, demandStore)
	searchService := services.CreateSearchService(fetcher, matcher, redisCache)
	supplyService := services.CreateSupplyService(supplyStore, categoryStore, searchService)
	demandService := services.CreateDemandService(demandStore, categoryStore, searchService)
	categoryService := services.CreateCategoryService(categoryStore)
	printSuccess("Services initialized")

	printStep("9/9", "Setting up HTTP server...")
	supplyHandler := api.CreateSupplyHandler(supplyService, searchService)
	demandHandler := api.CreateDemandHandler(demandService, searchService)
	categoryHandler := api.CreateCategoryHandler(categoryService)
	healthHandler := api.CreateHealthHandler(database, redisCache, matcher)

	router := mux.NewRouter()
	router.Use(middleware.RecoveryMiddleware)
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.CORSMiddleware)

	router.HandleFunc("/api/health", healthHandler.HandleHealth).Methods("GET")
	router.Handle("/metrics", promhttp.Handler()).Methods("GET")

	apiRouter := router.PathPrefix("/api").Subrouter()
	if cfg.Security.RateLimitEnabled {
		apiRouter.Use(middleware.RateLimitMiddleware(cfg.Security.RateLimitRPS, cfg.Security.RateLimitBurst))
	}
	apiRouter.Use(middleware.AuthMiddleware(tokenManager))

	apiRouter.HandleFunc("/supply", supplyHandler.HandleCreate).Methods("POST")
	apiRouter.HandleFunc("/supply", supplyHandler.HandleList).Methods("GET")
	apiRouter.HandleFunc("/supply/{id}", supplyHandler.HandleGet).Methods("GET")
	apiRouter.HandleFunc("/supply/{id}", supplyHandler.HandleDelete).Methods("DELETE")
	apiRouter.HandleFunc("/supply/{id}/search", supplyHandler.HandleSearch).Methods("GET")
	apiRouter.HandleFunc("/supply/{id}/cache", supplyHandler.HandleInvalidateCache).Methods("DELETE")

	apiRouter.HandleFunc("/demand", demandHandler.HandleCreate).Methods("POST")
	apiRouter.HandleFunc("/demand", demandHandler.HandleList).Methods("GET")
	apiRouter.HandleFunc("/demand/{id}", demandHandler.HandleGet).Methods("GET")
	apiRouter.HandleFunc("/demand/{id}", demandHandler.HandleDelete).Methods("DELETE")
	apiRouter.HandleFunc("/demand/{id}/search", demandHandler.HandleSearch).Methods("GET")
	apiRouter.HandleFunc("/demand/{id}/cache", demandHandler.HandleInvalidateCache).Methods("DELETE")

	apiRouter.HandleFunc("/categories", categoryHandler.HandleList).Methods("GET")

	server := &http.Server{
		Addr:           ":" + cfg.Server.Port,
		Handler:        router,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}
	printSuccess("HTTP server configured")

	fmt.Println()
	fmt.Printf("%s%s🎉 OrgMatch is ready!%s\n", colorGreen, colorBold, colorReset)
	fmt.Println()
	fmt.Printf("%s%sAPI Endpoints:%s\n", colorPurple, colorBold, colorReset)
	fmt.Printf("  %s•%s Health:     %shttp://localhost:%s/api/health%s\n", colorCyan, colorReset, colorYellow, cfg.Server.Port, colorReset)
	fmt.Printf("  %s•%s Metrics:    %shttp://localhost:%s/metrics%s\n", colorCyan, colorReset, colorYellow, cfg.Server.Port, colorReset)
	fmt.Printf("  %s•%s Supply:     %shttp://localhost:%s/api/supply%s\n", colorCyan, colorReset, colorYellow, cfg.Server.Port, colorReset)
	fmt.Printf("  %s•%s Demand:     %shttp://localhost:%s/api/demand%s\n", colorCyan, colorReset, colorYellow, cfg.Server.Port, colorReset)
	fmt.Printf("  %s•%s Categories: %shttp://localhost:%s/api/categories%s\n", colorCyan, colorReset, colorYellow, cfg.Server.Port, colorReset)
	fmt.Println()
	fmt.Printf("%s%sEnvironment:%s %s%s%s\n", colorPurple, colorBold, colorReset, colorYellow, cfg.Environment, colorReset)
	fmt.Printf("%s%sWorker:%s %s%s%s\n", colorPurple, colorBold, colorReset, colorYellow, cfg.Worker.URL, colorReset)
	fmt.Println()
	fmt.Printf("%s%sPress Ctrl+C to stop the server%s\n", colorYellow, colorBold, colorReset)
	fmt.Println()

	go func() {
		printInfo(fmt.Sprintf("Starting HTTP server on port %s...", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			printError(fmt.Sprintf("Server failed to start: %v", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println()
	printWarning("Shutting down OrgMatch server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		printError(fmt.Sprintf("Server forced to shutdown: %v", err))
		os.Exit(1)
	}

	printSuccess("OrgMatch server stopped gracefully")
}
