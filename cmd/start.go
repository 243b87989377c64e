package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"eshop-catalog/core/catalog"
	"eshop-catalog/core/config"
	"eshop-catalog/core/loader"
	"eshop-catalog/core/logger"
	"eshop-catalog/core/middleware/rayid"
	"eshop-catalog/core/middleware/requestlog"
	"eshop-catalog/feature/games"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "eshop-catalog/docs/swagger"
)

// @title eShop Catalog API
// @version 1.0
// @description Merged Nintendo eShop catalog with regional prices.
// @host localhost:3000
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the catalog server",
	Long: `Starts the HTTP server, then loads both regional catalogs and their prices
in the background. Listings are served while the catalog loads.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Initialize Storefront Provider
		provider, err := newProvider(cfg, logg)
		if err != nil {
			logg.Fatal("Failed to create storefront provider", zap.Error(err))
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
		})

		// 5. Initialize Feature Loader
		mgr := loader.NewManager(logg)
		mgr.Register(games.NewFeature(provider, catalog.NewStore(), logg, cfg.Eshop))

		// Middleware Registration
		// RayID first so every log line carries it.
		app.Use(rayid.New())
		app.Use(requestlog.New(logg))
		app.Use(recover.New())
		app.Use(cors.New(cors.Config{AllowOrigins: cfg.Server.CorsOrigins}))
		if cfg.Server.CompressionEnabled() {
			app.Use(compress.New(compress.Config{Level: compress.Level(cfg.Server.Compression)}))
		}

		app.Get("/swagger/*", swagger.HandlerDefault)

		// 6. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 7. Start Server
		go func() {
			logg.Info("Starting server", zap.String("address", cfg.Server.Address()))
			if err := app.Listen(cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 8. Load the catalog while serving
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()
		initDone := mgr.InitAll(ctx)

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-initDone:
			if err != nil {
				logg.Fatal("Failed to initialize catalog", zap.Error(err))
			}
			<-c
		case <-c:
		}
		logg.Info("Shutting down server...")
		cancel()
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
