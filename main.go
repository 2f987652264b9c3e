package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"bethesda_backend/internals/configs"
	database "bethesda_backend/internals/databases"
	helper "bethesda_backend/internals/helpers"
	"bethesda_backend/internals/mailer"
	middlewares "bethesda_backend/internals/middlewares"
	routes "bethesda_backend/internals/route"
	"bethesda_backend/internals/site"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("[ERROR] config: %v", err)
	}

	fiberCfg := fiber.Config{
		// 🚀 fast JSON
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		ErrorHandler:          helper.ErrorHandler,
		DisableStartupMessage: true,
		// request values outlive the handler in background mail
		Immutable:    true,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  90 * time.Second,
	}
	// X-Forwarded-For only counts when it comes from TRUSTED_PROXIES
	middlewares.ApplyProxyConfig(&fiberCfg, cfg.TrustedProxies)
	app := fiber.New(fiberCfg)

	// ⚙️ recover, request-ID, access log, helmet, CORS, global limiter
	middlewares.SetupMiddlewares(app, cfg)
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault})) // brotli / gzip
	app.Use(etag.New())                                                  // 304 caching

	// 🔌 DB connect + pool + warm-up
	db, err := database.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	database.TunePool(db)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
	database.WarmUpQueries(db)

	// ✉️ mail runs in the background, drained on shutdown
	sender, err := mailer.New(cfg)
	if err != nil {
		log.Fatalf("[ERROR] mailer: %v", err)
	}
	mail := mailer.NewDispatcher(sender, cfg.MailTimeout)

	// ✅ API routes, then the site (its 404 handler must come last)
	routes.SetupRoutes(app, db, routes.Deps{
		Environment:      cfg.Environment,
		Mail:             mail,
		Compose:          mailer.NewComposer(cfg),
		ContactRateLimit: cfg.ContactRateLimit,
	})
	site.New(site.Options{
		Root:         cfg.SiteRoot,
		AssetVersion: cfg.AssetVersion,
		Production:   cfg.IsProduction(),
	}).Register(app)

	go func() {
		log.Printf("[INFO] ✅ Listening on :%s (%s)", cfg.Port, cfg.Environment)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("[ERROR] server: %v", err)
		}
	}()

	// graceful shutdown: stop HTTP, drain mail, close the pool
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("[ERROR] shutdown: %v", err)
	}
	if err := mail.Wait(ctx); err != nil {
		log.Printf("[WARN] pending emails dropped: %v", err)
	}
	if err := database.NewAdapter(db).Close(); err != nil {
		log.Printf("[ERROR] close db: %v", err)
	}
}
