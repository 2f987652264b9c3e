// Local preview server with live reload for the church website.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"bethesda_backend/internals/configs"
	"bethesda_backend/internals/devserver"
	"bethesda_backend/internals/site"
)

func main() {
	cfg, err := configs.Load()
	if err != nil {
		log.Fatalf("[ERROR] config: %v", err)
	}

	var (
		root       = flag.String("root", cfg.SiteRoot, "Directory to serve")
		port       = flag.Int("port", cfg.DevPort, "HTTP port")
		reloadPort = flag.Int("reload-port", cfg.ReloadPort, "Live reload websocket port")
		noReload   = flag.Bool("no-reload", !cfg.LiveReload, "Disable live reload")
	)
	flag.Parse()

	absRoot, err := filepath.Abs(*root)
	if err != nil {
		log.Fatalf("[ERROR] root: %v", err)
	}
	if fi, err := os.Stat(absRoot); err != nil || !fi.IsDir() {
		log.Fatalf("[ERROR] root %s is not a directory", absRoot)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// same generated config.js as the production site
	mux := http.NewServeMux()
	mux.HandleFunc("/assets/js/config.js", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/javascript; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write(site.ConfigScript(cfg.AssetVersion))
	})
	mux.Handle("/", &devserver.FileServer{Root: absRoot, ReloadPort: *reloadPort, LiveReload: !*noReload})

	files := &http.Server{
		Addr:              fmt.Sprintf(":%d", *port),
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	servers := []*http.Server{files}

	hub := devserver.NewHub()
	if !*noReload {
		servers = append(servers, &http.Server{
			Addr:              fmt.Sprintf(":%d", *reloadPort),
			Handler:           hub,
			ReadHeaderTimeout: 5 * time.Second,
		})

		w, err := devserver.NewWatcher(absRoot, hub.Reload)
		if err != nil {
			log.Fatalf("[ERROR] watcher: %v", err)
		}
		go func() {
			if err := w.Run(ctx); err != nil {
				log.Printf("[ERROR] watcher: %v", err)
			}
		}()
	}

	for _, srv := range servers {
		go func(srv *http.Server) {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("[ERROR] listen %s: %v", srv.Addr, err)
			}
		}(srv)
	}

	log.Println("═══════════════════════════════════════════")
	log.Println("  🚀 Bethesda Bible Chapel - Dev Server")
	log.Println("═══════════════════════════════════════════")
	log.Printf("  ✓ Serving %s at http://localhost:%d", absRoot, *port)
	if !*noReload {
		log.Printf("  ✓ Live reload on ws://localhost:%d", *reloadPort)
	}
	log.Println("  ✓ Press Ctrl+C to stop")

	<-ctx.Done()
	log.Println("[INFO] shutting down dev server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	hub.Close()
	for _, srv := range servers {
		_ = srv.Shutdown(shutdownCtx)
	}
}
