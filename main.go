package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"emlakjet_scraper/config"
	"emlakjet_scraper/logging"
	"emlakjet_scraper/scheduler"
	"emlakjet_scraper/scraper"
	"emlakjet_scraper/storage"
)

var (
	pages   = flag.Int("pages", 0, "Number of pages to scrape (default 10)")
	visible = flag.Bool("visible", false, "Show browser (not headless)")
	debug   = flag.Bool("debug", false, "Debug mode (analyze page structure on the first page)")
	test    = flag.Bool("test", false, "Test mode (1 page, visible, debug)")
	daemon  = flag.Bool("daemon", false, "Keep running and repeat on SCRAPE_CRON / SCRAPE_INTERVAL")
)

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logFile, err := logging.Setup(cfg.LogPath)
	if err != nil {
		log.Printf("Warning: could not set up file logging: %v", err)
	} else {
		defer logFile.Close()
	}

	if *pages > 0 {
		cfg.Pages = *pages
	}
	cfg.Headless = !*visible
	cfg.Debug = *debug
	if *test {
		log.Println("TEST MODE ENABLED")
		cfg.Pages = 1
		cfg.Headless = false
		cfg.Debug = true
	}

	orchestrator := scraper.NewOrchestrator(cfg)

	runStore, err := storage.NewRunStore(cfg.DBPath)
	if err != nil {
		log.Printf("Warning: run history disabled: %v", err)
		runStore = nil
	} else {
		defer runStore.Close()
	}

	var pgStore *storage.PostgresStore
	if cfg.DatabaseURL != "" {
		pgStore, err = storage.NewPostgresStore(context.Background(), cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to Postgres: %v", err)
		}
		defer pgStore.Close()
		log.Println("Postgres sink enabled")
	}

	var uploader *storage.ArchiveUploader
	if cfg.S3.Bucket != "" {
		uploader, err = storage.NewArchiveUploader(context.Background(), cfg.S3)
		if err != nil {
			log.Fatalf("Failed to set up S3 archive: %v", err)
		}
		log.Printf("S3 archive enabled: %s", cfg.S3.Bucket)
	}

	orchestrator.SetSinks(runStore, pgStore, uploader)

	// First signal cancels the run (partial results get flushed), second
	// one kills the process.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 2)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Interrupted, flushing partial results...")
		cancel()
		<-sigCh
		log.Println("Forced exit")
		os.Exit(1)
	}()

	if *daemon {
		runDaemon(ctx, cfg, orchestrator)
		return
	}

	if err := orchestrator.Run(ctx); err != nil {
		log.Fatalf("Scrape failed: %v", err)
	}
	if ctx.Err() != nil {
		os.Exit(1)
	}
}

func runDaemon(ctx context.Context, cfg *config.Config, orchestrator *scraper.Orchestrator) {
	sched := scheduler.New(cfg, orchestrator)
	if err := sched.Start(ctx); err != nil {
		log.Fatalf("Failed to start scheduler: %v", err)
	}
	log.Println("Daemon running. Press Ctrl+C to stop.")

	<-ctx.Done()
	sched.Stop()
	log.Println("Goodbye!")
}
