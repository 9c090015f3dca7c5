package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"MarketBoard/internal/collector"
	"MarketBoard/internal/config"
	"MarketBoard/internal/holdings"
	"MarketBoard/internal/notifier"
	"MarketBoard/internal/pipeline"
	"MarketBoard/internal/recorder"
	"MarketBoard/internal/scheduler"
	"MarketBoard/internal/snapshot"
	"MarketBoard/internal/yield"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] MarketBoard starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	fetcher := collector.NewYahooFetcher(cfg.Proxy)
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Secondary yield fallback chain: treasury CSV first, XML feed second.
	yieldChain := yield.NewChain(
		yield.NewCSVProvider("2 Yr"),
		yield.NewXMLProvider("BC_2YEAR"),
	)

	// Holdings provider
	var hp pipeline.HoldingsProvider = holdings.NoopProvider{}
	if cfg.Holdings.Enabled {
		hp = holdings.NewYahooProvider(cfg.Proxy)
	}

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Optional Telegram notifier
	var tn *notifier.TelegramNotifier
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != "" {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
	}

	runner := &pipeline.Runner{
		Cfg:      cfg,
		Fetcher:  fetcher,
		Yield:    yieldChain,
		Holdings: hp,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	task := func() { runOnce(ctx, cfg, runner, rec, tn) }

	if !cfg.Schedule.Daemon {
		task()
		return
	}

	// Daemon mode: run on the internal cron schedule until signalled.
	sched := scheduler.NewScheduler()
	if err := sched.RegisterDaily(cfg.Schedule.DailyCron, task); err != nil {
		log.Fatalf("[FATAL] register cron task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, executing fetch now")
		go task()
	}

	log.Println("[INFO] MarketBoard is running. Press Ctrl+C to stop.")
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	cancel()
	log.Println("[INFO] MarketBoard stopped")
}

// runOnce executes one fetch run end to end. Failures past config loading
// are soft: the snapshot is always best effort and the process exits zero.
func runOnce(ctx context.Context, cfg *config.Config, runner *pipeline.Runner, rec recorder.Recorder, tn *notifier.TelegramNotifier) {
	res := runner.Run(ctx)
	snap := res.Snapshot

	if err := snapshot.Write(cfg.Output.Path, snap); err != nil {
		log.Printf("[ERROR] write snapshot: %v", err)
		return
	}
	log.Printf("[INFO] wrote %d records to %s (generated at %s)",
		snap.TotalRecords(), cfg.Output.Path, snap.GeneratedAt)

	run := &recorder.RunRecord{
		GeneratedAt:  snap.GeneratedAt,
		TotalRecords: snap.TotalRecords(),
		Omitted:      res.Omitted,
		DurationMS:   res.Duration.Milliseconds(),
	}
	for _, name := range snap.GroupOrder {
		run.Groups = append(run.Groups, recorder.GroupCount{Group: name, Count: len(snap.Groups[name])})
	}
	if err := rec.RecordRun(run); err != nil {
		log.Printf("[ERROR] record run: %v", err)
	}

	if tn != nil {
		if err := tn.NotifyRun(ctx, res); err != nil {
			log.Printf("[ERROR] send notification: %v", err)
		}
	}
}
