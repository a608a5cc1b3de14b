package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"study-planner/internal/config"
	"study-planner/internal/logger"
	"study-planner/internal/repository"
	"study-planner/internal/service"
)

func main() {
	configPath := flag.String("config", "", "path to config file (optional)")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zlog, err := logger.New(&cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer zlog.Sync()

	db, err := repository.NewDB(cfg.Database.Path)
	if err != nil {
		zlog.Fatal("open database", zap.Error(err))
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	patternRepo := repository.NewPatternRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	adapters := service.NewAdapters(db)
	generator := service.NewGenerator(patternRepo, courseRepo, adapters, zlog)
	orchestrator := service.NewOrchestrator(patternRepo, generator, zlog)

	sweep := func() {
		jobCtx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if _, err := orchestrator.SweepAll(jobCtx, cfg.Sweep.WindowDays); err != nil {
			zlog.Error("sweep failed", zap.Error(err))
		}
	}

	scheduler := service.NewScheduler(time.Local)
	if cfg.Sweep.DailyAt != "" {
		if _, err := scheduler.ScheduleDaily(cfg.Sweep.DailyAt, sweep); err != nil {
			zlog.Fatal("schedule daily sweep", zap.Error(err))
		}
	} else {
		if _, err := scheduler.ScheduleInterval(cfg.Sweep.Interval, sweep); err != nil {
			zlog.Fatal("schedule sweep", zap.Error(err))
		}
	}
	scheduler.Start()
	defer scheduler.Stop()

	zlog.Info("sweeper started",
		zap.String("db", cfg.Database.Path),
		zap.Int("window_days", cfg.Sweep.WindowDays))

	<-ctx.Done()
	zlog.Info("shutdown complete")
}
