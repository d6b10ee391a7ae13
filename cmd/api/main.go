package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/MillionChau/Frontend-CourseApp/internal/core/auth"
	"github.com/MillionChau/Frontend-CourseApp/internal/core/cache"
	"github.com/MillionChau/Frontend-CourseApp/internal/core/config"
	"github.com/MillionChau/Frontend-CourseApp/internal/core/database"
	"github.com/MillionChau/Frontend-CourseApp/internal/core/logger"
	"github.com/MillionChau/Frontend-CourseApp/internal/core/server"
	"github.com/MillionChau/Frontend-CourseApp/internal/domain"
	"github.com/MillionChau/Frontend-CourseApp/internal/repo"
	"github.com/MillionChau/Frontend-CourseApp/internal/service"
	"github.com/MillionChau/Frontend-CourseApp/internal/transport/http/handler"
	"github.com/MillionChau/Frontend-CourseApp/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	l, cleanup := logger.Build(logger.Options{
		Level:       cfg.Log.Level,
		JSON:        cfg.Log.JSON,
		AddCaller:   true,
		Development: !cfg.Log.JSON,
		Rotate: logger.FileRotate{
			Enable:     cfg.Log.File.Enable,
			Filename:   cfg.Log.File.Filename,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	defer cleanup()
	defer logger.RedirectStdLog(l, zapcore.InfoLevel)()

	// 存储（失败直接 Fatal）
	courses, users, closeDB := mustOpenStore(cfg, l)
	defer closeDB()
	l.Info("database connected", zap.String("driver", cfg.DB.Driver))

	var courseOpts []service.CourseOption
	if cfg.Redis.Addr != "" {
		rc := cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
		defer rc.Close()
		if err := rc.Ping(context.Background()); err != nil {
			// 缓存不可用不影响启动，读请求会直接回源
			l.Warn("redis ping failed", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
		}
		courseOpts = append(courseOpts, service.WithListCache(rc, time.Duration(cfg.Redis.CourseTTLSec)*time.Second))
		l.Info("course list cache enabled", zap.String("addr", cfg.Redis.Addr))
	}

	jwter := auth.NewJWTer(cfg.JWT.Secret, cfg.JWT.Issuer)
	courseH := handler.NewCourseHandler(service.NewCourseService(courses, l, courseOpts...), l)
	userH := handler.NewUserHandler(service.NewUserService(users, jwter), l)

	r := router.NewAPIEngine(l, router.Limits{
		MaxBodyBytes:   cfg.App.HTTP.MaxBodyBytes,
		MaxInFlight:    cfg.App.HTTP.MaxInFlight,
		QueueWait:      time.Duration(cfg.App.HTTP.QueueWaitMs) * time.Millisecond,
		HandlerTimeout: time.Duration(cfg.App.HTTP.HandlerTimeoutSec) * time.Second,
	}, courseH, userH)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	l.Info("course api starting",
		zap.String("addr", addr),
		zap.String("health", baseURL+"/health"),
		zap.String("courses", baseURL+"/api/courses"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			l.Fatal("course api start FAILED", zap.Error(err))
		}
	}()

	// 优雅关闭
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		l.Warn("shutdown", zap.Error(err))
	}
	l.Info("course api stopped gracefully")
}

// mustOpenStore 按 db.driver 选择 Mongo 或 SQL（gorm）实现
func mustOpenStore(cfg *config.Config, l *zap.Logger) (domain.CourseRepository, domain.UserRepository, func()) {
	if cfg.DB.Driver == "mongodb" {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		mdb, disconnect, err := database.NewMongo(ctx, database.MongoOpts{
			URI:         cfg.DB.DSN,
			Database:    cfg.DB.Database,
			Username:    cfg.DB.Username,
			Password:    cfg.DB.Password,
			MaxPoolSize: uint64(max(0, cfg.DB.MaxOpenConns)),
		})
		if err != nil {
			l.Fatal("mongo connect", zap.Error(err))
		}
		if cfg.DB.AutoMigrate {
			if err := repo.EnsureMongoIndexes(ctx, mdb); err != nil {
				l.Fatal("mongo indexes", zap.Error(err))
			}
		}
		closeFn := func() { _ = disconnect(context.Background()) }
		return repo.NewMongoCourseRepo(mdb), repo.NewMongoUserRepo(mdb), closeFn
	}

	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		Username:           cfg.DB.Username,
		Password:           cfg.DB.Password,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	if cfg.DB.AutoMigrate {
		if err := repo.AutoMigrate(db); err != nil {
			l.Fatal("automigrate failed", zap.Error(err))
		}
		l.Info("automigrate done")
	}
	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return repo.NewCourseRepo(db), repo.NewUserRepo(db), closeFn
}
