package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/MillionChau/Frontend-CourseApp/internal/core/server"
	mdw "github.com/MillionChau/Frontend-CourseApp/internal/transport/http/middleware"
)

type Limits struct {
	MaxBodyBytes   int64
	MaxInFlight    int64
	QueueWait      time.Duration
	HandlerTimeout time.Duration
}

func (l Limits) withDefaults() Limits {
	if l.MaxBodyBytes <= 0 {
		l.MaxBodyBytes = 16 << 20
	}
	if l.MaxInFlight <= 0 {
		l.MaxInFlight = 300
	}
	if l.QueueWait <= 0 {
		l.QueueWait = 2 * time.Second
	}
	if l.HandlerTimeout <= 0 {
		l.HandlerTimeout = 10 * time.Second
	}
	return l
}

// NewAPIEngine 用户端：/health、/metrics、/api/*
func NewAPIEngine(l *zap.Logger, lim Limits, mods ...APIModule) *gin.Engine {
	lim = lim.withDefaults()
	r := server.NewRouter(l)

	r.Use(
		mdw.RequestID(),
		mdw.Recovery(l),
		mdw.ConcurrencyLimit(lim.MaxInFlight, lim.QueueWait),
		mdw.MaxBodyBytes(lim.MaxBodyBytes),
		mdw.Timeout(lim.HandlerTimeout),
		mdw.Metrics(),
	)

	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", mdw.MetricsHandler())

	MountAll(r.Group("/api"), mods...)
	return r
}
