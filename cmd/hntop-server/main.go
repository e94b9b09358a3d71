package main

import (
	"context"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/LJTian/hntop/internal/api"
	"github.com/LJTian/hntop/internal/config"
	"github.com/LJTian/hntop/internal/hackernews"
	"github.com/LJTian/hntop/internal/logging"
	"github.com/LJTian/hntop/internal/program"
	"github.com/LJTian/hntop/internal/scheduler"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config failed: %v", err)
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		logrus.Fatalf("setup logger failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := program.New(hackernews.NewClient(cfg.BaseURL, nil), logrus.StandardLogger())
	p.Start(ctx)

	// 配置了 REFRESH_CRON 才定时刷新
	if cfg.RefreshSpec != "" {
		s, err := scheduler.New(cfg.RefreshSpec, p)
		if err != nil {
			logrus.Fatalf("init scheduler failed: %v", err)
		}
		s.Start()
		defer s.Stop()
	}

	r := gin.Default()
	api.NewServer(p, logrus.StandardLogger()).RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: r,
	}

	logrus.Infof("starting hntop server at %s ...", srv.Addr)
	// 返回时在途请求已经处理完
	if err := api.ListenAndServe(ctx, srv, 5*time.Second, logrus.StandardLogger()); err != nil {
		logrus.Fatalf("server exit: %v", err)
	}
	<-p.Done()
}
