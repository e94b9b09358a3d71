package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/LJTian/hntop/internal/config"
	"github.com/LJTian/hntop/internal/hackernews"
	"github.com/LJTian/hntop/internal/logging"
	"github.com/LJTian/hntop/internal/program"
	"github.com/LJTian/hntop/internal/view"
	"github.com/sirupsen/logrus"
)

// 一次性命令行入口：抓取一轮热门故事，打印到终端后退出
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config failed: %v", err)
	}
	// 终端输出留给故事列表，默认只记录告警
	level := cfg.LogLevel
	if os.Getenv("LOG_LEVEL") == "" {
		level = "warn"
	}
	if err := logging.Setup(level, cfg.LogFormat); err != nil {
		logrus.Fatalf("setup logger failed: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p := program.New(hackernews.NewClient(cfg.BaseURL, nil), logrus.StandardLogger())
	p.Start(ctx)

	if err := p.WaitIdle(ctx); err != nil {
		logrus.WithError(err).Warn("interrupted before all stories arrived")
	}

	fmt.Print(view.RenderText(view.View(p.Model())))
}
