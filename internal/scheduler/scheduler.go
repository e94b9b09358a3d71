package scheduler

import (
	"context"
	"time"

	"github.com/LJTian/hntop/internal/app"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// Sender 是事件循环的投递入口
type Sender interface {
	Send(ctx context.Context, msg app.Msg) error
}

// Scheduler 按 cron 表达式定期向事件循环投递 Refresh
type Scheduler struct {
	cron    *cron.Cron
	program Sender
	timeout time.Duration
}

func New(spec string, p Sender) (*Scheduler, error) {
	c := cron.New()

	s := &Scheduler{
		cron:    c,
		program: p,
		timeout: 10 * time.Second,
	}

	_, err := c.AddFunc(spec, s.runOnce)
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop 停止调度，并等待正在执行的任务结束
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

// RunOnce 对外暴露的单次执行入口，方便手动触发刷新
func (s *Scheduler) RunOnce() {
	s.runOnce()
}

func (s *Scheduler) runOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.program.Send(ctx, app.Refresh{}); err != nil {
		logrus.WithError(err).Warn("scheduler: refresh not delivered")
		return
	}
	logrus.Info("scheduler: refresh triggered")
}
