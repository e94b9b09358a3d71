// Package program 是单线程事件循环：持有模型、串行执行 Update，并把命令派发到独立 goroutine
package program

import (
	"context"
	"sync"

	"github.com/LJTian/hntop/internal/app"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ErrStopped 在事件循环退出后投递消息时返回
var ErrStopped = errors.New("program: stopped")

type envelope struct {
	msg     app.Msg
	fromCmd bool
	applied chan struct{} // Send 等待消息被处理
}

// Program 拥有模型的唯一副本，只有事件循环会修改它
type Program struct {
	fetcher app.Fetcher
	log     logrus.FieldLogger

	msgs chan envelope
	done chan struct{}

	mu       sync.RWMutex
	model    app.Model
	inflight int
	idle     chan struct{} // inflight 归零时关闭
}

// New 创建运行时；log 为 nil 时使用 logrus 标准 logger
func New(f app.Fetcher, log logrus.FieldLogger) *Program {
	if log == nil {
		log = logrus.StandardLogger()
	}
	idle := make(chan struct{})
	close(idle)
	return &Program{
		fetcher: f,
		log:     log,
		msgs:    make(chan envelope, app.MaxStories),
		done:    make(chan struct{}),
		idle:    idle,
	}
}

// Start 同步应用 app.Init 并派发初始命令，随后在后台处理消息直到 ctx 结束。
// 命令使用同一个 ctx，只有程序退出时才会取消在途请求。
func (p *Program) Start(ctx context.Context) {
	model, cmds := app.Init()
	p.mu.Lock()
	p.model = model
	p.mu.Unlock()
	p.dispatch(ctx, cmds)

	go p.loop(ctx)
}

func (p *Program) loop(ctx context.Context) {
	defer close(p.done)

	for {
		select {
		case <-ctx.Done():
			p.log.Info("program: stopped")
			return
		case env := <-p.msgs:
			p.apply(ctx, env)
		}
	}
}

func (p *Program) apply(ctx context.Context, env envelope) {
	p.mu.RLock()
	prev := p.model
	p.mu.RUnlock()

	next, cmds := app.Update(env.msg, prev)

	p.mu.Lock()
	p.model = next
	p.mu.Unlock()

	p.logApplied(env.msg, prev, next, len(cmds))
	p.dispatch(ctx, cmds)

	// 先派发新命令再结算来源命令，保证 inflight 不会提前归零
	if env.fromCmd {
		p.finish()
	}
	if env.applied != nil {
		close(env.applied)
	}
}

func (p *Program) dispatch(ctx context.Context, cmds []app.Cmd) {
	if len(cmds) == 0 {
		return
	}

	p.mu.Lock()
	if p.inflight == 0 {
		p.idle = make(chan struct{})
	}
	p.inflight += len(cmds)
	p.mu.Unlock()

	for _, c := range cmds {
		cmd := c
		go func() {
			msg := app.Perform(ctx, p.fetcher, cmd)
			select {
			case p.msgs <- envelope{msg: msg, fromCmd: true}:
			case <-ctx.Done():
			}
		}()
	}
}

func (p *Program) finish() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.inflight--
	if p.inflight == 0 {
		close(p.idle)
	}
}

func (p *Program) logApplied(msg app.Msg, prev, next app.Model, cmds int) {
	entry := p.log.WithField("cmds", cmds)
	switch m := msg.(type) {
	case app.GotTopStoryIDs:
		if m.Generation != prev.Generation {
			entry.WithField("generation", m.Generation).Debug("program: stale top stories dropped")
			return
		}
		if m.Err != nil {
			entry.WithError(m.Err).Warn("program: fetch top stories failed")
			return
		}
		entry.WithField("ids", len(m.IDs)).Info("program: top stories loaded")
	case app.GotStory:
		if m.Generation != prev.Generation {
			entry.WithFields(logrus.Fields{"id": m.ID, "generation": m.Generation}).Debug("program: stale story dropped")
			return
		}
		if m.Err != nil {
			entry.WithError(m.Err).WithField("id", m.ID).Warn("program: fetch story failed")
			return
		}
		entry.WithFields(logrus.Fields{
			"id":      m.ID,
			"stories": len(next.Stories),
		}).Debug("program: story loaded")
	case app.DismissAlert:
		entry.WithField("alert", prev.Alert).Debug("program: alert dismissed")
	case app.Refresh:
		entry.WithField("generation", next.Generation).Info("program: refresh")
	}
}

// Send 投递消息，并等待事件循环处理完成
func (p *Program) Send(ctx context.Context, msg app.Msg) error {
	env := envelope{msg: msg, applied: make(chan struct{})}
	select {
	case p.msgs <- env:
	case <-p.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-env.applied:
		return nil
	case <-p.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Model 返回最新的模型快照
func (p *Program) Model() app.Model {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.model
}

// WaitIdle 阻塞到没有在途命令为止
func (p *Program) WaitIdle(ctx context.Context) error {
	p.mu.RLock()
	idle := p.idle
	p.mu.RUnlock()

	select {
	case <-idle:
		return nil
	case <-p.done:
		return ErrStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done 在事件循环退出后关闭
func (p *Program) Done() <-chan struct{} {
	return p.done
}
