package api

import (
	"context"
	"net"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// ListenAndServe 监听 srv.Addr 并调用 Serve
func ListenAndServe(ctx context.Context, srv *http.Server, grace time.Duration, log logrus.FieldLogger) error {
	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		return errors.Wrapf(err, "listen %s", srv.Addr)
	}
	return Serve(ctx, srv, ln, grace, log)
}

// Serve 在 ln 上提供服务，ctx 结束后优雅关闭。
// 只有 Shutdown 返回（在途请求处理完或超过 grace）之后才会返回。
func Serve(ctx context.Context, srv *http.Server, ln net.Listener, grace time.Duration, log logrus.FieldLogger) error {
	if log == nil {
		log = logrus.StandardLogger()
	}

	served := make(chan struct{})
	shutdown := make(chan struct{})
	go func() {
		defer close(shutdown)
		select {
		case <-ctx.Done():
		case <-served:
			return
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("api: server shutdown")
		}
	}()

	err := srv.Serve(ln)
	if !errors.Is(err, http.ErrServerClosed) {
		close(served)
		<-shutdown
		return errors.Wrap(err, "serve")
	}
	<-shutdown
	return nil
}
