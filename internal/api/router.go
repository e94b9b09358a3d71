package api

import (
	"bytes"
	"context"
	"net/http"

	"github.com/LJTian/hntop/internal/app"
	"github.com/LJTian/hntop/internal/hackernews"
	"github.com/LJTian/hntop/internal/view"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Program 是 HTTP 层需要的事件循环能力
type Program interface {
	Model() app.Model
	Send(ctx context.Context, msg app.Msg) error
}

type Server struct {
	program Program
	log     logrus.FieldLogger
}

// NewServer 创建 HTTP 层；log 为 nil 时使用 logrus 标准 logger
func NewServer(p Program, log logrus.FieldLogger) *Server {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Server{program: p, log: log}
}

const (
	routeDismiss = "/alert/dismiss"
	routeRefresh = "/refresh"
)

// Routes 把视图里的点击事件映射为表单提交地址
func Routes(msg app.Msg) (string, bool) {
	switch msg.(type) {
	case app.DismissAlert:
		return routeDismiss, true
	case app.Refresh:
		return routeRefresh, true
	default:
		return "", false
	}
}

func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", s.health)
	r.GET("/", s.page)
	r.POST(routeDismiss, s.send(app.DismissAlert{}))
	r.POST(routeRefresh, s.send(app.Refresh{}))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/stories", s.listStories)
	}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) page(c *gin.Context) {
	var buf bytes.Buffer
	if err := view.RenderHTML(&buf, view.View(s.program.Model()), Routes); err != nil {
		s.log.WithError(err).Error("api: render page")
		c.String(http.StatusInternalServerError, "internal server error")
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", buf.Bytes())
}

// send 投递消息，处理完成后重定向回首页
func (s *Server) send(msg app.Msg) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := s.program.Send(c.Request.Context(), msg); err != nil {
			s.log.WithError(err).Warnf("api: send %T", msg)
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"code":    "unavailable",
				"message": "event loop unavailable",
			})
			return
		}
		c.Redirect(http.StatusSeeOther, "/")
	}
}

type snapshot struct {
	State   app.AppState       `json:"state"`
	Alert   string             `json:"alert"`
	Stories []hackernews.Story `json:"stories"`
}

func (s *Server) listStories(c *gin.Context) {
	m := s.program.Model()
	stories := m.Stories
	if stories == nil {
		stories = []hackernews.Story{}
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    "ok",
		"message": "success",
		"data": snapshot{
			State:   m.State,
			Alert:   m.Alert,
			Stories: stories,
		},
	})
}
