package hackernews

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrorKind 区分请求失败的原因
type ErrorKind int

const (
	// KindNetwork 请求未能到达服务端（DNS、连接拒绝、上下文取消等）
	KindNetwork ErrorKind = iota
	// KindBadStatus 服务端返回非 2xx
	KindBadStatus
	// KindBadBody 响应体无法解码
	KindBadBody
)

func (k ErrorKind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindBadStatus:
		return "bad_status"
	case KindBadBody:
		return "bad_body"
	default:
		return fmt.Sprintf("ErrorKind(%d)", int(k))
	}
}

// FetchError 是抓取层返回的统一错误
type FetchError struct {
	Kind       ErrorKind
	URL        string
	StatusCode int // 仅 KindBadStatus 有值
	Err        error
}

func (e *FetchError) Error() string {
	switch e.Kind {
	case KindBadStatus:
		return fmt.Sprintf("hackernews: %s returned unexpected status %d", e.URL, e.StatusCode)
	default:
		if e.URL == "" {
			return fmt.Sprintf("hackernews: %s: %v", e.Kind, e.Err)
		}
		return fmt.Sprintf("hackernews: %s %s: %v", e.Kind, e.URL, e.Err)
	}
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

// Message 把任意错误翻译为一行给用户看的提示
func Message(err error) string {
	if err == nil {
		return ""
	}
	var fe *FetchError
	if !errors.As(err, &fe) {
		return "Something went wrong: " + err.Error()
	}
	switch fe.Kind {
	case KindNetwork:
		return "Unable to reach Hacker News: " + causeText(fe.Err)
	case KindBadStatus:
		return fmt.Sprintf("Request failed with status code: %d", fe.StatusCode)
	case KindBadBody:
		return "Unable to read the response: " + causeText(fe.Err)
	default:
		return fe.Error()
	}
}

func causeText(err error) string {
	if err == nil {
		return "unknown error"
	}
	return errors.Cause(err).Error()
}
