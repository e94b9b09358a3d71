package hackernews

import (
	"encoding/json"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// WebBaseURL 是 Hacker News 网页端地址，用于拼接讨论页与用户主页链接
const WebBaseURL = "https://news.ycombinator.com"

// Story 是解码后的单条故事，解码完成后不再修改
type Story struct {
	By          string `json:"by"`
	Descendants int    `json:"descendants"`
	ID          int    `json:"id"`
	Kids        []int  `json:"kids"`
	Score       int    `json:"score"`
	Time        int64  `json:"time"` // unix 秒
	Title       string `json:"title"`
	URL         string `json:"url"`
}

// DiscussionURL 返回故事在 HN 上的讨论页
func (s Story) DiscussionURL() string {
	return fmt.Sprintf("%s/item?id=%d", WebBaseURL, s.ID)
}

// AuthorURL 返回作者主页
func (s Story) AuthorURL() string {
	return WebBaseURL + "/user?id=" + url.QueryEscape(s.By)
}

func (s Story) Posted() time.Time {
	return time.Unix(s.Time, 0)
}

// Host 返回外链的主机名；没有外链（Ask HN 等）或不是 http/https 链接时返回空串。
// 视图只在 Host 非空时把 URL 放进 href。
func (s Story) Host() string {
	if s.URL == "" {
		return ""
	}
	u, err := url.Parse(s.URL)
	if err != nil {
		return ""
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return u.Hostname()
	default:
		return ""
	}
}

// storyPayload 对应 /v0/item/{id}.json 的原始结构。
// 必填字段用指针区分“缺失”和“零值”；可选字段保留原始 JSON，解析失败时走默认值。
type storyPayload struct {
	By          *string         `json:"by" validate:"required"`
	ID          *int            `json:"id" validate:"required"`
	Score       *int            `json:"score" validate:"required"`
	Time        *int64          `json:"time" validate:"required"`
	Title       *string         `json:"title" validate:"required"`
	Descendants json.RawMessage `json:"descendants"`
	Kids        json.RawMessage `json:"kids"`
	URL         json.RawMessage `json:"url"`
}

var validate = newValidator()

// newValidator 让校验错误里的字段名使用 JSON 名称
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeStory 把 item 接口返回的 JSON 校验并转换为 Story。
// by/id/score/time/title 缺失即失败；descendants/kids/url 缺失或格式不对时分别取 0、空列表、空串。
func DecodeStory(data []byte) (Story, error) {
	var p storyPayload
	if err := json.Unmarshal(data, &p); err != nil {
		return Story{}, &FetchError{Kind: KindBadBody, Err: errors.Wrap(err, "decode story")}
	}
	if err := validate.Struct(&p); err != nil {
		return Story{}, &FetchError{Kind: KindBadBody, Err: describeValidation(err)}
	}

	s := Story{
		By:    *p.By,
		ID:    *p.ID,
		Score: *p.Score,
		Time:  *p.Time,
		Title: *p.Title,
		Kids:  []int{},
	}
	optional(p.Descendants, &s.Descendants)
	optional(p.Kids, &s.Kids)
	optional(p.URL, &s.URL)
	if s.Kids == nil {
		// "kids": null 会把切片置空
		s.Kids = []int{}
	}
	return s, nil
}

// optional 尽力解析可选字段，失败时保持 dst 原有的默认值
func optional[T any](raw json.RawMessage, dst *T) {
	if len(raw) == 0 {
		return
	}
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return
	}
	*dst = v
}

func describeValidation(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		names := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			names = append(names, strconv.Quote(fe.Field()))
		}
		return errors.Errorf("decode story: missing required field %s", strings.Join(names, ", "))
	}
	return errors.Wrap(err, "decode story")
}
