package hackernews

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL 官方 Firebase API，路径中的 /v0 由客户端拼接
	DefaultBaseURL     = "https://hacker-news.firebaseio.com"
	hnMaxResponseBytes = 1 << 20 // 1MB
)

// Client 通过官方 Firebase API 读取 Hacker News 热门故事。
// 不设置请求超时、不重试：挂起的请求只会让对应故事缺席。
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient 创建客户端；httpClient 为 nil 时使用 http.DefaultClient
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

func (c *Client) topStoriesURL() string {
	return c.baseURL + "/v0/topstories.json"
}

func (c *Client) itemURL(id int) string {
	return fmt.Sprintf("%s/v0/item/%d.json", c.baseURL, id)
}

// TopStoryIDs 获取当前热门故事 ID 列表（按排名顺序）
func (c *Client) TopStoryIDs(ctx context.Context) ([]int, error) {
	url := c.topStoriesURL()
	body, err := c.get(ctx, url)
	if err != nil {
		return nil, err
	}

	var ids []int
	if err := json.Unmarshal(body, &ids); err != nil {
		return nil, &FetchError{Kind: KindBadBody, URL: url, Err: errors.Wrap(err, "unmarshal top stories")}
	}
	return ids, nil
}

// Story 获取并解码单条故事
func (c *Client) Story(ctx context.Context, id int) (Story, error) {
	url := c.itemURL(id)
	body, err := c.get(ctx, url)
	if err != nil {
		return Story{}, err
	}

	s, err := DecodeStory(body)
	if err != nil {
		var fe *FetchError
		if errors.As(err, &fe) {
			fe.URL = url
		}
		return Story{}, err
	}
	return s, nil
}

func (c *Client) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &FetchError{Kind: KindNetwork, URL: url, Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &FetchError{Kind: KindNetwork, URL: url, Err: errors.Wrap(err, "http get")}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// 读掉剩余响应体以便连接复用
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, hnMaxResponseBytes))
		return nil, &FetchError{Kind: KindBadStatus, URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, hnMaxResponseBytes))
	if err != nil {
		return nil, &FetchError{Kind: KindNetwork, URL: url, Err: errors.Wrap(err, "read body")}
	}
	return body, nil
}
