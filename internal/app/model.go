// Package app 是 hntop 的状态机：模型、驱动模型变化的消息，以及交给运行时执行的命令
package app

import "github.com/LJTian/hntop/internal/hackernews"

// MaxStories 每批最多抓取的热门故事数
const MaxStories = 25

// AppState 粗粒度的界面状态，目前只会处于 ViewingAll
type AppState int

const (
	ViewingAll AppState = iota
	Reading
	Loading
)

func (s AppState) String() string {
	switch s {
	case ViewingAll:
		return "viewing_all"
	case Reading:
		return "reading"
	case Loading:
		return "loading"
	default:
		return "unknown"
	}
}

// MarshalText 让 JSON 快照输出状态名
func (s AppState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Model 是完整的应用状态，按值传递：Update 不会修改传入模型的切片
type Model struct {
	// 按到达顺序排列，最近到达的在最前
	Stories []hackernews.Story
	State   AppState
	Pending []int
	// 唯一的提示槽位，空串表示无提示
	Alert string
	// 每次 Refresh 自增；旧批次的结果直接丢弃
	Generation int
}

func (m Model) HasAlert() bool {
	return m.Alert != ""
}
