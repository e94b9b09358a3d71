package app

import "github.com/LJTian/hntop/internal/hackernews"

// Msg 是投递给 Update 的事件
type Msg interface {
	isMsg()
}

// GotTopStoryIDs 携带 FetchTopStoryIDs 的结果
type GotTopStoryIDs struct {
	Generation int
	IDs        []int
	Err        error
}

// GotStory 携带 FetchStory 的结果
type GotStory struct {
	Generation int
	ID         int
	Story      hackernews.Story
	Err        error
}

// DismissAlert 关闭提示条
type DismissAlert struct{}

// Refresh 丢弃当前列表并重新抓取
type Refresh struct{}

func (GotTopStoryIDs) isMsg() {}
func (GotStory) isMsg()       {}
func (DismissAlert) isMsg()   {}
func (Refresh) isMsg()        {}

// Cmd 是 Update 产生、由运行时执行的副作用
type Cmd interface {
	isCmd()
}

type FetchTopStoryIDs struct {
	Generation int
}

type FetchStory struct {
	Generation int
	ID         int
}

func (FetchTopStoryIDs) isCmd() {}
func (FetchStory) isCmd()       {}
