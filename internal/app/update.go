package app

import (
	"context"
	"fmt"

	"github.com/LJTian/hntop/internal/hackernews"
)

// Init 返回初始模型以及拉取热门 ID 列表的命令
func Init() (Model, []Cmd) {
	return Model{State: ViewingAll}, []Cmd{FetchTopStoryIDs{}}
}

// Update 把 msg 作用于 m，返回新模型和需要执行的命令；不做任何 I/O
func Update(msg Msg, m Model) (Model, []Cmd) {
	switch msg := msg.(type) {
	case GotTopStoryIDs:
		if msg.Generation != m.Generation {
			return m, nil
		}
		if msg.Err != nil {
			m.Alert = hackernews.Message(msg.Err)
			return m, nil
		}
		return m, fetchTopStories(msg.IDs, m.Generation)

	case GotStory:
		if msg.Generation != m.Generation {
			return m, nil
		}
		if msg.Err != nil {
			m.Alert = hackernews.Message(msg.Err)
			return m, nil
		}
		stories := make([]hackernews.Story, 0, len(m.Stories)+1)
		stories = append(stories, msg.Story)
		m.Stories = append(stories, m.Stories...)
		return m, nil

	case DismissAlert:
		m.Alert = ""
		return m, nil

	case Refresh:
		m.Generation++
		m.Stories = nil
		return m, []Cmd{FetchTopStoryIDs{Generation: m.Generation}}

	default:
		panic(fmt.Sprintf("app: unhandled message %T", msg))
	}
}

// fetchTopStories 对前 MaxStories 个 ID 各生成一个 FetchStory
func fetchTopStories(ids []int, generation int) []Cmd {
	if len(ids) > MaxStories {
		ids = ids[:MaxStories]
	}
	cmds := make([]Cmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, FetchStory{Generation: generation, ID: id})
	}
	return cmds
}

// Fetcher 是命令执行所需的 HN 客户端能力
type Fetcher interface {
	TopStoryIDs(ctx context.Context) ([]int, error)
	Story(ctx context.Context, id int) (hackernews.Story, error)
}

// Perform 执行 cmd 并把结果包装成消息
func Perform(ctx context.Context, f Fetcher, cmd Cmd) Msg {
	switch cmd := cmd.(type) {
	case FetchTopStoryIDs:
		ids, err := f.TopStoryIDs(ctx)
		return GotTopStoryIDs{Generation: cmd.Generation, IDs: ids, Err: err}
	case FetchStory:
		s, err := f.Story(ctx, cmd.ID)
		return GotStory{Generation: cmd.Generation, ID: cmd.ID, Story: s, Err: err}
	default:
		panic(fmt.Sprintf("app: unhandled command %T", cmd))
	}
}
