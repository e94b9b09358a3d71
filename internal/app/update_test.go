package app

import (
	"context"
	"testing"

	"github.com/LJTian/hntop/internal/hackernews"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func story(id int) hackernews.Story {
	return hackernews.Story{ID: id, By: "user", Title: "story", Kids: []int{}}
}

func statusErr(code int) error {
	return &hackernews.FetchError{Kind: hackernews.KindBadStatus, StatusCode: code}
}

func TestInit(t *testing.T) {
	m, cmds := Init()
	require.Equal(t, ViewingAll, m.State)
	require.Empty(t, m.Stories)
	require.False(t, m.HasAlert())
	require.Equal(t, []Cmd{FetchTopStoryIDs{}}, cmds)
}

func TestTopStoryIDsIssuesOneFetchPerID(t *testing.T) {
	for _, n := range []int{0, 1, 3, 25, 26, 500} {
		ids := make([]int, n)
		for i := range ids {
			ids[i] = i + 100
		}

		m, _ := Init()
		next, cmds := Update(GotTopStoryIDs{IDs: ids}, m)

		want := n
		if want > MaxStories {
			want = MaxStories
		}
		require.Len(t, cmds, want, "ids=%d", n)
		require.Equal(t, m, next, "id list success must not change state")
		for i, c := range cmds {
			require.Equal(t, FetchStory{ID: ids[i]}, c)
		}
	}
}

func TestTopStoryIDsFailureSetsAlert(t *testing.T) {
	m, _ := Init()
	next, cmds := Update(GotTopStoryIDs{Err: statusErr(500)}, m)
	require.Empty(t, cmds)
	require.Equal(t, "Request failed with status code: 500", next.Alert)
	require.Empty(t, next.Stories)
}

func TestStoriesPrependedInArrivalOrder(t *testing.T) {
	m, _ := Init()
	m, _ = Update(GotStory{ID: 2, Story: story(2)}, m)
	first := m
	m, _ = Update(GotStory{ID: 1, Story: story(1)}, m)
	m, cmds := Update(GotStory{ID: 3, Story: story(3)}, m)

	require.Empty(t, cmds)
	require.Equal(t, []int{3, 1, 2}, ids(m.Stories))
	require.Equal(t, []int{2}, ids(first.Stories), "earlier snapshots stay untouched")
}

func TestLastErrorWins(t *testing.T) {
	m, _ := Init()
	m, _ = Update(GotStory{ID: 1, Err: statusErr(404)}, m)
	m, _ = Update(GotStory{ID: 2, Err: statusErr(503)}, m)
	require.Equal(t, "Request failed with status code: 503", m.Alert)
	require.Empty(t, m.Stories)
}

func TestDismissAlertAlwaysClears(t *testing.T) {
	for _, alert := range []string{"", "x", "Request failed with status code: 500"} {
		m := Model{Alert: alert}
		next, cmds := Update(DismissAlert{}, m)
		require.Empty(t, cmds)
		require.Equal(t, "", next.Alert)
		require.False(t, next.HasAlert())
	}
}

func TestRefreshStartsNewGeneration(t *testing.T) {
	m, _ := Init()
	m, _ = Update(GotStory{ID: 1, Story: story(1)}, m)
	m.Alert = "old"

	m, cmds := Update(Refresh{}, m)
	require.Equal(t, 1, m.Generation)
	require.Empty(t, m.Stories)
	require.Equal(t, "old", m.Alert)
	require.Equal(t, []Cmd{FetchTopStoryIDs{Generation: 1}}, cmds)

	// 旧批次的结果被丢弃
	stale, cmds := Update(GotTopStoryIDs{Generation: 0, IDs: []int{1, 2}}, m)
	require.Empty(t, cmds)
	require.Equal(t, m, stale)
	stale, _ = Update(GotStory{Generation: 0, ID: 9, Story: story(9)}, m)
	require.Empty(t, stale.Stories)
	stale, _ = Update(GotStory{Generation: 0, ID: 9, Err: statusErr(500)}, m)
	require.Equal(t, "old", stale.Alert)

	_, cmds = Update(GotTopStoryIDs{Generation: 1, IDs: []int{7}}, m)
	require.Equal(t, []Cmd{FetchStory{Generation: 1, ID: 7}}, cmds)
}

func TestStateIsInert(t *testing.T) {
	m, _ := Init()
	msgs := []Msg{
		GotTopStoryIDs{IDs: []int{1}},
		GotStory{ID: 1, Story: story(1)},
		GotStory{ID: 2, Err: statusErr(500)},
		DismissAlert{},
		Refresh{},
	}
	for _, msg := range msgs {
		m, _ = Update(msg, m)
		require.Equal(t, ViewingAll, m.State)
	}
	require.Equal(t, "loading", Loading.String())
	require.Equal(t, "reading", Reading.String())
}

type fakeFetcher struct {
	ids     []int
	idsErr  error
	stories map[int]hackernews.Story
}

func (f fakeFetcher) TopStoryIDs(context.Context) ([]int, error) {
	return f.ids, f.idsErr
}

func (f fakeFetcher) Story(_ context.Context, id int) (hackernews.Story, error) {
	s, ok := f.stories[id]
	if !ok {
		return hackernews.Story{}, statusErr(404)
	}
	return s, nil
}

func TestPerform(t *testing.T) {
	f := fakeFetcher{ids: []int{1}, stories: map[int]hackernews.Story{1: story(1)}}
	ctx := context.Background()

	msg := Perform(ctx, f, FetchTopStoryIDs{Generation: 2})
	require.Equal(t, GotTopStoryIDs{Generation: 2, IDs: []int{1}}, msg)

	msg = Perform(ctx, f, FetchStory{Generation: 2, ID: 1})
	require.Equal(t, GotStory{Generation: 2, ID: 1, Story: story(1)}, msg)

	msg = Perform(ctx, f, FetchStory{ID: 5})
	got, ok := msg.(GotStory)
	require.True(t, ok)
	require.Equal(t, 5, got.ID)
	var fe *hackernews.FetchError
	require.True(t, errors.As(got.Err, &fe))
}

func ids(stories []hackernews.Story) []int {
	out := make([]int, 0, len(stories))
	for _, s := range stories {
		out = append(out, s.ID)
	}
	return out
}
