package view

import (
	"fmt"

	"github.com/LJTian/hntop/internal/app"
	"github.com/LJTian/hntop/internal/hackernews"
)

const pageTitle = "Hacker News Top Stories"

// View 是模型到标记树的纯函数
func View(m app.Model) *Node {
	children := []*Node{header()}
	if m.HasAlert() {
		children = append(children, alert(m.Alert))
	}
	children = append(children, storyList(m.Stories))
	return El("main", Class("app"), children...)
}

func header() *Node {
	refresh := El("button", Class("refresh"), Text("Refresh"))
	refresh.OnClick = app.Refresh{}
	return El("header", Class("header"),
		El("h1", nil, Text(pageTitle)),
		refresh,
	)
}

func alert(msg string) *Node {
	dismiss := El("button", Class("dismiss"), Text("Dismiss"))
	dismiss.OnClick = app.DismissAlert{}
	return El("div", []Attr{{Key: "class", Val: "alert"}, {Key: "role", Val: "alert"}},
		El("span", Class("alert-message"), Text(msg)),
		dismiss,
	)
}

func storyList(stories []hackernews.Story) *Node {
	items := make([]*Node, 0, len(stories))
	for _, s := range stories {
		items = append(items, storyItem(s))
	}
	return El("ol", Class("stories"), items...)
}

func storyItem(s hackernews.Story) *Node {
	title := El("div", Class("title"),
		El("a", []Attr{{Key: "href", Val: s.DiscussionURL()}}, Text(s.Title)),
	)
	if host := s.Host(); host != "" {
		title.Children = append(title.Children,
			El("a", []Attr{{Key: "class", Val: "host"}, {Key: "href", Val: s.URL}}, Text(" ("+host+")")),
		)
	}

	meta := El("div", Class("meta"),
		Text(fmt.Sprintf("%s by ", plural(s.Score, "point"))),
		El("a", []Attr{{Key: "class", Val: "author"}, {Key: "href", Val: s.AuthorURL()}}, Text(s.By)),
		Text(" | "),
		El("a", []Attr{{Key: "class", Val: "comments"}, {Key: "href", Val: s.DiscussionURL()}}, Text(plural(s.Descendants, "comment"))),
	)

	return El("li", []Attr{{Key: "class", Val: "story"}, {Key: "id", Val: fmt.Sprintf("story-%d", s.ID)}}, title, meta)
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
