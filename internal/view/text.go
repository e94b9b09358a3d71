package view

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff6600"))
	alertStyle  = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f85149")).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#f85149")).
			Padding(0, 1)
	storyTitleStyle = lipgloss.NewStyle().Bold(true)
	hostStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
	metaStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#8b949e"))
)

// RenderText 把标记树渲染为终端文本；终端里无法点击，带 OnClick 的节点直接忽略
func RenderText(root *Node) string {
	var b strings.Builder
	renderText(&b, root)
	return b.String()
}

func renderText(b *strings.Builder, n *Node) {
	switch {
	case n.Tag == "":
		b.WriteString(n.Text)
	case n.OnClick != nil:
	case n.Tag == "h1":
		b.WriteString(headerStyle.Render(n.TextContent()))
		b.WriteString("\n\n")
	case n.hasClass("alert"):
		msg := n.Find(func(c *Node) bool { return c.hasClass("alert-message") })
		if msg != nil {
			b.WriteString(alertStyle.Render(msg.TextContent()))
			b.WriteString("\n\n")
		}
	case n.Tag == "ol":
		if len(n.Children) == 0 {
			b.WriteString(metaStyle.Render("No stories yet."))
			b.WriteString("\n")
			return
		}
		for i, li := range n.Children {
			fmt.Fprintf(b, "%3d. ", i+1)
			renderText(b, li)
		}
	case n.hasClass("title"):
		for i, c := range n.Children {
			if i == 0 {
				b.WriteString(storyTitleStyle.Render(c.TextContent()))
				continue
			}
			b.WriteString(hostStyle.Render(c.TextContent()))
		}
		b.WriteString("\n")
	case n.hasClass("meta"):
		b.WriteString("     ")
		b.WriteString(metaStyle.Render(n.TextContent()))
		b.WriteString("\n")
	default:
		for _, c := range n.Children {
			renderText(b, c)
		}
	}
}
