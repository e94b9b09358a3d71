package view

import (
	"io"

	"github.com/LJTian/hntop/internal/app"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Routes 把消息映射为可 POST 的地址；返回 false 表示该消息没有对应路由
type Routes func(app.Msg) (string, bool)

const stylesheet = `
body { font-family: Verdana, Geneva, sans-serif; background: #f6f6ef; margin: 0; }
.app { max-width: 960px; margin: 0 auto; }
.header { display: flex; align-items: center; justify-content: space-between; background: #ff6600; padding: 4px 8px; }
.header h1 { font-size: 14pt; margin: 0; }
form.inline { display: inline; margin: 0; }
.alert { background: #fde2e1; color: #b42318; padding: 8px; display: flex; justify-content: space-between; }
.stories { padding-left: 32px; }
.story { margin: 6px 0; }
.title a { color: #000; text-decoration: none; }
.host, .meta, .meta a { color: #828282; font-size: 8pt; }
`

// RenderHTML 输出完整 HTML 文档。带 OnClick 的节点会包在一个 POST 表单里
func RenderHTML(w io.Writer, root *Node, routes Routes) error {
	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})

	head := element("head", nil)
	head.AppendChild(element("meta", []html.Attribute{{Key: "charset", Val: "utf-8"}}))
	title := element("title", nil)
	title.AppendChild(textNode(pageTitle))
	head.AppendChild(title)
	style := element("style", nil)
	style.AppendChild(textNode(stylesheet))
	head.AppendChild(style)

	body := element("body", nil)
	body.AppendChild(toHTML(root, routes))

	page := element("html", []html.Attribute{{Key: "lang", Val: "en"}})
	page.AppendChild(head)
	page.AppendChild(body)
	doc.AppendChild(page)

	return html.Render(w, doc)
}

func toHTML(n *Node, routes Routes) *html.Node {
	if n.Tag == "" {
		return textNode(n.Text)
	}

	attrs := make([]html.Attribute, 0, len(n.Attrs)+1)
	for _, a := range n.Attrs {
		attrs = append(attrs, html.Attribute{Key: a.Key, Val: a.Val})
	}

	var action string
	if n.OnClick != nil && routes != nil {
		if route, ok := routes(n.OnClick); ok {
			action = route
			if n.Tag == "button" {
				attrs = append(attrs, html.Attribute{Key: "type", Val: "submit"})
			}
		}
	}

	el := element(n.Tag, attrs)
	for _, c := range n.Children {
		el.AppendChild(toHTML(c, routes))
	}
	if action == "" {
		return el
	}

	form := element("form", []html.Attribute{
		{Key: "class", Val: "inline"},
		{Key: "method", Val: "post"},
		{Key: "action", Val: action},
	})
	form.AppendChild(el)
	return form
}

func element(tag string, attrs []html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
		Attr:     attrs,
	}
}

func textNode(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}
