// Package view 把模型投影为与输出无关的标记树，并提供 HTML 与终端两种渲染方式
package view

import "github.com/LJTian/hntop/internal/app"

// Attr 是一个标签属性
type Attr struct {
	Key, Val string
}

// Node 是标记树节点；Tag 为空时表示文本节点
type Node struct {
	Tag      string
	Text     string
	Attrs    []Attr
	Children []*Node
	// OnClick 点击后要投递的消息，由渲染器决定如何落地
	OnClick app.Msg
}

// El 创建元素节点
func El(tag string, attrs []Attr, children ...*Node) *Node {
	return &Node{Tag: tag, Attrs: attrs, Children: children}
}

// Text 创建文本节点
func Text(s string) *Node {
	return &Node{Text: s}
}

func Class(name string) []Attr {
	return []Attr{{Key: "class", Val: name}}
}

// Attr 返回 key 对应的属性值
func (n *Node) Attr(key string) (string, bool) {
	for _, a := range n.Attrs {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

func (n *Node) hasClass(name string) bool {
	v, _ := n.Attr("class")
	return v == name
}

// Find 深度优先查找第一个满足条件的节点
func (n *Node) Find(match func(*Node) bool) *Node {
	if match(n) {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(match); found != nil {
			return found
		}
	}
	return nil
}

// TextContent 拼接子树中的所有文本
func (n *Node) TextContent() string {
	if n.Tag == "" {
		return n.Text
	}
	out := ""
	for _, c := range n.Children {
		out += c.TextContent()
	}
	return out
}
