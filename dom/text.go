package dom

import "strings"

// Text represents a text node.
type Text struct {
	parent Node

	// Data is the text content.
	Data string
}

// NewText creates a new text node.
func NewText(data string) *Text {
	return &Text{Data: data}
}

// Type implements Node.
func (t *Text) Type() NodeType {
	return TextNodeType
}

// Parent implements Node.
func (t *Text) Parent() Node {
	return t.parent
}

// SetParent implements Node.
func (t *Text) SetParent(parent Node) {
	t.parent = parent
}

// Children implements Node (text nodes have no children).
func (t *Text) Children() []Node {
	return nil
}

// AppendChild implements Node (no-op for text nodes).
func (t *Text) AppendChild(_ Node) {}

// InsertBefore implements Node (no-op for text nodes).
func (t *Text) InsertBefore(_, _ Node) {}

// RemoveChild implements Node (no-op for text nodes).
func (t *Text) RemoveChild(_ Node) {}

// ReplaceChild implements Node (no-op for text nodes).
func (t *Text) ReplaceChild(_, _ Node) Node {
	return nil
}

// HasChildNodes implements Node.
func (t *Text) HasChildNodes() bool {
	return false
}

// Clone implements Node.
func (t *Text) Clone(_ bool) Node {
	return &Text{Data: t.Data}
}

// NextSibling returns the node following this text node among its
// parent's children, or nil if there is none.
func (t *Text) NextSibling() Node {
	return nextSiblingOf(t, t.parent)
}

// PreviousSibling returns the node preceding this text node among its
// parent's children, or nil if there is none.
func (t *Text) PreviousSibling() Node {
	return previousSiblingOf(t, t.parent)
}

// Comment represents a comment node.
type Comment struct {
	parent Node

	// Data is the comment content (without <!-- and -->).
	Data string
}

// NewComment creates a new comment node.
func NewComment(data string) *Comment {
	return &Comment{Data: data}
}

// Type implements Node.
func (c *Comment) Type() NodeType {
	return CommentNodeType
}

// Parent implements Node.
func (c *Comment) Parent() Node {
	return c.parent
}

// SetParent implements Node.
func (c *Comment) SetParent(parent Node) {
	c.parent = parent
}

// Children implements Node (comment nodes have no children).
func (c *Comment) Children() []Node {
	return nil
}

// AppendChild implements Node (no-op for comment nodes).
func (c *Comment) AppendChild(_ Node) {}

// InsertBefore implements Node (no-op for comment nodes).
func (c *Comment) InsertBefore(_, _ Node) {}

// RemoveChild implements Node (no-op for comment nodes).
func (c *Comment) RemoveChild(_ Node) {}

// ReplaceChild implements Node (no-op for comment nodes).
func (c *Comment) ReplaceChild(_, _ Node) Node {
	return nil
}

// HasChildNodes implements Node.
func (c *Comment) HasChildNodes() bool {
	return false
}

// Clone implements Node.
func (c *Comment) Clone(_ bool) Node {
	return &Comment{Data: c.Data}
}

// NextSibling returns the node following this comment among its parent's
// children, or nil if there is none.
func (c *Comment) NextSibling() Node {
	return nextSiblingOf(c, c.parent)
}

// PreviousSibling returns the node preceding this comment among its
// parent's children, or nil if there is none.
func (c *Comment) PreviousSibling() Node {
	return previousSiblingOf(c, c.parent)
}

// AsXmlDeclaration reinterprets a bogus comment shaped like an XML
// declaration or DOCTYPE (text beginning with "!" or "?") as an
// XmlDeclaration node, mirroring jsoup's Comment.asXmlDeclaration().
// Returns ok=false if the comment's data doesn't look like one.
func (c *Comment) AsXmlDeclaration() (decl *XmlDeclaration, ok bool) {
	data := c.Data
	if data == "" {
		return nil, false
	}
	isPI := data[0] == '?'
	isBang := data[0] == '!'
	if !isPI && !isBang {
		return nil, false
	}

	body := strings.TrimSuffix(strings.TrimPrefix(data, string(data[0])), "?")
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return nil, false
	}

	decl = NewXmlDeclaration(fields[0], isPI)
	for _, kv := range fields[1:] {
		if eq := strings.IndexByte(kv, '='); eq > 0 {
			name := kv[:eq]
			value := strings.Trim(kv[eq+1:], `"'`)
			decl.Attributes.Set(name, value)
		}
	}
	return decl, true
}
