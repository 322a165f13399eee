// Package xml implements a stripped tree builder for XML input: an
// XHTML-ish document, a fragment of hand-written XML, or an XML-declaration
// comment produced by the HTML tokenizer.
//
// Unlike treebuilder.TreeBuilder there is no insertion-mode state machine,
// no implied-tag synthesis, and no adoption agency: tokens map one-to-one
// onto nodes, and an open tag without a matching close is left open rather
// than recovered from. This mirrors how jsoup's XmlTreeBuilder is a much
// thinner subclass of its HTML tree builder.
package xml

import (
	"github.com/brightframe/gohtml5/dom"
	"github.com/brightframe/gohtml5/tokenizer"
)

// Builder consumes a token stream and produces a flat tree with no
// HTML-specific structure.
type Builder struct {
	alloc *dom.NodeAllocator
	root  *dom.DocumentFragment

	// stack holds the chain of currently-open elements, root always at
	// index 0. The top of the stack is the current insertion point.
	stack []dom.Node
}

// New creates a tree builder for parsing a standalone XML fragment.
func New() *Builder {
	alloc := dom.NewNodeAllocator()
	root := alloc.NewDocumentFragmentWithSettings(dom.XMLDefault())
	return &Builder{
		alloc: alloc,
		root:  root,
		stack: []dom.Node{root},
	}
}

// Nodes returns the parsed fragment's top-level nodes in document order.
func (b *Builder) Nodes() []dom.Node {
	return b.root.Children()
}

func (b *Builder) current() dom.Node {
	return b.stack[len(b.stack)-1]
}

// ProcessToken consumes one tokenizer token, mapping it directly onto the
// tree with no lookahead and no recovery beyond what's described below.
func (b *Builder) ProcessToken(tok tokenizer.Token) {
	switch tok.Type {
	case tokenizer.StartTag:
		b.startElement(tok)
	case tokenizer.EndTag:
		b.endElement(tok.Name)
	case tokenizer.Character:
		b.text(tok)
	case tokenizer.Comment:
		b.comment(tok.Data)
	case tokenizer.DOCTYPE:
		b.doctype(tok)
	case tokenizer.EOF:
		// Any elements left open at EOF stay open in the tree as-is; XML
		// well-formedness is the caller's concern, not this builder's.
	}
}

func (b *Builder) startElement(tok tokenizer.Token) {
	el := b.alloc.NewElementNS(tok.Name, "")
	for _, a := range tok.Attrs {
		// Attributes.Set lowercases its argument (the right call for HTML
		// attributes); XML attribute names keep whatever case they were
		// written in, so go through SetNS directly instead.
		el.Attributes.SetNS(a.Namespace, a.Name, a.Value)
	}
	b.appendChild(el)
	if !tok.SelfClosing {
		b.stack = append(b.stack, el)
	}
}

// endElement closes the nearest matching open element, popping anything
// left unclosed above it. An end tag with no matching open start tag is a
// parse error in real XML; this builder simply ignores it, consistent with
// the "never throws on malformed input" recovery model used elsewhere.
func (b *Builder) endElement(name string) {
	for i := len(b.stack) - 1; i > 0; i-- {
		if el, ok := b.stack[i].(*dom.Element); ok && el.TagName == name {
			b.stack = b.stack[:i]
			return
		}
	}
}

func (b *Builder) text(tok tokenizer.Token) {
	if tok.Data == "" {
		return
	}
	if tok.IsCDATA {
		b.appendChild(dom.NewCDataNode(tok.Data))
		return
	}
	b.appendChild(dom.NewText(tok.Data))
}

// comment reinterprets XML-declaration- and DOCTYPE-shaped bogus comments
// (the tokenizer has no native XML-declaration token) as XmlDeclaration
// nodes, the same recovery jsoup applies when parsing "<?xml ...?>".
func (b *Builder) comment(data string) {
	if decl, ok := (&dom.Comment{Data: data}).AsXmlDeclaration(); ok {
		b.appendChild(decl)
		return
	}
	b.appendChild(b.alloc.NewComment(data))
}

// doctype preserves a DOCTYPE token as an XmlDeclaration rather than a
// dom.DocumentType, since this builder produces a flat node list with no
// document-level slot to hold a doctype in.
func (b *Builder) doctype(tok tokenizer.Token) {
	decl := dom.NewXmlDeclaration("DOCTYPE "+tok.Name, false)
	if tok.PublicID != nil {
		decl.Attributes.SetNS("", "publicId", *tok.PublicID)
	}
	if tok.SystemID != nil {
		decl.Attributes.SetNS("", "systemId", *tok.SystemID)
	}
	b.appendChild(decl)
}

func (b *Builder) appendChild(n dom.Node) {
	b.current().AppendChild(n)
}
