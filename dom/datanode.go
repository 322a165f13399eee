package dom

// DataNodeType is the node type used for raw-text element contents
// (<script>, <style>) that must never be entity-decoded or whitespace
// collapsed on the way back out.
const DataNodeType NodeType = 4

// DataNode holds the raw contents of a rawtext element. It is shaped
// exactly like Text but is kept distinct so serialize and Element.Text
// can treat script/style bodies differently from ordinary text children.
type DataNode struct {
	parent Node

	// Data is the raw, unescaped element content.
	Data string
}

// NewDataNode creates a new raw-data node.
func NewDataNode(data string) *DataNode {
	return &DataNode{Data: data}
}

// Type implements Node.
func (d *DataNode) Type() NodeType {
	return DataNodeType
}

// Parent implements Node.
func (d *DataNode) Parent() Node {
	return d.parent
}

// SetParent implements Node.
func (d *DataNode) SetParent(parent Node) {
	d.parent = parent
}

// Children implements Node (data nodes have no children).
func (d *DataNode) Children() []Node {
	return nil
}

// AppendChild implements Node (no-op for data nodes).
func (d *DataNode) AppendChild(_ Node) {}

// InsertBefore implements Node (no-op for data nodes).
func (d *DataNode) InsertBefore(_, _ Node) {}

// RemoveChild implements Node (no-op for data nodes).
func (d *DataNode) RemoveChild(_ Node) {}

// ReplaceChild implements Node (no-op for data nodes).
func (d *DataNode) ReplaceChild(_, _ Node) Node {
	return nil
}

// HasChildNodes implements Node.
func (d *DataNode) HasChildNodes() bool {
	return false
}

// Clone implements Node.
func (d *DataNode) Clone(_ bool) Node {
	return &DataNode{Data: d.Data}
}

// NextSibling returns the node following this data node among its
// parent's children, or nil if there is none.
func (d *DataNode) NextSibling() Node {
	return nextSiblingOf(d, d.parent)
}

// PreviousSibling returns the node preceding this data node among its
// parent's children, or nil if there is none.
func (d *DataNode) PreviousSibling() Node {
	return previousSiblingOf(d, d.parent)
}

// CDataNodeType is the node type for XML CDATA sections.
const CDataNodeType NodeType = 5

// CDataNode is a Text variant serialized as <![CDATA[...]]>. Produced by
// the XML tree builder and by the HTML tokenizer's CDATA section states
// when foreign-content CDATA is allowed.
type CDataNode struct {
	parent Node

	// Data is the CDATA section content (without the CDATA wrapper).
	Data string
}

// NewCDataNode creates a new CDATA section node.
func NewCDataNode(data string) *CDataNode {
	return &CDataNode{Data: data}
}

// Type implements Node.
func (c *CDataNode) Type() NodeType {
	return CDataNodeType
}

// Parent implements Node.
func (c *CDataNode) Parent() Node {
	return c.parent
}

// SetParent implements Node.
func (c *CDataNode) SetParent(parent Node) {
	c.parent = parent
}

// Children implements Node (CDATA nodes have no children).
func (c *CDataNode) Children() []Node {
	return nil
}

// AppendChild implements Node (no-op for CDATA nodes).
func (c *CDataNode) AppendChild(_ Node) {}

// InsertBefore implements Node (no-op for CDATA nodes).
func (c *CDataNode) InsertBefore(_, _ Node) {}

// RemoveChild implements Node (no-op for CDATA nodes).
func (c *CDataNode) RemoveChild(_ Node) {}

// ReplaceChild implements Node (no-op for CDATA nodes).
func (c *CDataNode) ReplaceChild(_, _ Node) Node {
	return nil
}

// HasChildNodes implements Node.
func (c *CDataNode) HasChildNodes() bool {
	return false
}

// Clone implements Node.
func (c *CDataNode) Clone(_ bool) Node {
	return &CDataNode{Data: c.Data}
}

// NextSibling returns the node following this CDATA section among its
// parent's children, or nil if there is none.
func (c *CDataNode) NextSibling() Node {
	return nextSiblingOf(c, c.parent)
}

// PreviousSibling returns the node preceding this CDATA section among
// its parent's children, or nil if there is none.
func (c *CDataNode) PreviousSibling() Node {
	return previousSiblingOf(c, c.parent)
}

// XmlDeclarationNodeType is the node type for an XML declaration or
// processing-instruction-shaped bogus comment reinterpreted via
// Comment.AsXmlDeclaration.
const XmlDeclarationNodeType NodeType = 6

// XmlDeclaration represents an XML declaration (<?xml version="1.0"?>) or
// a DOCTYPE-shaped bogus comment reinterpreted as one.
type XmlDeclaration struct {
	parent Node

	// Name is the declaration target, e.g. "xml" or "DOCTYPE".
	Name string

	// Attributes holds the declaration's pseudo-attributes (version,
	// encoding, standalone, ...).
	Attributes *Attributes

	// IsProcessingInstruction distinguishes <?...?> form from <!...!> form.
	IsProcessingInstruction bool
}

// NewXmlDeclaration creates a new XML declaration node.
func NewXmlDeclaration(name string, isPI bool) *XmlDeclaration {
	return &XmlDeclaration{Name: name, Attributes: NewAttributes(), IsProcessingInstruction: isPI}
}

// Type implements Node.
func (x *XmlDeclaration) Type() NodeType {
	return XmlDeclarationNodeType
}

// Parent implements Node.
func (x *XmlDeclaration) Parent() Node {
	return x.parent
}

// SetParent implements Node.
func (x *XmlDeclaration) SetParent(parent Node) {
	x.parent = parent
}

// Children implements Node (declarations have no children).
func (x *XmlDeclaration) Children() []Node {
	return nil
}

// AppendChild implements Node (no-op).
func (x *XmlDeclaration) AppendChild(_ Node) {}

// InsertBefore implements Node (no-op).
func (x *XmlDeclaration) InsertBefore(_, _ Node) {}

// RemoveChild implements Node (no-op).
func (x *XmlDeclaration) RemoveChild(_ Node) {}

// ReplaceChild implements Node (no-op).
func (x *XmlDeclaration) ReplaceChild(_, _ Node) Node {
	return nil
}

// HasChildNodes implements Node.
func (x *XmlDeclaration) HasChildNodes() bool {
	return false
}

// Clone implements Node.
func (x *XmlDeclaration) Clone(_ bool) Node {
	return &XmlDeclaration{
		Name:                    x.Name,
		Attributes:              x.Attributes.Clone(),
		IsProcessingInstruction: x.IsProcessingInstruction,
	}
}

// NextSibling returns the node following this declaration among its
// parent's children, or nil if there is none.
func (x *XmlDeclaration) NextSibling() Node {
	return nextSiblingOf(x, x.parent)
}

// PreviousSibling returns the node preceding this declaration among its
// parent's children, or nil if there is none.
func (x *XmlDeclaration) PreviousSibling() Node {
	return previousSiblingOf(x, x.parent)
}
