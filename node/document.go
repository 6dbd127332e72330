package node

// Document represents the root document node: an ordered sequence of
// top-level children (at most one element; zero or more comments and
// processing instructions; an optional document type).
type Document struct {
	treeNode
	version    string
	encoding   string
	standalone DocumentStandaloneType

	intSubset *DTD
	extSubset *DTD
}

func NewDocument() *Document {
	doc := &Document{}
	doc.treeNode = treeNode{
		doc:  doc,
		self: doc,
	}
	doc.version = "1.0"
	doc.encoding = "utf-8"
	doc.standalone = StandaloneImplicitNo
	return doc
}

func NewDocumentWithOptions(version, encoding string, standalone DocumentStandaloneType) *Document {
	doc := &Document{
		version:    version,
		encoding:   encoding,
		standalone: standalone,
	}
	doc.treeNode = treeNode{
		doc:  doc,
		self: doc,
	}
	return doc
}

func (d *Document) CreateElement(name string) *Element {
	e := NewElement(name)
	_ = e.SetOwnerDocument(d)
	return e
}

func (d *Document) CreateComment(content []byte) *Comment {
	c := NewComment(content)
	_ = c.SetOwnerDocument(d)
	return c
}

func (d *Document) CreateText(content []byte) *Text {
	t := NewText(content)
	_ = t.SetOwnerDocument(d)
	return t
}

// CreateAttribute creates a detached, unprefixed CDATA-typed attribute.
// Use Element.SetAttributeNS to attach a namespace and a specific type.
func (d *Document) CreateAttribute(name, value string) *Attribute {
	attr := newAttribute(name, nil)
	attr.atype = AttrCDATA
	_ = attr.SetOwnerDocument(d)
	if value != "" {
		text := NewText([]byte(value))
		_ = text.SetOwnerDocument(d)
		_ = attr.AddChild(text)
	}
	return attr
}

// CreatePI creates a processing instruction.
func (d *Document) CreatePI(target, data string) *ProcessingInstructionNode {
	pi := NewProcessingInstruction(target, data)
	_ = pi.SetOwnerDocument(d)
	return pi
}

func (d *Document) Encoding() string {
	if enc := d.encoding; enc != "" {
		return d.encoding
	}
	return "utf8"
}

func (d *Document) Standalone() DocumentStandaloneType {
	return d.standalone
}

func (d *Document) SetStandalone(standalone DocumentStandaloneType) {
	d.standalone = standalone
}

func (d *Document) SetFirstChild(child Node) {
	d.firstChild = child
}

func (d *Document) SetLastChild(child Node) {
	d.lastChild = child
}

func (d *Document) Version() string {
	return d.version
}

func (d *Document) IntSubset() *DTD {
	return d.intSubset
}

func (d *Document) ExtSubset() *DTD {
	return d.extSubset
}

// SetInternalSubset attaches a placeholder document type. The
// canonicalizer never emits it; it exists only so a Document built from a
// parser that did see a DOCTYPE can record that fact.
func (d *Document) SetInternalSubset(name string) *DTD {
	dtd := &DTD{name: name}
	dtd.self = dtd
	_ = dtd.SetOwnerDocument(d)
	d.intSubset = dtd
	return dtd
}

func (d *Document) Type() NodeType {
	return DocumentNodeType
}

func (d *Document) LocalName() string {
	return "#document"
}

func (d *Document) AddSibling(n Node) error {
	return ErrInvalidOperation
}

func (d *Document) Replace(n Node) error {
	return ErrInvalidOperation
}

func (d *Document) SetNextSibling(sibling Node) error {
	return ErrInvalidOperation
}

func (d *Document) SetPrevSibling(sibling Node) error {
	return ErrInvalidOperation
}

// SetDocumentElement installs root as the document's sole element child,
// replacing any element already present.
func (d *Document) SetDocumentElement(root Node) error {
	if d == nil {
		return nil
	}
	if root == nil {
		return nil
	}

	_ = root.SetParent(d)
	var old Node
	for old = d.firstChild; old != nil; old = old.NextSibling() {
		if old.Type() == ElementNodeType {
			break
		}
	}

	if old == nil {
		if err := d.AddChild(root); err != nil {
			return err
		}
	} else {
		_ = old.Replace(root)
	}
	return nil
}

// DocumentElement returns the document's root element, or nil if none has
// been set yet.
func (d *Document) DocumentElement() *Element {
	for c := d.firstChild; c != nil; c = c.NextSibling() {
		if e, ok := c.(*Element); ok {
			return e
		}
	}
	return nil
}

func (d *Document) Content(dst []byte) ([]byte, error) {
	result := dst
	for e := d.firstChild; e != nil; e = e.NextSibling() {
		var err error
		result, err = e.Content(result)
		if err != nil {
			return result, err
		}
	}
	return result, nil
}
