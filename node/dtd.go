package node

func (dtd *DTD) Type() NodeType {
	return DocumentTypeNodeType
}

func (dtd *DTD) LocalName() string {
	if dtd.name != "" {
		return dtd.name
	}
	return "#dtd"
}
