package node

// ProcessingInstruction represents a processing instruction node
type ProcessingInstructionNode struct {
	treeNode
	target string
	data   string
}

// NewProcessingInstruction creates a new ProcessingInstructionNode
func NewProcessingInstruction(target, data string) *ProcessingInstructionNode {
	pi := &ProcessingInstructionNode{
		target: target,
		data:   data,
	}
	pi.self = pi
	return pi
}

func (pi *ProcessingInstructionNode) Type() NodeType {
	return ProcessingInstructionNodeType
}

func (pi *ProcessingInstructionNode) LocalName() string {
	return pi.target
}

func (pi *ProcessingInstructionNode) Target() string {
	return pi.target
}

func (pi *ProcessingInstructionNode) Data() string {
	return pi.data
}
