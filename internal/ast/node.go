package ast

import "cmoon/token"

// NodeType tags what grammar production a Node came from.
type NodeType int

const (
	PROGRAM NodeType = iota
	FUNCTION
	RETURN
	CONSTANT
)

func (t NodeType) String() string {
	switch t {
	case PROGRAM:
		return "Program"
	case FUNCTION:
		return "Function"
	case RETURN:
		return "Return"
	case CONSTANT:
		return "Constant"
	default:
		return "Unrecognized node"
	}
}

func (t NodeType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Node is one link of the syntax tree. The current grammar never branches,
// so a node owns at most one successor. Nodes are never shared between
// parents and the chain is acyclic.
type Node struct {
	Type        NodeType       `json:"type" yaml:"type"`
	Value       string         `json:"value" yaml:"value"`
	Pos         token.Position `json:"pos" yaml:"pos"`
	LiteralType token.VarKind  `json:"literal_type,omitempty" yaml:"literal_type,omitempty"`
	Next        *Node          `json:"next,omitempty" yaml:"next,omitempty"`
}

func NewNode(t NodeType, value string, pos token.Position) *Node {
	return &Node{Type: t, Value: value, Pos: pos}
}

// Link sets next as the successor of n and returns n.
func (n *Node) Link(next *Node) *Node {
	n.Next = next
	return n
}

// Chain returns n and all of its successors, root first.
func (n *Node) Chain() []*Node {
	var nodes []*Node
	for cur := n; cur != nil; cur = cur.Next {
		nodes = append(nodes, cur)
	}
	return nodes
}

// Depth is the number of links below n.
func (n *Node) Depth() int {
	if n == nil {
		return 0
	}
	return len(n.Chain()) - 1
}

// Types returns the node types of the chain, root first.
func (n *Node) Types() []NodeType {
	var types []NodeType
	for _, node := range n.Chain() {
		types = append(types, node.Type)
	}
	return types
}

// Find returns the first node of type t in the chain starting at n.
func (n *Node) Find(t NodeType) *Node {
	for cur := n; cur != nil; cur = cur.Next {
		if cur.Type == t {
			return cur
		}
	}
	return nil
}

// Equal compares two chains by type, value and literal type. Positions are
// ignored so chains from different engines can be compared.
func Equal(a, b *Node) bool {
	for a != nil && b != nil {
		if a.Type != b.Type || a.Value != b.Value || a.LiteralType != b.LiteralType {
			return false
		}
		a, b = a.Next, b.Next
	}
	return a == nil && b == nil
}
