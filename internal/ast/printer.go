package ast

import (
	"fmt"
	"strings"
)

// String is the two-line debugging form of a single node.
func (n *Node) String() string {
	return fmt.Sprintf("Node with Value: %s\nand Type: %s", n.Value, n.Type)
}

// Dump renders the whole chain, one node per block, each successor indented.
func (n *Node) Dump() string {
	var b strings.Builder

	for i, node := range n.Chain() {
		indent := strings.Repeat("  ", i)
		b.WriteString(indent + strings.ReplaceAll(node.String(), "\n", "\n"+indent))
		b.WriteString("\n")
	}

	return b.String()
}

// Source prints the chain back as C-Moon source text.
func (n *Node) Source() string {
	var b strings.Builder

	for cur := n; cur != nil; cur = cur.Next {
		switch cur.Type {
		case FUNCTION:
			b.WriteString(fmt.Sprintf("int %s(void) {\n", cur.Value))
		case RETURN:
			b.WriteString("    return")
		case CONSTANT:
			b.WriteString(" " + cur.Value)
		}
	}

	if n.Find(RETURN) != nil {
		b.WriteString(";\n")
	}
	if n.Find(FUNCTION) != nil {
		b.WriteString("}\n")
	}

	return b.String()
}
