package ast

import (
	"encoding/json"
	"testing"

	"cmoon/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func mainReturning(value string) *Node {
	constant := NewNode(CONSTANT, value, token.Position{Line: 1, Column: 24})
	constant.LiteralType = token.INT_VAR

	return NewNode(PROGRAM, "program", token.Position{Line: 1}).Link(
		NewNode(FUNCTION, "main", token.Position{Line: 1}).Link(
			NewNode(RETURN, "return", token.Position{Line: 1, Column: 17}).Link(constant)))
}

func TestNodeString(t *testing.T) {
	node := NewNode(FUNCTION, "main", token.Position{Line: 1})
	assert.Equal(t, "Node with Value: main\nand Type: Function", node.String())
}

func TestDump(t *testing.T) {
	expected := "Node with Value: program\nand Type: Program\n" +
		"  Node with Value: main\n  and Type: Function\n" +
		"    Node with Value: return\n    and Type: Return\n" +
		"      Node with Value: 42\n      and Type: Constant\n"

	assert.Equal(t, expected, mainReturning("42").Dump())
}

func TestSource(t *testing.T) {
	assert.Equal(t, "int main(void) {\n    return 42;\n}\n", mainReturning("42").Source())
}

func TestChainHelpers(t *testing.T) {
	root := mainReturning("42")

	assert.Equal(t, 3, root.Depth())
	assert.Len(t, root.Chain(), 4)
	assert.Equal(t, []NodeType{PROGRAM, FUNCTION, RETURN, CONSTANT}, root.Types())
	assert.Equal(t, "42", root.Find(CONSTANT).Value)
	assert.Nil(t, root.Next.Next.Find(FUNCTION))

	var empty *Node
	assert.Equal(t, 0, empty.Depth())
}

func TestEqualIgnoresPositions(t *testing.T) {
	a := mainReturning("42")
	b := mainReturning("42")
	b.Next.Pos = token.Position{Line: 9, Column: 9}

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, mainReturning("43")))
	assert.False(t, Equal(a, a.Next))

	c := mainReturning("42")
	c.Find(CONSTANT).LiteralType = token.LONG_VAR
	assert.False(t, Equal(a, c))
}

func TestMarshal(t *testing.T) {
	root := mainReturning("42")

	data, err := json.Marshal(root.Find(CONSTANT))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Constant","value":"42","pos":{"line":1,"column":24},"literal_type":"int"}`, string(data))

	out, err := yaml.Marshal(root.Find(RETURN))
	require.NoError(t, err)
	assert.Contains(t, string(out), "type: Return")
	assert.Contains(t, string(out), "value: \"42\"")
}
