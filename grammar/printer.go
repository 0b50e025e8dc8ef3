package grammar

import (
	"fmt"
	"strings"
)

func indent(level int) string {
	return strings.Repeat("    ", level)
}

func (p *Program) String() string {
	if p == nil || p.Function == nil {
		return ""
	}
	return p.Function.StringWithIndent(0)
}

func (f *Function) StringWithIndent(level int) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s%s %s(%s) {\n", indent(level), f.ReturnType, f.Name, f.Params))
	if f.Body != nil {
		b.WriteString(f.Body.StringWithIndent(level+1) + "\n")
	}
	b.WriteString(indent(level) + "}\n")
	return b.String()
}

func (s *Statement) StringWithIndent(level int) string {
	return fmt.Sprintf("%sreturn %s;", indent(level), s.Return.String())
}

func (e *Expr) String() string {
	if e == nil {
		return ""
	}
	return e.Constant
}
