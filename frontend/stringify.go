package frontend

import (
	"fmt"
	"strconv"
	"strings"
)

// StringifyAST renders a program as one S-expression per top-level construct.
// The rendering backs the driver's --debug-ast flag and doubles as a compact
// structural notation in tests
func StringifyAST(prog *Program) string {
	var lines []string

	for _, node := range prog.Constructs {
		lines = append(lines, StringifyNode(node))
	}

	return strings.Join(lines, "\n")
}

// StringifyNode renders a single AST node as an S-expression
func StringifyNode(generic Node) string {
	switch node := generic.(type) {
	case *Program:
		return StringifyAST(node)
	case *Function:
		return fmt.Sprintf("(def %s %s)",
			StringifyNode(node.Proto),
			StringifyNode(node.Body))
	case *Prototype:
		return fmt.Sprintf("(proto \"%s\" (%s))",
			node.Name,
			strings.Join(node.Params, " "))
	case *BinaryExpr:
		return fmt.Sprintf("(%c %s %s)",
			node.Operator,
			StringifyNode(node.Left),
			StringifyNode(node.Right))
	case *CallExpr:
		out := fmt.Sprintf("(\"%s\"", node.Callee)

		for _, arg := range node.Args {
			out += " " + StringifyNode(arg)
		}

		return out + ")"
	case *VariableRef:
		return node.Name
	case *NumberLiteral:
		return strconv.FormatFloat(node.Value, 'g', -1, 64)
	default:
		return fmt.Sprintf("<Unknown %T>", node)
	}
}
