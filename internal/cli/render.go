package cli

import (
	"fmt"

	gqlast "github.com/vektah/gqlparser/v2/ast"

	"github.com/graphcost/costlang/internal/ast"
)

// renderExpr prints an arithmetic tree with explicit parentheses so the
// regrouped associativity is visible in inspect output.
func renderExpr(expr ast.LinearExpression) string {
	switch node := expr.(type) {
	case *ast.IntConst:
		return node.Value.String()
	case *ast.IntVariable:
		return "$" + node.Name
	case *ast.BinaryExpr:
		return fmt.Sprintf("(%s %s %s)", renderExpr(node.Lhs), node.Op, renderExpr(node.Rhs))
	default:
		return fmt.Sprintf("<%T>", expr)
	}
}

func renderCond(cond ast.Condition) string {
	switch node := cond.(type) {
	case *ast.BoolConst:
		return fmt.Sprintf("%t", node.Value)
	case *ast.BoolVariable:
		return "$" + node.Name
	case *ast.Comparison:
		return fmt.Sprintf("(%s %s %s)", renderExpr(node.Lhs), node.Op, renderExpr(node.Rhs))
	case *ast.BooleanExpr:
		return fmt.Sprintf("(%s %s %s)", renderCond(node.Lhs), node.Op, renderCond(node.Rhs))
	default:
		return fmt.Sprintf("<%T>", cond)
	}
}

// renderQueryItem names the structural fact a predicate matches on:
// the kind ("selection" or "directive") and a short label.
func renderQueryItem(item ast.TopLevelQueryItem) (kind, label string) {
	switch node := item.(type) {
	case *ast.Selection:
		switch sel := node.Item.(type) {
		case *gqlast.Field:
			return "selection", sel.Name
		case *gqlast.FragmentSpread:
			return "selection", "..." + sel.Name
		case *gqlast.InlineFragment:
			return "selection", "... on " + sel.TypeCondition
		default:
			return "selection", fmt.Sprintf("<%T>", node.Item)
		}
	case *ast.Directive:
		return "directive", "@" + node.Directive.Name
	default:
		return fmt.Sprintf("<%T>", item), ""
	}
}
