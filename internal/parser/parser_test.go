package parser

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graphcost/costlang/internal/ast"
	"github.com/graphcost/costlang/internal/eval"
)

// assertExpr parses a standalone cost expression and checks its value.
func assertExpr(t *testing.T, src string, expect int64, vars eval.Vars) {
	t.Helper()
	expr, err := ParseLinearExpression(src)
	require.NoError(t, err)
	got, err := eval.LinearExpression(expr, vars)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(expect), got, "source %q", src)
}

// assertClause parses a standalone where clause and checks its truth.
func assertClause(t *testing.T, src string, expect bool, vars eval.Vars) {
	t.Helper()
	wc, err := ParseWhereClause(src)
	require.NoError(t, err)
	got, err := eval.Condition(wc.Condition, vars)
	require.NoError(t, err)
	assert.Equal(t, expect, got, "source %q", src)
}

func TestBinaryExpr(t *testing.T) {
	assertExpr(t, "1 + 2", 3, nil)
}

func TestOperatorPrecedence(t *testing.T) {
	assertExpr(t, "1 + 10 * 2", 21, nil)
	assertExpr(t, "10 * 2 + 1", 21, nil)
}

func TestParenthesis(t *testing.T) {
	assertExpr(t, "(1 + 10) * 2", 22, nil)
}

func TestLeftAssociativity(t *testing.T) {
	assertExpr(t, "10 - 2 - 3", 5, nil)
	assertExpr(t, "100 / 5 / 2", 10, nil)
	assertExpr(t, "2 * 10 / 4", 5, nil)
}

func TestDivisionBeforeMultiplicationGroupsRight(t *testing.T) {
	// The * pass regroups before the / pass, so a "/" followed by a "*"
	// binds the product first: 20 / (2 * 5).
	assertExpr(t, "20 / 2 * 5", 2, nil)
	assertExpr(t, "(20 / 2) * 5", 50, nil)
}

func TestOptionalWhitespaceAroundOperators(t *testing.T) {
	assertExpr(t, "1+10*2", 21, nil)
	assertClause(t, "where 1==1&&2>=2", true, nil)
}

func TestNegativeIntegers(t *testing.T) {
	assertExpr(t, "-3 + 5", 2, nil)
	assertExpr(t, "1 - -2", 3, nil)
}

func TestArbitraryPrecision(t *testing.T) {
	expr, err := ParseLinearExpression("123456789012345678901234567890 * 2")
	require.NoError(t, err)
	got, err := eval.LinearExpression(expr, nil)
	require.NoError(t, err)
	assert.Equal(t, "246913578024691357802469135780", got.String())
}

func TestWhereClauses(t *testing.T) {
	assertClause(t, "where 1 > 2", false, nil)
	assertClause(t, "where $a == $b", true, eval.Vars{
		"a": eval.NewInt(2),
		"b": eval.NewInt(2),
	})

	_, err := ParseWhereClause("where .")
	require.Error(t, err)
	assert.True(t, IsParseError(err))
}

func TestLeftToRightBooleans(t *testing.T) {
	// "||" and "&&" bind equally and fold left to right:
	// (true || (1 == 0)) && false.
	assertClause(t, "where true || 1 == 0 && false", false, nil)
	// ((1 == 0) && (1 == 0)) || $a.
	assertClause(t, "where 1 == 0 && 1 == 0 || $a", true, eval.Vars{"a": eval.NewBool(true)})
}

func TestWhereParens(t *testing.T) {
	assertClause(t, "where ($a != $a)", false, eval.Vars{"a": eval.NewInt(1)})
	assertClause(t, "where (1 == 0 && 1 == 1) || 1 == 1", true, nil)
}

func TestComparisonOperators(t *testing.T) {
	assertClause(t, "where 2 >= 2", true, nil)
	assertClause(t, "where 2 <= 1", false, nil)
	assertClause(t, "where 2 != 1", true, nil)
	assertClause(t, "where 2 < 3", true, nil)
}

func TestStatement(t *testing.T) {
	doc, err := ParseDocument("query { users(skip: $skip) { tokens } } where 5 == 5 => 1;")
	require.NoError(t, err)
	require.Len(t, doc.Statements, 1)

	stmt := doc.Statements[0]
	sel, ok := stmt.Predicate.Query.(*ast.Selection)
	require.True(t, ok)
	assert.NotNil(t, sel.Item)
	require.NotNil(t, stmt.Predicate.Where)

	cost, matched, err := eval.Statement(stmt, nil)
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, big.NewInt(1), cost)
}

func TestDocument(t *testing.T) {
	src := `
	query { users(skip: $skip) { tokens } } where $skip > 1000 => 100 + $skip * 10;
	query { users(name: "Bob") { tokens } } => 999999;
	`
	doc, err := ParseDocument(src)
	require.NoError(t, err)
	require.Len(t, doc.Statements, 2)

	cost, matched, err := eval.Statement(doc.Statements[0], eval.Vars{"skip": eval.NewInt(5000)})
	require.NoError(t, err)
	assert.True(t, matched)
	assert.Equal(t, big.NewInt(50100), cost)

	_, matched, err = eval.Statement(doc.Statements[0], eval.Vars{"skip": eval.NewInt(10)})
	require.NoError(t, err)
	assert.False(t, matched)
}

func TestDocumentEmptyInput(t *testing.T) {
	for _, src := range []string{"", "   \n\t "} {
		doc, err := ParseDocument(src)
		require.NoError(t, err, "source %q", src)
		assert.Empty(t, doc.Statements)
	}
}

func TestDocumentRejectsTrailingInput(t *testing.T) {
	_, err := ParseDocument("query { a } => 1; trailing garbage")
	require.Error(t, err)
	assert.True(t, IsParseError(err))

	_, err = ParseDocument("query { a } => 1")
	require.Error(t, err, "missing terminator must not parse")
}

func TestWhereWithoutTrailingWhitespaceBacktracks(t *testing.T) {
	// The where clause must be followed by whitespace; without it the
	// clause is dropped and the statement fails at "=>".
	_, err := ParseDocument("query { a } where 5 == 5=> 1;")
	require.Error(t, err)
}

func TestDepthLimit(t *testing.T) {
	_, err := ParseLinearExpression("((((1))))", WithMaxDepth(4))
	require.Error(t, err)
	assert.True(t, IsParseError(err))

	_, err = ParseLinearExpression("((((1))))", WithMaxDepth(5))
	require.NoError(t, err)

	_, err = ParseWhereClause("where ((true))", WithMaxDepth(2))
	require.Error(t, err)
}

func TestReparseYieldsEqualTrees(t *testing.T) {
	src := "query { users(skip: $skip) { tokens } } where $skip > 1000 || $flag => (100 + $skip) * 10;"
	first, err := ParseDocument(src)
	require.NoError(t, err)
	second, err := ParseDocument(src)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestStandaloneExpressionMatchesDocumentCost(t *testing.T) {
	costSrc := "100 + $skip * 10"
	doc, err := ParseDocument("query { a } => " + costSrc + ";")
	require.NoError(t, err)
	require.Len(t, doc.Statements, 1)

	standalone, err := ParseLinearExpression(costSrc)
	require.NoError(t, err)
	assert.Equal(t, standalone, doc.Statements[0].Cost)
}

func TestSyntaxErrorPosition(t *testing.T) {
	_, err := ParseLinearExpression("1 + ")
	require.Error(t, err)

	var pe *ParseError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, 1, pe.Offset, "trailing input after the leading leaf")
}

func TestLineCol(t *testing.T) {
	src := "ab\ncd\nef"
	line, col := LineCol(src, 0)
	assert.Equal(t, 1, line)
	assert.Equal(t, 1, col)

	line, col = LineCol(src, 4)
	assert.Equal(t, 2, line)
	assert.Equal(t, 2, col)

	line, col = LineCol(src, len(src)+10)
	assert.Equal(t, 3, line)
	assert.Equal(t, 3, col)
}
