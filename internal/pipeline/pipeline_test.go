package pipeline_test

import (
	"testing"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/rogerflowey/rust-compiler-sub006/ast"
	"github.com/rogerflowey/rust-compiler-sub006/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ident(name string) ast.Ident { return ast.Ident{Name: name} }

func pathOf(name string) ast.Path {
	return ast.Path{Segments: []ast.PathSegment{{Kind: ast.SegmentName, Name: name}}}
}

func identExpr(name string) ast.Expr { return &ast.IdentExpr{Path: pathOf(name)} }

func primType(name string) ast.TypeExpr { return &ast.PrimitiveTypeExpr{Name: name} }

func intLit(text string) ast.Expr { return &ast.IntLiteralExpr{Text: text} }

// addFunction builds `fn add(a: i32, b: i32) -> i32 { a + b }`.
func addFunction() *ast.FunctionItem {
	return &ast.FunctionItem{
		Name: ident("add"),
		Params: []ast.Param{
			{Pattern: &ast.BindingPattern{Name: ident("a")}, Type: primType("i32")},
			{Pattern: &ast.BindingPattern{Name: ident("b")}, Type: primType("i32")},
		},
		ReturnType: primType("i32"),
		Body: &ast.BlockExpr{
			Final: &ast.BinaryExpr{Op: ast.OpAdd, Left: identExpr("a"), Right: identExpr("b")},
		},
	}
}

// mainFunction builds `fn main() -> i32 { add(1, 2) }`.
func mainFunction() *ast.FunctionItem {
	return &ast.FunctionItem{
		Name:       ident("main"),
		ReturnType: primType("i32"),
		Body: &ast.BlockExpr{
			Final: &ast.CallExpr{Callee: identExpr("add"), Args: []ast.Expr{intLit("1"), intLit("2")}},
		},
	}
}

func TestRunAcceptsAWellFormedProgram(t *testing.T) {
	file := &ast.File{Items: []ast.Item{addFunction(), mainFunction()}}

	result, err := pipeline.Run(file, pipeline.Options{Hints: true})
	require.NoError(t, err)
	assert.Empty(t, result.Diags)
}

func TestRunReportsUndefinedNameAndBreakOutsideLoop(t *testing.T) {
	broken := &ast.FunctionItem{
		Name:       ident("broken"),
		ReturnType: primType("i32"),
		Body: &ast.BlockExpr{
			Stmts: []ast.Stmt{
				&ast.ExprStmt{Expr: &ast.BreakExpr{}, HasSemicolon: true},
			},
			Final: identExpr("undefined_name"),
		},
	}
	file := &ast.File{Items: []ast.Item{broken}}

	result, err := pipeline.Run(file, pipeline.Options{Hints: true})
	require.NoError(t, err)
	require.Len(t, result.Diags, 2)

	kinds := map[string]bool{}
	for _, d := range result.Diags {
		kinds[string(d.Kind)] = true
	}
	assert.True(t, kinds["unresolved-name"])
	assert.True(t, kinds["break-outside-loop"])
}

func TestRunStopsAtFirstErroringPassWhenRequested(t *testing.T) {
	// A const referring to an undefined name: a resolve-phase error. With
	// StopOnFirstError, later passes (check/cflow/traits) never even run,
	// so a check-phase-only diagnostic shape never appears.
	badConst := &ast.ConstItem{Name: ident("BAD"), Type: primType("i32"), Initializer: identExpr("missing")}
	file := &ast.File{Items: []ast.Item{badConst}}

	result, err := pipeline.Run(file, pipeline.Options{Hints: true, StopOnFirstError: true})
	require.NoError(t, err)
	require.Len(t, result.Diags, 1)
	assert.Equal(t, "unresolved-name", string(result.Diags[0].Kind))
}

// TestRunReportsSelfReferentialStructAsCircularDependency checks that a
// struct naming itself by value in one of its own fields is caught as an
// infinite-size definition cycle, not silently accepted.
func TestRunReportsSelfReferentialStructAsCircularDependency(t *testing.T) {
	selfRef := &ast.StructItem{
		Name: ident("A"),
		Fields: []ast.FieldDecl{
			{Name: ident("a"), Type: &ast.PathTypeExpr{Path: pathOf("A")}},
		},
	}
	file := &ast.File{Items: []ast.Item{selfRef}}

	result, err := pipeline.Run(file, pipeline.Options{Hints: true})
	require.NoError(t, err)
	require.Len(t, result.Diags, 1)
	assert.Equal(t, "circular-dependency", string(result.Diags[0].Kind))
}

func TestUnusedLocalHintIsDroppedWhenHintsDisabled(t *testing.T) {
	fn := &ast.FunctionItem{
		Name: ident("f"),
		Body: &ast.BlockExpr{
			Stmts: []ast.Stmt{
				&ast.LetStmt{Pattern: &ast.BindingPattern{Name: ident("unused")}, Annotation: primType("i32"), Initializer: intLit("0")},
			},
		},
	}
	file := &ast.File{Items: []ast.Item{fn}}

	withHints, err := pipeline.Run(file, pipeline.Options{Hints: true})
	require.NoError(t, err)
	require.Len(t, withHints.Diags, 1)
	assert.Equal(t, "unused-binding", string(withHints.Diags[0].Kind))

	withoutHints, err := pipeline.Run(file, pipeline.Options{Hints: false})
	require.NoError(t, err)
	assert.Empty(t, withoutHints.Diags)
}

func TestRenderSnapshotForMultiErrorProgram(t *testing.T) {
	broken := &ast.FunctionItem{
		Name:       ident("broken"),
		ReturnType: primType("i32"),
		Body: &ast.BlockExpr{
			Stmts: []ast.Stmt{
				&ast.ExprStmt{Expr: &ast.ContinueExpr{}, HasSemicolon: true},
			},
			Final: identExpr("nope"),
		},
	}
	file := &ast.File{Items: []ast.Item{broken}}

	result, err := pipeline.Run(file, pipeline.Options{Hints: true})
	require.NoError(t, err)

	snaps.MatchSnapshot(t, pipeline.Render(result, false))
}

// pointTraitImplFixture builds a struct and a trait impl for it whose
// method signature disagrees with the trait's (a self-mutability
// mismatch), exercising internal/traits end to end through the pipeline.
func pointTraitImplFixture() *ast.File {
	point := &ast.StructItem{
		Name: ident("Point"),
		Fields: []ast.FieldDecl{
			{Name: ident("x"), Type: primType("i32")},
			{Name: ident("y"), Type: primType("i32")},
		},
	}
	resettable := &ast.TraitItem{
		Name: ident("Resettable"),
		Items: []ast.Item{
			&ast.MethodItem{
				Name:       ident("reset"),
				Self:       ast.SelfParam{IsReference: true, IsMutable: true},
				ReturnType: nil,
				Body:       nil,
			},
		},
	}
	impl := &ast.ImplItem{
		Trait:   &ast.Path{Segments: []ast.PathSegment{{Kind: ast.SegmentName, Name: "Resettable"}}},
		ForType: &ast.PathTypeExpr{Path: pathOf("Point")},
		Items: []ast.Item{
			&ast.MethodItem{
				Name:       ident("reset"),
				Self:       ast.SelfParam{IsReference: true, IsMutable: false},
				ReturnType: nil,
				Body:       &ast.BlockExpr{},
			},
		},
	}
	return &ast.File{Items: []ast.Item{point, resettable, impl}}
}

// TestPipelineFixtureSnapshots runs a small table of named, hand-built AST
// fixtures through the whole pipeline and snapshots their rendered
// diagnostics: a well-formed program, an undefined name plus a stray break,
// and a trait-impl mismatch (a from-scratch
// program never reaches a parser in this module, so each category is a
// builder function rather than a source file on disk).
func TestPipelineFixtureSnapshots(t *testing.T) {
	categories := []struct {
		name  string
		build func() *ast.File
	}{
		{"WellFormedProgram", func() *ast.File {
			return &ast.File{Items: []ast.Item{addFunction(), mainFunction()}}
		}},
		{"UndefinedNameAndBreakOutsideLoop", func() *ast.File {
			broken := &ast.FunctionItem{
				Name:       ident("broken"),
				ReturnType: primType("i32"),
				Body: &ast.BlockExpr{
					Stmts: []ast.Stmt{
						&ast.ExprStmt{Expr: &ast.BreakExpr{}, HasSemicolon: true},
					},
					Final: identExpr("undefined_name"),
				},
			}
			return &ast.File{Items: []ast.Item{broken}}
		}},
		{"TraitImplSelfMutabilityMismatch", pointTraitImplFixture},
	}

	for _, category := range categories {
		t.Run(category.name, func(t *testing.T) {
			file := category.build()
			result, err := pipeline.Run(file, pipeline.Options{Hints: true})
			require.NoError(t, err)
			snaps.MatchSnapshot(t, category.name, pipeline.Render(result, false))
		})
	}
}
