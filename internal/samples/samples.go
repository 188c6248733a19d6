// Package samples holds a small set of hand-built programs cmd/rustsubc can
// drive through internal/pipeline. A real front end would read these from
// source files, but this module has no lexer or parser, so the CLI ships a
// few ast.File values constructed directly instead of files on disk.
package samples

import "github.com/rogerflowey/rust-compiler-sub006/ast"

func ident(name string) ast.Ident { return ast.Ident{Name: name} }

func pathOf(name string) ast.Path {
	return ast.Path{Segments: []ast.PathSegment{{Kind: ast.SegmentName, Name: name}}}
}

func identExpr(name string) ast.Expr { return &ast.IdentExpr{Path: pathOf(name)} }

func primType(name string) ast.TypeExpr { return &ast.PrimitiveTypeExpr{Name: name} }

func intLit(text string) ast.Expr { return &ast.IntLiteralExpr{Text: text} }

// Sample is one named, ready-to-run program.
type Sample struct {
	Name        string
	Description string
	Build       func() *ast.File
}

var all = []Sample{
	{
		Name:        "arithmetic",
		Description: "a well-formed program: two functions, no diagnostics expected",
		Build:       arithmetic,
	},
	{
		Name:        "undefined-name",
		Description: "a function that both breaks outside a loop and references an undefined name",
		Build:       undefinedName,
	},
	{
		Name:        "trait-mismatch",
		Description: "a struct whose trait impl disagrees with the trait's method signature",
		Build:       traitMismatch,
	},
}

// List returns every sample in a stable order.
func List() []Sample { return all }

// Find returns the sample named name, or false if there is none.
func Find(name string) (Sample, bool) {
	for _, s := range all {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

func arithmetic() *ast.File {
	add := &ast.FunctionItem{
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
	main := &ast.FunctionItem{
		Name:       ident("main"),
		ReturnType: primType("i32"),
		Body: &ast.BlockExpr{
			Final: &ast.CallExpr{Callee: identExpr("add"), Args: []ast.Expr{intLit("1"), intLit("2")}},
		},
	}
	return &ast.File{Items: []ast.Item{add, main}}
}

func undefinedName() *ast.File {
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
}

func traitMismatch() *ast.File {
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
				Name: ident("reset"),
				Self: ast.SelfParam{IsReference: true, IsMutable: true},
			},
		},
	}
	impl := &ast.ImplItem{
		Trait:   &ast.Path{Segments: []ast.PathSegment{{Kind: ast.SegmentName, Name: "Resettable"}}},
		ForType: &ast.PathTypeExpr{Path: pathOf("Point")},
		Items: []ast.Item{
			&ast.MethodItem{
				Name: ident("reset"),
				Self: ast.SelfParam{IsReference: true, IsMutable: false},
				Body: &ast.BlockExpr{},
			},
		},
	}
	return &ast.File{Items: []ast.Item{point, resettable, impl}}
}
