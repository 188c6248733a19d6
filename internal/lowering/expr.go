package lowering

import (
	"github.com/rogerflowey/rust-compiler-sub006/ast"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
)

func (lw *Lowerer) lowerExpr(e ast.Expr, ls *locals) hir.Expr {
	switch n := e.(type) {
	case *ast.IntLiteralExpr:
		return hir.Expr{Kind: hir.KIntLiteral, AST: e, Span: n.Span(),
			Data: &hir.IntLiteralData{Text: n.Text, Suffix: n.Suffix, IsNegative: n.IsNegative}}

	case *ast.BoolLiteralExpr:
		return hir.Expr{Kind: hir.KBoolLiteral, AST: e, Span: n.Span(), Data: &hir.BoolLiteralData{Value: n.Value}}

	case *ast.CharLiteralExpr:
		return hir.Expr{Kind: hir.KCharLiteral, AST: e, Span: n.Span(), Data: &hir.CharLiteralData{Value: n.Value}}

	case *ast.StringLiteralExpr:
		return hir.Expr{Kind: hir.KStringLiteral, AST: e, Span: n.Span(), Data: &hir.StringLiteralData{Value: n.Value}}

	case *ast.IdentExpr:
		return hir.Expr{Kind: hir.KUnresolvedIdent, AST: e, Span: n.Span(), Data: &hir.UnresolvedIdentData{Path: n.Path}}

	case *ast.FieldAccessExpr:
		return hir.Expr{Kind: hir.KFieldAccess, AST: e, Span: n.Span(), Data: &hir.FieldAccessData{
			Base:     lw.lowerExpr(n.Base, ls),
			Selector: hir.FieldSelector{Name: n.Field.Name},
		}}

	case *ast.IndexExpr:
		return hir.Expr{Kind: hir.KIndex, AST: e, Span: n.Span(), Data: &hir.IndexData{
			Base: lw.lowerExpr(n.Base, ls), Index: lw.lowerExpr(n.Index, ls),
		}}

	case *ast.StructLiteralExpr:
		data := &hir.StructLiteralData{Syntax: n.Type}
		for _, f := range n.Fields {
			data.Fields = append(data.Fields, hir.StructFieldValue{
				Selector: hir.FieldSelector{Name: f.Name.Name},
				Value:    lw.lowerExpr(f.Value, ls),
			})
		}
		// data.Struct stays nil until name resolution resolves Syntax.
		return hir.Expr{Kind: hir.KStructLiteral, AST: e, Span: n.Span(), Data: data}

	case *ast.ArrayLiteralExpr:
		data := &hir.ArrayLiteralData{}
		for _, el := range n.Elements {
			data.Elements = append(data.Elements, lw.lowerExpr(el, ls))
		}
		return hir.Expr{Kind: hir.KArrayLiteral, AST: e, Span: n.Span(), Data: data}

	case *ast.ArrayRepeatExpr:
		return hir.Expr{Kind: hir.KArrayRepeat, AST: e, Span: n.Span(), Data: &hir.ArrayRepeatData{
			Value: lw.lowerExpr(n.Value, ls), Count: lw.lowerExpr(n.Count, ls),
		}}

	case *ast.UnaryExpr:
		return hir.Expr{Kind: hir.KUnaryOp, AST: e, Span: n.Span(), Data: &hir.UnaryOpData{
			Op: n.Op, Operand: lw.lowerExpr(n.Operand, ls),
		}}

	case *ast.BinaryExpr:
		return hir.Expr{Kind: hir.KBinaryOp, AST: e, Span: n.Span(), Data: &hir.BinaryOpData{
			Op: n.Op, Left: lw.lowerExpr(n.Left, ls), Right: lw.lowerExpr(n.Right, ls),
		}}

	case *ast.AssignExpr:
		return hir.Expr{Kind: hir.KAssignment, AST: e, Span: n.Span(), Data: &hir.AssignmentData{
			Left: lw.lowerExpr(n.Left, ls), Right: lw.lowerExpr(n.Right, ls), CompoundOp: n.CompoundOp,
		}}

	case *ast.CastExpr:
		return hir.Expr{Kind: hir.KCast, AST: e, Span: n.Span(), Data: &hir.CastData{
			Expr: lw.lowerExpr(n.Expr, ls), TargetType: lw.lowerTypeAnnotation(n.TargetType),
		}}

	case *ast.CallExpr:
		data := &hir.CallData{Callee: lw.lowerExpr(n.Callee, ls)}
		for _, a := range n.Args {
			data.Args = append(data.Args, lw.lowerExpr(a, ls))
		}
		return hir.Expr{Kind: hir.KCall, AST: e, Span: n.Span(), Data: data}

	case *ast.MethodCallExpr:
		data := &hir.MethodCallData{Receiver: lw.lowerExpr(n.Receiver, ls), MethodName: n.MethodName.Name}
		for _, a := range n.Args {
			data.Args = append(data.Args, lw.lowerExpr(a, ls))
		}
		return hir.Expr{Kind: hir.KMethodCall, AST: e, Span: n.Span(), Data: data}

	case *ast.IfExpr:
		data := &hir.IfData{Cond: lw.lowerExpr(n.Cond, ls), Then: lw.lowerBlock(n.Then, ls)}
		if n.Else != nil {
			elseExpr := lw.lowerExpr(n.Else, ls)
			data.Else = &elseExpr
		}
		return hir.Expr{Kind: hir.KIf, AST: e, Span: n.Span(), Data: data}

	case *ast.LoopExpr:
		return hir.Expr{Kind: hir.KLoop, AST: e, Span: n.Span(), Data: &hir.LoopData{Body: lw.lowerBlock(n.Body, ls)}}

	case *ast.WhileExpr:
		return hir.Expr{Kind: hir.KWhile, AST: e, Span: n.Span(), Data: &hir.WhileData{
			Cond: lw.lowerExpr(n.Cond, ls), Body: lw.lowerBlock(n.Body, ls),
		}}

	case *ast.BreakExpr:
		data := &hir.BreakData{}
		if n.Value != nil {
			v := lw.lowerExpr(n.Value, ls)
			data.Value = &v
		}
		return hir.Expr{Kind: hir.KBreak, AST: e, Span: n.Span(), Data: data}

	case *ast.ContinueExpr:
		return hir.Expr{Kind: hir.KContinue, AST: e, Span: n.Span(), Data: &hir.ContinueData{}}

	case *ast.ReturnExpr:
		data := &hir.ReturnData{}
		if n.Value != nil {
			v := lw.lowerExpr(n.Value, ls)
			data.Value = &v
		}
		return hir.Expr{Kind: hir.KReturn, AST: e, Span: n.Span(), Data: data}

	case *ast.BlockExpr:
		return hir.Expr{Kind: hir.KBlock, AST: e, Span: n.Span(), Data: lw.lowerBlock(n, ls)}

	case *ast.UnderscoreExpr:
		return hir.Expr{Kind: hir.KUnderscore, AST: e, Span: n.Span(), Data: &hir.UnderscoreData{}}

	default:
		panic("lowering: invalid AST — unexpected expression shape")
	}
}

func (lw *Lowerer) lowerBlock(b *ast.BlockExpr, ls *locals) *hir.Block {
	blk := &hir.Block{Span: b.Span()}
	for _, s := range b.Stmts {
		blk.Stmts = append(blk.Stmts, lw.lowerStmt(s, ls))
	}
	if b.Final != nil {
		f := lw.lowerExpr(b.Final, ls)
		blk.Final = &f
	}
	return blk
}

func (lw *Lowerer) lowerStmt(s ast.Stmt, ls *locals) hir.Stmt {
	switch n := s.(type) {
	case *ast.LetStmt:
		let := &hir.LetStmt{Span: n.Span()}
		let.Pattern = lw.lowerPattern(n.Pattern, ls)
		if n.Annotation != nil {
			let.Annotation = lw.lowerTypeAnnotation(n.Annotation)
		}
		if n.Initializer != nil {
			v := lw.lowerExpr(n.Initializer, ls)
			let.Initializer = &v
		}
		return let
	case *ast.ExprStmt:
		return &hir.ExprStmt{Expr: lw.lowerExpr(n.Expr, ls), HasSemicolon: n.HasSemicolon, Span: n.Span()}
	default:
		panic("lowering: invalid AST — unexpected statement shape")
	}
}

func (lw *Lowerer) lowerPattern(p ast.Pattern, ls *locals) hir.Pattern {
	switch n := p.(type) {
	case *ast.BindingPattern:
		local := &hir.Local{Name: name(n.Name), IsMutable: n.IsMutable, AST: n, Span: n.Span()}
		if ls != nil {
			ls.add(local)
		}
		return &hir.BindingPattern{Local: local, IsMutable: n.IsMutable, IsRef: n.IsRef}
	case *ast.LiteralPattern:
		return &hir.LiteralPattern{Value: lw.lowerExpr(n.Value, ls), IsNegative: n.IsNegative}
	case *ast.WildcardPattern:
		return &hir.WildcardPattern{}
	case *ast.RefPattern:
		return &hir.RefPattern{Inner: lw.lowerPattern(n.Inner, ls), Mutable: n.Mutable}
	case *ast.PathPattern:
		return &hir.PathPattern{Syntax: n.Path}
	default:
		panic("lowering: invalid AST — unexpected pattern shape")
	}
}
