package resolve

import (
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/scope"
)

// resolveBodies is phase 2 of : enter each function/method/impl
// body, allocate bindings at their point of declaration, and resolve every
// UnresolvedIdentifier by path walk. Trait items have nil bodies (this
// language has no default trait bodies) so there is nothing to walk there.
func (r *Resolver) resolveBodies(prog *hir.Program, root *scope.Scope) {
	for _, f := range prog.Functions {
		r.resolveFunctionBody(f, root)
	}
	for _, impl := range prog.Impls {
		itemScope := r.implScopes[impl]
		for _, f := range impl.Functions {
			r.resolveFunctionBody(f, itemScope)
		}
		for _, m := range impl.Methods {
			r.resolveMethodBody(m, itemScope)
		}
		for _, c := range impl.Consts {
			r.resolveConstInitializer(c, itemScope)
		}
	}
	for _, c := range prog.Consts {
		r.resolveConstInitializer(c, root)
	}
}

func (r *Resolver) resolveFunctionBody(f *hir.Function, enclosing *scope.Scope) {
	if f.Body == nil {
		return
	}
	fnScope := enclosing.Child(scope.KindFunction)
	for _, p := range f.Params {
		fnScope.DefineBinding(p.Name, scope.ValueDef{Kind: scope.ValueLocal, Local: p})
	}
	r.resolveBlock(f.Body, fnScope)
}

func (r *Resolver) resolveMethodBody(m *hir.Method, enclosing *scope.Scope) {
	if m.Body == nil {
		return
	}
	fnScope := enclosing.Child(scope.KindFunction)
	fnScope.DefineBinding("self", scope.ValueDef{Kind: scope.ValueLocal, Local: m.SelfLocal})
	for _, p := range m.Params {
		fnScope.DefineBinding(p.Name, scope.ValueDef{Kind: scope.ValueLocal, Local: p})
	}
	r.resolveBlock(m.Body, fnScope)
}

func (r *Resolver) resolveConstInitializer(c *hir.ConstDef, sc *scope.Scope) {
	if c.Initializer == nil {
		return
	}
	r.resolveExpr(c.Initializer, sc)
}

// resolveBlock opens a fresh non-boundary block scope before
// walking its statements and optional trailing expression.
func (r *Resolver) resolveBlock(b *hir.Block, enclosing *scope.Scope) {
	blockScope := enclosing.Child(scope.KindBlock)
	for _, st := range b.Stmts {
		r.resolveStmt(st, blockScope)
	}
	if b.Final != nil {
		r.resolveExpr(b.Final, blockScope)
	}
}

func (r *Resolver) resolveStmt(s hir.Stmt, sc *scope.Scope) {
	switch st := s.(type) {
	case *hir.LetStmt:
		if st.Initializer != nil {
			r.resolveExpr(st.Initializer, sc)
		}
		if st.Annotation.Syntax != nil {
			r.Finalize.ResolveType(&st.Annotation, sc)
		}
		r.bindPattern(st.Pattern, sc)
	case *hir.ExprStmt:
		r.resolveExpr(&st.Expr, sc)
	default:
		diag.Bug("resolve: unhandled hir.Stmt %T", s)
	}
}

// bindPattern introduces any bindings pat declares into sc and resolves any
// value paths pat itself references.
func (r *Resolver) bindPattern(pat hir.Pattern, sc *scope.Scope) {
	switch pt := pat.(type) {
	case *hir.BindingPattern:
		sc.DefineBinding(pt.Local.Name, scope.ValueDef{Kind: scope.ValueLocal, Local: pt.Local})
	case *hir.LiteralPattern:
		r.resolveExpr(&pt.Value, sc)
	case *hir.WildcardPattern:
		// nothing to bind or resolve
	case *hir.RefPattern:
		r.bindPattern(pt.Inner, sc)
	case *hir.PathPattern:
		r.resolvePathPattern(pt, sc)
	default:
		diag.Bug("resolve: unhandled hir.Pattern %T", pat)
	}
}

// resolveExpr recursively resolves every UnresolvedIdentData and deferred
// type annotation reachable from e, leaving field/method-name selectors for
// the expression checker.
func (r *Resolver) resolveExpr(e *hir.Expr, sc *scope.Scope) {
	switch d := e.Data.(type) {
	case *hir.IntLiteralData, *hir.BoolLiteralData, *hir.CharLiteralData, *hir.StringLiteralData, *hir.UnderscoreData:
		// nothing to resolve

	case *hir.UnresolvedIdentData:
		r.resolveIdentExpr(e, d, sc)

	case *hir.FieldAccessData:
		r.resolveExpr(&d.Base, sc)

	case *hir.IndexData:
		r.resolveExpr(&d.Base, sc)
		r.resolveExpr(&d.Index, sc)

	case *hir.StructLiteralData:
		r.resolveStructLiteral(d, e.Span, sc)

	case *hir.ArrayLiteralData:
		for i := range d.Elements {
			r.resolveExpr(&d.Elements[i], sc)
		}

	case *hir.ArrayRepeatData:
		r.resolveExpr(&d.Value, sc)
		r.resolveExpr(&d.Count, sc)

	case *hir.UnaryOpData:
		r.resolveExpr(&d.Operand, sc)

	case *hir.BinaryOpData:
		r.resolveExpr(&d.Left, sc)
		r.resolveExpr(&d.Right, sc)

	case *hir.AssignmentData:
		r.resolveExpr(&d.Left, sc)
		r.resolveExpr(&d.Right, sc)

	case *hir.CastData:
		r.resolveExpr(&d.Expr, sc)
		r.Finalize.ResolveType(&d.TargetType, sc)

	case *hir.CallData:
		r.resolveExpr(&d.Callee, sc)
		for i := range d.Args {
			r.resolveExpr(&d.Args[i], sc)
		}

	case *hir.MethodCallData:
		r.resolveExpr(&d.Receiver, sc)
		for i := range d.Args {
			r.resolveExpr(&d.Args[i], sc)
		}

	case *hir.IfData:
		r.resolveExpr(&d.Cond, sc)
		r.resolveBlock(d.Then, sc)
		if d.Else != nil {
			r.resolveExpr(d.Else, sc)
		}

	case *hir.LoopData:
		r.resolveBlock(d.Body, sc)

	case *hir.WhileData:
		r.resolveExpr(&d.Cond, sc)
		r.resolveBlock(d.Body, sc)

	case *hir.BreakData:
		if d.Value != nil {
			r.resolveExpr(d.Value, sc)
		}

	case *hir.ContinueData:
		// nothing to resolve

	case *hir.ReturnData:
		if d.Value != nil {
			r.resolveExpr(d.Value, sc)
		}

	case *hir.Block:
		r.resolveBlock(d, sc)

	default:
		diag.Bug("resolve: unhandled hir.ExprData %T", e.Data)
	}
}
