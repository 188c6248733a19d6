// Package cflow is the lightweight control-flow-link validation sweep. The
// expression checker already sets Break/Continue/Return's Target slot
// whenever it finds an enclosing loop/function during its own recursive
// descent; this pass walks every function and method body afterward and
// reports the three "used outside its construct" diagnostics for any Target
// left unresolved.
package cflow

import (
	"github.com/rogerflowey/rust-compiler-sub006/internal/diag"
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
)

// Checker runs the control-flow-link sweep over a Program.
type Checker struct {
	Diags *diag.Collector
}

func New(diags *diag.Collector) *Checker {
	return &Checker{Diags: diags}
}

// Run walks every function, method, free const initializer, and impl/trait
// item body in prog, reporting unresolved Break/Continue/Return targets.
func (c *Checker) Run(prog *hir.Program) {
	for _, f := range prog.Functions {
		c.walkFunc(f.Body)
	}
	for _, cst := range prog.Consts {
		c.walkExprPtr(cst.Initializer)
	}
	for _, impl := range prog.Impls {
		c.walkContainer(impl.Functions, impl.Methods, impl.Consts)
	}
	for _, t := range prog.Traits {
		c.walkContainer(t.Functions, t.Methods, t.Consts)
	}
}

func (c *Checker) walkContainer(fns []*hir.Function, methods []*hir.Method, consts []*hir.ConstDef) {
	for _, f := range fns {
		c.walkFunc(f.Body)
	}
	for _, m := range methods {
		c.walkFunc(m.Body)
	}
	for _, cst := range consts {
		c.walkExprPtr(cst.Initializer)
	}
}

func (c *Checker) walkFunc(body *hir.Block) {
	if body != nil {
		c.walkBlock(body)
	}
}

func (c *Checker) walkBlock(b *hir.Block) {
	for _, s := range b.Stmts {
		c.walkStmt(s)
	}
	c.walkExprPtr(b.Final)
}

func (c *Checker) walkStmt(s hir.Stmt) {
	switch st := s.(type) {
	case *hir.LetStmt:
		c.walkExprPtr(st.Initializer)
	case *hir.ExprStmt:
		c.walkExpr(&st.Expr)
	default:
		diag.Bug("cflow: unhandled hir.Stmt %T", s)
	}
}

func (c *Checker) walkExprPtr(e *hir.Expr) {
	if e != nil {
		c.walkExpr(e)
	}
}

func (c *Checker) walkExpr(e *hir.Expr) {
	switch d := e.Data.(type) {
	case *hir.BreakData:
		c.walkExprPtr(d.Value)
		if !d.Target.Resolved {
			c.Diags.Errorf(diag.KindBreakOutsideLoop, e.Span, "`break` used outside a loop")
		}

	case *hir.ContinueData:
		if !d.Target.Resolved {
			c.Diags.Errorf(diag.KindContinueOutsideLoop, e.Span, "`continue` used outside a loop")
		}

	case *hir.ReturnData:
		c.walkExprPtr(d.Value)
		if !d.Target.Resolved {
			c.Diags.Errorf(diag.KindReturnOutsideFn, e.Span, "`return` used outside a function")
		}

	case *hir.FieldAccessData:
		c.walkExpr(&d.Base)

	case *hir.IndexData:
		c.walkExpr(&d.Base)
		c.walkExpr(&d.Index)

	case *hir.StructLiteralData:
		for i := range d.Fields {
			c.walkExpr(&d.Fields[i].Value)
		}

	case *hir.ArrayLiteralData:
		for i := range d.Elements {
			c.walkExpr(&d.Elements[i])
		}

	case *hir.ArrayRepeatData:
		c.walkExpr(&d.Value)
		c.walkExpr(&d.Count)

	case *hir.UnaryOpData:
		c.walkExpr(&d.Operand)

	case *hir.BinaryOpData:
		c.walkExpr(&d.Left)
		c.walkExpr(&d.Right)

	case *hir.AssignmentData:
		c.walkExpr(&d.Left)
		c.walkExpr(&d.Right)

	case *hir.CastData:
		c.walkExpr(&d.Expr)

	case *hir.CallData:
		c.walkExpr(&d.Callee)
		for i := range d.Args {
			c.walkExpr(&d.Args[i])
		}

	case *hir.MethodCallData:
		c.walkExpr(&d.Receiver)
		for i := range d.Args {
			c.walkExpr(&d.Args[i])
		}

	case *hir.IfData:
		c.walkExpr(&d.Cond)
		c.walkBlock(d.Then)
		c.walkExprPtr(d.Else)

	case *hir.LoopData:
		c.walkBlock(d.Body)

	case *hir.WhileData:
		c.walkExpr(&d.Cond)
		c.walkBlock(d.Body)

	case *hir.Block:
		c.walkBlock(d)

	default:
		// Literals, identifiers, and already-resolved value uses carry no
		// nested expressions to descend into.
	}
}
