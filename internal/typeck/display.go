package typeck

import "fmt"

// named is implemented by hir.StructDef and hir.EnumDef; Display uses it
// structurally so this package never imports hir.
type named interface {
	TypeName() string
}

// Display renders id as source-like text for diagnostics, e.g. "&mut [i32; 4]".
func (in *Interner) Display(id TypeId) string {
	if id == Invalid {
		return "<invalid>"
	}
	t := in.Lookup(id)
	switch t.Kind {
	case KPrimitive:
		return t.Prim.String()
	case KUnit:
		return "()"
	case KNever:
		return "!"
	case KUnderscore:
		return "_"
	case KReference:
		if t.Mutable {
			return "&mut " + in.Display(t.Pointee)
		}
		return "&" + in.Display(t.Pointee)
	case KArray:
		return fmt.Sprintf("[%s; %d]", in.Display(t.Element), t.Length)
	case KStruct, KEnum:
		if n, ok := t.Def.(named); ok {
			return n.TypeName()
		}
		return fmt.Sprintf("<def#%d>", t.DefID)
	default:
		return "<?>"
	}
}
