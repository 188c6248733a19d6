package check

import "github.com/rogerflowey/rust-compiler-sub006/internal/typeck"

// autoderefPlace peels reference layers off t, tracking the place-ness and
// mutability of each successive dereference — place; mutable
// iff p's type is &mut T"). Every deref yields a place; its mutability is
// the AND of every reference layer peeled so far — a `&` anywhere in the
// chain makes everything beyond it immutable, matching ordinary borrow
// semantics without modeling reborrows in full.
func autoderefPlace(in *typeck.Interner, t typeck.TypeId, place, mutable bool) (typeck.TypeId, bool, bool) {
	derefed := false
	for {
		tt := in.Lookup(t)
		if tt.Kind != typeck.KReference {
			break
		}
		if !derefed {
			mutable = tt.Mutable
		} else {
			mutable = mutable && tt.Mutable
		}
		derefed = true
		place = true
		t = tt.Pointee
	}
	return t, place, mutable
}

// isCastable reports whether p is one of the primitive numeric kinds a cast
// expression may name on either side"). bool and str are deliberately excluded.
func isCastable(p typeck.PrimitiveKind) bool {
	switch p {
	case typeck.I32, typeck.U32, typeck.ISize, typeck.USize, typeck.Char:
		return true
	default:
		return false
	}
}

// isComparable reports whether t is one of the types allowed on either side
// of `==`/`!=`/`<`/`<=`/`>`/`>=`: integers, bool, char, str, or a reference
// to one of those.
func isComparable(in *typeck.Interner, t typeck.TypeId) bool {
	tt := in.Lookup(t)
	if tt.Kind == typeck.KReference {
		tt = in.Lookup(tt.Pointee)
	}
	switch tt.Kind {
	case typeck.KPrimitive:
		return true
	default:
		return false
	}
}
