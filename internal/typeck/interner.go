package typeck

// Interner is the single source of truth for canonical Types within one
// compilation. Two calls that construct structurally identical Types always
// return the same TypeId, so TypeId equality stands in for type equality
// everywhere downstream.
type Interner struct {
	types []Type
	index map[typeKey]TypeId

	primitives [9]TypeId
	unit       TypeId
	never      TypeId
	underscore TypeId
}

// NewInterner builds an Interner with the zero-index sentinel reserved and
// every primitive, Unit, Never, and Underscore pre-interned, so callers never
// pay an allocation to fetch them.
func NewInterner() *Interner {
	in := &Interner{
		types: make([]Type, 1, 64), // index 0 reserved as Invalid
		index: make(map[typeKey]TypeId, 64),
	}
	for p := PrimitiveKind(0); p <= AnyUInt; p++ {
		in.primitives[p] = in.intern(Type{Kind: KPrimitive, Prim: p})
	}
	in.unit = in.intern(Type{Kind: KUnit})
	in.never = in.intern(Type{Kind: KNever})
	in.underscore = in.intern(Type{Kind: KUnderscore})
	return in
}

func (in *Interner) intern(t Type) TypeId {
	k := t.key()
	if id, ok := in.index[k]; ok {
		return id
	}
	id := TypeId(len(in.types))
	in.types = append(in.types, t)
	in.index[k] = id
	return id
}

// Lookup returns the Type a TypeId denotes. Passing Invalid or an id from a
// different Interner is a programming error.
func (in *Interner) Lookup(id TypeId) Type {
	if int(id) <= 0 || int(id) >= len(in.types) {
		panic("typeck: TypeId out of range for this Interner")
	}
	return in.types[id]
}

// Primitive returns the canonical TypeId for a primitive kind.
func (in *Interner) Primitive(p PrimitiveKind) TypeId { return in.primitives[p] }

// Unit returns the canonical TypeId for `()`.
func (in *Interner) Unit() TypeId { return in.unit }

// Never returns the canonical TypeId for `!`.
func (in *Interner) Never() TypeId { return in.never }

// Underscore returns the canonical TypeId for the inference placeholder `_`.
// It only ever appears transiently during checking; no finalized HIR slot
// may hold it.
func (in *Interner) Underscore() TypeId { return in.underscore }

// Reference interns `&T` or `&mut T`.
func (in *Interner) Reference(pointee TypeId, mutable bool) TypeId {
	return in.intern(Type{Kind: KReference, Pointee: pointee, Mutable: mutable})
}

// Array interns `[T; N]`.
func (in *Interner) Array(element TypeId, length uint64) TypeId {
	return in.intern(Type{Kind: KArray, Element: element, Length: length})
}

// Struct interns the type named by a struct definition. defID must be a
// stable identity assigned once per struct declaration (hir.StructDef.ID);
// calling this twice with the same defID, regardless of def, yields the same
// TypeId.
func (in *Interner) Struct(defID int64, def any) TypeId {
	return in.intern(Type{Kind: KStruct, DefID: defID, Def: def})
}

// Enum interns the type named by an enum definition, analogous to Struct.
func (in *Interner) Enum(defID int64, def any) TypeId {
	return in.intern(Type{Kind: KEnum, DefID: defID, Def: def})
}
