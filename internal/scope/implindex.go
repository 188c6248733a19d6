package scope

import (
	"github.com/rogerflowey/rust-compiler-sub006/internal/hir"
	"github.com/rogerflowey/rust-compiler-sub006/internal/typeck"
)

// ImplTable is the map TypeId → list of impls that method resolution
// searches. It is shared compile-context state, alongside the scope
// tree it is seeded next to.
type ImplTable struct {
	byType map[typeck.TypeId][]*hir.Impl
}

func NewImplTable() *ImplTable {
	return &ImplTable{byType: make(map[typeck.TypeId][]*hir.Impl)}
}

// Add records impl as applying to the type id (its ForType, already
// resolved).
func (t *ImplTable) Add(id typeck.TypeId, impl *hir.Impl) {
	t.byType[id] = append(t.byType[id], impl)
}

// Lookup returns every impl registered for id, in registration order.
func (t *ImplTable) Lookup(id typeck.TypeId) []*hir.Impl {
	return t.byType[id]
}
