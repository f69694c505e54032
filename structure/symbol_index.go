package structure

import (
	"strings"

	"github.com/0x5487/xapi/protocol"
	"github.com/huandu/skiplist"
)

// SymbolIndex keeps symbols ordered by name.
// It is built once from a getAllSymbols reply and is not safe for concurrent writes.
type SymbolIndex struct {
	list *skiplist.SkipList
}

// NewSymbolIndex indexes symbols by name. A later duplicate replaces an earlier one.
func NewSymbolIndex(symbols []protocol.Symbol) *SymbolIndex {
	idx := &SymbolIndex{
		list: skiplist.New(skiplist.String),
	}
	for i := range symbols {
		idx.Put(symbols[i])
	}
	return idx
}

// Put inserts or replaces a symbol.
func (idx *SymbolIndex) Put(symbol protocol.Symbol) {
	idx.list.Set(symbol.Symbol, &symbol)
}

// Get returns the symbol named name.
func (idx *SymbolIndex) Get(name string) (*protocol.Symbol, bool) {
	elem := idx.list.Get(name)
	if elem == nil {
		return nil, false
	}
	return elem.Value.(*protocol.Symbol), true
}

// Remove deletes the symbol named name and reports whether it was present.
func (idx *SymbolIndex) Remove(name string) bool {
	return idx.list.Remove(name) != nil
}

// Len returns the number of symbols.
func (idx *SymbolIndex) Len() int {
	return idx.list.Len()
}

// WithPrefix returns the symbols whose name starts with prefix, in name order.
func (idx *SymbolIndex) WithPrefix(prefix string) []*protocol.Symbol {
	result := make([]*protocol.Symbol, 0)
	for elem := idx.list.Find(prefix); elem != nil; elem = elem.Next() {
		if !strings.HasPrefix(elem.Key().(string), prefix) {
			break
		}
		result = append(result, elem.Value.(*protocol.Symbol))
	}
	return result
}

// ByCategory returns the symbols of the category, in name order.
func (idx *SymbolIndex) ByCategory(category string) []*protocol.Symbol {
	result := make([]*protocol.Symbol, 0)
	for elem := idx.list.Front(); elem != nil; elem = elem.Next() {
		sym := elem.Value.(*protocol.Symbol)
		if sym.CategoryName == category {
			result = append(result, sym)
		}
	}
	return result
}

// Symbols returns all symbols in name order.
func (idx *SymbolIndex) Symbols() []*protocol.Symbol {
	result := make([]*protocol.Symbol, 0, idx.list.Len())
	for elem := idx.list.Front(); elem != nil; elem = elem.Next() {
		result = append(result, elem.Value.(*protocol.Symbol))
	}
	return result
}
