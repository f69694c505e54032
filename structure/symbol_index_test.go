package structure

import (
	"testing"

	"github.com/0x5487/xapi/protocol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(symbols []*protocol.Symbol) []string {
	result := make([]string, len(symbols))
	for i, s := range symbols {
		result[i] = s.Symbol
	}
	return result
}

func newTestIndex() *SymbolIndex {
	return NewSymbolIndex([]protocol.Symbol{
		{Symbol: "USDJPY", CategoryName: "FX"},
		{Symbol: "EURPLN", CategoryName: "FX"},
		{Symbol: "US500", CategoryName: "IND"},
		{Symbol: "EURUSD", CategoryName: "FX"},
		{Symbol: "GOLD", CategoryName: "CMD"},
	})
}

func TestSymbolIndex(t *testing.T) {
	t.Run("Ordered", func(t *testing.T) {
		idx := newTestIndex()

		assert.Equal(t, 5, idx.Len())
		assert.Equal(t, []string{"EURPLN", "EURUSD", "GOLD", "US500", "USDJPY"}, names(idx.Symbols()))
	})

	t.Run("Get", func(t *testing.T) {
		idx := newTestIndex()

		sym, found := idx.Get("GOLD")
		require.True(t, found)
		assert.Equal(t, "CMD", sym.CategoryName)

		_, found = idx.Get("SILVER")
		assert.False(t, found)
	})

	t.Run("PutReplaces", func(t *testing.T) {
		idx := newTestIndex()

		idx.Put(protocol.Symbol{Symbol: "GOLD", CategoryName: "METAL"})
		assert.Equal(t, 5, idx.Len())

		sym, found := idx.Get("GOLD")
		require.True(t, found)
		assert.Equal(t, "METAL", sym.CategoryName)
	})

	t.Run("Remove", func(t *testing.T) {
		idx := newTestIndex()

		assert.True(t, idx.Remove("US500"))
		assert.False(t, idx.Remove("US500"))
		assert.Equal(t, 4, idx.Len())
	})

	t.Run("WithPrefix", func(t *testing.T) {
		idx := newTestIndex()

		assert.Equal(t, []string{"EURPLN", "EURUSD"}, names(idx.WithPrefix("EUR")))
		assert.Equal(t, []string{"US500", "USDJPY"}, names(idx.WithPrefix("US")))
		assert.Empty(t, idx.WithPrefix("ZZ"))
		assert.Len(t, idx.WithPrefix(""), 5)
	})

	t.Run("ByCategory", func(t *testing.T) {
		idx := newTestIndex()

		assert.Equal(t, []string{"EURPLN", "EURUSD", "USDJPY"}, names(idx.ByCategory("FX")))
		assert.Empty(t, idx.ByCategory("STC"))
	})

	t.Run("Empty", func(t *testing.T) {
		idx := NewSymbolIndex(nil)

		assert.Equal(t, 0, idx.Len())
		assert.Empty(t, idx.Symbols())
		assert.Empty(t, idx.WithPrefix("EUR"))
	})
}
