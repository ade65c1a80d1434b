package engine_test

import (
	"testing"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/piece"
	"github.com/stretchr/testify/require"
)

// uniformCatalog gives every kind the same shape so tests can predict the
// falling piece regardless of the bag order.
func uniformCatalog(rows ...string) *piece.Catalog {
	defs := make([]piece.Definition, 0, piece.KindCount)
	for _, k := range piece.Kinds() {
		defs = append(defs, piece.Definition{Kind: k, Name: k.String(), Shape: piece.MustShape(rows...)})
	}
	c, err := piece.NewCatalog(defs...)
	if err != nil {
		panic(err)
	}
	return c
}

var (
	oCatalog = uniformCatalog("##", "##")
	iCatalog = uniformCatalog("####")
)

func config(rows, cols int, catalog *piece.Catalog) engine.Config {
	cfg := engine.DefaultConfig()
	cfg.Rows = rows
	cfg.Columns = cols
	cfg.Catalog = catalog
	return cfg
}

// startEngine builds and starts an engine with a fixed seed.
func startEngine(t testing.TB, cfg engine.Config, opts ...engine.Option) *engine.Engine {
	t.Helper()
	opts = append([]engine.Option{engine.WithSeed(1)}, opts...)
	e, err := engine.New(cfg, opts...)
	require.NoError(t, err)
	e.Start()
	require.Equal(t, engine.StateRunning, e.State())
	return e
}

// fieldWith returns an empty field with the given cells occupied.
func fieldWith(t testing.TB, rows, cols int, cells ...[2]int) *field.Field {
	t.Helper()
	f, err := field.New(rows, cols)
	require.NoError(t, err)
	for _, c := range cells {
		f.Set(c[0], c[1], piece.KindZ)
	}
	return f
}

// rowExcept lists every cell of row except the given columns.
func rowExcept(row, cols int, except ...int) [][2]int {
	var cells [][2]int
	for col := 0; col < cols; col++ {
		skip := false
		for _, e := range except {
			if e == col {
				skip = true
			}
		}
		if !skip {
			cells = append(cells, [2]int{row, col})
		}
	}
	return cells
}
