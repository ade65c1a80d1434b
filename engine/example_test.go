package engine_test

import (
	"fmt"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/field"
	"github.com/plus3/blockfall/piece"
)

func ExampleEngine() {
	// Every piece is a horizontal I so the outcome does not depend on the bag.
	cfg := engine.DefaultConfig()
	cfg.Catalog = iCatalog

	f, _ := field.New(cfg.Rows, cfg.Columns)
	for col := range cfg.Columns {
		if col < 3 || col > 6 {
			f.Set(19, col, piece.KindO)
		}
	}

	e, err := engine.New(cfg,
		engine.WithSeed(7),
		engine.WithField(f),
		engine.WithOnScoreChanged(func(total, delta int) {
			fmt.Println("scored", delta)
		}),
	)
	if err != nil {
		panic(err)
	}
	e.Start()

	rows, _ := e.HardDrop()
	fmt.Println("dropped", rows)
	fmt.Println("score", e.Score(), "lines", e.Lines())
	// Output:
	// scored 200
	// dropped 19
	// score 200 lines 1
}

func ExampleScoreFor() {
	for n := 1; n <= 4; n++ {
		fmt.Println(n, engine.ScoreFor(n))
	}
	// Output:
	// 1 200
	// 2 400
	// 3 800
	// 4 1600
}
