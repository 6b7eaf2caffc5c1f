package flow_test

import (
	"fmt"

	"github.com/katalvlaran/graphstat/core"
	"github.com/katalvlaran/graphstat/flow"
)

// ExampleDinic computes an s-t minimum cut on a small diamond.
//
//	0 -3- 1
//	|     |
//	2     2
//	|     |
//	2 -3- 3
func ExampleDinic() {
	g := core.NewGraph(core.WithNodes(4))
	_, _ = g.AddEdge(0, 1, 3)
	_, _ = g.AddEdge(1, 3, 2)
	_, _ = g.AddEdge(0, 2, 2)
	_, _ = g.AddEdge(2, 3, 3)

	mf, res, err := flow.Dinic(g, 0, 3, flow.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(mf, res.SourceSide(0))
	// Output:
	// 4 [0 1]
}
