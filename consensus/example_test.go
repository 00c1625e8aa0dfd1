package consensus_test

import (
	"fmt"

	"github.com/katalvlaran/distopt/consensus"
	"github.com/katalvlaran/distopt/matrix"
	"github.com/katalvlaran/distopt/problem"
	"github.com/katalvlaran/distopt/topology"
)

// ExampleRun runs the relaxed rule on two agents that both observe the
// target (3, −1) under an identity design. The error against the
// centralized solution halves every round, so the default 3e-5 threshold
// is crossed at a fixed, reproducible round.
func ExampleRun() {
	g, _ := topology.NewGraph(2)
	_ = g.AddEdge(0, 1)

	eye, _ := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	inst := &problem.Instance{Nodes: []problem.NodeData{
		{A: eye, B: []float64{3, -1}},
		{A: eye.Clone(), B: []float64{3, -1}},
	}}
	ref, _ := problem.Reference(inst)

	opts := consensus.DefaultOptions()
	opts.Rounds = 40
	res, _ := consensus.Run(g, inst, ref, &opts)

	fmt.Printf("variant=%s rounds=%d converged at round %d\n",
		opts.Variant, res.Rounds, res.ConvergedAt)
	fmt.Printf("final error below 1e-9: %t\n", res.Trace[len(res.Trace)-1] < 1e-9)
	// Output:
	// variant=relaxed rounds=40 converged at round 17
	// final error below 1e-9: true
}
