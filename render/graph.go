// SPDX-License-Identifier: EPL-2.0

package render

import (
	"context"
	"fmt"
)

// Signal is per-channel sample data flowing between stages.
type Signal [][]float64

// Frames of the signal, 0 when it has no channels.
func (s Signal) Frames() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Stage is one node of a render graph. Process receives the outputs of the
// stage's inputs in the order they were declared. Stages must not modify
// their inputs: one output can feed several stages.
type Stage interface {
	Name() string
	Process(ctx context.Context, inputs []Signal) (Signal, error)
}

type node struct {
	stage  Stage
	inputs []int
}

// Graph is a directed acyclic graph of stages. Stages are added after their
// inputs, so insertion order is a topological order and the last stage added
// is the sink.
type Graph struct {
	nodes []node
	index map[string]int
}

func NewGraph() *Graph {
	return &Graph{index: make(map[string]int)}
}

// Add appends stage, fed by the named stages.
func (g *Graph) Add(stage Stage, inputs ...string) error {
	name := stage.Name()
	if _, ok := g.index[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateStage, name)
	}

	n := node{stage: stage, inputs: make([]int, len(inputs))}
	for i, in := range inputs {
		idx, ok := g.index[in]
		if !ok {
			return fmt.Errorf("%w: %q feeding %q", ErrUnknownStage, in, name)
		}
		n.inputs[i] = idx
	}

	g.index[name] = len(g.nodes)
	g.nodes = append(g.nodes, n)

	return nil
}

// Stages lists stage names in evaluation order.
func (g *Graph) Stages() []string {
	names := make([]string, len(g.nodes))
	for i, n := range g.nodes {
		names[i] = n.stage.Name()
	}
	return names
}

// Inputs lists the stages feeding name.
func (g *Graph) Inputs(name string) []string {
	idx, ok := g.index[name]
	if !ok {
		return nil
	}

	in := make([]string, len(g.nodes[idx].inputs))
	for i, p := range g.nodes[idx].inputs {
		in[i] = g.nodes[p].stage.Name()
	}
	return in
}

// Run evaluates every stage in order and returns the sink's output.
// Intermediate signals are released once their last consumer has run.
func (g *Graph) Run(ctx context.Context) (Signal, error) {
	if len(g.nodes) == 0 {
		return nil, ErrEmptyGraph
	}

	pending := make([]int, len(g.nodes))
	for _, n := range g.nodes {
		for _, p := range n.inputs {
			pending[p]++
		}
	}

	results := make([]Signal, len(g.nodes))

	for i, n := range g.nodes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		ins := make([]Signal, len(n.inputs))
		for j, p := range n.inputs {
			ins[j] = results[p]
		}

		out, err := n.stage.Process(ctx, ins)
		if err != nil {
			return nil, fmt.Errorf("stage %s: %w", n.stage.Name(), err)
		}
		results[i] = out

		for _, p := range n.inputs {
			pending[p]--
			if pending[p] == 0 {
				results[p] = nil
			}
		}
	}

	return results[len(results)-1], nil
}
