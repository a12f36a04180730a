package soup

import (
	"fmt"
	"io"
)

// WriteReport writes the verdict and, on violation, the counter-example
// trace in a stable, human-readable form.
func (r Result[S, Q]) WriteReport(w io.Writer) {
	if r.Holds {
		_, _ = fmt.Fprintln(w, "Verdict: OK (no accepting cycle)")
	} else {
		_, _ = fmt.Fprintln(w, "Verdict: FAIL (accepting cycle found)")
		writeTrace(w, "Prefix trace:", r.CounterExample.Prefix, false)
		writeTrace(w, "Cyclic suffix trace:", r.CounterExample.Cycle, true)
	}
	_, _ = fmt.Fprintf(w, "States: %d, Transitions: %d, Time: %dms\n",
		r.States, r.Transitions, r.ExecutionTimeMs)
}

func writeTrace[S comparable, Q comparable](w io.Writer, header string, trace []TraceState[ProductState[S, Q]], loop bool) {
	_, _ = fmt.Fprintln(w, header)
	for i, ts := range trace {
		marker := ""
		if ts.Accepting {
			marker = "  (accepting)"
		}
		if loop && i == len(trace)-1 {
			marker += "  (loop)"
		}
		_, _ = fmt.Fprintf(w, "  [%d] %v%s\n", i, ts.State, marker)
	}
}

// WriteDot explores the graph and writes it in Graphviz DOT format. Nodes
// are numbered in BFS discovery order so the output is deterministic; root
// nodes are drawn with a heavy border.
func WriteDot[S comparable, A any](w io.Writer, g RootedGraph[S, A]) error {
	exp, err := Explore(g)
	if err != nil {
		return err
	}

	index := make(map[S]int, exp.Len())
	for i, s := range exp.order {
		index[s] = i
	}

	roots, err := g.Roots()
	if err != nil {
		return err
	}
	rootSet := make(stateSet[S])
	for _, r := range roots {
		rootSet.insert(r)
	}

	_, _ = fmt.Fprintln(w, "digraph {")
	for i, s := range exp.order {
		_, _ = fmt.Fprintf(w, "  %d [ label=\"%v\" ];\n", i, s)
		if rootSet.member(s) {
			_, _ = fmt.Fprintf(w, "  %d [ penwidth=5 ];\n", i)
		}
	}
	for _, s := range exp.order {
		edges, err := g.Successors(s)
		if err != nil {
			return err
		}
		for _, edge := range edges {
			_, _ = fmt.Fprintf(w, "  %d -> %d [ label=\"%v\" ];\n", index[s], index[edge.Target], edge.Action)
		}
	}
	_, _ = fmt.Fprintln(w, "}")
	return nil
}
