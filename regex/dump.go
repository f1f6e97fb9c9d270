package regex

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

var dotLabelEscaper = strings.NewReplacer(`\`, `\\`, `"`, `\"`)

// String lists every state of d with the NFA states it represents and its
// live transitions.
func (d *DFA) String() string {
	var accepting []string
	for id := range d.states {
		if d.states[id].accepting {
			accepting = append(accepting, "S"+strconv.Itoa(id))
		}
	}
	if len(accepting) == 0 {
		accepting = []string{"none"}
	}

	out := strings.Builder{}
	fmt.Fprintf(&out, "DFA with %d states, start S%d, accepting %s\n", len(d.states), d.start, strings.Join(accepting, " "))
	for id, s := range d.states {
		set := make([]string, len(s.nfaSet))
		for i, nfaID := range s.nfaSet {
			set[i] = strconv.Itoa(nfaID)
		}
		fmt.Fprintf(&out, "S%d {%s}", id, strings.Join(set, ","))
		if s.accepting {
			out.WriteString(" [accept]")
		}
		out.WriteByte('\n')

		for i, next := range s.next {
			if next != dead {
				fmt.Fprintf(&out, "  '%c' -> S%d\n", AlphabetFirst+byte(i), next)
			}
		}
	}
	return out.String()
}

func writeDotHeader(out *strings.Builder, name string, start int) {
	fmt.Fprintf(out, "digraph %s {\n\trankdir=LR;\n\tstart [shape=point];\n\tstart -> s%d;\n", name, start)
}

func writeDotNode(out *strings.Builder, id int, accepting bool) {
	shape := "circle"
	if accepting {
		shape = "doublecircle"
	}
	fmt.Fprintf(out, "\ts%d [shape=%s];\n", id, shape)
}

// WriteDot writes n as a Graphviz digraph.
func (n *NFA) WriteDot(w io.Writer) error {
	out := strings.Builder{}
	writeDotHeader(&out, "nfa", n.start)
	for id := range n.states {
		writeDotNode(&out, id, n.states[id].accepting)
	}
	for id := range n.states {
		for _, t := range n.states[id].transitions() {
			label := "ε"
			if !t.epsilon {
				label = dotLabelEscaper.Replace(string(t.char))
			}
			fmt.Fprintf(&out, "\ts%d -> s%d [label=\"%s\"];\n", id, t.to, label)
		}
	}
	out.WriteString("}\n")

	_, err := io.WriteString(w, out.String())
	return err
}

// WriteDot writes d as a Graphviz digraph, with one edge per pair of states
// labelled by every symbol leading from one to the other.
func (d *DFA) WriteDot(w io.Writer) error {
	out := strings.Builder{}
	writeDotHeader(&out, "dfa", d.start)
	for id := range d.states {
		writeDotNode(&out, id, d.states[id].accepting)
	}
	for id := range d.states {
		var targets []int
		labels := map[int][]string{}
		for i, next := range d.states[id].next {
			if next == dead {
				continue
			}
			if _, ok := labels[next]; !ok {
				targets = append(targets, next)
			}
			labels[next] = append(labels[next], dotLabelEscaper.Replace(string(AlphabetFirst+byte(i))))
		}
		for _, next := range targets {
			fmt.Fprintf(&out, "\ts%d -> s%d [label=\"%s\"];\n", id, next, strings.Join(labels[next], ","))
		}
	}
	out.WriteString("}\n")

	_, err := io.WriteString(w, out.String())
	return err
}
