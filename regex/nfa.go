package regex

// transition is an edge to another state of the same NFA, addressed by index.
type transition struct {
	char    byte
	epsilon bool
	to      int
}

// Thompson's construction never gives a state more than two outgoing edges.
type nfaState struct {
	accepting bool
	out       [2]transition
	n         int
}

func (s *nfaState) transitions() []transition {
	return s.out[:s.n]
}

// NFA is a Thompson-construction automaton. Its states live in a single arena
// owned by the NFA; it is never modified after BuildNFA returns.
type NFA struct {
	states []nfaState
	start  int
	end    int
}

func (n *NFA) NumStates() int {
	return len(n.states)
}

func (n *NFA) Start() int {
	return n.start
}

// End is the only accepting state.
func (n *NFA) End() int {
	return n.end
}

type fragment struct {
	start int
	end   int
}

// nfaBuilder is the construction context of a single BuildNFA call; state ids
// are handed out by position in its arena.
type nfaBuilder struct {
	states    []nfaState
	maxStates int
}

func (b *nfaBuilder) newState() (int, error) {
	if len(b.states) >= b.maxStates {
		return 0, &CapacityError{Resource: "NFA states", Limit: b.maxStates}
	}
	b.states = append(b.states, nfaState{})
	return len(b.states) - 1, nil
}

func (b *nfaBuilder) addTransition(from, to int, char byte, epsilon bool) error {
	s := &b.states[from]
	if s.n >= len(s.out) {
		return &CapacityError{Resource: "transitions per NFA state", Limit: len(s.out)}
	}
	s.out[s.n] = transition{char: char, epsilon: epsilon, to: to}
	s.n++
	return nil
}

func (b *nfaBuilder) addEpsilon(from, to int) error {
	return b.addTransition(from, to, 0, true)
}

// newFragment allocates a fresh start and end state.
func (b *nfaBuilder) newFragment() (fragment, error) {
	start, err := b.newState()
	if err != nil {
		return fragment{}, err
	}
	end, err := b.newState()
	if err != nil {
		return fragment{}, err
	}
	return fragment{start: start, end: end}, nil
}

// (start) --c--> (end)
func (b *nfaBuilder) literal(c byte) (fragment, error) {
	f, err := b.newFragment()
	if err != nil {
		return fragment{}, err
	}
	return f, b.addTransition(f.start, f.end, c, false)
}

// (x.start) ... (x.end) --ε--> (y.start) ... (y.end)
func (b *nfaBuilder) concat(x, y fragment) (fragment, error) {
	if err := b.addEpsilon(x.end, y.start); err != nil {
		return fragment{}, err
	}
	return fragment{start: x.start, end: y.end}, nil
}

func (b *nfaBuilder) union(x, y fragment) (fragment, error) {
	f, err := b.newFragment()
	if err != nil {
		return fragment{}, err
	}
	for _, e := range [][2]int{{f.start, x.start}, {f.start, y.start}, {x.end, f.end}, {y.end, f.end}} {
		if err := b.addEpsilon(e[0], e[1]); err != nil {
			return fragment{}, err
		}
	}
	return f, nil
}

func (b *nfaBuilder) star(x fragment) (fragment, error) {
	f, err := b.newFragment()
	if err != nil {
		return fragment{}, err
	}
	edges := [][2]int{
		// zero repetitions
		{f.start, f.end},
		{f.start, x.start},
		{x.end, f.end},
		// repeat
		{x.end, x.start},
	}
	for _, e := range edges {
		if err := b.addEpsilon(e[0], e[1]); err != nil {
			return fragment{}, err
		}
	}
	return f, nil
}

// BuildNFA runs Thompson's construction over a postfix pattern as produced by
// ToPostfix.
func BuildNFA(postfix string, limits Limits) (*NFA, error) {
	limits = limits.withDefaults()
	b := &nfaBuilder{maxStates: limits.MaxNFAStates}

	var stack []fragment
	for i := 0; i < len(postfix); i++ {
		c := postfix[i]

		var (
			f   fragment
			err error
		)
		switch {
		case c == concatOp || c == unionOp:
			if len(stack) < 2 {
				return nil, newConstructionError(i, "%q needs two operands, have %d", c, len(stack))
			}
			// y was pushed last
			x, y := stack[len(stack)-2], stack[len(stack)-1]
			stack = stack[:len(stack)-2]
			if c == concatOp {
				f, err = b.concat(x, y)
			} else {
				f, err = b.union(x, y)
			}
		case c == starOp:
			if len(stack) < 1 {
				return nil, newConstructionError(i, "%q needs an operand", c)
			}
			x := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			f, err = b.star(x)
		case isAlnum(c):
			f, err = b.literal(c)
		default:
			return nil, newConstructionError(i, "unexpected %q in postfix pattern", c)
		}
		if err != nil {
			return nil, err
		}
		stack = append(stack, f)
	}

	if len(stack) != 1 {
		return nil, newConstructionError(len(postfix), "pattern reduces to %d fragments, want 1", len(stack))
	}

	// no state is accepting until the top-level fragment is known
	f := stack[0]
	b.states[f.end].accepting = true
	return &NFA{states: b.states, start: f.start, end: f.end}, nil
}
