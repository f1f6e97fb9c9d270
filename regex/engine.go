package regex

// stateSet is a set of NFA state ids that remembers insertion order.
type stateSet struct {
	ids    []int
	member []bool
}

func newStateSet(size int) *stateSet {
	return &stateSet{member: make([]bool, size)}
}

func (s *stateSet) has(id int) bool {
	return s.member[id]
}

func (s *stateSet) add(id int) {
	s.member[id] = true
	s.ids = append(s.ids, id)
}

func (s *stateSet) clear() {
	for _, id := range s.ids {
		s.member[id] = false
	}
	s.ids = s.ids[:0]
}

func (s *stateSet) empty() bool {
	return len(s.ids) == 0
}

// addClosure adds id and everything reachable from it over epsilon edges to
// set. stack is scratch space, returned for reuse.
func (n *NFA) addClosure(set *stateSet, id int, stack []int) []int {
	stack = append(stack[:0], id)
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if set.has(top) {
			continue
		}
		set.add(top)

		for _, t := range n.states[top].transitions() {
			if t.epsilon && !set.has(t.to) {
				stack = append(stack, t.to)
			}
		}
	}
	return stack
}

// step adds the epsilon closure of every state reachable from cur by one
// transition on c to next.
func (n *NFA) step(cur, next *stateSet, c byte, stack []int) []int {
	for _, id := range cur.ids {
		for _, t := range n.states[id].transitions() {
			if !t.epsilon && t.char == c {
				stack = n.addClosure(next, t.to, stack)
			}
		}
	}
	return stack
}

func (n *NFA) accepts(set *stateSet) bool {
	for _, id := range set.ids {
		if n.states[id].accepting {
			return true
		}
	}
	return false
}

// Match reports whether the whole of s is in the language of n, simulating
// the NFA state set by state set.
func (n *NFA) Match(s string) bool {
	cur, next := newStateSet(len(n.states)), newStateSet(len(n.states))
	stack := n.addClosure(cur, n.start, nil)

	for i := 0; i < len(s); i++ {
		next.clear()
		stack = n.step(cur, next, s[i], stack)
		// no way back from an empty set
		if next.empty() {
			return false
		}
		cur, next = next, cur
	}
	return n.accepts(cur)
}
