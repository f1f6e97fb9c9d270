package regex

import (
	"encoding/binary"
	"slices"

	"github.com/dchest/siphash"
)

// The DFA alphabet is printable ASCII. Any other byte leads to the dead state.
const (
	AlphabetFirst byte = 0x20
	AlphabetLast  byte = 0x7e

	alphabetSize = int(AlphabetLast-AlphabetFirst) + 1
	dead         = -1
)

const (
	setKey0 = 0x736f6d6570736575
	setKey1 = 0x646f72616e646f6d
)

type dfaState struct {
	accepting bool
	// sorted, no duplicates
	nfaSet []int
	next   [alphabetSize]int
}

// DFA is the subset construction of an NFA. It owns all of its states and is
// never modified after BuildDFA returns.
type DFA struct {
	states []dfaState
	start  int
}

func (d *DFA) NumStates() int {
	return len(d.states)
}

func (d *DFA) Start() int {
	return d.start
}

func (d *DFA) Accepting(id int) bool {
	return d.states[id].accepting
}

// Next returns the state reached from id on c. ok is false if c leads to the
// dead state.
func (d *DFA) Next(id int, c byte) (next int, ok bool) {
	if c < AlphabetFirst || c > AlphabetLast {
		return dead, false
	}
	next = d.states[id].next[c-AlphabetFirst]
	return next, next != dead
}

// NFASet returns the ids of the NFA states that id stands for.
func (d *DFA) NFASet(id int) []int {
	return slices.Clone(d.states[id].nfaSet)
}

// Match reports whether the whole of s is in the language of d.
func (d *DFA) Match(s string) bool {
	cur := d.start
	for i := 0; i < len(s); i++ {
		next, ok := d.Next(cur, s[i])
		if !ok {
			return false
		}
		cur = next
	}
	return d.states[cur].accepting
}

// dfaBuilder is the construction context of a single BuildDFA call.
type dfaBuilder struct {
	nfa    *NFA
	limits Limits

	states []dfaState
	// siphash of a canonical set -> DFA states carrying a set with that hash
	index    map[uint64][]int
	worklist []int

	// scratch
	set    *stateSet
	sorted []int
	stack  []int
	key    []byte
}

func (b *dfaBuilder) hash(ids []int) uint64 {
	b.key = b.key[:0]
	for _, id := range ids {
		b.key = binary.LittleEndian.AppendUint32(b.key, uint32(id))
	}
	return siphash.Hash(setKey0, setKey1, b.key)
}

// intern returns the DFA state for the current contents of b.set, creating
// and enqueueing it if no state carries the same set yet.
func (b *dfaBuilder) intern() (int, error) {
	if len(b.set.ids) > b.limits.MaxSetSize {
		return dead, &CapacityError{Resource: "NFA states per DFA state", Limit: b.limits.MaxSetSize}
	}

	b.sorted = append(b.sorted[:0], b.set.ids...)
	slices.Sort(b.sorted)

	h := b.hash(b.sorted)
	for _, id := range b.index[h] {
		if slices.Equal(b.states[id].nfaSet, b.sorted) {
			return id, nil
		}
	}

	if len(b.states) >= b.limits.MaxDFAStates {
		return dead, &CapacityError{Resource: "DFA states", Limit: b.limits.MaxDFAStates}
	}

	s := dfaState{nfaSet: slices.Clone(b.sorted)}
	for i := range s.next {
		s.next[i] = dead
	}
	for _, nfaID := range s.nfaSet {
		if b.nfa.states[nfaID].accepting {
			s.accepting = true
			break
		}
	}

	id := len(b.states)
	b.states = append(b.states, s)
	b.index[h] = append(b.index[h], id)
	b.worklist = append(b.worklist, id)
	return id, nil
}

// BuildDFA converts n to a DFA by subset construction, exploring reachable
// sets of NFA states breadth first.
func BuildDFA(n *NFA, limits Limits) (*DFA, error) {
	b := &dfaBuilder{
		nfa:    n,
		limits: limits.withDefaults(),
		index:  make(map[uint64][]int),
		set:    newStateSet(len(n.states)),
	}

	b.stack = n.addClosure(b.set, n.start, b.stack)
	start, err := b.intern()
	if err != nil {
		return nil, err
	}

	for head := 0; head < len(b.worklist); head++ {
		cur := b.worklist[head]
		// b.states may grow below, the set itself never moves
		nfaSet := b.states[cur].nfaSet

		for i := 0; i < alphabetSize; i++ {
			c := AlphabetFirst + byte(i)

			b.set.clear()
			for _, nfaID := range nfaSet {
				for _, t := range n.states[nfaID].transitions() {
					if !t.epsilon && t.char == c {
						b.stack = n.addClosure(b.set, t.to, b.stack)
					}
				}
			}
			if b.set.empty() {
				continue
			}

			target, err := b.intern()
			if err != nil {
				return nil, err
			}
			b.states[cur].next[i] = target
		}
	}

	return &DFA{states: b.states, start: start}, nil
}
