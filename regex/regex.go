package regex

// supported: literals [0-9A-Za-z], concatenation (implicit or '.'), '|', '*' and '(...)'
// missing and I might add:
// a configurable alphabet for the DFA instead of printable ASCII
// DFA minimization

import "fmt"

// Limits bounds every buffer and table the pipeline grows. A zero field means
// the default.
type Limits struct {
	// length of the pattern after explicit concatenation was inserted
	MaxExpandedLen int `json:"maxExpandedLen,omitempty"`
	MaxPostfixLen  int `json:"maxPostfixLen,omitempty"`
	MaxNFAStates   int `json:"maxNfaStates,omitempty"`
	// NFA states represented by a single DFA state
	MaxSetSize   int `json:"maxSetSize,omitempty"`
	MaxDFAStates int `json:"maxDfaStates,omitempty"`
}

func DefaultLimits() Limits {
	return Limits{
		MaxExpandedLen: 1024,
		MaxPostfixLen:  1024,
		MaxNFAStates:   2048,
		MaxSetSize:     1024,
		MaxDFAStates:   256,
	}
}

func (l Limits) withDefaults() Limits {
	def := DefaultLimits()
	if l.MaxExpandedLen <= 0 {
		l.MaxExpandedLen = def.MaxExpandedLen
	}
	if l.MaxPostfixLen <= 0 {
		l.MaxPostfixLen = def.MaxPostfixLen
	}
	if l.MaxNFAStates <= 0 {
		l.MaxNFAStates = def.MaxNFAStates
	}
	if l.MaxSetSize <= 0 {
		l.MaxSetSize = def.MaxSetSize
	}
	if l.MaxDFAStates <= 0 {
		l.MaxDFAStates = def.MaxDFAStates
	}
	return l
}

type Regex struct {
	expr     string
	expanded string
	postfix  string
	limits   Limits
	nfa      *NFA
}

func Compile(re string) (Regex, error) {
	return CompileLimits(re, DefaultLimits())
}

func CompileLimits(re string, limits Limits) (Regex, error) {
	limits = limits.withDefaults()

	if err := scan(re); err != nil {
		return Regex{}, fmt.Errorf("failed to construct regex from %q: %w", re, err)
	}

	expanded, err := Preprocess(re, limits.MaxExpandedLen)
	if err != nil {
		return Regex{}, fmt.Errorf("failed to construct regex from %q: %w", re, err)
	}

	postfix, err := ToPostfix(expanded, limits.MaxPostfixLen)
	if err != nil {
		return Regex{}, fmt.Errorf("failed to construct regex from %q: %w", expanded, err)
	}

	nfa, err := BuildNFA(postfix, limits)
	if err != nil {
		return Regex{}, fmt.Errorf("failed to construct regex from %q: %w", postfix, err)
	}

	return Regex{
		expr:     re,
		expanded: expanded,
		postfix:  postfix,
		limits:   limits,
		nfa:      nfa,
	}, nil
}

func MustCompile(re string) Regex {
	r, err := Compile(re)
	if err != nil {
		panic(err)
	}
	return r
}

func (re Regex) String() string {
	return re.expr
}

// Expanded is the pattern with every concatenation made explicit.
func (re Regex) Expanded() string {
	return re.expanded
}

func (re Regex) Postfix() string {
	return re.postfix
}

func (re Regex) NFA() *NFA {
	return re.nfa
}

// Match reports whether the whole of s matches, simulating the NFA directly.
func (re Regex) Match(s string) bool {
	return re.nfa.Match(s)
}

// DFA runs the subset construction. Every call builds a new DFA; callers that
// match many strings should keep the result.
func (re Regex) DFA() (*DFA, error) {
	dfa, err := BuildDFA(re.nfa, re.limits)
	if err != nil {
		return nil, fmt.Errorf("failed to build DFA for %q: %w", re.expr, err)
	}
	return dfa, nil
}

// MatchDFA is like Match but goes through a freshly built DFA.
func (re Regex) MatchDFA(s string) (bool, error) {
	dfa, err := re.DFA()
	if err != nil {
		return false, err
	}
	return dfa.Match(s), nil
}
