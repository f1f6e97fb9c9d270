// Package codegen renders a DFA built by package regex as a standalone Go
// matcher: two lookup tables and a function walking them.
package codegen

import (
	"fmt"
	"go/token"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"github.com/mfroeh/thompson/regex"
)

// Options configures the generated file.
type Options struct {
	// Package is the Go package name of the generated file
	Package string

	// Name is the name of the generated func(string) bool; the tables are
	// named after it ("Match" generates matchTransitions and matchAccepting)
	Name string
}

// Validate checks if the options are valid.
func (o Options) Validate() error {
	if o.Package == "" {
		return fmt.Errorf("package cannot be empty")
	}
	if !token.IsIdentifier(o.Package) {
		return fmt.Errorf("package %q is not a Go identifier", o.Package)
	}
	if o.Name == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if !token.IsIdentifier(o.Name) {
		return fmt.Errorf("name %q is not a Go identifier", o.Name)
	}
	return nil
}

func lowerFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToLower(r)) + s[size:]
}

// Generate builds the Go file for d.
func Generate(d *regex.DFA, opts Options) (*jen.File, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	transitionsName := lowerFirst(opts.Name) + "Transitions"
	acceptingName := lowerFirst(opts.Name) + "Accepting"
	numStates := d.NumStates()
	width := int(regex.AlphabetLast-regex.AlphabetFirst) + 1

	f := jen.NewFile(opts.Package)
	f.HeaderComment("Code generated by thompson. DO NOT EDIT.")

	rows := make([]jen.Code, numStates)
	accepting := make([]jen.Code, numStates)
	for id := 0; id < numStates; id++ {
		entries := make([]jen.Code, width)
		for i := range entries {
			next, ok := d.Next(id, regex.AlphabetFirst+byte(i))
			if !ok {
				next = -1
			}
			entries[i] = jen.Lit(next)
		}
		rows[id] = jen.Index(jen.Lit(width)).Int().Values(entries...)
		accepting[id] = jen.Lit(d.Accepting(id))
	}

	f.Commentf("%s[state][c-%d] is the next state, -1 if there is none.", transitionsName, regex.AlphabetFirst)
	f.Var().Id(transitionsName).Op("=").Index(jen.Lit(numStates)).Index(jen.Lit(width)).Int().Values(rows...)
	f.Var().Id(acceptingName).Op("=").Index(jen.Lit(numStates)).Bool().Values(accepting...)

	first, last := int(regex.AlphabetFirst), int(regex.AlphabetLast)
	f.Commentf("%s reports whether the whole of s is accepted.", opts.Name)
	f.Func().Id(opts.Name).Params(jen.Id("s").String()).Bool().Block(
		jen.Id("state").Op(":=").Lit(d.Start()),
		jen.For(jen.Id("i").Op(":=").Lit(0), jen.Id("i").Op("<").Len(jen.Id("s")), jen.Id("i").Op("++")).Block(
			jen.Id("c").Op(":=").Id("s").Index(jen.Id("i")),
			jen.If(jen.Id("c").Op("<").Lit(first).Op("||").Id("c").Op(">").Lit(last)).Block(
				jen.Return(jen.False()),
			),
			jen.Id("state").Op("=").Id(transitionsName).Index(jen.Id("state")).Index(jen.Id("c").Op("-").Lit(first)),
			jen.If(jen.Id("state").Op("<").Lit(0)).Block(
				jen.Return(jen.False()),
			),
		),
		jen.Return(jen.Id(acceptingName).Index(jen.Id("state"))),
	)

	return f, nil
}

// Write renders the generated file for d to w.
func Write(d *regex.DFA, opts Options, w io.Writer) error {
	f, err := Generate(d, opts)
	if err != nil {
		return err
	}
	if err := f.Render(w); err != nil {
		return fmt.Errorf("failed to render %s: %w", opts.Name, err)
	}
	return nil
}

// Save writes the generated file for d to path.
func Save(d *regex.DFA, opts Options, path string) error {
	f, err := Generate(d, opts)
	if err != nil {
		return err
	}
	if !strings.HasSuffix(path, ".go") {
		return fmt.Errorf("output file %q must end in .go", path)
	}
	if err := f.Save(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}
