package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/mfroeh/thompson/codegen"
	"github.com/mfroeh/thompson/regex"
)

const (
	exitMatch   = 0
	exitNoMatch = 1
)

type cli struct {
	DFA     bool   `name:"dfa" help:"Build a DFA by subset construction and match with a table walk instead of simulating the NFA."`
	Verbose bool   `short:"v" help:"Narrate every compilation phase on stderr."`
	Dump    bool   `help:"Print the DFA transition table to stdout."`
	Dot     string `type:"path" placeholder:"FILE" help:"Write the automaton used for matching as a Graphviz digraph."`
	EmitGo  string `name:"emit-go" type:"path" placeholder:"FILE" help:"Write a Go matcher generated from the DFA."`
	Package string `default:"main" help:"Package of the file written by --emit-go."`
	Func    string `default:"Match" help:"Function name of the matcher written by --emit-go."`
	Config  string `type:"path" placeholder:"FILE" help:"YAML file with recognizer limits."`

	MaxNFAStates int `name:"max-nfa-states" placeholder:"N" help:"Maximum number of NFA states."`
	MaxDFAStates int `name:"max-dfa-states" placeholder:"N" help:"Maximum number of DFA states."`

	Regex string `arg:"" name:"regex" help:"Pattern over [0-9A-Za-z] with '|', '*', '(' and ')'; '.' concatenates explicitly."`
	Input string `arg:"" name:"string" help:"String to match against the whole pattern."`
}

var errorColor = color.New(color.FgRed)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the exit code.
func run(args []string, stdout, stderr io.Writer, options ...kong.Option) int {
	logger := log.New(stderr, "thompson: ", 0)

	var c cli
	options = append([]kong.Option{
		kong.Name("thompson"),
		kong.Description("Compiles a regular expression with Thompson's construction and matches a string against it."),
		kong.Writers(stdout, stderr),
	}, options...)
	parser, err := kong.New(&c, options...)
	if err != nil {
		logger.Print(errorColor.Sprintf("failed to build command line: %v", err))
		return exitNoMatch
	}

	if _, err := parser.Parse(args); err != nil {
		logger.Print(errorColor.Sprint(err))
		var parseErr *kong.ParseError
		if errors.As(err, &parseErr) {
			_ = parseErr.Context.PrintUsage(true)
		}
		return exitNoMatch
	}

	matched, err := c.match(stdout, newNarrator(c.Verbose, stderr))
	if err != nil {
		logger.Print(errorColor.Sprint(err))
		return exitNoMatch
	}

	if !matched {
		fmt.Fprintln(stdout, "no match")
		return exitNoMatch
	}
	fmt.Fprintln(stdout, "match")
	return exitMatch
}

func (c *cli) limits() (regex.Limits, error) {
	limits, err := loadLimits(c.Config)
	if err != nil {
		return regex.Limits{}, err
	}
	if c.MaxNFAStates > 0 {
		limits.MaxNFAStates = c.MaxNFAStates
	}
	if c.MaxDFAStates > 0 {
		limits.MaxDFAStates = c.MaxDFAStates
	}
	return limits, nil
}

func (c *cli) match(stdout io.Writer, n *narrator) (bool, error) {
	limits, err := c.limits()
	if err != nil {
		return false, err
	}

	n.Section("Parsing")
	n.Log("regex:        %s", c.Regex)
	n.Log("string:       %q", c.Input)
	re, err := regex.CompileLimits(c.Regex, limits)
	if err != nil {
		return false, err
	}
	n.Log("preprocessed: %s", re.Expanded())
	n.Log("postfix:      %s", re.Postfix())

	n.Section("NFA construction")
	n.Log("%d states, start s%d, accepting s%d", re.NFA().NumStates(), re.NFA().Start(), re.NFA().End())

	var dfa *regex.DFA
	if c.DFA || c.Dump || c.EmitGo != "" {
		n.Section("DFA construction")
		dfa, err = re.DFA()
		if err != nil {
			return false, err
		}
		n.Log("%d states", dfa.NumStates())
	}

	if c.Dump {
		fmt.Fprint(stdout, dfa.String())
	}

	if c.Dot != "" {
		if err := c.writeDot(re, dfa); err != nil {
			return false, err
		}
		n.Log("wrote %s", c.Dot)
	}

	if c.EmitGo != "" {
		err := codegen.Save(dfa, codegen.Options{Package: c.Package, Name: c.Func}, c.EmitGo)
		if err != nil {
			return false, err
		}
		n.Log("wrote %s", c.EmitGo)
	}

	n.Section("Simulation")
	var matched bool
	if c.DFA {
		n.Log("walking the DFA")
		matched = dfa.Match(c.Input)
	} else {
		n.Log("simulating the NFA")
		matched = re.Match(c.Input)
	}
	n.Result(matched)
	return matched, nil
}

func (c *cli) writeDot(re regex.Regex, dfa *regex.DFA) error {
	f, err := os.Create(c.Dot)
	if err != nil {
		return err
	}
	defer f.Close()

	if c.DFA {
		err = dfa.WriteDot(f)
	} else {
		err = re.NFA().WriteDot(f)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", c.Dot, err)
	}
	return f.Close()
}
