package main

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	sectionColor = color.New(color.FgCyan, color.Bold)
	matchColor   = color.New(color.FgGreen, color.Bold)
	noMatchColor = color.New(color.FgRed, color.Bold)
)

// narrator prints what each phase produced when --verbose is given.
type narrator struct {
	enabled bool
	out     io.Writer
}

func newNarrator(enabled bool, out io.Writer) *narrator {
	return &narrator{enabled: enabled, out: out}
}

func (n *narrator) Section(name string) {
	if n.enabled {
		sectionColor.Fprintf(n.out, "\n--- %s ---\n", name)
	}
}

func (n *narrator) Log(format string, args ...any) {
	if n.enabled {
		fmt.Fprintf(n.out, format+"\n", args...)
	}
}

func (n *narrator) Result(matched bool) {
	if !n.enabled {
		return
	}
	if matched {
		matchColor.Fprintln(n.out, "result: match")
	} else {
		noMatchColor.Fprintln(n.out, "result: no match")
	}
}
