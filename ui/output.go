package ui

import (
	"fmt"
	"io"
	"strings"
)

const ruleWidth = 100

// Output is the only way operator-facing text leaves the core. Everything
// written through it is also expected to land in the audit log, which is
// arranged by handing it a writer that mirrors both.
type Output interface {
	Say(msg string)
	Sayf(msg string, args ...interface{})
	Section(title string)
	Rule()
}

type writerOutput struct {
	out io.Writer
}

func NewWriterOutput(out io.Writer) Output {
	return writerOutput{out: out}
}

func (o writerOutput) Say(msg string) {
	fmt.Fprintln(o.out, msg)
}

func (o writerOutput) Sayf(msg string, args ...interface{}) {
	fmt.Fprintf(o.out, msg+"\n", args...)
}

func (o writerOutput) Section(title string) {
	fmt.Fprintf(o.out, "\n--- %s ---\n", title)
}

func (o writerOutput) Rule() {
	fmt.Fprintln(o.out, strings.Repeat("-", ruleWidth))
}
