package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 . Prompter

// Prompter asks the operator a question and returns the typed line with only
// the line terminator removed. Callers decide whether to trim.
type Prompter interface {
	Ask(question string) (string, error)
}

type linePrompter struct {
	out    io.Writer
	in     *bufio.Reader
	logger boshlog.Logger
	logTag string
}

func NewLinePrompter(in io.Reader, out io.Writer, logger boshlog.Logger) Prompter {
	return &linePrompter{
		out:    out,
		in:     bufio.NewReader(in),
		logger: logger,
		logTag: "linePrompter",
	}
}

func (p *linePrompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		fmt.Fprintln(p.out)
		return "", bosherr.WrapError(err, "Reading operator input")
	}

	answer := strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	p.logger.Debug(p.logTag, "Operator answered '%s'", answer)

	return answer, nil
}
