package ui_test

import (
	"bytes"
	"strings"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	. "github.com/cloudfoundry/lvm-expander/ui"
)

var _ = Describe("writerOutput", func() {
	var (
		buf    *bytes.Buffer
		output Output
	)

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		output = NewWriterOutput(buf)
	})

	It("writes lines", func() {
		output.Say("hello")
		output.Sayf("%s is %d", "answer", 42)
		Expect(buf.String()).To(Equal("hello\nanswer is 42\n"))
	})

	It("writes section headers and rules", func() {
		output.Section("Step 1: Identify the new hard drive")
		output.Rule()
		Expect(buf.String()).To(Equal("\n--- Step 1: Identify the new hard drive ---\n" + strings.Repeat("-", 100) + "\n"))
	})
})

var _ = Describe("linePrompter", func() {
	var (
		out    *bytes.Buffer
		logger boshlog.Logger
	)

	BeforeEach(func() {
		out = &bytes.Buffer{}
		logger = boshlog.NewLogger(boshlog.LevelNone)
	})

	It("prints the question and returns the answer without the line terminator", func() {
		prompter := NewLinePrompter(strings.NewReader("sdb\n"), out, logger)

		answer, err := prompter.Ask("Enter the KNAME: ")
		Expect(err).ToNot(HaveOccurred())
		Expect(answer).To(Equal("sdb"))
		Expect(out.String()).To(Equal("Enter the KNAME: "))
	})

	It("keeps surrounding whitespace", func() {
		prompter := NewLinePrompter(strings.NewReader(" YES \r\n"), out, logger)

		answer, err := prompter.Ask("? ")
		Expect(err).ToNot(HaveOccurred())
		Expect(answer).To(Equal(" YES "))
	})

	It("reads consecutive answers", func() {
		prompter := NewLinePrompter(strings.NewReader("first\nsecond"), out, logger)

		answer, err := prompter.Ask("? ")
		Expect(err).ToNot(HaveOccurred())
		Expect(answer).To(Equal("first"))

		answer, err = prompter.Ask("? ")
		Expect(err).ToNot(HaveOccurred())
		Expect(answer).To(Equal("second"))
	})

	It("returns an error when input is exhausted", func() {
		prompter := NewLinePrompter(strings.NewReader(""), out, logger)

		_, err := prompter.Ask("? ")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Reading operator input"))
	})
})
