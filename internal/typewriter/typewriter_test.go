package typewriter_test

import (
	"bytes"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/xmastree/internal/typewriter"
)

// runAll steps tw until it reports no more work and returns the step count.
func runAll(tw *typewriter.Typewriter) int {
	steps := 0
	for {
		steps++
		if _, more := tw.Step(); !more {
			return steps
		}
	}
}

var _ = Describe("Typewriter", func() {
	var (
		out *typewriter.Buffer
		tw  *typewriter.Typewriter
	)

	BeforeEach(func() {
		out = &typewriter.Buffer{}
		tw = typewriter.New(typewriter.DefaultLyrics, out)
	})

	It("starts idle with an empty output", func() {
		Expect(tw.Phase()).To(Equal(typewriter.Idle))
		Expect(out.String()).To(BeEmpty())
	})

	It("reveals exactly one character on the first step", func() {
		next, more, err := tw.Start()
		Expect(err).NotTo(HaveOccurred())
		Expect(more).To(BeTrue())
		Expect(next).To(Equal(typewriter.DefaultCharDelay))
		Expect(out.String()).To(Equal("O"))
		Expect(tw.Phase()).To(Equal(typewriter.RevealingChar))
		Expect(tw.State()).To(Equal(typewriter.State{Line: 0, Char: 1}))
	})

	It("breaks the line before the next line's first character", func() {
		first := typewriter.DefaultLyrics[0]
		_, _, err := tw.Start()
		Expect(err).NotTo(HaveOccurred())
		for i := 1; i < len(first); i++ {
			tw.Step()
		}
		Expect(out.String()).To(Equal(first))

		next, more := tw.Step()
		Expect(more).To(BeTrue())
		Expect(next).To(Equal(typewriter.DefaultLineDelay))
		Expect(tw.Phase()).To(Equal(typewriter.BreakingLine))
		Expect(out.String()).To(Equal(first + "\n"))
		Expect(tw.State()).To(Equal(typewriter.State{Line: 1, Char: 0}))

		tw.Step()
		Expect(out.String()).To(Equal(first + "\nT"))
	})

	It("reaches done after every line and appends nothing further", func() {
		_, _, err := tw.Start()
		Expect(err).NotTo(HaveOccurred())
		runAll(tw)

		Expect(tw.Phase()).To(Equal(typewriter.Done))
		want := strings.Join(typewriter.DefaultLyrics, "\n") + "\n"
		Expect(out.String()).To(Equal(want))

		next, more := tw.Step()
		Expect(more).To(BeFalse())
		Expect(next).To(BeZero())
		Expect(out.String()).To(Equal(want))
	})

	It("takes one step per character plus one per line", func() {
		total := 0
		for _, l := range typewriter.DefaultLyrics {
			total += len([]rune(l)) + 1
		}
		Expect(runAll(tw)).To(Equal(total))
	})

	It("ignores a second start", func() {
		_, _, err := tw.Start()
		Expect(err).NotTo(HaveOccurred())

		_, more, err := tw.Start()
		Expect(err).To(MatchError(typewriter.ErrAlreadyStarted))
		Expect(more).To(BeFalse())
		Expect(out.String()).To(Equal("O"))
	})

	It("refuses to restart once done", func() {
		runAll(tw)
		_, _, err := tw.Start()
		Expect(err).To(MatchError(typewriter.ErrAlreadyStarted))
	})

	Context("with custom input", func() {
		It("reveals multi-byte characters whole", func() {
			tw = typewriter.New([]string{"눈☃"}, out)
			tw.Step()
			Expect(out.String()).To(Equal("눈"))
			tw.Step()
			Expect(out.String()).To(Equal("눈☃"))
		})

		It("finishes immediately on an empty script", func() {
			tw = typewriter.New(nil, out)
			_, more, err := tw.Start()
			Expect(err).NotTo(HaveOccurred())
			Expect(more).To(BeFalse())
			Expect(tw.Phase()).To(Equal(typewriter.Done))
			Expect(out.String()).To(BeEmpty())
		})

		It("honours configured delays", func() {
			tw = typewriter.New([]string{"a", "b"}, out, typewriter.WithDelays(time.Millisecond, 2*time.Millisecond))
			next, _ := tw.Step()
			Expect(next).To(Equal(time.Millisecond))
			next, _ = tw.Step()
			Expect(next).To(Equal(2 * time.Millisecond))
		})

		It("streams to an io.Writer", func() {
			var buf bytes.Buffer
			tw = typewriter.New([]string{"hi"}, typewriter.WriterOutput{W: &buf})
			runAll(tw)
			Expect(buf.String()).To(Equal("hi\n"))
		})
	})
})
