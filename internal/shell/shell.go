// Package shell runs the interactive console chat: it reads one line at a
// time, intercepts the console commands and hands everything else to the
// matcher.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"smartedubot/internal/analytics"
	"smartedubot/internal/knowledge"
	"smartedubot/internal/matcher"
)

const (
	Welcome    = "🎓 🤖 Welcome to SmartEduBot - Your Intelligent College Assistant!"
	HelpTip    = "💡 Type 'help' for topics or 'exit' to quit"
	ExampleTip = "💡 Try: 'What are the fees for B.Tech?' or 'Tell me about placements'"

	Prompt    = "\n👤 You: "
	BotPrefix = "🤖 Bot: "

	Farewell    = "Thank you for chatting! 🎓 Good luck with your college journey!"
	EmptyPrompt = "Please type your question. Type 'help' for options."
)

var separator = strings.Repeat("=", 55)

// maxLineSize bounds a single input line.
const maxLineSize = 1 << 20

// Shell is a sequential read-eval-print loop over a matcher.
type Shell struct {
	matcher *matcher.Matcher
	store   *knowledge.Store
	counter *analytics.Counter
	in      io.Reader
	out     io.Writer
}

// New creates a shell reading from in and writing to out.
func New(m *matcher.Matcher, store *knowledge.Store, counter *analytics.Counter, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		matcher: m,
		store:   store,
		counter: counter,
		in:      in,
		out:     out,
	}
}

// Run prints the banner and serves lines until exit, end of input or ctx is
// cancelled. Cancellation is honoured while waiting for input. Only read
// errors are returned.
func (s *Shell) Run(ctx context.Context) error {
	s.banner()

	if ctx.Err() != nil {
		s.farewell()
		return nil
	}

	stop := make(chan struct{})
	defer close(stop)
	lines, readErr := s.readLines(stop)

	for {
		fmt.Fprint(s.out, Prompt)

		select {
		case <-ctx.Done():
			fmt.Fprintln(s.out)
			s.farewell()
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("failed to read input: %w", err)
				}
				fmt.Fprintln(s.out)
				s.farewell()
				return nil
			}
			if done := s.handle(line); done {
				return nil
			}
		}
	}
}

// readLines scans input on its own goroutine. lines is closed at end of
// input, after the scan error (nil on EOF) has been sent on errc. A reader
// blocked in Read keeps the goroutine alive until that Read returns.
func (s *Shell) readLines(stop <-chan struct{}) (<-chan string, <-chan error) {
	lines := make(chan string)
	errc := make(chan error, 1)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(s.in)
		scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-stop:
				return
			}
		}
		errc <- scanner.Err()
	}()

	return lines, errc
}

// handle processes one input line and reports whether the session is over.
func (s *Shell) handle(line string) bool {
	input := strings.TrimSpace(line)

	switch strings.ToLower(input) {
	case "exit", "quit":
		s.farewell()
		return true
	case "help":
		s.help()
	case "analytics":
		s.analytics()
	case "":
		s.reply(EmptyPrompt)
	default:
		s.reply(s.matcher.Resolve(input))
	}
	return false
}

func (s *Shell) banner() {
	fmt.Fprintln(s.out, Welcome)
	fmt.Fprintln(s.out, separator)
	fmt.Fprintln(s.out, HelpTip)
	fmt.Fprintln(s.out, ExampleTip)
	fmt.Fprintln(s.out, separator)
}

func (s *Shell) reply(msg string) {
	fmt.Fprintln(s.out, BotPrefix+msg)
}

func (s *Shell) farewell() {
	s.reply(Farewell)
	if s.counter.Len() > 0 {
		s.analytics()
	}
}

func (s *Shell) analytics() {
	report := analytics.NewReport(s.counter)
	if report.Empty() {
		fmt.Fprintln(s.out, report.String())
		return
	}
	fmt.Fprintln(s.out, "\n"+report.String())
}

func (s *Shell) help() {
	fmt.Fprintln(s.out, "\n📋 *Available Topics:*")
	fmt.Fprint(s.out, RenderTopicTable(s.store))
}
