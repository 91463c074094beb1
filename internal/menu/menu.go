package menu

import (
	"bufio"
	"fmt"
	"io"

	"github.com/handiism/discography-manager/internal/query"
)

// maxInputSize bounds a single line of user input.
const maxInputSize = 1024 * 1024

// Menu is the line-oriented console menu.
type Menu struct {
	svc *query.Service
	in  *bufio.Scanner
	out io.Writer
}

// New creates a Menu reading choices from in and writing to out.
func New(svc *query.Service, in io.Reader, out io.Writer) *Menu {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxInputSize)

	return &Menu{
		svc: svc,
		in:  scanner,
		out: out,
	}
}

// Run shows the menu until the user picks Exit or input ends.
//
// Invalid choices print a message and show the menu again. Run only returns
// an error if reading input fails.
func (m *Menu) Run() error {
	for {
		m.printMenu()

		line, ok := m.readLine("Choose an option: ")
		if !ok {
			return m.in.Err()
		}

		opt, err := ParseOption(line)
		if err != nil {
			fmt.Fprintln(m.out, "Invalid choice. Please try again.")
			continue
		}

		var input string
		if prompt := opt.Prompt(); prompt != "" {
			input, ok = m.readLine(prompt)
			if !ok {
				return m.in.Err()
			}
		}

		text, _ := Answer(m.svc, opt, input)
		fmt.Fprintln(m.out, text)

		if opt == Exit {
			return nil
		}
	}
}

func (m *Menu) printMenu() {
	fmt.Fprintln(m.out)
	fmt.Fprintln(m.out, Title)
	for _, opt := range Options {
		fmt.Fprintf(m.out, "%d. %s\n", opt, opt.Label())
	}
}

// readLine prints prompt and reads one line. ok is false at end of input.
func (m *Menu) readLine(prompt string) (string, bool) {
	fmt.Fprint(m.out, prompt)
	if !m.in.Scan() {
		return "", false
	}
	return m.in.Text(), true
}
