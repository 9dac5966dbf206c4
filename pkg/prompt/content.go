package prompt

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
)

// Content reads an entry body from in, one line at a time until EOF, and
// joins the lines with newlines. The invitation is only written when in is a
// terminal.
func Content(in io.Reader, out io.Writer) (string, error) {
	if f, ok := in.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		_, _ = fmt.Fprintln(out, "Please write your entry:")
	}

	var lines []string
	s := bufio.NewScanner(in)
	for s.Scan() {
		lines = append(lines, s.Text())
	}
	if err := s.Err(); err != nil {
		return "", errors.Wrap(err, "reading entry")
	}
	return strings.Join(lines, "\n"), nil
}
