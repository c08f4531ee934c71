package tinyinput

import (
	"os"

	"golang.org/x/term"

	"github.com/apstndb/tinyinput/parser"
)

// ReadSecret is like Read but does not echo the typed line when standard
// input is a terminal.
func ReadSecret[T any](prompt string) (T, error) {
	return ScanSecret[T](nil, prompt)
}

// ScanSecret is ReadSecret on the streams of c.
func ScanSecret[T any](c *Console, prompt string) (T, error) {
	return ScanSecretWith(c, prompt, resolve[T](c))
}

// ScanSecretWith is ScanSecret with an explicit parser.
func ScanSecretWith[T any](c *Console, prompt string, p parser.Parser[T]) (T, error) {
	line, err := c.ReadSecretLine(prompt)
	if err != nil {
		var zero T
		return zero, err
	}
	return convert(c, line, p)
}

// ReadSecretLine is ReadLine with terminal echo disabled.
//
// When In is not a terminal it behaves exactly like ReadLine. Otherwise a
// newline is written to Out after the line is read, since the one the user
// typed was not echoed.
func (c *Console) ReadSecretLine(prompt string) (string, error) {
	f, ok := c.in().(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return c.ReadLine(prompt)
	}

	c.writePrompt(prompt)
	b, err := term.ReadPassword(int(f.Fd()))
	c.writeBestEffort("\n")
	if err != nil {
		return "", ioError(err)
	}
	return c.finishLine(string(b))
}
