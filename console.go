package tinyinput

import (
	"errors"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Console names the streams a read uses. It holds no buffer and no state, so
// the zero value and nil both mean "standard input and standard output".
//
// A Console adds no locking; concurrent reads on the same streams interleave
// however the underlying streams do.
type Console struct {
	// In is read one line at a time. nil means os.Stdin at the time of the call.
	In io.Reader
	// Out receives prompts. nil means os.Stdout at the time of the call.
	// If Out has a Flush() error method it is called after each prompt.
	Out io.Writer
	// Logger receives debug events such as failed prompt writes. nil disables logging.
	Logger *zap.Logger
}

func (c *Console) in() io.Reader {
	if c == nil || c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Console) out() io.Writer {
	if c == nil || c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Console) logger() *zap.Logger {
	if c == nil || c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// ReadLine writes prompt (if non-empty), reads one line and returns it with
// surrounding whitespace removed. Errors are always KindIO.
func (c *Console) ReadLine(prompt string) (string, error) {
	c.writePrompt(prompt)

	line, err := readLine(c.in())
	if err != nil {
		c.logger().Debug("read failed", zap.Error(err))
		return "", ioError(err)
	}
	return c.finishLine(line)
}

func (c *Console) finishLine(line string) (string, error) {
	if !utf8.ValidString(line) {
		c.logger().Debug("read failed", zap.Error(ErrInvalidUTF8), zap.Int("bytes", len(line)))
		return "", ioError(ErrInvalidUTF8)
	}
	return strings.TrimSpace(line), nil
}

// writePrompt is best-effort: a prompt that cannot be shown does not fail the read.
func (c *Console) writePrompt(prompt string) {
	if prompt == "" {
		return
	}
	c.writeBestEffort(prompt)
}

func (c *Console) writeBestEffort(s string) {
	out := c.out()
	if _, err := io.WriteString(out, s); err != nil {
		c.logger().Debug("prompt write failed", zap.Error(err))
	}
	if f, ok := out.(interface{ Flush() error }); ok {
		if err := f.Flush(); err != nil {
			c.logger().Debug("prompt flush failed", zap.Error(err))
		}
	}
}

// maxConsecutiveEmptyReads matches the limit bufio uses before giving up on
// a reader that keeps returning 0, nil.
const maxConsecutiveEmptyReads = 100

// readLine consumes bytes up to and including the first '\n' and nothing more,
// so that the next read on the same stream starts at the next line.
// End-of-stream after at least one byte ends the line; before any byte it is io.EOF.
func readLine(r io.Reader) (string, error) {
	br, ok := r.(io.ByteReader)
	if !ok {
		br = &byteAtATime{r: r}
	}

	var sb strings.Builder
	for {
		b, err := br.ReadByte()
		if err != nil {
			if errors.Is(err, io.EOF) && sb.Len() > 0 {
				return sb.String(), nil
			}
			return "", err
		}
		sb.WriteByte(b)
		if b == '\n' {
			return sb.String(), nil
		}
	}
}

type byteAtATime struct {
	r   io.Reader
	buf [1]byte
}

func (b *byteAtATime) ReadByte() (byte, error) {
	for range maxConsecutiveEmptyReads {
		n, err := b.r.Read(b.buf[:])
		if n == 1 {
			return b.buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
	return 0, io.ErrNoProgress
}
