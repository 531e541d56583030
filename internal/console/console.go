// Package console is the line-oriented terminal used by the menu loop.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// MaxLineBytes bounds a single input line. Longer lines are discarded and
// read back as an empty line.
const MaxLineBytes = 4096

// ErrInterrupted is returned by ReadLine once Interrupt has been called.
var ErrInterrupted = errors.New("console input interrupted")

// Console reads operator input one line at a time and writes prompts.
// Input is pulled by a background reader so a pending ReadLine can be
// abandoned with Interrupt.
type Console struct {
	lines chan string
	err   error // set before lines is closed

	done chan struct{}
	once sync.Once

	out io.Writer
}

func New(in io.Reader, out io.Writer) *Console {
	c := &Console{
		lines: make(chan string),
		done:  make(chan struct{}),
		out:   out,
	}
	go c.pump(bufio.NewReaderSize(in, MaxLineBytes))
	return c
}

func (c *Console) pump(r *bufio.Reader) {
	defer close(c.lines)
	for {
		line, err := readLine(r)
		if err != nil {
			c.err = err
			return
		}
		select {
		case c.lines <- line:
		case <-c.done:
			c.err = ErrInterrupted
			return
		}
	}
}

// readLine returns the next line without its terminator. A line that does
// not fit the reader's buffer is consumed in full and returned empty.
func readLine(r *bufio.Reader) (string, error) {
	b, err := r.ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		for errors.Is(err, bufio.ErrBufferFull) {
			_, err = r.ReadSlice('\n')
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return "", err
		}
		return "", nil
	}
	// A final line without a newline still counts.
	if err != nil && !(errors.Is(err, io.EOF) && len(b) > 0) {
		return "", err
	}
	return string(b), nil
}

// ReadLine returns the next input line without its trailing newline or
// surrounding whitespace. It returns io.EOF once input is exhausted and
// ErrInterrupted after Interrupt.
func (c *Console) ReadLine() (string, error) {
	select {
	case line, ok := <-c.lines:
		if !ok {
			return "", c.err
		}
		return strings.TrimSpace(line), nil
	case <-c.done:
		return "", ErrInterrupted
	}
}

// Interrupt unblocks any pending and future ReadLine. Safe to call more
// than once.
func (c *Console) Interrupt() {
	c.once.Do(func() { close(c.done) })
}

// Prompt prints msg on its own line and reads the reply.
func (c *Console) Prompt(msg string) (string, error) {
	c.Println(msg)
	return c.ReadLine()
}

func (c *Console) Println(a ...any) {
	fmt.Fprintln(c.out, a...)
}

func (c *Console) Printf(format string, a ...any) {
	fmt.Fprintf(c.out, format, a...)
}
