// Package input reads player input from the terminal and maps it to intents.
package input

import (
	"bufio"
	"io"
	"log"
	"os"
	"strings"

	"golang.org/x/term"
)

var stdinReader *bufio.Reader

// GetInput reads a line of input from stdin. Returns "quit" on end of input.
func GetInput() string {
	if stdinReader == nil {
		stdinReader = bufio.NewReader(os.Stdin)
	}

	line, err := stdinReader.ReadString('\n')
	if err != nil {
		if err != io.EOF {
			log.Printf("Cannot read stdin: %v", err)
		}
		if line == "" {
			return "quit"
		}
	}

	return strings.ToLower(strings.TrimSpace(line))
}

// keyChunkSize bounds one raw read. Terminals deliver a whole escape
// sequence in a single read, so a lone ESC arrives as a 1-byte chunk.
const keyChunkSize = 8

// byteFeeder returns a next-byte function over bs that reports io.EOF once drained
func byteFeeder(bs []byte) func() (byte, error) {
	return func() (byte, error) {
		if len(bs) == 0 {
			return 0, io.EOF
		}
		b := bs[0]
		bs = bs[1:]
		return b, nil
	}
}

// decodeChunk names the key in one raw read. An empty chunk means end of input.
func decodeChunk(chunk []byte) string {
	if len(chunk) == 0 {
		return "quit"
	}
	return decodeKey(chunk[0], byteFeeder(chunk[1:]))
}

// decodeEscape names the key behind an escape sequence. next supplies the
// bytes following ESC. Unknown sequences decode to "escape".
func decodeEscape(next func() (byte, error)) string {
	b2, err := next()
	if err != nil {
		return "escape"
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "escape"
	}

	b3, err := next()
	if err != nil {
		return "escape"
	}

	switch b3 {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return "escape"
}

// decodeKey turns the first byte of a key press into a code
func decodeKey(b byte, next func() (byte, error)) string {
	switch {
	case b == 0x1b:
		return decodeEscape(next)
	case b == 3 || b == 4: // Ctrl+C, Ctrl+D
		return "quit"
	case b == '\n' || b == '\r':
		return "enter"
	case b == ' ':
		return "space"
	case b >= 32 && b < 127:
		return strings.ToLower(string(b))
	}
	return ""
}

// GetKey reads a single key press. Arrow keys are returned as "arrow_up" etc.
// When stdin is not a terminal it falls back to reading whole lines.
func GetKey() string {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return GetInput()
	}

	// Reset the buffered reader to avoid conflicts with raw mode
	stdinReader = nil

	oldState, err := term.MakeRaw(fd)
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(fd, oldState)

	buf := make([]byte, keyChunkSize)
	n, err := os.Stdin.Read(buf)
	if err != nil {
		return "quit"
	}

	return decodeChunk(buf[:n])
}
