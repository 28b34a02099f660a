// Package input turns a raw terminal byte stream into per-frame key presses.
package input

import (
	"bufio"
	"bytes"
	"unicode"
	"unicode/utf8"
)

// Input represents the current frame's input state.
// Every field reports presses that arrived since the previous frame.
type Input struct {
	Quit      bool   // q or Q
	Interrupt bool   // Ctrl-C
	Jump      bool   // Space, W, K or Up arrow
	Space     bool   // Space
	Enter     bool   // Enter or Return
	Backspace bool   // Backspace or Delete
	Escape    bool   // Lone Escape, not part of a sequence
	Typed     []rune // Printable characters and '\b' for erasures, in arrival order
	Pressed   []byte // Raw bytes, for activity tracking
	Closed    bool   // The stream reached EOF
}

// Stream delivers input bytes via a channel.
type Stream struct {
	ch     chan byte
	closed bool
	held   []byte // Unfinished escape sequence carried over one frame
}

// StartStream spawns a goroutine that reads from r and sends bytes to the stream.
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{ch: make(chan byte, 128)}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// ReadInput drains all available bytes from the stream (non-blocking).
// An escape sequence cut off at the end of the frame is held back until more
// bytes arrive. A frame with nothing new parses it as it is, so a lone Escape
// still registers one frame later.
func ReadInput(s *Stream) Input {
	buf := s.held
	held := len(buf)
	s.held = nil

drain:
	for !s.closed {
		select {
		case b, ok := <-s.ch:
			if !ok {
				s.closed = true
				break drain
			}
			buf = append(buf, b)
		default:
			break drain
		}
	}

	if n := unfinishedEscape(buf); n > 0 && len(buf) > held && !s.closed {
		s.held = append([]byte(nil), buf[len(buf)-n:]...)
		buf = buf[:len(buf)-n]
	}

	in := Parse(buf)
	in.Closed = s.closed
	return in
}

// Parse decodes one frame's worth of raw bytes.
func Parse(buf []byte) Input {
	in := Input{Pressed: buf}

	for i := 0; i < len(buf); {
		b := buf[i]

		if b == '\x1b' {
			n := escapeLen(buf[i:])
			if n == 1 {
				in.Escape = true
			} else if n == 3 && buf[i+2] == 'A' { // Up arrow
				in.Jump = true
			}
			i += n
			continue
		}

		switch b {
		case 0x03:
			in.Interrupt = true
		case '\r', '\n':
			in.Enter = true
		case '\b', 0x7f:
			in.Backspace = true
			in.Typed = append(in.Typed, '\b')
		case ' ':
			in.Space = true
			in.Jump = true
		case 'w', 'W', 'k', 'K':
			in.Jump = true
		case 'q', 'Q':
			in.Quit = true
		}

		r, size := utf8.DecodeRune(buf[i:])
		if r != utf8.RuneError && unicode.IsPrint(r) {
			in.Typed = append(in.Typed, r)
		}
		i += size
	}

	return in
}

// escapeLen returns how many bytes of buf belong to the escape sequence at its
// start. A lone ESC is 1. CSI and SS3 sequences run to their final byte.
func escapeLen(buf []byte) int {
	if len(buf) < 2 || (buf[1] != '[' && buf[1] != 'O') {
		return 1
	}
	if buf[1] == 'O' {
		return min(3, len(buf))
	}
	for j := 2; j < len(buf); j++ {
		if final(buf[j]) {
			return j + 1
		}
	}
	return len(buf)
}

// unfinishedEscape returns the length of an escape sequence at the end of buf
// that is still missing its final byte, or 0.
func unfinishedEscape(buf []byte) int {
	i := bytes.LastIndexByte(buf, '\x1b')
	if i < 0 {
		return 0
	}
	tail := buf[i:]
	switch {
	case len(tail) == 1:
		return 1
	case tail[1] == 'O' && len(tail) < 3:
		return len(tail)
	case tail[1] == '[':
		for _, b := range tail[2:] {
			if final(b) {
				return 0
			}
		}
		return len(tail)
	}
	return 0
}

func final(b byte) bool {
	return b >= 0x40 && b <= 0x7e
}
