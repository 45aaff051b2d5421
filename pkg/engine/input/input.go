package input

import (
	"io"
	"os"
	"unicode"

	"golang.org/x/term"
)

// fileByteReader reads stdin one byte at a time so nothing typed after the
// current key is buffered away between calls
type fileByteReader struct {
	f *os.File
}

func (r fileByteReader) ReadByte() (byte, error) {
	buf := make([]byte, 1)
	if _, err := r.f.Read(buf); err != nil {
		return 0, err
	}
	return buf[0], nil
}

// ReadKey reads a single key press from f and returns its code. When f is
// a terminal it is put into raw mode for the duration of the read so arrow
// keys and single letters return without Enter.
func ReadKey(f *os.File) (string, error) {
	fd := int(f.Fd())
	if term.IsTerminal(fd) {
		oldState, err := term.MakeRaw(fd)
		if err != nil {
			return "", err
		}
		defer term.Restore(fd, oldState)
	}
	return decodeKey(fileByteReader{f: f})
}

// decodeKey reads one key from r. Arrow keys (CSI and SS3 sequences) become
// arrow_up, arrow_down, arrow_left and arrow_right; Enter is "enter"; Ctrl+C
// is "ctrl_c"; printable characters are returned lower-cased. Anything else
// yields an empty code.
func decodeKey(r io.ByteReader) (string, error) {
	b1, err := r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b1 == 0x1b:
		return decodeEscape(r)
	case b1 == 3:
		return "ctrl_c", nil
	case b1 == '\n' || b1 == '\r':
		return "enter", nil
	case b1 >= 32 && b1 < 127:
		return string(unicode.ToLower(rune(b1))), nil
	default:
		return "", nil
	}
}

func decodeEscape(r io.ByteReader) (string, error) {
	b2, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			return "escape", nil
		}
		return "", err
	}
	if b2 != '[' && b2 != 'O' {
		return "escape", nil
	}

	b3, err := r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	// Unknown escape sequence, discard it
	return "", nil
}
