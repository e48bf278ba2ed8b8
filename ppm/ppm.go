// Package ppm reads and writes the plain-text (P3) portable pixmap format
//
// Layout written by Encode:
//
//	P3<TAB><width> <height><TAB>255
//	R G B
//	...
//
// One sample triplet per line, rows top to bottom, columns left to right
package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/lixenwraith/vi-tracer/render"
)

const (
	Magic    = "P3"
	MaxValue = 255

	// MaxPixels bounds width*height accepted by Decode
	MaxPixels = 1 << 26
)

var (
	ErrFormat = errors.New("ppm: malformed image")
	ErrRange  = errors.New("ppm: sample exceeds max value")
)

// Encode writes img as P3, buffering internally
func Encode(w io.Writer, img *render.Image) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "%s\t%d %d\t%d\n", Magic, img.Width, img.Height, MaxValue); err != nil {
		return err
	}

	// Reused scratch for one line: "255 255 255\n"
	line := make([]byte, 0, 12)
	for _, p := range img.Pix {
		line = strconv.AppendUint(line[:0], uint64(p.R), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(p.G), 10)
		line = append(line, ' ')
		line = strconv.AppendUint(line, uint64(p.B), 10)
		line = append(line, '\n')
		if _, err := bw.Write(line); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Decode reads a P3 image with any max value up to 255, rescaling samples to 8 bits
// Comments (# to end of line) are allowed between tokens
func Decode(r io.Reader) (*render.Image, error) {
	tr := &tokenReader{r: bufio.NewReader(r)}

	magic, err := tr.next()
	if err != nil {
		return nil, fmt.Errorf("%w: header: %v", ErrFormat, err)
	}
	if magic != Magic {
		return nil, fmt.Errorf("%w: magic %q, want %q", ErrFormat, magic, Magic)
	}

	width, err := tr.nextInt("width")
	if err != nil {
		return nil, err
	}
	height, err := tr.nextInt("height")
	if err != nil {
		return nil, err
	}
	maxVal, err := tr.nextInt("max value")
	if err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: size %dx%d", ErrFormat, width, height)
	}
	if width > MaxPixels/height {
		return nil, fmt.Errorf("%w: size %dx%d exceeds %d pixels", ErrFormat, width, height, MaxPixels)
	}
	if maxVal <= 0 || maxVal > MaxValue {
		return nil, fmt.Errorf("%w: max value %d", ErrFormat, maxVal)
	}

	img := render.NewImage(width, height)
	var rgb [3]int
	for i := range img.Pix {
		for c := range rgb {
			v, err := tr.nextInt("sample")
			if err != nil {
				return nil, fmt.Errorf("pixel %d: %w", i, err)
			}
			if v < 0 || v > maxVal {
				return nil, fmt.Errorf("%w: pixel %d sample %d > %d", ErrRange, i, v, maxVal)
			}
			rgb[c] = v * MaxValue / maxVal
		}
		img.Pix[i] = render.RGB{R: uint8(rgb[0]), G: uint8(rgb[1]), B: uint8(rgb[2])}
	}

	return img, nil
}

// tokenReader splits on whitespace and drops comments
type tokenReader struct {
	r   *bufio.Reader
	buf []byte
}

func (t *tokenReader) next() (string, error) {
	t.buf = t.buf[:0]
	for {
		b, err := t.r.ReadByte()
		if err != nil {
			if err == io.EOF && len(t.buf) > 0 {
				return string(t.buf), nil
			}
			return "", err
		}

		switch {
		case b == '#':
			if _, err := t.r.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
		case b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f':
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
		default:
			t.buf = append(t.buf, b)
		}
	}
}

func (t *tokenReader) nextInt(what string) (int, error) {
	tok, err := t.next()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return 0, fmt.Errorf("%w: %s: %v", ErrFormat, what, err)
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrFormat, what, tok)
	}
	return v, nil
}
