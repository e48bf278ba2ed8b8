// Package preview shows a rendered image in the terminal using half-block cells
// Each cell carries two vertically stacked pixels: '▀' in the upper color over the lower color
package preview

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// HalfBlock draws the upper pixel as foreground, the lower as background
const HalfBlock = '▀'

// Cell is one terminal cell of a Frame
type Cell struct {
	Upper tcell.Color
	Lower tcell.Color
}

// Frame is a downscaled image laid out in terminal cells
type Frame struct {
	Cols   int
	Rows   int
	Cells  []Cell
	Source image.Rectangle
}

func (f Frame) At(col, row int) Cell {
	return f.Cells[row*f.Cols+col]
}

// Fit scales img into at most cols x rows cells, preserving aspect ratio
// Half blocks make pixels roughly square, so the pixel grid is cols wide and 2*rows tall
func Fit(img image.Image, cols, rows int) Frame {
	bounds := img.Bounds()
	srcW, srcH := bounds.Dx(), bounds.Dy()
	if srcW <= 0 || srcH <= 0 || cols <= 0 || rows <= 0 {
		return Frame{Source: bounds}
	}

	gridW, gridH := cols, rows*2
	scale := min(float64(gridW)/float64(srcW), float64(gridH)/float64(srcH))
	outW := max(1, int(float64(srcW)*scale))
	outH := max(1, int(float64(srcH)*scale))

	f := Frame{
		Cols:   outW,
		Rows:   (outH + 1) / 2,
		Source: bounds,
	}
	f.Cells = make([]Cell, f.Cols*f.Rows)

	// Nearest sample at the center of the covered source region
	sample := func(x, y int) tcell.Color {
		if y >= outH {
			return tcell.ColorBlack
		}
		sx := bounds.Min.X + (x*srcW+srcW/2)/outW
		sy := bounds.Min.Y + (y*srcH+srcH/2)/outH
		return toTcell(img.At(sx, sy))
	}

	for row := 0; row < f.Rows; row++ {
		for col := 0; col < f.Cols; col++ {
			f.Cells[row*f.Cols+col] = Cell{
				Upper: sample(col, row*2),
				Lower: sample(col, row*2+1),
			}
		}
	}
	return f
}

func toTcell(c color.Color) tcell.Color {
	r, g, b, _ := c.RGBA()
	return tcell.NewRGBColor(int32(r>>8), int32(g>>8), int32(b>>8))
}

// Draw clears s and paints f centered, with caption on the last line when there is room
func Draw(s tcell.Screen, f Frame, caption string) {
	s.Clear()
	w, h := s.Size()

	offX := max(0, (w-f.Cols)/2)
	offY := max(0, (h-f.Rows)/2)

	for row := 0; row < f.Rows && row+offY < h; row++ {
		for col := 0; col < f.Cols && col+offX < w; col++ {
			c := f.At(col, row)
			style := tcell.StyleDefault.Foreground(c.Upper).Background(c.Lower)
			s.SetContent(col+offX, row+offY, HalfBlock, nil, style)
		}
	}

	if caption != "" && offY+f.Rows < h {
		style := tcell.StyleDefault.Foreground(tcell.ColorGray)
		x := max(0, (w-len(caption))/2)
		for i, r := range []rune(caption) {
			if x+i >= w {
				break
			}
			s.SetContent(x+i, h-1, r, nil, style)
		}
	}

	s.Show()
}

// Run shows img full screen until q, Esc or Ctrl-C, refitting on resize
func Run(img image.Image) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	defer screen.Fini()

	return loop(screen, img)
}

func loop(screen tcell.Screen, img image.Image) error {
	b := img.Bounds()
	caption := fmt.Sprintf("%dx%d  q to quit", b.Dx(), b.Dy())

	redraw := func() {
		w, h := screen.Size()
		// Keep one line free for the caption
		Draw(screen, Fit(img, w, h-1), caption)
	}
	redraw()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			redraw()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return nil
			case tcell.KeyRune:
				if ev.Rune() == 'q' || ev.Rune() == 'Q' {
					return nil
				}
			}
		}
	}
}
