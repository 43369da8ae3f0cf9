package render

import "image/color"

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		base := i * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// Frame is a CPU-side RGBA image of a cell grid, one pixel per cell.
type Frame struct {
	W, H int
	Pix  []byte
}

// NewFrame allocates a frame for a w x h grid.
func NewFrame(w, h int) *Frame {
	return &Frame{W: w, H: h, Pix: make([]byte, 4*w*h)}
}

// Fill paints cells into the frame. It reports false and leaves the frame
// untouched when the cell count does not match the frame size.
func (f *Frame) Fill(cells []uint8, on, off color.Color) bool {
	if len(cells) != f.W*f.H {
		return false
	}
	fillBinaryRGBA(f.Pix, cells, on, off)
	return true
}
