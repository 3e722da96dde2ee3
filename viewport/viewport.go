// Package viewport holds the scroll window into the display line sequence.
// Every operation saturates at the content bounds; none of them can fail.
package viewport

// Viewport tracks scroll offsets against the current layout's dimensions.
// Offsets are re-clamped whenever the content or window size changes, which
// can move them without an explicit scroll command.
type Viewport struct {
	YOffset int // first visible line index
	XOffset int // first visible column

	Height int
	Width  int

	totalLines int
	maxWidth   int
}

// SetSize records the window dimensions supplied on start or resize and
// re-clamps both offsets.
func (v *Viewport) SetSize(width, height int) {
	v.Width = width
	v.Height = height
	v.clamp()
}

// SetContent records the current layout's line count and widest line and
// re-clamps both offsets.
func (v *Viewport) SetContent(totalLines, maxWidth int) {
	v.totalLines = totalLines
	v.maxWidth = maxWidth
	v.clamp()
}

// Degenerate reports whether the window is too small to render.
func (v *Viewport) Degenerate() bool {
	return v.Height <= 0 || v.Width <= 0
}

// MaxYOffset returns the largest valid vertical offset.
func (v *Viewport) MaxYOffset() int {
	return max(0, v.totalLines-v.Height)
}

// MaxXOffset returns the largest valid horizontal offset.
func (v *Viewport) MaxXOffset() int {
	return max(0, v.maxWidth-v.Width)
}

// ScrollLines moves the window vertically by delta lines.
func (v *Viewport) ScrollLines(delta int) {
	v.YOffset += delta
	v.clamp()
}

// ScrollPages moves the window by delta pages. When half is true a page is
// half the window height, otherwise the full height.
func (v *Viewport) ScrollPages(delta int, half bool) {
	page := v.Height
	if half {
		page = v.Height / 2
	}
	if page < 1 {
		page = 1
	}
	v.ScrollLines(delta * page)
}

// ScrollToTop moves the window to the first line.
func (v *Viewport) ScrollToTop() {
	v.YOffset = 0
}

// ScrollToBottom moves the window to the last page of content.
func (v *Viewport) ScrollToBottom() {
	v.YOffset = v.MaxYOffset()
}

// ScrollHorizontal moves the window horizontally by delta columns.
func (v *Viewport) ScrollHorizontal(delta int) {
	v.XOffset += delta
	v.clamp()
}

// EnsureVisible makes the minimal vertical adjustment that brings the line
// into [YOffset, YOffset+Height).
func (v *Viewport) EnsureVisible(line int) {
	if v.Height <= 0 {
		return
	}
	if line < v.YOffset {
		v.YOffset = line
	} else if line >= v.YOffset+v.Height {
		v.YOffset = line - v.Height + 1
	}
	v.clamp()
}

// Contains reports whether the line is inside the window.
func (v *Viewport) Contains(line int) bool {
	return line >= v.YOffset && line < v.YOffset+v.Height
}

func (v *Viewport) clamp() {
	if v.Degenerate() {
		v.YOffset = 0
		v.XOffset = 0
		return
	}
	v.YOffset = min(max(0, v.YOffset), v.MaxYOffset())
	v.XOffset = min(max(0, v.XOffset), v.MaxXOffset())
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
