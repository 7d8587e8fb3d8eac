package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderRate renders a whole percentage as a bar like [████░░░░]  45%.
// Green from 66%, yellow from 33%, red below.
func RenderRate(pct int, width int) string {
	pct = min(max(pct, 0), 100)
	width = max(width, 2)

	filled := pct * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := styleOK
	switch {
	case pct < 33:
		style = styleAlert
	case pct < 66:
		style = styleWarn
	}
	return fmt.Sprintf("[%s] %3d%%", paint(style, bar), pct)
}
