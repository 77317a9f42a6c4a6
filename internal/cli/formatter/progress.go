package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShare renders count as a fraction of total, like [████░░░░] 3.
func RenderShare(count, total, width int) string {
	if width < 2 {
		width = 2
	}
	filled := 0
	if total > 0 && count > 0 {
		filled = count * width / total
		if filled == 0 {
			filled = 1
		}
		if filled > width {
			filled = width
		}
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %d", StylePurple.Render(bar), count)
}
