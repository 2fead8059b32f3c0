package output

import (
	"fmt"
	"strings"
)

// RatioBar renders a visual bar for a 0..1 ratio.
// Example: "████████░░░░░░░░░░░░ 40%"
func RatioBar(ratio float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int(ratio * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := fmt.Sprintf("%.0f%%", ratio*100)
	return fmt.Sprintf("%s %s", StyleHeader.Render(bar), StyleMuted.Render(pct))
}

// TrendArrow returns a styled trend indicator for a delta value.
// Positive delta shows an up arrow, negative shows down, zero shows a dash.
// higherIsBetter picks which direction renders as an improvement.
func TrendArrow(delta float64, higherIsBetter bool) string {
	if delta == 0 {
		return StyleMuted.Render("─")
	}

	isPositive := delta > 0
	isImproved := (isPositive && higherIsBetter) || (!isPositive && !higherIsBetter)

	var arrow string
	if isPositive {
		arrow = fmt.Sprintf("▲ +%.2f", delta)
	} else {
		arrow = fmt.Sprintf("▼ %.2f", delta)
	}

	if isImproved {
		return StyleSuccess.Render(arrow)
	}
	return StyleError.Render(arrow)
}

// Metric renders one aligned label/value line for a summary block.
func Metric(label, value string) string {
	return fmt.Sprintf(" %s %s", StyleLabel.Render(label), StyleBold.Render(value))
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
