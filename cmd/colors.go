package cmd

import (
	"github.com/fatih/color"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

// colorForScore picks the severity color for a 0-100 score.
func colorForScore(score int) func(a ...interface{}) string {
	switch {
	case score >= 80:
		return colorSuccess
	case score >= 50:
		return colorWarn
	default:
		return colorError
	}
}

// colorForGrade maps an SSL grade to a severity color.
func colorForGrade(grade string) func(a ...interface{}) string {
	switch grade {
	case "A+", "A":
		return colorSuccess
	case "B", "C":
		return colorWarn
	default:
		return colorError
	}
}
