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

// gradeSprint maps a grade's semantic color name to a terminal color.
var gradeSprint = map[string]func(a ...interface{}) string{
	"green":  color.New(color.FgGreen).SprintFunc(),
	"teal":   color.New(color.FgCyan).SprintFunc(),
	"yellow": color.New(color.FgYellow).SprintFunc(),
	"orange": color.New(color.FgHiYellow).SprintFunc(),
	"red":    color.New(color.FgRed).SprintFunc(),
}

func formatGradeWithColor(letter, colorName string) string {
	if sprint, ok := gradeSprint[colorName]; ok {
		return sprint(letter)
	}
	return letter
}

func formatHealthWithColor(status string) string {
	switch status {
	case "Excellent", "Good":
		return colorSuccess(status)
	case "Fair":
		return colorWarn(status)
	case "Poor":
		return colorError(status)
	default:
		return status
	}
}
