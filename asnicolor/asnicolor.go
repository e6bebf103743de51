// Package asnicolor colours console output.
package asnicolor

import "github.com/fatih/color"

var (
	Banner  = color.New(color.FgHiCyan).SprintFunc()
	Prompt  = color.New(color.FgHiBlue).SprintFunc()
	Label   = color.New(color.FgHiYellow).SprintFunc()
	Value   = color.New(color.FgGreen).SprintFunc()
	Success = color.New(color.FgHiGreen).SprintFunc()
	Warn    = color.New(color.FgYellow).SprintFunc()
	Fail    = color.New(color.FgRed, color.Bold).SprintFunc()
)

// SetEnabled switches colouring on or off for every helper.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled
}
