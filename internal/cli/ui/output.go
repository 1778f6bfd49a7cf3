package ui

import (
	"fmt"
	"os"
)

// Print functions for consistent output

func Error(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorIcon, ErrorStyle.Render(fmt.Sprintf(format, args...)))
}

func Success(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", SuccessIcon, SuccessStyle.Render(fmt.Sprintf(format, args...)))
}

func Info(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", InfoIcon, InfoStyle.Render(fmt.Sprintf(format, args...)))
}

func Warning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", WarningIcon, WarningStyle.Render(fmt.Sprintf(format, args...)))
}

// OutputLine prints a formatted line to stdout
func OutputLine(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}

// Check prints a single doctor check result
func Check(ok bool, label string, detail string) {
	icon := SuccessIcon
	style := SuccessStyle
	if !ok {
		icon = ErrorIcon
		style = ErrorStyle
	}
	line := fmt.Sprintf("%s %s", icon, style.Render(label))
	if detail != "" {
		line += " " + DimStyle.Render(detail)
	}
	fmt.Println(line)
}
