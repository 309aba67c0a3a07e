package seeder

import (
	"io"

	"github.com/fatih/color"
)

// Logger writes the seeder's progress lines.
type Logger struct {
	out     io.Writer
	step    *color.Color
	success *color.Color
	info    *color.Color
}

// NewLogger writes to out, or to the terminal when out is nil.
func NewLogger(out io.Writer) *Logger {
	if out == nil {
		out = color.Output
	}
	return &Logger{
		out:     out,
		step:    color.New(color.FgCyan),
		success: color.New(color.FgGreen),
		info:    color.New(color.FgYellow),
	}
}

func (l *Logger) Step(format string, args ...interface{}) {
	l.step.Fprintf(l.out, format+"\n", args...)
}

func (l *Logger) Success(format string, args ...interface{}) {
	l.success.Fprintf(l.out, format+"\n", args...)
}

func (l *Logger) Info(format string, args ...interface{}) {
	l.info.Fprintf(l.out, format+"\n", args...)
}
