package logger

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"

	"github.com/tempaccess/toggler/internal/colors"
)

var (
	stdout io.Writer = colorable.NewColorableStdout()
	stderr io.Writer = colorable.NewColorableStderr()
	tty              = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
)

// Logger is the struct that outputs colored log with namespace.
// Info and Print go to stdout, Warn and Error go to stderr.
// Colors are only emitted on a terminal, so CloudWatch Logs receive plain text.
type Logger struct {
	ns      string
	out     io.Writer
	err     io.Writer
	palette colors.Palette
}

func WithNamespace(ns string) *Logger {
	return &Logger{
		ns:      ns,
		out:     stdout,
		err:     stderr,
		palette: colors.Palette{Enabled: tty},
	}
}

// New() creates logger which writes to supplied writers without colors.
func New(ns string, out, err io.Writer) *Logger {
	return &Logger{
		ns:  ns,
		out: out,
		err: err,
	}
}

// Namespace() returns current namespace string.
func (l *Logger) Namespace() string {
	return l.ns
}

// AddNamespace() returns a copy of logger which has more namespace string on output log.
func (l *Logger) AddNamespace(ns string) *Logger {
	c := *l
	c.ns += "." + ns
	return &c
}

// Info() outputs information log with green color.
func (l *Logger) Info(message ...interface{}) {
	fmt.Fprintln(l.out, l.palette.Green("["+l.ns+":INFO] "+fmt.Sprint(message...)))
}

// Infof() outputs formatted information log with green color.
func (l *Logger) Infof(format string, args ...interface{}) {
	fmt.Fprint(l.out, l.palette.Green("["+l.ns+":INFO] "+fmt.Sprintf(format, args...)))
}

// Warn() outputs warning log with yellow color.
func (l *Logger) Warn(message ...interface{}) {
	fmt.Fprintln(l.err, l.palette.Yellow("["+l.ns+":WARN] "+fmt.Sprint(message...)))
}

// Warnf() outputs formatted warning log with yellow color.
func (l *Logger) Warnf(format string, args ...interface{}) {
	fmt.Fprint(l.err, l.palette.Yellow("["+l.ns+":WARN] "+fmt.Sprintf(format, args...)))
}

// Error() outputs error log with red color.
func (l *Logger) Error(message ...interface{}) {
	fmt.Fprintln(l.err, l.palette.Red("["+l.ns+":ERROR] "+fmt.Sprint(message...)))
}

// Errorf() outputs formatted error log with red color.
func (l *Logger) Errorf(format string, args ...interface{}) {
	fmt.Fprint(l.err, l.palette.Red("["+l.ns+":ERROR] "+fmt.Sprintf(format, args...)))
}

// Print() outputs log with default color.
func (l *Logger) Print(message ...interface{}) {
	fmt.Fprintln(l.out, "["+l.ns+"] "+fmt.Sprint(message...))
}

// Printf() outputs formatted log with default color.
func (l *Logger) Printf(format string, args ...interface{}) {
	fmt.Fprintf(l.out, "["+l.ns+"] "+format, args...)
}
