package calc

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/pkg/errors"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code.
type Reporter interface {
	Report(err error)
	Reset()
	HadError() bool
	HadRuntimeError() bool
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer        io.Writer
	paint         *color.Color
	hadErr        bool
	hadRuntimeErr bool
}

// NewSimpleReporter creates a reporter that writes plain text.
func NewSimpleReporter(writer io.Writer) Reporter {
	return &SimpleReporter{writer: writer}
}

// NewColorReporter creates a reporter that paints every error red. Unless
// force is set, color is only used when color.NoColor allows it, i.e. when
// stdout is a terminal and NO_COLOR is unset.
func NewColorReporter(writer io.Writer, force bool) Reporter {
	paint := color.New(color.FgRed)
	if force {
		paint.EnableColor()
	}
	return &SimpleReporter{writer: writer, paint: paint}
}

func (reporter *SimpleReporter) Report(err error) {
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
	if reporter.paint != nil {
		reporter.paint.Fprintln(reporter.writer, err)
		return
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}
