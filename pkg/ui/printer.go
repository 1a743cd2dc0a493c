package ui

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/payload/pkg/errors"
)

// Printer writes user-facing messages in the active format. Commands print
// through it instead of touching stdout directly so piped output stays
// machine-friendly.
type Printer struct {
	format Format
	out    io.Writer
}

// NewPrinter creates a Printer for stdout, resolving FormatAuto.
func NewPrinter(format Format) *Printer {
	return &Printer{
		format: DetectFormat(format, os.Stdout),
		out:    os.Stdout,
	}
}

// NewPrinterTo creates a Printer for an arbitrary writer, used in tests.
func NewPrinterTo(format Format, out io.Writer) *Printer {
	return &Printer{format: format, out: out}
}

// Format returns the resolved output format.
func (p *Printer) Format() Format { return p.format }

// Success reports a completed operation.
func (p *Printer) Success(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if p.format == FormatTerminal {
		fmt.Fprintln(p.out, pterm.Success.Sprint(msg))
		return
	}
	fmt.Fprintln(p.out, msg)
}

// Info reports progress.
func (p *Printer) Info(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if p.format == FormatTerminal {
		fmt.Fprintln(p.out, pterm.Info.Sprint(msg))
		return
	}
	fmt.Fprintln(p.out, msg)
}

// Plain writes a line with no decoration in any format.
func (p *Printer) Plain(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// JSON writes v as indented JSON.
func (p *Printer) JSON(v interface{}) error {
	enc := json.NewEncoder(p.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// RenderError formats an error for the user, surfacing the error code when
// the error carries one.
func RenderError(err error) string {
	var perr *errors.PayloadError
	if stderrors.As(err, &perr) {
		return fmt.Sprintf("%s %s %s",
			pterm.Error.Prefix.Text,
			pterm.Error.MessageStyle.Sprint(string(perr.Code)),
			perr.Message)
	}
	return fmt.Sprintf("%s %s", pterm.Error.Prefix.Text, err.Error())
}
