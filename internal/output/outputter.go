package output

import (
	"io"

	"github.com/footprint-tools/terminus/internal/domain"
)

// Outputter writes command results through a Formatter.
type Outputter struct {
	out       io.Writer
	formatter Formatter
}

// New creates an Outputter writing to out.
func New(out io.Writer, formatter Formatter) *Outputter {
	return &Outputter{out: out, formatter: formatter}
}

// Output renders data with the configured formatter.
func (o *Outputter) Output(data any) error {
	return o.formatter.Format(o.out, data)
}

// Verify Outputter implements domain.Outputter
var _ domain.Outputter = (*Outputter)(nil)
