package style

import "github.com/footprint-tools/terminus/internal/domain"

// Styler implements domain.Styler using the package-level style functions,
// so it follows Init.
type Styler struct{}

// NewStyler creates a new Styler instance.
func NewStyler() *Styler {
	return &Styler{}
}

func (s *Styler) Info(text string) string   { return Info(text) }
func (s *Styler) Header(text string) string { return Header(text) }

// NopStyler returns text unchanged.
type NopStyler struct{}

func (NopStyler) Info(text string) string   { return text }
func (NopStyler) Header(text string) string { return text }

var _ domain.Styler = (*Styler)(nil)
var _ domain.Styler = NopStyler{}
