package display

import (
	"fmt"
	"io"

	"github.com/AdmajaBahari/lirik/internal/player"
)

// Plain writes a line whenever either caption changes. Used when output is
// not a terminal.
type Plain struct {
	w           io.Writer
	lastMain    string
	lastSupport string
}

func NewPlain(w io.Writer) *Plain {
	return &Plain{w: w}
}

func (p *Plain) Draw(f player.Frame) error {
	if f.MainTarget != p.lastMain {
		if _, err := fmt.Fprintf(p.w, "[%.1fs] MAIN: '%s'\n", f.Elapsed.Seconds(), f.MainTarget); err != nil {
			return err
		}
		p.lastMain = f.MainTarget
	}
	if f.SupportTarget != p.lastSupport {
		if _, err := fmt.Fprintf(p.w, "[%.1fs] SUPPORT: '%s'\n", f.Elapsed.Seconds(), f.SupportTarget); err != nil {
			return err
		}
		p.lastSupport = f.SupportTarget
	}
	return nil
}
