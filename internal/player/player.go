// Package player drives a karaoke session: it paces frames with a clock and
// hands each one to a display surface.
package player

import (
	"context"
	"fmt"

	"github.com/AdmajaBahari/lirik/internal/clock"
	"github.com/AdmajaBahari/lirik/internal/logging"
)

// Surface displays frames.
type Surface interface {
	Draw(frame Frame) error
}

// Run plays the session until its duration has elapsed, drawing one frame
// every FrameInterval. It returns early with the error of a failed Draw or
// a cancelled ctx.
func Run(
	ctx context.Context,
	session *Session,
	clk clock.Clock,
	surface Surface,
	logger *logging.Logger,
) error {
	start := clk.Now()
	total := session.Duration()

	var lastMain, lastSupport string

	for {
		now := clk.Now()
		elapsed := now.Sub(start)
		if elapsed > total {
			break
		}

		frame := session.Frame(elapsed, now)

		if frame.MainTarget != lastMain {
			logger.Debugw("Main caption changed",
				"at", fmt.Sprintf("%.1fs", elapsed.Seconds()),
				"text", frame.MainTarget,
			)
			lastMain = frame.MainTarget
		}
		if frame.SupportTarget != lastSupport {
			logger.Debugw("Support caption changed",
				"at", fmt.Sprintf("%.1fs", elapsed.Seconds()),
				"text", frame.SupportTarget,
			)
			lastSupport = frame.SupportTarget
		}

		if err := surface.Draw(frame); err != nil {
			return fmt.Errorf("failed to draw frame: %w", err)
		}

		if err := clk.Sleep(ctx, FrameInterval); err != nil {
			return err
		}
	}

	logger.Debugw("Session finished",
		"duration", total.String(),
	)

	return nil
}
