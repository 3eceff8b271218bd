package adb

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"phonectl/internal/domain"
	domaintypes "phonectl/internal/domain/types"
)

// Inject sends one input event to the target device.
func (c *Client) Inject(ctx context.Context, ev domain.InputEvent) error {
	switch ev.Kind {
	case domaintypes.EventKey:
		_, err := c.shell(ctx, "input", "keyevent", ev.KeyCode)
		return err
	case domaintypes.EventText:
		_, err := c.shell(ctx, "input", "text", shellQuote(ev.Text))
		return err
	case domaintypes.EventSwipe:
		return c.swipe(ctx, ev.Points, ev.Duration)
	case domaintypes.EventStayAwake:
		_, err := c.shell(ctx, "svc", "power", "stayon", "true")
		return err
	}
	return fmt.Errorf("unsupported input event %v", ev.Kind)
}

// swipe drags through points. Two points use `input swipe`; longer paths are
// replayed as a DOWN/MOVE/UP motion event sequence with d between moves.
func (c *Client) swipe(ctx context.Context, points []domain.Point, d time.Duration) error {
	switch len(points) {
	case 0:
		return fmt.Errorf("swipe without points")
	case 2:
		args := []string{"input", "swipe"}
		args = append(args, coords(points[0])...)
		args = append(args, coords(points[1])...)
		if d > 0 {
			args = append(args, strconv.FormatInt(d.Milliseconds(), 10))
		}
		_, err := c.shell(ctx, args...)
		return err
	}

	if err := c.motion(ctx, "DOWN", points[0]); err != nil {
		return err
	}
	for _, p := range points[1:] {
		if err := c.clock.Sleep(ctx, d); err != nil {
			return err
		}
		if err := c.motion(ctx, "MOVE", p); err != nil {
			return err
		}
	}
	return c.motion(ctx, "UP", points[len(points)-1])
}

func (c *Client) motion(ctx context.Context, action string, p domain.Point) error {
	args := append([]string{"input", "motionevent", action}, coords(p)...)
	_, err := c.shell(ctx, args...)
	return err
}

func coords(p domain.Point) []string {
	return []string{strconv.Itoa(p.X), strconv.Itoa(p.Y)}
}

// shellQuote wraps s in single quotes for the device shell, which receives
// the adb shell arguments joined by spaces.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
