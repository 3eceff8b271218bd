package adb

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"phonectl/internal/domain"
	"phonectl/internal/util/clock"
)

// DefaultBinary is the adb executable looked up on PATH.
const DefaultBinary = "adb"

var (
	// ErrConnectFailed is returned when adb connect does not report a connection.
	ErrConnectFailed = errors.New("adb connect failed")
	// ErrNoIP is returned when no Wi-Fi address could be read from the device.
	ErrNoIP = errors.New("could not detect device IP address")
)

// Runner executes name with args and returns its stdout and stderr.
type Runner func(ctx context.Context, name string, args ...string) (stdout, stderr []byte, err error)

// Client drives a device through the adb binary.
type Client struct {
	Bin    string
	Serial string

	run   Runner
	clock clock.Clock
}

// New returns a Client running bin (DefaultBinary when empty).
func New(bin string) *Client {
	if bin == "" {
		bin = DefaultBinary
	}
	return &Client{Bin: bin, run: execRunner, clock: clock.Real{}}
}

// NewWithRunner returns a Client that executes commands through run.
func NewWithRunner(bin string, run Runner) *Client {
	c := New(bin)
	c.run = run
	return c
}

// WithSerial returns a copy of c whose shell commands target serial.
func (c *Client) WithSerial(serial string) *Client {
	cp := *c
	cp.Serial = serial
	return &cp
}

// WithClock returns a copy of c that waits between motion events on clk.
func (c *Client) WithClock(clk clock.Clock) *Client {
	cp := *c
	cp.clock = clk
	return &cp
}

func execRunner(ctx context.Context, name string, args ...string) ([]byte, []byte, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	return stdout.Bytes(), stderr.Bytes(), err
}

// exec runs adb with args and returns stdout.
func (c *Client) exec(ctx context.Context, args ...string) (string, error) {
	stdout, stderr, err := c.run(ctx, c.Bin, args...)
	if err != nil {
		return string(stdout), fmt.Errorf("adb %s: %w: %s",
			strings.Join(args, " "), err, strings.TrimSpace(string(stderr)))
	}
	return string(stdout), nil
}

// shell runs an adb shell command on the target device.
func (c *Client) shell(ctx context.Context, args ...string) (string, error) {
	return c.execOn(ctx, c.Serial, append([]string{"shell"}, args...)...)
}

// execOn runs adb with args against serial, or the default device when empty.
func (c *Client) execOn(ctx context.Context, serial string, args ...string) (string, error) {
	if serial != "" {
		args = append([]string{"-s", serial}, args...)
	}
	return c.exec(ctx, args...)
}

// Available reports whether the adb binary runs.
func (c *Client) Available(ctx context.Context) bool {
	_, err := c.exec(ctx, "version")
	return err == nil
}

// ListDevices returns every device adb knows about with its state.
func (c *Client) ListDevices(ctx context.Context) ([]domain.LiveDevice, error) {
	out, err := c.exec(ctx, "devices", "-l")
	if err != nil {
		return nil, err
	}
	return parseDevices(out), nil
}

// Connect asks adb to connect to addr over TCP/IP.
func (c *Client) Connect(ctx context.Context, addr domain.Address) error {
	out, err := c.exec(ctx, "connect", addr.String())
	if err != nil {
		return err
	}
	if !connectSucceeded(out) {
		return fmt.Errorf("%w: %s", ErrConnectFailed, strings.TrimSpace(out))
	}
	return nil
}

// ScreenGeometry returns the display size, falling back to 1080x1920 when the
// size cannot be parsed.
func (c *Client) ScreenGeometry(ctx context.Context) (domain.ScreenGeometry, error) {
	out, err := c.shell(ctx, "dumpsys", "window", "displays")
	if err != nil {
		return domain.ScreenGeometry{}, err
	}
	g, ok := parseDisplaySize(out)
	if !ok {
		return DefaultGeometry, nil
	}
	return g, nil
}

// Compile-time assertions that Client implements the driver interfaces.
var (
	_ domain.DeviceDriver = (*Client)(nil)
	_ domain.SetupDriver  = (*Client)(nil)
)
