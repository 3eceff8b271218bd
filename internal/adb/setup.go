package adb

import (
	"context"
	"fmt"
	"strconv"

	"phonectl/internal/domain"
)

// USBDevices returns the ready devices adb can see, as candidates for setup.
func (c *Client) USBDevices(ctx context.Context) ([]domain.LiveDevice, error) {
	all, err := c.ListDevices(ctx)
	if err != nil {
		return nil, err
	}
	ready := make([]domain.LiveDevice, 0, len(all))
	for _, d := range all {
		if d.Ready() {
			ready = append(ready, d)
		}
	}
	return ready, nil
}

// EnableTCPIP restarts adbd on serial listening on port.
func (c *Client) EnableTCPIP(ctx context.Context, serial string, port int) error {
	_, err := c.execOn(ctx, serial, "tcpip", strconv.Itoa(port))
	return err
}

// DeviceIP reads the Wi-Fi IPv4 address of serial, trying `ip addr show wlan0`
// first and `ifconfig` when that fails.
func (c *Client) DeviceIP(ctx context.Context, serial string) (string, error) {
	out, err := c.execOn(ctx, serial, "shell", "ip", "addr", "show", "wlan0")
	if err != nil {
		out, err = c.execOn(ctx, serial, "shell", "ifconfig")
		if err != nil {
			return "", err
		}
	}
	ip := parseInetAddr(out)
	if ip == "" {
		return "", fmt.Errorf("%w on %s", ErrNoIP, serial)
	}
	return ip, nil
}
