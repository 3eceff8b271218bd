package adb

import (
	"regexp"
	"strconv"
	"strings"

	"phonectl/internal/domain"
)

// DefaultGeometry is assumed when the display size cannot be read.
var DefaultGeometry = domain.ScreenGeometry{Width: 1080, Height: 1920}

var inetRe = regexp.MustCompile(`inet (?:addr:)?(\d+\.\d+\.\d+\.\d+)`)

// parseDevices parses `adb devices -l` output, skipping the header line.
func parseDevices(out string) []domain.LiveDevice {
	var devices []domain.LiveDevice
	lines := strings.Split(out, "\n")
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "List of devices") || strings.HasPrefix(line, "*") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		d := domain.LiveDevice{Serial: fields[0], State: domain.DeviceState(fields[1])}
		for _, f := range fields[2:] {
			if model, ok := strings.CutPrefix(f, "model:"); ok {
				d.Model = model
			}
		}
		devices = append(devices, d)
	}
	return devices
}

// connectSucceeded interprets `adb connect` stdout. adb exits 0 even when the
// connection fails, so the text is the only signal.
func connectSucceeded(out string) bool {
	out = strings.ToLower(out)
	if strings.Contains(out, "failed") || strings.Contains(out, "unable") {
		return false
	}
	return strings.Contains(out, "connected")
}

// parseDisplaySize finds the first "init=WxH" in dumpsys window output.
func parseDisplaySize(out string) (domain.ScreenGeometry, bool) {
	i := strings.Index(out, "init=")
	if i < 0 {
		return domain.ScreenGeometry{}, false
	}
	rest := out[i+len("init="):]
	if end := strings.IndexAny(rest, " \t\r\n"); end >= 0 {
		rest = rest[:end]
	}
	w, h, ok := strings.Cut(rest, "x")
	if !ok {
		return domain.ScreenGeometry{}, false
	}
	width, err := strconv.Atoi(w)
	if err != nil || width <= 0 {
		return domain.ScreenGeometry{}, false
	}
	height, err := strconv.Atoi(h)
	if err != nil || height <= 0 {
		return domain.ScreenGeometry{}, false
	}
	return domain.ScreenGeometry{Width: width, Height: height}, true
}

// parseInetAddr returns the first non-loopback IPv4 address in ip/ifconfig output.
func parseInetAddr(out string) string {
	for _, m := range inetRe.FindAllStringSubmatch(out, -1) {
		if !strings.HasPrefix(m[1], "127.") {
			return m[1]
		}
	}
	return ""
}
