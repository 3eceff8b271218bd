package adb

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"phonectl/internal/domain"
	domaintypes "phonectl/internal/domain/types"
	"phonectl/internal/util/clock"
)

type call struct {
	name string
	args []string
}

// fakeADB records invocations and answers by the joined argument string.
type fakeADB struct {
	calls   []call
	outputs map[string]string
	fail    map[string]bool
}

func (f *fakeADB) run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, call{name: name, args: args})
	key := strings.Join(args, " ")
	if f.fail[key] {
		return nil, []byte("error: device offline"), errors.New("exit status 1")
	}
	return []byte(f.outputs[key]), nil, nil
}

func (f *fakeADB) commands() []string {
	out := make([]string, len(f.calls))
	for i, c := range f.calls {
		out[i] = strings.Join(c.args, " ")
	}
	return out
}

func TestParseDevices(t *testing.T) {
	out := "List of devices attached\n" +
		"R58M123ABC             device usb:1-1 product:a51 model:SM_A515F device:a51 transport_id:1\n" +
		"192.168.1.20:5555      offline\n" +
		"emulator-5554          unauthorized\n" +
		"\n"
	got := parseDevices(out)
	require.Equal(t, []domain.LiveDevice{
		{Serial: "R58M123ABC", State: domaintypes.DeviceReady, Model: "SM_A515F"},
		{Serial: "192.168.1.20:5555", State: "offline"},
		{Serial: "emulator-5554", State: "unauthorized"},
	}, got)
	require.True(t, got[0].Ready())
	require.False(t, got[1].Ready())
}

func TestConnectSucceeded(t *testing.T) {
	require.True(t, connectSucceeded("connected to 192.168.1.20:5555\n"))
	require.True(t, connectSucceeded("already connected to 192.168.1.20:5555\n"))
	require.False(t, connectSucceeded("failed to connect to '192.168.1.20:5555': Connection refused\n"))
	require.False(t, connectSucceeded("unable to connect to 192.168.1.20:5555"))
	require.False(t, connectSucceeded(""))
}

func TestParseDisplaySize(t *testing.T) {
	g, ok := parseDisplaySize("Display: mDisplayId=0\n  init=1440x3040 560dpi cur=1440x3040 app=1440x2960\n")
	require.True(t, ok)
	require.Equal(t, domain.ScreenGeometry{Width: 1440, Height: 3040}, g)

	_, ok = parseDisplaySize("no size here")
	require.False(t, ok)
	_, ok = parseDisplaySize("init=axb ")
	require.False(t, ok)
}

func TestParseInetAddr(t *testing.T) {
	ip := "3: wlan0: <BROADCAST,MULTICAST,UP>\n    inet 192.168.1.20/24 brd 192.168.1.255 scope global wlan0\n"
	require.Equal(t, "192.168.1.20", parseInetAddr(ip))

	ifconfig := "lo Link encap:Local Loopback\n inet addr:127.0.0.1 Mask:255.0.0.0\n" +
		"wlan0 Link encap:UNSPEC\n inet addr:10.0.0.7 Bcast:10.0.0.255\n"
	require.Equal(t, "10.0.0.7", parseInetAddr(ifconfig))
	require.Empty(t, parseInetAddr("nothing"))
}

func TestScreenGeometry_FallsBackToDefault(t *testing.T) {
	f := &fakeADB{outputs: map[string]string{"-s dev shell dumpsys window displays": "garbage"}}
	c := NewWithRunner("adb", f.run).WithSerial("dev")

	g, err := c.ScreenGeometry(context.Background())
	require.NoError(t, err)
	require.Equal(t, DefaultGeometry, g)
}

func TestConnect(t *testing.T) {
	f := &fakeADB{outputs: map[string]string{
		"connect 1.2.3.4:5555": "connected to 1.2.3.4:5555",
		"connect 1.2.3.5:5555": "failed to connect to 1.2.3.5:5555",
	}}
	c := NewWithRunner("adb", f.run)

	require.NoError(t, c.Connect(context.Background(), "1.2.3.4:5555"))
	require.ErrorIs(t, c.Connect(context.Background(), "1.2.3.5:5555"), ErrConnectFailed)
	require.Equal(t, "adb", f.calls[0].name)
}

func TestInject_RendersEvents(t *testing.T) {
	f := &fakeADB{}
	c := NewWithRunner("adb", f.run).WithSerial("192.168.1.20:5555")
	ctx := context.Background()

	events := []domain.InputEvent{
		{Kind: domaintypes.EventKey, KeyCode: domaintypes.KeyWakeUp},
		{Kind: domaintypes.EventSwipe, Points: []domain.Point{{X: 540, Y: 1536}, {X: 540, Y: 384}}},
		{Kind: domaintypes.EventText, Text: "1234"},
		{Kind: domaintypes.EventSwipe, Points: []domain.Point{{X: 1, Y: 2}, {X: 3, Y: 4}, {X: 5, Y: 6}}},
		{Kind: domaintypes.EventStayAwake},
	}
	for _, ev := range events {
		require.NoError(t, c.Inject(ctx, ev))
	}

	p := "-s 192.168.1.20:5555 shell "
	require.Equal(t, []string{
		p + "input keyevent KEYCODE_WAKEUP",
		p + "input swipe 540 1536 540 384",
		p + "input text '1234'",
		p + "input motionevent DOWN 1 2",
		p + "input motionevent MOVE 3 4",
		p + "input motionevent MOVE 5 6",
		p + "input motionevent UP 5 6",
		p + "svc power stayon true",
	}, f.commands())
}

func TestInject_TextIsQuotedForDeviceShell(t *testing.T) {
	cases := map[string]string{
		"pa$$&w0rd;reboot": `'pa$$&w0rd;reboot'`,
		`it's"(x)"`:        `'it'\''s"(x)"'`,
		"`id`|cat>f":       "'`id`|cat>f'",
	}
	for text, want := range cases {
		f := &fakeADB{}
		c := NewWithRunner("adb", f.run)

		require.NoError(t, c.Inject(context.Background(), domain.InputEvent{Kind: domaintypes.EventText, Text: text}))
		require.Len(t, f.calls, 1)
		require.Equal(t, []string{"shell", "input", "text", want}, f.calls[0].args)
	}
}

func TestInject_MotionWaitsSegmentBetweenMoves(t *testing.T) {
	f := &fakeADB{}
	rec := &clock.Recorder{}
	c := NewWithRunner("adb", f.run).WithClock(rec)

	err := c.Inject(context.Background(), domain.InputEvent{
		Kind:     domaintypes.EventSwipe,
		Points:   []domain.Point{{X: 1, Y: 1}, {X: 2, Y: 2}, {X: 3, Y: 3}, {X: 4, Y: 4}},
		Duration: 100 * time.Millisecond,
	})
	require.NoError(t, err)
	require.Len(t, f.calls, 5)
	require.Equal(t, []time.Duration{100 * time.Millisecond, 100 * time.Millisecond, 100 * time.Millisecond}, rec.Waits)
}

func TestInject_ErrorCarriesStderr(t *testing.T) {
	f := &fakeADB{fail: map[string]bool{"shell input text '1'": true}}
	c := NewWithRunner("adb", f.run)

	err := c.Inject(context.Background(), domain.InputEvent{Kind: domaintypes.EventText, Text: "1"})
	require.Error(t, err)
	require.Contains(t, err.Error(), "device offline")
}

func TestDeviceIP_FallsBackToIfconfig(t *testing.T) {
	f := &fakeADB{
		fail:    map[string]bool{"-s USB1 shell ip addr show wlan0": true},
		outputs: map[string]string{"-s USB1 shell ifconfig": "wlan0 inet addr:192.168.0.9 Bcast"},
	}
	c := NewWithRunner("adb", f.run)

	ip, err := c.DeviceIP(context.Background(), "USB1")
	require.NoError(t, err)
	require.Equal(t, "192.168.0.9", ip)
}

func TestUSBDevices_OnlyReady(t *testing.T) {
	f := &fakeADB{outputs: map[string]string{
		"devices -l": "List of devices attached\nA device model:Pixel_7\nB unauthorized\n",
	}}
	got, err := NewWithRunner("adb", f.run).USBDevices(context.Background())
	require.NoError(t, err)
	require.Equal(t, []domain.LiveDevice{{Serial: "A", State: domaintypes.DeviceReady, Model: "Pixel_7"}}, got)
}
