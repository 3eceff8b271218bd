package session_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"phonectl/internal/domain"
	"phonectl/internal/services/session"
	"phonectl/internal/store"
	"phonectl/internal/util/clock"
)

// fakeDriver brings an address online when Connect is called for it and it
// is listed in reachable.
type fakeDriver struct {
	reachable map[domain.Address]bool
	live      []domain.LiveDevice
	connects  []domain.Address
	lists     int
}

func (d *fakeDriver) ListDevices(context.Context) ([]domain.LiveDevice, error) {
	d.lists++
	return d.live, nil
}

func (d *fakeDriver) Connect(_ context.Context, addr domain.Address) error {
	d.connects = append(d.connects, addr)
	if !d.reachable[addr] {
		return errors.New("failed to connect")
	}
	d.live = append(d.live, domain.LiveDevice{Serial: addr.String(), State: domain.DeviceReady})
	return nil
}

func (d *fakeDriver) ScreenGeometry(context.Context) (domain.ScreenGeometry, error) {
	return domain.ScreenGeometry{Width: 1080, Height: 1920}, nil
}

func (d *fakeDriver) Inject(context.Context, domain.InputEvent) error { return nil }

type fixture struct {
	driver  *fakeDriver
	clock   *clock.Recorder
	devices *store.DeviceFileStore
	current *store.CurrentDeviceFileStore
	svc     *session.Service
}

func newFixture(t *testing.T, policy domain.MatchPolicy) *fixture {
	t.Helper()
	dir := t.TempDir()
	f := &fixture{
		driver:  &fakeDriver{reachable: map[domain.Address]bool{}},
		clock:   &clock.Recorder{},
		devices: store.NewDeviceFileStore(filepath.Join(dir, "devices")),
		current: store.NewCurrentDeviceFileStore(filepath.Join(dir, "current")),
	}
	f.svc = session.New(f.driver, f.devices, f.current, session.Config{Policy: policy, Clock: f.clock})
	return f
}

func TestConnected_NoCurrentDeviceSkipsDriver(t *testing.T) {
	f := newFixture(t, domain.MatchSubstring)
	require.False(t, f.svc.Connected(context.Background()))
	require.Zero(t, f.driver.lists)
}

func TestConnected_MatchPolicy(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.MatchSubstring)
	require.NoError(t, f.current.SetCurrentDevice("192.168.1.2"))
	f.driver.live = []domain.LiveDevice{{Serial: "192.168.1.23:5555", State: domain.DeviceReady}}

	require.True(t, f.svc.Connected(ctx), "substring matches a longer identifier")

	exact := session.NewMonitor(f.driver, f.current, domain.MatchExact)
	require.False(t, exact.Connected(ctx))

	require.NoError(t, f.current.SetCurrentDevice("192.168.1.23:5555"))
	require.True(t, exact.Connected(ctx))
}

func TestConnected_RequiresReadyState(t *testing.T) {
	f := newFixture(t, domain.MatchSubstring)
	require.NoError(t, f.current.SetCurrentDevice("10.0.0.5:5555"))
	f.driver.live = []domain.LiveDevice{{Serial: "10.0.0.5:5555", State: "offline"}}
	require.False(t, f.svc.Connected(context.Background()))
}

func TestReconnect_EmptyRegistryTerminates(t *testing.T) {
	f := newFixture(t, domain.MatchSubstring)

	ok, err := f.svc.Reconnect(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
	require.Empty(t, f.driver.connects)
	require.Empty(t, f.clock.Waits)
}

func TestReconnect_TriesEachAddressOnce(t *testing.T) {
	f := newFixture(t, domain.MatchSubstring)
	for _, a := range []domain.Address{"10.0.0.1:5555", "10.0.0.2:5555", "10.0.0.3:5555"} {
		_, err := f.devices.UpsertDevice(a, "")
		require.NoError(t, err)
	}

	ok, err := f.svc.Reconnect(context.Background())
	require.NoError(t, err)
	require.False(t, ok)
	require.ElementsMatch(t,
		[]domain.Address{"10.0.0.1:5555", "10.0.0.2:5555", "10.0.0.3:5555"}, f.driver.connects)
	require.Equal(t, []time.Duration{
		session.DefaultReconnectDelay, session.DefaultReconnectDelay, session.DefaultReconnectDelay,
	}, f.clock.Waits)

	_, has, err := f.current.CurrentDevice()
	require.NoError(t, err)
	require.False(t, has)
}

func TestReconnect_FirstSuccessBecomesCurrent(t *testing.T) {
	f := newFixture(t, domain.MatchSubstring)
	_, err := f.devices.UpsertDevice("10.0.0.1:5555", "dead")
	require.NoError(t, err)
	_, err = f.devices.UpsertDevice("10.0.0.2:5555", "phone")
	require.NoError(t, err)
	f.driver.reachable["10.0.0.2:5555"] = true

	ok, err := f.svc.Reconnect(context.Background())
	require.NoError(t, err)
	require.True(t, ok)

	cur, has, err := f.current.CurrentDevice()
	require.NoError(t, err)
	require.True(t, has)
	require.Equal(t, domain.Address("10.0.0.2:5555"), cur)
	require.LessOrEqual(t, len(f.driver.connects), 2)
}

func TestEnsure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.MatchSubstring)
	_, err := f.devices.UpsertDevice("10.0.0.9:5555", "phone")
	require.NoError(t, err)
	require.NoError(t, f.current.SetCurrentDevice("10.0.0.9:5555"))

	ok, err := f.svc.Ensure(ctx)
	require.NoError(t, err)
	require.False(t, ok)

	f.driver.reachable["10.0.0.9:5555"] = true
	ok, err = f.svc.Ensure(ctx)
	require.NoError(t, err)
	require.True(t, ok)

	connects := len(f.driver.connects)
	ok, err = f.svc.Ensure(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, f.driver.connects, connects, "already connected needs no reconnect")
}

func TestPair(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, domain.MatchSubstring)

	_, err := f.svc.Pair(ctx, "192.168.0.7:5555", "")
	require.Error(t, err)
	devices, err := f.devices.LoadDevices()
	require.NoError(t, err)
	require.Empty(t, devices)

	f.driver.reachable["192.168.0.7:5555"] = true
	label, err := f.svc.Pair(ctx, "192.168.0.7:5555", "")
	require.NoError(t, err)
	require.Equal(t, domain.Label("Device_1"), label)

	st, err := f.svc.Status(ctx)
	require.NoError(t, err)
	require.Equal(t, domain.SessionStatus{
		Current: "192.168.0.7:5555", HasDevice: true, Label: "Device_1", Connected: true,
	}, st)
}

func TestPair_DeviceNeverReady(t *testing.T) {
	f := newFixture(t, domain.MatchSubstring)
	f.driver.reachable["192.168.0.8:5555"] = true
	f.driver.live = nil

	d := &offlineDriver{fakeDriver: f.driver}
	svc := session.New(d, f.devices, f.current, session.Config{Clock: f.clock})
	_, err := svc.Pair(context.Background(), "192.168.0.8:5555", "tablet")
	require.ErrorIs(t, err, session.ErrNotConnected)
}

// offlineDriver accepts connections but never lists the device as ready.
type offlineDriver struct{ *fakeDriver }

func (d *offlineDriver) ListDevices(context.Context) ([]domain.LiveDevice, error) {
	return []domain.LiveDevice{{Serial: "192.168.0.8:5555", State: "unauthorized"}}, nil
}

func TestStatus_NoCurrentDevice(t *testing.T) {
	f := newFixture(t, domain.MatchSubstring)
	st, err := f.svc.Status(context.Background())
	require.NoError(t, err)
	require.False(t, st.HasDevice)
	require.Zero(t, f.driver.lists)
}
