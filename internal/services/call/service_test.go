package call_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"phonectl/internal/domain"
	domaintypes "phonectl/internal/domain/types"
	"phonectl/internal/services/call"
)

type recordingDriver struct {
	events []domain.InputEvent
	err    error
}

func (d *recordingDriver) ListDevices(context.Context) ([]domain.LiveDevice, error) { return nil, nil }
func (d *recordingDriver) Connect(context.Context, domain.Address) error            { return nil }

func (d *recordingDriver) ScreenGeometry(context.Context) (domain.ScreenGeometry, error) {
	return domain.ScreenGeometry{Width: 1080, Height: 1920}, nil
}

func (d *recordingDriver) Inject(_ context.Context, ev domain.InputEvent) error {
	d.events = append(d.events, ev)
	return d.err
}

func TestAnswer(t *testing.T) {
	drv := &recordingDriver{}
	require.NoError(t, call.New(drv).Answer(context.Background()))

	require.Len(t, drv.events, 1)
	require.Equal(t, domaintypes.EventSwipe, drv.events[0].Kind)
	require.Equal(t, []domain.Point{{X: 500, Y: 1600}, {X: 500, Y: 1000}}, drv.events[0].Points)
}

func TestEnd(t *testing.T) {
	drv := &recordingDriver{}
	require.NoError(t, call.New(drv).End(context.Background()))

	require.Len(t, drv.events, 1)
	require.Equal(t, domaintypes.EventKey, drv.events[0].Kind)
	require.Equal(t, domaintypes.KeyEndCall, drv.events[0].KeyCode)
}

func TestEnd_DriverError(t *testing.T) {
	drv := &recordingDriver{err: errors.New("device offline")}
	err := call.New(drv).End(context.Background())
	require.ErrorContains(t, err, "device offline")
}
