package unlock_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"phonectl/internal/domain"
	domaintypes "phonectl/internal/domain/types"
	"phonectl/internal/services/unlock"
	"phonectl/internal/services/vault"
	"phonectl/internal/util/clock"
)

type fakeVault struct {
	cred domain.Credential
	err  error
}

func (v fakeVault) SaveCredential(domain.Credential) error     { return nil }
func (v fakeVault) LoadCredential() (domain.Credential, error) { return v.cred, v.err }
func (v fakeVault) Status() (domain.VaultStatus, error)        { return domain.VaultStatus{}, nil }

type recordingDriver struct {
	events []domain.InputEvent
	failAt int
}

func (d *recordingDriver) ListDevices(context.Context) ([]domain.LiveDevice, error) { return nil, nil }
func (d *recordingDriver) Connect(context.Context, domain.Address) error            { return nil }

func (d *recordingDriver) ScreenGeometry(context.Context) (domain.ScreenGeometry, error) {
	return domain.ScreenGeometry{Width: 1080, Height: 1920}, nil
}

func (d *recordingDriver) Inject(_ context.Context, ev domain.InputEvent) error {
	d.events = append(d.events, ev)
	if d.failAt > 0 && len(d.events) == d.failAt {
		return errors.New("device offline")
	}
	return nil
}

func kinds(events []domain.InputEvent) []domain.InputEventKind {
	out := make([]domain.InputEventKind, len(events))
	for i, ev := range events {
		out[i] = ev.Kind
	}
	return out
}

func TestUnlock_PIN(t *testing.T) {
	drv := &recordingDriver{}
	rec := &clock.Recorder{}
	svc := unlock.New(fakeVault{cred: domain.Credential{Kind: domain.CredentialPIN, Secret: "12 34"}}, drv, rec)

	require.NoError(t, svc.Unlock(context.Background()))
	require.Equal(t, []domain.InputEventKind{
		domaintypes.EventKey, domaintypes.EventSwipe, domaintypes.EventText,
		domaintypes.EventKey, domaintypes.EventKey, domaintypes.EventStayAwake,
	}, kinds(drv.events))
	require.Equal(t, "1234", drv.events[2].Text)
	require.Equal(t, []time.Duration{
		500 * time.Millisecond, 500 * time.Millisecond, 300 * time.Millisecond,
		500 * time.Millisecond, 500 * time.Millisecond,
	}, rec.Waits)
}

func TestUnlock_Pattern(t *testing.T) {
	drv := &recordingDriver{}
	svc := unlock.New(fakeVault{cred: domain.Credential{Kind: domain.CredentialPattern, Secret: "159"}}, drv, &clock.Recorder{})

	require.NoError(t, svc.Unlock(context.Background()))
	require.Len(t, drv.events, 3)
	require.Equal(t, []domain.Point{{X: 180, Y: 320}, {X: 540, Y: 960}, {X: 900, Y: 1600}}, drv.events[1].Points)
}

func TestUnlock_InvalidPatternInjectsNothing(t *testing.T) {
	drv := &recordingDriver{}
	svc := unlock.New(fakeVault{cred: domain.Credential{Kind: domain.CredentialPattern, Secret: "000"}}, drv, &clock.Recorder{})

	require.ErrorIs(t, svc.Unlock(context.Background()), domaintypes.ErrInvalidPattern)
	require.Empty(t, drv.events)
}

func TestUnlock_CredentialErrorInjectsNothing(t *testing.T) {
	drv := &recordingDriver{}
	svc := unlock.New(fakeVault{err: vault.ErrNoCredential}, drv, &clock.Recorder{})

	require.ErrorIs(t, svc.Unlock(context.Background()), vault.ErrNoCredential)
	require.Empty(t, drv.events)
}

func TestUnlock_StopsOnInjectFailure(t *testing.T) {
	drv := &recordingDriver{failAt: 2}
	svc := unlock.New(fakeVault{cred: domain.Credential{Kind: domain.CredentialPIN, Secret: "1"}}, drv, &clock.Recorder{})

	err := svc.Unlock(context.Background())
	require.ErrorContains(t, err, "device offline")
	require.Len(t, drv.events, 2)
}

func TestWake(t *testing.T) {
	drv := &recordingDriver{}
	svc := unlock.New(fakeVault{}, drv, &clock.Recorder{})

	require.NoError(t, svc.Wake(context.Background()))
	require.Equal(t, []domain.InputEventKind{domaintypes.EventKey, domaintypes.EventStayAwake}, kinds(drv.events))
	require.Equal(t, domaintypes.KeyWakeUp, drv.events[0].KeyCode)
}
