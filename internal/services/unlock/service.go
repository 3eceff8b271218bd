package unlock

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"phonectl/internal/domain"
	"phonectl/internal/protocol/gesture"
	"phonectl/internal/util/clock"
)

// Service loads the credential, synthesizes gestures and injects them.
type Service struct {
	vault  domain.VaultService
	driver domain.DeviceDriver
	clock  clock.Clock
}

// New constructs an unlock Service. A nil clk waits on wall-clock time.
func New(vault domain.VaultService, driver domain.DeviceDriver, clk clock.Clock) *Service {
	if clk == nil {
		clk = clock.Real{}
	}
	return &Service{vault: vault, driver: driver, clock: clk}
}

// Unlock wakes the device and enters the stored credential.
// Credential errors are returned before anything is sent to the device.
func (s *Service) Unlock(ctx context.Context) error {
	cred, err := s.vault.LoadCredential()
	if err != nil {
		return err
	}
	g, err := s.driver.ScreenGeometry(ctx)
	if err != nil {
		return fmt.Errorf("screen geometry: %w", err)
	}
	events, err := gesture.Synthesize(cred, g)
	if err != nil {
		return err
	}
	log.Debug().
		Str("kind", string(cred.Kind)).
		Int("width", g.Width).
		Int("height", g.Height).
		Int("events", len(events)).
		Msg("unlocking")
	return s.play(ctx, events)
}

// Wake turns the screen on and keeps it on, without unlocking.
func (s *Service) Wake(ctx context.Context) error {
	return s.play(ctx, []domain.InputEvent{gesture.Wake(), gesture.StayAwake()})
}

func (s *Service) play(ctx context.Context, events []domain.InputEvent) error {
	for i, ev := range events {
		if err := s.driver.Inject(ctx, ev); err != nil {
			return fmt.Errorf("inject %s event %d: %w", ev.Kind, i+1, err)
		}
		if ev.Settle > 0 {
			if err := s.clock.Sleep(ctx, ev.Settle); err != nil {
				return err
			}
		}
	}
	return nil
}

// Compile-time assertion that Service implements domain.UnlockService.
var _ domain.UnlockService = (*Service)(nil)
