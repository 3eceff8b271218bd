package call

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"phonectl/internal/domain"
	"phonectl/internal/protocol/gesture"
)

// Service sends call-handling input to the device.
type Service struct {
	driver domain.DeviceDriver
}

// New constructs a call Service.
func New(driver domain.DeviceDriver) *Service {
	return &Service{driver: driver}
}

// Answer swipes the incoming call slider.
func (s *Service) Answer(ctx context.Context) error {
	if err := s.driver.Inject(ctx, gesture.AnswerCall()); err != nil {
		return fmt.Errorf("answer call: %w", err)
	}
	log.Debug().Msg("call answered")
	return nil
}

// End hangs up an active call or rejects a ringing one.
func (s *Service) End(ctx context.Context) error {
	if err := s.driver.Inject(ctx, gesture.EndCall()); err != nil {
		return fmt.Errorf("end call: %w", err)
	}
	log.Debug().Msg("call ended")
	return nil
}

// Compile-time assertion that Service implements domain.CallService.
var _ domain.CallService = (*Service)(nil)
