package gesture

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"phonectl/internal/domain"
	domaintypes "phonectl/internal/domain/types"
)

const (
	gridSize = 3

	swipeStartRatio = 0.8
	swipeEndRatio   = 0.2

	// PatternSegment is the timing hint between consecutive pattern points.
	PatternSegment = 100 * time.Millisecond
)

// Settle delays after each step, in the order the lock screen needs them.
const (
	wakeSettle    = 500 * time.Millisecond
	revealSettle  = 500 * time.Millisecond
	textSettle    = 300 * time.Millisecond
	confirmSettle = 500 * time.Millisecond
	patternSettle = 1000 * time.Millisecond
)

// Synthesize returns the events that unlock a screen of geometry g with cred.
// On error no events are returned.
func Synthesize(cred domain.Credential, g domain.ScreenGeometry) ([]domain.InputEvent, error) {
	var body []domain.InputEvent
	var err error
	switch cred.Kind {
	case domaintypes.CredentialPIN:
		body, err = pinEvents(cred.Secret, g)
	case domaintypes.CredentialPattern:
		body, err = patternEvents(cred.Secret, g)
	default:
		return nil, domaintypes.ErrUnknownCredential
	}
	if err != nil {
		return nil, err
	}

	events := make([]domain.InputEvent, 0, len(body)+2)
	events = append(events, Wake())
	events = append(events, body...)
	events = append(events, StayAwake())
	return events, nil
}

// Wake is the key press that turns the screen on.
func Wake() domain.InputEvent {
	return domain.InputEvent{Kind: domaintypes.EventKey, KeyCode: domaintypes.KeyWakeUp, Settle: wakeSettle}
}

// StayAwake keeps the screen on after unlocking.
func StayAwake() domain.InputEvent {
	return domain.InputEvent{Kind: domaintypes.EventStayAwake}
}

// CellCenter returns the center of grid cell digit (1-9) on a screen of geometry g.
func CellCenter(digit int, g domain.ScreenGeometry) (domain.Point, error) {
	if digit < 1 || digit > gridSize*gridSize {
		return domain.Point{}, fmt.Errorf("%w: cell %d", domaintypes.ErrInvalidPattern, digit)
	}
	cellW := g.Width / gridSize
	cellH := g.Height / gridSize
	row := (digit - 1) / gridSize
	col := (digit - 1) % gridSize
	return domain.Point{
		X: col*cellW + cellW/2,
		Y: row*cellH + cellH/2,
	}, nil
}

// PatternPoints maps each 1-9 digit of pattern to its cell center, in order.
// Other characters, including 0, are ignored. A pattern with no usable digit
// fails with ErrInvalidPattern.
func PatternPoints(pattern string, g domain.ScreenGeometry) ([]domain.Point, error) {
	points := make([]domain.Point, 0, len(pattern))
	for _, r := range pattern {
		if r < '1' || r > '9' {
			continue
		}
		p, err := CellCenter(int(r-'0'), g)
		if err != nil {
			return nil, err
		}
		points = append(points, p)
	}
	if len(points) == 0 {
		return nil, domaintypes.ErrInvalidPattern
	}
	return points, nil
}

func patternEvents(pattern string, g domain.ScreenGeometry) ([]domain.InputEvent, error) {
	points, err := PatternPoints(pattern, g)
	if err != nil {
		return nil, err
	}
	return []domain.InputEvent{{
		Kind:     domaintypes.EventSwipe,
		Points:   points,
		Duration: PatternSegment,
		Settle:   patternSettle,
	}}, nil
}

func pinEvents(pin string, g domain.ScreenGeometry) ([]domain.InputEvent, error) {
	digits := stripSpace(pin)
	if digits == "" {
		return nil, domaintypes.ErrEmptyCredential
	}
	x := g.Width / 2
	return []domain.InputEvent{
		{
			Kind: domaintypes.EventSwipe,
			Points: []domain.Point{
				{X: x, Y: int(float64(g.Height) * swipeStartRatio)},
				{X: x, Y: int(float64(g.Height) * swipeEndRatio)},
			},
			Settle: revealSettle,
		},
		{Kind: domaintypes.EventText, Text: digits, Settle: textSettle},
		{Kind: domaintypes.EventKey, KeyCode: domaintypes.KeyEnter, Settle: confirmSettle},
		{Kind: domaintypes.EventKey, KeyCode: domaintypes.KeyDPadCenter, Settle: confirmSettle},
	}, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// Fixed answer-slider coordinates of the incoming call screen.
var (
	answerFrom = domain.Point{X: 500, Y: 1600}
	answerTo   = domain.Point{X: 500, Y: 1000}
)

// AnswerCall drags the incoming call slider upwards.
func AnswerCall() domain.InputEvent {
	return domain.InputEvent{
		Kind:   domaintypes.EventSwipe,
		Points: []domain.Point{answerFrom, answerTo},
	}
}

// EndCall hangs up or rejects the current call.
func EndCall() domain.InputEvent {
	return domain.InputEvent{Kind: domaintypes.EventKey, KeyCode: domaintypes.KeyEndCall}
}
