package commands

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"phonectl/internal/crypto"
	domaintypes "phonectl/internal/domain/types"
)

var errNotConnected = errors.New("device not connected; run `phonectl reconnect` or `phonectl setup`")

// ensureConnected reconnects to a saved device when the current one is gone.
// A successful Reconnect has already seen the device ready.
func ensureConnected(ctx context.Context, cmd *cobra.Command) error {
	if sc.Session.Connected(ctx) {
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), "Device not connected, reconnecting...")
	ok, err := sc.Session.Reconnect(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return errNotConnected
	}
	return nil
}

func unlockCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unlock",
		Short: "Wake the phone and enter the stored credential",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := ensureConnected(ctx, cmd); err != nil {
				return err
			}
			if err := sc.Unlock.Unlock(ctx); err != nil {
				return unlockError(err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Phone unlocked; the screen will stay awake.")
			return nil
		},
	}
}

func wakeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "wake",
		Short: "Turn the screen on and keep it on",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := ensureConnected(ctx, cmd); err != nil {
				return err
			}
			if err := sc.Unlock.Wake(ctx); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Phone screen is awake.")
			return nil
		},
	}
}

// unlockError adds the recovery hint to credential failures.
func unlockError(err error) error {
	switch {
	case errors.Is(err, crypto.ErrAuth),
		errors.Is(err, crypto.ErrDecode),
		errors.Is(err, domaintypes.ErrUnknownCredential),
		errors.Is(err, domaintypes.ErrInvalidPattern),
		errors.Is(err, domaintypes.ErrEmptyCredential):
		return fmt.Errorf("%w; run `phonectl config` to reconfigure", err)
	}
	return err
}
