package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the vault and the current device",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			vs, err := sc.Vault.Status()
			if err != nil {
				return err
			}
			switch {
			case vs.KeyPresent:
				fmt.Fprintf(out, "Key:        %s (%s)\n", sc.Keys.Path(), vs.KeyFingerprint)
			default:
				fmt.Fprintf(out, "Key:        none (%s)\n", sc.Keys.Path())
			}
			switch {
			case !vs.CredentialPresent:
				fmt.Fprintln(out, "Credential: not configured; run `phonectl config`")
			case vs.DecryptError != nil:
				fmt.Fprintf(out, "Credential: unreadable (%v); run `phonectl config`\n", vs.DecryptError)
			default:
				fmt.Fprintf(out, "Credential: %s\n", vs.CredentialKind)
			}

			ss, err := sc.Session.Status(cmd.Context())
			if err != nil {
				return err
			}
			if !ss.HasDevice {
				fmt.Fprintln(out, "Device:     none; run `phonectl setup`")
				return nil
			}
			state := "disconnected"
			if ss.Connected {
				state = "connected"
			}
			label := ss.Label.String()
			if label == "" {
				label = "unsaved"
			}
			fmt.Fprintf(out, "Device:     %s (%s), %s\n", ss.Current, label, state)
			return nil
		},
	}
}
