package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"phonectl/internal/domain"
	domaintypes "phonectl/internal/domain/types"
)

const patternGrid = `+---+---+---+
| 1 | 2 | 3 |
+---+---+---+
| 4 | 5 | 6 |
+---+---+---+
| 7 | 8 | 9 |
+---+---+---+
Example: an L shape is 14789
`

func configCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Store the phone unlock PIN or pattern (encrypted)",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Unlock method:")
			fmt.Fprintln(out, "1. PIN/Password")
			fmt.Fprintln(out, "2. Pattern")
			choice, err := readLine(cmd, "Choice: ")
			if err != nil {
				return err
			}

			var cred domain.Credential
			switch choice {
			case "1":
				secret, err := readSecret(cmd, "PIN/password: ")
				if err != nil {
					return err
				}
				cred, err = domaintypes.NewPIN(secret)
				if err != nil {
					return err
				}
			case "2":
				fmt.Fprint(out, patternGrid)
				secret, err := readSecret(cmd, "Pattern: ")
				if err != nil {
					return err
				}
				cred, err = domaintypes.NewPattern(secret)
				if err != nil {
					return err
				}
			default:
				return errors.New("invalid option; choose 1 or 2")
			}

			if err := sc.Vault.SaveCredential(cred); err != nil {
				return err
			}
			fmt.Fprintf(out, "Unlock %s saved (encrypted).\n", cred.Kind)
			return nil
		},
	}
}
