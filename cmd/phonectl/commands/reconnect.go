package commands

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

func reconnectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reconnect",
		Short: "Try every saved device until one connects",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			devices, err := sc.Devices.LoadDevices()
			if err != nil {
				return err
			}
			if len(devices) == 0 {
				return errors.New("no saved devices; run `phonectl setup` to add one")
			}

			addrs := make([]string, 0, len(devices))
			for a := range devices {
				addrs = append(addrs, a.String())
			}
			sort.Strings(addrs)
			fmt.Fprintf(out, "Found %d saved device(s):\n", len(addrs))
			for _, a := range addrs {
				fmt.Fprintf(out, "  %s\n", a)
			}

			ok, err := sc.Session.Reconnect(cmd.Context())
			if err != nil {
				return err
			}
			if !ok {
				return errors.New("could not reconnect to any saved device; is the phone on the same Wi-Fi network?")
			}
			cur, _, err := sc.Current.CurrentDevice()
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Reconnected to %s (%s).\n", cur, devices[cur])
			return nil
		},
	}
}
