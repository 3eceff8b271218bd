package commands

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"phonectl/internal/domain"
)

func devicesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "devices",
		Short: "Manage saved devices",
	}
	cmd.AddCommand(devicesListCmd(), devicesRenameCmd(), devicesRemoveCmd(), devicesUseCmd())
	return cmd
}

func devicesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved devices",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			devices, err := sc.Devices.LoadDevices()
			if err != nil {
				return err
			}
			if len(devices) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No saved devices; run `phonectl setup`.")
				return nil
			}
			cur, _, err := sc.Current.CurrentDevice()
			if err != nil {
				return err
			}
			writeDeviceTable(cmd.OutOrStdout(), devices, cur)
			return nil
		},
	}
}

// writeDeviceTable prints devices sorted by label, marking current with '*'.
// Labels may hold wide characters, so columns are padded by display width.
func writeDeviceTable(w io.Writer, devices map[domain.Address]domain.Label, current domain.Address) {
	type row struct{ label, addr string }
	rows := make([]row, 0, len(devices))
	width := runewidth.StringWidth("LABEL")
	for a, l := range devices {
		rows = append(rows, row{label: l.String(), addr: a.String()})
		width = max(width, runewidth.StringWidth(l.String()))
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].label != rows[j].label {
			return rows[i].label < rows[j].label
		}
		return rows[i].addr < rows[j].addr
	})

	fmt.Fprintf(w, "  %s  %s\n", runewidth.FillRight("LABEL", width), "ADDRESS")
	for _, r := range rows {
		mark := " "
		if r.addr == current.String() {
			mark = "*"
		}
		line := fmt.Sprintf("%s %s  %s", mark, runewidth.FillRight(r.label, width), r.addr)
		fmt.Fprintln(w, strings.TrimRight(line, " "))
	}
}

func devicesRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <address> <label>",
		Short: "Relabel a saved device",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := sc.Devices.RenameDevice(domain.Address(args[0]), domain.Label(args[1]))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no saved device %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %s.\n", args[0], strings.TrimSpace(args[1]))
			return nil
		},
	}
}

func devicesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <address>",
		Short: "Forget a saved device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := sc.Devices.RemoveDevice(domain.Address(args[0]))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("no saved device %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s.\n", args[0])
			return nil
		},
	}
}

func devicesUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use <address>",
		Short: "Make a saved device current",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			addr := domain.Address(args[0])
			devices, err := sc.Devices.LoadDevices()
			if err != nil {
				return err
			}
			label, ok := devices[addr]
			if !ok {
				return fmt.Errorf("no saved device %s", addr)
			}
			if err := sc.Current.SetCurrentDevice(addr); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Current device: %s (%s).\n", addr, label)
			return nil
		},
	}
}
