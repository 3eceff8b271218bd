package commands

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"phonectl/internal/domain"
)

const (
	tcpipPort   = 5555
	tcpipSettle = 2 * time.Second
)

func setupCmd() *cobra.Command {
	var label string
	var serial string
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Pair a USB-connected phone for wireless adb",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			drv := sc.ADB

			if !drv.Available(ctx) {
				return fmt.Errorf("adb not found at %q; install Android platform tools", drv.Bin)
			}

			usb, err := drv.USBDevices(ctx)
			if err != nil {
				return err
			}
			dev, err := pickDevice(cmd, usb, serial)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Phone detected: %s (%s)\n", dev.Model, dev.Serial)

			if err := drv.EnableTCPIP(ctx, dev.Serial, tcpipPort); err != nil {
				return fmt.Errorf("enable adb over Wi-Fi: %w", err)
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(tcpipSettle):
			}

			ip, err := drv.DeviceIP(ctx, dev.Serial)
			if err != nil {
				return fmt.Errorf("%w: is the phone on the same Wi-Fi network?", err)
			}
			addr := domain.Address(net.JoinHostPort(ip, strconv.Itoa(tcpipPort)))

			if label == "" {
				label = dev.Model
			}
			stored, err := sc.Session.Pair(ctx, addr, domain.Label(label))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Connected to %s as %s. You can unplug the USB cable.\n", addr, stored)
			fmt.Fprintln(out, "Next: run `phonectl config` to store your unlock PIN or pattern.")
			return nil
		},
	}
	cmd.Flags().StringVar(&label, "label", "", "device label (default: phone model)")
	cmd.Flags().StringVar(&serial, "serial", "", "USB serial when several phones are attached")
	return cmd
}

// pickDevice returns the device with serial, the only device, or asks the
// user to choose. An invalid choice falls back to the first device.
func pickDevice(cmd *cobra.Command, devices []domain.LiveDevice, serial string) (domain.LiveDevice, error) {
	if len(devices) == 0 {
		return domain.LiveDevice{}, errors.New("no phone detected via USB; check the cable and that USB debugging is authorized")
	}
	if serial != "" {
		for _, d := range devices {
			if d.Serial == serial {
				return d, nil
			}
		}
		return domain.LiveDevice{}, fmt.Errorf("no USB device with serial %q", serial)
	}
	if len(devices) == 1 {
		return devices[0], nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Multiple devices detected:")
	for i, d := range devices {
		fmt.Fprintf(cmd.OutOrStdout(), "%d. %s (%s)\n", i+1, d.Model, d.Serial)
	}
	choice, err := readLine(cmd, "Select device: ")
	if err != nil {
		return domain.LiveDevice{}, err
	}
	n, err := strconv.Atoi(choice)
	if err != nil || n < 1 || n > len(devices) {
		fmt.Fprintln(cmd.OutOrStdout(), "Invalid selection, using the first device.")
		return devices[0], nil
	}
	return devices[n-1], nil
}
