// Package adb provides the implementation of the domain.DeviceDriver and
// domain.SetupDriver interfaces used by phonectl, backed by the adb binary.
//
// Every operation spawns one adb process and parses its text output:
//   - Listing live devices and their connection state (adb devices -l).
//   - Connecting to a device over TCP/IP (adb connect).
//   - Reading the display size (adb shell dumpsys window displays).
//   - Injecting key, text and swipe events (adb shell input ...).
//   - Switching a USB device to TCP/IP mode and reading its Wi-Fi address.
//
// When the client has a target serial, shell commands are sent to that device
// with -s. Non-zero exits are returned as errors carrying the adb arguments
// and stderr to aid diagnostics.
package adb
