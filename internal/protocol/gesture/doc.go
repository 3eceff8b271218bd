// Package gesture turns an unlock credential into the abstract input events
// that unlock an Android lock screen of any resolution.
//
// Every sequence starts with a wake key press and ends with a stay-awake
// directive. In between:
//
//   - PIN: swipe up at the horizontal center (80% to 20% of the height) to
//     reveal the keypad, type the digits, press ENTER, then DPAD_CENTER for lock
//     screens that ignore ENTER.
//   - Pattern: one continuous swipe through the centers of the 3x3 grid cells
//     named by the digits 1-9, in input order.
//
// The package is pure: it never talks to a device.
package gesture
