// Package unlock replays the stored credential on the phone's lock screen.
package unlock
