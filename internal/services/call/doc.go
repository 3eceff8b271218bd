// Package call answers and ends phone calls through the device driver.
package call
