// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (credentials, devices, gestures) and contracts
// (stores, services, the device driver) only.
package domain
