//go:build !linux

package binder

import "go.trai.ch/zerr"

// Device is unavailable off the target platform.
type Device struct{}

// OpenDevice fails on platforms without the kernel transport.
func OpenDevice() (*Device, error) {
	return nil, zerr.New("transport device requires a linux kernel")
}

// Close is a no-op on the stub.
func (d *Device) Close() error { return nil }

// Resolve always fails on the stub.
func (d *Device) Resolve(string) (Transactor, error) {
	return nil, zerr.New("transport device requires a linux kernel")
}
