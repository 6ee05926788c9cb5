package binder

import "context"

// Transactor issues one synchronous transaction against a remote service
// handle. Implementations own no retry logic; one call is one round trip.
type Transactor interface {
	// Transact sends data under the given code and fills reply from the
	// remote's response. flags is passed through to the transport verbatim.
	Transact(ctx context.Context, code uint32, data, reply *Parcel, flags uint32) error
}

// ServiceResolver looks up a privileged service by its registered name.
type ServiceResolver interface {
	Resolve(name string) (Transactor, error)
}
