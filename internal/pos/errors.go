// Package pos is the session engine of the scale console: search
// coordinators, the weigh ticket, the scale capture gate, the offline outbox
// and the key dispatcher that drives them.
package pos

import "errors"

var (
	// ErrUnstableScale is returned when a capture is attempted while the
	// scale reading is still moving.
	ErrUnstableScale = errors.New("scale unstable: hold the truck before capturing")
	// ErrIncompleteTicket is returned by Finalize when a selection or a
	// positive net weight is missing.
	ErrIncompleteTicket = errors.New("ticket incomplete: select truck, customer, order, product and capture gross and tare")
	// ErrUnknownID means a referenced entity no longer exists in the index.
	ErrUnknownID = errors.New("unknown entity id")
	// ErrNoHistory is returned by repeat actions when nothing has been
	// recorded yet.
	ErrNoHistory = errors.New("no previous ticket to repeat")
)
