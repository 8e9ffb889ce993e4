package desk

import "errors"

// Client-error sentinels. Handlers map these onto HTTP status codes; any
// other error from this package is a store failure and surfaces as a 500.
var (
	// ErrRoomOccupied rejects a check-in for a room that already has an
	// occupied check-in.
	ErrRoomOccupied = errors.New("room is already occupied")

	// ErrActiveCheckinNotFound means no occupied check-in matches the
	// room and phone given to checkout.
	ErrActiveCheckinNotFound = errors.New("active check-in not found")

	// ErrBillNotFound means no bill carries the requested business id.
	ErrBillNotFound = errors.New("bill not found")
)
