package order

import (
	"fmt"

	"restaurant/internal/pkg/errs"
)

// Status is the fulfilment stage of an order.
//
//	RECEIVED -> IN_PREPARATION -> READY -> DELIVERED
//
// The arrow shows the usual kitchen flow only. Transitions are not restricted:
// ChangeTo accepts any valid status from any current status.
type Status int

const (
	// Unknown is the zero value and never a valid status.
	Unknown Status = iota
	Received
	InPreparation
	Ready
	Delivered
)

// getStatusStrings maps every status, Unknown included, to its wire name.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:       "UNKNOWN",
		Received:      "RECEIVED",
		InPreparation: "IN_PREPARATION",
		Ready:         "READY",
		Delivered:     "DELIVERED",
	}
}

// getValidStatusStrings maps wire names to the four valid statuses.
func getValidStatusStrings() map[string]Status {
	return map[string]Status{
		"RECEIVED":       Received,
		"IN_PREPARATION": InPreparation,
		"READY":          Ready,
		"DELIVERED":      Delivered,
	}
}

// Statuses lists the valid statuses in kitchen order.
func Statuses() []Status {
	return []Status{Received, InPreparation, Ready, Delivered}
}

// ParseStatus converts a wire name such as "IN_PREPARATION" into a Status.
// Matching is exact; anything else is a ValueIsInvalidError.
func ParseStatus(s string) (Status, error) {
	status, ok := getValidStatusStrings()[s]
	if !ok {
		return Unknown, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%q is not one of RECEIVED, IN_PREPARATION, READY, DELIVERED", s),
		)
	}
	return status, nil
}

// Validate rejects Unknown and out-of-range values.
func (s Status) Validate() error {
	switch s {
	case Received, InPreparation, Ready, Delivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
}

// String returns the wire name; invalid values render as "UNKNOWN".
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// ChangeTo returns target when it is a valid status. The current status does
// not restrict the move, and target may equal the current status.
func (s Status) ChangeTo(target Status) (Status, error) {
	switch target {
	case Received, InPreparation, Ready, Delivered:
		return target, nil
	case Unknown:
		return s, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot change %s to %s", s, target),
		)
	default:
		return s, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("cannot change %s to %d", s, int(target)),
		)
	}
}
