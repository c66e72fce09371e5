// ABOUTME: Error recovery policy maps catalog failures to user-facing notices
// ABOUTME: Resolve is total over the error taxonomy and decides whether retry is offered

package recovery

import (
	"bingefeed-api/core/domain"
	apperrors "bingefeed-api/core/errors"
)

// Action is the single recovery affordance offered with a notice
type Action int

const (
	// Retry offers to repeat the failed load
	Retry Action = iota

	// Acknowledge only dismisses the notice
	Acknowledge
)

// String returns the lowercase action name
func (a Action) String() string {
	if a == Acknowledge {
		return "acknowledge"
	}
	return "retry"
}

// MarshalText encodes the action as its name
func (a Action) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// Notice is the presentation of a failure
type Notice struct {
	Kind    apperrors.Kind `json:"-"`
	Title   string         `json:"title"`
	Message string         `json:"message"`
	Action  Action         `json:"action"`
}

// Resolve maps a failure kind to its notice.
// detail is used only by server failures; category names the list in data errors.
func Resolve(kind apperrors.Kind, detail string, category domain.Category) Notice {
	switch kind {
	case apperrors.KindTransportFailure:
		return Notice{
			Kind:    kind,
			Title:   "Network Error",
			Message: "Please check your internet connection and try again.",
			Action:  Retry,
		}
	case apperrors.KindServerFailure:
		if detail == "" {
			detail = "The server encountered an error. Please try again."
		}
		return Notice{
			Kind:    kind,
			Title:   "Server Error",
			Message: detail,
			Action:  Retry,
		}
	case apperrors.KindInvalidRequest:
		return Notice{
			Kind:    kind,
			Title:   "Data Error",
			Message: "Unable to load " + category.PluralLabel() + ". Please try again.",
			Action:  Retry,
		}
	case apperrors.KindRateLimited:
		return Notice{
			Kind:    kind,
			Title:   "Too Many Requests",
			Message: "Please wait a moment before trying again.",
			Action:  Acknowledge,
		}
	default:
		return Notice{
			Kind:    kind,
			Title:   "Unexpected Error",
			Message: "Something went wrong. Please try again.",
			Action:  Retry,
		}
	}
}

// ResolveError resolves any error. Errors outside the catalog taxonomy resolve as unknown.
func ResolveError(err error, category domain.Category) Notice {
	return Resolve(apperrors.KindOf(err), apperrors.DetailOf(err), category)
}
