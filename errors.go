package paon

import (
	"errors"
	"fmt"

	"github.com/gilcrest/diygoapi/errs"
)

// UnknownChannelCode is the errs.Code carried by errors about channels that
// are not present on an Observable.
const UnknownChannelCode errs.Code = "Paon:UnknownChannel"

func unknownChannelError(op errs.Op, channel string) error {
	return errs.E(op, errs.NotExist, UnknownChannelCode, errs.Parameter(channel),
		fmt.Sprintf("channel %q is not registered", channel))
}

// IsUnknownChannel reports whether err was raised for a channel that was never
// registered or has been cleared.
func IsUnknownChannel(err error) bool {
	var e *errs.Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == errs.NotExist && e.Code == UnknownChannelCode
}
