package httpmsg

import (
	"errors"
	"fmt"
)

// ErrAlreadyPrepared is returned by Prepare when the message has already
// been prepared.
var ErrAlreadyPrepared = errors.New("message already prepared")

type InvalidArgumentError struct {
	message string
}

func (e InvalidArgumentError) Error() string {
	return fmt.Sprintf("invalid argument: %s", e.message)
}
