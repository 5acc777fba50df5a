package conn

import (
	"errors"
)

var errMalformedReply = errors.New("malformed reply: result member does not match the sent command")
