package errors

import (
	"fmt"
)

var (
	ErrInvalidConfig = fmt.Errorf("tripagent: invalid config")
	ErrNoCredential  = fmt.Errorf("tripagent: missing api credential")
	ErrNotFound      = fmt.Errorf("tripagent: not found")
	ErrInvalidParams = fmt.Errorf("tripagent: invalid params")
	ErrInternal      = fmt.Errorf("tripagent: internal error")
)
