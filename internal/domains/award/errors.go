package award

import "errors"

var ErrAwardNotFound = errors.New("award not found")
