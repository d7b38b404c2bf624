package catalog

import "errors"

var ErrUnexpectedStatus = errors.New("unexpected response status")
