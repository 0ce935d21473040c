package parallel

import "errors"

// ErrPoolClosed is returned by Run on a pool that has been closed.
var ErrPoolClosed = errors.New("parallel: worker pool closed")
