// Copyright (C) 2023, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrMisalignedTime    = errors.New("misaligned time")
	ErrTimestampTooLate  = errors.New("timestamp too late")
	ErrTimestampTooEarly = errors.New("timestamp too early")
	ErrInvalidAction     = errors.New("invalid action")
	ErrUnexpectedAction  = errors.New("unexpected action")
	ErrNonCanonicalTx    = errors.New("non-canonical transaction encoding")
)
