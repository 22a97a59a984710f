/*
DESCRIPTION
  errors.go declares the sentinel error kinds used across the signature
  packages, in the style of github.com/pkg/errors based error wrapping used
  throughout codec/h264/h264dec and container/mts.

AUTHORS
  Saxon Nelson-Milton <saxon@ausocean.org>

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

package signature

import "github.com/pkg/errors"

// Sentinel errors for the error kinds enumerated in spec.md §7. Callers
// should use errors.Cause (or errors.Is against these values) to recover
// the kind once a wrapped error has propagated up the call chain.
var (
	// errAllocFailed indicates a memory allocation failure; reported
	// upward with no partial state visible.
	errAllocFailed = errors.New("signature: allocation failed")

	// errInvalidConfig indicates an invalid combination of Config options,
	// e.g. multiple input streams without a numeric output template.
	errInvalidConfig = errors.New("signature: invalid configuration")
)
