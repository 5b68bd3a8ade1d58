// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package shell

import "errors"

var (
	// ErrUnknownDialect means the requested shell is not a supported
	// export target.
	ErrUnknownDialect = errors.New("unknown shell dialect")

	// ErrUnexportableValue means the value contains characters the target
	// dialect cannot represent inside a quoted assignment.
	ErrUnexportableValue = errors.New("value cannot be represented in this shell dialect")
)
