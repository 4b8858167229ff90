// go-meshmodem
// Copyright (c) 2025 The Luminode Project Contributors.
// SPDX-License-Identifier: LGPL-3.0-or-later
//
// This file is part of go-meshmodem.
//
// go-meshmodem is free software; you can redistribute it and/or
// modify it under the terms of the GNU Lesser General Public
// License as published by the Free Software Foundation; either
// version 3 of the License, or (at your option) any later version.
//
// go-meshmodem is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the GNU
// Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with go-meshmodem; if not, write to the Free Software Foundation,
// Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

package meshmodem

import (
	"errors"
	"fmt"
)

// Codec errors. These are fail-fast: serialize/deserialize abort the single
// operation with no partial output and are never retried automatically.
var (
	// ErrOpcodeMismatch reports that the embedded opcode byte does not
	// match the opcode a decoder was invoked for, or that the registry has
	// no codec for the opcode.
	ErrOpcodeMismatch = errors.New("opcode mismatch")

	// ErrLengthMismatch reports that the declared LENGTH disagrees with
	// the payload's actual or derivable length, including nested count
	// fields that disagree with the bytes available.
	ErrLengthMismatch = errors.New("length mismatch")

	// ErrMessageTooLarge reports a payload that cannot be represented by
	// the one-byte LENGTH field.
	ErrMessageTooLarge = errors.New("message payload too large")
)

// Adapter errors.
var (
	// ErrAdapterStopped reports an operation on an adapter whose
	// background activities have been stopped.
	ErrAdapterStopped = errors.New("adapter is stopped")

	// ErrAdapterConfig reports an invalid adapter construction option.
	ErrAdapterConfig = errors.New("invalid adapter configuration")
)

// DecodeError wraps a codec failure with the operation and opcode it
// occurred on. Corrupt frames never produce a DecodeError on the adapter's
// receive path; they are dropped during reassembly instead.
type DecodeError struct {
	Err    error
	Op     string
	Opcode Opcode
}

func (e *DecodeError) Error() string {
	if e.Opcode != 0 {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Opcode, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
