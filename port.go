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

import "time"

// DefaultBaudRate is the baud rate the modem uses out of the box.
const DefaultBaudRate = 56700

// Port is the byte-stream the adapter pumps. transport/uart implements it
// over a real serial port; tests supply scripted in-memory ports.
//
// Read must honor the timeout set via SetReadTimeout and return (0, nil)
// when it expires with nothing available. Write may return short counts;
// the adapter tracks partial writes.
type Port interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	SetReadTimeout(d time.Duration) error
	SetBaudRate(rate int) error
	Close() error
}

// bufferResetter is an optional Port capability. When the underlying
// driver buffers bytes while nobody is pumping, the adapter discards that
// backlog before its first read.
type bufferResetter interface {
	ResetBuffers() error
}
