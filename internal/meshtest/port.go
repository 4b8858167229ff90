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

// Package meshtest provides scripted in-memory ports for exercising the
// adapter without serial hardware.
package meshtest

import (
	"errors"
	"time"

	"github.com/luminode/go-meshmodem/internal/syncutil"
)

// ErrPortClosed is returned by operations on a closed ScriptPort.
var ErrPortClosed = errors.New("meshtest: port closed")

// ScriptPort is an in-memory Port. Reads pop pre-scripted chunks one at a
// time, modeling a serial driver that hands back whatever arrived since
// the last poll; an empty script reads as (0, nil), like a timed-out
// read. Writes are recorded and can be truncated to exercise the
// partial-write path.
//
// All methods are safe for concurrent use.
type ScriptPort struct {
	mu          syncutil.Mutex
	script      [][]byte
	written     []byte
	readTimeout time.Duration
	baudRate    int
	resetCalls  int
	readCalls   int
	// MaxWrite caps how many bytes a single Write consumes. Zero means
	// unlimited.
	MaxWrite int
	// ReadErr, when set, makes every Read fail in place of scripted
	// data. WriteErr does the same for Write. Set before handing the
	// port to an adapter.
	ReadErr  error
	WriteErr error
	closed   bool
}

// NewScriptPort returns an empty ScriptPort.
func NewScriptPort() *ScriptPort {
	return &ScriptPort{}
}

// Feed appends chunks to the read script. Each chunk is returned by
// exactly one Read call, in order.
func (p *ScriptPort) Feed(chunks ...[]byte) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, c := range chunks {
		chunk := make([]byte, len(c))
		copy(chunk, c)
		p.script = append(p.script, chunk)
	}
}

// Read pops the next scripted chunk into buf.
func (p *ScriptPort) Read(buf []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.readCalls++
	if p.closed {
		return 0, ErrPortClosed
	}
	if p.ReadErr != nil {
		return 0, p.ReadErr
	}
	if len(p.script) == 0 {
		return 0, nil
	}
	n := copy(buf, p.script[0])
	if n < len(p.script[0]) {
		p.script[0] = p.script[0][n:]
	} else {
		p.script = p.script[1:]
	}
	return n, nil
}

// Write records buf, honoring MaxWrite.
func (p *ScriptPort) Write(buf []byte) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return 0, ErrPortClosed
	}
	if p.WriteErr != nil {
		return 0, p.WriteErr
	}
	n := len(buf)
	if p.MaxWrite > 0 && n > p.MaxWrite {
		n = p.MaxWrite
	}
	p.written = append(p.written, buf[:n]...)
	return n, nil
}

// SetReadTimeout records the requested timeout.
func (p *ScriptPort) SetReadTimeout(d time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPortClosed
	}
	p.readTimeout = d
	return nil
}

// SetBaudRate records the requested baud rate.
func (p *ScriptPort) SetBaudRate(rate int) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPortClosed
	}
	p.baudRate = rate
	return nil
}

// ResetBuffers counts driver buffer resets. The read script is left in
// place so chunks fed before the adapter starts are still delivered.
func (p *ScriptPort) ResetBuffers() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPortClosed
	}
	p.resetCalls++
	return nil
}

// Close marks the port closed. Further operations fail.
func (p *ScriptPort) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPortClosed
	}
	p.closed = true
	return nil
}

// Written returns a snapshot of everything written so far.
func (p *ScriptPort) Written() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]byte, len(p.written))
	copy(out, p.written)
	return out
}

// BaudRate returns the last rate passed to SetBaudRate.
func (p *ScriptPort) BaudRate() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.baudRate
}

// ReadTimeout returns the last timeout passed to SetReadTimeout.
func (p *ScriptPort) ReadTimeout() time.Duration {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.readTimeout
}

// ReadCalls reports how many times Read ran.
func (p *ScriptPort) ReadCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.readCalls
}

// ResetCalls reports how many times ResetBuffers ran.
func (p *ScriptPort) ResetCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.resetCalls
}
