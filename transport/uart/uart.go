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

// Package uart implements the meshmodem.Port interface over a physical
// serial port.
package uart

import (
	"fmt"
	"time"

	"go.bug.st/serial"

	meshmodem "github.com/luminode/go-meshmodem"
)

// Port wraps a serial port as a meshmodem.Port. The modem speaks 8N1.
type Port struct {
	port     serial.Port
	portName string
	baudRate int
}

// Open opens the named serial port at the given baud rate. Pass
// meshmodem.DefaultBaudRate for a factory-fresh modem.
func Open(portName string, baudRate int) (*Port, error) {
	port, err := serial.Open(portName, &serial.Mode{
		BaudRate: baudRate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open UART port %s: %w", portName, err)
	}
	return &Port{
		port:     port,
		portName: portName,
		baudRate: baudRate,
	}, nil
}

// Read reads whatever the port has available, honoring the configured
// read timeout.
func (p *Port) Read(buf []byte) (int, error) {
	n, err := p.port.Read(buf)
	if err != nil {
		return n, fmt.Errorf("failed to read from UART port %s: %w", p.portName, err)
	}
	return n, nil
}

// Write writes to the port, possibly partially.
func (p *Port) Write(buf []byte) (int, error) {
	n, err := p.port.Write(buf)
	if err != nil {
		return n, fmt.Errorf("failed to write to UART port %s: %w", p.portName, err)
	}
	return n, nil
}

// SetReadTimeout bounds each Read call. A timed-out Read returns (0, nil).
func (p *Port) SetReadTimeout(d time.Duration) error {
	if err := p.port.SetReadTimeout(d); err != nil {
		return fmt.Errorf("failed to set UART read timeout: %w", err)
	}
	return nil
}

// SetBaudRate reconfigures the line speed without reopening the port.
func (p *Port) SetBaudRate(rate int) error {
	err := p.port.SetMode(&serial.Mode{
		BaudRate: rate,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return fmt.Errorf("failed to set baud rate %d on %s: %w", rate, p.portName, err)
	}
	p.baudRate = rate
	return nil
}

// ResetBuffers discards bytes queued in the driver in both directions.
func (p *Port) ResetBuffers() error {
	if err := p.port.ResetInputBuffer(); err != nil {
		return fmt.Errorf("failed to reset input buffer: %w", err)
	}
	if err := p.port.ResetOutputBuffer(); err != nil {
		return fmt.Errorf("failed to reset output buffer: %w", err)
	}
	return nil
}

// Close closes the serial port.
func (p *Port) Close() error {
	if err := p.port.Close(); err != nil {
		return fmt.Errorf("failed to close UART port %s: %w", p.portName, err)
	}
	return nil
}

var _ meshmodem.Port = (*Port)(nil)
