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

// meshmodem-cli is a small diagnostic tool for a mesh modem on a serial
// port: ping it, query its state and firmware, or sit and dump every
// message it sends.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	meshmodem "github.com/luminode/go-meshmodem"
	"github.com/luminode/go-meshmodem/transport/uart"
)

type config struct {
	portName string
	baudRate int
	ping     bool
	state    bool
	firmware bool
	listen   bool
	debug    bool
}

// Package-level flag variables
var (
	flagPort     string
	flagBaud     int
	flagPing     bool
	flagState    bool
	flagFirmware bool
	flagListen   bool
	flagDebug    bool
)

func init() {
	flag.StringVar(&flagPort, "port", "", "Serial port of the modem (required)")
	flag.IntVar(&flagBaud, "baud", meshmodem.DefaultBaudRate, "Baud rate")
	flag.BoolVar(&flagPing, "ping", false, "Send a ping and wait for the pong")
	flag.BoolVar(&flagState, "state", false, "Query the modem state")
	flag.BoolVar(&flagFirmware, "firmware", false, "Query the firmware version")
	flag.BoolVar(&flagListen, "listen", false, "Dump every received message until interrupted")
	flag.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
}

func parseConfig() *config {
	return &config{
		portName: flagPort,
		baudRate: flagBaud,
		ping:     flagPing,
		state:    flagState,
		firmware: flagFirmware,
		listen:   flagListen,
		debug:    flagDebug,
	}
}

func newLogger(cfg *config) (*zap.Logger, error) {
	if cfg.debug {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("failed to create logger: %w", err)
		}
		return logger, nil
	}
	return zap.NewNop(), nil
}

// printObserver dumps every decoded message to stdout.
type printObserver struct {
	received chan meshmodem.Message
}

func (o *printObserver) OnMessage(msg meshmodem.Message, raw []byte) {
	_, _ = fmt.Printf("%s %x\n", msg.Opcode(), raw)
	select {
	case o.received <- msg:
	default:
	}
}

func describe(msg meshmodem.Message) string {
	switch m := msg.(type) {
	case *meshmodem.PongResponse:
		return fmt.Sprintf("pong, data=%x", m.Data)
	case *meshmodem.CurrentStateResponse:
		return fmt.Sprintf("state=%s", m.State)
	case *meshmodem.FirmwareVersionResponse:
		return fmt.Sprintf("firmware=%q", m.Version)
	case *meshmodem.ErrorMessage:
		return fmt.Sprintf("modem error: %s", m.Code)
	default:
		return msg.Opcode().String()
	}
}

// sendAndWait sends a request and waits for the first response carrying
// the wanted opcode.
func sendAndWait(adapter *meshmodem.Adapter, obs *printObserver, req meshmodem.Message, want meshmodem.Opcode) error {
	if err := adapter.Send(req); err != nil {
		return fmt.Errorf("send failed: %w", err)
	}

	deadline := time.After(3 * time.Second)
	for {
		select {
		case msg := <-obs.received:
			if msg.Opcode() != want {
				continue
			}
			_, _ = fmt.Println(describe(msg))
			return nil
		case <-deadline:
			return fmt.Errorf("no %s within 3s", want)
		}
	}
}

func run(cfg *config) error {
	if cfg.portName == "" {
		return fmt.Errorf("a serial port is required (-port)")
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	port, err := uart.Open(cfg.portName, cfg.baudRate)
	if err != nil {
		return fmt.Errorf("failed to open modem port: %w", err)
	}

	adapter, err := meshmodem.NewAdapter(port, meshmodem.WithLogger(logger))
	if err != nil {
		_ = port.Close()
		return fmt.Errorf("failed to create adapter: %w", err)
	}

	obs := &printObserver{received: make(chan meshmodem.Message, 16)}
	adapter.RegisterObserver(obs)
	adapter.Start()
	defer adapter.Stop()

	switch {
	case cfg.ping:
		return sendAndWait(adapter, obs,
			&meshmodem.PingRequest{Data: []byte{0xAA}},
			meshmodem.OpPongResponse)
	case cfg.state:
		return sendAndWait(adapter, obs,
			&meshmodem.CurrentStateRequest{},
			meshmodem.OpCurrentStateResponse)
	case cfg.firmware:
		return sendAndWait(adapter, obs,
			&meshmodem.FirmwareVersionRequest{},
			meshmodem.OpFirmwareVersionResponse)
	case cfg.listen:
		_, _ = fmt.Println("Listening. Press Ctrl+C to stop...")
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
		<-sigCh
		return nil
	default:
		return fmt.Errorf("nothing to do: pass -ping, -state, -firmware or -listen")
	}
}

func main() {
	flag.Parse()
	if err := run(parseConfig()); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
