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
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/luminode/go-meshmodem/internal/frame"
	"github.com/luminode/go-meshmodem/internal/syncutil"
)

// Observer receives every frame the adapter validates and decodes. raw is
// the frame body (length, opcode, payload) exactly as it arrived on the
// wire; it must not be retained past the call.
//
// Observers are notified synchronously from the adapter's processing
// goroutine, in registration order. A slow observer stalls delivery.
type Observer interface {
	OnMessage(msg Message, raw []byte)
}

// Config contains configuration options for the Adapter.
type Config struct {
	// ReadTimeout bounds each port read so the pump can observe a stop
	// signal while the line is idle.
	ReadTimeout time.Duration
	// IdleSleep is how long the pump sleeps after an empty read.
	IdleSleep time.Duration
	// QueueDepth is the capacity of the inbound and outbound chunk
	// queues.
	QueueDepth int
}

// DefaultConfig returns the adapter configuration matching the modem's
// factory settings.
func DefaultConfig() *Config {
	return &Config{
		ReadTimeout: 10 * time.Millisecond,
		IdleSleep:   2 * time.Millisecond,
		QueueDepth:  64,
	}
}

// Option configures an Adapter at construction time.
type Option func(*Adapter) error

// WithConfig replaces the default configuration.
func WithConfig(cfg *Config) Option {
	return func(a *Adapter) error {
		if cfg == nil {
			return fmt.Errorf("%w: nil config", ErrAdapterConfig)
		}
		a.config = cfg
		return nil
	}
}

// WithLogger sets the adapter's logger. The default is zap.NewNop().
func WithLogger(logger *zap.Logger) Option {
	return func(a *Adapter) error {
		if logger == nil {
			return fmt.Errorf("%w: nil logger", ErrAdapterConfig)
		}
		a.logger = logger
		return nil
	}
}

// Adapter bridges a Port and registered observers. A started adapter runs
// two goroutines: the transport pump, which owns the port and moves raw
// chunks in both directions, and the processing loop, which owns the
// reassembly buffer, extracts frames, decodes them and notifies
// observers. Frames are delivered in wire order.
type Adapter struct {
	port      Port
	config    *Config
	logger    *zap.Logger
	inCh      chan []byte
	outCh     chan []byte
	stopCh    chan struct{}
	observers []Observer
	obsMu     syncutil.RWMutex
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
}

// NewAdapter creates an adapter over the given port. The port is not
// touched until Start.
func NewAdapter(port Port, opts ...Option) (*Adapter, error) {
	if port == nil {
		return nil, fmt.Errorf("%w: nil port", ErrAdapterConfig)
	}
	a := &Adapter{
		port:   port,
		config: DefaultConfig(),
		logger: zap.NewNop(),
		stopCh: make(chan struct{}),
	}
	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}
	a.inCh = make(chan []byte, a.config.QueueDepth)
	a.outCh = make(chan []byte, a.config.QueueDepth)
	return a, nil
}

// Start launches the pump and processing goroutines. Calling Start more
// than once has no effect.
func (a *Adapter) Start() {
	a.startOnce.Do(func() {
		a.wg.Add(2)
		go a.pumpLoop()
		go a.processLoop()
		a.logger.Info("adapter started")
	})
}

// Stop signals both goroutines, waits for them to exit and closes the
// port. Idempotent.
func (a *Adapter) Stop() {
	a.stopOnce.Do(func() {
		close(a.stopCh)
		a.wg.Wait()
		if err := a.port.Close(); err != nil {
			a.logger.Warn("port close failed", zap.Error(err))
		}
		a.logger.Info("adapter stopped")
	})
}

// Send serializes msg, frames it and queues it for the wire. It returns
// once the frame is queued; delivery is asynchronous.
func (a *Adapter) Send(msg Message) error {
	body, err := Serialize(msg)
	if err != nil {
		return err
	}
	return a.enqueue(frame.Wrap(body))
}

// SendRaw queues pre-framed bytes verbatim, without adding the preamble
// or CRC. Intended for fault-injection and link testing.
func (a *Adapter) SendRaw(data []byte) error {
	out := make([]byte, len(data))
	copy(out, data)
	return a.enqueue(out)
}

func (a *Adapter) enqueue(chunk []byte) error {
	// Checked separately: the buffered outCh could otherwise win the
	// select against a closed stop channel.
	select {
	case <-a.stopCh:
		return ErrAdapterStopped
	default:
	}
	select {
	case <-a.stopCh:
		return ErrAdapterStopped
	case a.outCh <- chunk:
		return nil
	}
}

// SetBaudRate changes the port's baud rate on a live connection.
func (a *Adapter) SetBaudRate(rate int) error {
	return a.port.SetBaudRate(rate)
}

// RegisterObserver adds an observer to the delivery set. Registering the
// same observer twice has no effect. Safe to call while the adapter runs;
// the observer sees only frames delivered after registration.
func (a *Adapter) RegisterObserver(obs Observer) {
	a.obsMu.Lock()
	defer a.obsMu.Unlock()
	for _, existing := range a.observers {
		if existing == obs {
			return
		}
	}
	a.observers = append(a.observers, obs)
}

// UnregisterObserver removes an observer from the delivery set.
func (a *Adapter) UnregisterObserver(obs Observer) {
	a.obsMu.Lock()
	defer a.obsMu.Unlock()
	for i, existing := range a.observers {
		if existing == obs {
			a.observers = append(a.observers[:i], a.observers[i+1:]...)
			return
		}
	}
}

// pumpLoop owns the port. Each iteration drains at most one outbound
// chunk, then reads whatever the line has to offer. A read or write
// error ends the loop; the adapter cannot recover the port and must be
// stopped.
func (a *Adapter) pumpLoop() {
	defer a.wg.Done()

	if r, ok := a.port.(bufferResetter); ok {
		if err := r.ResetBuffers(); err != nil {
			a.logger.Warn("buffer reset failed", zap.Error(err))
		}
	}
	if err := a.port.SetReadTimeout(a.config.ReadTimeout); err != nil {
		a.logger.Warn("set read timeout failed", zap.Error(err))
	}

	buf := make([]byte, 4096)
	for {
		select {
		case <-a.stopCh:
			return
		case chunk := <-a.outCh:
			if err := a.writeAll(chunk); err != nil {
				a.logger.Error("port write failed", zap.Error(err))
				return
			}
		default:
		}

		n, err := a.port.Read(buf)
		if err != nil {
			a.logger.Error("port read failed", zap.Error(err))
			return
		}
		if n == 0 {
			if !a.sleepIdle() {
				return
			}
			continue
		}

		chunk := make([]byte, n)
		copy(chunk, buf[:n])
		select {
		case <-a.stopCh:
			return
		case a.inCh <- chunk:
		}
	}
}

// writeAll pushes one chunk fully onto the wire, retrying short writes so
// chunks are never interleaved.
func (a *Adapter) writeAll(chunk []byte) error {
	for len(chunk) > 0 {
		n, err := a.port.Write(chunk)
		if err != nil {
			return err
		}
		chunk = chunk[n:]
	}
	return nil
}

// sleepIdle pauses between idle iterations. Returns false when the stop
// signal arrived during the pause.
func (a *Adapter) sleepIdle() bool {
	select {
	case <-a.stopCh:
		return false
	case <-time.After(a.config.IdleSleep):
		return true
	}
}

// processLoop owns the reassembly buffer. It folds inbound chunks into
// the buffer, extracts complete frames and dispatches them. The pump
// forwards only non-empty reads, so an idle line never wakes this loop.
func (a *Adapter) processLoop() {
	defer a.wg.Done()

	var pending []byte
	for {
		select {
		case <-a.stopCh:
			return
		case chunk := <-a.inCh:
			pending = append(pending, chunk...)
			res := frame.Extract(pending)
			pending = append(pending[:0:0], res.Rest...)
			if res.Orphaned > 0 {
				a.logger.Warn("discarded orphaned bytes", zap.Int("count", res.Orphaned))
			}
			if res.CorruptFrames > 0 {
				a.logger.Warn("dropped corrupt frames", zap.Int("count", res.CorruptFrames))
			}
			for _, f := range res.Frames {
				a.dispatch(f)
			}
		}
	}
}

// dispatch decodes one validated frame and notifies the observer set as
// it stands right now. Frames that fail to decode are logged and dropped,
// never delivered.
func (a *Adapter) dispatch(raw []byte) {
	msg, err := Deserialize(raw)
	if err != nil {
		a.logger.Warn("undecodable frame",
			zap.Binary("frame", raw),
			zap.Error(err))
		return
	}

	a.obsMu.RLock()
	observers := make([]Observer, len(a.observers))
	copy(observers, a.observers)
	a.obsMu.RUnlock()

	for _, obs := range observers {
		obs.OnMessage(msg, raw)
	}
}
