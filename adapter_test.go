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

package meshmodem_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	meshmodem "github.com/luminode/go-meshmodem"
	"github.com/luminode/go-meshmodem/internal/meshtest"
)

// Reference wire frames (preamble + body + CRC-16 LE).
var (
	wirePingAA        = []byte{0xAA, 0x55, 0x01, 0x01, 0xAA, 0xEB, 0x8B}
	wireStateNode     = []byte{0xAA, 0x55, 0x01, 0x11, 0x03, 0x1E, 0x68}
	wireModelList     = []byte{0xAA, 0x55, 0x06, 0x03, 0x01, 0x10, 0x03, 0x10, 0x08, 0x10, 0x57, 0x93}
	wirePingCorrupt   = []byte{0xAA, 0x55, 0x01, 0x01, 0xAA, 0xEB, 0x74}
	wireAttentionOn   = []byte{0xAA, 0x55, 0x01, 0x16, 0x01, 0x12, 0x7A}
	wireStartNodeBody = []byte{0x00, 0x09}
)

type recordingObserver struct {
	mu   sync.Mutex
	msgs []meshmodem.Message
	raws [][]byte
}

func (o *recordingObserver) OnMessage(msg meshmodem.Message, raw []byte) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.msgs = append(o.msgs, msg)
	buf := make([]byte, len(raw))
	copy(buf, raw)
	o.raws = append(o.raws, buf)
}

func (o *recordingObserver) messages() []meshmodem.Message {
	o.mu.Lock()
	defer o.mu.Unlock()
	out := make([]meshmodem.Message, len(o.msgs))
	copy(out, o.msgs)
	return out
}

func newTestAdapter(t *testing.T, port *meshtest.ScriptPort) *meshmodem.Adapter {
	t.Helper()
	adapter, err := meshmodem.NewAdapter(port)
	require.NoError(t, err)
	t.Cleanup(adapter.Stop)
	return adapter
}

func TestAdapterDeliversFramesInOrder(t *testing.T) {
	t.Parallel()

	port := meshtest.NewScriptPort()
	// Three frames, chopped at awkward boundaries.
	stream := append(append(append([]byte{}, wireStateNode...), wireModelList...), wireAttentionOn...)
	port.Feed(stream[:4], stream[4:9], stream[9:20], stream[20:])

	adapter := newTestAdapter(t, port)
	obs := &recordingObserver{}
	adapter.RegisterObserver(obs)
	adapter.Start()

	require.Eventually(t, func() bool {
		return len(obs.messages()) == 3
	}, 2*time.Second, 5*time.Millisecond)

	msgs := obs.messages()
	state, ok := msgs[0].(*meshmodem.CurrentStateResponse)
	require.True(t, ok)
	assert.Equal(t, meshmodem.StateNode, state.State)

	event, ok := msgs[1].(*meshmodem.InitDeviceEvent)
	require.True(t, ok)
	assert.Equal(t, []meshmodem.ModelID{
		meshmodem.ModelGenOnOffClient,
		meshmodem.ModelGenLevelClient,
		meshmodem.ModelGenPowerOnOffClient,
	}, event.ModelIDs)

	attention, ok := msgs[2].(*meshmodem.AttentionEvent)
	require.True(t, ok)
	assert.Equal(t, meshmodem.AttentionOn, attention.State)
}

func TestAdapterSurvivesGarbageAndCorruptFrames(t *testing.T) {
	t.Parallel()

	port := meshtest.NewScriptPort()
	port.Feed(
		[]byte{0x13, 0x37, 0x00},
		wirePingCorrupt,
		wireStateNode,
	)

	adapter := newTestAdapter(t, port)
	obs := &recordingObserver{}
	adapter.RegisterObserver(obs)
	adapter.Start()

	require.Eventually(t, func() bool {
		return len(obs.messages()) == 1
	}, 2*time.Second, 5*time.Millisecond)

	state, ok := obs.messages()[0].(*meshmodem.CurrentStateResponse)
	require.True(t, ok)
	assert.Equal(t, meshmodem.StateNode, state.State)
}

func TestAdapterSendFramesMessage(t *testing.T) {
	t.Parallel()

	port := meshtest.NewScriptPort()
	// Force short writes so the pump has to drain each chunk.
	port.MaxWrite = 2

	adapter := newTestAdapter(t, port)
	adapter.Start()

	require.NoError(t, adapter.Send(&meshmodem.PingRequest{Data: []byte{0xAA}}))

	require.Eventually(t, func() bool {
		return len(port.Written()) == len(wirePingAA)
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, wirePingAA, port.Written())
}

func TestAdapterSendRaw(t *testing.T) {
	t.Parallel()

	port := meshtest.NewScriptPort()
	adapter := newTestAdapter(t, port)
	adapter.Start()

	// No preamble, no CRC: goes out exactly as given.
	require.NoError(t, adapter.SendRaw(wireStartNodeBody))

	require.Eventually(t, func() bool {
		return len(port.Written()) == len(wireStartNodeBody)
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, wireStartNodeBody, port.Written())
}

func TestAdapterSendOrdering(t *testing.T) {
	t.Parallel()

	port := meshtest.NewScriptPort()
	adapter := newTestAdapter(t, port)
	adapter.Start()

	require.NoError(t, adapter.Send(&meshmodem.PingRequest{Data: []byte{0xAA}}))
	require.NoError(t, adapter.Send(&meshmodem.CurrentStateRequest{}))

	wireStateReq := []byte{0xAA, 0x55, 0x00, 0x10, 0x6E, 0x00}
	want := append(append([]byte{}, wirePingAA...), wireStateReq...)
	require.Eventually(t, func() bool {
		return len(port.Written()) == len(want)
	}, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, want, port.Written())
}

func TestAdapterStop(t *testing.T) {
	t.Parallel()

	port := meshtest.NewScriptPort()
	adapter, err := meshmodem.NewAdapter(port)
	require.NoError(t, err)
	adapter.Start()

	adapter.Stop()
	adapter.Stop() // idempotent

	err = adapter.Send(&meshmodem.PingRequest{Data: []byte{0xAA}})
	assert.ErrorIs(t, err, meshmodem.ErrAdapterStopped)
	assert.ErrorIs(t, adapter.SendRaw([]byte{0x00}), meshmodem.ErrAdapterStopped)
}

func TestAdapterResetsBuffersOnStart(t *testing.T) {
	t.Parallel()

	port := meshtest.NewScriptPort()
	adapter := newTestAdapter(t, port)
	adapter.Start()

	require.Eventually(t, func() bool {
		return port.ResetCalls() == 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.NotZero(t, port.ReadTimeout())
}

func TestAdapterSetBaudRate(t *testing.T) {
	t.Parallel()

	port := meshtest.NewScriptPort()
	adapter := newTestAdapter(t, port)

	require.NoError(t, adapter.SetBaudRate(115200))
	assert.Equal(t, 115200, port.BaudRate())
}

func TestAdapterObserverRegistration(t *testing.T) {
	t.Parallel()

	port := meshtest.NewScriptPort()
	adapter := newTestAdapter(t, port)
	obs := &recordingObserver{}

	// Double registration must not double delivery.
	adapter.RegisterObserver(obs)
	adapter.RegisterObserver(obs)
	adapter.Start()

	port.Feed(wireStateNode)
	require.Eventually(t, func() bool {
		return len(obs.messages()) >= 1
	}, 2*time.Second, 5*time.Millisecond)
	assert.Len(t, obs.messages(), 1)

	adapter.UnregisterObserver(obs)
	port.Feed(wireStateNode)

	// The second frame must not reach the unregistered observer.
	time.Sleep(100 * time.Millisecond)
	assert.Len(t, obs.messages(), 1)
}

func TestNewAdapterValidation(t *testing.T) {
	t.Parallel()

	_, err := meshmodem.NewAdapter(nil)
	assert.ErrorIs(t, err, meshmodem.ErrAdapterConfig)

	_, err = meshmodem.NewAdapter(meshtest.NewScriptPort(), meshmodem.WithLogger(nil))
	assert.ErrorIs(t, err, meshmodem.ErrAdapterConfig)

	_, err = meshmodem.NewAdapter(meshtest.NewScriptPort(), meshmodem.WithConfig(nil))
	assert.ErrorIs(t, err, meshmodem.ErrAdapterConfig)
}

func TestAdapterPumpStopsOnReadError(t *testing.T) {
	t.Parallel()

	port := meshtest.NewScriptPort()
	port.ReadErr = errors.New("device unplugged")
	adapter := newTestAdapter(t, port)
	adapter.Start()

	// The pump must give up after the first failed read, not keep
	// polling a dead port.
	require.Eventually(t, func() bool {
		return port.ReadCalls() == 1
	}, 2*time.Second, 5*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, port.ReadCalls())
}

func TestAdapterPumpStopsOnWriteError(t *testing.T) {
	t.Parallel()

	port := meshtest.NewScriptPort()
	port.WriteErr = errors.New("device unplugged")
	adapter := newTestAdapter(t, port)
	adapter.Start()

	require.NoError(t, adapter.Send(&meshmodem.PingRequest{Data: []byte{0xAA}}))

	// Once the failed write ends the pump, the read count settles.
	var settled int
	require.Eventually(t, func() bool {
		n := port.ReadCalls()
		if n != settled {
			settled = n
			return false
		}
		return true
	}, 2*time.Second, 30*time.Millisecond)
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, settled, port.ReadCalls())
	assert.Empty(t, port.Written())
}
