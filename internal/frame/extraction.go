// Copyright 2025 The Luminode Project Contributors.
// SPDX-License-Identifier: Apache-2.0
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package frame implements the byte-level framing of the modem UART
// protocol: preamble search, CRC-16 validation and frame reassembly over
// an arbitrarily chunked byte stream.
package frame

import "encoding/binary"

// ExtractResult reports the outcome of one Extract pass.
type ExtractResult struct {
	// Frames holds every validated frame in arrival order, each stripped
	// to its length, opcode and payload bytes.
	Frames [][]byte

	// Rest is the unconsumed tail of the input. Feed it back in, ahead of
	// the next chunk read from the wire.
	Rest []byte

	// Orphaned counts garbage bytes discarded while scanning for a
	// preamble.
	Orphaned int

	// CorruptFrames counts complete frames dropped for a CRC mismatch.
	CorruptFrames int
}

// Extract pulls every complete, CRC-valid frame out of buf. Bytes before
// a preamble are discarded as orphans, except when the whole buffer holds
// no preamble at all: then everything is kept as Rest, since a partial
// preamble may still be completed by the next chunk. Frames with a bad
// CRC are dropped and extraction continues with the following bytes.
func Extract(buf []byte) ExtractResult {
	var res ExtractResult

	for {
		var skipped int
		buf, skipped = skipToPreamble(buf)
		if skipped < 0 {
			// No preamble anywhere. Keep the buffer intact: it may end
			// mid-preamble.
			res.Rest = buf
			return res
		}
		res.Orphaned += skipped

		if len(buf) < MinFrameLength {
			res.Rest = buf
			return res
		}

		payloadLen := int(buf[2])
		total := MinFrameLength + payloadLen
		if len(buf) < total {
			res.Rest = buf
			return res
		}

		body := buf[2 : 4+payloadLen]
		wireCRC := binary.LittleEndian.Uint16(buf[4+payloadLen : total])
		if Checksum(body) == wireCRC {
			f := make([]byte, len(body))
			copy(f, body)
			res.Frames = append(res.Frames, f)
		} else {
			res.CorruptFrames++
		}
		buf = buf[total:]
	}
}

// skipToPreamble advances past bytes preceding the first preamble pair
// and reports how many it skipped. A return of -1 means no preamble pair
// starts anywhere in buf.
func skipToPreamble(buf []byte) ([]byte, int) {
	for i := 0; i+1 < len(buf); i++ {
		if buf[i] == Preamble1 && buf[i+1] == Preamble2 {
			return buf[i:], i
		}
	}
	return buf, -1
}

// Wrap frames a serialized message (length, opcode, payload) for the
// wire, prepending the preamble and appending the CRC-16 little endian.
func Wrap(body []byte) []byte {
	out := make([]byte, 0, len(body)+4)
	out = append(out, Preamble1, Preamble2)
	out = append(out, body...)
	return binary.LittleEndian.AppendUint16(out, Checksum(body))
}
