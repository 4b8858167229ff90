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

// Package meshmodem implements the binary control protocol spoken by
// mesh-network modems over a serial link: the typed message catalog, the
// preamble/length/CRC-16 wire framing, and a concurrent adapter that turns
// the raw byte stream into decoded messages delivered to observers.
package meshmodem

import (
	"encoding/binary"
)

// Message is a single typed protocol message. Messages are value objects:
// they are constructed and serialized, or decoded and handed to observers,
// and are never mutated after being exposed.
//
// All concrete variants live in this package; the codec methods are
// unexported because the payload layouts are fixed by the protocol.
type Message interface {
	// Opcode returns the wire opcode of this message variant.
	Opcode() Opcode

	// payloadLength returns the serialized payload size in bytes, derived
	// from the message's own fields. It must match the LENGTH field of any
	// frame carrying this message.
	payloadLength() int

	encodePayload(w *payloadWriter)
	decodePayload(r *payloadReader, length int) error
}

// Field sizes shared by the message codecs, in bytes.
const (
	maxPayloadLength = 255

	modelIDSize           = 2
	sensorSetupConfigSize = 10
	uuidSize              = 16
	sha256Size            = 32
)

// Serialize encodes msg into a raw message buffer: LENGTH, OPCODE, then the
// payload fields in declared order, all little-endian. The result carries
// no preamble and no CRC; see the frame layer for wire framing.
func Serialize(msg Message) ([]byte, error) {
	n := msg.payloadLength()
	if n > maxPayloadLength {
		return nil, &DecodeError{Op: "serialize", Opcode: msg.Opcode(), Err: ErrMessageTooLarge}
	}
	w := &payloadWriter{buf: make([]byte, 0, 2+n)}
	w.writeByte(byte(n))
	w.writeByte(byte(msg.Opcode()))
	msg.encodePayload(w)
	return w.buf, nil
}

// Deserialize decodes a raw message buffer (LENGTH, OPCODE, payload — no
// preamble, no CRC) into its typed message. The opcode is read from the
// second byte and resolved through the registry; unknown opcodes and the
// encode-only Generic opcode fail with ErrOpcodeMismatch, and any
// disagreement between the LENGTH field and the payload's actual shape
// fails with ErrLengthMismatch. No partial result is returned on error.
func Deserialize(data []byte) (Message, error) {
	if len(data) < 2 {
		return nil, &DecodeError{Op: "deserialize", Err: ErrLengthMismatch}
	}
	op := Opcode(data[1])
	newMsg, ok := messageFactories[op]
	if !ok {
		return nil, &DecodeError{Op: "deserialize", Opcode: op, Err: ErrOpcodeMismatch}
	}
	msg := newMsg()
	if err := decodeInto(msg, data); err != nil {
		return nil, &DecodeError{Op: "deserialize", Opcode: op, Err: err}
	}
	return msg, nil
}

// decodeInto runs the shared header codec and then the variant's payload
// codec. It is the decode half of the common message part: every variant
// shares the LENGTH and OPCODE bytes and only the payload differs.
func decodeInto(msg Message, data []byte) error {
	r := &payloadReader{data: data}
	length, err := r.readByte()
	if err != nil {
		return err
	}
	op, err := r.readByte()
	if err != nil {
		return err
	}
	if Opcode(op) != msg.Opcode() {
		return ErrOpcodeMismatch
	}
	return msg.decodePayload(r, int(length))
}

// payloadReader is an explicit cursor over an immutable byte slice. Every
// read is bounds-checked; underrun fails with ErrLengthMismatch rather
// than returning a short result.
type payloadReader struct {
	data []byte
	off  int
}

func (r *payloadReader) readByte() (byte, error) {
	if r.off+1 > len(r.data) {
		return 0, ErrLengthMismatch
	}
	b := r.data[r.off]
	r.off++
	return b, nil
}

func (r *payloadReader) readUint16() (uint16, error) {
	if r.off+2 > len(r.data) {
		return 0, ErrLengthMismatch
	}
	v := binary.LittleEndian.Uint16(r.data[r.off:])
	r.off += 2
	return v, nil
}

func (r *payloadReader) readUint32() (uint32, error) {
	if r.off+4 > len(r.data) {
		return 0, ErrLengthMismatch
	}
	v := binary.LittleEndian.Uint32(r.data[r.off:])
	r.off += 4
	return v, nil
}

// readBytes consumes exactly n bytes and returns a copy. A zero count
// returns nil so that round-tripped blob fields compare equal to their
// unset form.
func (r *payloadReader) readBytes(n int) ([]byte, error) {
	if n < 0 || r.off+n > len(r.data) {
		return nil, ErrLengthMismatch
	}
	if n == 0 {
		return nil, nil
	}
	out := make([]byte, n)
	copy(out, r.data[r.off:r.off+n])
	r.off += n
	return out, nil
}

// payloadWriter appends little-endian fields to a growing buffer. Writes
// are infallible; sizing errors are caught before encoding starts.
type payloadWriter struct {
	buf []byte
}

func (w *payloadWriter) writeByte(b byte) {
	w.buf = append(w.buf, b)
}

func (w *payloadWriter) writeUint16(v uint16) {
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *payloadWriter) writeUint32(v uint32) {
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

func (w *payloadWriter) writeBytes(b []byte) {
	w.buf = append(w.buf, b...)
}
