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

// DfuInitRequest starts a firmware update, announcing the image size and
// digest plus an opaque application data blob. AppDataLength must match
// the trailing blob exactly.
type DfuInitRequest struct {
	AppData        []byte
	FirmwareSize   uint32
	FirmwareSHA256 [sha256Size]byte
	AppDataLength  uint8
}

func (*DfuInitRequest) Opcode() Opcode { return OpDfuInitRequest }

func (m *DfuInitRequest) payloadLength() int {
	return 4 + sha256Size + 1 + len(m.AppData)
}

func (m *DfuInitRequest) encodePayload(w *payloadWriter) {
	w.writeUint32(m.FirmwareSize)
	w.writeBytes(m.FirmwareSHA256[:])
	w.writeByte(m.AppDataLength)
	w.writeBytes(m.AppData)
}

func (m *DfuInitRequest) decodePayload(r *payloadReader, length int) error {
	var err error
	if m.FirmwareSize, err = r.readUint32(); err != nil {
		return err
	}
	sha, err := r.readBytes(sha256Size)
	if err != nil {
		return err
	}
	copy(m.FirmwareSHA256[:], sha)
	if m.AppDataLength, err = r.readByte(); err != nil {
		return err
	}
	remaining := length - 4 - sha256Size - 1
	if remaining != int(m.AppDataLength) {
		return ErrLengthMismatch
	}
	m.AppData, err = r.readBytes(remaining)
	return err
}

// DfuInitResponse reports whether the modem accepted a DfuInitRequest.
type DfuInitResponse struct {
	Status DFUStatus
}

func (*DfuInitResponse) Opcode() Opcode       { return OpDfuInitResponse }
func (m *DfuInitResponse) payloadLength() int { return 1 }

func (m *DfuInitResponse) encodePayload(w *payloadWriter) {
	w.writeByte(byte(m.Status))
}

func (m *DfuInitResponse) decodePayload(r *payloadReader, length int) error {
	b, err := r.readByte()
	if err != nil {
		return err
	}
	m.Status = DFUStatus(b)
	if length != 1 {
		return ErrLengthMismatch
	}
	return nil
}

// DfuStatusRequest queries the progress of an ongoing firmware update.
type DfuStatusRequest struct{ emptyPayload }

func (*DfuStatusRequest) Opcode() Opcode { return OpDfuStatusRequest }

// DfuStatusResponse reports the firmware update progress.
type DfuStatusResponse struct {
	SupportedPageSize uint32
	FirmwareOffset    uint32
	FirmwareCRC       uint32
	Status            DFUStatus
}

func (*DfuStatusResponse) Opcode() Opcode       { return OpDfuStatusResponse }
func (m *DfuStatusResponse) payloadLength() int { return 1 + 4 + 4 + 4 }

func (m *DfuStatusResponse) encodePayload(w *payloadWriter) {
	w.writeByte(byte(m.Status))
	w.writeUint32(m.SupportedPageSize)
	w.writeUint32(m.FirmwareOffset)
	w.writeUint32(m.FirmwareCRC)
}

func (m *DfuStatusResponse) decodePayload(r *payloadReader, length int) error {
	b, err := r.readByte()
	if err != nil {
		return err
	}
	m.Status = DFUStatus(b)
	if m.SupportedPageSize, err = r.readUint32(); err != nil {
		return err
	}
	if m.FirmwareOffset, err = r.readUint32(); err != nil {
		return err
	}
	if m.FirmwareCRC, err = r.readUint32(); err != nil {
		return err
	}
	if length != 13 {
		return ErrLengthMismatch
	}
	return nil
}

// DfuPageCreateRequest asks the modem to open a new firmware page.
type DfuPageCreateRequest struct {
	RequestedPageSize uint32
}

func (*DfuPageCreateRequest) Opcode() Opcode       { return OpDfuPageCreateRequest }
func (m *DfuPageCreateRequest) payloadLength() int { return 4 }

func (m *DfuPageCreateRequest) encodePayload(w *payloadWriter) {
	w.writeUint32(m.RequestedPageSize)
}

func (m *DfuPageCreateRequest) decodePayload(r *payloadReader, length int) error {
	var err error
	if m.RequestedPageSize, err = r.readUint32(); err != nil {
		return err
	}
	if length != 4 {
		return ErrLengthMismatch
	}
	return nil
}

// DfuPageCreateResponse reports whether the modem opened a firmware page.
type DfuPageCreateResponse struct {
	Status DFUStatus
}

func (*DfuPageCreateResponse) Opcode() Opcode       { return OpDfuPageCreateResponse }
func (m *DfuPageCreateResponse) payloadLength() int { return 1 }

func (m *DfuPageCreateResponse) encodePayload(w *payloadWriter) {
	w.writeByte(byte(m.Status))
}

func (m *DfuPageCreateResponse) decodePayload(r *payloadReader, length int) error {
	b, err := r.readByte()
	if err != nil {
		return err
	}
	m.Status = DFUStatus(b)
	if length != 1 {
		return ErrLengthMismatch
	}
	return nil
}

// DfuWriteDataEvent carries a chunk of firmware data into the open page.
// DataLength must match the trailing chunk exactly.
type DfuWriteDataEvent struct {
	Data       []byte
	DataLength uint8
}

func (*DfuWriteDataEvent) Opcode() Opcode       { return OpDfuWriteDataEvent }
func (m *DfuWriteDataEvent) payloadLength() int { return 1 + len(m.Data) }

func (m *DfuWriteDataEvent) encodePayload(w *payloadWriter) {
	w.writeByte(m.DataLength)
	w.writeBytes(m.Data)
}

func (m *DfuWriteDataEvent) decodePayload(r *payloadReader, length int) error {
	var err error
	if m.DataLength, err = r.readByte(); err != nil {
		return err
	}
	remaining := length - 1
	if remaining != int(m.DataLength) {
		return ErrLengthMismatch
	}
	m.Data, err = r.readBytes(remaining)
	return err
}

// DfuPageStoreRequest asks the modem to commit the open firmware page.
type DfuPageStoreRequest struct{ emptyPayload }

func (*DfuPageStoreRequest) Opcode() Opcode { return OpDfuPageStoreRequest }

// DfuPageStoreResponse reports whether the open page was committed.
type DfuPageStoreResponse struct {
	Status DFUStatus
}

func (*DfuPageStoreResponse) Opcode() Opcode       { return OpDfuPageStoreResponse }
func (m *DfuPageStoreResponse) payloadLength() int { return 1 }

func (m *DfuPageStoreResponse) encodePayload(w *payloadWriter) {
	w.writeByte(byte(m.Status))
}

func (m *DfuPageStoreResponse) decodePayload(r *payloadReader, length int) error {
	b, err := r.readByte()
	if err != nil {
		return err
	}
	m.Status = DFUStatus(b)
	if length != 1 {
		return ErrLengthMismatch
	}
	return nil
}

// DfuStateRequest queries whether a firmware update is in progress.
type DfuStateRequest struct{ emptyPayload }

func (*DfuStateRequest) Opcode() Opcode { return OpDfuStateRequest }

// DfuStateResponse reports whether a firmware update is in progress.
type DfuStateResponse struct {
	State DfuState
}

func (*DfuStateResponse) Opcode() Opcode       { return OpDfuStateResponse }
func (m *DfuStateResponse) payloadLength() int { return 1 }

func (m *DfuStateResponse) encodePayload(w *payloadWriter) {
	w.writeByte(byte(m.State))
}

func (m *DfuStateResponse) decodePayload(r *payloadReader, length int) error {
	b, err := r.readByte()
	if err != nil {
		return err
	}
	m.State = DfuState(b)
	if length != 1 {
		return ErrLengthMismatch
	}
	return nil
}

// DfuCancelRequest aborts an ongoing firmware update.
type DfuCancelRequest struct{ emptyPayload }

func (*DfuCancelRequest) Opcode() Opcode { return OpDfuCancelRequest }

// DfuCancelResponse acknowledges a DfuCancelRequest.
type DfuCancelResponse struct{ emptyPayload }

func (*DfuCancelResponse) Opcode() Opcode { return OpDfuCancelResponse }
