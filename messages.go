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
	"github.com/google/uuid"
)

// emptyPayload is the shared codec for message variants that carry no
// payload at all. Decoding requires LENGTH to be exactly zero.
type emptyPayload struct{}

func (emptyPayload) payloadLength() int           { return 0 }
func (emptyPayload) encodePayload(*payloadWriter) {}

func (emptyPayload) decodePayload(_ *payloadReader, length int) error {
	if length != 0 {
		return ErrLengthMismatch
	}
	return nil
}

// encodeModelIDs writes a packed list of 16-bit model identifiers.
func encodeModelIDs(w *payloadWriter, ids []ModelID) {
	for _, id := range ids {
		w.writeUint16(uint16(id))
	}
}

// decodeModelIDs consumes model identifiers until the declared length is
// exhausted. A remainder smaller than one identifier is a length mismatch.
func decodeModelIDs(r *payloadReader, length int) ([]ModelID, error) {
	var ids []ModelID
	for length >= modelIDSize {
		id, err := r.readUint16()
		if err != nil {
			return nil, err
		}
		ids = append(ids, ModelID(id))
		length -= modelIDSize
	}
	if length != 0 {
		return nil, ErrLengthMismatch
	}
	return ids, nil
}

// PingRequest asks the modem to echo data back in a PongResponse.
type PingRequest struct {
	Data []byte
}

func (*PingRequest) Opcode() Opcode                   { return OpPingRequest }
func (m *PingRequest) payloadLength() int             { return len(m.Data) }
func (m *PingRequest) encodePayload(w *payloadWriter) { w.writeBytes(m.Data) }

func (m *PingRequest) decodePayload(r *payloadReader, length int) error {
	data, err := r.readBytes(length)
	if err != nil {
		return err
	}
	m.Data = data
	return nil
}

// PongResponse echoes the data of a PingRequest.
type PongResponse struct {
	Data []byte
}

func (*PongResponse) Opcode() Opcode                   { return OpPongResponse }
func (m *PongResponse) payloadLength() int             { return len(m.Data) }
func (m *PongResponse) encodePayload(w *payloadWriter) { w.writeBytes(m.Data) }

func (m *PongResponse) decodePayload(r *payloadReader, length int) error {
	data, err := r.readBytes(length)
	if err != nil {
		return err
	}
	m.Data = data
	return nil
}

// InitDeviceEvent announces that the modem booted in device state, listing
// the mesh models it supports.
type InitDeviceEvent struct {
	ModelIDs []ModelID
}

func (*InitDeviceEvent) Opcode() Opcode       { return OpInitDeviceEvent }
func (m *InitDeviceEvent) payloadLength() int { return modelIDSize * len(m.ModelIDs) }

func (m *InitDeviceEvent) encodePayload(w *payloadWriter) {
	encodeModelIDs(w, m.ModelIDs)
}

func (m *InitDeviceEvent) decodePayload(r *payloadReader, length int) error {
	ids, err := decodeModelIDs(r, length)
	if err != nil {
		return err
	}
	m.ModelIDs = ids
	return nil
}

// CreateInstancesRequest asks the modem to instantiate model instances,
// one per descriptor. Sensor setup servers carry their configuration block
// inline.
type CreateInstancesRequest struct {
	Models []ModelDesc
}

func (*CreateInstancesRequest) Opcode() Opcode { return OpCreateInstancesRequest }

func (m *CreateInstancesRequest) payloadLength() int {
	n := 0
	for i := range m.Models {
		n += m.Models[i].encodedLength()
	}
	return n
}

func (m *CreateInstancesRequest) encodePayload(w *payloadWriter) {
	for i := range m.Models {
		m.Models[i].encode(w)
	}
}

func (m *CreateInstancesRequest) decodePayload(r *payloadReader, length int) error {
	var models []ModelDesc
	for length >= modelIDSize {
		var desc ModelDesc
		if err := desc.decode(r); err != nil {
			return err
		}
		length -= desc.encodedLength()
		models = append(models, desc)
	}
	if length != 0 {
		return ErrLengthMismatch
	}
	m.Models = models
	return nil
}

// CreateInstancesResponse lists the model instances the modem created.
type CreateInstancesResponse struct {
	ModelIDs []ModelID
}

func (*CreateInstancesResponse) Opcode() Opcode       { return OpCreateInstancesResponse }
func (m *CreateInstancesResponse) payloadLength() int { return modelIDSize * len(m.ModelIDs) }

func (m *CreateInstancesResponse) encodePayload(w *payloadWriter) {
	encodeModelIDs(w, m.ModelIDs)
}

func (m *CreateInstancesResponse) decodePayload(r *payloadReader, length int) error {
	ids, err := decodeModelIDs(r, length)
	if err != nil {
		return err
	}
	m.ModelIDs = ids
	return nil
}

// InitNodeEvent announces that the modem booted as a provisioned node,
// listing the instantiated models.
type InitNodeEvent struct {
	ModelIDs []ModelID
}

func (*InitNodeEvent) Opcode() Opcode       { return OpInitNodeEvent }
func (m *InitNodeEvent) payloadLength() int { return modelIDSize * len(m.ModelIDs) }

func (m *InitNodeEvent) encodePayload(w *payloadWriter) {
	encodeModelIDs(w, m.ModelIDs)
}

func (m *InitNodeEvent) decodePayload(r *payloadReader, length int) error {
	ids, err := decodeModelIDs(r, length)
	if err != nil {
		return err
	}
	m.ModelIDs = ids
	return nil
}

// MeshMessageRequest submits a raw mesh message for a model instance.
type MeshMessageRequest struct {
	Command       []byte
	MeshOpcode    uint16
	InstanceIndex uint8
	SubIndex      uint8
}

func (*MeshMessageRequest) Opcode() Opcode { return OpMeshMessageRequest }

func (m *MeshMessageRequest) payloadLength() int {
	return 1 + 1 + 2 + len(m.Command)
}

func (m *MeshMessageRequest) encodePayload(w *payloadWriter) {
	w.writeByte(m.InstanceIndex)
	w.writeByte(m.SubIndex)
	w.writeUint16(m.MeshOpcode)
	w.writeBytes(m.Command)
}

func (m *MeshMessageRequest) decodePayload(r *payloadReader, length int) error {
	var err error
	if m.InstanceIndex, err = r.readByte(); err != nil {
		return err
	}
	if m.SubIndex, err = r.readByte(); err != nil {
		return err
	}
	if m.MeshOpcode, err = r.readUint16(); err != nil {
		return err
	}
	m.Command, err = r.readBytes(length - 4)
	return err
}

// StartNodeRequest asks an unprovisioned modem to start as a node.
type StartNodeRequest struct{ emptyPayload }

func (*StartNodeRequest) Opcode() Opcode { return OpStartNodeRequest }

// StartNodeResponse acknowledges a StartNodeRequest.
type StartNodeResponse struct{ emptyPayload }

func (*StartNodeResponse) Opcode() Opcode { return OpStartNodeResponse }

// FactoryResetRequest asks the modem to wipe provisioning state.
type FactoryResetRequest struct{ emptyPayload }

func (*FactoryResetRequest) Opcode() Opcode { return OpFactoryResetRequest }

// FactoryResetResponse acknowledges a FactoryResetRequest.
type FactoryResetResponse struct{ emptyPayload }

func (*FactoryResetResponse) Opcode() Opcode { return OpFactoryResetResponse }

// FactoryResetEvent announces a factory reset not initiated by the host.
type FactoryResetEvent struct{ emptyPayload }

func (*FactoryResetEvent) Opcode() Opcode { return OpFactoryResetEvent }

// MeshMessageResponse acknowledges a MeshMessageRequest for one instance.
type MeshMessageResponse struct {
	InstanceIndex uint8
	SubIndex      uint8
}

func (*MeshMessageResponse) Opcode() Opcode       { return OpMeshMessageResponse }
func (m *MeshMessageResponse) payloadLength() int { return 2 }

func (m *MeshMessageResponse) encodePayload(w *payloadWriter) {
	w.writeByte(m.InstanceIndex)
	w.writeByte(m.SubIndex)
}

func (m *MeshMessageResponse) decodePayload(r *payloadReader, length int) error {
	var err error
	if m.InstanceIndex, err = r.readByte(); err != nil {
		return err
	}
	if m.SubIndex, err = r.readByte(); err != nil {
		return err
	}
	if length != 2 {
		return ErrLengthMismatch
	}
	return nil
}

// CurrentStateRequest queries the modem's lifecycle state.
type CurrentStateRequest struct{ emptyPayload }

func (*CurrentStateRequest) Opcode() Opcode { return OpCurrentStateRequest }

// CurrentStateResponse reports the modem's lifecycle state.
type CurrentStateResponse struct {
	State ModemState
}

func (*CurrentStateResponse) Opcode() Opcode       { return OpCurrentStateResponse }
func (m *CurrentStateResponse) payloadLength() int { return 1 }

func (m *CurrentStateResponse) encodePayload(w *payloadWriter) {
	w.writeByte(byte(m.State))
}

func (m *CurrentStateResponse) decodePayload(r *payloadReader, length int) error {
	b, err := r.readByte()
	if err != nil {
		return err
	}
	m.State = ModemState(b)
	if length != 1 {
		return ErrLengthMismatch
	}
	return nil
}

// ErrorMessage reports a protocol-level failure detected by the modem.
type ErrorMessage struct {
	Code ErrorCode
}

func (*ErrorMessage) Opcode() Opcode       { return OpError }
func (m *ErrorMessage) payloadLength() int { return 1 }

func (m *ErrorMessage) encodePayload(w *payloadWriter) {
	w.writeByte(byte(m.Code))
}

func (m *ErrorMessage) decodePayload(r *payloadReader, length int) error {
	b, err := r.readByte()
	if err != nil {
		return err
	}
	m.Code = ErrorCode(b)
	if length != 1 {
		return ErrLengthMismatch
	}
	return nil
}

// FirmwareVersionRequest queries the modem firmware version.
type FirmwareVersionRequest struct{ emptyPayload }

func (*FirmwareVersionRequest) Opcode() Opcode { return OpFirmwareVersionRequest }

// FirmwareVersionResponse carries the modem firmware version blob. The
// modem never reports an empty version, so a zero LENGTH is rejected.
type FirmwareVersionResponse struct {
	Version []byte
}

func (*FirmwareVersionResponse) Opcode() Opcode       { return OpFirmwareVersionResponse }
func (m *FirmwareVersionResponse) payloadLength() int { return len(m.Version) }

func (m *FirmwareVersionResponse) encodePayload(w *payloadWriter) {
	w.writeBytes(m.Version)
}

func (m *FirmwareVersionResponse) decodePayload(r *payloadReader, length int) error {
	if length == 0 {
		return ErrLengthMismatch
	}
	version, err := r.readBytes(length)
	if err != nil {
		return err
	}
	m.Version = version
	return nil
}

// SensorUpdateRequest publishes a sensor reading for a sensor server
// instance.
type SensorUpdateRequest struct {
	Data          []byte
	PropertyID    uint16
	InstanceIndex uint8
}

func (*SensorUpdateRequest) Opcode() Opcode { return OpSensorUpdateRequest }

func (m *SensorUpdateRequest) payloadLength() int {
	return 1 + 2 + len(m.Data)
}

func (m *SensorUpdateRequest) encodePayload(w *payloadWriter) {
	w.writeByte(m.InstanceIndex)
	w.writeUint16(m.PropertyID)
	w.writeBytes(m.Data)
}

func (m *SensorUpdateRequest) decodePayload(r *payloadReader, length int) error {
	var err error
	if m.InstanceIndex, err = r.readByte(); err != nil {
		return err
	}
	if m.PropertyID, err = r.readUint16(); err != nil {
		return err
	}
	m.Data, err = r.readBytes(length - 3)
	return err
}

// AttentionEvent reports the attention (identify) indicator changing.
type AttentionEvent struct {
	State AttentionState
}

func (*AttentionEvent) Opcode() Opcode       { return OpAttentionEvent }
func (m *AttentionEvent) payloadLength() int { return 1 }

func (m *AttentionEvent) encodePayload(w *payloadWriter) {
	w.writeByte(byte(m.State))
}

func (m *AttentionEvent) decodePayload(r *payloadReader, length int) error {
	b, err := r.readByte()
	if err != nil {
		return err
	}
	m.State = AttentionState(b)
	if length != 1 {
		return ErrLengthMismatch
	}
	return nil
}

// SoftResetRequest asks the modem to reboot without losing state.
type SoftResetRequest struct{ emptyPayload }

func (*SoftResetRequest) Opcode() Opcode { return OpSoftResetRequest }

// SoftResetResponse acknowledges a SoftResetRequest.
type SoftResetResponse struct{ emptyPayload }

func (*SoftResetResponse) Opcode() Opcode { return OpSoftResetResponse }

// SensorUpdateResponse acknowledges a SensorUpdateRequest.
type SensorUpdateResponse struct{ emptyPayload }

func (*SensorUpdateResponse) Opcode() Opcode { return OpSensorUpdateResponse }

// DeviceUUIDRequest queries the modem's device UUID.
type DeviceUUIDRequest struct{ emptyPayload }

func (*DeviceUUIDRequest) Opcode() Opcode { return OpDeviceUUIDRequest }

// DeviceUUIDResponse carries the modem's 16-byte device UUID.
type DeviceUUIDResponse struct {
	UUID uuid.UUID
}

func (*DeviceUUIDResponse) Opcode() Opcode       { return OpDeviceUUIDResponse }
func (m *DeviceUUIDResponse) payloadLength() int { return uuidSize }

func (m *DeviceUUIDResponse) encodePayload(w *payloadWriter) {
	w.writeBytes(m.UUID[:])
}

func (m *DeviceUUIDResponse) decodePayload(r *payloadReader, length int) error {
	raw, err := r.readBytes(uuidSize)
	if err != nil {
		return err
	}
	copy(m.UUID[:], raw)
	if length != uuidSize {
		return ErrLengthMismatch
	}
	return nil
}

// StartTestRequest triggers a health-model self test on one instance.
type StartTestRequest struct {
	CompanyID     uint16
	TestID        uint8
	InstanceIndex uint8
}

func (*StartTestRequest) Opcode() Opcode       { return OpStartTestRequest }
func (m *StartTestRequest) payloadLength() int { return 2 + 1 + 1 }

func (m *StartTestRequest) encodePayload(w *payloadWriter) {
	w.writeUint16(m.CompanyID)
	w.writeByte(m.TestID)
	w.writeByte(m.InstanceIndex)
}

func (m *StartTestRequest) decodePayload(r *payloadReader, length int) error {
	var err error
	if m.CompanyID, err = r.readUint16(); err != nil {
		return err
	}
	if m.TestID, err = r.readByte(); err != nil {
		return err
	}
	if m.InstanceIndex, err = r.readByte(); err != nil {
		return err
	}
	if length != 4 {
		return ErrLengthMismatch
	}
	return nil
}

// StartTestResponse acknowledges a StartTestRequest.
type StartTestResponse struct{ emptyPayload }

func (*StartTestResponse) Opcode() Opcode { return OpStartTestResponse }

// GenericMessage wraps an opaque payload under the catch-all opcode. It
// exists for encoding raw traffic only; the registry never decodes it.
type GenericMessage struct {
	Payload []byte
}

func (*GenericMessage) Opcode() Opcode                   { return OpGeneric }
func (m *GenericMessage) payloadLength() int             { return len(m.Payload) }
func (m *GenericMessage) encodePayload(w *payloadWriter) { w.writeBytes(m.Payload) }

func (*GenericMessage) decodePayload(*payloadReader, int) error {
	return ErrOpcodeMismatch
}
