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

// messageFactories maps every decodable opcode to a constructor for its
// message variant. OpOpcodeError is reserved on the wire and OpGeneric is
// encode-only, so neither has an entry.
var messageFactories = map[Opcode]func() Message{
	OpPingRequest:             func() Message { return &PingRequest{} },
	OpPongResponse:            func() Message { return &PongResponse{} },
	OpInitDeviceEvent:         func() Message { return &InitDeviceEvent{} },
	OpCreateInstancesRequest:  func() Message { return &CreateInstancesRequest{} },
	OpCreateInstancesResponse: func() Message { return &CreateInstancesResponse{} },
	OpInitNodeEvent:           func() Message { return &InitNodeEvent{} },
	OpMeshMessageRequest:      func() Message { return &MeshMessageRequest{} },
	OpStartNodeRequest:        func() Message { return &StartNodeRequest{} },
	OpStartNodeResponse:       func() Message { return &StartNodeResponse{} },
	OpFactoryResetRequest:     func() Message { return &FactoryResetRequest{} },
	OpFactoryResetResponse:    func() Message { return &FactoryResetResponse{} },
	OpFactoryResetEvent:       func() Message { return &FactoryResetEvent{} },
	OpMeshMessageResponse:     func() Message { return &MeshMessageResponse{} },
	OpCurrentStateRequest:     func() Message { return &CurrentStateRequest{} },
	OpCurrentStateResponse:    func() Message { return &CurrentStateResponse{} },
	OpError:                   func() Message { return &ErrorMessage{} },
	OpFirmwareVersionRequest:  func() Message { return &FirmwareVersionRequest{} },
	OpFirmwareVersionResponse: func() Message { return &FirmwareVersionResponse{} },
	OpSensorUpdateRequest:     func() Message { return &SensorUpdateRequest{} },
	OpAttentionEvent:          func() Message { return &AttentionEvent{} },
	OpSoftResetRequest:        func() Message { return &SoftResetRequest{} },
	OpSoftResetResponse:       func() Message { return &SoftResetResponse{} },
	OpSensorUpdateResponse:    func() Message { return &SensorUpdateResponse{} },
	OpDeviceUUIDRequest:       func() Message { return &DeviceUUIDRequest{} },
	OpDeviceUUIDResponse:      func() Message { return &DeviceUUIDResponse{} },
	OpStartTestRequest:        func() Message { return &StartTestRequest{} },
	OpStartTestResponse:       func() Message { return &StartTestResponse{} },
	OpDfuInitRequest:          func() Message { return &DfuInitRequest{} },
	OpDfuInitResponse:         func() Message { return &DfuInitResponse{} },
	OpDfuStatusRequest:        func() Message { return &DfuStatusRequest{} },
	OpDfuStatusResponse:       func() Message { return &DfuStatusResponse{} },
	OpDfuPageCreateRequest:    func() Message { return &DfuPageCreateRequest{} },
	OpDfuPageCreateResponse:   func() Message { return &DfuPageCreateResponse{} },
	OpDfuWriteDataEvent:       func() Message { return &DfuWriteDataEvent{} },
	OpDfuPageStoreRequest:     func() Message { return &DfuPageStoreRequest{} },
	OpDfuPageStoreResponse:    func() Message { return &DfuPageStoreResponse{} },
	OpDfuStateRequest:         func() Message { return &DfuStateRequest{} },
	OpDfuStateResponse:        func() Message { return &DfuStateResponse{} },
	OpDfuCancelRequest:        func() Message { return &DfuCancelRequest{} },
	OpDfuCancelResponse:       func() Message { return &DfuCancelResponse{} },
}

// NewMessage returns a zero-value message for the given opcode, or false
// when the opcode has no decodable variant.
func NewMessage(op Opcode) (Message, bool) {
	factory, ok := messageFactories[op]
	if !ok {
		return nil, false
	}
	return factory(), true
}
