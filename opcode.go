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

import "fmt"

// Opcode identifies a message variant on the wire. The opcode space is a
// flat 8-bit enumeration of request/response/event triplets per feature.
type Opcode uint8

// Modem command opcodes.
const (
	OpPingRequest             Opcode = 0x01
	OpPongResponse            Opcode = 0x02
	OpInitDeviceEvent         Opcode = 0x03
	OpCreateInstancesRequest  Opcode = 0x04
	OpCreateInstancesResponse Opcode = 0x05
	OpInitNodeEvent           Opcode = 0x06
	OpMeshMessageRequest      Opcode = 0x07
	// OpOpcodeError is reserved by the protocol but carries no defined
	// payload layout; it has no codec and decoding it fails.
	OpOpcodeError             Opcode = 0x08
	OpStartNodeRequest        Opcode = 0x09
	OpStartNodeResponse       Opcode = 0x0B
	OpFactoryResetRequest     Opcode = 0x0C
	OpFactoryResetResponse    Opcode = 0x0D
	OpFactoryResetEvent       Opcode = 0x0E
	OpMeshMessageResponse     Opcode = 0x0F
	OpCurrentStateRequest     Opcode = 0x10
	OpCurrentStateResponse    Opcode = 0x11
	OpError                   Opcode = 0x12
	OpFirmwareVersionRequest  Opcode = 0x13
	OpFirmwareVersionResponse Opcode = 0x14
	OpSensorUpdateRequest     Opcode = 0x15
	OpAttentionEvent          Opcode = 0x16
	OpSoftResetRequest        Opcode = 0x17
	OpSoftResetResponse       Opcode = 0x18
	OpSensorUpdateResponse    Opcode = 0x19
	OpDeviceUUIDRequest       Opcode = 0x1A
	OpDeviceUUIDResponse      Opcode = 0x1B
	OpStartTestRequest        Opcode = 0x20
	OpStartTestResponse       Opcode = 0x21
	OpDfuInitRequest          Opcode = 0x80
	OpDfuInitResponse         Opcode = 0x81
	OpDfuStatusRequest        Opcode = 0x82
	OpDfuStatusResponse       Opcode = 0x83
	OpDfuPageCreateRequest    Opcode = 0x84
	OpDfuPageCreateResponse   Opcode = 0x85
	OpDfuWriteDataEvent       Opcode = 0x86
	OpDfuPageStoreRequest     Opcode = 0x87
	OpDfuPageStoreResponse    Opcode = 0x88
	OpDfuStateRequest         Opcode = 0x89
	OpDfuStateResponse        Opcode = 0x8A
	OpDfuCancelRequest        Opcode = 0x8B
	OpDfuCancelResponse       Opcode = 0x8C
	// OpGeneric wraps an opaque payload. It is encode-only and is never
	// produced by decoding.
	OpGeneric Opcode = 0xFF
)

var opcodeNames = map[Opcode]string{
	OpPingRequest:             "PingRequest",
	OpPongResponse:            "PongResponse",
	OpInitDeviceEvent:         "InitDeviceEvent",
	OpCreateInstancesRequest:  "CreateInstancesRequest",
	OpCreateInstancesResponse: "CreateInstancesResponse",
	OpInitNodeEvent:           "InitNodeEvent",
	OpMeshMessageRequest:      "MeshMessageRequest",
	OpOpcodeError:             "OpcodeError",
	OpStartNodeRequest:        "StartNodeRequest",
	OpStartNodeResponse:       "StartNodeResponse",
	OpFactoryResetRequest:     "FactoryResetRequest",
	OpFactoryResetResponse:    "FactoryResetResponse",
	OpFactoryResetEvent:       "FactoryResetEvent",
	OpMeshMessageResponse:     "MeshMessageResponse",
	OpCurrentStateRequest:     "CurrentStateRequest",
	OpCurrentStateResponse:    "CurrentStateResponse",
	OpError:                   "Error",
	OpFirmwareVersionRequest:  "FirmwareVersionRequest",
	OpFirmwareVersionResponse: "FirmwareVersionResponse",
	OpSensorUpdateRequest:     "SensorUpdateRequest",
	OpAttentionEvent:          "AttentionEvent",
	OpSoftResetRequest:        "SoftResetRequest",
	OpSoftResetResponse:       "SoftResetResponse",
	OpSensorUpdateResponse:    "SensorUpdateResponse",
	OpDeviceUUIDRequest:       "DeviceUUIDRequest",
	OpDeviceUUIDResponse:      "DeviceUUIDResponse",
	OpStartTestRequest:        "StartTestRequest",
	OpStartTestResponse:       "StartTestResponse",
	OpDfuInitRequest:          "DfuInitRequest",
	OpDfuInitResponse:         "DfuInitResponse",
	OpDfuStatusRequest:        "DfuStatusRequest",
	OpDfuStatusResponse:       "DfuStatusResponse",
	OpDfuPageCreateRequest:    "DfuPageCreateRequest",
	OpDfuPageCreateResponse:   "DfuPageCreateResponse",
	OpDfuWriteDataEvent:       "DfuWriteDataEvent",
	OpDfuPageStoreRequest:     "DfuPageStoreRequest",
	OpDfuPageStoreResponse:    "DfuPageStoreResponse",
	OpDfuStateRequest:         "DfuStateRequest",
	OpDfuStateResponse:        "DfuStateResponse",
	OpDfuCancelRequest:        "DfuCancelRequest",
	OpDfuCancelResponse:       "DfuCancelResponse",
	OpGeneric:                 "Generic",
}

// String returns the opcode's protocol name, or a hex form for values the
// protocol does not define.
func (o Opcode) String() string {
	if name, ok := opcodeNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(0x%02X)", uint8(o))
}
