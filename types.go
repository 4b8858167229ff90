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

// ModelID identifies a mesh model supported by the modem.
type ModelID uint16

// Mesh model identifiers the modem can instantiate.
const (
	ModelGenOnOffClient       ModelID = 0x1001
	ModelGenLevelClient       ModelID = 0x1003
	ModelGenPowerOnOffClient  ModelID = 0x1008
	ModelLightLightnessClient ModelID = 0x1302
	ModelLightLCClient        ModelID = 0x1311
	ModelSensorServer         ModelID = 0x1100
	ModelSensorSetupServer    ModelID = 0x1101
	ModelLightLightnessServer ModelID = 0x1300
	ModelLightLCServer        ModelID = 0x130F
	ModelSensorClient         ModelID = 0x1102
	ModelHealthServer         ModelID = 0x0002
	ModelHealthClient         ModelID = 0x0003
)

var modelIDNames = map[ModelID]string{
	ModelGenOnOffClient:       "GenOnOffClient",
	ModelGenLevelClient:       "GenLevelClient",
	ModelGenPowerOnOffClient:  "GenPowerOnOffClient",
	ModelLightLightnessClient: "LightLightnessClient",
	ModelLightLCClient:        "LightLCClient",
	ModelSensorServer:         "SensorServer",
	ModelSensorSetupServer:    "SensorSetupServer",
	ModelLightLightnessServer: "LightLightnessServer",
	ModelLightLCServer:        "LightLCServer",
	ModelSensorClient:         "SensorClient",
	ModelHealthServer:         "HealthServer",
	ModelHealthClient:         "HealthClient",
}

func (m ModelID) String() string {
	if name, ok := modelIDNames[m]; ok {
		return name
	}
	return fmt.Sprintf("ModelID(0x%04X)", uint16(m))
}

// ModelDesc describes one mesh model to instantiate: the model identifier
// plus, for the sensor setup server only, a fixed 10-byte configuration
// block. All other models carry no configuration.
type ModelDesc struct {
	ModelID ModelID
	Config  []byte
}

// encodedLength returns the serialized size of the descriptor.
func (d *ModelDesc) encodedLength() int {
	if d.ModelID == ModelSensorSetupServer {
		return modelIDSize + len(d.Config)
	}
	return modelIDSize
}

func (d *ModelDesc) encode(w *payloadWriter) {
	w.writeUint16(uint16(d.ModelID))
	if d.ModelID == ModelSensorSetupServer {
		w.writeBytes(d.Config)
	}
}

func (d *ModelDesc) decode(r *payloadReader) error {
	id, err := r.readUint16()
	if err != nil {
		return err
	}
	d.ModelID = ModelID(id)
	if d.ModelID == ModelSensorSetupServer {
		cfg, err := r.readBytes(sensorSetupConfigSize)
		if err != nil {
			return err
		}
		d.Config = cfg
	}
	return nil
}

// ModemState reports which phase of its lifecycle the modem is in.
type ModemState uint8

// Modem lifecycle states.
const (
	StateInitDevice ModemState = 0x00
	StateDevice     ModemState = 0x01
	StateInitNode   ModemState = 0x02
	StateNode       ModemState = 0x03
	StateUnknown    ModemState = 0xFF
)

func (s ModemState) String() string {
	switch s {
	case StateInitDevice:
		return "InitDevice"
	case StateDevice:
		return "Device"
	case StateInitNode:
		return "InitNode"
	case StateNode:
		return "Node"
	case StateUnknown:
		return "Unknown"
	default:
		return fmt.Sprintf("ModemState(0x%02X)", uint8(s))
	}
}

// FactoryResetSource reports what triggered a factory reset.
type FactoryResetSource uint8

// Factory reset trigger sources.
const (
	ResetSourceMesh FactoryResetSource = 0x00
	ResetSourcePin  FactoryResetSource = 0x01
	ResetSourceRFU  FactoryResetSource = 0x02
)

func (s FactoryResetSource) String() string {
	switch s {
	case ResetSourceMesh:
		return "Mesh"
	case ResetSourcePin:
		return "Pin"
	case ResetSourceRFU:
		return "RFU"
	default:
		return fmt.Sprintf("FactoryResetSource(0x%02X)", uint8(s))
	}
}

// ErrorCode is the modem-reported failure cause carried by an Error
// message.
type ErrorCode uint8

// Modem error codes.
const (
	ErrorInvalidCRC                      ErrorCode = 0x00
	ErrorInvalidCmd                      ErrorCode = 0x01
	ErrorInvalidLen                      ErrorCode = 0x02
	ErrorInvalidState                    ErrorCode = 0x03
	ErrorInvalidParam                    ErrorCode = 0x04
	ErrorTimeout                         ErrorCode = 0x05
	ErrorNoLicenseForModelRegistration   ErrorCode = 0x06
	ErrorNoResourcesForModelRegistration ErrorCode = 0x07
	ErrorMeshMessageRequestProcess       ErrorCode = 0x08
)

var errorCodeNames = map[ErrorCode]string{
	ErrorInvalidCRC:                      "InvalidCRC",
	ErrorInvalidCmd:                      "InvalidCMD",
	ErrorInvalidLen:                      "InvalidLen",
	ErrorInvalidState:                    "InvalidState",
	ErrorInvalidParam:                    "InvalidParam",
	ErrorTimeout:                         "Timeout",
	ErrorNoLicenseForModelRegistration:   "NoLicenseForModelRegistration",
	ErrorNoResourcesForModelRegistration: "NoResourcesForModelRegistration",
	ErrorMeshMessageRequestProcess:       "MeshMessageRequestProcessError",
}

func (e ErrorCode) String() string {
	if name, ok := errorCodeNames[e]; ok {
		return name
	}
	return fmt.Sprintf("ErrorCode(0x%02X)", uint8(e))
}

// DFUStatus is the result code of a firmware-update operation.
type DFUStatus uint8

// DFU result codes.
const (
	DFUInvalidCode           DFUStatus = 0x00
	DFUSuccess               DFUStatus = 0x01
	DFUOpcodeNotSupported    DFUStatus = 0x02
	DFUInvalidParameter      DFUStatus = 0x03
	DFUInsufficientResources DFUStatus = 0x04
	DFUInvalidObject         DFUStatus = 0x05
	DFUUnsupportedType       DFUStatus = 0x07
	DFUOperationNotPermitted DFUStatus = 0x08
	DFUOperationFailed       DFUStatus = 0x0A
	DFUFirmwareUpdated       DFUStatus = 0xFF
)

var dfuStatusNames = map[DFUStatus]string{
	DFUInvalidCode:           "InvalidCode",
	DFUSuccess:               "Success",
	DFUOpcodeNotSupported:    "OpcodeNotSupported",
	DFUInvalidParameter:      "InvalidParameter",
	DFUInsufficientResources: "InsufficientResources",
	DFUInvalidObject:         "InvalidObject",
	DFUUnsupportedType:       "UnsupportedType",
	DFUOperationNotPermitted: "OperationNotPermitted",
	DFUOperationFailed:       "OperationFailed",
	DFUFirmwareUpdated:       "FirmwareSuccessfullyUpdated",
}

func (s DFUStatus) String() string {
	if name, ok := dfuStatusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("DFUStatus(0x%02X)", uint8(s))
}

// DfuState reports whether a firmware update is in progress.
type DfuState uint8

// DFU progress states.
const (
	DfuNotInProgress DfuState = 0x00
	DfuInProgress    DfuState = 0x01
)

func (s DfuState) String() string {
	switch s {
	case DfuNotInProgress:
		return "NotInProgress"
	case DfuInProgress:
		return "InProgress"
	default:
		return fmt.Sprintf("DfuState(0x%02X)", uint8(s))
	}
}

// AttentionState is the modem attention (identify) indicator.
type AttentionState uint8

// Attention indicator states.
const (
	AttentionOff AttentionState = 0x00
	AttentionOn  AttentionState = 0x01
)

func (s AttentionState) String() string {
	switch s {
	case AttentionOff:
		return "Off"
	case AttentionOn:
		return "On"
	default:
		return fmt.Sprintf("AttentionState(0x%02X)", uint8(s))
	}
}
