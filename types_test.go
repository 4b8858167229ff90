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
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnumStrings(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Node", StateNode.String())
	assert.Contains(t, ModemState(0x42).String(), "42")

	assert.Equal(t, "SensorSetupServer", ModelSensorSetupServer.String())
	assert.Contains(t, ModelID(0xBEEF).String(), "BEEF")

	assert.Equal(t, "InvalidLen", ErrorInvalidLen.String())
	assert.Equal(t, "Success", DFUSuccess.String())
	assert.Equal(t, "FirmwareSuccessfullyUpdated", DFUFirmwareUpdated.String())
	assert.Equal(t, "On", AttentionOn.String())
}

func TestModelDescEncodedLength(t *testing.T) {
	t.Parallel()

	plain := ModelDesc{ModelID: ModelGenOnOffClient}
	assert.Equal(t, 2, plain.encodedLength())

	setup := ModelDesc{
		ModelID: ModelSensorSetupServer,
		Config:  make([]byte, 10),
	}
	assert.Equal(t, 12, setup.encodedLength())
}
