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

package frame

import "github.com/sigurn/crc16"

// The modem computes frame checksums with CRC-16/CMS: polynomial 0x8005,
// initial value 0xFFFF, no bit reflection, no final XOR.
var crcTable = crc16.MakeTable(crc16.Params{
	Poly:  0x8005,
	Init:  0xFFFF,
	Check: 0xAEE7,
	Name:  "CRC-16/CMS",
})

// Checksum computes the CRC-16 the modem expects over the length, opcode
// and payload bytes of a frame.
func Checksum(data []byte) uint16 {
	return crc16.Checksum(data, crcTable)
}
