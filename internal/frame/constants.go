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

// Frame markers
const (
	Preamble1 = 0xAA // First preamble byte, marks a frame boundary
	Preamble2 = 0x55 // Second preamble byte
)

// Frame size limits
const (
	MaxPayloadLength = 255 // LENGTH is a single byte
	MinFrameLength   = 6   // Minimum frame length (preamble + len + opcode + crc)
)
