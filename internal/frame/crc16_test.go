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

package frame

import "testing"

func TestChecksum(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		data []byte
		want uint16
	}{
		{
			name: "empty data",
			data: []byte{},
			want: 0xFFFF, // init value passes through untouched
		},
		{
			name: "standard check value",
			data: []byte("123456789"),
			want: 0xAEE7, // CRC-16/CMS check
		},
		{
			name: "ping frame body",
			data: []byte{0x01, 0x01, 0xAA},
			want: 0x8BEB,
		},
		{
			name: "ping frame body alternate data",
			data: []byte{0x01, 0x01, 0x22},
			want: 0x88DB,
		},
		{
			name: "empty payload body",
			data: []byte{0x00, 0x02},
			want: 0x0002,
		},
		{
			name: "model list body",
			data: []byte{0x06, 0x03, 0x01, 0x10, 0x03, 0x10, 0x08, 0x10},
			want: 0x9357,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Checksum(tt.data); got != tt.want {
				t.Errorf("Checksum() = 0x%04X, want 0x%04X", got, tt.want)
			}
		})
	}
}
