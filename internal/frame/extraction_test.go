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

import (
	"bytes"
	"testing"
)

// Reference wire frames, CRC included.
var (
	wirePingAA    = []byte{0xAA, 0x55, 0x01, 0x01, 0xAA, 0xEB, 0x8B}
	wirePing22    = []byte{0xAA, 0x55, 0x01, 0x01, 0x22, 0xDB, 0x88}
	wireModelList = []byte{0xAA, 0x55, 0x06, 0x03, 0x01, 0x10, 0x03, 0x10, 0x08, 0x10, 0x57, 0x93}
	// wirePingAA with the high CRC byte flipped
	wireCorrupt = []byte{0xAA, 0x55, 0x01, 0x01, 0xAA, 0xEB, 0x74}
)

func concat(chunks ...[]byte) []byte {
	var out []byte
	for _, c := range chunks {
		out = append(out, c...)
	}
	return out
}

func TestExtract(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name        string
		input       []byte
		wantFrames  [][]byte
		wantRest    []byte
		wantOrphans int
		wantCorrupt int
	}{
		{
			name:       "single frame",
			input:      wirePingAA,
			wantFrames: [][]byte{{0x01, 0x01, 0xAA}},
			wantRest:   []byte{},
		},
		{
			name:  "two frames back to back",
			input: concat(wirePingAA, wireModelList),
			wantFrames: [][]byte{
				{0x01, 0x01, 0xAA},
				{0x06, 0x03, 0x01, 0x10, 0x03, 0x10, 0x08, 0x10},
			},
			wantRest: []byte{},
		},
		{
			name:       "complete frame followed by partial frame",
			input:      concat(wirePing22, []byte{0xAA, 0x55, 0x01, 0x01}),
			wantFrames: [][]byte{{0x01, 0x01, 0x22}},
			wantRest:   []byte{0xAA, 0x55, 0x01, 0x01},
		},
		{
			name:     "incomplete header",
			input:    []byte{0xAA, 0x55, 0x04, 0x07},
			wantRest: []byte{0xAA, 0x55, 0x04, 0x07},
		},
		{
			name:     "incomplete payload",
			input:    wireModelList[:9],
			wantRest: wireModelList[:9],
		},
		{
			name:        "garbage before frame is dropped",
			input:       concat([]byte{0x00, 0x13, 0x37}, wirePingAA),
			wantFrames:  [][]byte{{0x01, 0x01, 0xAA}},
			wantRest:    []byte{},
			wantOrphans: 3,
		},
		{
			name:     "garbage without preamble is kept",
			input:    []byte{0x00, 0x13, 0x37, 0xAA},
			wantRest: []byte{0x00, 0x13, 0x37, 0xAA},
		},
		{
			name:       "lone trailing preamble byte stays buffered",
			input:      concat(wirePingAA, []byte{0xAA}),
			wantFrames: [][]byte{{0x01, 0x01, 0xAA}},
			wantRest:   []byte{0xAA},
		},
		{
			name:        "corrupt frame is skipped and extraction continues",
			input:       concat(wireCorrupt, wirePing22),
			wantFrames:  [][]byte{{0x01, 0x01, 0x22}},
			wantRest:    []byte{},
			wantCorrupt: 1,
		},
		{
			name:     "empty input",
			input:    []byte{},
			wantRest: []byte{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			res := Extract(tt.input)
			if len(res.Frames) != len(tt.wantFrames) {
				t.Fatalf("Extract() got %d frames, want %d", len(res.Frames), len(tt.wantFrames))
			}
			for i := range tt.wantFrames {
				if !bytes.Equal(res.Frames[i], tt.wantFrames[i]) {
					t.Errorf("frame %d = %x, want %x", i, res.Frames[i], tt.wantFrames[i])
				}
			}
			if !bytes.Equal(res.Rest, tt.wantRest) && len(res.Rest)+len(tt.wantRest) > 0 {
				t.Errorf("rest = %x, want %x", res.Rest, tt.wantRest)
			}
			if res.Orphaned != tt.wantOrphans {
				t.Errorf("orphaned = %d, want %d", res.Orphaned, tt.wantOrphans)
			}
			if res.CorruptFrames != tt.wantCorrupt {
				t.Errorf("corrupt frames = %d, want %d", res.CorruptFrames, tt.wantCorrupt)
			}
		})
	}
}

// A frame arriving one byte at a time must survive reassembly across
// Extract calls, carrying the rest forward each time.
func TestExtractByteAtATime(t *testing.T) {
	t.Parallel()

	var pending []byte
	var frames [][]byte
	for _, b := range wireModelList {
		pending = append(pending, b)
		res := Extract(pending)
		pending = append([]byte(nil), res.Rest...)
		frames = append(frames, res.Frames...)
	}

	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	if want := wireModelList[2 : len(wireModelList)-2]; !bytes.Equal(frames[0], want) {
		t.Errorf("frame = %x, want %x", frames[0], want)
	}
	if len(pending) != 0 {
		t.Errorf("rest = %x, want empty", pending)
	}
}

func TestWrap(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		body []byte
		want []byte
	}{
		{
			name: "ping",
			body: []byte{0x01, 0x01, 0xAA},
			want: wirePingAA,
		},
		{
			name: "empty payload",
			body: []byte{0x00, 0x02},
			want: []byte{0xAA, 0x55, 0x00, 0x02, 0x02, 0x00},
		},
		{
			name: "model list",
			body: []byte{0x06, 0x03, 0x01, 0x10, 0x03, 0x10, 0x08, 0x10},
			want: wireModelList,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Wrap(tt.body); !bytes.Equal(got, tt.want) {
				t.Errorf("Wrap() = %x, want %x", got, tt.want)
			}
		})
	}
}

// Wrap output must come back out of Extract unchanged.
func TestWrapExtractRoundTrip(t *testing.T) {
	t.Parallel()

	body := []byte{0x02, 0x0F, 0x01, 0x02}
	res := Extract(Wrap(body))
	if len(res.Frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(res.Frames))
	}
	if !bytes.Equal(res.Frames[0], body) {
		t.Errorf("frame = %x, want %x", res.Frames[0], body)
	}
	if len(res.Rest) != 0 {
		t.Errorf("rest = %x, want empty", res.Rest)
	}
}
