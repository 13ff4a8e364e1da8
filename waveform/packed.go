package waveform

import (
	"encoding/binary"
	"fmt"
)

// Packed is the dense 64-bit encoding of a [Bin]. The bit layout is a fixed
// binary contract shared with downstream renderers:
//
//	bits  0..7   All.Peak     bits 32..39  Mid.Peak
//	bits  8..15  All.Energy   bits 40..47  Mid.Energy
//	bits 16..23  Low.Peak     bits 48..55  High.Peak
//	bits 24..31  Low.Energy   bits 56..63  High.Energy
//
// Each field is a [Val]. Packing is a plain bit concatenation, so it is
// injective: distinct bins always produce distinct Packed values, and
// Unpack(Pack(b)) == b holds exactly. When serialized to bytes the value is
// written little-endian (see [Packed.AppendBinary]), placing All.Peak in the
// first byte and High.Energy in the last.
type Packed uint64

// PackedSize is the serialized size of a Packed bin in bytes.
const PackedSize = 8

// Pack encodes the bin into its 64-bit representation.
func (b Bin) Pack() Packed {
	return Packed(b.All.Peak) |
		Packed(b.All.Energy)<<8 |
		Packed(b.Low.Peak)<<16 |
		Packed(b.Low.Energy)<<24 |
		Packed(b.Mid.Peak)<<32 |
		Packed(b.Mid.Energy)<<40 |
		Packed(b.High.Peak)<<48 |
		Packed(b.High.Energy)<<56
}

// Unpack decodes the 64-bit representation back into a Bin. The decoder is
// stateless: the same Packed value always yields the same Bin.
func (p Packed) Unpack() Bin {
	return Bin{
		All: BandSummary{
			Peak:   Val(p),
			Energy: Val(p >> 8),
		},
		Low: BandSummary{
			Peak:   Val(p >> 16),
			Energy: Val(p >> 24),
		},
		Mid: BandSummary{
			Peak:   Val(p >> 32),
			Energy: Val(p >> 40),
		},
		High: BandSummary{
			Peak:   Val(p >> 48),
			Energy: Val(p >> 56),
		},
	}
}

// AppendBinary appends the little-endian serialization of p to dst and
// returns the extended slice.
func (p Packed) AppendBinary(dst []byte) []byte {
	return binary.LittleEndian.AppendUint64(dst, uint64(p))
}

// PackedFromBytes reads a little-endian Packed value from the first
// [PackedSize] bytes of b.
func PackedFromBytes(b []byte) (Packed, error) {
	if len(b) < PackedSize {
		return 0, fmt.Errorf("waveform: packed bin needs %d bytes, got %d", PackedSize, len(b))
	}

	return Packed(binary.LittleEndian.Uint64(b)), nil
}
