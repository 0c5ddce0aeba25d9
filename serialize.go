package uca

import (
	"bytes"
	"encoding/binary"
	"io"
)

// weightsDataVersion identifies the on-disk layout WriteTo writes and
// ReadFrom understands. Bumped whenever that layout changes incompatibly.
const weightsDataVersion uint64 = 1

// WriteTo serializes d using a compact, version-tagged binary layout:
//
//	8 bytes  version
//	20 bytes array lengths (Index, Scalars32, Scalars64, Expansions, Tries; u32 each)
//	4 bytes  ContinuousBlockEnd
//	...      Index       (u16 little-endian, one per entry)
//	...      Scalars32   (u32 little-endian, one per entry)
//	...      Scalars64   (u64 little-endian, one per entry)
//	...      Expansions  (u32 little-endian, one per entry)
//	...      Tries       (u32 little-endian, one per entry)
//
// This lets a caller bake a full WeightsData once (SPEC_FULL.md §4.H) and
// load it at startup without re-running whatever produced it.
func (d WeightsData) WriteTo(w io.Writer) (int64, error) {
	var n int64

	var hdr [8]byte
	binary.LittleEndian.PutUint64(hdr[:], weightsDataVersion)
	nn, err := w.Write(hdr[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}

	var lens [20]byte
	binary.LittleEndian.PutUint32(lens[0:], uint32(len(d.Index)))
	binary.LittleEndian.PutUint32(lens[4:], uint32(len(d.Scalars32)))
	binary.LittleEndian.PutUint32(lens[8:], uint32(len(d.Scalars64)))
	binary.LittleEndian.PutUint32(lens[12:], uint32(len(d.Expansions)))
	binary.LittleEndian.PutUint32(lens[16:], uint32(len(d.Tries)))
	nn, err = w.Write(lens[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}

	var cbe [4]byte
	binary.LittleEndian.PutUint32(cbe[:], d.ContinuousBlockEnd)
	nn, err = w.Write(cbe[:])
	n += int64(nn)
	if err != nil {
		return n, err
	}

	for _, chunk := range []struct {
		write func() (int, error)
	}{
		{func() (int, error) { return writeU16s(w, d.Index) }},
		{func() (int, error) { return writeU32s(w, d.Scalars32) }},
		{func() (int, error) { return writeU64s(w, d.Scalars64) }},
		{func() (int, error) { return writeU32s(w, d.Expansions) }},
		{func() (int, error) { return writeU32s(w, d.Tries) }},
	} {
		nn, err := chunk.write()
		n += int64(nn)
		if err != nil {
			return n, err
		}
	}

	return n, nil
}

// ReadWeightsDataFrom deserializes a WeightsData previously written by
// WeightsData.WriteTo. It returns ErrBadVersion if r's format version is not
// one this build understands.
func ReadWeightsDataFrom(r io.Reader) (WeightsData, int64, error) {
	var d WeightsData
	var n int64

	var hdr [8]byte
	nn, err := io.ReadFull(r, hdr[:])
	n += int64(nn)
	if err != nil {
		return d, n, err
	}
	if binary.LittleEndian.Uint64(hdr[:]) != weightsDataVersion {
		return d, n, ErrBadVersion
	}

	var lens [20]byte
	nn, err = io.ReadFull(r, lens[:])
	n += int64(nn)
	if err != nil {
		return d, n, err
	}
	indexLen := binary.LittleEndian.Uint32(lens[0:])
	scalars32Len := binary.LittleEndian.Uint32(lens[4:])
	scalars64Len := binary.LittleEndian.Uint32(lens[8:])
	expansionsLen := binary.LittleEndian.Uint32(lens[12:])
	triesLen := binary.LittleEndian.Uint32(lens[16:])

	var cbe [4]byte
	nn, err = io.ReadFull(r, cbe[:])
	n += int64(nn)
	if err != nil {
		return d, n, err
	}
	d.ContinuousBlockEnd = binary.LittleEndian.Uint32(cbe[:])

	d.Index, nn, err = readU16s(r, int(indexLen))
	n += int64(nn)
	if err != nil {
		return d, n, err
	}
	d.Scalars32, nn, err = readU32s(r, int(scalars32Len))
	n += int64(nn)
	if err != nil {
		return d, n, err
	}
	d.Scalars64, nn, err = readU64s(r, int(scalars64Len))
	n += int64(nn)
	if err != nil {
		return d, n, err
	}
	d.Expansions, nn, err = readU32s(r, int(expansionsLen))
	n += int64(nn)
	if err != nil {
		return d, n, err
	}
	d.Tries, nn, err = readU32s(r, int(triesLen))
	n += int64(nn)
	if err != nil {
		return d, n, err
	}

	return d, n, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (d WeightsData) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if _, err := d.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (d *WeightsData) UnmarshalBinary(data []byte) error {
	decoded, _, err := ReadWeightsDataFrom(bytes.NewReader(data))
	if err != nil {
		return err
	}
	*d = decoded
	return nil
}

func writeU16s(w io.Writer, vals []uint16) (int, error) {
	buf := make([]byte, len(vals)*2)
	for i, v := range vals {
		binary.LittleEndian.PutUint16(buf[i*2:], v)
	}
	return w.Write(buf)
}

func writeU32s(w io.Writer, vals []uint32) (int, error) {
	buf := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], v)
	}
	return w.Write(buf)
}

func writeU64s(w io.Writer, vals []uint64) (int, error) {
	buf := make([]byte, len(vals)*8)
	for i, v := range vals {
		binary.LittleEndian.PutUint64(buf[i*8:], v)
	}
	return w.Write(buf)
}

func readU16s(r io.Reader, count int) ([]uint16, int, error) {
	if count == 0 {
		return nil, 0, nil
	}
	buf := make([]byte, count*2)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return nil, n, err
	}
	out := make([]uint16, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(buf[i*2:])
	}
	return out, n, nil
}

func readU32s(r io.Reader, count int) ([]uint32, int, error) {
	if count == 0 {
		return nil, 0, nil
	}
	buf := make([]byte, count*4)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return nil, n, err
	}
	out := make([]uint32, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint32(buf[i*4:])
	}
	return out, n, nil
}

func readU64s(r io.Reader, count int) ([]uint64, int, error) {
	if count == 0 {
		return nil, 0, nil
	}
	buf := make([]byte, count*8)
	n, err := io.ReadFull(r, buf)
	if err != nil {
		return nil, n, err
	}
	out := make([]uint64, count)
	for i := range out {
		out[i] = binary.LittleEndian.Uint64(buf[i*8:])
	}
	return out, n, nil
}
