package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const (
	version byte = 2
	hdrLen       = 4 + 1 + 1 + 4
)

var (
	ErrCorrupt = errors.New("utf8codec: corrupt entry")
	magic4     = [...]byte{'U', 'T', 'F', '8'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Entry: magic(4) | ver(1) | flags(1) | vlen(u32 be) | payload(vlen)
//
// No flags are defined; entries with any flag bit set are corrupt.
func EncodeEntry(payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(hdrLen + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)
	buf.WriteByte(0)

	var u4 [4]byte
	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])

	buf.Write(payload)
	return buf.Bytes()
}

// DecodeEntry returns the payload as a subslice of b.
func DecodeEntry(b []byte) (payload []byte, err error) {
	if len(b) < hdrLen || !hasMagic(b) || b[4] != version || b[5] != 0 {
		return nil, ErrCorrupt
	}

	off := 6
	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen != len(b)-off { // no trailing bytes
		return nil, ErrCorrupt
	}

	return b[off : off+vlen], nil
}
