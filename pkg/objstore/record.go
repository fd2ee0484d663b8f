package objstore

import "fmt"

// Disk-backed drivers persist an object as a single value: one type byte
// followed by the raw payload. The identity is the key, so it is not
// repeated in the value.

func EncodeRecord(typ Type, data []byte) []byte {
	buf := make([]byte, 1+len(data))
	buf[0] = byte(typ)
	copy(buf[1:], data)
	return buf
}

func DecodeRecord(value []byte) (Type, []byte, error) {
	if len(value) < 1 {
		return TypeInvalid, nil, fmt.Errorf("%w: empty record", ErrBadObject)
	}
	typ := Type(value[0])
	if !typ.Valid() {
		return TypeInvalid, nil, fmt.Errorf("%w: record type tag %d", ErrInvalidType, value[0])
	}
	return typ, value[1:], nil
}
