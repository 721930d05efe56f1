package itemp

import "encoding/binary"

// MarshalBinary implements encoding.BinaryMarshaler. An ITemp marshals to
// exactly 2 bytes, big-endian.
func (t ITemp) MarshalBinary() (data []byte, err error) {
	data = make([]byte, 2)
	binary.BigEndian.PutUint16(data, uint16(t))

	return data, nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *ITemp) UnmarshalBinary(data []byte) (err error) {
	if len(data) != 2 {
		return Error.New("invalid length: %d", len(data))
	}

	*t = ITemp(binary.BigEndian.Uint16(data))

	return nil
}
