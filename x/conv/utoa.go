// Package conv holds tiny number-to-text helpers that avoid fmt on MCU
// builds.
package conv

// AppendUint8 appends the decimal form of v to dst and returns the
// extended slice.
func AppendUint8(dst []byte, v uint8) []byte {
	if v >= 100 {
		dst = append(dst, '0'+v/100)
	}
	if v >= 10 {
		dst = append(dst, '0'+(v/10)%10)
	}
	return append(dst, '0'+v%10)
}

// AppendUint32 appends the decimal form of v to dst and returns the
// extended slice.
func AppendUint32(dst []byte, v uint32) []byte {
	var buf [10]byte
	i := len(buf)
	for {
		i--
		buf[i] = '0' + byte(v%10)
		v /= 10
		if v == 0 {
			break
		}
	}
	return append(dst, buf[i:]...)
}
