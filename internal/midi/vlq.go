package midi

// AppendVLQ appends v to dst as a variable-length quantity: 7-bit groups,
// most significant first, high bit set on every byte except the last.
// Delta-times in track chunks use this form; the format caps meaningful
// values at 0x0FFFFFFF (four bytes).
func AppendVLQ(dst []byte, v uint32) []byte {
	var groups [5]byte
	n := 0
	for {
		groups[n] = byte(v & 0x7F)
		n++
		v >>= 7
		if v == 0 {
			break
		}
	}

	for i := n - 1; i > 0; i-- {
		dst = append(dst, groups[i]|0x80)
	}
	return append(dst, groups[0])
}
