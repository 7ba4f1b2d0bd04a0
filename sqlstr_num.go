package sqlstr

// Each pair of bytes is the decimal representation of its index / 2.
const decPairs = `0001020304050607080910111213141516171819` +
	`2021222324252627282930313233343536373839` +
	`4041424344454647484950515253545556575859` +
	`6061626364656667686970717273747576777879` +
	`8081828384858687888990919293949596979899`

// Max digits of a `uint32`.
const uint32Digits = 10

/*
Writes the base 10 digits of the number to the end of the buffer, returning the
written part. Doesn't allocate. Processes four digits per division while
possible, using two lookups in `decPairs`.
*/
func formatUint32(num uint32, buf *[uint32Digits]byte) []byte {
	ind := len(buf)

	for num > 9999 {
		rem := num % 10000
		num /= 10000
		hi, lo := (rem/100)*2, (rem%100)*2
		buf[ind-1] = decPairs[lo+1]
		buf[ind-2] = decPairs[lo]
		buf[ind-3] = decPairs[hi+1]
		buf[ind-4] = decPairs[hi]
		ind -= 4
	}

	for num > 99 {
		pair := (num % 100) * 2
		num /= 100
		buf[ind-1] = decPairs[pair+1]
		buf[ind-2] = decPairs[pair]
		ind -= 2
	}

	if num > 9 {
		pair := num * 2
		buf[ind-1] = decPairs[pair+1]
		buf[ind-2] = decPairs[pair]
		return buf[ind-2:]
	}

	buf[ind-1] = byte('0' + num)
	return buf[ind-1:]
}

// Length of the base 10 representation of the number.
func uint32Len(num uint32) (out int) {
	for out = 1; num > 9; out++ {
		num /= 10
	}
	return
}

// Appends the base 10 digits of the number.
func appendUint32(buf []byte, num uint32) []byte {
	var tmp [uint32Digits]byte
	return append(buf, formatUint32(num, &tmp)...)
}
