package slicing8

// Polynomial is the CRC-32C (Castagnoli) polynomial in reversed bit order.
const Polynomial = 0x82f63b78

// table is the 8x256 lookup grid driving the slicing-by-8 reduction.
// Row 0 is the classic one-byte-at-a-time table; row j folds a byte that
// sits j positions deeper into an 8-byte word.
//
// Built during package init. Go guarantees init runs to completion before
// any other code in the package executes, so readers always observe a
// fully built table without locking.
var table [8][256]uint32

func init() {
	for i := 0; i < 256; i++ {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 == 1 {
				crc = (crc >> 1) ^ Polynomial
			} else {
				crc >>= 1
			}
		}
		table[0][i] = crc
	}

	for i := 0; i < 256; i++ {
		crc := table[0][i]
		for j := 1; j < 8; j++ {
			crc = table[0][crc&0xff] ^ (crc >> 8)
			table[j][i] = crc
		}
	}
}
