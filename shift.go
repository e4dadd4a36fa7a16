package widefix

// Lsh returns f << n. Bits shifted out of the top word are lost.
func (f Fixed) Lsh(n uint) (res Fixed) {
	if n >= Bits {
		return res
	}
	words, shift := int(n/wordBits), n%wordBits
	for i := Size - 1; i >= words; i-- {
		src := i - words
		res.data[i] = f.data[src] << shift
		if shift > 0 && src > 0 {
			res.data[i] |= f.data[src-1] >> (wordBits - shift)
		}
	}
	return res
}

// Rsh returns f >> n, keeping the sign of f.
func (f Fixed) Rsh(n uint) Fixed {
	var fill uint32
	if f.IsNegative() {
		fill = wordMask
	}
	return f.rsh(n, fill)
}

// URsh returns f >> n, treating f as an unsigned number.
func (f Fixed) URsh(n uint) Fixed {
	return f.rsh(n, 0)
}

func (f Fixed) rsh(n uint, fill uint32) (res Fixed) {
	word := func(i int) uint32 {
		if i < Size {
			return f.data[i]
		}
		return fill
	}
	if n >= Bits {
		n = Bits
	}
	words, shift := int(n/wordBits), n%wordBits
	for i := range res.data {
		res.data[i] = word(i+words) >> shift
		if shift > 0 {
			res.data[i] |= word(i+words+1) << (wordBits - shift)
		}
	}
	return res
}

// Lsh1 returns f << 1.
func (f Fixed) Lsh1() (res Fixed) {
	var carry uint32
	for i, w := range f.data {
		res.data[i] = w<<1 | carry
		carry = w >> (wordBits - 1)
	}
	return res
}

// Rsh1 returns f >> 1, keeping the sign of f.
func (f Fixed) Rsh1() (res Fixed) {
	carry := f.data[Size-1] & signBit
	for i := Size - 1; i >= 0; i-- {
		w := f.data[i]
		res.data[i] = w>>1 | carry
		carry = w << (wordBits - 1)
	}
	return res
}
