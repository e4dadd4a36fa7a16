//go:build !widefix256

package widefix

// Size is the number of 32-bit words in a Fixed.
const Size = 4
