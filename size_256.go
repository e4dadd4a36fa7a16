//go:build widefix256

package widefix

// Size is the number of 32-bit words in a Fixed.
// This layout is selected with the widefix256 build tag.
const Size = 8
