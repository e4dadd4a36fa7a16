package widefix

import (
	"flag"
	"log"
	"math/big"
	"math/rand"
	"os"
	"testing"
	"time"
)

var (
	fuzzIterations = 2000
	fuzzSeed       int64

	globalRNG *rand.Rand
)

func TestMain(m *testing.M) {
	flag.IntVar(&fuzzIterations, "widefix.fuzziter", fuzzIterations, "Number of iterations to fuzz each op")
	flag.Int64Var(&fuzzSeed, "widefix.fuzzseed", fuzzSeed, "Seed the RNG (0 == current nanotime)")
	flag.Parse()

	if fuzzSeed == 0 {
		fuzzSeed = time.Now().UnixNano()
	}
	globalRNG = rand.New(rand.NewSource(fuzzSeed))

	log.Println("rng seed:", fuzzSeed)
	log.Println("iterations:", fuzzIterations)
	log.Println("words:", Size)

	os.Exit(m.Run())
}

// randRaw returns a random raw value with up to Bits-1 significant bits, so
// that small and large magnitudes are equally likely.
func randRaw(rng *rand.Rand) *big.Int {
	n := rng.Intn(Bits)
	v := new(big.Int).Rand(rng, new(big.Int).Lsh(big.NewInt(1), uint(n)))
	if rng.Intn(2) == 0 {
		v.Neg(v)
	}
	return v
}

func randFixed(rng *rand.Rand) Fixed {
	f, _ := FromRaw(randRaw(rng))
	return f
}

// rawTolerance returns the allowed error in units of Epsilon for a result
// close to the raw value expected: a constant plus 2^shift units per 1.0.
func rawTolerance(expected *big.Int, shift uint) *big.Int {
	t := new(big.Int).Abs(expected)
	t.Rsh(t, FracBits-shift)
	return t.Add(t, big.NewInt(64))
}

// withinRaw reports if the raw value of f differs from expected by at most tol.
func withinRaw(f Fixed, expected, tol *big.Int) bool {
	diff := new(big.Int).Sub(f.Raw(), expected)
	return diff.Abs(diff).Cmp(tol) <= 0
}

// fitsRaw reports if |v| < 2^(Bits-3), which leaves some headroom below Max.
func fitsRaw(v *big.Int) bool {
	return v.BitLen() < Bits-3
}

func mustFloat(f float64) Fixed {
	return MustFromFloat64(f)
}
