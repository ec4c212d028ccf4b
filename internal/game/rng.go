package game

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand"
)

// cryptoSeed draws a seed from the OS entropy source, so shuffles and spins
// are not predictable from process start time.
func cryptoSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func newRand() *rand.Rand {
	return rand.New(rand.NewSource(cryptoSeed()))
}

// RandomInt returns a uniform value in [0, n).
func RandomInt(n int) int {
	return newRand().Intn(n)
}
