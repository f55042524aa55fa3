package hll

// denseStorage is the FULL representation: a dense BitVector holding one
// register per bucket. Register update, union and cardinality-contribution
// all delegate straight to the underlying BitVector, which keeps its own
// LSB-first bit order internally (see bitvector.go). The wire format is
// MSB-first (per the storage spec), so writeBytes/fromBytes are the only
// places that reorder bits, using the MSB-first helpers in util.go.
type denseStorage struct {
	bv *BitVector
}

// newDenseStorage allocates a new instance with sufficient space to store
// all of the register values, zero-initialized.
func newDenseStorage(settings *settings) denseStorage {
	return denseStorage{bv: newBitVector(1<<uint(settings.log2m), settings.regwidth)}
}

// overCapacity always returns false for dense storage because there is no
// upgrade path beyond FULL.
func (s denseStorage) overCapacity(settings *settings) bool {
	return false
}

// sizeInBytes returns the number of bytes required to represent every
// register value: ceil(M*regwidth / 8).
func (s denseStorage) sizeInBytes(settings *settings) int {
	return s.bv.sizeBytes()
}

// writeBytes packs every register MSB-first into bytes, in ascending
// register order, per the storage spec's FULL payload layout.
func (s denseStorage) writeBytes(settings *settings, bytes []byte) {
	addr := 0
	for i := 0; i < s.bv.m; i++ {
		writeBits(bytes, addr, uint64(s.bv.get(i)), settings.regwidth)
		addr += settings.regwidth
	}
}

// fromBytes deserializes the MSB-first packed register values into this
// storage instance.
func (s denseStorage) fromBytes(settings *settings, bytes []byte) error {

	expected := divideBy8RoundUp((1 << uint(settings.log2m)) * settings.regwidth)
	if len(bytes) != expected {
		return newDecodeError(BadLength, ErrInsufficientBytes)
	}

	addr := 0
	for i := 0; i < s.bv.m; i++ {
		v := readBits(bytes, addr, settings.regwidth)
		s.bv.setMaxRegister(i, byte(v))
		addr += settings.regwidth
	}

	return nil
}

func (s denseStorage) copy() storage {
	return denseStorage{bv: s.bv.copy()}
}

// indicator computes the "indicator function" (Z in the HLL paper) by
// summing 2^(-M[j]) over all registers, tallying zero registers (V in the
// paper) separately since forEachSet only visits nonzero ones.
func (s denseStorage) indicator(settings *settings) (float64, int) {

	sum := float64(0)
	nonZero := 0

	s.bv.forEachSet(func(i int, v byte) {
		sum += 1.0 / float64(uint64(1)<<v)
		nonZero++
	})

	numberOfZeros := s.bv.m - nonZero
	sum += float64(numberOfZeros)

	return sum, numberOfZeros
}

func (s denseStorage) setIfGreater(settings *settings, regnum int, value byte) {
	s.bv.setMaxRegister(regnum, value)
}

// union unions other into the receiver register by register, assuming both
// share (log2m, regwidth) so their BitVectors are the same shape.
func (s denseStorage) union(settings *settings, other denseStorage) {
	s.bv.union(other.bv)
}

// get extracts a single register value. It is provided to enable union-ing
// two dense storage instances with different Hll settings.
func (s denseStorage) get(regnum int) byte {
	return s.bv.get(regnum)
}
