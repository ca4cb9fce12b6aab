package compress

// NoOpCodec passes data through unchanged. It backs the stored-raw
// fallback for incompressible payloads and keeps benchmarks honest.
type NoOpCodec struct{}

var _ Codec = (*NoOpCodec)(nil)

// NewNoOpCodec creates a new pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Compress returns the input slice as-is without copying. The result
// shares memory with the input.
func (c NoOpCodec) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input slice as-is without copying. The result
// shares memory with the input.
func (c NoOpCodec) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
