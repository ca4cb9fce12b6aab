package compress

// ZstdCodec implements Zstandard compression, the default algorithm for
// frames headed to storage or the wire: best ratio on delta-encoded and
// shuffled payloads at an acceptable speed.
//
// The implementation is selected at build time: the pure-Go
// klauspost/compress encoder by default, or the cgo gozstd binding under
// its build tag.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
