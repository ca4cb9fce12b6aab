package frame

import (
	"runtime"

	"github.com/cursive-io/cursive/blockpack"
	"github.com/cursive-io/cursive/errs"
	"github.com/cursive-io/cursive/format"
)

type config struct {
	algorithm format.CompressionType
	level     int
	blockSize int
	threads   int
	shuffle   bool
	badAlgo   bool
}

func defaultConfig() config {
	return config{
		algorithm: format.CompressionZstd,
		level:     9,
		threads:   runtime.GOMAXPROCS(0),
		shuffle:   true,
	}
}

func (c config) params(typesize int) blockpack.Params {
	return blockpack.Params{
		Level:     c.level,
		Shuffle:   c.shuffle,
		TypeSize:  typesize,
		Algorithm: c.algorithm,
		BlockSize: c.blockSize,
		Threads:   c.threads,
	}
}

func (c config) validate() error {
	if c.badAlgo {
		return errs.ErrUnknownAlgorithm
	}

	return nil
}

// Option configures an encode call.
type Option func(*config)

// WithCompression selects the block compression algorithm.
func WithCompression(t format.CompressionType) Option {
	return func(c *config) { c.algorithm = t }
}

// WithAlgorithm selects the algorithm by name: "lz4", "zstd", "s2",
// "none". The empty string keeps the default (Zstd). An unknown name
// fails the encode call with ErrUnknownAlgorithm.
func WithAlgorithm(name string) Option {
	return func(c *config) {
		t, ok := format.ParseCompression(name)
		if !ok {
			c.badAlgo = true
			return
		}
		c.algorithm = t
	}
}

// WithLevel sets the effort hint passed in blockpack.Params. Default is 9.
// The built-in codecs do not read it.
func WithLevel(level int) Option {
	return func(c *config) { c.level = level }
}

// WithBlockSize sets the block size hint recorded in the container.
// 0 selects the implementation default.
func WithBlockSize(n int) Option {
	return func(c *config) { c.blockSize = n }
}

// WithThreads sets the parallelism hint. Default is the host parallelism.
func WithThreads(n int) Option {
	return func(c *config) { c.threads = n }
}

// WithoutShuffle disables the byte-transpose pre-pass.
func WithoutShuffle() Option {
	return func(c *config) { c.shuffle = false }
}
