package huffman

import (
	mathbits "math/bits"

	"github.com/op/go-logging"
)

const logModule = "huffman"

var log = logging.MustGetLogger(logModule)

// Importers of the package see warnings only; a program that installs its
// own leveled backend decides the level itself.
func init() {
	logging.SetLevel(logging.WARNING, logModule)
}

func log2uint32(x uint32) uint32 {
	if x == 0 {
		x = 1
	}
	return uint32(32 - mathbits.LeadingZeros32(x))
}
