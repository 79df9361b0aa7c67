package idx

import (
	"io"

	"github.com/pkg/errors"
)

// The three failure categories of decoding. Truncation and unknown type
// codes are flagged with sentinel causes, everything else is a plain
// I/O failure of the underlying stream.

var ErrTruncated = errors.New("Truncated idx stream")
var ErrUnknownTypeCode = errors.New("Unrecognized idx type code")

func IsTruncated(err error) bool {
	return errors.Is(err, ErrTruncated)
}

func IsUnknownTypeCode(err error) bool {
	return errors.Is(err, ErrUnknownTypeCode)
}

// Classifies a read error: end of stream means the declared header/data
// is longer than the stream, everything else is passed through.
func wrapReadError(err error, what string) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return errors.Wrapf(ErrTruncated, "Could not read %s", what)
	}
	return errors.Wrapf(err, "Could not read %s", what)
}
