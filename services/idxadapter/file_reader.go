package idxadapter

import (
	"compress/gzip"
	"io"
	"os"
	"path"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Opens a single dataset file, transparently unpacking compression.
func OpenFileReader(dataDirectory string, entry *FileEntry) (io.ReadCloser, error) {
	fullFile := path.Join(dataDirectory, entry.File)
	var result io.ReadCloser
	result, err := os.Open(fullFile)
	if err != nil {
		return nil, err
	}
	logrus.Debugf("Opened %s", fullFile)
	if entry.Compression != nil {
		switch *entry.Compression {
		case "gzip":
			r, err := gzip.NewReader(result)
			if err != nil {
				result.Close()
				return nil, err
			}
			result = &gzipReader{r, result}
		default:
			result.Close()
			return nil, errors.Errorf("Unsupported compression %s", *entry.Compression)
		}
	}
	return result, nil
}

// Enhance gzip.Reader to have a Close method which also closes the underlying file
type gzipReader struct {
	*gzip.Reader
	underlying io.ReadCloser
}

func (g *gzipReader) Close() error {
	defer g.underlying.Close()
	return g.Reader.Close()
}
