//go:build !linux

package stream

import (
	"errors"
	"os"
)

const directIOSupported = false

func openDirect(string) (*os.File, error) {
	return nil, errors.New("direct I/O is not supported on this platform")
}
