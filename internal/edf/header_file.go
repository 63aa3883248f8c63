package edf

import (
	"bufio"
	"fmt"
	"os"
)

// ReadHeaderFile parses only the header of the EDF file at path, leaving the
// data records untouched.
func ReadHeaderFile(path string) (*Header, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	hdr, err := ReadHeader(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return hdr, nil
}
