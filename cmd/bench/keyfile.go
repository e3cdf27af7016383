package main

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// keyFile is a memory-mapped, newline-separated key corpus.
// keys alias the mapping and are only valid until Close.
type keyFile struct {
	mmap mmap.MMap
	keys [][]byte
}

// openKeyFile maps path read-only and splits it into keys.
// The file descriptor is closed before returning; the mapping stays valid.
func openKeyFile(path string) (*keyFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open key file: %w", err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("stat key file: %w", err)
	}
	if stat.Size() == 0 {
		return nil, errors.New("key file is empty")
	}

	mm, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("mmap key file: %w", err)
	}
	madviseSequential(mm)

	kf := &keyFile{
		mmap: mm,
		keys: splitKeys(mm),
	}
	if len(kf.keys) == 0 {
		return nil, errors.Join(errors.New("key file has no keys"), kf.Close())
	}
	return kf, nil
}

// Close unmaps the file. Keys must not be used afterwards.
func (kf *keyFile) Close() error {
	if kf.mmap == nil {
		return nil
	}
	err := kf.mmap.Unmap()
	kf.mmap = nil
	kf.keys = nil
	return err
}

// splitKeys returns the non-empty lines of data without copying.
// A trailing '\r' is stripped so CRLF files work.
func splitKeys(data []byte) [][]byte {
	var out [][]byte
	for len(data) > 0 {
		line := data
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			data = nil
		}
		line = bytes.TrimSuffix(line, []byte{'\r'})
		if len(line) > 0 {
			out = append(out, line[:len(line):len(line)])
		}
	}
	return out
}
