package accountpkg

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"fortio.org/safecast"
)

// Package container encoding constants.
const (
	// LengthPrefixSize is the size of the metadata length prefix in bytes.
	LengthPrefixSize = 4

	// MaxMetadataSize bounds the textual metadata accepted when decoding.
	MaxMetadataSize = 1 << 20
)

// Package container layout:
//
//	Bytes 0-3:     metadata length N (big-endian uint32)
//	Bytes 4-(4+N): metadata, UTF-8 TOML
//	Remainder:     library encoding (self-describing msgpack)
//
// There is no checksum: the metadata is re-validated on every decode.

// packageEncoder writes package containers.
type packageEncoder struct {
	buf bytes.Buffer
}

// newPackageEncoder creates an empty encoder.
func newPackageEncoder() *packageEncoder {
	return &packageEncoder{}
}

// writeMetadata writes the length-prefixed metadata text.
func (e *packageEncoder) writeMetadata(text []byte) error {
	n, err := safecast.Conv[uint32](len(text))
	if err != nil || n > MaxMetadataSize {
		return fmt.Errorf("accountpkg: metadata too large (%d bytes)", len(text))
	}
	var prefix [LengthPrefixSize]byte
	binary.BigEndian.PutUint32(prefix[:], n)
	e.buf.Write(prefix[:])
	e.buf.Write(text)
	return nil
}

// writeLibrary appends the library encoding.
func (e *packageEncoder) writeLibrary(lib *Library) error {
	return lib.EncodeTo(&e.buf)
}

// bytes returns the encoded container.
func (e *packageEncoder) bytes() []byte {
	return e.buf.Bytes()
}

// packageDecoder reads package containers.
type packageDecoder struct {
	r *bytes.Reader
}

// newPackageDecoder creates a decoder over data.
func newPackageDecoder(data []byte) *packageDecoder {
	return &packageDecoder{r: bytes.NewReader(data)}
}

// readMetadata reads the length-prefixed metadata text.
func (d *packageDecoder) readMetadata() ([]byte, error) {
	var prefix [LengthPrefixSize]byte
	if _, err := io.ReadFull(d.r, prefix[:]); err != nil {
		return nil, fmt.Errorf("read metadata length: %w", err)
	}
	n := binary.BigEndian.Uint32(prefix[:])
	if n > MaxMetadataSize {
		return nil, fmt.Errorf("metadata length %d exceeds limit %d", n, MaxMetadataSize)
	}
	if int64(n) > int64(d.r.Len()) {
		return nil, fmt.Errorf("metadata length %d exceeds remaining %d bytes", n, d.r.Len())
	}
	text := make([]byte, n)
	if _, err := io.ReadFull(d.r, text); err != nil {
		return nil, fmt.Errorf("read metadata: %w", err)
	}
	if !utf8.Valid(text) {
		return nil, errors.New("metadata is not valid UTF-8")
	}
	return text, nil
}

// readLibrary reads the library encoding.
func (d *packageDecoder) readLibrary() (*Library, error) {
	return DecodeLibrary(d.r)
}

// finish rejects unread trailing bytes.
func (d *packageDecoder) finish() error {
	if d.r.Len() != 0 {
		return fmt.Errorf("%d trailing bytes after package", d.r.Len())
	}
	return nil
}
