package accountpkg

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
	"github.com/vmihailenco/msgpack/v5"
)

// LibraryFormat tags the self-describing library encoding.
const LibraryFormat = "accountpkg/library/v1"

// Library is an assembled code library. Its contents are opaque to this
// package; it is identified by the CID of its canonical encoding.
type Library struct {
	exports []string
	code    []byte
	digest  cid.Cid
}

// libraryWire is the msgpack form of a Library.
type libraryWire struct {
	Format  string   `msgpack:"format"`
	Exports []string `msgpack:"exports"`
	Code    []byte   `msgpack:"code"`
}

// NewLibrary wraps assembled code exporting the named procedures.
// Export names are kept sorted and must be unique and non-empty.
func NewLibrary(code []byte, exports ...string) (*Library, error) {
	if len(code) == 0 || len(exports) == 0 {
		return nil, ErrEmptyLibrary
	}

	sorted := slices.Clone(exports)
	slices.Sort(sorted)
	for i, name := range sorted {
		if name == "" {
			return nil, fmt.Errorf("%w: empty export name", ErrEmptyLibrary)
		}
		if i > 0 && sorted[i-1] == name {
			return nil, fmt.Errorf("accountpkg: duplicate library export %q", name)
		}
	}

	lib := &Library{
		exports: sorted,
		code:    slices.Clone(code),
	}

	encoded, err := lib.MarshalBinary()
	if err != nil {
		return nil, err
	}
	sum, err := multihash.Sum(encoded, multihash.SHA2_256, -1)
	if err != nil {
		return nil, fmt.Errorf("accountpkg: library digest: %w", err)
	}
	lib.digest = cid.NewCidV1(cid.Raw, sum)

	return lib, nil
}

// MustLibrary is like NewLibrary but panics on error.
func MustLibrary(code []byte, exports ...string) *Library {
	lib, err := NewLibrary(code, exports...)
	if err != nil {
		panic(err)
	}
	return lib
}

// Digest returns the library's content identifier (CIDv1, raw, sha2-256).
func (l *Library) Digest() cid.Cid {
	return l.digest
}

// Exports returns the exported procedure names, sorted.
func (l *Library) Exports() []string {
	return slices.Clone(l.exports)
}

// HasExport returns true if the library exports the named procedure.
func (l *Library) HasExport(name string) bool {
	_, found := slices.BinarySearch(l.exports, name)
	return found
}

// Code returns a copy of the assembled code.
func (l *Library) Code() []byte {
	return slices.Clone(l.code)
}

// Equal reports whether both libraries have the same content.
func (l *Library) Equal(other *Library) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.digest.Equals(other.digest)
}

// MarshalBinary returns the self-describing encoding of the library.
func (l *Library) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := l.EncodeTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// EncodeTo writes the self-describing encoding of the library to w.
func (l *Library) EncodeTo(w io.Writer) error {
	wire := libraryWire{
		Format:  LibraryFormat,
		Exports: l.exports,
		Code:    l.code,
	}
	if err := msgpack.NewEncoder(w).Encode(&wire); err != nil {
		return fmt.Errorf("accountpkg: encode library: %w", err)
	}
	return nil
}

// DecodeLibrary reads one library encoding from r. Bytes after the encoding
// are left unread when r is a bytes.Reader or other io.ByteScanner.
func DecodeLibrary(r io.Reader) (*Library, error) {
	var wire libraryWire
	if err := msgpack.NewDecoder(r).Decode(&wire); err != nil {
		return nil, fmt.Errorf("accountpkg: decode library: %w", err)
	}
	if wire.Format != LibraryFormat {
		return nil, fmt.Errorf("accountpkg: unsupported library format %q", wire.Format)
	}
	return NewLibrary(wire.Code, wire.Exports...)
}

// ParseLibrary decodes a library encoding occupying all of data.
func ParseLibrary(data []byte) (*Library, error) {
	r := bytes.NewReader(data)
	lib, err := DecodeLibrary(r)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, fmt.Errorf("accountpkg: %d trailing bytes after library", r.Len())
	}
	return lib, nil
}
