package accountpkg

import (
	"fmt"
	"strings"

	"golang.org/x/mod/semver"
)

// Version is a component's semantic version (major.minor.patch with optional
// pre-release and build suffixes). It is informational; no compatibility rule
// is derived from it.
type Version struct {
	raw string
}

// ParseVersion validates s. A leading "v" is not accepted.
func ParseVersion(s string) (Version, error) {
	if s == "" || strings.HasPrefix(s, "v") {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	v := "v" + s
	if !semver.IsValid(v) {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	// semver.IsValid accepts "v1" and "v1.2" shorthands; require all three parts.
	core, _, _ := strings.Cut(v, "+")
	if semver.Canonical(v) != core {
		return Version{}, fmt.Errorf("%w: %q must be major.minor.patch", ErrInvalidVersion, s)
	}
	return Version{raw: s}, nil
}

// MustParseVersion is like ParseVersion but panics on error.
func MustParseVersion(s string) Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// String returns the version as written.
func (v Version) String() string {
	return v.raw
}

// IsZero reports whether v was never set.
func (v Version) IsZero() bool {
	return v.raw == ""
}

// Compare orders two versions by semver precedence.
func (v Version) Compare(other Version) int {
	return semver.Compare("v"+v.raw, "v"+other.raw)
}

// MarshalText implements encoding.TextMarshaler. The zero Version has no text form.
func (v Version) MarshalText() ([]byte, error) {
	if v.IsZero() {
		return nil, fmt.Errorf("%w: version not set", ErrInvalidVersion)
	}
	return []byte(v.raw), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
