package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"github.com/branched-services/go-accountpkg"
)

// packageExt is the file extension of encoded packages.
const packageExt = ".accpkg"

// packageFileName derives the package file name from a metadata path.
func packageFileName(metadataPath string) string {
	return strings.TrimSuffix(metadataPath, filepath.Ext(metadataPath)) + packageExt
}

// valueParser converts textual values into placeholder values, using the
// placeholder types declared by a package.
type valueParser struct {
	types map[accountpkg.PlaceholderKey]accountpkg.PlaceholderType
}

// newValueParser collects the placeholder types of metadata.
func newValueParser(metadata *accountpkg.Metadata) *valueParser {
	types := make(map[accountpkg.PlaceholderKey]accountpkg.PlaceholderType)
	for _, req := range metadata.PlaceholderKeys() {
		types[req.Key] = req.Type
	}
	return &valueParser{types: types}
}

// parseAssignment parses one key=value argument.
func (p *valueParser) parseAssignment(arg string, values accountpkg.PlaceholderValues) error {
	name, raw, ok := strings.Cut(arg, "=")
	if !ok {
		return fmt.Errorf("invalid value %q, expected key=value", arg)
	}
	return p.set(strings.TrimSpace(name), strings.TrimSpace(raw), values)
}

// parseFile reads key = value pairs from a TOML file. Values are strings
// (hex words or felts) or non-negative integers (felts).
func (p *valueParser) parseFile(path string, values accountpkg.PlaceholderValues) error {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	for name, v := range raw {
		switch v := v.(type) {
		case string:
			if err := p.set(name, v, values); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		case int64:
			n, err := safecast.Conv[uint64](v)
			if err != nil {
				return fmt.Errorf("%s: %s: %w", path, name, err)
			}
			if err := p.setFelt(name, n, values); err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
		default:
			return fmt.Errorf("%s: %s: unsupported value type %T", path, name, v)
		}
	}
	return nil
}

// set parses raw according to the declared type of name.
func (p *valueParser) set(name, raw string, values accountpkg.PlaceholderValues) error {
	key, typ, err := p.lookup(name)
	if err != nil {
		return err
	}
	switch typ {
	case accountpkg.PlaceholderTypeWord:
		w, err := accountpkg.ParseWord(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		values[key] = accountpkg.WordValue(w)
	default:
		f, err := accountpkg.ParseFelt(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		values[key] = accountpkg.FeltValue(f)
	}
	return nil
}

// setFelt stores an integer value; name must be a felt placeholder.
func (p *valueParser) setFelt(name string, n uint64, values accountpkg.PlaceholderValues) error {
	key, typ, err := p.lookup(name)
	if err != nil {
		return err
	}
	if typ != accountpkg.PlaceholderTypeFelt {
		return fmt.Errorf("%s: integer given for a %s placeholder", name, typ)
	}
	f, err := accountpkg.NewFelt(n)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	values[key] = accountpkg.FeltValue(f)
	return nil
}

func (p *valueParser) lookup(name string) (accountpkg.PlaceholderKey, accountpkg.PlaceholderType, error) {
	key, err := accountpkg.NewPlaceholderKey(name)
	if err != nil {
		return "", 0, err
	}
	typ, ok := p.types[key]
	if !ok {
		return "", 0, fmt.Errorf("package has no placeholder %q", name)
	}
	return key, typ, nil
}

// readPackage loads an encoded package, logging its identity.
func readPackage(path string) (*accountpkg.Package, error) {
	pkg, err := accountpkg.ReadPackageFile(path)
	if err != nil {
		return nil, err
	}
	logger.Debug().
		Str("path", path).
		Str("name", pkg.Metadata().Name()).
		Str("library", pkg.Library().Digest().String()).
		Msg("package loaded")
	return pkg, nil
}

// fileExists reports whether path names an existing file.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
