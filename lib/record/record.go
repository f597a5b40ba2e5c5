// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/ndt87864/tailieu-ehou/lib/binhash"
	"github.com/ndt87864/tailieu-ehou/lib/codec"
	"github.com/ndt87864/tailieu-ehou/lib/iconset"
)

// FileName is the record's name inside the icon directory.
const FileName = ".icons.cbor"

// CurrentVersion is the record format version written by Save.
const CurrentVersion = 1

// ErrNoRecord is returned by Load when the directory has no record.
var ErrNoRecord = errors.New("no generation record")

// Record describes one generate run.
type Record struct {
	Version int `json:"version" cbor:"1,keyasint"`

	// Source is the icon source name: embedded, solid, or image.
	Source string `json:"source" cbor:"2,keyasint"`

	// Color is the fill colour for the solid source, as "#rrggbb".
	Color string `json:"color,omitempty" cbor:"3,keyasint,omitempty"`

	// Input is the master image path for the image source.
	Input string `json:"input,omitempty" cbor:"4,keyasint,omitempty"`

	// Tool is the crxicon version that wrote the record.
	Tool string `json:"tool" cbor:"5,keyasint"`

	// GeneratedAt is the UTC time of the run, RFC 3339.
	GeneratedAt string `json:"generated_at" cbor:"6,keyasint"`

	Icons []Icon `json:"icons" cbor:"7,keyasint"`
}

// Icon is one file of the set.
type Icon struct {
	Size   int            `json:"size" cbor:"1,keyasint"`
	File   string         `json:"file" cbor:"2,keyasint"`
	Digest binhash.Digest `json:"digest" cbor:"3,keyasint"`
}

// Path returns the record's location inside dir.
func Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// Stamp sets GeneratedAt from now.
func (r *Record) Stamp(now time.Time) {
	r.GeneratedAt = now.UTC().Format(time.RFC3339)
}

// Validate checks the record's internal consistency.
func (r *Record) Validate() error {
	var errs []error
	if r.Version != CurrentVersion {
		errs = append(errs, fmt.Errorf("unsupported record version %d", r.Version))
	}
	if r.Source == "" {
		errs = append(errs, errors.New("record has no source"))
	}
	seen := make(map[string]bool, len(r.Icons))
	for i, icon := range r.Icons {
		if icon.File == "" || filepath.Base(icon.File) != icon.File {
			errs = append(errs, fmt.Errorf("icons[%d]: file %q must be a bare file name", i, icon.File))
		}
		if icon.Size <= 0 {
			errs = append(errs, fmt.Errorf("icons[%d]: size %d must be positive", i, icon.Size))
		}
		if icon.Digest.IsZero() {
			errs = append(errs, fmt.Errorf("icons[%d]: missing digest", i))
		}
		if seen[icon.File] {
			errs = append(errs, fmt.Errorf("icons[%d]: %s listed twice", i, icon.File))
		}
		seen[icon.File] = true
	}
	return errors.Join(errs...)
}

// SameContent reports whether r and other describe the same icon set
// from the same source. GeneratedAt and Tool are ignored, so rerunning
// generate over unchanged icons need not rewrite the record.
func (r *Record) SameContent(other *Record) bool {
	if r.Source != other.Source || r.Color != other.Color || r.Input != other.Input {
		return false
	}
	return slices.Equal(sortedIcons(r.Icons), sortedIcons(other.Icons))
}

func sortedIcons(icons []Icon) []Icon {
	sorted := slices.Clone(icons)
	slices.SortFunc(sorted, compareIcons)
	return sorted
}

func compareIcons(a, b Icon) int {
	return a.Size - b.Size
}

// Load reads the record from dir. A missing record returns an error
// wrapping ErrNoRecord.
func Load(dir string) (*Record, error) {
	path := Path(dir)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", path, ErrNoRecord)
	}
	if err != nil {
		return nil, err
	}

	var record Record
	if err := codec.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &record, nil
}

// Save writes rec into dir atomically. Icons are sorted by size first
// so the encoding is stable.
func Save(dir string, rec *Record) error {
	if rec.Version == 0 {
		rec.Version = CurrentVersion
	}
	slices.SortFunc(rec.Icons, compareIcons)
	if err := rec.Validate(); err != nil {
		return err
	}

	data, err := codec.Marshal(rec)
	if err != nil {
		return fmt.Errorf("encoding record: %w", err)
	}
	path := Path(dir)
	if err := iconset.WriteFileAtomic(path, data, iconset.FilePerm); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
