// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package record

import (
	"errors"
	"io/fs"
	"path/filepath"

	"github.com/ndt87864/tailieu-ehou/lib/binhash"
)

// DriftState classifies an icon file against its recorded digest.
type DriftState string

const (
	DriftOK       DriftState = "ok"
	DriftModified DriftState = "modified"
	DriftMissing  DriftState = "missing"
)

// Drift is the state of one recorded icon.
type Drift struct {
	Icon
	State DriftState `json:"state"`

	// Actual is the digest of the file on disk. Zero when missing.
	Actual binhash.Digest `json:"actual,omitzero"`
}

// Drift hashes every recorded icon under dir. An error is returned only
// for I/O failures other than a missing file.
func (r *Record) Drift(dir string) ([]Drift, error) {
	drifts := make([]Drift, 0, len(r.Icons))
	for _, icon := range r.Icons {
		drift := Drift{Icon: icon, State: DriftOK}
		actual, err := binhash.HashFile(filepath.Join(dir, icon.File))
		switch {
		case errors.Is(err, fs.ErrNotExist):
			drift.State = DriftMissing
		case err != nil:
			return nil, err
		default:
			drift.Actual = actual
			if actual != icon.Digest {
				drift.State = DriftModified
			}
		}
		drifts = append(drifts, drift)
	}
	return drifts, nil
}

// Clean reports whether every drift is DriftOK.
func Clean(drifts []Drift) bool {
	for _, drift := range drifts {
		if drift.State != DriftOK {
			return false
		}
	}
	return true
}
