// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

package iconset

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"github.com/ndt87864/tailieu-ehou/lib/binhash"
	"github.com/ndt87864/tailieu-ehou/lib/pngverify"
)

// Permissions for the output directory and icon files.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)

// Status describes what Generate did with one icon file.
type Status string

const (
	// StatusWritten means the file was created or replaced.
	StatusWritten Status = "written"
	// StatusUnchanged means the file already held identical bytes.
	StatusUnchanged Status = "unchanged"
)

// Result describes one generated icon.
type Result struct {
	Size   int            `json:"size"`
	Path   string         `json:"path"`
	Bytes  int            `json:"bytes"`
	Digest binhash.Digest `json:"digest"`
	Status Status         `json:"status"`
}

// Generator writes one icon per size into Dir.
type Generator struct {
	Dir    string
	Sizes  []int
	Source Source

	// Force rewrites files even when their content is unchanged.
	Force bool

	// Logger receives per-icon progress. Nil discards.
	Logger *slog.Logger
}

// Generate renders and writes every size, smallest first. Results are
// returned for the sizes that succeeded, in ascending size order; failures for the rest are
// joined into the returned error. Cancelling ctx stops before the next
// size.
func (g *Generator) Generate(ctx context.Context) ([]Result, error) {
	logger := g.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if g.Source == nil {
		return nil, errors.New("no icon source configured")
	}
	if err := ValidateSizes(g.Sizes); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(g.Dir, DirPerm); err != nil {
		return nil, fmt.Errorf("creating icon directory: %w", err)
	}

	var results []Result
	var errs []error
	for _, size := range slices.Sorted(slices.Values(g.Sizes)) {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		result, err := g.generateOne(size)
		if err != nil {
			logger.Error("icon generation failed",
				"file", FileName(size),
				"source", g.Source.Name(),
				"error", err,
			)
			errs = append(errs, fmt.Errorf("%s: %w", FileName(size), err))
			continue
		}

		logger.Info("icon generated",
			"file", result.Path,
			"size", size,
			"bytes", result.Bytes,
			"status", result.Status,
			"digest", result.Digest.Short(),
		)
		results = append(results, result)
	}

	return results, errors.Join(errs...)
}

func (g *Generator) generateOne(size int) (Result, error) {
	data, err := g.Source.Render(size)
	if err != nil {
		return Result{}, fmt.Errorf("rendering with %s source: %w", g.Source.Name(), err)
	}
	if err := pngverify.Check(data, pngverify.Square(size)).Err(); err != nil {
		return Result{}, fmt.Errorf("rendered icon failed verification: %w", err)
	}

	result := Result{
		Size:   size,
		Path:   filepath.Join(g.Dir, FileName(size)),
		Bytes:  len(data),
		Digest: binhash.Sum(data),
		Status: StatusWritten,
	}

	if !g.Force {
		existing, err := binhash.HashFile(result.Path)
		if err == nil && existing == result.Digest {
			result.Status = StatusUnchanged
			return result, nil
		}
	}

	if err := WriteFileAtomic(result.Path, data, FilePerm); err != nil {
		return Result{}, err
	}
	return result, nil
}

// WriteFileAtomic writes data to a temporary file in the destination
// directory and renames it over path, so readers never observe a
// partially written icon.
func WriteFileAtomic(path string, data []byte, perm fs.FileMode) error {
	directory := filepath.Dir(path)
	temporary, err := os.CreateTemp(directory, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temporary file for %s: %w", path, err)
	}
	temporaryPath := temporary.Name()
	defer os.Remove(temporaryPath)

	if _, err := temporary.Write(data); err != nil {
		temporary.Close()
		return fmt.Errorf("writing %s: %w", temporaryPath, err)
	}
	if err := temporary.Chmod(perm); err != nil {
		temporary.Close()
		return fmt.Errorf("setting permissions on %s: %w", temporaryPath, err)
	}
	if err := temporary.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", temporaryPath, err)
	}
	if err := os.Rename(temporaryPath, path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
