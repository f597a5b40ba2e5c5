// Copyright 2026 The Tailieu Authors
// SPDX-License-Identifier: Apache-2.0

// Package extmanifest points a Chrome extension's manifest.json at a
// generated icon set.
//
// Manifests are often hand-edited with comments and trailing commas, so
// input is read as JSONC and stripped with tidwall/jsonc before
// decoding. The output is plain JSON with two-space indentation.
// Top-level values other than "icons" and "action" are carried through
// byte-for-byte (modulo whitespace); key order is normalised to
// alphabetical because the document is re-encoded from a map.
package extmanifest

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/tidwall/jsonc"

	"github.com/ndt87864/tailieu-ehou/lib/iconset"
)

// ErrNotObject is returned when the manifest (or its "action" member)
// is not a JSON object.
var ErrNotObject = errors.New("not a JSON object")

// IconPaths maps each size to its path relative to the manifest, as
// Chrome expects: {"16": "icons/icon16.png", ...}. relDir uses forward
// slashes regardless of platform.
func IconPaths(relDir string, sizes []int) map[string]string {
	icons := make(map[string]string, len(sizes))
	for _, size := range sizes {
		icons[strconv.Itoa(size)] = path.Join(relDir, iconset.FileName(size))
	}
	return icons
}

// RelativeDir returns iconDir relative to the directory holding
// manifestPath, in slash form.
func RelativeDir(manifestPath, iconDir string) (string, error) {
	manifestDir, err := filepath.Abs(filepath.Dir(manifestPath))
	if err != nil {
		return "", err
	}
	absoluteIcons, err := filepath.Abs(iconDir)
	if err != nil {
		return "", err
	}
	relative, err := filepath.Rel(manifestDir, absoluteIcons)
	if err != nil {
		return "", fmt.Errorf("icon directory %s is not reachable from %s: %w", iconDir, manifestDir, err)
	}
	return filepath.ToSlash(relative), nil
}

// Apply sets "icons" in the manifest document to icons and, when an
// "action" object is present, sets "action.default_icon" as well. The
// result ends with a newline.
func Apply(data []byte, icons map[string]string) ([]byte, error) {
	stripped := jsonc.ToJSON(data)
	if !isObject(stripped) {
		return nil, fmt.Errorf("manifest: %w", ErrNotObject)
	}
	var document map[string]json.RawMessage
	if err := json.Unmarshal(stripped, &document); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}

	encodedIcons, err := encode(icons, "")
	if err != nil {
		return nil, err
	}
	document["icons"] = encodedIcons

	if rawAction, ok := document["action"]; ok {
		if !isObject(rawAction) {
			return nil, fmt.Errorf("manifest action: %w", ErrNotObject)
		}
		var action map[string]json.RawMessage
		if err := json.Unmarshal(rawAction, &action); err != nil {
			return nil, fmt.Errorf("parsing manifest action: %w", err)
		}
		action["default_icon"] = encodedIcons
		if document["action"], err = encode(action, ""); err != nil {
			return nil, err
		}
	}

	encoded, err := encode(document, "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding manifest: %w", err)
	}
	return append(encoded, '\n'), nil
}

// isObject reports whether the JSON value in data is an object.
func isObject(data []byte) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// encode marshals value without HTML escaping, so "<", ">" and "&" in
// manifest strings survive unchanged. The trailing newline is dropped.
func encode(value any, indent string) ([]byte, error) {
	var buffer bytes.Buffer
	encoder := json.NewEncoder(&buffer)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", indent)
	if err := encoder.Encode(value); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buffer.Bytes(), []byte("\n")), nil
}

// Update rewrites the manifest at manifestPath so it references the
// icons in iconDir. It reports whether the file content changed; an
// unchanged manifest is not rewritten.
func Update(manifestPath, iconDir string, sizes []int) (bool, error) {
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", manifestPath, err)
	}
	relDir, err := RelativeDir(manifestPath, iconDir)
	if err != nil {
		return false, err
	}

	updated, err := Apply(data, IconPaths(relDir, sizes))
	if err != nil {
		return false, fmt.Errorf("%s: %w", manifestPath, err)
	}
	if bytes.Equal(data, updated) {
		return false, nil
	}

	info, err := os.Stat(manifestPath)
	if err != nil {
		return false, err
	}
	if err := iconset.WriteFileAtomic(manifestPath, updated, info.Mode().Perm()); err != nil {
		return false, err
	}
	return true, nil
}

// Icons returns the "icons" map currently in the manifest, or nil when
// it has none.
func Icons(data []byte) (map[string]string, error) {
	var document struct {
		Icons map[string]string `json:"icons"`
	}
	if err := json.Unmarshal(jsonc.ToJSON(data), &document); err != nil {
		return nil, fmt.Errorf("parsing manifest: %w", err)
	}
	return document.Icons, nil
}
