// SPDX-License-Identifier: MIT
// Package: opgen/persist
//
// persist.go — WriteSet / ReadSet for the JSON document contract.

package persist

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/katalvlaran/opgen/variants"
)

const (
	jsonIndent = "    "
	fileMode   = 0o644
	dirMode    = 0o755
)

// WriteSet serializes set as indented JSON at path, creating the parent
// directory when needed. The set is validated first: a document that fails
// the shape contract is never written.
func WriteSet(path string, set *variants.Set) error {
	if set == nil {
		return fmt.Errorf("persist: nil set")
	}
	if err := set.Validate(); err != nil {
		return fmt.Errorf("persist: refusing to write: %w", err)
	}

	raw, err := json.MarshalIndent(set, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("persist: marshal: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, dirMode); err != nil {
			return fmt.Errorf("persist: mkdir %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, raw, fileMode); err != nil {
		return fmt.Errorf("persist: write %s: %w", path, err)
	}
	return nil
}

// ReadSet decodes the document at path and revalidates every invariant.
func ReadSet(path string) (*variants.Set, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("persist: read %s: %w", path, err)
	}
	var set variants.Set
	if err := json.Unmarshal(raw, &set); err != nil {
		return nil, fmt.Errorf("persist: decode %s: %w", path, err)
	}
	if err := set.Validate(); err != nil {
		return nil, fmt.Errorf("persist: %s: %w", path, err)
	}
	return &set, nil
}
