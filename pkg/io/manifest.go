package io

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/matzehuels/plannergen/pkg/errors"
	"github.com/matzehuels/plannergen/pkg/planner/section"
)

// ManifestFile is the manifest's file name inside the output directory.
const ManifestFile = ".plannergen.json"

// Manifest lists the documents one export wrote.
type Manifest struct {
	Documents []string `json:"documents"`
}

// NewManifest builds the manifest for docs.
func NewManifest(docs []section.Document) Manifest {
	m := Manifest{Documents: make([]string, len(docs))}
	for i, doc := range docs {
		m.Documents[i] = doc.Name
	}
	return m
}

// ReadManifest reads the manifest in dir. A missing manifest is an empty
// one.
func ReadManifest(dir string) (Manifest, error) {
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, nil
		}
		return Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return Manifest{}, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode %s", ManifestFile)
	}
	return m, nil
}

// WriteManifest records m in dir.
func WriteManifest(dir string, m Manifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ManifestFile), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write manifest: %w", err)
	}
	return nil
}

// Prune removes documents listed in previous but not in current. Names that
// are not plain file names are skipped, so a tampered manifest cannot reach
// outside dir. MainDocument and the manifest itself are never removed.
func Prune(dir string, previous, current Manifest) error {
	keep := make(map[string]bool, len(current.Documents))
	for _, name := range current.Documents {
		keep[name] = true
	}

	for _, name := range previous.Documents {
		if keep[name] || reserved(name) || errors.ValidateDocumentName(name) != nil {
			continue
		}
		err := os.Remove(filepath.Join(dir, name))
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove stale %s: %w", name, err)
		}
	}
	return nil
}

func reserved(name string) bool {
	return name == MainDocument || name == ManifestFile
}
