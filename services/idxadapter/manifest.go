package idxadapter

import (
	"io/ioutil"

	"github.com/pkg/errors"

	"idx/util/yaml"
)

type FileEntry struct {
	// Name under which the decoded tensor is published
	Name string `json:"name"`
	// Which file to open, relative to the data directory
	File string `json:"file"`
	// How the file is compressed, valid empty or gzip
	Compression *string `json:"compression"`
}

// Describes a dataset of IDX files.
type Manifest struct {
	Name  string      `json:"name"`
	Files []FileEntry `json:"files"`
}

func ParseManifest(bytes []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(bytes, &manifest); err != nil {
		return nil, errors.Wrap(err, "Could not parse manifest")
	}
	if len(manifest.Files) == 0 {
		return nil, errors.New("No files given")
	}
	seen := make(map[string]bool, len(manifest.Files))
	for _, entry := range manifest.Files {
		if entry.Name == "" {
			return nil, errors.Errorf("Missing name for file %s", entry.File)
		}
		if entry.File == "" {
			return nil, errors.Errorf("Missing file for entry %s", entry.Name)
		}
		if seen[entry.Name] {
			return nil, errors.Errorf("Double entry %s", entry.Name)
		}
		seen[entry.Name] = true
	}
	return &manifest, nil
}

func LoadManifest(path string) (*Manifest, error) {
	bytes, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return ParseManifest(bytes)
}
