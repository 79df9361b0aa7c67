/*
 * This file is part of the Mantik Project.
 * Copyright (c) 2020-2021 Mantik UG (Haftungsbeschränkt)
 * Authors: See AUTHORS file
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Affero General Public License version 3.
 *
 * You should have received a copy of the GNU Affero General Public License
 * along with this program.
 *
 * Additionally, the following linking exception is granted:
 *
 * If you modify this Program, or any covered work, by linking or
 * combining it with other code, such other code is not for that reason
 * alone subject to any of the requirements of the GNU Affero GPL
 * version 3.
 *
 * You can be released from the requirements of the license by purchasing
 * a commercial license.
 */

// Loading of whole IDX datasets (e.g. MNIST images plus labels)
// described by a YAML manifest.
package idxadapter

import (
	"path"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"idx/ds"
	"idx/ds/element"
	"idx/ds/formats/idx"
)

const ManifestFileName = "manifest.yaml"

// One decoded IDX file of a dataset.
type NamedTensor struct {
	Name          string
	ComponentType *ds.FundamentalType
	Tensor        *element.Tensor
}

type Dataset struct {
	name    string
	entries []NamedTensor
}

func (d *Dataset) Name() string {
	return d.name
}

func (d *Dataset) Entries() []NamedTensor {
	return d.entries
}

// Lookup by manifest name, nil if not present.
func (d *Dataset) Get(name string) *NamedTensor {
	for i := range d.entries {
		if d.entries[i].Name == name {
			return &d.entries[i]
		}
	}
	return nil
}

// Loads all files of a manifest into memory.
func LoadDataset(dataDirectory string, manifest *Manifest) (*Dataset, error) {
	entries := make([]NamedTensor, 0, len(manifest.Files))
	for i := range manifest.Files {
		fileEntry := &manifest.Files[i]
		named, err := loadSingleFile(dataDirectory, fileEntry)
		if err != nil {
			return nil, errors.Wrapf(err, "Could not load %s", fileEntry.File)
		}
		entries = append(entries, *named)
	}
	return &Dataset{manifest.Name, entries}, nil
}

// Loads a dataset from a directory containing manifest.yaml.
func LoadDatasetFromDir(directory string) (*Dataset, error) {
	manifest, err := LoadManifest(path.Join(directory, ManifestFileName))
	if err != nil {
		return nil, err
	}
	return LoadDataset(directory, manifest)
}

func loadSingleFile(dataDirectory string, fileEntry *FileEntry) (*NamedTensor, error) {
	reader, err := OpenFileReader(dataDirectory, fileEntry)
	if err != nil {
		return nil, err
	}
	defer reader.Close()
	header, err := idx.ParseHeader(reader)
	if err != nil {
		return nil, err
	}
	tensor, err := idx.DecodeBody(reader, header)
	if err != nil {
		return nil, err
	}
	logrus.WithFields(logrus.Fields{
		"name":  fileEntry.Name,
		"type":  header.ComponentType.TypeName(),
		"shape": header.Dimensions,
	}).Info("Decoded idx file")
	return &NamedTensor{
		Name:          fileEntry.Name,
		ComponentType: header.ComponentType,
		Tensor:        tensor,
	}, nil
}
