package yaml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sampleManifest struct {
	Name  string `json:"name"`
	Files []struct {
		File        string  `json:"file"`
		Compression *string `json:"compression"`
	} `json:"files"`
}

func TestUnmarshal(t *testing.T) {
	data := []byte(`
name: mnist
files:
  - file: images.idx.gz
    compression: gzip
  - file: labels.idx
`)
	var manifest sampleManifest
	err := Unmarshal(data, &manifest)
	assert.NoError(t, err)
	assert.Equal(t, "mnist", manifest.Name)
	assert.Equal(t, 2, len(manifest.Files))
	assert.Equal(t, "images.idx.gz", manifest.Files[0].File)
	assert.Equal(t, "gzip", *manifest.Files[0].Compression)
	assert.Nil(t, manifest.Files[1].Compression)
}

func TestYamlToJson(t *testing.T) {
	jsonCode, err := YamlToJson([]byte("a: 1"))
	assert.NoError(t, err)
	assert.Equal(t, `{"a":1}`, string(jsonCode))
}

func TestYamlToJsonScalar(t *testing.T) {
	jsonCode, err := YamlToJson([]byte("5"))
	assert.NoError(t, err)
	assert.Equal(t, "5", string(jsonCode))
}

func TestInvalidYaml(t *testing.T) {
	err := Unmarshal([]byte("a: [unclosed"), &map[string]interface{}{})
	assert.Error(t, err)
}
