package natural

import (
	"io"

	"github.com/pkg/errors"

	"idx/ds"
	"idx/ds/element"
	"idx/ds/util/serializer"
)

// Reads a tensor bundle back from its serialized form.
// Returns the tensor and its component type.
func DecodeBundle(backendType serializer.BackendType, source io.Reader) (*element.Tensor, *ds.FundamentalType, error) {
	backend, err := serializer.CreateDeserializingBackend(backendType, source)
	if err != nil {
		return nil, nil, err
	}
	header, err := backend.DecodeHeader()
	if err != nil {
		return nil, nil, errors.Wrap(err, "Could not read bundle header")
	}
	if header.Format == nil || header.Format.ComponentType.Underlying == nil {
		return nil, nil, errors.New("Bundle header carries no tensor format")
	}
	componentType := header.Format.ComponentType.Underlying
	codec, err := GetFundamentalCodec(componentType)
	if err != nil {
		return nil, nil, err
	}
	tensor, err := element.NewTensor(header.Format.Shape)
	if err != nil {
		return nil, nil, err
	}
	count, err := backend.DecodeArrayLen()
	if err != nil {
		return nil, nil, err
	}
	if count != tensor.ElementCount() {
		return nil, nil, errors.Errorf("Bundle declares %d values, shape needs %d", count, tensor.ElementCount())
	}
	values := tensor.Values()
	for i := 0; i < count; i++ {
		v, err := codec.Read(backend)
		if err != nil {
			return nil, nil, errors.Wrap(err, "Could not read element")
		}
		values[i] = v
	}
	return tensor, componentType, nil
}
