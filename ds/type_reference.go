package ds

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// Wraps a FundamentalType so that it can be serialized by name.
type TypeReference struct {
	Underlying *FundamentalType
}

func Ref(f *FundamentalType) TypeReference {
	return TypeReference{f}
}

func (t TypeReference) MarshalJSON() ([]byte, error) {
	if t.Underlying == nil {
		return json.Marshal(nil)
	}
	return json.Marshal(t.Underlying.TypeName())
}

func (t *TypeReference) UnmarshalJSON(bytes []byte) error {
	var name string
	err := json.Unmarshal(bytes, &name)
	if err != nil {
		return errors.Wrap(err, "Could not read type name")
	}
	resolved, err := FromName(name)
	if err != nil {
		return err
	}
	t.Underlying = resolved
	return nil
}
