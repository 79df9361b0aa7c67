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
package yaml

import (
	"encoding/json"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// YAML support by using the standard Go JSON Marshallers, so the JSON
// struct tags keep working for manifest files.

// Unmarshal yaml by converting to JSON and using the regular go JSON facilities
func Unmarshal(data []byte, value interface{}) error {
	jsonCode, err := YamlToJson(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(jsonCode, value)
}

// Convert YAML to JSON.
func YamlToJson(data []byte) ([]byte, error) {
	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, errors.Wrap(err, "Invalid YAML")
	}
	normalized, err := normalize(raw)
	if err != nil {
		return nil, err
	}
	return json.Marshal(normalized)
}

// JSON cannot represent non-string map keys, which YAML allows.
func normalize(value interface{}) (interface{}, error) {
	switch v := value.(type) {
	case map[string]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, sub := range v {
			normalizedSub, err := normalize(sub)
			if err != nil {
				return nil, err
			}
			result[key] = normalizedSub
		}
		return result, nil
	case map[interface{}]interface{}:
		result := make(map[string]interface{}, len(v))
		for key, sub := range v {
			stringKey, ok := key.(string)
			if !ok {
				return nil, errors.Errorf("Unsupported map key %v", key)
			}
			normalizedSub, err := normalize(sub)
			if err != nil {
				return nil, err
			}
			result[stringKey] = normalizedSub
		}
		return result, nil
	case []interface{}:
		result := make([]interface{}, len(v))
		for i, sub := range v {
			normalizedSub, err := normalize(sub)
			if err != nil {
				return nil, err
			}
			result[i] = normalizedSub
		}
		return result, nil
	default:
		return value, nil
	}
}
