package fracture

import (
	"bytes"
	"encoding/json"
	"sort"
)

// itemFromValue builds a document model directly from a Go value, bypassing
// the text parser. Maps are emitted with sorted keys so output is stable.
// Types without a direct mapping take a round trip through encoding/json,
// which also surfaces unsupported values (channels, cycles) as errors.
func itemFromValue(value any, recursionLimit int) (*item, error) {
	if recursionLimit < 0 {
		return nil, simpleError("maximum recursion depth exceeded")
	}

	switch v := value.(type) {
	case nil:
		return &item{typ: itemNull, value: "null"}, nil
	case bool:
		if v {
			return &item{typ: itemTrue, value: "true"}, nil
		}
		return &item{typ: itemFalse, value: "false"}, nil
	case string:
		escaped, err := json.Marshal(v)
		if err != nil {
			return nil, simpleError("failed to serialize value: %s", err)
		}
		return &item{typ: itemString, value: string(escaped)}, nil
	case json.Number:
		return &item{typ: itemNumber, value: v.String()}, nil
	case float32, float64, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64:
		literal, err := json.Marshal(v)
		if err != nil {
			return nil, simpleError("failed to serialize value: %s", err)
		}
		return &item{typ: itemNumber, value: string(literal)}, nil
	case []any:
		arr := &item{typ: itemArray}
		for _, elem := range v {
			child, err := itemFromValue(elem, recursionLimit-1)
			if err != nil {
				return nil, err
			}
			arr.children = append(arr.children, child)
			if child.complexity+1 > arr.complexity {
				arr.complexity = child.complexity + 1
			}
		}
		return arr, nil
	case map[string]any:
		keys := make([]string, 0, len(v))
		for key := range v {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		obj := &item{typ: itemObject}
		for _, key := range keys {
			child, err := itemFromValue(v[key], recursionLimit-1)
			if err != nil {
				return nil, err
			}
			escapedName, err := json.Marshal(key)
			if err != nil {
				return nil, simpleError("failed to serialize value: %s", err)
			}
			child.name = string(escapedName)
			obj.children = append(obj.children, child)
			if child.complexity+1 > obj.complexity {
				obj.complexity = child.complexity + 1
			}
		}
		return obj, nil
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return nil, simpleError("failed to serialize value: %s", err)
		}
		dec := json.NewDecoder(bytes.NewReader(encoded))
		dec.UseNumber()
		var decoded any
		if err := dec.Decode(&decoded); err != nil {
			return nil, simpleError("failed to serialize value: %s", err)
		}
		return itemFromValue(decoded, recursionLimit)
	}
}
