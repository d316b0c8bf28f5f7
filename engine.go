package jsondiag

import (
	"encoding/json"
	"strconv"
)

// Transform post-processes each parsed key/value pair, called bottom-up
// over the parsed structure the way a JSON reviver is: object members
// under their key, array elements under their decimal index, and finally
// the root value under the empty key. The returned value replaces the
// original. A non-nil error aborts parsing and is returned to the caller
// verbatim.
type Transform func(key string, value any) (any, error)

// Engine is the underlying strict JSON parser. It either returns the
// parsed value or an error describing the failure; the error wording and
// offset convention belong to the engine and are decoded by a matching
// interpret.Interpreter.
type Engine interface {
	Parse(text string, transform Transform) (any, error)
}

type stdEngine struct{}

// DefaultEngine returns the encoding/json backed engine. Parse failures
// surface as *json.SyntaxError with a byte offset.
func DefaultEngine() Engine {
	return stdEngine{}
}

func (stdEngine) Parse(text string, transform Transform) (any, error) {
	var value any
	if err := json.Unmarshal([]byte(text), &value); err != nil {
		return nil, err
	}
	if transform == nil {
		return value, nil
	}
	return applyTransform("", value, transform)
}

// applyTransform walks value leaf-first, replacing each element with the
// transform's result before visiting its parent.
func applyTransform(key string, value any, transform Transform) (any, error) {
	switch v := value.(type) {
	case map[string]any:
		for k, member := range v {
			replaced, err := applyTransform(k, member, transform)
			if err != nil {
				return nil, err
			}
			v[k] = replaced
		}
	case []any:
		for i, element := range v {
			replaced, err := applyTransform(strconv.Itoa(i), element, transform)
			if err != nil {
				return nil, err
			}
			v[i] = replaced
		}
	}
	return transform(key, value)
}
