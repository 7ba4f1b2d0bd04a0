package stmt

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Prefixes of typed string values.
const (
	prefixUUID    = "uuid:"
	prefixDecimal = "decimal:"
	prefixTime    = "time:"
)

// Value is a bound value decoded from YAML.
//
// Scalars decode to their natural Go types: int64, float64, bool, string, or nil.
// Strings with a type prefix decode to typed values:
//
//	uuid:6f1c...     -> uuid.UUID
//	decimal:10.50    -> decimal.Decimal
//	time:2024-01-02T03:04:05Z -> time.Time
//
// Sequences decode to a slice of the element type when all elements share one,
// otherwise to []any.
type Value struct {
	Val any
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	val, err := decodeNode(node)
	if err != nil {
		return err
	}
	v.Val = val
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (v Value) MarshalYAML() (any, error) {
	switch val := v.Val.(type) {
	case uuid.UUID:
		return prefixUUID + val.String(), nil
	case decimal.Decimal:
		return prefixDecimal + val.String(), nil
	case time.Time:
		return prefixTime + val.Format(time.RFC3339Nano), nil
	default:
		return val, nil
	}
}

func decodeNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		return decodeScalar(node)
	case yaml.SequenceNode:
		return decodeSequence(node)
	case yaml.AliasNode:
		return decodeNode(node.Alias)
	default:
		return nil, errors.Errorf("line %d: expected scalar or sequence value", node.Line)
	}
}

func decodeScalar(node *yaml.Node) (any, error) {
	switch node.ShortTag() {
	case "!!null":
		return nil, nil
	case "!!bool":
		var out bool
		err := node.Decode(&out)
		return out, err
	case "!!int":
		out, err := strconv.ParseInt(node.Value, 0, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", node.Line)
		}
		return out, nil
	case "!!float":
		var out float64
		err := node.Decode(&out)
		return out, err
	default:
		return decodeString(node.Value, node.Line)
	}
}

func decodeString(src string, line int) (any, error) {
	switch {
	case strings.HasPrefix(src, prefixUUID):
		out, err := uuid.Parse(strings.TrimPrefix(src, prefixUUID))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid uuid", line)
		}
		return out, nil

	case strings.HasPrefix(src, prefixDecimal):
		out, err := decimal.NewFromString(strings.TrimPrefix(src, prefixDecimal))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid decimal", line)
		}
		return out, nil

	case strings.HasPrefix(src, prefixTime):
		out, err := time.Parse(time.RFC3339Nano, strings.TrimPrefix(src, prefixTime))
		if err != nil {
			return nil, errors.Wrapf(err, "line %d: invalid time", line)
		}
		return out, nil

	default:
		return src, nil
	}
}

func decodeSequence(node *yaml.Node) (any, error) {
	vals := make([]any, 0, len(node.Content))
	for _, elem := range node.Content {
		val, err := decodeNode(elem)
		if err != nil {
			return nil, err
		}
		vals = append(vals, val)
	}
	return homogenize(vals), nil
}

// homogenize converts a list of same-typed scalars to a typed slice, which
// drivers can bind as an array.
func homogenize(vals []any) any {
	if len(vals) == 0 {
		return vals
	}
	switch vals[0].(type) {
	case int64:
		return typedSlice[int64](vals)
	case float64:
		return typedSlice[float64](vals)
	case bool:
		return typedSlice[bool](vals)
	case string:
		return typedSlice[string](vals)
	}
	return vals
}

func typedSlice[T any](vals []any) any {
	out := make([]T, 0, len(vals))
	for _, val := range vals {
		elem, ok := val.(T)
		if !ok {
			return vals
		}
		out = append(out, elem)
	}
	return out
}
