// Package value converts Go values into the canonical wire encoding used for
// statement parameters. The encoding is deterministic: equal values always
// produce equal bytes, which the transaction digest relies on.
package value

import (
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/chronicledb/chronicle-go-sdk/internal/xerrors"
)

var marshalOptions = proto.MarshalOptions{
	Deterministic: true,
}

// Marshal returns the canonical wire encoding of v.
// Supported types are nil, bool, integer and float kinds, string, []byte,
// []any and map[string]any (recursively). Anything else fails with a
// value-conversion error.
func Marshal(v any) ([]byte, error) {
	pv, err := structpb.NewValue(v)
	if err != nil {
		return nil, xerrors.WithStackTrace(xerrors.ValueConversion(v, err))
	}
	encoded, err := marshalOptions.Marshal(pv)
	if err != nil {
		return nil, xerrors.WithStackTrace(xerrors.ValueConversion(v, err))
	}

	return encoded, nil
}

// MarshalAll converts every parameter in order, failing on the first
// unsupported value.
func MarshalAll(values ...any) ([][]byte, error) {
	if len(values) == 0 {
		return nil, nil
	}
	encoded := make([][]byte, 0, len(values))
	for _, v := range values {
		b, err := Marshal(v)
		if err != nil {
			return nil, err
		}
		encoded = append(encoded, b)
	}

	return encoded, nil
}
