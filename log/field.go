package log

import (
	"fmt"
	"strconv"
	"time"
)

// FieldType of a Field value.
type FieldType int

const (
	InvalidType = FieldType(iota)
	StringType
	IntType
	BoolType
	DurationType
	ErrorType
	AnyType
)

// Field is one structured key-value attribute of a log message.
type Field struct {
	ftype FieldType
	key   string

	vstr string
	vint int64
	verr error
	vany any
}

func (f Field) Key() string {
	return f.key
}

func (f Field) Type() FieldType {
	return f.ftype
}

func (f Field) StringValue() string { return f.vstr }

func (f Field) IntValue() int { return int(f.vint) }

func (f Field) BoolValue() bool { return f.vint != 0 }

func (f Field) DurationValue() time.Duration { return time.Duration(f.vint) }

func (f Field) ErrorValue() error { return f.verr }

func (f Field) AnyValue() any { return f.vany }

// String renders the field value as text.
func (f Field) String() string {
	switch f.ftype {
	case StringType:
		return f.vstr
	case IntType:
		return strconv.FormatInt(f.vint, 10)
	case BoolType:
		return strconv.FormatBool(f.vint != 0)
	case DurationType:
		return time.Duration(f.vint).String()
	case ErrorType:
		if f.verr == nil {
			return "<nil>"
		}

		return f.verr.Error()
	case AnyType:
		return fmt.Sprint(f.vany)
	default:
		return ""
	}
}

func String(key, value string) Field {
	return Field{ftype: StringType, key: key, vstr: value}
}

func Int(key string, value int) Field {
	return Field{ftype: IntType, key: key, vint: int64(value)}
}

func Bool(key string, value bool) Field {
	f := Field{ftype: BoolType, key: key}
	if value {
		f.vint = 1
	}

	return f
}

func Duration(key string, value time.Duration) Field {
	return Field{ftype: DurationType, key: key, vint: int64(value)}
}

func Error(value error) Field {
	return Field{ftype: ErrorType, key: "error", verr: value}
}

func Any(key string, value any) Field {
	return Field{ftype: AnyType, key: key, vany: value}
}
