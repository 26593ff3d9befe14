package validation

import (
	"context"
	"strconv"
)

type inputKey struct{}

// WithInput stores the validated input for the downstream handler.
func WithInput(ctx context.Context, in Input) context.Context {
	return context.WithValue(ctx, inputKey{}, in)
}

// FromContext returns the input stored by WithInput.
func FromContext(ctx context.Context) (Input, bool) {
	in, ok := ctx.Value(inputKey{}).(Input)
	return in, ok
}

// The readers below convert values that already passed the rules. They
// return the zero value for anything they cannot read.

func (in Input) String(field string) string {
	s, _ := scalarString(in.Body[field])
	return s
}

func (in Input) Float(field string) float64 {
	f, _ := toFloat(in.Body[field])
	return f
}

func (in Input) Bool(field string) bool {
	if b, ok := in.Body[field].(bool); ok {
		return b
	}
	s, _ := scalarString(in.Body[field])
	return s == "true" || s == "1"
}

func (in Input) Int64(param string) int64 {
	id, _ := strconv.ParseInt(in.Params[param], 10, 64)
	return id
}
