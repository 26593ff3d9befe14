// Package validation holds the per-field request rules. A rule is a pure
// function from the request input to zero or more field errors; Run folds
// an ordered rule list into a single error list without stopping early.
package validation

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Messages returned to clients. Clients match on the exact text.
const (
	MsgInvalidID           = "ID no válido"
	MsgEmptyName           = "El nombre del producto no puede ir vacío"
	MsgNotNumeric          = "Valor no válido"
	MsgEmptyPrice          = "El precio del producto no puede ir vacío"
	MsgInvalidPrice        = "Precio no válido"
	MsgInvalidAvailability = "Valor de disponibilidad no válido"
	MsgInvalidBody         = "Cuerpo de la petición no válido"
)

// Location tells where a validated value came from.
type Location string

const (
	LocationParams Location = "params"
	LocationBody   Location = "body"
)

// Kind identifies the failure mode of a rule.
type Kind string

const (
	KindInvalidID      Kind = "InvalidId"
	KindEmptyField     Kind = "EmptyField"
	KindNotNumeric     Kind = "NotNumeric"
	KindInvalidPrice   Kind = "InvalidPrice"
	KindInvalidBoolean Kind = "InvalidBoolean"
	KindInvalidBody    Kind = "InvalidBody"
)

// FieldError is a single entry of the 400 response body.
type FieldError struct {
	Type     string   `json:"type"`
	Kind     Kind     `json:"-"`
	Value    any      `json:"value,omitempty"`
	Msg      string   `json:"msg"`
	Path     string   `json:"path"`
	Location Location `json:"location"`
}

// Errors is the accumulated list for one request, in rule order.
type Errors []FieldError

// Messages returns the msg of every entry.
func (e Errors) Messages() []string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Msg
	}
	return msgs
}

// Input is everything the rules may look at. Body numbers are kept as
// json.Number so that "12" and 12 are judged alike.
type Input struct {
	Params map[string]string
	Body   map[string]any
}

// DecodeBody parses a JSON object body. An empty body yields an empty map.
func DecodeBody(raw []byte) (map[string]any, error) {
	body := map[string]any{}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return body, nil
	}

	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.UseNumber()
	if err := dec.Decode(&body); err != nil {
		return nil, err
	}
	if body == nil {
		body = map[string]any{}
	}
	return body, nil
}

// Rule checks one field and reports each failure as a separate entry.
type Rule func(in Input) []FieldError

// Run applies rules in order and accumulates every failure.
func Run(in Input, rules ...Rule) Errors {
	errs := Errors{}
	for _, rule := range rules {
		errs = append(errs, rule(in)...)
	}
	return errs
}

var validate = validator.New()

func fieldError(kind Kind, loc Location, path string, value any, msg string) []FieldError {
	return []FieldError{{
		Type:     "field",
		Kind:     kind,
		Value:    value,
		Msg:      msg,
		Path:     path,
		Location: loc,
	}}
}

// ParamInt fails when the path parameter is not an integer string.
func ParamInt(name, msg string) Rule {
	return func(in Input) []FieldError {
		raw := in.Params[name]
		if _, err := strconv.ParseInt(raw, 10, 64); err != nil {
			return fieldError(KindInvalidID, LocationParams, name, raw, msg)
		}
		return nil
	}
}

// NotEmpty fails unless the body field is a non-empty string or a number.
// Objects, arrays and booleans count as empty.
func NotEmpty(field, msg string) Rule {
	return func(in Input) []FieldError {
		value := in.Body[field]
		if s, ok := scalarString(value); !ok || validate.Var(s, "required") != nil {
			return fieldError(KindEmptyField, LocationBody, field, value, msg)
		}
		return nil
	}
}

// Numeric fails when the body field is absent or not a number.
func Numeric(field, msg string) Rule {
	return func(in Input) []FieldError {
		value := in.Body[field]
		if !isNumeric(value) {
			return fieldError(KindNotNumeric, LocationBody, field, value, msg)
		}
		return nil
	}
}

// Positive fails unless the body field is a number greater than zero.
func Positive(field, msg string) Rule {
	return func(in Input) []FieldError {
		value := in.Body[field]
		if f, ok := toFloat(value); !ok || f <= 0 {
			return fieldError(KindInvalidPrice, LocationBody, field, value, msg)
		}
		return nil
	}
}

// booleanTag is the accepted spelling set: true, false, 1 and 0, either as
// JSON literals or as strings.
const booleanTag = "required,oneof=true false 1 0"

// Boolean fails when the body field is absent or not a boolean.
func Boolean(field, msg string) Rule {
	return func(in Input) []FieldError {
		value := in.Body[field]
		if _, ok := value.(bool); ok {
			return nil
		}
		if s, ok := scalarString(value); ok && validate.Var(s, booleanTag) == nil {
			return nil
		}
		return fieldError(KindInvalidBoolean, LocationBody, field, value, msg)
	}
}

// scalarString returns the text of a string or number. Anything else,
// including null, reports false.
func scalarString(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	default:
		return "", false
	}
}

func isNumeric(value any) bool {
	switch v := value.(type) {
	case json.Number:
		return true
	case string:
		return validate.Var(v, "required,numeric") == nil
	default:
		return false
	}
}

func toFloat(value any) (float64, bool) {
	var (
		f   float64
		err error
	)
	switch v := value.(type) {
	case json.Number:
		f, err = v.Float64()
	case string:
		f, err = strconv.ParseFloat(strings.TrimSpace(v), 64)
	default:
		return 0, false
	}
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
