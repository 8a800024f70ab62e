package web

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

// Decode error kinds. A missing required field and a present-but-unparseable
// value are distinct, reportable failures.
const (
	decodeMissing  = "missing"
	decodeBadValue = "bad value"
)

// DecodeError reports a single failed form field.
type DecodeError struct {
	Field string
	Kind  string // decodeMissing or decodeBadValue
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("form field %q: %s", e.Field, e.Kind)
}

// formReader decodes form-encoded fields into typed values, recording the
// first failure. Callers read every field, then check Err once.
type formReader struct {
	r   *http.Request
	err *DecodeError
}

// newFormReader parses the request form and returns a reader over it.
func newFormReader(r *http.Request) (*formReader, error) {
	if err := r.ParseForm(); err != nil {
		return nil, err
	}
	return &formReader{r: r}, nil
}

// fail records the first decode failure; later failures are ignored.
func (f *formReader) fail(field, kind string) {
	if f.err == nil {
		f.err = &DecodeError{Field: field, Kind: kind}
	}
}

// Required returns the trimmed field value, recording a missing-field error
// when absent or blank.
func (f *formReader) Required(field string) string {
	v := strings.TrimSpace(f.r.PostFormValue(field))
	if v == "" {
		f.fail(field, decodeMissing)
	}
	return v
}

// Optional returns the trimmed field value, empty when absent.
func (f *formReader) Optional(field string) string {
	return strings.TrimSpace(f.r.PostFormValue(field))
}

// Int64 coerces a required field to int64.
func (f *formReader) Int64(field string) int64 {
	v := f.Required(field)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		f.fail(field, decodeBadValue)
		return 0
	}
	return n
}

// Int coerces a required field to int.
func (f *formReader) Int(field string) int {
	return int(f.Int64(field))
}

// Float coerces a required field to float64.
func (f *formReader) Float(field string) float64 {
	v := f.Required(field)
	if v == "" {
		return 0
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		f.fail(field, decodeBadValue)
		return 0
	}
	return n
}

// Err returns the first decode failure, or nil if every field decoded.
func (f *formReader) Err() error {
	if f.err == nil {
		return nil
	}
	return f.err
}
