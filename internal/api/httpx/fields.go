package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"
)

// Fields is a flat view of a POST body. Missing keys are absent, not "".
type Fields map[string]string

func (f Fields) Get(key string) string { return f[key] }

func (f Fields) Lookup(key string) (string, bool) {
	v, ok := f[key]
	return v, ok
}

const maxMultipartMemory = 1 << 20

// ReadFields decodes a form-encoded, multipart or JSON body into Fields.
// JSON numbers and booleans are converted to their text form; null is dropped.
func ReadFields(r *http.Request) (Fields, error) {
	ct, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	switch ct {
	case "application/json":
		return readJSON(r)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
			return nil, fmt.Errorf("parse multipart: %w", err)
		}
	default:
		if err := r.ParseForm(); err != nil {
			return nil, fmt.Errorf("parse form: %w", err)
		}
	}

	out := make(Fields, len(r.PostForm))
	for k, vs := range r.PostForm {
		if len(vs) > 0 {
			out[k] = vs[0]
		}
	}
	return out, nil
}

func readJSON(r *http.Request) (Fields, error) {
	if r.Body == nil {
		return Fields{}, nil
	}
	var raw map[string]any
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	if dec.More() {
		return nil, errors.New("decode json: trailing data")
	}

	out := make(Fields, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case nil:
		case string:
			out[k] = t
		case json.Number:
			out[k] = t.String()
		case bool:
			out[k] = strconv.FormatBool(t)
		default:
			return nil, fmt.Errorf("decode json: field %q must be a scalar", k)
		}
	}
	return out, nil
}
