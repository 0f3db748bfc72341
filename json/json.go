// Package json decodes raw documentation containers and encodes the
// normalized index. Object keys are read in document order, since entry
// order in the index follows key order in the source.
package json

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"

	"github.com/fwojciec/docindex"
)

// eachMember calls fn for every member of the single JSON object in r,
// in document order.
func eachMember(r io.Reader, fn func(key string, raw json.RawMessage) error) error {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return docindex.Errorf(docindex.EINVALID, "invalid JSON: %v", err)
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return docindex.Errorf(docindex.EINVALID, "expected JSON object")
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return docindex.Errorf(docindex.EINVALID, "invalid JSON: %v", err)
		}
		key, ok := tok.(string)
		if !ok {
			return docindex.Errorf(docindex.EINVALID, "expected object key")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return docindex.Errorf(docindex.EINVALID, "invalid JSON value for %q: %v", key, err)
		}
		if err := fn(key, raw); err != nil {
			return err
		}
	}

	if _, err := dec.Token(); err != nil {
		return docindex.Errorf(docindex.EINVALID, "invalid JSON: %v", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return docindex.Errorf(docindex.EINVALID, "unexpected data after JSON object")
	}
	return nil
}

// marshalCompact encodes v without HTML escaping and without the
// trailing newline json.Encoder appends.
func marshalCompact(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

func indent(compact []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := json.Indent(&buf, compact, "", "  "); err != nil {
		return nil, err
	}
	buf.WriteByte('\n')
	return buf.Bytes(), nil
}
