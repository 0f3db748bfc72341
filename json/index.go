package json

import (
	"bytes"

	"github.com/fwojciec/docindex"
)

// MarshalChapters encodes groups as an array of entry arrays, one per
// group, in order.
func MarshalChapters(groups []*docindex.Group) ([]byte, error) {
	chapters := make([][]*docindex.Entry, len(groups))
	for i, g := range groups {
		chapters[i] = entries(g)
	}

	b, err := marshalCompact(chapters)
	if err != nil {
		return nil, err
	}
	return indent(b)
}

// MarshalModules encodes groups as an object mapping group name to its
// entry array. Members are written in group order.
func MarshalModules(groups []*docindex.Group) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, g := range groups {
		if i > 0 {
			buf.WriteByte(',')
		}

		key, err := marshalCompact(g.Name)
		if err != nil {
			return nil, err
		}
		value, err := marshalCompact(entries(g))
		if err != nil {
			return nil, err
		}

		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')

	return indent(buf.Bytes())
}

func entries(g *docindex.Group) []*docindex.Entry {
	if g.Entries == nil {
		return []*docindex.Entry{}
	}
	return g.Entries
}
