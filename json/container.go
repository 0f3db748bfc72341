package json

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/docindex"
)

type localRecord struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Meta        string `json:"meta"`
}

// DecodeContainer reads a local documentation dump: a JSON object mapping
// each key to {title, description, meta}. Records keep key order.
func DecodeContainer(r io.Reader) ([]docindex.Record, error) {
	records := []docindex.Record{}
	err := eachMember(r, func(key string, raw json.RawMessage) error {
		var v localRecord
		if err := json.Unmarshal(raw, &v); err != nil {
			return docindex.Errorf(docindex.EINVALID, "record %q: %v", key, err)
		}
		records = append(records, &docindex.LocalRecord{
			Label:       key,
			Title:       v.Title,
			Description: v.Description,
			Meta:        v.Meta,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
