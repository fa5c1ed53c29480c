package model

import (
	"encoding/json"
	"strconv"
	"strings"
)

// DecodeGallery turns the persisted gallery column into a list of image
// URLs. The column is a JSON-encoded array; anything unreadable decodes to
// an empty list so a broken row never breaks rendering.
func DecodeGallery(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{}
	}

	var gallery []string
	if err := json.Unmarshal([]byte(raw), &gallery); err != nil {
		return []string{}
	}
	return gallery
}

// DecodeIDList parses an option id-list column. Legacy rows store a
// comma-separated string, newer rows a JSON array; both decode to the same
// ordered id list. Malformed entries are dropped, not errored.
func DecodeIDList(raw string) []int64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	if strings.HasPrefix(raw, "[") {
		var ids []int64
		if err := json.Unmarshal([]byte(raw), &ids); err == nil {
			return ids
		}
		// JSON arrays with mixed content: salvage the numeric entries
		var mixed []json.Number
		if err := json.Unmarshal([]byte(raw), &mixed); err != nil {
			return nil
		}
		var out []int64
		for _, n := range mixed {
			if id, err := n.Int64(); err == nil {
				out = append(out, id)
			}
		}
		return out
	}

	var out []int64
	for _, part := range strings.Split(raw, ",") {
		id, err := strconv.ParseInt(strings.TrimSpace(part), 10, 64)
		if err != nil {
			continue
		}
		out = append(out, id)
	}
	return out
}
