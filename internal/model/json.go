package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// MarshalJSON emits the dashboard document with group keys in GroupOrder
// rather than Go's default sorted map order, so the output file diffs
// cleanly between runs.
func (s *Snapshot) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	writeField := func(key string, v any) error {
		if buf.Len() > 1 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return err
		}
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(data)
		return nil
	}

	if err := writeField("generated_at", s.GeneratedAt); err != nil {
		return nil, err
	}
	for _, name := range s.GroupOrder {
		recs := s.Groups[name]
		if recs == nil {
			recs = []MetricRecord{}
		}
		if err := writeField(name, recs); err != nil {
			return nil, err
		}
	}
	if s.Holdings != nil {
		if err := writeField("holdings", s.Holdings); err != nil {
			return nil, err
		}
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
