package export

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/nightcatdev/aiwrap/internal/model"
)

// Shape identifies which of the accepted top-level JSON layouts a
// document uses. Detection happens once, before normalization, so the
// rest of the pipeline works from a closed variant instead of probing
// properties ad hoc.
type Shape int

const (
	// ShapeUnknown is any layout that carries no conversations. Not an
	// error here; the empty result trips ErrEmptyExport downstream.
	ShapeUnknown Shape = iota
	// ShapeArray is a top-level array of conversation objects.
	ShapeArray
	// ShapeKeyedObject is an object with a "conversations" array.
	ShapeKeyedObject
	// ShapeIDMap is a map keyed by conversation id.
	ShapeIDMap
)

// DetectShape classifies a JSON document and returns the raw
// conversation objects it carries. Malformed JSON is a ParseError.
func DetectShape(data []byte) (Shape, []json.RawMessage, error) {
	if !json.Valid(data) {
		return ShapeUnknown, nil, &model.ParseError{Reason: "malformed JSON"}
	}

	var arr []json.RawMessage
	if err := json.Unmarshal(data, &arr); err == nil {
		return ShapeArray, arr, nil
	}

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return ShapeUnknown, nil, nil
	}

	if convs, ok := obj["conversations"]; ok {
		var inner []json.RawMessage
		if err := json.Unmarshal(convs, &inner); err == nil {
			return ShapeKeyedObject, inner, nil
		}
	}

	// Map keyed by conversation id: keep object-valued entries, in key
	// order so repeated runs see the same record ordering.
	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var vals []json.RawMessage
	for _, k := range keys {
		if v := bytes.TrimSpace(obj[k]); len(v) > 0 && v[0] == '{' {
			vals = append(vals, obj[k])
		}
	}
	if len(vals) == 0 {
		return ShapeUnknown, nil, nil
	}
	return ShapeIDMap, vals, nil
}

// ExtractJSON parses a JSON export document into conversation records.
// All three accepted shapes yield equivalent record lists for
// equivalent underlying conversation objects.
func ExtractJSON(data []byte) ([]model.ConversationRecord, error) {
	_, raws, err := DetectShape(data)
	if err != nil {
		return nil, err
	}

	records := make([]model.ConversationRecord, 0, len(raws))
	for i, raw := range raws {
		records = append(records, normalizeConversation(raw, i+1))
	}
	return records, nil
}

// normalizeConversation converts one raw conversation object into a
// record. Objects that do not unmarshal cleanly become an empty record,
// which aggregation drops.
func normalizeConversation(raw json.RawMessage, ordinal int) model.ConversationRecord {
	rec := model.ConversationRecord{
		ID:    fmt.Sprintf("conv_%d", ordinal),
		Title: model.DefaultTitle,
	}

	var rc rawConversation
	if err := json.Unmarshal(raw, &rc); err != nil {
		return rec
	}

	if rc.Title != "" {
		rec.Title = rc.Title
	}
	if rc.CreateTime > 0 {
		rec.CreatedAt = epochToTime(rc.CreateTime)
	}

	// Walk the mapping graph in key order for determinism, then order
	// turns by timestamp where timestamps exist.
	keys := make([]string, 0, len(rc.Mapping))
	for k := range rc.Mapping {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		node := rc.Mapping[k]
		if node.Message == nil {
			continue
		}
		msg := node.Message

		role := model.Role(msg.Author.Role)
		if role != model.RoleUser && role != model.RoleAssistant {
			continue // tool/system nodes are not counted and not an error
		}

		turn := model.Turn{Role: role, Text: msg.Content.Text()}
		if msg.CreateTime > 0 {
			turn.Timestamp = epochToTime(msg.CreateTime)
		}
		rec.Turns = append(rec.Turns, turn)
	}

	sort.SliceStable(rec.Turns, func(i, j int) bool {
		ti, tj := rec.Turns[i].Timestamp, rec.Turns[j].Timestamp
		if ti.IsZero() || tj.IsZero() {
			return false // untimestamped turns keep their mapping order
		}
		return ti.Before(tj)
	})

	return rec
}

func epochToTime(sec float64) time.Time {
	whole := int64(sec)
	frac := sec - float64(whole)
	return time.Unix(whole, int64(frac*1e9)).UTC()
}
