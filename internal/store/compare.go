package store

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// looseEqual compares two field values the way the dashboard always
// has: values that both read as numbers compare numerically, everything
// else compares by its text form. A numeric 5 therefore matches "5".
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	af, aok := toNumber(a)
	bf, bok := toNumber(b)
	if aok && bok {
		return af == bf
	}
	return toText(a) == toText(b)
}

// looseLess orders two field values: numeric when both sides read as
// numbers, textual otherwise.
func looseLess(a, b any) bool {
	af, aok := toNumber(a)
	bf, bok := toNumber(b)
	if aok && bok {
		return af < bf
	}
	return toText(a) < toText(b)
}

func toNumber(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(n, 64)
		return f, err == nil
	}
	return 0, false
}

func toText(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case json.Number:
		return s.String()
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(s)
	case nil:
		return ""
	}
	return fmt.Sprintf("%v", v)
}

// sortRecords orders recs in place by field. Stable, so ties keep their
// insertion order. Records missing the field sort as empty text.
func sortRecords(recs []Record, field string, ascending bool) {
	sort.SliceStable(recs, func(i, j int) bool {
		if ascending {
			return looseLess(recs[i][field], recs[j][field])
		}
		return looseLess(recs[j][field], recs[i][field])
	})
}

// mergeInto shallow-merges patch into dst, overwriting existing keys.
func mergeInto(dst, patch Record) {
	for k, v := range patch {
		dst[k] = v
	}
}

// recordID returns the record's id as text, or "" when absent.
func recordID(rec Record) string {
	v, ok := rec["id"]
	if !ok || v == nil {
		return ""
	}
	s := toText(v)
	return s
}
