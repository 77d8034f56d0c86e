package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/netssv/webaudit/internal/auditor"
)

// CSV flattens each result into dot-separated columns and renders one row per
// target. The header is the sorted union of every key seen, so rows from
// partially failed audits still line up.
func CSV(results []*auditor.Result) ([]byte, error) {
	rows := make([]map[string]string, 0, len(results))
	keys := make(map[string]struct{})

	for _, result := range results {
		flat, err := flattenResult(result)
		if err != nil {
			return nil, err
		}
		for k := range flat {
			keys[k] = struct{}{}
		}
		rows = append(rows, flat)
	}

	header := make([]string, 0, len(keys))
	for k := range keys {
		header = append(header, k)
	}
	sort.Strings(header)

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range rows {
		record := make([]string, len(header))
		for i, k := range header {
			record[i] = row[k]
		}
		if err := w.Write(record); err != nil {
			return nil, fmt.Errorf("writing csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func flattenResult(result *auditor.Result) (map[string]string, error) {
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("encoding result for csv: %w", err)
	}
	var tree map[string]interface{}
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	flat := make(map[string]string)
	flatten("", tree, flat)
	return flat, nil
}

// flatten walks a decoded JSON tree writing scalar leaves into out under
// dot-separated keys; list elements get numeric path segments.
func flatten(prefix string, value interface{}, out map[string]string) {
	switch v := value.(type) {
	case map[string]interface{}:
		for k, child := range v {
			flatten(joinKey(prefix, k), child, out)
		}
	case []interface{}:
		for i, child := range v {
			flatten(joinKey(prefix, strconv.Itoa(i)), child, out)
		}
	case nil:
		out[prefix] = ""
	case bool:
		out[prefix] = strconv.FormatBool(v)
	case float64:
		out[prefix] = strconv.FormatFloat(v, 'f', -1, 64)
	case string:
		out[prefix] = v
	default:
		out[prefix] = fmt.Sprintf("%v", v)
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
