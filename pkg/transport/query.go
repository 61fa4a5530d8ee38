package transport

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// InvalidDateError reports a date-like value that could not be normalized to
// an ISO-8601 UTC string.
type InvalidDateError struct {
	Value string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid date value: %q", e.Value)
}

// dateLayouts are the accepted shapes for caller-supplied date strings.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.000Z",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// NormalizeDate converts a date-like value (time.Time or string) into the
// canonical ISO-8601 UTC form used on the wire. Strings that parse under
// none of the accepted layouts fail with InvalidDateError.
func NormalizeDate(value any) (string, error) {
	switch v := value.(type) {
	case time.Time:
		return v.UTC().Format("2006-01-02T15:04:05.000Z"), nil
	case *time.Time:
		if v == nil {
			return "", &InvalidDateError{Value: "<nil>"}
		}
		return v.UTC().Format("2006-01-02T15:04:05.000Z"), nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC().Format("2006-01-02T15:04:05.000Z"), nil
			}
		}
		return "", &InvalidDateError{Value: v}
	default:
		return "", &InvalidDateError{Value: fmt.Sprintf("%v", value)}
	}
}

// EncodeQuery URL-encodes flat string-keyed parameters. Values are
// stringified first: numbers and booleans via strconv, dates to canonical
// ISO-8601 UTC, decimals via their exact string form. Keys are emitted in
// sorted order so encoded URLs are stable.
func EncodeQuery(params map[string]any) (string, error) {
	if len(params) == 0 {
		return "", nil
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	values := url.Values{}
	for _, k := range keys {
		s, err := stringifyQueryValue(params[k])
		if err != nil {
			return "", fmt.Errorf("query parameter %q: %w", k, err)
		}
		values.Set(k, s)
	}
	return values.Encode(), nil
}

func stringifyQueryValue(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int:
		return strconv.Itoa(v), nil
	case int32:
		return strconv.FormatInt(int64(v), 10), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case decimal.Decimal:
		return v.String(), nil
	case time.Time, *time.Time:
		return NormalizeDate(v)
	case fmt.Stringer:
		return v.String(), nil
	default:
		return "", fmt.Errorf("unsupported query value type %T", value)
	}
}
