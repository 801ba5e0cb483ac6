package fixture

import (
	"fmt"
	"math"

	"github.com/tidwall/gjson"

	"github.com/AndreyAkinshin/neartest/pkg/neartest"
)

// Extract selects the value at query (gjson path syntax) from a JSON
// document and converts it into a Value. Numbers become scalars, arrays of
// numbers become sequences, and arrays of arrays become nested sequences.
//
// The strings "NaN", "Infinity" and "-Infinity" are accepted as numbers,
// since JSON cannot represent them directly.
func Extract(doc []byte, query string) (neartest.Value[float64], error) {
	if !gjson.ValidBytes(doc) {
		return neartest.Value[float64]{}, fmt.Errorf("actual document is not valid JSON")
	}
	r := gjson.GetBytes(doc, query)
	if !r.Exists() {
		return neartest.Value[float64]{}, fmt.Errorf("path %q not found in actual document", query)
	}
	return resultValue(r)
}

func resultValue(r gjson.Result) (neartest.Value[float64], error) {
	if !r.IsArray() {
		f, err := resultFloat(r)
		if err != nil {
			return neartest.Value[float64]{}, err
		}
		return neartest.Scalar(f), nil
	}

	items := r.Array()
	if len(items) > 0 && items[0].IsArray() {
		rows := make([][]float64, len(items))
		for i, item := range items {
			if !item.IsArray() {
				return neartest.Value[float64]{}, fmt.Errorf("[%d]: expected array, got %s", i, item.Type)
			}
			row, err := resultFloats(item.Array())
			if err != nil {
				return neartest.Value[float64]{}, fmt.Errorf("[%d]%w", i, err)
			}
			rows[i] = row
		}
		return neartest.Nested(rows), nil
	}

	seq, err := resultFloats(items)
	if err != nil {
		return neartest.Value[float64]{}, err
	}
	return neartest.Sequence(seq), nil
}

func resultFloats(items []gjson.Result) ([]float64, error) {
	out := make([]float64, len(items))
	for i, item := range items {
		f, err := resultFloat(item)
		if err != nil {
			return nil, fmt.Errorf("[%d]: %w", i, err)
		}
		out[i] = f
	}
	return out, nil
}

func resultFloat(r gjson.Result) (float64, error) {
	switch r.Type {
	case gjson.Number:
		return r.Num, nil
	case gjson.String:
		switch r.Str {
		case "NaN":
			return math.NaN(), nil
		case "Infinity":
			return math.Inf(1), nil
		case "-Infinity":
			return math.Inf(-1), nil
		}
		return 0, fmt.Errorf("expected number, got string %q", r.Str)
	default:
		if r.IsObject() {
			return 0, fmt.Errorf("expected number, got object")
		}
		return 0, fmt.Errorf("expected number, got %s", r.Type)
	}
}
