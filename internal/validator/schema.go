package validator

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// 1フィールド分のエラー
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// 値を検証し、必要なら整形した値を返す
type step struct {
	run func(v any) (any, bool)
	msg string
}

// 1プロパティ分のチェックの列。
// 先頭から順に実行し、最初に失敗したものだけを報告して残りは実行しない。
// 同じプロパティで複数の制約に違反しても、エラーは1件になる。
type Field struct {
	name     string
	optional bool
	steps    []step
}

func Body(name string) *Field {
	return &Field{name: name}
}

// 未指定（またはnull）のときは検証しない
func (f *Field) Optional() *Field {
	f.optional = true
	return f
}

func (f *Field) add(msg string, run func(v any) (any, bool)) *Field {
	f.steps = append(f.steps, step{run: run, msg: msg})
	return f
}

func (f *Field) NotEmpty(msg string) *Field {
	return f.add(msg, func(v any) (any, bool) {
		switch t := v.(type) {
		case nil:
			return v, false
		case string:
			return v, t != ""
		default:
			return v, true
		}
	})
}

func (f *Field) IsString(msg string) *Field {
	return f.add(msg, func(v any) (any, bool) {
		_, ok := v.(string)
		return v, ok
	})
}

// 前後の空白を落とす（失敗しない）
func (f *Field) Trim() *Field {
	return f.add("", func(v any) (any, bool) {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s), true
		}
		return v, true
	})
}

func (f *Field) MinLength(n int, msg string) *Field {
	return f.add(msg, func(v any) (any, bool) {
		s, ok := v.(string)
		return v, ok && len([]rune(s)) >= n
	})
}

// JSONの数値、または数値として読める文字列
func (f *Field) IsNumeric(msg string) *Field {
	return f.add(msg, func(v any) (any, bool) {
		switch t := v.(type) {
		case json.Number:
			return v, true
		case string:
			_, err := strconv.ParseFloat(strings.TrimSpace(t), 64)
			return v, strings.TrimSpace(t) != "" && err == nil
		default:
			return v, false
		}
	})
}

// JSONの数値のみ（文字列は不可）
func (f *Field) IsNumber(msg string) *Field {
	return f.add(msg, func(v any) (any, bool) {
		n, ok := v.(json.Number)
		if !ok {
			return v, false
		}
		_, err := n.Float64()
		return v, err == nil
	})
}

// 整数に変換する（int64）
func (f *Field) IsInt(msg string) *Field {
	return f.add(msg, func(v any) (any, bool) {
		var raw string
		switch t := v.(type) {
		case json.Number:
			raw = t.String()
		case string:
			raw = strings.TrimSpace(t)
		case int64:
			return t, true
		default:
			return v, false
		}
		i, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return v, false
		}
		return i, true
	})
}

// IsIntの後に使う
func (f *Field) Min(min int64, msg string) *Field {
	return f.add(msg, func(v any) (any, bool) {
		i, ok := v.(int64)
		return v, ok && i >= min
	})
}

func (f *Field) IsPositive(msg string) *Field {
	return f.add(msg, func(v any) (any, bool) {
		d, ok := toDecimal(v)
		return v, ok && d.IsPositive()
	})
}

func (f *Field) MaxDecimalPlaces(places int32, msg string) *Field {
	return f.add(msg, func(v any) (any, bool) {
		d, ok := toDecimal(v)
		return v, ok && d.Round(places).Equal(d)
	})
}

func (f *Field) IsBoolean(msg string) *Field {
	return f.add(msg, func(v any) (any, bool) {
		_, ok := v.(bool)
		return v, ok
	})
}

func toDecimal(v any) (decimal.Decimal, bool) {
	switch t := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(t.String())
		return d, err == nil
	case int64:
		return decimal.NewFromInt(t), true
	default:
		return decimal.Decimal{}, false
	}
}

// デコード済みJSONオブジェクトをFieldの集まりで検証する
type Schema struct {
	fields []*Field
	strict bool
}

func NewSchema(fields ...*Field) Schema {
	return Schema{fields: fields}
}

// 定義外のプロパティを拒否する
func (s Schema) Strict() Schema {
	s.strict = true
	return s
}

// 整形済みのボディ（定義済みかつ存在する項目のみ）とエラーを返す。
// エラーはFieldごとに最大1件でFieldの定義順に並び、Strictなら未定義プロパティの分が後に続く。
func (s Schema) Validate(body map[string]any) (map[string]any, []FieldError) {
	clean := make(map[string]any, len(s.fields))
	var errs []FieldError

	for _, f := range s.fields {
		v, present := body[f.name]
		if f.optional && (!present || v == nil) {
			continue
		}

		ok := true
		for _, st := range f.steps {
			next, pass := st.run(v)
			if !pass {
				errs = append(errs, FieldError{Field: f.name, Message: st.msg})
				ok = false
				break
			}
			v = next
		}
		if ok && present {
			clean[f.name] = v
		}
	}

	if s.strict {
		known := make(map[string]bool, len(s.fields))
		for _, f := range s.fields {
			known[f.name] = true
		}
		var unknown []string
		for k := range body {
			if !known[k] {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)
		for _, k := range unknown {
			errs = append(errs, FieldError{Field: k, Message: fmt.Sprintf("property %s should not exist", k)})
		}
	}

	return clean, errs
}
