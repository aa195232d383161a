package dto

import (
	"fmt"
	"reflect"
	"strings"
	"time"
)

const (
	FilterOperatorEq        = "eq"
	FilterOperatorLike      = "like"
	FilterOperatorIn        = "in"
	FilterOperatorNotEq     = "not_eq"
	FilterOperatorLessEq    = "less_eq"
	FilterOperatorGreaterEq = "greater_eq"
	FilterIsNotNull         = "is_not_null"
	FilterIsNull            = "is_null"
)

const (
	FilterGroupOperatorAnd = "AND"
	FilterGroupOperatorOr  = "OR"
)

// Filter is a predicate on one stored field, addressed by its db tag.
type Filter struct {
	Field    string
	Value    any
	Operator string `validate:"required,oneof=eq like in not_eq less_eq greater_eq is_null is_not_null"`
}

// Match evaluates the filter against a row of db-tagged field values.
// A field the row does not have never matches.
func (f *Filter) Match(row map[string]any) bool {
	actual, ok := row[f.Field]
	if !ok {
		return false
	}

	switch f.Operator {
	case FilterOperatorEq:
		return equal(actual, f.Value)
	case FilterOperatorNotEq:
		return !equal(actual, f.Value)
	case FilterOperatorLike:
		return strings.Contains(strings.ToLower(stringOf(actual)), strings.ToLower(stringOf(f.Value)))
	case FilterOperatorIn:
		return contains(f.Value, actual)
	case FilterOperatorLessEq:
		cmp, ok := compare(actual, f.Value)

		return ok && cmp <= 0
	case FilterOperatorGreaterEq:
		cmp, ok := compare(actual, f.Value)

		return ok && cmp >= 0
	case FilterIsNull:
		return isZero(actual)
	case FilterIsNotNull:
		return !isZero(actual)
	default:
		return false
	}
}

type FilterGroup struct {
	Filters  []any
	Operator string
}

// Match evaluates every nested Filter and FilterGroup, joined by the group operator (AND when unset).
// An empty group matches every row.
func (f *FilterGroup) Match(row map[string]any) bool {
	results := make([]bool, 0, len(f.Filters))

	for _, filter := range f.Filters {
		switch fill := filter.(type) {
		case Filter:
			results = append(results, fill.Match(row))
		case FilterGroup:
			results = append(results, fill.Match(row))
		}
	}

	if len(results) == 0 {
		return true
	}

	if strings.EqualFold(f.Operator, FilterGroupOperatorOr) {
		for _, ok := range results {
			if ok {
				return true
			}
		}

		return false
	}

	for _, ok := range results {
		if !ok {
			return false
		}
	}

	return true
}

// IsEmpty reports whether the group carries no predicate at all.
func (f *FilterGroup) IsEmpty() bool {
	return len(f.Filters) == 0
}

func equal(a, b any) bool {
	if cmp, ok := compare(a, b); ok {
		return cmp == 0
	}

	return reflect.DeepEqual(a, b)
}

func contains(list, value any) bool {
	val := reflect.ValueOf(list)
	if val.Kind() != reflect.Slice && val.Kind() != reflect.Array {
		return equal(value, list)
	}

	for idx := range val.Len() {
		if equal(value, val.Index(idx).Interface()) {
			return true
		}
	}

	return false
}

// compare orders strings, numbers, booleans and times. ok is false for mixed or unsupported kinds.
func compare(a, b any) (int, bool) {
	if at, isTime := a.(time.Time); isTime {
		bt, isTime := b.(time.Time)
		if !isTime {
			return 0, false
		}

		return at.Compare(bt), true
	}

	av := reflect.Indirect(reflect.ValueOf(a))
	bv := reflect.Indirect(reflect.ValueOf(b))

	if !av.IsValid() || !bv.IsValid() {
		return 0, false
	}

	switch {
	case av.Kind() == reflect.String && bv.Kind() == reflect.String:
		return strings.Compare(av.String(), bv.String()), true
	case isNumber(av) && isNumber(bv):
		af, bf := toFloat(av), toFloat(bv)

		switch {
		case af < bf:
			return -1, true
		case af > bf:
			return 1, true
		default:
			return 0, true
		}
	case av.Kind() == reflect.Bool && bv.Kind() == reflect.Bool:
		if av.Bool() == bv.Bool() {
			return 0, true
		}

		if !av.Bool() {
			return -1, true
		}

		return 1, true
	}

	return 0, false
}

func isNumber(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

func toFloat(v reflect.Value) float64 {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint())
	default:
		return v.Float()
	}
}

func stringOf(value any) string {
	val := reflect.Indirect(reflect.ValueOf(value))
	if !val.IsValid() {
		return ""
	}

	if val.Kind() == reflect.String {
		return val.String()
	}

	return fmt.Sprintf("%v", val.Interface())
}

func isZero(value any) bool {
	if value == nil {
		return true
	}

	return reflect.ValueOf(value).IsZero()
}
