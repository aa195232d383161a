package shared_test

import (
	"context"
	"testing"
	"time"

	"atoll/shared"
	"atoll/shared/constant"
	"atoll/shared/dto"

	"github.com/stretchr/testify/assert"
)

func boolPtr(b bool) *bool {
	return &b
}

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		input    string
		expected *bool
	}{
		{input: "", expected: nil},
		{input: "true", expected: boolPtr(true)},
		{input: "0", expected: boolPtr(false)},
		{input: "F", expected: boolPtr(false)},
		{input: "yes", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.ConvertStringToBool(tt.input))
		})
	}
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name         string
		total, limit int
		expected     int
	}{
		{name: "empty", total: 0, limit: 10, expected: 1},
		{name: "exact", total: 20, limit: 10, expected: 2},
		{name: "remainder", total: 21, limit: 10, expected: 3},
		{name: "no limit", total: 21, limit: 0, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type statusUpdate struct {
		Status string `db:"status"`
		Notes  string `db:"notes"`
		Skip   string
	}

	before := time.Now()
	fields := shared.TransformFields(statusUpdate{Status: "Cleaning", Skip: "x"}, "s1")

	assert.Equal(t, "Cleaning", fields["status"])
	assert.NotContains(t, fields, "notes")
	assert.NotContains(t, fields, "Skip")
	assert.Equal(t, "s1", fields[constant.FieldModifiedBy])

	modifiedAt, ok := fields[constant.FieldModifiedAt].(time.Time)
	assert.True(t, ok)
	assert.False(t, modifiedAt.Before(before.Truncate(time.Second)))
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("r1", "id")

	assert.Equal(t, dto.FilterGroup{Filters: []any{
		dto.Filter{Field: "id", Value: "r1", Operator: dto.FilterOperatorEq},
	}}, filter)
	assert.True(t, filter.Match(map[string]any{"id": "r1"}))
	assert.False(t, filter.Match(map[string]any{"id": "r2"}))
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "ratelimit:10.0.0.1:/v1/bookings", shared.BuildCacheKey("ratelimit", "10.0.0.1", "/v1/bookings"))
	assert.Equal(t, "summary:abc", shared.BuildCacheKey("summary", "", "abc"))
	assert.Equal(t, "summary", shared.BuildCacheKey("summary"))
}

func TestActor(t *testing.T) {
	assert.Equal(t, constant.ActorSystem, shared.Actor(context.Background()))
	assert.Equal(t, constant.ActorSystem, shared.Actor(context.WithValue(context.Background(), constant.ContextKeyStaffID, "")))
	assert.Equal(t, "s2", shared.Actor(context.WithValue(context.Background(), constant.ContextKeyStaffID, "s2")))
}

func TestClient(t *testing.T) {
	assert.Equal(t, constant.ClientUnknown, shared.Client(context.Background()))
	assert.Equal(t, "10.0.0.5", shared.Client(context.WithValue(context.Background(), constant.ContextKeyClient, "10.0.0.5")))
}
