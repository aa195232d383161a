package shared

import (
	"context"
	"math"
	"reflect"
	"strconv"
	"strings"

	"atoll/shared/constant"
	"atoll/shared/dto"
	"atoll/shared/timezone"

	"github.com/rs/zerolog/log"
)

const cacheKeySeparator = ":"

func ConvertStringToBool(value string) *bool {
	if value == "" {
		return nil
	}

	boolValue, err := strconv.ParseBool(value)
	if err != nil {
		log.Error().Err(err).Msg("failed to convert string to bool")

		return nil
	}

	return &boolValue
}

func CalculateTotalPage(total, limit int) (res int) {
	if total == 0 || limit <= 0 {
		res = 1
	} else {
		res = int(math.Ceil(float64(total) / float64(limit)))
	}

	return res
}

// TransformFields converts the non-zero db-tagged fields of a struct into an update map stamped with
// the modifying actor.
func TransformFields(data any, actor string) map[string]any {
	val := reflect.ValueOf(data)
	typ := reflect.TypeOf(data)

	updatedFields := make(map[string]any)

	for index := range val.NumField() {
		field := val.Field(index)
		if field.IsZero() {
			continue
		}

		fieldName := typ.Field(index).Tag.Get("db")
		if fieldName == "" {
			continue
		}

		updatedFields[fieldName] = field.Interface()
	}

	updatedFields[constant.FieldModifiedAt] = timezone.Now()
	updatedFields[constant.FieldModifiedBy] = actor

	return updatedFields
}

func FilterByID(id, fieldID string) dto.FilterGroup {
	return dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    fieldID,
				Value:    id,
				Operator: dto.FilterOperatorEq,
			},
		},
	}
}

// BuildCacheKey joins the non-empty parts under prefix, e.g. "ratelimit:10.0.0.1".
func BuildCacheKey(prefix string, parts ...string) string {
	keys := make([]string, 0, len(parts)+1)
	keys = append(keys, prefix)

	for _, part := range parts {
		if part != constant.Empty {
			keys = append(keys, part)
		}
	}

	return strings.Join(keys, cacheKeySeparator)
}

// Client is the caller's address stamped by the HTTP layer, or ClientUnknown.
func Client(ctx context.Context) string {
	if client, ok := ctx.Value(constant.ContextKeyClient).(string); ok && client != constant.Empty {
		return client
	}

	return constant.ClientUnknown
}

// Actor is the staff id carried by the request, or the system actor when there is none.
func Actor(ctx context.Context) string {
	if staffID, ok := ctx.Value(constant.ContextKeyStaffID).(string); ok && staffID != constant.Empty {
		return staffID
	}

	return constant.ActorSystem
}
