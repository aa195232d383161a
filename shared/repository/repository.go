package repository

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
	"sync"
	"time"

	"atoll/infras/otel"
	"atoll/shared/constant"
	"atoll/shared/dto"
	"atoll/shared/logger"
)

var (
	errRequiredFilter = errors.New("required filter")
	errDuplicateKey   = errors.New("duplicate primary key")
	errMissingKey     = errors.New("missing primary key")
	errUnknownField   = errors.New("unknown field")
	errFieldType      = errors.New("incompatible field type")
)

type field struct {
	name  string
	index []int
}

type table[T any] struct {
	mu   sync.RWMutex
	rows []T
	keys map[string]struct{}
}

// Repository is an in-memory table of T. Fields are addressed by their db tag, rows keep insertion order,
// and every write is applied under one lock so a batch is visible all at once or not at all.
type Repository[T any] struct {
	otel          otel.Otel
	entitas       string
	primaryColumn string
	fields        []field
	table         *table[T]
}

func NewRepository[T any](entitasName, primaryColumn string, otl otel.Otel) Repository[T] {
	var zero T

	return Repository[T]{
		otel:          otl,
		entitas:       entitasName,
		primaryColumn: primaryColumn,
		fields:        getFields(reflect.TypeOf(zero), nil),
		table:         &table[T]{keys: map[string]struct{}{}},
	}
}

func (repo *Repository[T]) Insert(ctx context.Context, model T) (err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Insert", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer scope.TraceIfError(err)

	return repo.InsertBulk(ctx, []T{model})
}

// InsertBulk appends every model or none of them.
func (repo *Repository[T]) InsertBulk(ctx context.Context, models []T) (err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.InsertBulk", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = ctx.Err(); err != nil {
		return fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
	}

	repo.table.mu.Lock()
	defer repo.table.mu.Unlock()

	batch := make(map[string]struct{}, len(models))

	for _, model := range models {
		key := fmt.Sprint(repo.value(model, repo.primaryColumn))

		if key == constant.Empty {
			err = errMissingKey
		} else if _, exist := repo.table.keys[key]; exist {
			err = errDuplicateKey
		} else if _, exist := batch[key]; exist {
			err = errDuplicateKey
		}

		if err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to insert data (%s): %w", repo.entitas, err)
		}

		batch[key] = struct{}{}
	}

	for key := range batch {
		repo.table.keys[key] = struct{}{}
	}

	repo.table.rows = append(repo.table.rows, models...)

	scope.SetAttribute("rows", len(models))

	return nil
}

func (repo *Repository[T]) Exist(ctx context.Context, filter dto.FilterGroup) (bool, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Exist", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if filter.IsEmpty() {
		return false, errRequiredFilter
	}

	repo.table.mu.RLock()
	defer repo.table.mu.RUnlock()

	return slices.ContainsFunc(repo.table.rows, func(model T) bool {
		return filter.Match(repo.row(model))
	}), nil
}

// Get returns the first row in insertion order that matches, or the zero value when nothing does.
func (repo *Repository[T]) Get(ctx context.Context, filter dto.FilterGroup) (T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Get", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.table.mu.RLock()
	defer repo.table.mu.RUnlock()

	for _, model := range repo.table.rows {
		if filter.Match(repo.row(model)) {
			return model, nil
		}
	}

	var zero T

	return zero, nil
}

// GetAll returns matching rows in insertion order, or stably sorted when params name a sort field.
func (repo *Repository[T]) GetAll(ctx context.Context, params dto.QueryParams, filter dto.FilterGroup) ([]T, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.GetAll", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	if params.SortBy != "" && !repo.hasField(params.SortBy) {
		err := fmt.Errorf("failed to get all data (%s): %w: %s", repo.entitas, errUnknownField, params.SortBy)
		scope.TraceError(err)

		return nil, err
	}

	repo.table.mu.RLock()

	models := make([]T, 0, len(repo.table.rows))

	for _, model := range repo.table.rows {
		if filter.Match(repo.row(model)) {
			models = append(models, model)
		}
	}

	repo.table.mu.RUnlock()

	if params.SortBy != "" {
		desc := strings.EqualFold(params.SortDir, dto.SortDirDesc)

		slices.SortStableFunc(models, func(a, b T) int {
			res := compareValues(repo.value(a, params.SortBy), repo.value(b, params.SortBy))
			if desc {
				return -res
			}

			return res
		})
	}

	start, end := params.Window(len(models))

	scope.SetAttribute("rows", end-start)

	return models[start:end], nil
}

func (repo *Repository[T]) Count(ctx context.Context, filter dto.FilterGroup) (int, error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Count", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()

	repo.table.mu.RLock()
	defer repo.table.mu.RUnlock()

	count := 0

	for _, model := range repo.table.rows {
		if filter.Match(repo.row(model)) {
			count++
		}
	}

	return count, nil
}

// Update assigns mod (db tag to value) on every matching row. Either every row is updated or none is.
func (repo *Repository[T]) Update(ctx context.Context, mod map[string]any, filter dto.FilterGroup) (err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Update", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer scope.TraceIfError(err)

	if filter.IsEmpty() {
		return errRequiredFilter
	}

	if _, ok := mod[repo.primaryColumn]; ok {
		return fmt.Errorf("failed to update data (%s): %w: %s is immutable", repo.entitas, errFieldType, repo.primaryColumn)
	}

	repo.table.mu.Lock()
	defer repo.table.mu.Unlock()

	updated := map[int]T{}

	for idx, model := range repo.table.rows {
		if !filter.Match(repo.row(model)) {
			continue
		}

		if err = repo.assign(&model, mod); err != nil {
			logger.ErrorWithStack(err)

			return fmt.Errorf("failed to update data (%s): %w", repo.entitas, err)
		}

		updated[idx] = model
	}

	for idx, model := range updated {
		repo.table.rows[idx] = model
	}

	scope.SetAttribute("rows", len(updated))

	return nil
}

// Delete removes every matching row.
func (repo *Repository[T]) Delete(ctx context.Context, filter dto.FilterGroup) (err error) {
	_, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.Delete", constant.OtelRepositoryScopeName, repo.entitas))
	defer scope.End()
	defer scope.TraceIfError(err)

	if filter.IsEmpty() {
		return errRequiredFilter
	}

	repo.table.mu.Lock()
	defer repo.table.mu.Unlock()

	kept := repo.table.rows[:0:0]

	for _, model := range repo.table.rows {
		if filter.Match(repo.row(model)) {
			delete(repo.table.keys, fmt.Sprint(repo.value(model, repo.primaryColumn)))

			continue
		}

		kept = append(kept, model)
	}

	scope.SetAttribute("rows", len(repo.table.rows)-len(kept))

	repo.table.rows = kept

	return nil
}

func (repo *Repository[T]) assign(model *T, mod map[string]any) error {
	target := reflect.ValueOf(model).Elem()

	for name, value := range mod {
		idx := slices.IndexFunc(repo.fields, func(f field) bool { return f.name == name })
		if idx == -1 {
			return fmt.Errorf("%w: %s", errUnknownField, name)
		}

		dest := target.FieldByIndex(repo.fields[idx].index)

		if value == nil {
			dest.Set(reflect.Zero(dest.Type()))

			continue
		}

		src := reflect.ValueOf(value)

		switch {
		case src.Type().AssignableTo(dest.Type()):
			dest.Set(src)
		case src.Kind() == dest.Kind() && src.Type().ConvertibleTo(dest.Type()):
			dest.Set(src.Convert(dest.Type()))
		default:
			return fmt.Errorf("%w: %s expects %s, got %s", errFieldType, name, dest.Type(), src.Type())
		}
	}

	return nil
}

func (repo *Repository[T]) row(model T) map[string]any {
	val := reflect.ValueOf(model)
	row := make(map[string]any, len(repo.fields))

	for _, f := range repo.fields {
		row[f.name] = val.FieldByIndex(f.index).Interface()
	}

	return row
}

func (repo *Repository[T]) value(model T, name string) any {
	for _, f := range repo.fields {
		if f.name == name {
			return reflect.ValueOf(model).FieldByIndex(f.index).Interface()
		}
	}

	return nil
}

func (repo *Repository[T]) hasField(name string) bool {
	return slices.ContainsFunc(repo.fields, func(f field) bool { return f.name == name })
}

func getFields(reflectType reflect.Type, parent []int) []field {
	fields := []field{}

	for i := range reflectType.NumField() {
		structField := reflectType.Field(i)
		index := append(slices.Clone(parent), i)

		if structField.Anonymous && structField.Type.Kind() == reflect.Struct {
			fields = append(fields, getFields(structField.Type, index)...)

			continue
		}

		dbTag := structField.Tag.Get("db")
		if dbTag == "" || dbTag == "-" {
			continue
		}

		fields = append(fields, field{name: dbTag, index: index})
	}

	return fields
}

func compareValues(a, b any) int {
	av := reflect.Indirect(reflect.ValueOf(a))
	bv := reflect.Indirect(reflect.ValueOf(b))

	if !av.IsValid() || !bv.IsValid() {
		return cmp.Compare(boolRank(av.IsValid()), boolRank(bv.IsValid()))
	}

	if at, ok := av.Interface().(time.Time); ok {
		bt, _ := bv.Interface().(time.Time)

		return at.Compare(bt)
	}

	switch av.Kind() {
	case reflect.String:
		return strings.Compare(av.String(), bv.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return cmp.Compare(av.Int(), bv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return cmp.Compare(av.Uint(), bv.Uint())
	case reflect.Float32, reflect.Float64:
		return cmp.Compare(av.Float(), bv.Float())
	case reflect.Bool:
		return cmp.Compare(boolRank(av.Bool()), boolRank(bv.Bool()))
	}

	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}

func boolRank(b bool) int {
	if b {
		return 1
	}

	return 0
}
