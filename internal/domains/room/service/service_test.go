package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"atoll/config"
	"atoll/infras/otel/mocks"
	roomMocks "atoll/internal/domains/room/mocks"
	"atoll/internal/domains/room/model"
	"atoll/internal/domains/room/model/dto"
	"atoll/internal/domains/room/repository"
	"atoll/internal/domains/room/service"
	"atoll/internal/events"
	"atoll/roster"
	"atoll/shared/constant"
	gDto "atoll/shared/dto"
	"atoll/shared/failure"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newService(t *testing.T) (service.Room, *[]events.Event) {
	t.Helper()

	repo, err := repository.New(&roster.Roster{Rooms: []roster.Room{
		{ID: "r101", Name: "101", Type: "Twin Room"},
		{ID: "r201", Name: "201", Type: "Double Bed"},
	}}, mocks.NewOtel())
	require.NoError(t, err)

	published := []events.Event{}
	bus := events.New(&config.Config{}, nil, mocks.NewOtel())
	bus.Subscribe(func(_ context.Context, event events.Event) { published = append(published, event) })

	return service.New(repo, bus, mocks.NewOtel()), &published
}

func TestRoomService_CycleStatus(t *testing.T) {
	svc, published := newService(t)
	ctx := context.WithValue(context.Background(), constant.ContextKeyStaffID, "s1")

	want := []string{"Occupied", "Cleaning", "Out of Order", "Ready"}

	for _, status := range want {
		res, err := svc.CycleStatus(ctx, "r101")
		require.NoError(t, err)
		assert.Equal(t, status, res.Status)
		assert.Equal(t, "s1", res.ModifiedBy)
	}

	assert.Len(t, *published, 4)
	assert.Equal(t, events.RoomStatusChanged, (*published)[0].Type)
	assert.Equal(t, []string{"r101"}, (*published)[0].EntityIDs)

	other, err := svc.Get(ctx, "r201")
	require.NoError(t, err)
	assert.Equal(t, "Ready", other.Status)
	assert.Equal(t, "Occupied", other.NextStatus)
}

func TestRoomService_UpdateStatus(t *testing.T) {
	svc, published := newService(t)
	ctx := context.Background()

	res, err := svc.UpdateStatus(ctx, "r201", dto.UpdateStatusRequest{Status: "Out of Order"})
	require.NoError(t, err)
	assert.Equal(t, "Out of Order", res.Status)
	assert.Equal(t, constant.ActorSystem, res.ModifiedBy)

	_, err = svc.UpdateStatus(ctx, "r201", dto.UpdateStatusRequest{Status: "Flooded"})
	assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

	_, err = svc.UpdateStatus(ctx, "r999", dto.UpdateStatusRequest{Status: "Ready"})
	assert.Equal(t, http.StatusNotFound, failure.GetCode(err))

	assert.Len(t, *published, 1)
}

func TestRoomService_GetAll(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	all, err := svc.GetAll(ctx, gDto.QueryParams{Page: 1, Limit: 50}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, 2, all.TotalData)
	assert.Equal(t, 1, all.TotalPage)
	assert.Equal(t, "r101", all.Rooms[0].ID)

	doubles, err := svc.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{Filters: []any{
		gDto.Filter{Field: model.FieldType, Operator: gDto.FilterOperatorEq, Value: "Double Bed"},
	}})
	require.NoError(t, err)
	require.Len(t, doubles.Rooms, 1)
	assert.Equal(t, "r201", doubles.Rooms[0].ID)
}

func TestRoomService_Occupy(t *testing.T) {
	svc, published := newService(t)
	ctx := context.Background()

	require.NoError(t, svc.Occupy(ctx, []string{"r101", "r201"}, "s1"))

	for _, id := range []string{"r101", "r201"} {
		room, err := svc.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Occupied", room.Status)
		assert.Equal(t, "s1", room.ModifiedBy)
	}

	require.Len(t, *published, 1)
	assert.Equal(t, events.RoomStatusChanged, (*published)[0].Type)
	assert.Equal(t, []string{"r101", "r201"}, (*published)[0].EntityIDs)

	require.NoError(t, svc.Occupy(ctx, nil, "s1"))
	assert.Len(t, *published, 1, "nothing to occupy publishes nothing")
}

func TestRoomService_OccupyWhileCycling(t *testing.T) {
	svc, _ := newService(t)
	ctx := context.Background()

	var wg sync.WaitGroup

	for range 20 {
		wg.Add(2)

		go func() {
			defer wg.Done()

			assert.NoError(t, svc.Occupy(ctx, []string{"r101"}, "s1"))
		}()

		go func() {
			defer wg.Done()

			_, err := svc.CycleStatus(ctx, "r101")
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	room, err := svc.Get(ctx, "r101")
	require.NoError(t, err)
	assert.Contains(t, []string{"Ready", "Occupied", "Cleaning", "Out of Order"}, room.Status)
}

func TestRoomService_RepositoryErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := roomMocks.NewMockRoom(ctrl)
	bus := events.New(&config.Config{}, nil, mocks.NewOtel())
	svc := service.New(repo, bus, mocks.NewOtel())
	ctx := context.Background()

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("boom"))

	_, err := svc.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	assert.Error(t, err)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Room{ID: "r1", Status: model.StatusReady}, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("locked"))

	_, err = svc.CycleStatus(ctx, "r1")
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))

	repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("locked"))

	assert.Error(t, svc.Occupy(ctx, []string{"r1"}, "s1"))
}

func TestRepository_RejectsUnknownRoomType(t *testing.T) {
	_, err := repository.New(&roster.Roster{Rooms: []roster.Room{{ID: "x", Name: "x", Type: "Suite"}}}, mocks.NewOtel())
	assert.Error(t, err)
}
