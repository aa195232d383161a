package service

import (
	"context"
	"encoding/json"
	"fmt"

	"atoll/config"
	"atoll/infras/otel"
	"atoll/infras/s3"
	bookingModel "atoll/internal/domains/booking/model"
	bookingRepo "atoll/internal/domains/booking/repository"
	"atoll/internal/domains/logistics/model"
	"atoll/internal/domains/logistics/model/dto"
	transferModel "atoll/internal/domains/transfer/model"
	transferRepo "atoll/internal/domains/transfer/repository"
	"atoll/shared"
	"atoll/shared/calendar"
	"atoll/shared/constant"
	gDto "atoll/shared/dto"
	"atoll/shared/failure"
	"atoll/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const manifestDirectory = "manifests"

type Logistics interface {
	Feed(ctx context.Context) (dto.FeedResponse, error)
	Day(ctx context.Context, date string) (dto.DayResponse, error)
	ExportManifest(ctx context.Context, date string) (dto.ManifestResponse, error)
}

type serviceImpl struct {
	bookingRepo  bookingRepo.Booking
	transferRepo transferRepo.Transfer
	s3           s3.S3
	cfg          *config.Config
	otel         otel.Otel
}

func New(bookingRepo bookingRepo.Booking, transferRepo transferRepo.Transfer, s3 s3.S3, cfg *config.Config, otel otel.Otel) Logistics {
	return &serviceImpl{
		bookingRepo:  bookingRepo,
		transferRepo: transferRepo,
		s3:           s3,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Feed(ctx context.Context) (res dto.FeedResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Feed")
	defer scope.End()
	defer scope.TraceIfError(err)

	bookings, speedboats, err := s.load(ctx, constant.Empty)
	if err != nil {
		return res, err
	}

	all := model.Merge(bookings, speedboats)

	res.Entries = model.Feed(all)
	res.Total = len(all)

	return res, nil
}

func (s *serviceImpl) Day(ctx context.Context, date string) (res dto.DayResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Day")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = calendar.ParseDate(date); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res.Date = date
	res.Entries, err = s.day(ctx, date)

	return res, err
}

// ExportManifest uploads the day's transfers as JSON and returns the object URL.
func (s *serviceImpl) ExportManifest(ctx context.Context, date string) (res dto.ManifestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ExportManifest")
	defer scope.End()
	defer scope.TraceIfError(err)

	if s.s3 == nil || s.cfg.External.S3.BucketName == constant.Empty {
		return res, failure.ServiceUnavailable("manifest export is not configured") // nolint:wrapcheck
	}

	if _, err = calendar.ParseDate(date); err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	entries, err := s.day(ctx, date)
	if err != nil {
		return res, err
	}

	manifest := dto.Manifest{
		Date:        date,
		GeneratedAt: timezone.Format(timezone.Now(), constant.DateFormat),
		GeneratedBy: shared.Actor(ctx),
		Entries:     entries,
	}
	manifest.CountSeats()

	data, err := json.Marshal(manifest)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode manifest")

		return res, fmt.Errorf("failed to encode manifest: %w", err)
	}

	fileName := fmt.Sprintf("%s-%s.json", date, uuid.NewString())

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, manifestDirectory, fileName, constant.ContentTypeJSON, data)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("failed to upload manifest")

		return res, fmt.Errorf("failed to upload manifest: %w", err)
	}

	log.Info().Str("date", date).Int("entries", len(entries)).Str("url", url).Msg("manifest exported")

	res = dto.ManifestResponse{Date: date, URL: url, Entries: len(entries)}

	return res, nil
}

func (s *serviceImpl) day(ctx context.Context, date string) ([]model.Entry, error) {
	bookings, speedboats, err := s.load(ctx, date)
	if err != nil {
		return nil, err
	}

	return model.OnDay(model.Merge(bookings, speedboats), date), nil
}

// load reads booking transfers and speedboat bookings, only those dated date when it is set.
func (s *serviceImpl) load(ctx context.Context, date string) ([]bookingModel.Booking, []transferModel.SpeedboatBooking, error) {
	bookingFilter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{
		gDto.Filter{Field: bookingModel.FieldHasTransfer, Operator: gDto.FilterOperatorEq, Value: true},
	}}
	speedboatFilter := gDto.FilterGroup{}

	if date != constant.Empty {
		bookingFilter.Filters = append(bookingFilter.Filters,
			gDto.Filter{Field: bookingModel.FieldStartDate, Operator: gDto.FilterOperatorEq, Value: date})
		speedboatFilter = shared.FilterByID(date, transferModel.FieldDate)
	}

	bookings, err := s.bookingRepo.GetAll(ctx, gDto.QueryParams{}, bookingFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings with transfers")

		return nil, nil, fmt.Errorf("failed to get bookings with transfers: %w", err)
	}

	speedboats, err := s.transferRepo.GetAll(ctx, gDto.QueryParams{}, speedboatFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get speedboat bookings")

		return nil, nil, fmt.Errorf("failed to get speedboat bookings: %w", err)
	}

	return bookings, speedboats, nil
}
