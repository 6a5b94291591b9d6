package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "pawsconnect/internal/delivery/context"
	"pawsconnect/internal/domain/entity"
	domainerrors "pawsconnect/internal/domain/errors"
	"pawsconnect/internal/domain/repository"
	"pawsconnect/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// careService implements the CareUsecase interface.
type careService struct {
	serviceRepo repository.CareServiceRepository
	bookingRepo repository.BookingRepository
	logger      *slog.Logger
}

// CareServiceParams holds dependencies for careService, injected by Fx.
type CareServiceParams struct {
	fx.In

	ServiceRepo repository.CareServiceRepository
	BookingRepo repository.BookingRepository
	Logger      *slog.Logger
}

// NewCareService is the constructor for careService.
func NewCareService(params CareServiceParams) usecase.CareUsecase {
	return &careService{
		serviceRepo: params.ServiceRepo,
		bookingRepo: params.BookingRepo,
		logger:      params.Logger,
	}
}

func (srv *careService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func parseCareCategory(s string) (entity.CareCategory, error) {
	switch entity.CareCategory(strings.ToLower(s)) {
	case entity.CareGrooming:
		return entity.CareGrooming, nil
	case entity.CareBoarding:
		return entity.CareBoarding, nil
	case entity.CareConsultation:
		return entity.CareConsultation, nil
	default:
		return "", domainerrors.ErrValidationFailed.WrapMessage("category must be grooming, boarding or consultation")
	}
}

func (srv *careService) CreateService(ctx context.Context, input usecase.CreateCareServiceInput) (*entity.CareService, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("service name is required")
	}
	if input.Price < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("price must not be negative")
	}

	category, err := parseCareCategory(input.Category)
	if err != nil {
		return nil, err
	}

	svc := &entity.CareService{
		Name:            strings.TrimSpace(input.Name),
		Description:     input.Description,
		Price:           input.Price,
		DurationMinutes: input.DurationMinutes,
		Category:        category,
	}

	if err := srv.serviceRepo.Create(ctx, svc); err != nil {
		return nil, errors.Wrap(err, "failed to create care service")
	}

	srv.log(ctx).Info("Care service created", slog.Int64("serviceID", svc.ID), slog.String("category", string(category)))

	return svc, nil
}

func (srv *careService) ListServices(ctx context.Context) ([]*entity.CareService, error) {
	services, err := srv.serviceRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list care services")
	}

	return services, nil
}

func (srv *careService) GetService(ctx context.Context, id int64) (*entity.CareService, error) {
	svc, err := srv.serviceRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to get care service")
	}

	return svc, nil
}

// BookService inserts a pending booking. There is no conflict detection;
// overlapping bookings are allowed.
func (srv *careService) BookService(ctx context.Context, input usecase.BookServiceInput) (*entity.Booking, error) {
	if input.BookingDate.IsZero() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("booking date is required")
	}
	if input.BookingDate.Before(time.Now()) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("booking date must be in the future")
	}

	if _, err := srv.serviceRepo.FindByID(ctx, input.ServiceID); err != nil {
		if errors.Is(err, repository.ErrServiceNotFound) {
			return nil, domainerrors.ErrServiceNotFound
		}

		return nil, errors.Wrap(err, "failed to load care service for booking")
	}

	booking := &entity.Booking{
		UserID:      input.UserID,
		ServiceID:   input.ServiceID,
		BookingDate: input.BookingDate,
		Status:      entity.BookingPending,
	}

	if err := srv.bookingRepo.Create(ctx, booking); err != nil {
		return nil, errors.Wrap(err, "failed to create booking")
	}

	srv.log(ctx).Info("Booking created",
		slog.Int64("bookingID", booking.ID),
		slog.Int64("serviceID", input.ServiceID),
		slog.Int64("userID", input.UserID))

	return booking, nil
}

func (srv *careService) ListMyBookings(ctx context.Context, userID int64) ([]*entity.Booking, error) {
	bookings, err := srv.bookingRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list bookings")
	}

	return bookings, nil
}

// CancelBooking deletes a booking after checking it belongs to the caller.
func (srv *careService) CancelBooking(ctx context.Context, bookingID, userID int64) error {
	booking, err := srv.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return domainerrors.ErrBookingNotFound
		}

		return errors.Wrap(err, "failed to load booking for cancellation")
	}

	if booking.UserID != userID {
		return domainerrors.ErrForbidden
	}

	if err := srv.bookingRepo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return domainerrors.ErrBookingNotFound
		}

		return errors.Wrap(err, "failed to cancel booking")
	}

	srv.log(ctx).Info("Booking canceled", slog.Int64("bookingID", bookingID), slog.Int64("userID", userID))

	return nil
}
