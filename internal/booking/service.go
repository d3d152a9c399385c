package booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"studioslot/internal/api"
	"studioslot/internal/client"
	"studioslot/internal/email"
	"studioslot/internal/lock"
	"studioslot/internal/logger"
	"studioslot/internal/metrics"
	"studioslot/internal/schedule"
)

const (
	MsgSlotConflict    = "This time slot conflicts with an existing booking"
	MsgSlotBooked      = "This time slot is already booked"
	MsgSlotUnavailable = "This time slot is not available"
)

var (
	ErrRequestNotBookable = errors.New("service requests do not hold a slot")
	ErrSlotConflict = errors.New("booking overlaps a confirmed booking")
	ErrSlotBooked   = errors.New("slot already booked")
	ErrSlotBlocked  = errors.New("slot blocked")
	ErrDateBusy     = errors.New("date is locked by another booking")
)

type Clients interface {
	PriceFor(hours int) float64
}

type Blocks interface {
	ForDate(ctx context.Context, date string) ([]schedule.Block, error)
	All(ctx context.Context) ([]schedule.Block, error)
	Count(ctx context.Context) (int, error)
}

type Notifier interface {
	SendStudioNotification(ctx context.Context, d email.BookingDetails) error
	SendBookingConfirmation(ctx context.Context, d email.BookingDetails) error
	SendCancellation(ctx context.Context, d email.BookingDetails) error
}

type Options struct {
	// StrictOverlap also rejects candidates whose occupied slots touch any
	// confirmed booking or block, not only the checks clients relied on.
	StrictOverlap bool
	LockTimeout   time.Duration
}

type Service interface {
	Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error)
	CreateServiceRequest(ctx context.Context, kind string, req ServiceRequest) (*Booking, error)
	Get(ctx context.Context, id int) (*Booking, error)
	List(ctx context.Context, status string) ([]Booking, error)
	UpdateStatus(ctx context.Context, id int, req UpdateStatusRequest) (*Booking, error)
	Delete(ctx context.Context, id int) error
	Availability(ctx context.Context) (schedule.Availability, error)
	Stats(ctx context.Context) (*Stats, error)
}

type service struct {
	repo     Repository
	clients  Clients
	blocks   Blocks
	locker   lock.Locker
	notifier Notifier
	opts     Options
	now      func() time.Time
}

func NewService(repo Repository, clients Clients, blocks Blocks, locker lock.Locker, notifier Notifier, opts Options) Service {
	if opts.LockTimeout <= 0 {
		opts.LockTimeout = 5 * time.Second
	}
	return &service{
		repo:     repo,
		clients:  clients,
		blocks:   blocks,
		locker:   locker,
		notifier: notifier,
		opts:     opts,
		now:      time.Now,
	}
}

func (s *service) Create(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	if err := api.ValidateDate(req.Date); err != nil {
		return nil, err
	}
	label, err := schedule.NormalizeTimeLabel(req.Time)
	if err != nil {
		return nil, api.Wrap(api.KindValidation, "Invalid time, expected a label like 2:00 PM", err)
	}
	if _, ok := req.Duration.Hours(); !ok {
		return nil, api.Validation(fmt.Sprintf("Duration must be a whole number of hours between 1 and %d", MaxDurationHours))
	}

	release, err := s.lockDate(ctx, req.Date)
	if err != nil {
		return nil, err
	}
	defer release()

	candidate := schedule.Occupancy{
		Date:      req.Date,
		Time:      label,
		Duration:  string(req.Duration),
		Confirmed: true,
	}
	if err := s.checkSlot(ctx, candidate, 0); err != nil {
		return nil, err
	}

	created, err := s.repo.CreateForClient(ctx, client.Contact{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
	}, NewBooking{
		ServiceType: req.ServiceType,
		Date:        req.Date,
		Time:        label,
		Duration:    string(req.Duration),
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: req.ProjectType,
		Message:     req.Message,
		Status:      StatusPending,
	})
	if err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	b, cl := created.Booking, created.Client
	requiresVerification := b.RequiresVerification
	if created.NewClient {
		logger.Info("client profile created", "client_id", cl.ID)
	}

	metrics.RecordBooking(StatusPending, b.ServiceType)
	logger.Info("booking created",
		"booking_id", b.ID,
		"date", b.Date,
		"time", b.Time,
		"duration", b.Duration,
		"client_id", cl.ID,
		"requires_verification", requiresVerification,
	)
	s.notify(func() error { return s.notifier.SendStudioNotification(ctx, b.Details()) }, b.ID)

	resp := &CreateBookingResponse{
		Message:              "Booking request submitted successfully",
		Booking:              b,
		RequiresVerification: requiresVerification,
		ClientID:             cl.ID,
	}
	if requiresVerification {
		resp.VerificationMessage = "ID verification required for first-time clients"
	}
	return resp, nil
}

// checkSlot applies the booking checks in order against confirmed bookings on
// the candidate's date other than excludeID.
func (s *service) checkSlot(ctx context.Context, candidate schedule.Occupancy, excludeID int) error {
	confirmed, err := s.repo.ListConfirmedByDate(ctx, candidate.Date)
	if err != nil {
		return fmt.Errorf("load confirmed bookings: %w", err)
	}
	blocks, err := s.blocks.ForDate(ctx, candidate.Date)
	if err != nil {
		return fmt.Errorf("load blocked slots: %w", err)
	}

	existing := make([]schedule.Occupancy, 0, len(confirmed))
	for i := range confirmed {
		if confirmed[i].ID != excludeID {
			existing = append(existing, confirmed[i].Occupancy())
		}
	}

	conflict, err := schedule.HasConflict(candidate, existing)
	if err != nil {
		return api.Wrap(api.KindValidation, "Invalid booking time", err)
	}
	if conflict {
		metrics.RecordRejection("duration_conflict")
		return api.Wrap(api.KindConflict, MsgSlotConflict, ErrSlotConflict)
	}
	if schedule.ExactMatch(candidate.Date, candidate.Time, existing) {
		metrics.RecordRejection("already_booked")
		return api.Wrap(api.KindConflict, MsgSlotBooked, ErrSlotBooked)
	}
	if schedule.IsBlocked(candidate.Date, candidate.Time, blocks) {
		metrics.RecordRejection("blocked")
		return api.Wrap(api.KindConflict, MsgSlotUnavailable, ErrSlotBlocked)
	}

	if s.opts.StrictOverlap {
		overlap, err := schedule.Overlaps(candidate, existing, blocks)
		if err != nil {
			return api.Wrap(api.KindValidation, "Invalid booking time", err)
		}
		if overlap {
			metrics.RecordRejection("overlap")
			return api.Wrap(api.KindConflict, MsgSlotConflict, ErrSlotConflict)
		}
	}

	return nil
}

func (s *service) lockDate(ctx context.Context, date string) (func(), error) {
	lctx, cancel := context.WithTimeout(ctx, s.opts.LockTimeout)
	defer cancel()

	start := time.Now()
	release, err := s.locker.Lock(lctx, lock.DateKey(date))
	metrics.RecordLockWait(time.Since(start).Seconds())
	if err != nil {
		if errors.Is(err, lock.ErrLockTimeout) {
			logger.Warn("date lock wait timed out", "date", date)
			return nil, api.Wrap(api.KindConflict, "Another booking for this date is being processed, please retry", ErrDateBusy)
		}
		return nil, fmt.Errorf("lock date %s: %w", date, err)
	}
	return release, nil
}

// notify runs send and only logs a failure; mail never fails the request.
func (s *service) notify(send func() error, bookingID int) {
	if s.notifier == nil {
		return
	}
	if err := send(); err != nil {
		logger.Warn("failed to queue booking email", "booking_id", bookingID, "error", err)
	}
}

func (s *service) CreateServiceRequest(ctx context.Context, kind string, req ServiceRequest) (*Booking, error) {
	if kind != StatusEngineerRequest && kind != StatusMixingRequest {
		return nil, api.Validation("Unknown request type")
	}

	b, err := s.repo.Create(ctx, NewBooking{
		ServiceType: kind,
		Date:        s.now().Format(api.DateLayout),
		Time:        RequestTime,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: kind,
		Message:     req.Message,
		Status:      kind,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", kind, err)
	}

	metrics.RecordBooking(kind, kind)
	logger.Info("service request created", "booking_id", b.ID, "type", kind)
	s.notify(func() error { return s.notifier.SendStudioNotification(ctx, b.Details()) }, b.ID)
	return b, nil
}

func (s *service) Get(ctx context.Context, id int) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, ErrBookingNotFound) {
		return nil, api.Wrap(api.KindNotFound, "Booking not found", err)
	}
	return b, err
}

func (s *service) List(ctx context.Context, status string) ([]Booking, error) {
	return s.repo.List(ctx, status)
}

func (s *service) UpdateStatus(ctx context.Context, id int, req UpdateStatusRequest) (*Booking, error) {
	switch req.Status {
	case StatusPending, StatusConfirmed, StatusCancelled:
	default:
		return nil, api.Validation("Invalid status")
	}

	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status == StatusConfirmed && current.IsServiceRequest() {
		return nil, api.Wrap(api.KindValidation, "Engineer and mixing requests cannot be confirmed", ErrRequestNotBookable)
	}

	if req.Status == StatusConfirmed {
		release, err := s.lockDate(ctx, current.Date)
		if err != nil {
			return nil, err
		}
		defer release()

		if req.Force {
			logger.Warn("booking force-confirmed without conflict check", "booking_id", id)
		} else {
			candidate := current.Occupancy()
			candidate.Confirmed = true
			if err := s.checkSlot(ctx, candidate, current.ID); err != nil {
				return nil, err
			}
		}
	}

	var updated *Booking
	if req.Status == StatusConfirmed {
		updated, err = s.repo.Confirm(ctx, id, s.amountDue(current))
	} else {
		updated, err = s.repo.UpdateStatus(ctx, id, req.Status)
	}
	if errors.Is(err, ErrBookingNotFound) {
		return nil, api.Wrap(api.KindNotFound, "Booking not found", err)
	}
	if err != nil {
		return nil, fmt.Errorf("update booking status: %w", err)
	}

	metrics.RecordStatusChange(req.Status)
	logger.Info("booking status changed", "booking_id", id, "from", current.Status, "to", req.Status)

	if current.Status == req.Status {
		return updated, nil
	}

	switch req.Status {
	case StatusConfirmed:
		s.notify(func() error { return s.notifier.SendBookingConfirmation(ctx, updated.Details()) }, updated.ID)
	case StatusCancelled:
		s.notify(func() error { return s.notifier.SendCancellation(ctx, updated.Details()) }, updated.ID)
	}

	return updated, nil
}

// amountDue is the package price of b, zero for bookings without a client.
func (s *service) amountDue(b *Booking) float64 {
	if b.ClientID == nil {
		return 0
	}
	hours, _ := schedule.ParseDuration(b.Duration)
	return s.clients.PriceFor(hours)
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return api.Wrap(api.KindNotFound, "Booking not found", err)
		}
		return fmt.Errorf("delete booking: %w", err)
	}
	logger.Info("booking deleted", "booking_id", id)
	return nil
}

func (s *service) Availability(ctx context.Context) (schedule.Availability, error) {
	confirmed, err := s.repo.ListConfirmed(ctx)
	if err != nil {
		return nil, fmt.Errorf("load confirmed bookings: %w", err)
	}
	blocks, err := s.blocks.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load blocked slots: %w", err)
	}

	return schedule.BuildAvailability(Occupancies(confirmed), blocks), nil
}

func (s *service) Stats(ctx context.Context) (*Stats, error) {
	st, err := s.repo.Stats(ctx)
	if err != nil {
		return nil, err
	}
	blocked, err := s.blocks.Count(ctx)
	if err != nil {
		return nil, err
	}
	st.Blocked = blocked
	return st, nil
}
