package blocked

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"studioslot/internal/api"
	"studioslot/internal/logger"
	"studioslot/internal/metrics"
	"studioslot/internal/schedule"
)

// MaxBulkDays bounds the date range of one bulk-block request.
const MaxBulkDays = 366

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*BlockedSlot, error)
	BulkBlock(ctx context.Context, req BulkBlockRequest) (int, error)
	Delete(ctx context.Context, id int) error
	DeleteByDate(ctx context.Context, date string) (int64, error)
	List(ctx context.Context) ([]BlockedSlot, error)
	Grouped(ctx context.Context) (map[string][]string, error)
	ForDate(ctx context.Context, date string) ([]schedule.Block, error)
	All(ctx context.Context) ([]schedule.Block, error)
	Count(ctx context.Context) (int, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*BlockedSlot, error) {
	if err := api.ValidateDate(req.Date); err != nil {
		return nil, err
	}
	label, err := schedule.ParseClock(req.Time)
	if err != nil {
		return nil, api.Wrap(api.KindValidation, "Invalid time, expected a label like 2:00 PM", err)
	}

	exists, err := s.repo.Exists(ctx, req.Date, label)
	if err != nil {
		return nil, fmt.Errorf("check blocked slot: %w", err)
	}
	if exists {
		return nil, api.Wrap(api.KindConflict, "This time slot is already blocked", ErrSlotAlreadyBlocked)
	}

	reason := req.Reason
	if reason == "" {
		reason = DefaultReason
	}

	slot, err := s.repo.Create(ctx, NewSlot{Date: req.Date, Time: label, Reason: reason})
	if errors.Is(err, ErrSlotAlreadyBlocked) {
		return nil, api.Wrap(api.KindConflict, "This time slot is already blocked", err)
	}
	if err != nil {
		return nil, fmt.Errorf("create blocked slot: %w", err)
	}

	metrics.RecordBlockedSlots("single", 1)
	logger.Info("slot blocked", "date", slot.Date, "time", slot.Time)
	return slot, nil
}

func (s *service) BulkBlock(ctx context.Context, req BulkBlockRequest) (int, error) {
	slots, err := ExpandBulk(req)
	if err != nil {
		return 0, err
	}
	if len(slots) == 0 {
		return 0, nil
	}

	n, err := s.repo.BulkCreate(ctx, slots)
	if err != nil {
		return 0, fmt.Errorf("bulk block: %w", err)
	}

	metrics.RecordBlockedSlots("bulk", n)
	logger.Info("bulk block applied", "start", req.StartDate, "end", req.EndDate, "candidates", len(slots), "inserted", n)
	return n, nil
}

// ExpandBulk lists every (date, time) a bulk request covers: each date in the
// inclusive range whose weekday is selected, crossed with every time.
func ExpandBulk(req BulkBlockRequest) ([]NewSlot, error) {
	start, err := time.Parse(api.DateLayout, req.StartDate)
	if err != nil {
		return nil, api.Validation("Invalid start_date, expected YYYY-MM-DD")
	}
	end, err := time.Parse(api.DateLayout, req.EndDate)
	if err != nil {
		return nil, api.Validation("Invalid end_date, expected YYYY-MM-DD")
	}
	if end.Before(start) {
		return nil, api.Validation("end_date must not be before start_date")
	}
	if int(end.Sub(start).Hours()/24)+1 > MaxBulkDays {
		return nil, api.Validation(fmt.Sprintf("Date range cannot exceed %d days", MaxBulkDays))
	}
	if len(req.Days) == 0 || len(req.Times) == 0 {
		return nil, api.Validation("days and times are required")
	}

	days := make(map[time.Weekday]bool, len(req.Days))
	for _, d := range req.Days {
		days[time.Weekday(d)] = true
	}

	labels := make([]string, 0, len(req.Times))
	seen := make(map[string]bool, len(req.Times))
	for _, raw := range req.Times {
		label, err := schedule.ParseClock(raw)
		if err != nil {
			return nil, api.Wrap(api.KindValidation, fmt.Sprintf("Invalid time %q", raw), err)
		}
		if !seen[label] {
			seen[label] = true
			labels = append(labels, label)
		}
	}

	reason := req.Reason
	if reason == "" {
		reason = DefaultReason
	}

	var slots []NewSlot
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if !days[d.Weekday()] {
			continue
		}
		date := d.Format(api.DateLayout)
		for _, label := range labels {
			slots = append(slots, NewSlot{Date: date, Time: label, Reason: reason})
		}
	}

	return slots, nil
}

func (s *service) Delete(ctx context.Context, id int) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, ErrBlockedSlotNotFound) {
			return api.Wrap(api.KindNotFound, "Blocked slot not found", err)
		}
		return fmt.Errorf("delete blocked slot: %w", err)
	}
	return nil
}

func (s *service) DeleteByDate(ctx context.Context, date string) (int64, error) {
	if err := api.ValidateDate(date); err != nil {
		return 0, err
	}
	n, err := s.repo.DeleteByDate(ctx, date)
	if err != nil {
		return 0, fmt.Errorf("delete blocked slots by date: %w", err)
	}
	logger.Info("blocked slots cleared", "date", date, "count", n)
	return n, nil
}

func (s *service) List(ctx context.Context) ([]BlockedSlot, error) {
	slots, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortSlots(slots)
	return slots, nil
}

// Grouped returns the blocked labels per date, each list in clock order.
func (s *service) Grouped(ctx context.Context) (map[string][]string, error) {
	slots, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]string)
	for _, slot := range slots {
		grouped[slot.Date] = append(grouped[slot.Date], slot.Time)
	}
	for _, labels := range grouped {
		schedule.SortLabels(labels)
	}
	return grouped, nil
}

func (s *service) ForDate(ctx context.Context, date string) ([]schedule.Block, error) {
	slots, err := s.repo.ListByDate(ctx, date)
	if err != nil {
		return nil, err
	}
	return Blocks(slots), nil
}

func (s *service) All(ctx context.Context) ([]schedule.Block, error) {
	slots, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return Blocks(slots), nil
}

func (s *service) Count(ctx context.Context) (int, error) {
	return s.repo.Count(ctx)
}

func sortSlots(slots []BlockedSlot) {
	sort.SliceStable(slots, func(i, j int) bool {
		if slots[i].Date != slots[j].Date {
			return slots[i].Date < slots[j].Date
		}
		mi, erri := schedule.ParseTimeLabel(slots[i].Time)
		mj, errj := schedule.ParseTimeLabel(slots[j].Time)
		if erri != nil || errj != nil {
			return erri == nil
		}
		return mi < mj
	})
}
