package blocked

import (
	"context"
	"errors"
	"testing"
	"time"

	"studioslot/internal/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockRepository is a mock implementation of Repository
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Create(ctx context.Context, slot NewSlot) (*BlockedSlot, error) {
	args := m.Called(ctx, slot)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*BlockedSlot), args.Error(1)
}

func (m *MockRepository) Exists(ctx context.Context, date, time string) (bool, error) {
	args := m.Called(ctx, date, time)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) BulkCreate(ctx context.Context, slots []NewSlot) (int, error) {
	args := m.Called(ctx, slots)
	return args.Int(0), args.Error(1)
}

func (m *MockRepository) Delete(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) DeleteByDate(ctx context.Context, date string) (int64, error) {
	args := m.Called(ctx, date)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRepository) List(ctx context.Context) ([]BlockedSlot, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BlockedSlot), args.Error(1)
}

func (m *MockRepository) ListByDate(ctx context.Context, date string) ([]BlockedSlot, error) {
	args := m.Called(ctx, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]BlockedSlot), args.Error(1)
}

func (m *MockRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func TestService_Create(t *testing.T) {
	tests := []struct {
		name        string
		req         CreateRequest
		setupMock   func(*MockRepository)
		expectKind  api.Kind
		expectError bool
	}{
		{
			name: "blocks with normalized label and default reason",
			req:  CreateRequest{Date: "2024-06-01", Time: "14:00"},
			setupMock: func(m *MockRepository) {
				m.On("Exists", mock.Anything, "2024-06-01", "2:00 PM").Return(false, nil)
				m.On("Create", mock.Anything, NewSlot{Date: "2024-06-01", Time: "2:00 PM", Reason: DefaultReason}).
					Return(&BlockedSlot{ID: 1, Date: "2024-06-01", Time: "2:00 PM", Reason: DefaultReason}, nil)
			},
		},
		{
			name: "duplicate slot",
			req:  CreateRequest{Date: "2024-06-01", Time: "2:00 PM"},
			setupMock: func(m *MockRepository) {
				m.On("Exists", mock.Anything, "2024-06-01", "2:00 PM").Return(true, nil)
			},
			expectError: true,
			expectKind:  api.KindConflict,
		},
		{
			name: "duplicate detected by constraint",
			req:  CreateRequest{Date: "2024-06-01", Time: "2:00 PM", Reason: "x"},
			setupMock: func(m *MockRepository) {
				m.On("Exists", mock.Anything, "2024-06-01", "2:00 PM").Return(false, nil)
				m.On("Create", mock.Anything, mock.Anything).Return(nil, ErrSlotAlreadyBlocked)
			},
			expectError: true,
			expectKind:  api.KindConflict,
		},
		{
			name:        "bad date",
			req:         CreateRequest{Date: "June 1", Time: "2:00 PM"},
			setupMock:   func(m *MockRepository) {},
			expectError: true,
			expectKind:  api.KindValidation,
		},
		{
			name:        "bad time",
			req:         CreateRequest{Date: "2024-06-01", Time: "25:00"},
			setupMock:   func(m *MockRepository) {},
			expectError: true,
			expectKind:  api.KindValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockRepository)
			tt.setupMock(mockRepo)

			svc := NewService(mockRepo)
			slot, err := svc.Create(context.Background(), tt.req)

			if tt.expectError {
				require.Error(t, err)
				assert.True(t, api.IsKind(err, tt.expectKind))
				assert.Nil(t, slot)
			} else {
				require.NoError(t, err)
				assert.Equal(t, "2:00 PM", slot.Time)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestExpandBulk(t *testing.T) {
	// 2024-06-01 is a Saturday
	slots, err := ExpandBulk(BulkBlockRequest{
		StartDate: "2024-06-01",
		EndDate:   "2024-06-09",
		Days:      []Weekday{Weekday(time.Saturday), Weekday(time.Sunday)},
		Times:     []string{"22:00", "10:00 PM", "11:00 PM"},
	})
	require.NoError(t, err)

	assert.Equal(t, []NewSlot{
		{Date: "2024-06-01", Time: "10:00 PM", Reason: DefaultReason},
		{Date: "2024-06-01", Time: "11:00 PM", Reason: DefaultReason},
		{Date: "2024-06-02", Time: "10:00 PM", Reason: DefaultReason},
		{Date: "2024-06-02", Time: "11:00 PM", Reason: DefaultReason},
		{Date: "2024-06-08", Time: "10:00 PM", Reason: DefaultReason},
		{Date: "2024-06-08", Time: "11:00 PM", Reason: DefaultReason},
		{Date: "2024-06-09", Time: "10:00 PM", Reason: DefaultReason},
		{Date: "2024-06-09", Time: "11:00 PM", Reason: DefaultReason},
	}, slots)
}

func TestExpandBulk_CrossesMonthEnd(t *testing.T) {
	slots, err := ExpandBulk(BulkBlockRequest{
		StartDate: "2024-01-30",
		EndDate:   "2024-02-02",
		Days:      []Weekday{0, 1, 2, 3, 4, 5, 6},
		Times:     []string{"9:00 AM"},
		Reason:    "Holiday",
	})
	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, "2024-01-31", slots[1].Date)
	assert.Equal(t, "2024-02-01", slots[2].Date)
	assert.Equal(t, "Holiday", slots[0].Reason)
}

func TestExpandBulk_Invalid(t *testing.T) {
	base := BulkBlockRequest{StartDate: "2024-06-01", EndDate: "2024-06-09", Days: []Weekday{1}, Times: []string{"9:00 AM"}}

	reversed := base
	reversed.StartDate, reversed.EndDate = base.EndDate, base.StartDate

	tooLong := base
	tooLong.EndDate = "2025-06-09"

	badTime := base
	badTime.Times = []string{"9am"}

	noDays := base
	noDays.Days = nil

	for name, req := range map[string]BulkBlockRequest{
		"reversed": reversed,
		"too long": tooLong,
		"bad time": badTime,
		"no days":  noDays,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ExpandBulk(req)
			assert.True(t, api.IsKind(err, api.KindValidation), "got %v", err)
		})
	}
}

func TestService_BulkBlock(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("BulkCreate", mock.Anything, mock.MatchedBy(func(slots []NewSlot) bool {
		return len(slots) == 2
	})).Return(1, nil)

	svc := NewService(mockRepo)
	n, err := svc.BulkBlock(context.Background(), BulkBlockRequest{
		StartDate: "2024-06-03",
		EndDate:   "2024-06-04",
		Days:      []Weekday{1, 2},
		Times:     []string{"9:00 AM"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	mockRepo.AssertExpectations(t)
}

func TestService_BulkBlock_NoMatchingDays(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo)

	n, err := svc.BulkBlock(context.Background(), BulkBlockRequest{
		StartDate: "2024-06-03",
		EndDate:   "2024-06-03",
		Days:      []Weekday{0},
		Times:     []string{"9:00 AM"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, n)
	mockRepo.AssertNotCalled(t, "BulkCreate", mock.Anything, mock.Anything)
}

func TestService_Delete(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("Delete", mock.Anything, 1).Return(nil)
	mockRepo.On("Delete", mock.Anything, 2).Return(ErrBlockedSlotNotFound)
	mockRepo.On("Delete", mock.Anything, 3).Return(errors.New("boom"))

	svc := NewService(mockRepo)
	assert.NoError(t, svc.Delete(context.Background(), 1))
	assert.True(t, api.IsKind(svc.Delete(context.Background(), 2), api.KindNotFound))

	err := svc.Delete(context.Background(), 3)
	assert.Error(t, err)
	assert.False(t, api.IsKind(err, api.KindNotFound))
}

func TestService_Grouped(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("List", mock.Anything).Return([]BlockedSlot{
		{ID: 1, Date: "2024-06-01", Time: "3:00 PM"},
		{ID: 2, Date: "2024-06-01", Time: "10:00 AM"},
		{ID: 3, Date: "2024-06-02", Time: "12:00 AM"},
	}, nil)

	svc := NewService(mockRepo)
	grouped, err := svc.Grouped(context.Background())
	require.NoError(t, err)

	assert.Equal(t, map[string][]string{
		"2024-06-01": {"10:00 AM", "3:00 PM"},
		"2024-06-02": {"12:00 AM"},
	}, grouped)
}

func TestService_ListSortsByClock(t *testing.T) {
	mockRepo := new(MockRepository)
	mockRepo.On("List", mock.Anything).Return([]BlockedSlot{
		{ID: 1, Date: "2024-06-02", Time: "9:00 AM"},
		{ID: 2, Date: "2024-06-01", Time: "11:00 PM"},
		{ID: 3, Date: "2024-06-01", Time: "2:00 PM"},
	}, nil)

	svc := NewService(mockRepo)
	slots, err := svc.List(context.Background())
	require.NoError(t, err)

	ids := []int{slots[0].ID, slots[1].ID, slots[2].ID}
	assert.Equal(t, []int{3, 2, 1}, ids)
}

func TestService_DeleteByDate_InvalidDate(t *testing.T) {
	svc := NewService(new(MockRepository))
	_, err := svc.DeleteByDate(context.Background(), "tomorrow")
	assert.True(t, api.IsKind(err, api.KindValidation))
}
