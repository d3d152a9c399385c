package blocked

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"studioslot/internal/schedule"
)

const DefaultReason = "Blocked by admin"

type BlockedSlot struct {
	ID        int       `db:"id" json:"id"`
	Date      string    `db:"date" json:"date" example:"2024-06-01"`
	Time      string    `db:"time" json:"time" example:"2:00 PM"`
	Reason    string    `db:"reason" json:"reason" example:"Maintenance"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

func (b BlockedSlot) Block() schedule.Block {
	return schedule.Block{Date: b.Date, Time: b.Time}
}

func Blocks(slots []BlockedSlot) []schedule.Block {
	out := make([]schedule.Block, 0, len(slots))
	for _, s := range slots {
		out = append(out, s.Block())
	}
	return out
}

// NewSlot is a row about to be inserted.
type NewSlot struct {
	Date   string
	Time   string
	Reason string
}

type CreateRequest struct {
	Date   string `json:"date" binding:"required,isodate" example:"2024-06-01"`
	Time   string `json:"time" binding:"required,clock" example:"2:00 PM"`
	Reason string `json:"reason" binding:"max=100" example:"Maintenance"`
}

type CreateResponse struct {
	Message     string       `json:"message" example:"Time slot blocked successfully"`
	BlockedSlot *BlockedSlot `json:"blocked_slot"`
}

// Weekday decodes from a day number (0=Sunday) or an English day name.
type Weekday time.Weekday

func (w *Weekday) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		if n < 0 || n > 6 {
			return fmt.Errorf("weekday %d out of range 0-6", n)
		}
		*w = Weekday(n)
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("weekday must be a number or a name")
	}
	d, err := ParseWeekday(s)
	if err != nil {
		return err
	}
	*w = d
	return nil
}

func ParseWeekday(s string) (Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n <= 6 {
		return Weekday(n), nil
	}
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || s == name[:3] {
			return Weekday(d), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

type BulkBlockRequest struct {
	StartDate string    `json:"start_date" binding:"required,isodate" example:"2024-06-01"`
	EndDate   string    `json:"end_date" binding:"required,isodate" example:"2024-06-30"`
	Days      []Weekday `json:"days" binding:"required,min=1" swaggertype:"array,integer" example:"0,6"`
	Times     []string  `json:"times" binding:"required,min=1,dive,clock" example:"10:00 PM,22:00"`
	Reason    string    `json:"reason" binding:"max=100" example:"Weekend maintenance"`
}

type BulkBlockResponse struct {
	Message      string `json:"message" example:"Successfully blocked 8 time slots"`
	BlockedCount int    `json:"blocked_count" example:"8"`
}

type DeleteByDateResponse struct {
	Message      string `json:"message" example:"Blocked slots removed"`
	DeletedCount int64  `json:"deleted_count" example:"3"`
}
