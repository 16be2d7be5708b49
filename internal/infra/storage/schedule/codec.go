package schedule

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/m04kA/SMC-BarberBooking/internal/domain"
)

// createdAtLayout ISO-8601 с миллисекундами в UTC ("2024-06-01T08:30:00.000Z")
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// bookingRecord формат бронирования в хранилище
type bookingRecord struct {
	ID        recordID `json:"id"`
	Name      string   `json:"name"`
	WhatsApp  string   `json:"whatsapp"`
	CreatedAt string   `json:"createdAt"`
}

// payload {date: {slotLabel: [booking]}}
type payload map[string]map[string][]bookingRecord

// recordID принимает id и числом, и строкой
type recordID int64

func (id recordID) MarshalJSON() ([]byte, error) {
	return strconv.AppendInt(nil, int64(id), 10), nil
}

func (id *recordID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}

	v, err := strconv.ParseInt(string(data), 10, 64)
	if err != nil {
		// Date.now() может быть записан как число с плавающей точкой
		f, ferr := strconv.ParseFloat(string(data), 64)
		if ferr != nil {
			return fmt.Errorf("invalid booking id %s: %v", data, err)
		}
		v = int64(f)
	}
	*id = recordID(v)
	return nil
}

// Encode сериализует расписание в JSON формат хранилища
func Encode(schedule domain.Schedule) ([]byte, error) {
	out := make(payload, len(schedule))
	for date, day := range schedule {
		slots := make(map[string][]bookingRecord, len(day))
		for label, bookings := range day {
			records := make([]bookingRecord, len(bookings))
			for i, b := range bookings {
				records[i] = bookingRecord{
					ID:        recordID(b.ID),
					Name:      b.Name,
					WhatsApp:  b.Contact,
					CreatedAt: b.CreatedAt.UTC().Format(createdAtLayout),
				}
			}
			slots[label] = records
		}
		out[date] = slots
	}

	data, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode schedule: %w", err)
	}
	return data, nil
}

// Decode разбирает JSON формат хранилища
// Пустые данные и null дают пустое расписание
func Decode(data []byte) (domain.Schedule, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return domain.Schedule{}, nil
	}

	var in payload
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}

	schedule := make(domain.Schedule, len(in))
	for date, slots := range in {
		day := make(domain.DaySchedule, len(slots))
		for label, records := range slots {
			bookings := make([]domain.Booking, len(records))
			for i, r := range records {
				createdAt, err := parseCreatedAt(r.CreatedAt)
				if err != nil {
					return nil, fmt.Errorf("%w: booking id=%d in %s %s: %v", ErrCorruptPayload, r.ID, date, label, err)
				}
				bookings[i] = domain.Booking{
					ID:        int64(r.ID),
					Name:      r.Name,
					Contact:   r.WhatsApp,
					CreatedAt: createdAt,
				}
			}
			day[label] = bookings
		}
		schedule[date] = day
	}

	return schedule, nil
}

func parseCreatedAt(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC(), nil
}
