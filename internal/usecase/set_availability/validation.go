package set_availability

import (
	"fmt"
)

// validateRequest проверяет корректность входных данных
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	for i, e := range req.Entries {
		if e.DayOfWeek < 0 || e.DayOfWeek > 6 {
			return fmt.Errorf("%w: entry %d: day_of_week %d out of range", ErrInvalidInput, i, e.DayOfWeek)
		}
		if err := e.TimeSlot.Validate(); err != nil {
			return fmt.Errorf("%w: entry %d: invalid time slot %q", ErrInvalidInput, i, e.TimeSlot)
		}
	}

	return nil
}

// dedupeEntries убирает дубликаты пар (день, слот), оставляя последнее вхождение
func dedupeEntries(entries []Entry) []Entry {
	type key struct {
		day  int
		slot string
	}

	last := make(map[key]int, len(entries))
	for i, e := range entries {
		last[key{day: e.DayOfWeek, slot: e.TimeSlot.String()}] = i
	}

	if len(last) == len(entries) {
		return entries
	}

	result := make([]Entry, 0, len(last))
	for i, e := range entries {
		if last[key{day: e.DayOfWeek, slot: e.TimeSlot.String()}] == i {
			result = append(result, e)
		}
	}

	return result
}
