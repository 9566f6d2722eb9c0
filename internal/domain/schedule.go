package domain

import (
	"fmt"

	"github.com/eh-co/CryoBookingService/pkg/types"
)

// GenerateScheduleTemplate materializes the ordered catalog of candidate
// time slot labels for one day. Labels run from openHour:00 in steps of
// stepMinutes; labels matching a break slot are skipped, and the last
// label is the top of the closing hour (a session must start no later
// than closing).
//
// Labels are zero-padded, so the returned slice is sorted both
// lexicographically and chronologically.
func GenerateScheduleTemplate(openHour, closeHour, stepMinutes int, breaks []types.TimeString) []types.TimeString {
	breakSet := make(map[types.TimeString]struct{}, len(breaks))
	for _, b := range breaks {
		breakSet[b] = struct{}{}
	}

	slots := make([]types.TimeString, 0, (closeHour-openHour+1)*60/stepMinutes)

	for hour := openHour; hour <= closeHour; hour++ {
		for minute := 0; minute < 60; minute += stepMinutes {
			// после closeHour:00 сессии уже не начинаются
			if hour == closeHour && minute > 0 {
				continue
			}

			label := types.TimeString(fmt.Sprintf("%02d:%02d", hour, minute))
			if _, isBreak := breakSet[label]; isBreak {
				continue
			}

			slots = append(slots, label)
		}
	}

	return slots
}

// DefaultScheduleTemplate returns the clinic's fixed daily template:
// 08:00-18:00 in 30 minute steps minus the lunch break.
func DefaultScheduleTemplate() []types.TimeString {
	return GenerateScheduleTemplate(ScheduleOpenHour, ScheduleCloseHour, ScheduleStepMinutes, ScheduleBreakSlots)
}
