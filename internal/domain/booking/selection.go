package booking

import (
	"errors"
	"sort"

	"venuebook/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrSlotUnavailable        = errors.New("slot is not available")
	ErrNonContiguousSelection = errors.New("selected slots must be contiguous")
)

// Selection is the transient set of slots a user has picked, kept sorted by
// start time. It only exists between slot display and quote computation.
type Selection struct {
	slots []schedule.Slot
}

// NewSelection resolves the candidate ids against the freshly generated slot
// list. Every id must resolve to an available slot and the resolved slots
// must chain end-to-start. An empty candidate list is the valid empty
// selection, not an error.
func NewSelection(candidateIDs []uuid.UUID, currentSlots []schedule.Slot) (Selection, error) {
	if len(candidateIDs) == 0 {
		return Selection{}, nil
	}

	byID := make(map[uuid.UUID]schedule.Slot, len(currentSlots))
	for _, s := range currentSlots {
		byID[s.ID] = s
	}

	resolved := make([]schedule.Slot, 0, len(candidateIDs))
	for _, id := range candidateIDs {
		slot, ok := byID[id]
		if !ok || !slot.IsAvailable() {
			return Selection{}, ErrSlotUnavailable
		}
		resolved = append(resolved, slot)
	}

	sort.Slice(resolved, func(i, j int) bool { return resolved[i].Start < resolved[j].Start })
	for i := 0; i+1 < len(resolved); i++ {
		if resolved[i].End != resolved[i+1].Start {
			return Selection{}, ErrNonContiguousSelection
		}
	}

	return Selection{slots: resolved}, nil
}

// Extend models "extend the booking window": the new slot is accepted only
// when it sits immediately before the first or immediately after the last
// slot of the current span.
func (s Selection) Extend(slotID uuid.UUID, currentSlots []schedule.Slot) (Selection, error) {
	if s.IsEmpty() {
		return NewSelection([]uuid.UUID{slotID}, currentSlots)
	}

	var slot *schedule.Slot
	for i := range currentSlots {
		if currentSlots[i].ID == slotID {
			slot = &currentSlots[i]
			break
		}
	}
	if slot == nil || !slot.IsAvailable() {
		return Selection{}, ErrSlotUnavailable
	}

	first, last := s.slots[0], s.slots[len(s.slots)-1]
	switch {
	case slot.End == first.Start:
		extended := append([]schedule.Slot{*slot}, s.slots...)
		return Selection{slots: extended}, nil
	case slot.Start == last.End:
		extended := append(append([]schedule.Slot{}, s.slots...), *slot)
		return Selection{slots: extended}, nil
	default:
		return Selection{}, ErrNonContiguousSelection
	}
}

func (s Selection) IsEmpty() bool {
	return len(s.slots) == 0
}

func (s Selection) Count() int {
	return len(s.slots)
}

func (s Selection) Slots() []schedule.Slot {
	out := make([]schedule.Slot, len(s.slots))
	copy(out, s.slots)
	return out
}

func (s Selection) SlotIDs() []uuid.UUID {
	ids := make([]uuid.UUID, len(s.slots))
	for i, slot := range s.slots {
		ids[i] = slot.ID
	}
	return ids
}

// Span returns the selection's overall [start, end) window.
func (s Selection) Span() (schedule.TimeOfDay, schedule.TimeOfDay, bool) {
	if s.IsEmpty() {
		return 0, 0, false
	}
	return s.slots[0].Start, s.slots[len(s.slots)-1].End, true
}
