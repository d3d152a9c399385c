package schedule

// HasConflict reports whether candidate, which must carry a usable duration,
// overlaps the expanded range of any confirmed, duration-bearing booking on the
// same date. A candidate without a usable duration never conflicts here; the
// exact start-time rules are ExactMatch and IsBlocked.
func HasConflict(candidate Occupancy, existing []Occupancy) (bool, error) {
	hours, ok := ParseDuration(candidate.Duration)
	if !ok {
		return false, nil
	}

	candidateSlots, err := ExpandOccupiedSlots(candidate.Time, hours)
	if err != nil {
		return false, err
	}
	want := toSet(candidateSlots)

	for _, e := range existing {
		if !e.Confirmed || e.Date != candidate.Date {
			continue
		}
		existingHours, ok := ParseDuration(e.Duration)
		if !ok {
			continue
		}
		existingSlots, err := ExpandOccupiedSlots(e.Time, existingHours)
		if err != nil {
			continue
		}
		for _, slot := range existingSlots {
			if _, hit := want[slot]; hit {
				return true, nil
			}
		}
	}
	return false, nil
}

// ExactMatch reports whether a confirmed booking starts at exactly date/time.
func ExactMatch(date, time string, existing []Occupancy) bool {
	for _, e := range existing {
		if e.Confirmed && e.Date == date && e.Time == time {
			return true
		}
	}
	return false
}

// IsBlocked reports whether date/time is an administrator block.
func IsBlocked(date, time string, blocks []Block) bool {
	for _, b := range blocks {
		if b.Date == date && b.Time == time {
			return true
		}
	}
	return false
}

// Overlaps is the strict check: every label the candidate would hold, single
// slot or expanded, against every label taken on its date by confirmed
// bookings and blocks.
func Overlaps(candidate Occupancy, existing []Occupancy, blocks []Block) (bool, error) {
	want, err := Occupied(candidate)
	if err != nil {
		return false, err
	}

	var sameDay []Occupancy
	for _, e := range existing {
		if e.Date == candidate.Date {
			sameDay = append(sameDay, e)
		}
	}
	var sameDayBlocks []Block
	for _, b := range blocks {
		if b.Date == candidate.Date {
			sameDayBlocks = append(sameDayBlocks, b)
		}
	}

	taken := BuildAvailability(sameDay, sameDayBlocks)
	for _, label := range want {
		if taken.Contains(candidate.Date, label) {
			return true, nil
		}
	}
	return false, nil
}

func toSet(labels []string) map[string]struct{} {
	set := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		set[l] = struct{}{}
	}
	return set
}
