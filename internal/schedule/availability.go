package schedule

import "sort"

// Availability maps an ISO date to the labels that are taken on it.
type Availability map[string][]string

// BuildAvailability folds blocked slots and confirmed bookings into a per-date
// list of occupied labels. Labels are unique per date and ordered by time of
// day; labels that do not parse sort last.
func BuildAvailability(bookings []Occupancy, blocks []Block) Availability {
	taken := make(map[string]map[string]struct{})
	add := func(date, label string) {
		set, ok := taken[date]
		if !ok {
			set = make(map[string]struct{})
			taken[date] = set
		}
		set[label] = struct{}{}
	}

	for _, b := range blocks {
		add(b.Date, b.Time)
	}

	for _, o := range bookings {
		if !o.Confirmed {
			continue
		}
		labels, err := Occupied(o)
		if err != nil {
			// Unparseable stored label: still shown as taken.
			labels = []string{o.Time}
		}
		for _, label := range labels {
			add(o.Date, label)
		}
	}

	result := make(Availability, len(taken))
	for date, set := range taken {
		labels := make([]string, 0, len(set))
		for label := range set {
			labels = append(labels, label)
		}
		SortLabels(labels)
		result[date] = labels
	}
	return result
}

// Contains reports whether label is taken on date.
func (a Availability) Contains(date, label string) bool {
	for _, l := range a[date] {
		if l == label {
			return true
		}
	}
	return false
}

// SortLabels orders labels by minute of day in place.
func SortLabels(labels []string) {
	sort.SliceStable(labels, func(i, j int) bool {
		mi, erri := ParseTimeLabel(labels[i])
		mj, errj := ParseTimeLabel(labels[j])
		switch {
		case erri != nil && errj != nil:
			return labels[i] < labels[j]
		case erri != nil:
			return false
		case errj != nil:
			return true
		}
		return mi < mj
	})
}
