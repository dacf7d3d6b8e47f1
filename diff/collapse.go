package diff

// collapse drops context records that are further than window record
// positions away from the nearest change. Non-context records are always
// retained and retained records are never modified or renumbered, so
// absolute line positions stay recoverable on both sides. A record list
// without any change collapses to nothing.
func collapse(records []Record, window int) []Record {
	if len(records) == 0 {
		return records
	}

	// Distance from every record to the nearest non-context record, measured
	// in record positions. One forward and one backward sweep.
	const far = int(^uint(0) >> 1)
	dist := make([]int, len(records))
	last := -1
	for i, r := range records {
		if r.Kind != Context {
			last = i
		}
		if last < 0 {
			dist[i] = far
		} else {
			dist[i] = i - last
		}
	}
	last = -1
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Kind != Context {
			last = i
		}
		if last >= 0 && last-i < dist[i] {
			dist[i] = last - i
		}
	}

	var ret []Record
	for i, r := range records {
		if r.Kind == Context && dist[i] > window {
			continue
		}
		ret = append(ret, r)
	}
	return ret
}
