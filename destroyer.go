package fbrcache

// Destroyer is implemented by values that own a resource which must be
// released deterministically instead of left for the garbage collector —
// a file handle, a pooled buffer, a metered lease. The cache invokes
// Destroy exactly once per value: when Clear drops it, and when an
// evicted entry's storage is reused and the old occupant is overwritten.
// Eviction alone never calls it — the storage is about to be recycled,
// not the value retired, except that reuse *does* drop whatever value
// was sitting there, which is the same moment.
type Destroyer interface {
	Destroy()
}

func dropValue[V any](v V) {
	if d, ok := any(v).(Destroyer); ok {
		d.Destroy()
	}
}
