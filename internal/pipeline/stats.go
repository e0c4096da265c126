package pipeline

// RunStats tracks aggregate counters across a run.
type RunStats struct {
	TiersProcessed int
	TiersSkipped   int // folder absent
	Renamed        int
	InPlace        int // already carried their final name
}

// Files returns the number of PNG files seen across all processed tiers.
func (s *RunStats) Files() int {
	return s.Renamed + s.InPlace
}
