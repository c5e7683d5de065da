package dictionary

// Stats describes how well a built table is spread.
type Stats struct {
	Capacity   uint64  `yaml:"capacity"`
	Entries    int     `yaml:"entries"`
	LoadFactor float64 `yaml:"load_factor"`
	MaxProbes  int     `yaml:"max_probes"`
	MeanProbes float64 `yaml:"mean_probes"`
	// ProbeHistogram maps a probe count to the number of entries found after exactly that many probes.
	ProbeHistogram map[int]int `yaml:"probe_histogram"`
}

// Stats re-probes every stored key and aggregates the probe lengths.
func (d *Dictionary) Stats() (Stats, error) {
	stats := Stats{
		Capacity:       d.capacity,
		Entries:        d.size,
		ProbeHistogram: make(map[int]int),
	}
	if d.capacity > 0 {
		stats.LoadFactor = float64(d.size) / float64(d.capacity)
	}

	total := 0
	for _, entry := range d.slots {
		if entry == nil {
			continue
		}
		probes, _, err := d.probe(entry.Word)
		if err != nil {
			return Stats{}, err
		}
		stats.ProbeHistogram[probes]++
		total += probes
		if probes > stats.MaxProbes {
			stats.MaxProbes = probes
		}
	}
	if d.size > 0 {
		stats.MeanProbes = float64(total) / float64(d.size)
	}
	return stats, nil
}
