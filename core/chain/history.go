package chain

import "fmt"

// State is one chain slot: the parameter pair and its log-likelihood.
type State struct {
	Mean    float64
	Stdev   float64
	LogLike float64
}

// History records every chain slot as three parallel columns with aligned
// indices (index 0 is the seed draw). Rejected moves repeat the previous
// slot, so Len() is always generations+1 after a run. The engine owns it
// while sampling; afterwards it is a read-only view.
type History struct {
	means    []float64
	stdevs   []float64
	logLikes []float64
}

func newHistory(capacity int) *History {
	return &History{
		means:    make([]float64, 0, capacity),
		stdevs:   make([]float64, 0, capacity),
		logLikes: make([]float64, 0, capacity),
	}
}

// HistoryFromColumns rebuilds a History from previously exported columns
// (e.g. a parsed trace file). The columns must be non-empty and equal length.
func HistoryFromColumns(means, stdevs, logLikes []float64) (*History, error) {
	if len(means) == 0 {
		return nil, fmt.Errorf("chain: empty history columns")
	}
	if len(stdevs) != len(means) || len(logLikes) != len(means) {
		return nil, fmt.Errorf("chain: misaligned history columns (%d/%d/%d)",
			len(means), len(stdevs), len(logLikes))
	}
	h := newHistory(len(means))
	for i := range means {
		h.append(State{Mean: means[i], Stdev: stdevs[i], LogLike: logLikes[i]})
	}
	return h, nil
}

func (h *History) append(s State) {
	h.means = append(h.means, s.Mean)
	h.stdevs = append(h.stdevs, s.Stdev)
	h.logLikes = append(h.logLikes, s.LogLike)
}

// Len returns the number of recorded slots (seed included).
func (h *History) Len() int { return len(h.means) }

// At returns slot i.
func (h *History) At(i int) State {
	return State{Mean: h.means[i], Stdev: h.stdevs[i], LogLike: h.logLikes[i]}
}

// Last returns the most recently recorded slot.
func (h *History) Last() State { return h.At(h.Len() - 1) }

// Means returns a copy of the mean column.
func (h *History) Means() []float64 { return append([]float64(nil), h.means...) }

// Stdevs returns a copy of the stdev column.
func (h *History) Stdevs() []float64 { return append([]float64(nil), h.stdevs...) }

// LogLikes returns a copy of the log-likelihood column.
func (h *History) LogLikes() []float64 { return append([]float64(nil), h.logLikes...) }
