package matching

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var matchingDuration = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "matching_run_duration_s",
	Help: "Duration of the last matching run",
}, []string{"mode"})

var droppedCandidates = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "matching_dropped_candidates",
	Help: "Candidates that could not be placed in any round during the last matching run",
}, []string{"mode"})
