package earnings

// Status is the three-tier signal shown next to a score.
type Status string

const (
	StatusGood    Status = "good"
	StatusWarning Status = "warning"
	StatusPoor    Status = "poor"
	// StatusNone means nothing could be scored.
	StatusNone Status = "none"
)

const (
	goodThreshold    = 95.0
	warningThreshold = 80.0
)

// Classify maps a percentage of target onto a Status.
func Classify(percentage float64) Status {
	switch {
	case percentage >= goodThreshold:
		return StatusGood
	case percentage >= warningThreshold:
		return StatusWarning
	default:
		return StatusPoor
	}
}

type Metric string

const (
	MetricHours         Metric = "hours"
	MetricSales         Metric = "sales"
	MetricTipPercentage Metric = "tip_percentage"
)

type MetricScore struct {
	Metric     Metric  `json:"metric"`
	Actual     float64 `json:"actual"`
	Target     float64 `json:"target"`
	Percentage float64 `json:"percentage"`
	Status     Status  `json:"status"`
	// Scored is true when the metric counts toward the overall score.
	Scored bool `json:"scored"`
}

type Performance struct {
	Metrics    []MetricScore `json:"metrics"`
	Overall    float64       `json:"overall"`
	Status     Status        `json:"status"`
	HasTargets bool          `json:"has_targets"`
	HasScore   bool          `json:"has_score"`
}

// Score compares stats with targets. A metric appears when its target is set
// and counts toward Overall only when its actual value is positive too. Tip
// dollars are never scored, only tip percentage.
func Score(stats Stats, targets Targets) Performance {
	candidates := []struct {
		metric Metric
		actual float64
		target float64
	}{
		{MetricHours, stats.Hours, targets.Hours},
		{MetricSales, stats.Sales, targets.Sales},
		{MetricTipPercentage, stats.TipPercentage, targets.TipPercentage},
	}

	p := Performance{
		Metrics:    []MetricScore{},
		Status:     StatusNone,
		HasTargets: targets.Any(),
	}

	var sum float64
	var n int
	for _, c := range candidates {
		if c.target <= 0 {
			continue
		}

		pct := finite(c.actual * 100 / c.target)
		score := MetricScore{
			Metric:     c.metric,
			Actual:     c.actual,
			Target:     c.target,
			Percentage: pct,
			Status:     Classify(pct),
			Scored:     c.actual > 0,
		}
		p.Metrics = append(p.Metrics, score)

		if score.Scored {
			sum += pct
			n++
		}
	}

	if n > 0 {
		p.Overall = sum / float64(n)
		p.Status = Classify(p.Overall)
		p.HasScore = true
	}

	return p
}
