package dialect

import "haags/internal/source"

// Classification is the result of scoring evidence for a text.
type Classification struct {
	Kind            Kind
	Score           int
	TotalScore      int
	Confidence      float64
	RunnerUp        Kind
	RunnerUpScore   int
	ObservedSignals int
	First           source.Span // первая улика победившего варианта
}

// Classifier scores evidence and chooses the dominant variety.
// Callers apply their own thresholds.
type Classifier struct{}

func (Classifier) Classify(e *Evidence) Classification {
	if e == nil || len(e.hints) == 0 {
		return Classification{Kind: Unknown, First: source.NoSpan}
	}

	var (
		scores [kindCount]int
		first  [kindCount]source.Span
		seen   [kindCount]bool
	)
	total := 0
	observed := 0
	for _, h := range e.hints {
		observed++
		if h.Score <= 0 {
			continue
		}
		if h.Dialect <= Unknown || h.Dialect >= kindCount {
			continue
		}
		if !seen[h.Dialect] {
			seen[h.Dialect] = true
			first[h.Dialect] = h.Span
		}
		scores[h.Dialect] += h.Score
		total += h.Score
	}

	bestKind := Unknown
	bestScore := 0
	runnerKind := Unknown
	runnerScore := 0
	for k := Dutch; k < kindCount; k++ {
		score := scores[k]
		if score > bestScore {
			runnerKind, runnerScore = bestKind, bestScore
			bestKind, bestScore = k, score
			continue
		}
		if score > runnerScore {
			runnerKind, runnerScore = k, score
		}
	}

	conf := 0.0
	if total > 0 {
		conf = float64(bestScore) / float64(total)
	}
	firstSpan := source.NoSpan
	if bestKind != Unknown {
		firstSpan = first[bestKind]
	}

	return Classification{
		Kind:            bestKind,
		Score:           bestScore,
		TotalScore:      total,
		Confidence:      conf,
		RunnerUp:        runnerKind,
		RunnerUpScore:   runnerScore,
		ObservedSignals: observed,
		First:           firstSpan,
	}
}

// Is reports whether c names kind with at least minScore points and the given
// share of the total score.
func (c Classification) Is(kind Kind, minScore int, minConfidence float64) bool {
	return c.Kind == kind && c.Score >= minScore && c.Confidence >= minConfidence
}
