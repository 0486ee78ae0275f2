/* YaNFD - Yet another NDN Forwarding Daemon
 *
 * Copyright (C) 2020-2021 Eric Newberry.
 *
 * This file is licensed under the terms of the MIT License, as found in LICENSE.md.
 */

package selection

import (
	"math/rand"
	"sync"
	"time"

	"github.com/named-data/YaCSim/core"
	"github.com/named-data/YaCSim/utils/comparison"
)

// pruneRatio is the fraction of the best ensemble score below which candidates are pruned.
const pruneRatio = 0.30

// Selection is the outcome of the manual selection procedure for one request.
type Selection struct {
	Content     string
	Path        []string
	Metrics     []RouterMetrics
	AverageCmba float64
	Selected    RouterMetrics
}

// Recommendation is the outcome of the ensemble selection procedure for one request.
type Recommendation struct {
	Content     string
	Path        []string
	Metrics     []RouterMetrics // Candidates surviving pruning
	Recommended RouterMetrics
}

// Selector runs both router selection procedures and keeps the current task migration leader.
// Leader accesses are synchronized; evaluating routers is not.
type Selector struct {
	rng *rand.Rand

	lock      sync.RWMutex
	leader    string
	hasLeader bool
}

// NewSelector creates a selector drawing latency estimates from the specified source. A nil source is replaced by a time-seeded one.
func NewSelector(rng *rand.Rand) *Selector {
	s := new(Selector)
	s.rng = rng
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return s
}

func (s *Selector) String() string {
	return "Selector"
}

func (s *Selector) evaluatePath(routers []Router, network NetworkMetrics, path []string) []RouterMetrics {
	metrics := make([]RouterMetrics, 0, len(path))
	for _, name := range path {
		router := findRouter(routers, name)
		if router == nil {
			continue
		}
		metrics = append(metrics, Evaluate(router, network, s.rng))
	}
	return metrics
}

// ManualRouterSelection traces the path of the specified content and selects the router with the best manual score.
// Ties go to the router closest to the start of the path.
func (s *Selector) ManualRouterSelection(routers []Router, network NetworkMetrics, content string) (*Selection, error) {
	path := TracePath(routers, content)
	metrics := s.evaluatePath(routers, network, path)
	if len(metrics) == 0 {
		core.LogDebug(s, "Manual selection for ", content, " has no router to evaluate")
		return nil, core.ErrEmptySelection
	}

	sumCmba := 0.0
	for i := range metrics {
		metrics[i].ManualScore = ManualScore(metrics[i])
		sumCmba += metrics[i].Cmba
		core.LogTrace(s, "Manual: ", metrics[i].Router, " CO=", metrics[i].CacheOccupancy, " cmBA=", metrics[i].Cmba,
			" latency=", metrics[i].Latency, " CHR=", metrics[i].CacheHitRatio, " score=", metrics[i].ManualScore)
	}
	best := comparison.ArgMax(len(metrics), func(i int) float64 { return metrics[i].ManualScore })

	selection := &Selection{
		Content:     content,
		Path:        path,
		Metrics:     metrics,
		AverageCmba: sumCmba / float64(len(metrics)),
		Selected:    metrics[best],
	}
	core.LogDebug(s, "Manual selection for ", content, ": ", selection.Selected.Router)
	return selection, nil
}

// Prune removes the candidates whose ensemble score is below 30% of the best one.
func Prune(candidates []RouterMetrics) []RouterMetrics {
	if len(candidates) == 0 {
		return []RouterMetrics{}
	}
	maxScore := candidates[0].EnsembleScore
	for _, candidate := range candidates[1:] {
		maxScore = comparison.Max(maxScore, candidate.EnsembleScore)
	}

	threshold := maxScore * pruneRatio
	survivors := make([]RouterMetrics, 0, len(candidates))
	for _, candidate := range candidates {
		if candidate.EnsembleScore >= threshold {
			survivors = append(survivors, candidate)
		}
	}
	return survivors
}

// AIRecommenderProcess traces the path of the specified content, scores every router with the ensemble of three
// scores, prunes weak candidates and recommends the best survivor, which becomes the task migration leader.
func (s *Selector) AIRecommenderProcess(routers []Router, network NetworkMetrics, content string) (*Recommendation, error) {
	path := TracePath(routers, content)
	metrics := s.evaluatePath(routers, network, path)
	for i := range metrics {
		metrics[i].EnsembleScore = EnsembleScore(metrics[i])
	}

	survivors := Prune(metrics)
	if len(survivors) == 0 {
		core.LogDebug(s, "Ensemble selection for ", content, " has no router left after pruning")
		return nil, core.ErrEmptySelection
	}
	best := comparison.ArgMax(len(survivors), func(i int) float64 { return survivors[i].EnsembleScore })

	recommendation := &Recommendation{
		Content:     content,
		Path:        path,
		Metrics:     survivors,
		Recommended: survivors[best],
	}
	s.lock.Lock()
	s.leader = recommendation.Recommended.Router
	s.hasLeader = true
	s.lock.Unlock()

	core.LogDebug(s, "Ensemble recommendation for ", content, ": ", recommendation.Recommended.Router,
		" (score ", recommendation.Recommended.EnsembleScore, ", ", len(metrics)-len(survivors), " pruned)")
	return recommendation, nil
}

// TaskMigrationLeader returns the router recommended by the latest successful ensemble selection.
func (s *Selector) TaskMigrationLeader() (string, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.leader, s.hasLeader
}
