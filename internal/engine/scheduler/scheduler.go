// Package scheduler computes the subgraph needed to build one requested
// target, tracks readiness as dependencies complete, decides whether each
// node is already up to date, and dispatches the rest to a worker pool.
package scheduler

import (
	"os"

	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/rmake/internal/core/ports"
	"go.trai.ch/zerr"
)

// Scheduler runs one build to completion or first failure. It holds no
// state between runs: the needed set, indegrees, ready queue and running
// count are all local to Run.
type Scheduler struct {
	logger ports.Logger
}

// New returns a Scheduler that reports progress through logger.
func New(logger ports.Logger) *Scheduler {
	return &Scheduler{logger: logger}
}

// Run resolves targetName against g, computes its needed subgraph, and
// dispatches every node that is not already up to date to pool, in
// dependency order, until the target is built or a command fails.
func (s *Scheduler) Run(g *domain.Graph, targetName string, pool ports.WorkerPool) error {
	start := g.IDOf(targetName)
	if start == domain.NoNode {
		return zerr.With(zerr.Wrap(domain.ErrUnknownTarget, "resolve target"), "target", targetName)
	}

	if err := pool.Start(); err != nil {
		return zerr.Wrap(err, "start worker pool")
	}

	needed := computeNeeded(g, start)
	indegree := computeIndegree(g, needed)

	ready := make([]domain.NodeID, 0, len(needed))
	for id := range needed {
		if indegree[id] == 0 {
			ready = append(ready, id)
		}
	}
	sortByID(ready)

	running := 0

	propagate := func(id domain.NodeID) {
		for _, child := range g.ChildrenOf(id) {
			if !needed[child] {
				continue
			}
			indegree[child]--
			if indegree[child] == 0 {
				ready = append(ready, child)
			}
		}
	}

	for len(ready) > 0 || running > 0 {
		for len(ready) > 0 && pool.CanAccept() {
			u := ready[0]
			ready = ready[1:]

			execute, err := shouldExecute(g, u)
			if err != nil {
				_ = pool.Shutdown()
				return zerr.Wrap(err, "staleness check")
			}

			if execute {
				if err := pool.Submit(u, g.CommandsOf(u)); err != nil {
					_ = pool.Shutdown()
					return zerr.Wrap(err, "submit task")
				}
				running++
				s.logger.Info("dispatched " + g.NameOf(u))
			} else {
				s.logger.Info("skipped (up to date) " + g.NameOf(u))
				propagate(u)
			}
		}

		if running == 0 {
			continue
		}

		res, err := pool.WaitResult()
		if err != nil {
			_ = pool.Shutdown()
			return zerr.Wrap(err, "wait for worker result")
		}
		running--

		if res.ExitCode != 0 {
			_ = pool.Shutdown()
			return zerr.With(zerr.With(zerr.Wrap(domain.ErrCommandFailed, "run node"), "node", g.NameOf(res.NodeID)), "exit_code", res.ExitCode)
		}
		propagate(res.NodeID)
	}

	for id := range needed {
		if indegree[id] > 0 {
			_ = pool.Shutdown()
			return domain.ErrCycleDetected
		}
	}

	return pool.Shutdown()
}

// computeNeeded walks parents backward from start, marking every ancestor
// (inclusive) as needed.
func computeNeeded(g *domain.Graph, start domain.NodeID) map[domain.NodeID]bool {
	needed := map[domain.NodeID]bool{start: true}
	stack := []domain.NodeID{start}
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, p := range g.ParentsOf(u) {
			if !needed[p] {
				needed[p] = true
				stack = append(stack, p)
			}
		}
	}
	return needed
}

// computeIndegree counts, for each needed node, how many of its parents are
// also needed.
func computeIndegree(g *domain.Graph, needed map[domain.NodeID]bool) map[domain.NodeID]int {
	indegree := make(map[domain.NodeID]int, len(needed))
	for id := range needed {
		indegree[id] = 0
	}
	for u := range needed {
		for _, v := range g.ChildrenOf(u) {
			if needed[v] {
				indegree[v]++
			}
		}
	}
	return indegree
}

func sortByID(ids []domain.NodeID) {
	for i := 1; i < len(ids); i++ {
		for j := i; j > 0 && ids[j-1] > ids[j]; j-- {
			ids[j-1], ids[j] = ids[j], ids[j-1]
		}
	}
}

// shouldExecute implements the up-to-date decision: phony nodes and nodes
// whose output file is missing always execute; otherwise a node executes
// if any parent's file is newer than its own.
func shouldExecute(g *domain.Graph, u domain.NodeID) (bool, error) {
	if g.IsPhony(u) {
		return true, nil
	}

	name := g.NameOf(u)
	if _, err := os.Stat(name); err != nil {
		return true, nil
	}

	for _, p := range g.ParentsOf(u) {
		newer, err := isNewer(g.NameOf(p), name)
		if err != nil {
			return false, err
		}
		if newer {
			return true, nil
		}
	}
	return false, nil
}

// isNewer reports whether file has a strictly newer modification time than
// wrt. A missing wrt is an internal inconsistency (its existence should
// already have been confirmed by the caller) and is fatal. A missing file
// is treated as "not newer" so that a non-file or phony parent never forces
// a rebuild on its own.
func isNewer(file, wrt string) (bool, error) {
	wrtInfo, err := os.Stat(wrt)
	if err != nil {
		return false, zerr.With(zerr.Wrap(domain.ErrDependencyOutputMissing, "stat target"), "target", wrt)
	}
	fileInfo, err := os.Stat(file)
	if err != nil {
		return false, nil
	}
	return fileInfo.ModTime().After(wrtInfo.ModTime()), nil
}
