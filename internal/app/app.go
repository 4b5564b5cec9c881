// Package app wires the rule-file loader, the worker pool, and the
// scheduler into one build invocation.
package app

import (
	"go.trai.ch/rmake/internal/core/domain"
	"go.trai.ch/rmake/internal/core/ports"
	"go.trai.ch/rmake/internal/engine/scheduler"
	"go.trai.ch/zerr"
)

// DefaultTarget is substituted for the requested target name when the CLI
// receives no positional argument.
const DefaultTarget = "_default"

// App ties a GraphLoader, a Scheduler, and a WorkerPool together for a
// single build run.
type App struct {
	loader    ports.GraphLoader
	scheduler *scheduler.Scheduler
	logger    ports.Logger
}

// New creates an App.
func New(loader ports.GraphLoader, sched *scheduler.Scheduler, logger ports.Logger) *App {
	return &App{loader: loader, scheduler: sched, logger: logger}
}

// Run loads the graph for ruleFilePath, resolves targetName (falling back to
// DefaultTarget when empty), and runs the scheduler against pool.
func (a *App) Run(ruleFilePath, targetName string, pool ports.WorkerPool) error {
	graph, err := a.loader.Load(ruleFilePath)
	if err != nil {
		return zerr.Wrap(err, "load build graph")
	}

	if targetName == "" {
		targetName = DefaultTarget
		if graph.IDOf(targetName) == domain.NoNode {
			a.logger.Warn("no target given and default target " + DefaultTarget + " is not defined")
		}
	}

	if err := a.scheduler.Run(graph, targetName, pool); err != nil {
		return zerr.Wrap(err, "build failed")
	}
	return nil
}
