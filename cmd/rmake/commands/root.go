// Package commands implements the rmake CLI surface: one root command
// accepting an optional -j worker count and an optional target name.
package commands

import (
	"runtime"

	"github.com/spf13/cobra"
	"go.trai.ch/rmake/internal/adapters/logger"
	"go.trai.ch/rmake/internal/adapters/pool"
	"go.trai.ch/rmake/internal/adapters/rulefile"
	"go.trai.ch/rmake/internal/app"
	"go.trai.ch/rmake/internal/core/ports"
	"go.trai.ch/rmake/internal/engine/scheduler"
)

// defaultWorkerCount is the pool size used when -j is not given at all.
const defaultWorkerCount = 2

// defaultRuleFile is the conventional name of the rule file in the current
// working directory.
const defaultRuleFile = "Rulefile"

// CLI holds the root command and the flags that feed it.
type CLI struct {
	root *cobra.Command
	jobs jobsFlag
	log  ports.Logger
}

// New builds the root command.
func New() *CLI {
	c := &CLI{log: logger.New()}

	c.root = &cobra.Command{
		Use:           "rmake [TARGET]",
		Short:         "A parallel, incremental build orchestrator",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          c.runBuild,
	}

	flags := c.root.Flags()
	flags.VarP(&c.jobs, "jobs", "j", "worker count (0 or omitted value = hardware concurrency)")
	flags.Lookup("jobs").NoOptDefVal = "0"

	c.root.AddCommand(newVersionCommand())

	return c
}

// Execute runs the CLI and returns the process exit code.
func (c *CLI) Execute(args []string) int {
	c.root.SetArgs(normalizeJobsArgs(args))
	if err := c.root.Execute(); err != nil {
		c.log.Error(err)
		return 1
	}
	return 0
}

func (c *CLI) runBuild(_ *cobra.Command, args []string) error {
	var target string
	if len(args) > 0 {
		target = args[0]
	}

	workerCount := c.resolveWorkerCount()

	loader := rulefile.NewLoader(c.log)
	sched := scheduler.New(c.log)
	a := app.New(loader, sched, c.log)

	p := pool.New(workerCount)
	return a.Run(defaultRuleFile, target, p)
}

func (c *CLI) resolveWorkerCount() int {
	if !c.jobs.set {
		return defaultWorkerCount
	}
	if c.jobs.value == 0 {
		return runtime.NumCPU()
	}
	return c.jobs.value
}
