package app

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/katalvlaran/lvlath/config"
	"github.com/katalvlaran/lvlath/simplex"
)

// Run loads the problem file at path, drives a Controller over it, and
// prints the final objective value. ctx is checked only between steps
// in step-by-step mode; the file load and a one-shot SolveAll do not
// consult it, and the simplex solver itself never blocks or checks ctx,
// per its single-threaded, non-suspending contract.
func Run(ctx context.Context, path string, stepByStep bool, logger *log.Logger) error {
	pf, err := config.Load(path)
	if err != nil {
		return errors.Wrap(err, "netsimplex: loading problem")
	}

	g, err := pf.ToGraph()
	if err != nil {
		return errors.Wrap(err, "netsimplex: building graph")
	}

	controller := simplex.NewController(g)

	if !stepByStep {
		if err := controller.SolveAll(); err != nil {
			return errors.Wrap(err, "netsimplex: solving")
		}
		logFinal(logger, controller.CurrentState())
		return nil
	}

	for {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "netsimplex: cancelled")
		}

		advanced, err := controller.NextStep()
		if err != nil {
			return errors.Wrap(err, "netsimplex: pivoting")
		}
		if !advanced {
			break
		}

		state := controller.CurrentState()
		logger.WithFields(log.Fields{
			"step":      state.StepType.String(),
			"iteration": state.Iteration,
			"objective": state.ObjectiveValue,
		}).Info(state.Description)
	}

	logFinal(logger, controller.CurrentState())
	return nil
}

func logFinal(logger *log.Logger, final simplex.SolutionState) {
	logger.WithField("iterations", final.Iteration).Info("solve complete")
	fmt.Printf("objective = %g\n", final.ObjectiveValue)
}
