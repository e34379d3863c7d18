package driver

import (
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/qnv/ast"
	"github.com/katalvlaran/qnv/configuration"
	"github.com/katalvlaran/qnv/interp"
	"github.com/katalvlaran/qnv/topology"
)

// Run builds the initial PConfiguration for topo (spec.md §4.6: one
// DConfiguration, empty memory, zero entanglement, probability 1),
// executes prog's statements against it in order, and returns the final
// PConfiguration. log may be nil, in which case logrus.StandardLogger()
// is used.
func Run(topo *topology.Topology, prog *ast.Program, log *logrus.Logger) (*configuration.PConfiguration, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	entry := log.WithField("run_id", uuid.NewString())
	entry.WithField("nodes", topo.N).Info("qnv run starting")

	pc := configuration.NewInitial(topo.N)
	it := interp.New(topo)

	for i, s := range prog.Stmts {
		if err := it.Exec(s, pc); err != nil {
			entry.WithError(err).WithField("stmt_index", i).Error("qnv run aborted")
			return nil, err
		}
		entry.WithFields(logrus.Fields{"stmt_index": i, "dconfs": pc.Len()}).Debug("statement executed")
	}

	entry.WithField("dconfs", pc.Len()).Info("qnv run complete")
	return pc, nil
}

// PrintTopologyBanner restores the banner original_source/main.py's
// step_qnv printed before running the interpreter (SPEC_FULL.md §4):
// "======Quantum Network Topology======" followed by n, m, p, q.
func PrintTopologyBanner(w io.Writer, topo *topology.Topology) {
	fmt.Fprintln(w, "======Quantum Network Topology======")
	fmt.Fprint(w, topo.String())
	if connected, err := topo.Connected(); err == nil && !connected {
		fmt.Fprintln(w, "warning: topology link graph is disconnected")
	}
	fmt.Fprintln(w)
}
