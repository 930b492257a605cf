package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

func main() {
	log.SetReportTimestamp(false)
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal("blochterm", "err", err)
	}
}

func newRootCmd() *cobra.Command {
	var (
		gateName    string
		angle       float64
		sequence    string
		trajectory  bool
		savePath    string
		saveSteps   string
		interactive bool
		noColor     bool
	)

	cmd := &cobra.Command{
		Use:   "blochterm",
		Short: "Single-qubit Bloch sphere visualizer for the terminal",
		Long: `blochterm evolves a single qubit through a sequence of gates and draws
the resulting Bloch vector(s) on a terminal sphere.

Gates: ` + strings.Join(GateNames(), ", ") + `
Rotation gates take an angle in radians, e.g. RX:1.5708 or RY:pi/2.`,
		Example: `  blochterm --gate H
  blochterm --sequence "H,RY:pi/2,RZ:0.5,X" --trajectory
  blochterm --sequence "H,T,H" --interactive`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			gates, err := buildGates(cmd, sequence, gateName, angle)
			if err != nil {
				return err
			}
			if err := ValidateGates(gates); err != nil {
				return err
			}

			if interactive {
				_, err := tea.NewProgram(initialModel(gates), tea.WithAltScreen()).Run()
				return err
			}

			history, err := EvolveSteps(gates)
			if err != nil {
				return err
			}
			vectors, err := BlochTrajectory(history)
			if err != nil {
				return err
			}

			// Final-state mode shows only the last vector; trajectory mode
			// overlays every intermediate state like the reference plots.
			shown := vectors[len(vectors)-1:]
			if trajectory {
				shown = vectors
			}

			table, err := RenderStates(gates, history)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), RenderSphere(shown, len(shown)-1, !noColor))
			fmt.Fprint(cmd.OutOrStdout(), table)

			if savePath != "" {
				out := RenderSphere(shown, len(shown)-1, false) + "\n" + table
				if err := os.WriteFile(savePath, []byte(out), 0644); err != nil {
					return err
				}
				log.Info("saved render", "path", savePath)
			}
			if saveSteps != "" {
				if err := writeStepFrames(saveSteps, vectors); err != nil {
					return err
				}
				log.Info("saved per-step renders", "dir", saveSteps, "steps", len(vectors))
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&gateName, "gate", "", "single gate to apply (one of "+strings.Join(GateNames(), ", ")+")")
	f.Float64Var(&angle, "angle", 0, "angle in radians for rotation gates RX/RY/RZ")
	f.StringVar(&sequence, "sequence", "", `comma-separated gate list, e.g. "H,RY:1.57,RZ:0.5,X"`)
	f.BoolVar(&trajectory, "trajectory", false, "overlay all intermediate states on the sphere")
	f.StringVar(&savePath, "save", "", "write the (plain) render to this file")
	f.StringVar(&saveSteps, "save-steps", "", "directory for per-step renders (step_NN.txt)")
	f.BoolVarP(&interactive, "interactive", "i", false, "open the interactive viewer")
	f.BoolVar(&noColor, "no-color", false, "disable ANSI colors in terminal output")

	cmd.MarkFlagsMutuallyExclusive("gate", "sequence")

	return cmd
}

// buildGates resolves the two input modes: a full sequence, or a single
// gate with an optional --angle. Neither given means "hold the initial
// state". The angle only counts when the flag was set, so rotation gates
// without one still fail validation.
func buildGates(cmd *cobra.Command, sequence, gateName string, angle float64) ([]Gate, error) {
	if sequence != "" {
		return ParseSequence(sequence)
	}
	if gateName == "" {
		return nil, nil
	}
	g := Gate{Type: CanonicalGateName(gateName)}
	if cmd.Flags().Changed("angle") {
		g.Params = []float64{angle}
	}
	return []Gate{g}, nil
}

// writeStepFrames writes one plain render per history entry, trajectory up
// to and including that step.
func writeStepFrames(dir string, vectors []BlochVector) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	for i := range vectors {
		frame := RenderSphere(vectors[:i+1], i, false)
		path := filepath.Join(dir, fmt.Sprintf("step_%02d.txt", i))
		if err := os.WriteFile(path, []byte(frame+"\n"), 0644); err != nil {
			return err
		}
	}
	return nil
}
