package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"safeget/internal/engine"
	"safeget/internal/safe"
)

func newReleaseCmd(a *app) *cobra.Command {
	var (
		delay  float32
		frames int
		dt     float32
	)

	cmd := &cobra.Command{
		Use:   "release <object>",
		Short: "Release an object and step frames until it is torn down",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if frames < 1 {
				return fmt.Errorf("--frames must be at least 1")
			}
			if dt <= 0 {
				return fmt.Errorf("--dt must be positive")
			}
			scene, err := a.loadScene()
			if err != nil {
				return err
			}
			obj, err := findObject(scene, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			ref := obj
			safe.Release(&ref, delay)
			fmt.Fprintf(out, "released %s: handle cleared=%t, pending=%d\n", obj.Name, ref == nil, scene.PendingDestroy())

			if _, err := safe.FindNamed(ref, "BoxCollider"); err != nil {
				fmt.Fprintf(out, "lookup through released handle: %v\n", err)
			}

			for i := 1; i <= frames; i++ {
				scene.Update(dt)
				alive := engine.IsAlive(obj)
				fmt.Fprintf(out, "frame %d: alive=%t\n", i, alive)
				if !alive {
					break
				}
			}
			return nil
		},
	}

	cmd.Flags().Float32Var(&delay, "delay", 0, "seconds before the object is destroyed")
	cmd.Flags().IntVar(&frames, "frames", 5, "maximum frames to simulate")
	cmd.Flags().Float32Var(&dt, "dt", 1.0/60, "seconds per frame")
	return cmd
}
