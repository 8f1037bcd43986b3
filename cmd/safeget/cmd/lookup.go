package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"safeget/internal/engine"
	"safeget/internal/safe"
)

func newLookupCmd(a *app) *cobra.Command {
	var (
		scopeName string
		nullable  bool
		message   string
		attribute string
	)

	cmd := &cobra.Command{
		Use:   "lookup <object> <component>",
		Short: "Look a component up the way a script would",
		Long: `Look a component up by its registered type name.

Without --nullable a missing component is an error; with it the lookup
reports "absent" and succeeds.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scope, err := engine.ParseScope(scopeName)
			if err != nil {
				return err
			}
			scene, err := a.loadScene()
			if err != nil {
				return err
			}
			obj, err := findObject(scene, args[0])
			if err != nil {
				return err
			}

			opts := []safe.Option{safe.InScope(scope)}
			if message != "" {
				opts = append(opts, safe.WithMessage(message))
			}
			if attribute != "" {
				opts = append(opts, safe.AttributedTo(attribute))
			}

			out := cmd.OutOrStdout()
			if nullable {
				opt, err := safe.FindNamed(obj, args[1], opts...)
				if err != nil {
					return err
				}
				c, ok := opt.Get()
				if !ok {
					fmt.Fprintf(out, "%s: absent\n", args[1])
					return nil
				}
				printFound(cmd, c)
				return nil
			}

			c, err := safe.GetNamed(obj, args[1], opts...)
			if err != nil {
				return err
			}
			printFound(cmd, c)
			return nil
		},
	}

	cmd.Flags().StringVar(&scopeName, "scope", "self", "search scope: self, children or parent")
	cmd.Flags().BoolVar(&nullable, "nullable", false, "report absence instead of failing")
	cmd.Flags().StringVar(&message, "message", "", "custom not-found message")
	cmd.Flags().StringVar(&attribute, "attribute", "", "report failures on behalf of this name")
	return cmd
}

func printFound(cmd *cobra.Command, c engine.Component) {
	owner := c.GetGameObject()
	fmt.Fprintf(cmd.OutOrStdout(), "%s: found on %s (uid %d)\n", engine.TypeNameOf(c), owner.Name, owner.UID)
}
