package cmd

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"safeget/internal/engine"
)

func newTreeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Show the scene hierarchy and attached components",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scene, err := a.loadScene()
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.Header("Object", "UID", "Active", "Position", "Components")
			for _, root := range scene.Roots() {
				appendRows(table, root, 0)
			}
			return table.Render()
		},
	}
}

func appendRows(table *tablewriter.Table, g *engine.GameObject, depth int) {
	names := make([]string, 0, len(g.Components()))
	for _, c := range g.Components() {
		names = append(names, engine.TypeNameOf(c))
	}
	pos := g.WorldPosition()
	table.Append([]string{
		strings.Repeat("  ", depth) + g.Name,
		fmt.Sprintf("%d", g.UID),
		fmt.Sprintf("%t", g.Active),
		fmt.Sprintf("%.2f, %.2f, %.2f", pos.X, pos.Y, pos.Z),
		strings.Join(names, ", "),
	})
	for _, child := range g.Children {
		appendRows(table, child, depth+1)
	}
}
