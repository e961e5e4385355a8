package commands

import (
	"github.com/spf13/cobra"

	"github.com/odvcencio/furry-store/inspect"
	"github.com/odvcencio/furry-store/internal/config"
	"github.com/odvcencio/furry-store/store"
)

func inspectCmd(cfg *config.Config) *cobra.Command {
	var (
		actions string
		format  string
		style   string
		color   bool
	)
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Run an action script against a fresh store and print the result",
		Example: `  furrystore inspect --actions "inc,inc,color=red"
  furrystore inspect --actions "dec dec" --format yaml --color`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			script, err := store.ParseActions(actions)
			if err != nil {
				return err
			}
			s := store.New()
			if err := s.DispatchAll(script); err != nil {
				return err
			}
			if !cmd.Flags().Changed("format") {
				format = cfg.InspectFormat
			}
			if !cmd.Flags().Changed("style") {
				style = cfg.InspectStyle
			}
			return inspect.Render(cmd.OutOrStdout(), inspect.NewReport(s), inspect.Options{
				Format: format,
				Style:  style,
				Color:  color,
			})
		},
	}
	cmd.Flags().StringVarP(&actions, "actions", "a", "", "comma or space separated actions (inc, dec, color=<value>)")
	cmd.Flags().StringVarP(&format, "format", "f", inspect.FormatJSON, "output format: json or yaml")
	cmd.Flags().StringVar(&style, "style", inspect.DefaultStyle, "chroma style used with --color")
	cmd.Flags().BoolVar(&color, "color", false, "highlight output for a 256-color terminal")
	return cmd
}
