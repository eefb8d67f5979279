package main

import (
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/osrs-random/internal/orchestrators/picker"
)

func newBossCmd(a *app) *cobra.Command {
	var exclude []string

	cmd := &cobra.Command{
		Use:   "boss",
		Short: "Pick a random boss",
		Long: `Pick a random boss. Categories can be excluded by their number from
"osrs-random categories" or by name, e.g. --exclude 1,3 --exclude "World Bosses".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var tokens []string
			for _, value := range exclude {
				tokens = append(tokens, picker.SplitExclusions(value)...)
			}
			return a.handler.PickBoss(cmd.Context(), tokens)
		},
	}

	cmd.Flags().StringArrayVarP(&exclude, "exclude", "x", nil, "category numbers or names to exclude")

	return cmd
}

func newSkillCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "skill",
		Short: "Pick a random skill to train",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.handler.PickSkill(cmd.Context())
		},
	}
}

func newCategoriesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "categories",
		Aliases: []string{"list"},
		Short:   "List boss categories with their numbers",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.handler.ListCategories(cmd.Context())
		},
	}
}

func newMenuCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Open the interactive menu",
		Args:  cobra.NoArgs,
		RunE:  a.runMenu,
	}
}

func newCheckUpdateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check-update",
		Short: "Check whether a newer release is available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.handler.CheckUpdate(cmd.Context())
			return nil
		},
	}
}

func newVersionCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			a.handler.Version()
			return nil
		},
	}
}
