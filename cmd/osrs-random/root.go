package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/osrs-random/internal/config"
	"github.com/KirkDiggler/osrs-random/internal/handlers/cli"
)

// app carries the state shared by every subcommand once flags are parsed
type app struct {
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	version string

	cfg     *config.Config
	handler *cli.Handler
	cleanup func()
}

func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{
		in:      in,
		out:     out,
		errOut:  errOut,
		version: version,
	}

	rootCmd := &cobra.Command{
		Use:   "osrs-random",
		Short: "Pick a random OSRS boss or skill",
		Long: `osrs-random picks a random Old School RuneScape boss or skill to train.
Bosses are drawn by first choosing a category, then a boss within it,
so small categories are as likely as large ones. Run without a
subcommand to open the interactive menu.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
		RunE:              a.runMenu,
	}

	config.RegisterFlags(rootCmd.PersistentFlags())

	rootCmd.SetIn(in)
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)

	rootCmd.AddCommand(
		newBossCmd(a),
		newSkillCmd(a),
		newCategoriesCmd(a),
		newMenuCmd(a),
		newCheckUpdateCmd(a),
		newVersionCmd(a),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}
	a.cfg = cfg

	slog.SetDefault(slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	handler, cleanup, err := buildHandler(cfg, a.out, a.version)
	if err != nil {
		return err
	}
	a.handler = handler
	a.cleanup = cleanup

	return nil
}

func (a *app) teardown(_ *cobra.Command, _ []string) {
	if a.cleanup != nil {
		a.cleanup()
	}
}

func (a *app) runMenu(cmd *cobra.Command, _ []string) error {
	return a.handler.RunMenu(cmd.Context(), a.in)
}
