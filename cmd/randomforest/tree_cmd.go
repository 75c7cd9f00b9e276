package main

import (
	"github.com/spf13/cobra"

	"github.com/Motwg/RandomForest/dataio"
	"github.com/Motwg/RandomForest/pipeline"
	"github.com/Motwg/RandomForest/pkg/errors"
	"github.com/Motwg/RandomForest/render"
)

type treeCmdConfig struct {
	root   *rootCmdConfig
	forest forestFlags

	user  int
	index int
	png   string
}

func treeCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &treeCmdConfig{root: rootConfig}
	cmd := &cobra.Command{
		Use:   "tree",
		Short: "Fit the forest of one user and print one of its trees",
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.run(cmd)
		},
	}
	cmd.Flags().IntVarP(&(config.user), "user", "u", 0, "user whose training ratings are used")
	cmd.Flags().IntVar(&(config.index), "index", 0, "index of the tree to print")
	cmd.Flags().StringVar(&(config.png), "png", "", "also render the tree to this PNG")
	cmd.MarkFlagRequired("user")
	config.forest.register(cmd)
	return cmd
}

func (tc *treeCmdConfig) run(cmd *cobra.Command) error {
	cfg, closeLog, err := tc.root.load()
	if err != nil {
		return fail(err)
	}
	defer closeLog()
	if err := tc.forest.apply(cmd, cfg); err != nil {
		return fail(err)
	}

	ds, err := dataio.Load(cfg.Files())
	if err != nil {
		return fail(err)
	}
	forest, err := pipeline.NewRunner(cfg.ForestOptions()...).FitUser(ds, tc.user)
	if err != nil {
		return fail(err)
	}
	trees := forest.Trees()
	if tc.index < 0 || tc.index >= len(trees) {
		return fail(errors.NewValidationError("index", "must address a tree of the forest", tc.index))
	}
	root := trees[tc.index]

	if err := render.WriteText(cmd.OutOrStdout(), root); err != nil {
		return fail(err)
	}
	if tc.png != "" {
		return render.TreePNG(tc.png, root)
	}
	return nil
}
