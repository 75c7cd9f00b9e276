package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Motwg/RandomForest/config"
	"github.com/Motwg/RandomForest/dataio"
	"github.com/Motwg/RandomForest/pipeline"
	"github.com/Motwg/RandomForest/pkg/errors"
	"github.com/Motwg/RandomForest/pkg/log"
	"github.com/Motwg/RandomForest/render"
)

type runCmdConfig struct {
	root   *rootCmdConfig
	forest forestFlags

	movies   string
	train    string
	task     string
	output   string
	charset  string
	treePNG  string
	statsPNG string
}

func runCmd(rootConfig *rootCmdConfig) *cobra.Command {
	config := &runCmdConfig{root: rootConfig}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Predict the ratings of every task",
		Long:  `Fit one forest per user from the training ratings, predict every task rating and write the submission with the accumulated validation statistics.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.run(cmd)
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&(config.movies), "movies", "", "movie metadata table (overrides data.movies)")
	fs.StringVar(&(config.train), "train", "", "training ratings table (overrides data.train)")
	fs.StringVar(&(config.task), "task", "", "task table (overrides data.task)")
	fs.StringVarP(&(config.output), "output", "o", "", "submission path; .db, .sqlite and .sqlite3 write a SQLite database (overrides data.output)")
	fs.StringVar(&(config.charset), "charset", "", "encoding of the input tables (overrides data.charset)")
	fs.StringVar(&(config.treePNG), "tree-png", "", "render the first tree of the last forest to this PNG")
	fs.StringVar(&(config.statsPNG), "stats-png", "", "render the validation histogram to this PNG")
	config.forest.register(cmd)
	return cmd
}

func (rc *runCmdConfig) apply(cmd *cobra.Command, cfg *config.Config) error {
	for _, o := range []struct {
		value string
		dst   *string
	}{
		{rc.movies, &cfg.Data.Movies},
		{rc.train, &cfg.Data.Train},
		{rc.task, &cfg.Data.Task},
		{rc.output, &cfg.Data.Output},
		{rc.charset, &cfg.Data.Charset},
		{rc.treePNG, &cfg.Render.TreePNG},
		{rc.statsPNG, &cfg.Render.StatsPNG},
	} {
		if o.value != "" {
			*o.dst = o.value
		}
	}
	return rc.forest.apply(cmd, cfg)
}

func (rc *runCmdConfig) run(cmd *cobra.Command) error {
	cfg, closeLog, err := rc.root.load()
	if err != nil {
		return fail(err)
	}
	defer closeLog()
	if err := rc.apply(cmd, cfg); err != nil {
		return fail(err)
	}
	logger := log.GetLoggerWithName("cli")

	ds, err := dataio.Load(cfg.Files())
	if err != nil {
		return fail(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := pipeline.NewRunner(cfg.ForestOptions()...).Run(ctx, ds)
	if err != nil {
		return fail(err)
	}

	sink, err := dataio.OpenSink(cfg.Data.Output)
	if err != nil {
		return fail(err)
	}
	if err := pipeline.Write(ctx, sink, res); err != nil {
		sink.Close()
		return fail(err)
	}
	if err := sink.Close(); err != nil {
		return fail(errors.Wrapf(err, "closing %s", cfg.Data.Output))
	}
	logger.Info("submission written",
		log.PathKey, cfg.Data.Output,
		log.PredsKey, len(res.Predictions),
	)

	fmt.Fprintln(cmd.OutOrStdout(), res.Stats.String())

	if cfg.Render.StatsPNG != "" {
		if err := render.StatsPNG(cfg.Render.StatsPNG, res.Stats); err != nil {
			return fail(err)
		}
	}
	if cfg.Render.TreePNG != "" && res.LastTree != nil {
		if err := render.TreePNG(cfg.Render.TreePNG, res.LastTree); err != nil {
			return fail(err)
		}
	}
	return nil
}
