package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"floodloss/cmd"
	"floodloss/internal/app"
	"floodloss/internal/domain"
	"floodloss/internal/util"

	"github.com/spf13/cobra"
)

var configPath string

func main() {
	root := &cobra.Command{
		Use:           "floodloss",
		Short:         "Estimate flood losses of assets from depth-damage curves",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", fmt.Sprintf("path to the TOML config (defaults to $%s, then conf.toml)", util.ConfigEnvVar))

	root.AddCommand(runCmd(), curvesCmd(), resolveCmd(), serveCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	var detailed, profile bool
	c := &cobra.Command{
		Use:   "run",
		Short: "Evaluate the configured asset map and write the augmented map and statistics",
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies(configPath)
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			p, endProfile := domain.NewProfile()
			ctx = domain.NewCtxWithProfile(ctx, p)

			cfg := deps.Config
			result, err := deps.LossRunApp.Run(ctx, app.LossRunInput{
				AssetMapPath:  cfg.Input.Assets.MapPath(),
				OutputMapPath: cfg.Output.MapPath(),
				StatsPath:     cfg.Output.StatsPath(),
				DetailedStats: detailed || cfg.Output.DetailedStats,
			})
			if err != nil {
				return err
			}
			endProfile()

			util.Pprint(result.Summary.Record())
			if profile {
				b, err := p.ToJsonBytes()
				if err != nil {
					return err
				}
				fmt.Println(string(b))
			}
			return nil
		},
	}
	c.Flags().BoolVar(&detailed, "detailed", false, "write counts and loss distributions to the stats file")
	c.Flags().BoolVar(&profile, "profile", false, "print the timing profile of the run")
	return c
}

func curvesCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "curves",
		Short: "Inspect the loaded loss curves",
	}
	c.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List loaded curves with their bucket count and depth range",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies(configPath)
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			for _, name := range deps.CurveStore.Names() {
				curve, _ := deps.CurveStore.Get(name)
				minDepth, maxDepth := curve.DepthRange()
				fmt.Printf("%s\tbuckets=%d\tdepth=[%g, %g]\n", name, len(curve.Buckets), minDepth, maxDepth)
			}
			return nil
		},
	})
	c.AddCommand(&cobra.Command{
		Use:   "show NAME",
		Short: "Print every bucket of one curve",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies(configPath)
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			curve, ok := deps.CurveStore.Get(args[0])
			if !ok {
				return domain.UnknownCurveError{Curve: args[0]}
			}
			fmt.Println("bucket,depth,loss")
			for _, b := range curve.SortedBuckets() {
				fmt.Printf("%d,%g,%g\n", b, float64(b)*curve.Resolution, curve.Buckets[b])
			}
			return nil
		},
	})
	return c
}

func resolveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "resolve CURVE DEPTH",
		Short: "Look up the fractional loss of one curve at one depth",
		Args:  cobra.ExactArgs(2),
		RunE: func(c *cobra.Command, args []string) error {
			depth, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return fmt.Errorf("failed to parse depth %q: %w", args[1], err)
			}

			deps, err := cmd.InitializeDependencies(configPath)
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			loss, err := deps.Resolver.Resolve(args[0], depth)
			if errors.As(err, &domain.DepthNotFoundError{}) {
				fmt.Println("missing")
				return nil
			}
			if err != nil {
				return err
			}
			fmt.Println(strconv.FormatFloat(loss, 'g', -1, 64))
			return nil
		},
	}
}

func serveCmd() *cobra.Command {
	var port int
	c := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		RunE: func(c *cobra.Command, args []string) error {
			deps, err := cmd.InitializeDependencies(configPath)
			if err != nil {
				return err
			}
			defer cmd.CloseDependencies(deps)

			return deps.ApiHandler.StartApi(port)
		},
	}
	c.Flags().IntVar(&port, "port", 3009, "port to listen on")
	return c
}
