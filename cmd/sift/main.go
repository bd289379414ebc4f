package main

import (
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"github.com/kestrelgames/sift"
)

var (
	configFile  string
	width       int
	height      int
	rate        float64
	threatRatio float64
	seed        uint64
	showStats   bool
	outFile     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sift",
		Short: "animated transaction-screening pipeline visualizer",
		RunE:  runVisualizer,
	}
	rootCmd.Flags().StringVar(&configFile, "config", "", "yaml config file")
	rootCmd.Flags().IntVar(&width, "width", 0, "window width")
	rootCmd.Flags().IntVar(&height, "height", 0, "window height")
	rootCmd.Flags().Float64Var(&rate, "rate", 0, "transactions per second")
	rootCmd.Flags().Float64Var(&threatRatio, "threat-ratio", -1, "fraction flagged as threats")
	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "feed random seed (0 = time-derived)")
	rootCmd.Flags().BoolVar(&showStats, "stats", true, "show FPS and counter overlay")

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "write the default configuration as yaml",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := sift.SaveConfig(outFile, sift.DefaultConfig()); err != nil {
				return err
			}
			log.Printf("wrote %s", outFile)
			return nil
		},
	}
	configCmd.Flags().StringVar(&outFile, "out", "sift.yaml", "output path")
	rootCmd.AddCommand(configCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runVisualizer(cmd *cobra.Command, args []string) error {
	cfg := sift.DefaultConfig()
	if configFile != "" {
		loaded, err := sift.LoadConfig(configFile)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flag overrides on top of the config file.
	if width > 0 {
		cfg.Window.Width = width
	}
	if height > 0 {
		cfg.Window.Height = height
	}
	if rate > 0 {
		cfg.Feed.Rate = rate
	}
	if threatRatio >= 0 {
		cfg.Feed.ThreatRatio = threatRatio
	}
	if seed != 0 {
		cfg.Feed.Seed = seed
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	engine := sift.NewEngine(cfg.Engine,
		float64(cfg.Window.Width), float64(cfg.Window.Height))

	game := sift.NewGame(engine, sift.NewVectorRenderer())
	game.SetShowStats(showStats)
	game.SetDriver(newFeed(engine, cfg.Feed).step)
	game.SetClickHandler(func(v sift.TxnView) {
		log.Printf("txn %s  state=%s verdict=%s score=%.2f amount-size=%.0f",
			v.ID, v.State, v.Verdict, v.Score, v.Size)
	})

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && err != ebiten.Termination {
		return fmt.Errorf("run visualizer: %w", err)
	}
	return nil
}
