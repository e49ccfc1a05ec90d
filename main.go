package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/status-im/market-data/config"
	"github.com/status-im/market-data/core"
)

const commandTimeout = 2 * time.Minute

var configPath string

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "market-data",
		Short:        "Cached token catalog, market and fiat rate lookups",
		SilenceUsage: true,
		RunE:         runServe,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to the YAML config file")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP API",
			Args:  cobra.NoArgs,
			RunE:  runServe,
		},
		&cobra.Command{
			Use:   "refresh",
			Short: "Refresh the catalog and fiat table if they are stale",
			Args:  cobra.NoArgs,
			RunE:  runRefresh,
		},
		&cobra.Command{
			Use:   "price <id> [currency]",
			Short: "Print the price of a catalog id",
			Args:  cobra.RangeArgs(1, 2),
			RunE:  runPrice,
		},
		&cobra.Command{
			Use:   "value <balance> <id> <fiat>",
			Short: "Print balance × price × fiat rate",
			Args:  cobra.ExactArgs(3),
			RunE:  runValue,
		},
	)
	return root
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.LoadConfigOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	registry, err := core.Setup(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to setup services: %w", err)
	}

	if err := registry.StartAll(ctx); err != nil {
		return fmt.Errorf("failed to start services: %w", err)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Println("Received shutdown signal, stopping services...")
	cancel()
	registry.StopAll()
	return nil
}

// withComponents runs fn against a wired stack that is not started
func withComponents(fn func(ctx context.Context, components *core.Components) error) error {
	cfg, err := config.LoadConfigOrDefault(configPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	components, err := core.NewComponents(ctx, cfg)
	if err != nil {
		return err
	}
	defer components.Stop()

	return fn(ctx, components)
}

func runRefresh(cmd *cobra.Command, args []string) error {
	return withComponents(func(ctx context.Context, components *core.Components) error {
		if err := components.MarketData.SetMarketInfo(ctx); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "catalog and fiat rates are fresh")
		return nil
	})
}

func runPrice(cmd *cobra.Command, args []string) error {
	currency := ""
	if len(args) > 1 {
		currency = args[1]
	}
	return withComponents(func(ctx context.Context, components *core.Components) error {
		price, err := components.MarketData.GetTokenPrice(ctx, args[0], currency)
		if err != nil {
			return err
		}
		if price == nil {
			fmt.Fprintln(cmd.OutOrStdout(), "unknown")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), price.String())
		return nil
	})
}

func runValue(cmd *cobra.Command, args []string) error {
	return withComponents(func(ctx context.Context, components *core.Components) error {
		fmt.Fprintln(cmd.OutOrStdout(), components.MarketData.GetTokenValue(ctx, args[0], args[1], args[2]))
		return nil
	})
}
