// Copyright 2026 Blink Labs Software
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/acropolis-cardano/acropolis/bus"
	"github.com/acropolis-cardano/acropolis/engine"
	"github.com/acropolis-cardano/acropolis/internal/config"
	"github.com/acropolis-cardano/acropolis/internal/version"
	"github.com/acropolis-cardano/acropolis/modules/accountsstate"
	"github.com/acropolis-cardano/acropolis/modules/epochsstate"
	"github.com/acropolis-cardano/acropolis/modules/governancestate"
	"github.com/acropolis-cardano/acropolis/modules/parametersstate"
	"github.com/acropolis-cardano/acropolis/modules/queryrouter"
	"github.com/acropolis-cardano/acropolis/modules/txunpacker"
	"github.com/acropolis-cardano/acropolis/modules/upstreamfetcher"
	"github.com/acropolis-cardano/acropolis/modules/utxostate"
)

const programName = "acropolisd"

var cmdlineFlags = struct {
	debug      bool
	configPath string
}{}

func main() {
	cmd := &cobra.Command{
		Use:   programName + " [flags]",
		Short: "Cardano indexing and validation pipeline",
		Run:   cmdRun,
	}

	cmd.Flags().BoolVarP(&cmdlineFlags.debug, "debug", "D", false, "enable debug logging")
	cmd.Flags().StringVarP(&cmdlineFlags.configPath, "config", "c", "", "path to a YAML configuration file")

	if err := cmd.Execute(); err != nil {
		// NOTE: we purposely don't display the error, since cobra will have already displayed it
		os.Exit(1)
	}
}

func cmdRun(cmd *cobra.Command, args []string) {
	cfg, err := config.Load(cmdlineFlags.configPath)
	if err != nil {
		fmt.Printf("ERROR: failed to load configuration: %s\n", err)
		os.Exit(1)
	}
	if cmdlineFlags.debug {
		cfg.Debug = true
	}
	logger := configureLogger(cfg.Debug)
	logger.Info(fmt.Sprintf("starting %s %s", programName, version.GetVersionString()))

	b := bus.NewWithCapacity(cfg.BusCapacity)
	h := engine.New(b, logger)

	registerModules(h, cfg, logger)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := h.Run(ctx); err != nil {
		logger.Error("harness exited with error", "error", err)
		os.Exit(1)
	}
}

// registerModules wires every long-lived module onto the harness in
// leaves-first order: parameter and epoch tracking first (nothing
// downstream of them subscribes before they do), then the state modules
// that consume block events, then the upstream fetcher that produces
// them, and finally the query router that answers reads against
// everything above it.
func registerModules(h *engine.Harness, cfg config.Config, logger *slog.Logger) {
	genesis := parametersstate.MainnetGenesisParams()

	utxoRegistry := utxostate.New()

	h.Register(parametersstate.NewModule(genesis, logger))
	h.Register(epochsstate.NewModule(genesis.EpochLength, logger))
	h.Register(utxostate.NewModule(utxoRegistry, logger))
	h.Register(txunpacker.NewModule(utxoRegistry, logger))
	h.Register(accountsstate.NewModule(logger))
	h.Register(governancestate.NewModule(logger))

	peers := make([]upstreamfetcher.PeerConfig, 0, len(cfg.Peers))
	for _, p := range cfg.Peers {
		peers = append(peers, upstreamfetcher.PeerConfig{Address: p.Address, NetworkMagic: p.NetworkMagic})
	}
	if len(peers) > 0 {
		fetcher := upstreamfetcher.New(upstreamfetcher.Config{Peers: peers}, logger)
		h.Register(fetcher)
	}

	router := queryrouter.New(logger)
	router.Register("utxo.byIdentifier", func(ctx context.Context, query any) (any, error) {
		q, ok := query.(utxostate.UTxOQuery)
		if !ok {
			return nil, fmt.Errorf("registerModules: unexpected query type %T for utxo.byIdentifier", query)
		}
		return utxoRegistry.HandleUTxOQuery(q), nil
	})
	h.Register(router)
}

func configureLogger(debug bool) *slog.Logger {
	var logger *slog.Logger
	if debug {
		logger = slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	} else {
		logger = slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	}
	slog.SetDefault(logger)
	return logger
}
