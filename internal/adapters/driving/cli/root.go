// Package cli wires the core services to cobra commands. Services are
// injected once at startup via SetServices; commands fail with a clear
// error when a service they need is absent.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rfcdex/rfcdex/internal/core/ports/driven"
	"github.com/rfcdex/rfcdex/internal/core/ports/driving"
	"github.com/rfcdex/rfcdex/internal/logger"
)

// Services holds the ports the CLI drives.
type Services struct {
	Retrieval driving.RetrievalService
	Ingest    driving.IngestService
	Scheduler driving.SyncScheduler
	Fetcher   driven.Fetcher
	Config    driven.ConfigStore
	SyncState driven.SyncStateStore
	Runs      driven.SyncRunStore
}

var (
	retrievalService driving.RetrievalService
	ingestService    driving.IngestService
	syncScheduler    driving.SyncScheduler
	fetcher          driven.Fetcher
	configStore      driven.ConfigStore
	syncState        driven.SyncStateStore
	runStore         driven.SyncRunStore

	version = "dev"
	offline bool
	verbose bool
)

// SetServices injects the core services into the command tree.
func SetServices(s *Services) {
	retrievalService = s.Retrieval
	ingestService = s.Ingest
	syncScheduler = s.Scheduler
	fetcher = s.Fetcher
	configStore = s.Config
	syncState = s.SyncState
	runStore = s.Runs
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	version = v
}

var rootCmd = &cobra.Command{
	Use:   "rfcdex [rfc-number]",
	Short: "Offline RFC reference reader",
	Long: `rfcdex keeps a local, searchable copy of the RFC corpus.

Run with an RFC number to read that document directly:

  rfcdex 2616

Run without arguments in a terminal to open the interactive menu, or
use the subcommands for scripted access.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		switch cmd.Name() {
		case "version", "help", "completion", "sync", "status", "fetch", "mcp", "serve":
			return nil
		}
		return ensureFresh(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&offline, "offline", false, "skip the staleness check and refresh")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the command tree. Returns a non-zero exit code on error.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(rootCmd.ErrOrStderr(), "Error: %v\n", err)
		return 1
	}
	return 0
}

func runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return runTUI(cmd)
		}
		return cmd.Help()
	}

	number, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("%q is not an RFC number", args[0])
	}
	return showRecord(cmd, number)
}

// ensureFresh refreshes the corpus when the local copy is older than the
// staleness window. A refresh failure is reported but does not block the
// command: stale data beats no data.
func ensureFresh(cmd *cobra.Command) error {
	if offline || syncScheduler == nil {
		return nil
	}

	stale, err := syncScheduler.IsStale(cmd.Context(), time.Now())
	if err != nil {
		return fmt.Errorf("checking corpus age: %w", err)
	}
	if !stale {
		return nil
	}

	cmd.PrintErrln("Local corpus is stale, refreshing...")
	if _, err := syncScheduler.Refresh(cmd.Context()); err != nil {
		cmd.PrintErrf("Refresh failed: %v\n", err)
	}
	return nil
}

func requireRetrieval() error {
	if retrievalService == nil {
		return errors.New("retrieval service not configured")
	}
	return nil
}
