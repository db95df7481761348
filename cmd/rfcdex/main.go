// Command rfcdex is an offline RFC reference reader: it mirrors the RFC
// corpus into a local SQLite database and serves lookups, full-text
// search and bookmarks from it.
package main

import (
	"fmt"
	"os"

	"github.com/rfcdex/rfcdex/internal/adapters/driven/config/file"
	"github.com/rfcdex/rfcdex/internal/adapters/driven/fetch/rfced"
	"github.com/rfcdex/rfcdex/internal/adapters/driven/storage/sqlite"
	"github.com/rfcdex/rfcdex/internal/adapters/driving/cli"
	"github.com/rfcdex/rfcdex/internal/core/ports/driven"
	"github.com/rfcdex/rfcdex/internal/core/services"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: loading configuration: %v\n", err)
		return 1
	}

	store, err := sqlite.NewStore(configStore.GetString(driven.ConfigKeyDataDir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: opening corpus store: %v\n", err)
		return 1
	}
	defer store.Close()

	// Bookmarking an unknown number creates a bare record unless the
	// config says otherwise.
	createOnBookmark := true
	if _, ok := configStore.Get(driven.ConfigKeyCreateOnBookmark); ok {
		createOnBookmark = configStore.GetBool(driven.ConfigKeyCreateOnBookmark)
	}

	corpus := store.CorpusStore()
	fetcher := rfced.NewClient()
	syncState := file.NewSyncState(configStore)
	runStore := store.SyncRunStore()

	ingest := services.NewIngest(corpus)
	retrieval := services.NewRetrieval(corpus, store.SearchIndex(), createOnBookmark)
	scheduler := services.NewScheduler(syncState, runStore, fetcher, ingest)

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Retrieval: retrieval,
		Ingest:    ingest,
		Scheduler: scheduler,
		Fetcher:   fetcher,
		Config:    configStore,
		SyncState: syncState,
		Runs:      runStore,
	})

	return cli.Execute()
}
