package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"district-sync/core/config"
	"district-sync/core/reconcile"
	"district-sync/core/source"
	"district-sync/core/storage"
	"district-sync/feature/division/listfile"
	"district-sync/feature/division/sqldump"

	"github.com/spf13/cobra"
)

// dumpCmd prints a parsed dataset, for checking a parser against an input.
var dumpCmd = &cobra.Command{
	Use:   "dump",
	Short: "Print the dataset parsed from one input as JSON",
}

var dumpListCmd = &cobra.Command{
	Use:   "list <path>",
	Short: "Parse a gold-standard list file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDump(cmd, args[0], func(opener *source.Opener, cfg *config.Config) reconcile.Source {
			return &listfile.Source{Label: args[0], Path: args[0], Opener: opener}
		})
	},
}

var dumpSQLCmd = &cobra.Command{
	Use:   "sql <path>",
	Short: "Parse an SQL dump of the division table",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDump(cmd, args[0], func(opener *source.Opener, cfg *config.Config) reconcile.Source {
			return &sqldump.Source{Label: args[0], Path: args[0], RootID: cfg.Division.RootID, Opener: opener}
		})
	},
}

func init() {
	dumpCmd.AddCommand(dumpListCmd)
	dumpCmd.AddCommand(dumpSQLCmd)
	RootCmd.AddCommand(dumpCmd)
}

func runDump(cmd *cobra.Command, path string, build func(*source.Opener, *config.Config) reconcile.Source) error {
	cfg, err := config.LoadConfig(configDir)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	var client storage.Client
	if storage.IsURL(path) {
		client, err = storage.NewClient(cfg.Storage)
		if err != nil {
			return fmt.Errorf("failed to connect to storage: %w", err)
		}
	}

	data, err := build(source.NewOpener(client), cfg).Load(context.Background())
	if err != nil {
		return err
	}
	return writeDataset(cmd.OutOrStdout(), data)
}

// datasetView is the JSON shape of a dataset with sorted keys and members.
type datasetView struct {
	Provinces int                 `json:"provinces"`
	Districts int                 `json:"districts"`
	Data      map[string][]string `json:"data"`
}

func writeDataset(w io.Writer, data reconcile.Dataset) error {
	view := datasetView{
		Provinces: len(data),
		Districts: data.DistrictCount(),
		Data:      make(map[string][]string, len(data)),
	}
	for _, p := range data.Provinces() {
		view.Data[p] = data[p].Sorted()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(view)
}
