/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/akempf/spotify-data-tools/internal/store"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Persists the tidied dataset to a SQLite database",
	Long: `Runs the tidy pipeline and writes the joined, feature-enriched rows
with their partition assignments to a local SQLite database, for report
generation and modeling to read.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runExport(os.Stdout, pipelineConfigFromViper(), viper.GetString("database"))
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(out io.Writer, config PipelineConfig, dbPath string) error {
	joined, partitions, _, err := runPipeline(out, config)
	if err != nil {
		return err
	}

	db, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	if err := db.SaveDataset(joined, partitions); err != nil {
		return err
	}

	counts, err := db.CountByPartition()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Wrote %d rows to %s (train %d, validation %d, test %d)\n",
		len(joined), dbPath, counts["train"], counts["validation"], counts["test"])
	return nil
}
