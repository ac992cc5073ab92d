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
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/akempf/spotify-data-tools/internal/split"
	"github.com/akempf/spotify-data-tools/internal/tidy"
)

// tidyCmd represents the tidy command
var tidyCmd = &cobra.Command{
	Use:   "tidy",
	Short: "Builds the analysis-ready dataset and reports data quality",
	Long: `Loads the export files and the reference dataset, joins them on
(track id, artist string), derives the categorical features, and splits the
result into train/validation/test partitions stratified by decade.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runTidy(os.Stdout, pipelineConfigFromViper())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tidyCmd)
}

func runTidy(out io.Writer, config PipelineConfig) error {
	joined, partitions, stats, err := runPipeline(out, config)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\nJoined dataset: %d rows\n", len(joined))
	fmt.Fprintf(out, "Parse failures: %d limited cells, %d reference cells\n",
		stats.Limited.Failures(), stats.Reference.Failures())
	fmt.Fprintf(out, "Join drops: %d limited rows, %d reference rows; %d duplicate rows removed\n",
		stats.Join.DroppedLimited, stats.Join.DroppedRef, stats.Join.Duplicates)
	if stats.Unbucketed > 0 {
		fmt.Fprintf(out, "%d rows have no popularity range (missing or outside [0, 100])\n", stats.Unbucketed)
	}
	fmt.Fprintln(out)

	if err := printSplitTable(out, joined, partitions); err != nil {
		return err
	}

	for _, warning := range stats.Warnings {
		fmt.Fprintf(out, "Warning: %s\n", warning)
	}
	return nil
}

// printSplitTable renders per-decade partition sizes so stratification is
// auditable at a glance.
func printSplitTable(out io.Writer, joined []tidy.JoinedTrack, partitions []split.Partition) error {
	counts := make(map[string]*[3]int)
	for i, track := range joined {
		c := counts[track.Decade]
		if c == nil {
			c = &[3]int{}
			counts[track.Decade] = c
		}
		c[partitions[i]]++
	}

	labels := append([]string(nil), tidy.DecadeLabels...)
	if counts[""] != nil {
		labels = append(labels, "")
	}

	table := tablewriter.NewWriter(out)
	table.Header("Decade", "Train", "Validation", "Test", "Total")
	var totals [3]int
	for _, label := range labels {
		c := counts[label]
		if c == nil {
			continue
		}
		name := label
		if name == "" {
			name = "(no year)"
		}
		row := []string{
			name,
			strconv.Itoa(c[split.Train]),
			strconv.Itoa(c[split.Validation]),
			strconv.Itoa(c[split.Test]),
			strconv.Itoa(c[split.Train] + c[split.Validation] + c[split.Test]),
		}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("rendering split table: %w", err)
		}
		for part, n := range c {
			totals[part] += n
		}
	}
	total := []string{
		"All",
		strconv.Itoa(totals[split.Train]),
		strconv.Itoa(totals[split.Validation]),
		strconv.Itoa(totals[split.Test]),
		strconv.Itoa(len(joined)),
	}
	if err := table.Append(total); err != nil {
		return fmt.Errorf("rendering split table: %w", err)
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering split table: %w", err)
	}
	return nil
}
