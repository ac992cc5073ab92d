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
	"gonum.org/v1/gonum/stat"

	"github.com/akempf/spotify-data-tools/internal/tidy"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Prints exploratory summaries of the tidied dataset",
	Long: `Runs the tidy pipeline and summarizes the result: decade and
popularity-range distributions, and the correlation between artist count
and popularity.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := runStats(os.Stdout, pipelineConfigFromViper())
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(out io.Writer, config PipelineConfig) error {
	joined, _, _, err := runPipeline(out, config)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)

	if err := printDecadeTable(out, joined); err != nil {
		return err
	}
	if err := printPopularityTable(out, joined); err != nil {
		return err
	}

	var artistCounts, popularities []float64
	for _, track := range joined {
		if track.Popularity == nil {
			continue
		}
		artistCounts = append(artistCounts, float64(track.ArtistCount))
		popularities = append(popularities, *track.Popularity)
	}
	if len(popularities) < 2 {
		fmt.Fprintln(out, "Not enough rows with popularity scores to summarize")
		return nil
	}

	mean, stddev := stat.MeanStdDev(popularities, nil)
	fmt.Fprintf(out, "Popularity: mean %.1f, stddev %.1f over %d rows\n",
		mean, stddev, len(popularities))
	fmt.Fprintf(out, "Correlation between artist count and popularity: %.3f\n",
		stat.Correlation(artistCounts, popularities, nil))
	return nil
}

func printDecadeTable(out io.Writer, joined []tidy.JoinedTrack) error {
	counts := make(map[string]int)
	for _, track := range joined {
		counts[track.Decade]++
	}

	table := tablewriter.NewWriter(out)
	table.Header("Decade", "Tracks")
	for _, label := range tidy.DecadeLabels {
		if counts[label] == 0 {
			continue
		}
		if err := table.Append([]string{label, strconv.Itoa(counts[label])}); err != nil {
			return fmt.Errorf("rendering decade table: %w", err)
		}
	}
	if counts[""] > 0 {
		if err := table.Append([]string{"(no year)", strconv.Itoa(counts[""])}); err != nil {
			return fmt.Errorf("rendering decade table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering decade table: %w", err)
	}
	return nil
}

func printPopularityTable(out io.Writer, joined []tidy.JoinedTrack) error {
	counts := make(map[string]int)
	artistSums := make(map[string]int)
	for _, track := range joined {
		counts[track.PopularityRange]++
		artistSums[track.PopularityRange] += track.ArtistCount
	}

	table := tablewriter.NewWriter(out)
	table.Header("Popularity", "Tracks", "Avg artists")
	for _, label := range tidy.PopularityLabels {
		if counts[label] == 0 {
			continue
		}
		avg := float64(artistSums[label]) / float64(counts[label])
		row := []string{label, strconv.Itoa(counts[label]), fmt.Sprintf("%.2f", avg)}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("rendering popularity table: %w", err)
		}
	}
	if counts[""] > 0 {
		if err := table.Append([]string{"(unbucketed)", strconv.Itoa(counts[""]), ""}); err != nil {
			return fmt.Errorf("rendering popularity table: %w", err)
		}
	}
	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering popularity table: %w", err)
	}
	return nil
}
