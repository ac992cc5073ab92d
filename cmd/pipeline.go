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

	"github.com/spf13/viper"

	"github.com/akempf/spotify-data-tools/internal/dataset"
	"github.com/akempf/spotify-data-tools/internal/split"
	"github.com/akempf/spotify-data-tools/internal/tidy"
)

type PipelineConfig struct {
	DataDir        string
	Reference      string
	Seed           int64
	TrainFrac      float64
	ValidationFrac float64
}

func pipelineConfigFromViper() PipelineConfig {
	return PipelineConfig{
		DataDir:        viper.GetString("data_dir"),
		Reference:      viper.GetString("reference"),
		Seed:           viper.GetInt64("seed"),
		TrainFrac:      viper.GetFloat64("train_frac"),
		ValidationFrac: viper.GetFloat64("validation_frac"),
	}
}

// PipelineStats bundles the quality counters every command reports: parse
// failures, join drops, unbucketed popularity scores, and stratification
// warnings.
type PipelineStats struct {
	SourceFiles int
	Limited     tidy.ParseStats
	Reference   tidy.ParseStats
	Join        tidy.JoinStats
	Unbucketed  int
	Warnings    []string
}

// runPipeline is the single forward pass shared by all commands: load,
// concatenate, normalize, join, derive features, split. The returned
// partition slice is parallel to the returned tracks.
func runPipeline(out io.Writer, config PipelineConfig) ([]tidy.JoinedTrack, []split.Partition, *PipelineStats, error) {
	tables, err := dataset.ReadDir(config.DataDir)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading export directory: %w", err)
	}
	fmt.Fprintf(out, "Read %d export files from %s\n", len(tables), config.DataDir)

	limitedRaw, err := dataset.Concat(tables)
	if err != nil {
		return nil, nil, nil, err
	}
	limited, limitedStats, err := tidy.NormalizeLimited(limitedRaw)
	if err != nil {
		return nil, nil, nil, err
	}

	referenceTable, err := dataset.ReadCSV(config.Reference)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("reading reference dataset: %w", err)
	}
	reference, referenceStats, err := tidy.NormalizeReference(referenceTable)
	if err != nil {
		return nil, nil, nil, err
	}
	fmt.Fprintf(out, "Normalized %d limited rows and %d reference rows\n",
		limitedStats.Rows, referenceStats.Rows)

	joined, joinStats := tidy.Join(reference, limited)
	if len(joined) == 0 {
		return nil, nil, nil, fmt.Errorf(
			"no rows survived the join; check that the export files and the reference dataset cover the same tracks")
	}

	unbucketed := tidy.DeriveFeatures(joined)

	strata := make([]string, len(joined))
	for i, track := range joined {
		strata[i] = track.Decade
	}
	result, err := split.Assign(strata, split.Config{
		TrainFrac:      config.TrainFrac,
		ValidationFrac: config.ValidationFrac,
		Seed:           config.Seed,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	stats := &PipelineStats{
		SourceFiles: len(tables),
		Limited:     limitedStats,
		Reference:   referenceStats,
		Join:        joinStats,
		Unbucketed:  unbucketed,
		Warnings:    result.Warnings,
	}
	return joined, result.Assignments, stats, nil
}
