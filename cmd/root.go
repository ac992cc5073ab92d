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
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

var cfgFile string
var dataDir string
var referencePath string
var databasePath string
var seed int64
var trainFrac float64
var validationFrac float64

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "spotify-data-tools",
	Short: "Tidies Spotify track exports into an analysis-ready dataset",
	Long: `Joins per-song CSV exports against a larger reference dataset, derives
decade, popularity-range, and artist-count features, and splits the result
into train/validation/test partitions stratified by decade.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.spotify-data-tools.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&dataDir, "data_dir", "", "", "Directory of per-song CSV export files")
	rootCmd.MarkPersistentFlagRequired("data_dir")
	viper.BindPFlag("data_dir", rootCmd.PersistentFlags().Lookup("data_dir"))

	rootCmd.PersistentFlags().StringVarP(
		&referencePath, "reference", "r", "", "Path to the reference dataset CSV")
	rootCmd.MarkPersistentFlagRequired("reference")
	viper.BindPFlag("reference", rootCmd.PersistentFlags().Lookup("reference"))

	rootCmd.PersistentFlags().Int64Var(
		&seed, "seed", 42, "Random seed for the train/validation/test split")
	viper.BindPFlag("seed", rootCmd.PersistentFlags().Lookup("seed"))

	rootCmd.PersistentFlags().Float64Var(
		&trainFrac, "train_frac", 0.6, "Fraction of each decade bucket assigned to training")
	viper.BindPFlag("train_frac", rootCmd.PersistentFlags().Lookup("train_frac"))

	rootCmd.PersistentFlags().Float64Var(
		&validationFrac, "validation_frac", 0.2, "Fraction of each decade bucket assigned to validation; the remainder is test")
	viper.BindPFlag("validation_frac", rootCmd.PersistentFlags().Lookup("validation_frac"))

	rootCmd.PersistentFlags().StringVarP(
		&databasePath, "database", "d", "./tracks.db", "Path to the SQLite database used by export")
	viper.BindPFlag("database", rootCmd.PersistentFlags().Lookup("database"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".spotify-data-tools" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".spotify-data-tools")
	}

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" {
			rootCmd.Flags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}
