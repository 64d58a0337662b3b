package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jiaming2012/earnings-straddle/src/cmd/screener/run"
)

var runCmd = &cobra.Command{
	Use:   "go run src/cmd/screener/main.go [--backtest-date 2024-06-16]",
	Short: "Screen next week's earnings reports and evaluate straddles around the expected move",
	Run: func(cmd *cobra.Command, args []string) {
		goEnv, err := cmd.Flags().GetString("go-env")
		if err != nil {
			log.Fatalf("error getting go-env: %v", err)
		}

		backtestDate, err := cmd.Flags().GetString("backtest-date")
		if err != nil {
			log.Fatalf("error getting backtest-date: %v", err)
		}

		outDir, err := cmd.Flags().GetString("outDir")
		if err != nil {
			log.Fatalf("error getting outDir: %v", err)
		}

		result, err := run.Run(run.RunArgs{
			GoEnv:        goEnv,
			BacktestDate: backtestDate,
			OutDir:       outDir,
		})

		if err != nil {
			log.Fatalf("Error: %v", err)
		}

		if result.RecordsFile != "" {
			fmt.Printf("Output: %s\n", result.RecordsFile)
		}
	},
}

func main() {
	runCmd.PersistentFlags().String("go-env", "development", "The go environment to run the command in.")
	runCmd.PersistentFlags().String("backtest-date", "", "Simulated \"now\" for point-in-time evaluation. Live mode when empty.")
	runCmd.PersistentFlags().String("outDir", "", "The directory to write the output to.")

	runCmd.Execute()
}
