package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	parquetreader "github.com/brineio/parquetreader"
)

func init() {
	rootCmd.AddCommand(rowCountCmd)
}

var rowCountCmd = &cobra.Command{
	Use:   "rowcount file-name.parquet",
	Short: "print the total row count of the parquet file",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			_ = cmd.Usage()
			os.Exit(1)
		}

		pf, err := parquetreader.Open(args[0])
		if err != nil {
			log.Fatalf("failed to open %q: %q", args[0], err)
		}
		defer pf.Close()

		fmt.Println("total row count:", pf.NRow())
	},
}
