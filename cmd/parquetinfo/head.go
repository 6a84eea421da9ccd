package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	parquetreader "github.com/brineio/parquetreader"
)

var headRows int

func init() {
	headCmd.Flags().IntVarP(&headRows, "n", "n", 10, "number of rows to print")
	rootCmd.AddCommand(headCmd)
}

var headCmd = &cobra.Command{
	Use:   "head file-name.parquet",
	Short: "print the first N rows of the parquet file",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			_ = cmd.Usage()
			os.Exit(1)
		}

		if err := printHead(os.Stdout, args[0], headRows); err != nil {
			log.Fatal(err)
		}
	},
}

func printHead(w io.Writer, path string, n int) error {
	pf, err := parquetreader.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %q: %q", path, err)
	}
	defer pf.Close()

	state := &parquetreader.ScanState{}
	result := pf.InitializeResult()
	printed := 0

	for printed < n {
		ok, err := pf.Scan(state, result)
		if err != nil {
			return fmt.Errorf("scan failed: %q", err)
		}
		if !ok {
			return nil
		}
		for row := 0; row < result.NRows && printed < n; row++ {
			for _, rc := range result.Columns {
				fmt.Fprintf(w, "%s=%s ", rc.Column.Name, formatValue(rc, row))
			}
			fmt.Fprintln(w)
			printed++
		}
	}
	return nil
}

func formatValue(rc *parquetreader.ResultColumn, row int) string {
	if rc.Defined[row] == 0 {
		return "null"
	}
	switch rc.Column.Type {
	case parquetreader.TypeBool:
		return fmt.Sprint(rc.BoolValues[row])
	case parquetreader.TypeInt32:
		return fmt.Sprint(rc.Int32Values[row])
	case parquetreader.TypeInt64:
		return fmt.Sprint(rc.Int64Values[row])
	case parquetreader.TypeInt96:
		return fmt.Sprintf("%x", rc.Int96Values[row])
	case parquetreader.TypeFloat32:
		return fmt.Sprint(rc.Float32Values[row])
	case parquetreader.TypeFloat64:
		return fmt.Sprint(rc.Float64Values[row])
	case parquetreader.TypeByteArray, parquetreader.TypeFixedLenByteArray:
		return string(rc.String(rc.HeapIndex[row]))
	default:
		return "?"
	}
}
