package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	parquetreader "github.com/brineio/parquetreader"
)

func init() {
	rootCmd.AddCommand(schemaCmd)
}

var schemaCmd = &cobra.Command{
	Use:   "schema file-name.parquet",
	Short: "print the flat column list of the parquet file",
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

		var chunkInfo chunkInfoFunc
		if pf.NumRowGroups() > 0 {
			chunkInfo = func(columnID int) (parquetreader.ColumnChunkInfo, error) {
				return pf.ColumnChunkInfo(0, columnID)
			}
		}
		printFlatSchema(os.Stdout, pf.Columns(), chunkInfo)
	},
}

// chunkInfoFunc looks up a column's chunk-level directory metadata for
// whichever row group printFlatSchema should report on; nil means no
// row group is available to report from.
type chunkInfoFunc func(columnID int) (parquetreader.ColumnChunkInfo, error)

// printFlatSchema lists every flat column alongside the compression
// codec its chunk was written with, sourced from
// ParquetFile.ColumnChunkInfo rather than a fresh page decode.
func printFlatSchema(w io.Writer, columns []*parquetreader.Column, chunkInfo chunkInfoFunc) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "id\tname\ttype\tlength\tcodec")
	for _, col := range columns {
		length := "-"
		if col.Type == parquetreader.TypeFixedLenByteArray {
			length = fmt.Sprint(col.TypeLen)
		}
		codec := "-"
		if chunkInfo != nil {
			if info, err := chunkInfo(col.ID); err == nil {
				codec = info.Codec.String()
			}
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", col.ID, col.Name, physicalTypeName(col.Type), length, codec)
	}
	_ = tw.Flush()
}

func physicalTypeName(t parquetreader.PhysicalType) string {
	switch t {
	case parquetreader.TypeBool:
		return "bool"
	case parquetreader.TypeInt32:
		return "i32"
	case parquetreader.TypeInt64:
		return "i64"
	case parquetreader.TypeInt96:
		return "i96"
	case parquetreader.TypeFloat32:
		return "f32"
	case parquetreader.TypeFloat64:
		return "f64"
	case parquetreader.TypeByteArray:
		return "byte_array"
	case parquetreader.TypeFixedLenByteArray:
		return "fixed_len_byte_array"
	default:
		return "unknown"
	}
}
