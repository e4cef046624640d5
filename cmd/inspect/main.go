package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"werkstatt/internal"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
)

var typeColours = map[string]color.Color{
	"POST":   color.FgGreen,
	"LIKE":   color.FgMagenta,
	"USER":   color.FgCyan,
	"THREAD": color.FgYellow,
	"RAW":    color.FgGray,
}

func main() {
	dbPath := flag.String("db", "./data/badger", "Path to badger DB")
	prefix := flag.String("prefix", "post:", "Prefix to scan (post:, like:, user:, thread:)")
	limit := flag.Int("limit", 200, "Maximum number of rows, 0 for all")
	noColour := flag.Bool("no-colour", false, "Disable coloured types")
	flag.Parse()

	db, err := openDB(*dbPath)
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Timestamp", "Entity ID", "Namespace", "Detail"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	rows := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefixBytes := []byte(*prefix)
		for it.Seek(prefixBytes); it.ValidForPrefix(prefixBytes); it.Next() {
			if *limit > 0 && rows == *limit {
				return nil
			}
			item := it.Item()
			err := item.Value(func(v []byte) error {
				row := internal.RecordMapper(string(item.Key()), v)
				kind := row.Type
				if c, ok := typeColours[kind]; ok && !*noColour {
					kind = c.Render(kind)
				}
				table.Append([]string{row.Key, kind, row.Timestamp, row.EntityID, row.Namespace, row.Detail})
				return nil
			})
			if err != nil {
				return err
			}
			rows++
		}
		return nil
	})
	if err != nil {
		log.Fatal(err)
	}

	table.Render()
	fmt.Printf("\n%d rows under %q\n", rows, *prefix)
}

func openDB(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true)

	db, err := badger.Open(opts)
	if err != nil && strings.Contains(err.Error(), "Log truncate required") {
		return nil, fmt.Errorf("%w: stop the server so the value log gets truncated, then retry", err)
	}
	return db, err
}
