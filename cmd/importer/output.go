package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"bookshelf/internal/domain/entity"
)

func printBooks(books ...*entity.Book) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKEY\tTITLE\tAUTHOR\tYEAR")
	for _, b := range books {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", b.ID, b.ExternalKey, b.Title, b.Author, b.FirstPublishYear)
	}
	_ = w.Flush()
}
