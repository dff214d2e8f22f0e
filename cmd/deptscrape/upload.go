package main

import (
	"fmt"

	"github.com/fwojciec/deptscrape"
)

// Run executes the upload command.
func (c *UploadCmd) Run(deps *Dependencies) error {
	records, err := deps.Reader.ReadRecords(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", deptscrape.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records to upload.")
		return nil
	}

	dist := deptscrape.TypeDistribution(records)
	fmt.Fprintf(deps.Stdout, "Uploading %d records:\n", len(records))
	for _, pt := range []deptscrape.PageType{
		deptscrape.PageStandard, deptscrape.PageSimple,
		deptscrape.PageParentOverview, deptscrape.PageMultiSpecialty,
		deptscrape.PageStructured, deptscrape.PageServiceComplex,
	} {
		if n := dist[pt]; n > 0 {
			fmt.Fprintf(deps.Stdout, "  %s: %d\n", pt, n)
		}
	}

	var uploaded, failed int
	for _, rec := range records {
		if err := deps.Uploader.UploadRecord(deps.Ctx, rec); err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "upload failed: %s: %s\n", rec.URL, deptscrape.ErrorMessage(err))
			continue
		}
		uploaded++
	}

	fmt.Fprintf(deps.Stdout, "Uploaded %d stories (%d failed)\n", uploaded, failed)

	if failed > 0 {
		return fmt.Errorf("%d of %d uploads failed", failed, len(records))
	}
	return nil
}
