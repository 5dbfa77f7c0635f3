// Command import_report ingests an exported report file (.json or .html)
// and prints the reconciled per-country table. Useful for checking a file
// before importing it into a live session.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"adspend_analyst/pkg/core/ingest"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: import_report <report.json|report.html>")
		os.Exit(1)
	}
	path := os.Args[1]

	content, err := os.ReadFile(path)
	if err != nil {
		fmt.Printf("[FATAL] Cannot read %s: %v\n", path, err)
		os.Exit(1)
	}

	ingestor := ingest.NewIngestor()
	result, err := ingestor.IngestFile(path, string(content))
	if err != nil {
		fmt.Printf("[FATAL] Ingestion failed: %v\n", err)
		os.Exit(1)
	}

	res := result.Report
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "COUNTRY\tCOST\tREVENUE\tPROFIT\tROI %\tSTATUS")
	for _, rec := range res.Details {
		fmt.Fprintf(w, "%s\t%.2f\t%.2f\t%.2f\t%.2f\t%s\n",
			rec.Country, rec.Cost, rec.Revenue, rec.Profit, rec.ROI, rec.Status)
	}
	fmt.Fprintf(w, "TOTAL\t%.2f\t%.2f\t%.2f\t%.2f\t\n",
		res.Summary.TotalCost, res.Summary.TotalRevenue, res.Summary.NetProfit, res.Summary.TotalROI)
	w.Flush()

	if len(res.BadCountries) > 0 {
		fmt.Printf("\nBlocked countries: %v\n", res.BadCountries)
	}
	for _, rec := range res.Recommendations {
		fmt.Printf("* %s\n", rec)
	}
	if result.Dropped > 0 {
		fmt.Printf("\n[WARNING] %d record(s) dropped (missing country name)\n", result.Dropped)
	}
}
