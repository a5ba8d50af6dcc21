// Command pipeline-report prints pipeline stage counts for the embedded
// fixtures, or for the snapshot saved in a database when -db is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"text/tabwriter"

	embedded "github.com/garnizeh/staffing/db"
	"github.com/garnizeh/staffing/internal/db"
	"github.com/garnizeh/staffing/internal/fixtures"
	"github.com/garnizeh/staffing/internal/repository/sqlite"
	"github.com/garnizeh/staffing/pkg/models"
	"github.com/garnizeh/staffing/pkg/repository/mock"
)

func main() {
	dbPath := flag.String("db", "", "Path to a SQLite database holding a saved snapshot")
	flag.Parse()

	ctx := context.Background()
	engine, err := mock.NewEngine(mock.EngineOptions{})
	if err != nil {
		log.Fatal(err)
	}
	if err := load(ctx, engine, *dbPath); err != nil {
		log.Fatal(err)
	}
	if err := report(ctx, os.Stdout, engine); err != nil {
		log.Fatal(err)
	}
}

func load(ctx context.Context, engine *mock.Engine, dbPath string) error {
	if dbPath == "" {
		_, err := fixtures.Seed(ctx, embedded.SeedFiles, engine)
		return err
	}
	conn, err := db.New(ctx, dbPath, nil)
	if err != nil {
		return err
	}
	defer conn.Close()
	snap, err := sqlite.New(conn, nil).LoadSnapshot(ctx)
	if err != nil {
		return err
	}
	return engine.Restore(*snap)
}

func report(ctx context.Context, out io.Writer, engine *mock.Engine) error {
	vacancies, err := engine.Vacancies.CountsByStage(ctx)
	if err != nil {
		return err
	}
	companies, err := engine.Companies.CountsByStage(ctx)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "VACANCY STAGE\tCOUNT")
	for _, s := range models.VacancyStages {
		fmt.Fprintf(tw, "%s\t%d\n", s, vacancies[s])
	}
	fmt.Fprintln(tw, "\t")
	fmt.Fprintln(tw, "COMPANY STAGE\tCOUNT")
	for _, s := range models.CompanyStages {
		fmt.Fprintf(tw, "%s\t%d\n", s, companies[s])
	}
	return tw.Flush()
}
