package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/comalice/enumtour"
	"github.com/comalice/enumtour/internal/codec"
	"github.com/mattn/go-isatty"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("enumtour: ")

	interactive := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
	if err := run(os.Args[1:], os.Stdout, interactive); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}

func run(args []string, stdout io.Writer, interactive bool) error {
	fs := flag.NewFlagSet("enumtour", flag.ContinueOnError)
	dump := fs.Bool("dump", false, "append a YAML snapshot of the sample values")
	stateName := fs.String("state", string(enumtour.Alaska), "state minted on the sample quarter")
	banner := fs.Bool("banner", interactive, "print a header before the tour")
	if err := fs.Parse(args); err != nil {
		return err
	}

	state, err := enumtour.ParseUsState(*stateName)
	if err != nil {
		return fmt.Errorf("-state: %w", err)
	}

	if *banner {
		fmt.Fprintln(stdout, "Enum Tour")
		fmt.Fprintln(stdout, "=========")
		fmt.Fprintln(stdout)
	}

	tour := enumtour.NewTour(
		enumtour.WithOutput(stdout),
		enumtour.WithCoin(enumtour.Quarter{State: state}),
	)
	if err := tour.Run(); err != nil {
		return err
	}

	if *dump {
		fmt.Fprintln(stdout, "---")
		if err := codec.WriteSnapshot(stdout, codec.SnapshotOf(tour)); err != nil {
			return fmt.Errorf("dump: %w", err)
		}
	}
	return nil
}
