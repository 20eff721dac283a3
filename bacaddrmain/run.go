// Package bacaddrmain implements the bacaddr command line tool. It
// parses addresses into their canonical form, filters them with match
// expressions and manages name bindings in an address table.
package bacaddrmain

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/apex/log/handlers/text"
	"github.com/mattn/go-isatty"

	"github.com/nextbac/bacaddr/core/addr"
	corelog "github.com/nextbac/bacaddr/core/log"
	"github.com/nextbac/bacaddr/core/matcher"
	"github.com/nextbac/bacaddr/core/table"

	// import all supported table drivers
	_ "github.com/nextbac/bacaddr/core/table/drivers"
)

var (
	flagLevel  string
	flagMatch  string
	flagDriver string
	flagDB     string
)

func init() {
	flag.StringVar(&flagLevel, "level", "info", "log level")
	flag.StringVar(&flagMatch, "match", "", "only print addresses matching the expression")
	flag.StringVar(&flagDriver, "driver", "bolt", "address table driver (bolt or memory)")
	flag.StringVar(&flagDB, "db", "bacaddr.db", "address table database file")
}

// Run executes the bacaddr command and returns any error encountered
func Run() error {
	flag.Parse()

	if err := setupLogging(flagLevel); err != nil {
		return err
	}

	args := flag.Args()
	if len(args) == 0 {
		return fmt.Errorf("nothing to do. expected a verb (bind, lookup, rlookup, list) or at least one address")
	}

	switch args[0] {
	case "bind", "lookup", "rlookup", "list":
		return runTableVerb(context.Background(), args[0], args[1:])
	}

	return runParse(args)
}

func setupLogging(level string) error {
	l, err := log.ParseLevel(level)
	if err != nil {
		return err
	}

	log.SetLevel(l)

	if isatty.IsTerminal(os.Stdout.Fd()) {
		log.SetHandler(cli.New(os.Stdout))
	} else {
		log.SetHandler(text.New(os.Stderr))
	}

	return nil
}

// runParse parses every argument and prints the canonical form of
// those that pass the match expression
func runParse(args []string) error {
	m, err := matcher.New(flagMatch)
	if err != nil {
		return fmt.Errorf("invalid match expression: %w", err)
	}

	for _, arg := range args {
		a, err := addr.Parse(arg)
		if err != nil {
			log.WithField("class", errorClass(err)).
				WithField("input", arg).
				Error(err.Error())
			return err
		}

		matched, err := m.Match(a)
		if err != nil {
			return err
		}

		if !matched {
			ctx := corelog.AddAddressFields(context.Background(), a)
			corelog.With(ctx).Debug("skipped by match expression")
			continue
		}

		fmt.Println(a.String())
	}

	return nil
}

func runTableVerb(ctx context.Context, verb string, args []string) error {
	storage, err := openStorage()
	if err != nil {
		return err
	}

	switch verb {
	case "bind":
		if len(args) != 2 {
			return fmt.Errorf("usage: bacaddr bind NAME ADDRESS")
		}

		a, err := addr.Parse(args[1])
		if err != nil {
			return err
		}

		if err := storage.Create(ctx, a, args[0]); err != nil {
			return err
		}

		corelog.With(corelog.AddAddressFields(ctx, a)).
			WithField("name", args[0]).
			Info("address bound")
		return nil

	case "lookup":
		if len(args) != 1 {
			return fmt.Errorf("usage: bacaddr lookup NAME")
		}

		a, err := storage.FindByName(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Println(a.String())
		return nil

	case "rlookup":
		if len(args) != 1 {
			return fmt.Errorf("usage: bacaddr rlookup ADDRESS")
		}

		a, err := addr.Parse(args[0])
		if err != nil {
			return err
		}

		name, err := storage.FindByAddress(ctx, a)
		if err != nil {
			return err
		}

		fmt.Println(name)
		return nil

	case "list":
		addrs, err := storage.ListAddresses(ctx)
		if err != nil {
			return err
		}

		for _, a := range addrs {
			name, err := storage.FindByAddress(ctx, a)
			if err != nil {
				return err
			}

			fmt.Printf("%s\t%s\n", name, a)
		}
		return nil
	}

	return fmt.Errorf("unknown verb %q", verb)
}

func openStorage() (table.BindingStorage, error) {
	args := map[string][]string{}
	if flagDriver == "bolt" {
		args["file"] = []string{flagDB}
	}

	return table.Open(flagDriver, args)
}

// errorClass names the failure class of a parse error so callers can
// tell malformed text, out-of-range numbers and bad constructor
// arguments apart on the command line
func errorClass(err error) string {
	switch {
	case addr.IsFormatError(err):
		return "format"
	case addr.IsRangeError(err):
		return "range"
	case addr.IsArgumentError(err):
		return "argument"
	}

	return "unknown"
}
