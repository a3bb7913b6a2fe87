// Command samples lists and runs the concurrency demonstrations.
//
//	samples list
//	samples run                # run the whole catalogue in order
//	samples run 3 "Readers and Writers"
package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/tolgayilmaz86/threadsafe/sample"
)

func main() {
	catalog := sample.Catalog()

	app := &cli.App{
		Name:  "samples",
		Usage: "run standalone concurrency demonstrations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "print the catalogue in presentation order",
				Action: func(c *cli.Context) error {
					for i, s := range catalog {
						fmt.Printf("%2d. %s\n", i+1, s.Name())
					}
					return nil
				},
			},
			{
				Name:      "run",
				Usage:     "run selected demonstrations (all when none given)",
				ArgsUsage: "[name|index]...",
				Action: func(c *cli.Context) error {
					selected, err := selectSamples(catalog, c.Args().Slice())
					if err != nil {
						return err
					}
					for _, s := range selected {
						fmt.Printf("--- %s ---\n", s.Name())
						s.Run(os.Stdout)
						fmt.Println()
					}
					return nil
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// selectSamples resolves each argument as a 1-based catalogue index or a
// case-insensitive name. With no arguments it returns the whole catalogue.
func selectSamples(catalog []sample.Sample, args []string) ([]sample.Sample, error) {
	if len(args) == 0 {
		return catalog, nil
	}

	var out []sample.Sample
	for _, arg := range args {
		s, err := findSample(catalog, arg)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func findSample(catalog []sample.Sample, key string) (sample.Sample, error) {
	if n, err := strconv.Atoi(key); err == nil {
		if n < 1 || n > len(catalog) {
			return nil, fmt.Errorf("sample index %d out of range 1..%d", n, len(catalog))
		}
		return catalog[n-1], nil
	}
	for _, s := range catalog {
		if strings.EqualFold(s.Name(), key) {
			return s, nil
		}
	}
	return nil, fmt.Errorf("unknown sample %q (try 'samples list')", key)
}
