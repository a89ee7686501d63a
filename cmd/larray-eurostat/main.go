package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/larray-project/larray-eurostat/config"
	"github.com/larray-project/larray-eurostat/eurostat"
	"github.com/larray-project/larray-eurostat/larray"
	"github.com/larray-project/larray-eurostat/sdmx"
)

func fatal(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
	os.Exit(1)
}

// parseKey turns repeated --key DIM=VALUE[+VALUE...] flags into an sdmx.Key.
func parseKey(pairs []string) (sdmx.Key, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	key := sdmx.Key{}
	for _, pair := range pairs {
		dim, value, found := strings.Cut(pair, "=")
		if !found || dim == "" {
			return nil, errors.Errorf("invalid key %q, expected DIM=VALUE", pair)
		}
		key[dim] = value
	}
	return key, nil
}

func printArray(title string, arr *larray.Array) {
	fmt.Println(title)
	for _, axis := range arr.Axes() {
		fmt.Printf("  %s [%d]: %s\n", axis.Name, len(axis.Labels), strings.Join(axis.Labels, ", "))
	}
	fmt.Printf("%d cells\n", arr.Size())
}

func fetch(cmd *cobra.Command, args []string) {
	varID := args[0]

	cfg, err := config.Get()
	if err != nil {
		fatal("failed to get config: %v", err)
	}

	keyPairs, _ := cmd.Flags().GetStringArray("key")
	key, err := parseKey(keyPairs)
	if err != nil {
		fatal("%v", err)
	}
	describe, _ := cmd.Flags().GetBool("describe")

	svc := eurostat.New(*cfg, sdmx.NewClient(*cfg))

	ctx, cancel := context.WithTimeout(context.Background(), cfg.DefaultRequestTimeout)
	defer cancel()

	title, codelists, arr, err := svc.GetVariable(ctx, varID, key)
	if err != nil {
		fatal("failed to fetch %s: %v", varID, err)
	}
	if describe {
		if arr, err = svc.Describe(arr, codelists); err != nil {
			fatal("failed to describe %s: %v", varID, err)
		}
	}

	printArray(title, arr)
}

func main() {
	root := &cobra.Command{
		Use:   "larray-eurostat",
		Short: "Retrieve Eurostat SDMX datasets as labeled arrays",
	}

	cmd := &cobra.Command{
		Use:   "fetch var-id",
		Short: "Fetch a Eurostat variable and print its axes",
		Args:  cobra.ExactArgs(1),
		Run:   fetch}
	cmd.Flags().StringArrayP("key", "k", nil, "dimension filter DIM=VALUE[+VALUE...] (repeatable)")
	cmd.Flags().BoolP("describe", "d", false, "replace coded axis labels with codelist descriptions")
	root.AddCommand(cmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
