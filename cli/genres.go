package main

import (
	"context"
	"fmt"

	"github.com/amonks/trackboard/subcmd"
)

func genres(ctx context.Context, args []string) error {
	subcmd := subcmd.New("genres", "list the filterable genre tags")
	var (
		dataPath = subcmd.String("data", "", "path to the dataset csv (default: next to the binary)")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	catalog, err := openCatalog(ctx, *dataPath)
	if err != nil {
		return err
	}
	defer catalog.Close()

	names, err := catalog.GenreNames(ctx)
	if err != nil {
		return err
	}

	for _, name := range names {
		fmt.Println(name)
	}

	return nil
}
