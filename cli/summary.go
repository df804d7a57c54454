package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/amonks/trackboard/data"
	"github.com/amonks/trackboard/subcmd"
)

func summary(ctx context.Context, args []string) error {
	subcmd := subcmd.New("summary", "print the artist and album-type summaries for a genre")
	subcmd.SetArg("genre", "string", "genre tag to filter by; omit for the unfiltered view")
	var (
		dataPath = subcmd.String("data", "", "path to the dataset csv (default: next to the binary)")
	)
	if err := subcmd.Parse(args); err != nil {
		return fmt.Errorf("flag parsing err: %w", err)
	}

	// genre tags can contain spaces, like "hip hop".
	genre := data.AllGenres
	if rest := subcmd.Args(); len(rest) > 0 {
		genre = strings.Join(rest, " ")
	}

	catalog, err := openCatalog(ctx, *dataPath)
	if err != nil {
		return err
	}
	defer catalog.Close()

	artists, err := catalog.ArtistSummaries(ctx, genre)
	if err != nil {
		return err
	}
	albumTypes, err := catalog.AlbumTypeSummaries(ctx, genre)
	if err != nil {
		return err
	}

	if len(artists) == 0 {
		fmt.Printf("no rows for genre '%s'\n", genre)
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "artist\tavg_track_popularity\tartist_popularity\ttrack_count\n")
	for _, a := range artists {
		fmt.Fprintf(tw, "%s\t%.1f\t%.1f\t%d\n",
			a.ArtistName, a.AvgTrackPopularity, a.ArtistPopularity, a.TrackCount)
	}

	fmt.Fprintf(tw, "\nalbum_type\tavg_track_popularity\n")
	for _, t := range albumTypes {
		fmt.Fprintf(tw, "%s\t%.1f\n", t.AlbumType, t.AvgTrackPopularity)
	}

	tw.Flush()

	return nil
}
