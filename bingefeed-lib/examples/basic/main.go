// ABOUTME: Basic example of using the Bingefeed library
// ABOUTME: Refreshes the movie feed, prints the first titles and loads one more page

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	bingefeed "bingefeed-api/bingefeed-lib"
)

func main() {
	client, err := bingefeed.NewClient(
		bingefeed.WithAPIKey(os.Getenv("CATALOG_API_KEY")),
		bingefeed.WithDefaultLogger(),
	)
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := client.Refresh(ctx, bingefeed.Movie); err != nil {
		if notice := client.CurrentError(); notice != nil {
			log.Fatalf("%s: %s", notice.Notice.Title, notice.Notice.Message)
		}
		log.Fatalf("Refresh failed: %v", err)
	}

	state, _ := client.Snapshot(bingefeed.Movie)
	for i, item := range state.Items {
		if i == 5 {
			break
		}
		fmt.Printf("%d. %s (%d)\n", i+1, item.Title, item.Year)
	}

	err = client.LoadMore(ctx, bingefeed.Movie)
	switch {
	case errors.Is(err, bingefeed.ErrExhausted):
		fmt.Println("No more pages")
	case err != nil:
		log.Printf("Load more failed: %v", err)
	default:
		state, _ = client.Snapshot(bingefeed.Movie)
		fmt.Printf("Feed now holds %d titles\n", len(state.Items))
	}
}
