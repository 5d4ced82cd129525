package cli

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/iudanet/apisign/internal/models"
)

func (c *Cli) runHistory(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: apisign history <list|show|clear>")
	}
	switch args[0] {
	case "list":
		return c.runHistoryList(args[1:])
	case "show":
		return c.runHistoryShow(args[1:])
	case "clear":
		return c.runHistoryClear(ctx)
	default:
		return fmt.Errorf("unknown history subcommand: %s. Use: list, show, or clear", args[0])
	}
}

func (c *Cli) runHistoryList(args []string) error {
	fs := flag.NewFlagSet("history list", flag.ContinueOnError)
	fs.SetOutput(c.io)
	limit := fs.Int("n", 20, "show at most n newest entries")
	if err := fs.Parse(args); err != nil {
		return err
	}

	history := c.service.History()

	c.io.Println("=== History (newest first) ===")
	c.io.Println()

	if len(history.Items) == 0 {
		c.io.Println("History is empty.")
		return nil
	}

	shown := len(history.Items)
	if *limit > 0 && shown > *limit {
		shown = *limit
	}

	for i := 0; i < shown; i++ {
		item := history.Items[i]
		c.io.Printf("%d. %s\n", i+1, item.TS.Format("2006-01-02 15:04:05"))
		if item.Status != nil {
			c.io.Printf("   Status: %d (%d ms)\n", *item.Status, item.DurationMs)
		} else {
			c.io.Printf("   Error:  %s\n", item.ErrorMessage)
		}
		c.io.Printf("   URL:    %s\n", item.Summary.URL)
		c.io.Printf("   ID:     %s\n", item.ID)
	}

	if shown < len(history.Items) {
		c.io.Println()
		c.io.Printf("...and %d older entries. Use -n to show more.\n", len(history.Items)-shown)
	}
	return nil
}

func (c *Cli) runHistoryShow(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing entry id. Usage: apisign history show <id|index>")
	}

	item, err := c.findHistoryItem(args[0])
	if err != nil {
		return err
	}

	c.io.Printf("Entry:     %s\n", item.ID)
	c.io.Printf("Time:      %s\n", item.TS.Format(time.RFC3339))
	if item.Status != nil {
		c.io.Printf("Status:    %d %s\n", *item.Status, http.StatusText(*item.Status))
		c.io.Printf("Duration:  %d ms\n", item.DurationMs)
	} else {
		c.io.Printf("Error:     %s\n", item.ErrorMessage)
	}
	c.io.Printf("Timestamp: %s\n", item.Summary.Timestamp)
	c.io.Printf("Sign:      %s\n", item.Summary.Sign)
	c.io.Println()
	c.io.Println("--- Request ---")
	c.printRequest(item.Request)
	if item.Status != nil {
		c.io.Println()
		c.io.Println("--- Response ---")
		c.io.Println(item.ResponseText)
	}
	return nil
}

// findHistoryItem находит запись по id либо по номеру из history list
func (c *Cli) findHistoryItem(key string) (models.HistoryItem, error) {
	if idx, err := strconv.Atoi(key); err == nil {
		history := c.service.History()
		if idx < 1 || idx > len(history.Items) {
			return models.HistoryItem{}, fmt.Errorf("history entry %d out of range (1..%d)", idx, len(history.Items))
		}
		return history.Items[idx-1], nil
	}
	return c.service.HistoryItem(key)
}

func (c *Cli) runHistoryClear(ctx context.Context) error {
	if err := c.service.ClearHistory(ctx); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	c.io.Println("History cleared.")
	return nil
}
