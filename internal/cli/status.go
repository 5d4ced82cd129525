package cli

import (
	"errors"
	"fmt"

	"github.com/iudanet/apisign/internal/service"
)

func (c *Cli) runStatus() error {
	groups := c.service.Groups()
	history := c.service.History()

	presets := 0
	for i := range groups.Groups {
		presets += len(groups.Groups[i].Presets)
	}

	c.io.Println("=== apisign status ===")
	c.io.Println()
	c.io.Printf("Database:  %s\n", c.cfg.DBPath)
	c.io.Printf("Groups:    %d\n", len(groups.Groups))
	c.io.Printf("Presets:   %d\n", presets)
	c.io.Printf("History:   %d of %d\n", len(history.Items), history.Limit)

	group, preset, err := c.service.ActiveRequest()
	switch {
	case errors.Is(err, service.ErrNoSelection):
		c.io.Println("Selected:  (none)")
	case err != nil:
		return fmt.Errorf("failed to resolve selection: %w", err)
	default:
		c.io.Printf("Selected:  %s / %s\n", group.Name, preset.Name)
	}

	c.io.Printf("Hashing:   %s\n", c.hashingBackend())
	return nil
}

// hashingBackend сообщает, чем будет посчитана подпись
func (c *Cli) hashingBackend() string {
	if c.signer != nil && c.signer.Native() {
		return "hashd daemon"
	}
	return "local md5"
}
