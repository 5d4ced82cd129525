package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
)

func (c *Cli) runExport(args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing file path. Usage: apisign export <file>")
	}
	path := args[0]

	data, err := c.service.Export()
	if err != nil {
		return fmt.Errorf("failed to export: %w", err)
	}

	if err := writeAtomic(path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	c.io.Printf("Exported groups and history to %s\n", path)
	c.io.Println("Note: the file contains signing secrets in plain text.")
	return nil
}

func (c *Cli) runImport(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("import", flag.ContinueOnError)
	fs.SetOutput(c.io)
	yes := fs.Bool("yes", false, "do not ask for confirmation")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("missing file path. Usage: apisign import [-yes] <file>")
	}
	path := fs.Arg(0)

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !*yes {
		ok, err := c.io.Confirm("Import replaces all groups and history. Continue?")
		if err != nil {
			return fmt.Errorf("failed to read answer: %w", err)
		}
		if !ok {
			c.io.Println("Import cancelled.")
			return nil
		}
	}

	if err := c.service.Import(ctx, data); err != nil {
		return fmt.Errorf("failed to import: %w", err)
	}

	groups := c.service.Groups()
	history := c.service.History()
	c.io.Printf("Imported %d group(s) and %d history entries from %s\n",
		len(groups.Groups), len(history.Items), path)
	return nil
}

// writeAtomic пишет файл через временный с последующим переименованием.
// Права 0600: экспорт содержит секреты подписи.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
