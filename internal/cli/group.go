package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/apisign/internal/validation"
)

func (c *Cli) runGroup(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: apisign group <list|create|rename|delete|clone>")
	}
	switch args[0] {
	case "list":
		return c.runGroupList()
	case "create":
		return c.runGroupCreate(ctx, args[1:])
	case "rename":
		return c.runGroupRename(ctx, args[1:])
	case "delete":
		return c.runGroupDelete(ctx, args[1:])
	case "clone":
		return c.runGroupClone(ctx, args[1:])
	default:
		return fmt.Errorf("unknown group subcommand: %s. Use: list, create, rename, delete, or clone", args[0])
	}
}

func (c *Cli) runGroupList() error {
	groups := c.service.Groups()

	c.io.Println("=== Groups ===")
	c.io.Println()

	if len(groups.Groups) == 0 {
		c.io.Println("No groups found.")
		c.io.Println()
		c.io.Println("Use 'apisign group create <name>' to add your first group.")
		return nil
	}

	for i, group := range groups.Groups {
		marker := " "
		if group.ID == groups.LastUsedGroupID {
			marker = "*"
		}
		c.io.Printf("%s %d. %s\n", marker, i+1, group.Name)
		c.io.Printf("     ID:      %s\n", group.ID)
		c.io.Printf("     Presets: %d\n", len(group.Presets))
	}
	c.io.Println()
	c.io.Println("* marks the selected group.")
	return nil
}

func (c *Cli) runGroupCreate(ctx context.Context, args []string) error {
	name := joinName(args)
	if err := validation.ValidateName(name); err != nil {
		return err
	}

	group, err := c.service.CreateGroup(ctx, name)
	if err != nil {
		return fmt.Errorf("failed to create group: %w", err)
	}

	c.io.Printf("Created group %q (%s)\n", group.Name, group.ID)
	return nil
}

func (c *Cli) runGroupRename(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf("usage: apisign group rename <group> <new-name>")
	}

	groups := c.service.Groups()
	group, err := resolveGroup(groups, args[0])
	if err != nil {
		return err
	}

	name := joinName(args[1:])
	if err := validation.ValidateName(name); err != nil {
		return err
	}

	if err := c.service.RenameGroup(ctx, group.ID, name); err != nil {
		return fmt.Errorf("failed to rename group: %w", err)
	}

	c.io.Printf("Renamed group %q to %q\n", group.Name, name)
	return nil
}

func (c *Cli) runGroupDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing group name. Usage: apisign group delete <group>")
	}

	groups := c.service.Groups()
	group, err := resolveGroup(groups, args[0])
	if err != nil {
		return err
	}

	if err := c.service.DeleteGroup(ctx, group.ID); err != nil {
		return fmt.Errorf("failed to delete group: %w", err)
	}

	c.io.Printf("Deleted group %q with %d preset(s)\n", group.Name, len(group.Presets))
	return nil
}

func (c *Cli) runGroupClone(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing group name. Usage: apisign group clone <group>")
	}

	groups := c.service.Groups()
	group, err := resolveGroup(groups, args[0])
	if err != nil {
		return err
	}

	clone, err := c.service.CloneGroup(ctx, group.ID)
	if err != nil {
		return fmt.Errorf("failed to clone group: %w", err)
	}

	c.io.Printf("Cloned group %q to %q (%s)\n", group.Name, clone.Name, clone.ID)
	return nil
}
