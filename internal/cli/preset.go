package cli

import (
	"context"
	"flag"
	"fmt"
	"time"

	"github.com/iudanet/apisign/internal/codec"
	"github.com/iudanet/apisign/internal/models"
	"github.com/iudanet/apisign/internal/validation"
)

func (c *Cli) runPreset(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("missing subcommand. Usage: apisign preset <list|save|show|delete|clone|use>")
	}
	switch args[0] {
	case "list":
		return c.runPresetList(args[1:])
	case "save":
		return c.runPresetSave(ctx, args[1:])
	case "show":
		return c.runPresetShow(args[1:])
	case "delete":
		return c.runPresetDelete(ctx, args[1:])
	case "clone":
		return c.runPresetClone(ctx, args[1:])
	case "use":
		return c.runPresetUse(ctx, args[1:])
	default:
		return fmt.Errorf("unknown preset subcommand: %s. Use: list, save, show, delete, clone, or use", args[0])
	}
}

func (c *Cli) runPresetList(args []string) error {
	fs := flag.NewFlagSet("preset list", flag.ContinueOnError)
	fs.SetOutput(c.io)
	groupKey := fs.String("group", "", "group name or id (default: selected group)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	groups := c.service.Groups()
	group, err := resolveGroup(groups, *groupKey)
	if err != nil {
		return err
	}

	c.io.Printf("=== Presets of %s ===\n", group.Name)
	c.io.Println()

	if len(group.Presets) == 0 {
		c.io.Println("No presets found.")
		c.io.Println()
		c.io.Println("Use 'apisign preset save -name <name> ...' to add one.")
		return nil
	}

	for i, preset := range group.Presets {
		marker := " "
		if group.ID == groups.LastUsedGroupID && preset.ID == groups.LastUsedPresetID {
			marker = "*"
		}
		c.io.Printf("%s %d. %s\n", marker, i+1, preset.Name)
		c.io.Printf("     ID:  %s\n", preset.ID)
		c.io.Printf("     URL: %s\n", preset.Request.URL)
	}
	c.io.Println()
	c.io.Println("* marks the selected preset.")
	return nil
}

// runPresetSave сохраняет пресет. Пресет с тем же именем в группе
// перезаписывается, флаги перекрывают только переданные поля.
func (c *Cli) runPresetSave(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("preset save", flag.ContinueOnError)
	fs.SetOutput(c.io)

	var (
		groupKey  = fs.String("group", "", "group name or id (default: selected group)")
		name      = fs.String("name", "", "preset name (required)")
		urlFlag   = fs.String("url", "", "endpoint URL")
		appKey    = fs.String("appkey", "", "gateway application key")
		password  = fs.String("password", "", "signing secret to store")
		data      = fs.String("data", "", "payload JSON, stored with its base64 form")
		dataB64   = fs.String("data-b64", "", "payload as base64")
		ver       = fs.String("ver", "", "protocol version")
		timestamp = fs.String("timestamp", "", "fixed timestamp yyyyMMddHHmmss")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := validation.ValidateName(*name); err != nil {
		return err
	}

	groups := c.service.Groups()
	group, err := resolveGroup(groups, *groupKey)
	if err != nil {
		return err
	}

	preset := models.PresetItem{Name: *name}
	for i := range group.Presets {
		if group.Presets[i].Name == *name {
			preset = group.Presets[i]
			break
		}
	}

	if *urlFlag != "" {
		if err := validation.ValidateURL(*urlFlag); err != nil {
			return err
		}
		preset.Request.URL = *urlFlag
	}
	if *appKey != "" {
		preset.Request.AppKey = *appKey
	}
	if *password != "" {
		preset.Request.Password = *password
	}
	if *ver != "" {
		preset.Request.Ver = *ver
	}
	if *timestamp != "" {
		if err := validation.ValidateTimestamp(*timestamp); err != nil {
			return err
		}
		preset.Request.Timestamp = *timestamp
	}
	if *data != "" {
		if !codec.IsValidJSON(*data) {
			c.io.Println("Warning: payload is not valid JSON, storing anyway")
		}
		preset.Request.DataRaw = *data
		preset.Request.DataB64 = codec.Encode(*data)
	}
	if *dataB64 != "" {
		raw, decErr := codec.Decode(*dataB64)
		if decErr != nil {
			return fmt.Errorf("invalid base64 payload: %w", decErr)
		}
		preset.Request.DataB64 = *dataB64
		preset.Request.DataRaw = raw
	}

	saved, err := c.service.SavePreset(ctx, group.ID, preset)
	if err != nil {
		return fmt.Errorf("failed to save preset: %w", err)
	}

	c.io.Printf("Saved preset %q (%s) in group %q\n", saved.Name, saved.ID, group.Name)
	return nil
}

func (c *Cli) runPresetShow(args []string) error {
	fs := flag.NewFlagSet("preset show", flag.ContinueOnError)
	fs.SetOutput(c.io)
	groupKey := fs.String("group", "", "group name or id (default: selected group)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	groups := c.service.Groups()
	group, err := resolveGroup(groups, *groupKey)
	if err != nil {
		return err
	}

	preset, err := resolvePreset(groups, group, fs.Arg(0))
	if err != nil {
		return err
	}

	c.io.Printf("Preset:    %s\n", preset.Name)
	c.io.Printf("ID:        %s\n", preset.ID)
	c.io.Printf("Group:     %s\n", group.Name)
	c.io.Printf("Updated:   %s\n", preset.UpdatedAt.Format(time.RFC3339))
	c.io.Println()
	c.printRequest(preset.Request)
	return nil
}

func (c *Cli) runPresetDelete(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("preset delete", flag.ContinueOnError)
	fs.SetOutput(c.io)
	groupKey := fs.String("group", "", "group name or id (default: selected group)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("missing preset name. Usage: apisign preset delete [-group <group>] <preset>")
	}

	groups := c.service.Groups()
	group, err := resolveGroup(groups, *groupKey)
	if err != nil {
		return err
	}

	preset, err := resolvePreset(groups, group, fs.Arg(0))
	if err != nil {
		return err
	}

	if err := c.service.DeletePreset(ctx, group.ID, preset.ID); err != nil {
		return fmt.Errorf("failed to delete preset: %w", err)
	}

	c.io.Printf("Deleted preset %q from group %q\n", preset.Name, group.Name)
	return nil
}

func (c *Cli) runPresetClone(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("preset clone", flag.ContinueOnError)
	fs.SetOutput(c.io)
	groupKey := fs.String("group", "", "group name or id (default: selected group)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("missing preset name. Usage: apisign preset clone [-group <group>] <preset>")
	}

	groups := c.service.Groups()
	group, err := resolveGroup(groups, *groupKey)
	if err != nil {
		return err
	}

	preset, err := resolvePreset(groups, group, fs.Arg(0))
	if err != nil {
		return err
	}

	clone, err := c.service.ClonePreset(ctx, group.ID, preset.ID)
	if err != nil {
		return fmt.Errorf("failed to clone preset: %w", err)
	}

	c.io.Printf("Cloned preset %q to %q (%s)\n", preset.Name, clone.Name, clone.ID)
	return nil
}

func (c *Cli) runPresetUse(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("preset use", flag.ContinueOnError)
	fs.SetOutput(c.io)
	groupKey := fs.String("group", "", "group name or id (default: selected group)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		return fmt.Errorf("missing preset name. Usage: apisign preset use [-group <group>] <preset>")
	}

	groups := c.service.Groups()
	group, err := resolveGroup(groups, *groupKey)
	if err != nil {
		return err
	}

	preset, err := resolvePreset(groups, group, fs.Arg(0))
	if err != nil {
		return err
	}

	if err := c.service.SelectPreset(ctx, group.ID, preset.ID); err != nil {
		return fmt.Errorf("failed to select preset: %w", err)
	}

	c.io.Printf("Selected preset %q in group %q\n", preset.Name, group.Name)
	return nil
}
