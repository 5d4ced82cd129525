// Package cli реализует консольные команды apisign: отправку подписанных
// запросов, управление группами и пресетами, историю и экспорт/импорт.
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/apisign/internal/config"
	"github.com/iudanet/apisign/internal/iocli"
	"github.com/iudanet/apisign/internal/models"
	"github.com/iudanet/apisign/internal/service"
	"github.com/iudanet/apisign/internal/sign"
)

type Cli struct {
	io      iocli.IO
	service service.Service
	signer  *sign.Signer
	cfg     *config.Config
}

func New(io iocli.IO, svc service.Service, signer *sign.Signer, cfg *config.Config) *Cli {
	return &Cli{
		io:      io,
		service: svc,
		signer:  signer,
		cfg:     cfg,
	}
}

// Run выполняет команду. Ошибка уходит вызывающему: main печатает ее
// в stderr и завершает процесс с кодом 1.
func (c *Cli) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "send":
		return c.runSend(ctx, args)
	case "group":
		return c.runGroup(ctx, args)
	case "preset":
		return c.runPreset(ctx, args)
	case "history":
		return c.runHistory(ctx, args)
	case "export":
		return c.runExport(args)
	case "import":
		return c.runImport(ctx, args)
	case "status":
		return c.runStatus()
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("unknown command: %s", command)
	}
}

func (c *Cli) PrintUsage() {
	c.io.Println("apisign - build, sign and send multipart requests")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  apisign [OPTIONS] COMMAND [ARGS]")
	c.io.Println()
	c.io.Println("Options:")
	c.io.Println("  -version              Show version information")
	c.io.Println("  -db PATH              Path to local database (default: ~/.apisign/apisign.db)")
	c.io.Println("  -hashd URL            hashd daemon URL (default: none, use local md5)")
	c.io.Println("  -timeout MS           Default send timeout in milliseconds (default: 30000)")
	c.io.Println("  -log-level LEVEL      Log level: debug, info, warn, error (default: info)")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  send                  Sign and send a request (active preset or -url)")
	c.io.Println("  group <subcommand>    Manage groups: list, create, rename, delete, clone")
	c.io.Println("  preset <subcommand>   Manage presets: list, save, show, delete, clone, use")
	c.io.Println("  history <subcommand>  Browse past executions: list, show, clear")
	c.io.Println("  export <file>         Write groups and history to a JSON file")
	c.io.Println("  import [-yes] <file>  Replace groups and history from a JSON file")
	c.io.Println("  status                Show database path, counts and selection")
	c.io.Println("  help                  Show this help")
	c.io.Println()
	c.io.Println("Signing secret priority (highest to lowest):")
	c.io.Println("  1. -password flag")
	c.io.Println("  2. -ask-password interactive prompt")
	c.io.Println("  3. Secret stored in the preset")
	c.io.Println("  4. APISIGN_PASSWORD environment variable")
	c.io.Println()
	c.io.Println("Examples:")
	c.io.Println("  apisign group create Payments")
	c.io.Println(`  apisign preset save -name checkout -url https://gw.example.com/api -appkey demo -data '{"order":1}'`)
	c.io.Println("  apisign send")
	c.io.Println(`  apisign send -url https://gw.example.com/api -appkey demo -data '{"order":1}' -ask-password`)
	c.io.Println("  apisign send -preset checkout -timestamp 20240115093000")
	c.io.Println("  apisign history list -n 10")
	c.io.Println("  apisign export backup.json")
}

// resolveGroup находит группу по имени или id. Пустой ключ означает
// текущую выбранную группу.
func resolveGroup(groups models.StorageGroups, key string) (models.GroupItem, error) {
	if key == "" {
		key = groups.LastUsedGroupID
		if key == "" {
			return models.GroupItem{}, fmt.Errorf("no group is selected, pass -group")
		}
	}
	for i := range groups.Groups {
		if groups.Groups[i].Name == key || groups.Groups[i].ID == key {
			return groups.Groups[i], nil
		}
	}
	return models.GroupItem{}, fmt.Errorf("group %q not found", key)
}

// resolvePreset находит пресет группы по имени или id. Пустой ключ означает
// текущий выбранный пресет, если он принадлежит этой группе.
func resolvePreset(groups models.StorageGroups, group models.GroupItem, key string) (models.PresetItem, error) {
	if key == "" {
		if group.ID != groups.LastUsedGroupID || groups.LastUsedPresetID == "" {
			return models.PresetItem{}, fmt.Errorf("no preset is selected in group %q, pass a preset name", group.Name)
		}
		key = groups.LastUsedPresetID
	}
	for i := range group.Presets {
		if group.Presets[i].Name == key || group.Presets[i].ID == key {
			return group.Presets[i], nil
		}
	}
	return models.PresetItem{}, fmt.Errorf("preset %q not found in group %q", key, group.Name)
}

// printRequest печатает параметры запроса, секрет маскируется
func (c *Cli) printRequest(req models.PresetRequest) {
	c.io.Printf("URL:       %s\n", req.URL)
	c.io.Printf("AppKey:    %s\n", req.AppKey)
	c.io.Printf("Ver:       %s\n", req.Ver)
	if req.Timestamp != "" {
		c.io.Printf("Timestamp: %s (fixed)\n", req.Timestamp)
	} else {
		c.io.Println("Timestamp: (generated at send)")
	}
	c.io.Printf("Password:  %s\n", maskSecret(req.Password))
	c.io.Printf("Data:      %s\n", req.DataRaw)
	c.io.Printf("DataB64:   %s\n", req.DataB64)
}

// maskSecret скрывает секрет, не раскрывая даже его длину.
// Полное значение доступно через export.
func maskSecret(s string) string {
	if s == "" {
		return "(not set)"
	}
	return "********"
}

// joinName склеивает позиционные аргументы в одно имя,
// чтобы 'group create My Group' работал без кавычек
func joinName(args []string) string {
	return strings.TrimSpace(strings.Join(args, " "))
}
