package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/osrs-random/internal/errors"
	"github.com/KirkDiggler/osrs-random/internal/orchestrators/picker"
	"github.com/KirkDiggler/osrs-random/internal/orchestrators/update"
)

const (
	menuBoss           = "1"
	menuBossExclusions = "2"
	menuSkill          = "3"
	menuCategories     = "4"
	menuUpdate         = "5"
	menuQuit           = "q"
)

// RunMenu runs the interactive menu reading one line per choice from in.
// It returns nil on quit or end of input.
func (h *Handler) RunMenu(ctx context.Context, in io.Reader) error {
	scanner := bufio.NewScanner(in)

	h.startupNotice(ctx)

	for {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "menu interrupted")
		}

		h.printMenu()
		choice, ok := h.prompt(scanner, "Choice: ")
		if !ok {
			return h.endOfInput(scanner)
		}

		var err error
		switch strings.ToLower(choice) {
		case menuBoss:
			err = h.PickBoss(ctx, nil)
		case menuBossExclusions:
			if err = h.ListCategories(ctx); err != nil {
				break
			}
			line, ok := h.prompt(scanner, "Exclude (numbers or names, separated by spaces or commas): ")
			if !ok {
				return h.endOfInput(scanner)
			}
			err = h.PickBoss(ctx, picker.SplitExclusions(line))
		case menuSkill:
			err = h.PickSkill(ctx)
		case menuCategories:
			err = h.ListCategories(ctx)
		case menuUpdate:
			h.CheckUpdate(ctx)
		case menuQuit, "quit", "exit":
			return nil
		case "":
			continue
		default:
			h.println(h.styles.Error.Render(fmt.Sprintf("Unknown option %q.", choice)))
			continue
		}

		if err != nil {
			slog.Error("Menu action failed", "choice", choice, "error", err)
			h.println(h.styles.Error.Render("Error: " + errors.GetMessage(err)))
		}
		h.println("")
	}
}

// startupNotice mentions a newer release once, without blocking the menu on failure
func (h *Handler) startupNotice(ctx context.Context) {
	if h.checker == nil {
		return
	}

	output := h.checker.Check(ctx, &update.CheckInput{CurrentVersion: h.version})
	if output != nil && output.Status == update.StatusUpdateAvailable {
		h.println(h.describeUpdate(output))
		h.println("")
	}
}

func (h *Handler) printMenu() {
	h.println(h.styles.Title.Render("OSRS Random"))
	h.println("  1) Random boss")
	h.println("  2) Random boss with exclusions")
	h.println("  3) Random skill")
	h.println("  4) List boss categories")
	h.println("  5) Check for updates")
	h.println("  q) Quit")
}

func (h *Handler) prompt(scanner *bufio.Scanner, label string) (string, bool) {
	_, _ = fmt.Fprint(h.out, label)
	if !scanner.Scan() {
		return "", false
	}
	return strings.TrimSpace(scanner.Text()), true
}

func (h *Handler) endOfInput(scanner *bufio.Scanner) error {
	h.println("")
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "failed to read input")
	}
	return nil
}
