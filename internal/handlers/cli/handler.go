// Package cli renders picker and update-check results for the terminal
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/osrs-random/internal/errors"
	"github.com/KirkDiggler/osrs-random/internal/orchestrators/picker"
	"github.com/KirkDiggler/osrs-random/internal/orchestrators/update"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	Picker picker.Service

	// Checker is optional; update checks are skipped without it
	Checker update.Checker

	Out     io.Writer
	Styles  *Styles
	Version string
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	vb := errors.NewValidationBuilder()
	if c.Picker == nil {
		vb.RequiredField("Picker")
	}
	if c.Out == nil {
		vb.RequiredField("Out")
	}
	return vb.Build()
}

// Handler turns terminal commands into picker calls and prints the results
type Handler struct {
	picker  picker.Service
	checker update.Checker
	out     io.Writer
	styles  *Styles
	version string
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	styles := cfg.Styles
	if styles == nil {
		styles = NewStyles(cfg.Out, true)
	}

	return &Handler{
		picker:  cfg.Picker,
		checker: cfg.Checker,
		out:     cfg.Out,
		styles:  styles,
		version: cfg.Version,
	}, nil
}

// PickBoss draws a boss and prints it. Excluding every category is reported
// to the user, not returned as an error.
func (h *Handler) PickBoss(ctx context.Context, exclusions []string) error {
	output, err := h.picker.PickBoss(ctx, &picker.PickBossInput{Exclusions: exclusions})
	if err != nil {
		if picker.IsAllExcluded(err) {
			h.println(h.styles.Notice.Render("No bosses available: every category is excluded."))
			return nil
		}
		return errors.Wrap(err, "failed to pick boss")
	}

	if len(output.Excluded) > 0 {
		h.println(h.styles.Muted.Render("Excluding: " + strings.Join(output.Excluded, ", ")))
	}
	h.println(h.styles.Label.Render("Category: ") + h.styles.Value.Render(output.Category))
	h.println(h.styles.Label.Render("Randomly selected boss: ") + h.styles.Value.Render(output.Boss))

	return nil
}

// PickSkill draws a skill and prints it
func (h *Handler) PickSkill(ctx context.Context) error {
	output, err := h.picker.PickSkill(ctx, &picker.PickSkillInput{})
	if err != nil {
		return errors.Wrap(err, "failed to pick skill")
	}

	line := h.styles.Label.Render("Randomly selected skill: ") + h.styles.Value.Render(output.Skill)
	if output.Group != "" {
		line += h.styles.Muted.Render(fmt.Sprintf(" (%s)", output.Group))
	}
	h.println(line)

	return nil
}

// ListCategories prints the numbered categories accepted by exclusions
func (h *Handler) ListCategories(ctx context.Context) error {
	output, err := h.picker.ListCategories(ctx, &picker.ListCategoriesInput{})
	if err != nil {
		return errors.Wrap(err, "failed to list categories")
	}

	h.println(h.styles.Title.Render("Boss categories"))
	for _, category := range output.Categories {
		h.println(fmt.Sprintf("  %d) %s %s",
			category.Index,
			category.Name,
			h.styles.Muted.Render(fmt.Sprintf("[%d bosses]", category.BossCount)),
		))
	}

	return nil
}

// CheckUpdate prints one informational line about the latest release
func (h *Handler) CheckUpdate(ctx context.Context) {
	if h.checker == nil {
		h.println(h.styles.Muted.Render("Update checks are disabled."))
		return
	}

	output := h.checker.Check(ctx, &update.CheckInput{CurrentVersion: h.version})
	h.println(h.describeUpdate(output))
}

// Version prints the build version
func (h *Handler) Version() {
	version := h.version
	if version == "" {
		version = update.DevelopmentVersion
	}
	h.println("osrs-random " + version)
}

func (h *Handler) describeUpdate(output *update.CheckOutput) string {
	switch {
	case output == nil:
		return h.styles.Muted.Render("Update check unavailable.")
	case output.Status == update.StatusCheckFailed:
		return h.styles.Muted.Render("Could not check for updates: " + output.Reason)
	case output.Status == update.StatusUpdateAvailable:
		line := fmt.Sprintf("Update available: v%s -> v%s", strings.TrimPrefix(output.Current, "v"), output.Latest)
		if output.ReleaseURL != "" {
			line += " " + output.ReleaseURL
		}
		return h.styles.Notice.Render(line)
	case output.Development:
		return h.styles.Muted.Render(fmt.Sprintf("Development build. Latest release is v%s.", output.Latest))
	default:
		return h.styles.Value.Render(fmt.Sprintf("Up to date (v%s).", output.Latest))
	}
}

func (h *Handler) println(line string) {
	_, _ = fmt.Fprintln(h.out, line)
}
