// Package picker draws random bosses and skills from the static catalog
package picker

//go:generate mockgen -destination=mock/mock_service.go -package=pickermock github.com/KirkDiggler/osrs-random/internal/orchestrators/picker Service

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/osrs-random/internal/entities/osrs"
	"github.com/KirkDiggler/osrs-random/internal/errors"
	"github.com/KirkDiggler/osrs-random/internal/pkg/idgen"
)

const reasonAllExcluded = "all_excluded"

// Service defines the interface for random picks
type Service interface {
	// PickBoss draws a category uniformly from the non-excluded ones, then a
	// boss uniformly within it. Small categories are not penalised.
	PickBoss(ctx context.Context, input *PickBossInput) (*PickBossOutput, error)

	// PickSkill draws a skill according to the configured SkillPolicy
	PickSkill(ctx context.Context, input *PickSkillInput) (*PickSkillOutput, error)

	// ListCategories returns the numbered category listing used for exclusions
	ListCategories(ctx context.Context, input *ListCategoriesInput) (*ListCategoriesOutput, error)
}

// Config holds the dependencies for the picker orchestrator
type Config struct {
	Catalog     *osrs.Catalog
	Roller      dice.Roller
	IDGenerator idgen.Generator

	// EventBus is optional; picks are published to it when set
	EventBus events.EventBus

	// SkillPolicy defaults to SkillPolicyGrouped
	SkillPolicy SkillPolicy
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.SkillPolicy != "" {
		errors.ValidateEnum("SkillPolicy", string(c.SkillPolicy), SkillPolicies(), vb)
	}

	return vb.Build()
}

type orchestrator struct {
	catalog     *osrs.Catalog
	roller      dice.Roller
	idGen       idgen.Generator
	eventBus    events.EventBus
	skillPolicy SkillPolicy
}

// New creates a new picker orchestrator with the provided dependencies
func New(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	policy := cfg.SkillPolicy
	if policy == "" {
		policy = SkillPolicyGrouped
	}

	return &orchestrator{
		catalog:     cfg.Catalog,
		roller:      cfg.Roller,
		idGen:       cfg.IDGenerator,
		eventBus:    cfg.EventBus,
		skillPolicy: policy,
	}, nil
}

// IsAllExcluded reports whether err means every category was excluded
func IsAllExcluded(err error) bool {
	return errors.IsFailedPrecondition(err) && errors.HasMeta(err, "reason", reasonAllExcluded)
}

// PickBoss picks a boss from the categories left after exclusions
func (o *orchestrator) PickBoss(ctx context.Context, input *PickBossInput) (*PickBossOutput, error) {
	if input == nil {
		input = &PickBossInput{}
	}

	excluded := ResolveExclusions(o.catalog, input.Exclusions)
	skip := make(map[string]bool, len(excluded))
	for _, name := range excluded {
		skip[name] = true
	}

	candidates := make([]osrs.Category, 0, o.catalog.Len())
	for _, category := range o.catalog.List() {
		if !skip[category.Name] {
			candidates = append(candidates, category)
		}
	}

	if len(candidates) == 0 {
		return nil, errors.FailedPrecondition("every boss category is excluded").
			WithMeta("reason", reasonAllExcluded).
			WithMeta("excluded", len(excluded))
	}

	category, err := choose(o.roller, candidates)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick category")
	}

	boss, err := choose(o.roller, category.Bosses)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to pick boss from %s", category.Name)
	}

	output := &PickBossOutput{
		DrawID:     o.idGen.Generate(),
		Category:   category.Name,
		Boss:       boss,
		Excluded:   excluded,
		Candidates: len(candidates),
	}

	slog.Debug("Boss picked",
		"draw_id", output.DrawID,
		"category", output.Category,
		"boss", output.Boss,
		"excluded", excluded,
		"candidates", output.Candidates,
	)

	o.publish(ctx, EventBossPicked, category, osrs.Boss{Name: boss, Category: category.Name})

	return output, nil
}

// PickSkill picks a skill to train
func (o *orchestrator) PickSkill(ctx context.Context, _ *PickSkillInput) (*PickSkillOutput, error) {
	var skill osrs.Skill

	switch o.skillPolicy {
	case SkillPolicyFlat:
		name, err := choose(o.roller, osrs.Skills())
		if err != nil {
			return nil, errors.Wrap(err, "failed to pick skill")
		}
		skill = osrs.Skill{Name: name}
	default:
		group, err := choose(o.roller, osrs.SkillGroups())
		if err != nil {
			return nil, errors.Wrap(err, "failed to pick skill group")
		}
		name, err := choose(o.roller, group.Skills)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to pick skill from %s", group.Name)
		}
		skill = osrs.Skill{Name: name, Group: group.Name}
	}

	output := &PickSkillOutput{
		DrawID: o.idGen.Generate(),
		Skill:  skill.Name,
		Group:  skill.Group,
	}

	slog.Debug("Skill picked",
		"draw_id", output.DrawID,
		"skill", output.Skill,
		"group", output.Group,
		"policy", o.skillPolicy,
	)

	o.publish(ctx, EventSkillPicked, nil, skill)

	return output, nil
}

// ListCategories returns the categories in display order
func (o *orchestrator) ListCategories(_ context.Context, _ *ListCategoriesInput) (*ListCategoriesOutput, error) {
	categories := o.catalog.List()
	listings := make([]CategoryListing, len(categories))
	for i, category := range categories {
		listings[i] = CategoryListing{
			Index:     i + 1,
			Name:      category.Name,
			BossCount: len(category.Bosses),
		}
	}

	return &ListCategoriesOutput{Categories: listings}, nil
}

// publish sends a pick event when a bus is configured. Failures are logged only.
func (o *orchestrator) publish(ctx context.Context, eventType string, source, target core.Entity) {
	if o.eventBus == nil {
		return
	}

	if err := o.eventBus.Publish(ctx, events.NewGameEvent(eventType, source, target)); err != nil {
		slog.Warn("Failed to publish pick event",
			"event_type", eventType,
			"error", err,
		)
	}
}

// choose returns a uniformly random element of items using a single die roll
func choose[T any](roller dice.Roller, items []T) (T, error) {
	var zero T
	if len(items) == 0 {
		return zero, errors.Internal("nothing to choose from")
	}

	roll, err := roller.Roll(len(items))
	if err != nil {
		return zero, errors.Wrap(err, "dice roll failed")
	}
	if roll < 1 || roll > len(items) {
		return zero, errors.Internalf("roll %d outside 1..%d", roll, len(items))
	}

	return items[roll-1], nil
}
