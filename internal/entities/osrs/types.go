// Package osrs holds the static Old School RuneScape boss and skill tables
package osrs

import (
	"slices"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Category is a named group of boss encounters
type Category struct {
	Name   string
	Bosses []string
}

// GetID returns the category name
func (c Category) GetID() string {
	return c.Name
}

// GetType returns the entity type for rpg-toolkit
func (c Category) GetType() string {
	return EntityTypeCategory
}

// HasBoss reports whether the boss belongs to this category
func (c Category) HasBoss(name string) bool {
	return slices.Contains(c.Bosses, name)
}

func (c Category) clone() Category {
	return Category{Name: c.Name, Bosses: slices.Clone(c.Bosses)}
}

// Boss is a single encounter within a category
type Boss struct {
	Name     string
	Category string
}

// GetID returns the boss name
func (b Boss) GetID() string {
	return b.Name
}

// GetType returns the entity type for rpg-toolkit
func (b Boss) GetType() string {
	return EntityTypeBoss
}

// Skill is a trainable skill and the group it was drawn from
type Skill struct {
	Name  string
	Group string
}

// GetID returns the skill name
func (s Skill) GetID() string {
	return s.Name
}

// GetType returns the entity type for rpg-toolkit
func (s Skill) GetType() string {
	return EntityTypeSkill
}

// SkillGroup partitions the skill list for two-stage draws
type SkillGroup struct {
	Name   string
	Skills []string
}

var (
	_ core.Entity = Category{}
	_ core.Entity = Boss{}
	_ core.Entity = Skill{}
)
