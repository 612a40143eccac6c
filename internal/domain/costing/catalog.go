package costing

import (
	"fmt"

	"hyperion_estimating/internal/domain/entities"
)

// Catalog is an immutable indexed view over components and quality tiers.
// It is built once from fetched records and shared read-only by every
// computation; it never issues queries itself.

type Catalog struct {
	components map[string]entities.Component
	tiers      map[string]entities.QualityTier
	tierIDs    map[string][]string
}

// NewCatalog indexes the supplied records. It rejects duplicate ids, tiers
// owned by no known component, and tiers with a non-positive unit cost, so
// downstream computations can treat any catalog hit as well formed.
func NewCatalog(components []entities.Component, tiers []entities.QualityTier) (*Catalog, error) {
	c := &Catalog{
		components: make(map[string]entities.Component, len(components)),
		tiers:      make(map[string]entities.QualityTier, len(tiers)),
		tierIDs:    make(map[string][]string),
	}
	for _, comp := range components {
		if _, ok := c.components[comp.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateComponent, comp.ID)
		}
		c.components[comp.ID] = comp
	}
	for _, tier := range tiers {
		if _, ok := c.tiers[tier.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateTier, tier.ID)
		}
		if _, ok := c.components[tier.ComponentID]; !ok {
			return nil, fmt.Errorf("%w: tier %s -> component %s", ErrOrphanTier, tier.ID, tier.ComponentID)
		}
		if tier.UnitCost <= 0 {
			return nil, fmt.Errorf("%w: tier %s", ErrNonPositiveUnitCost, tier.ID)
		}
		c.tiers[tier.ID] = tier
		c.tierIDs[tier.ComponentID] = append(c.tierIDs[tier.ComponentID], tier.ID)
	}
	return c, nil
}

// Component returns the component with the given id.
func (c *Catalog) Component(id string) (entities.Component, bool) {
	comp, ok := c.components[id]
	return comp, ok
}

// Tier returns the quality tier with the given id.
func (c *Catalog) Tier(id string) (entities.QualityTier, bool) {
	t, ok := c.tiers[id]
	return t, ok
}

// TiersFor returns the quality tiers owned by the given component, in
// insertion order.
func (c *Catalog) TiersFor(componentID string) []entities.QualityTier {
	ids := c.tierIDs[componentID]
	out := make([]entities.QualityTier, 0, len(ids))
	for _, id := range ids {
		out = append(out, c.tiers[id])
	}
	return out
}

// category resolves a component's reporting category, falling back to
// general for genuinely uncategorized components. Categories are explicit
// data; nothing is ever inferred from names.
func (c *Catalog) category(comp entities.Component) entities.Category {
	if comp.Category == "" {
		return entities.CategoryGeneral
	}
	return comp.Category
}
