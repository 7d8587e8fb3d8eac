package catalog

import (
	"fmt"
	"sort"

	"github.com/alexanderramin/herdsync/internal/domain"
)

// Catalog holds the synchronization methods available for scheduling.
// Protocols handed out are clones; mutating them does not affect the catalog.
type Catalog struct {
	byID  map[string]*domain.Protocol
	order []string
}

// New builds a catalog from the given protocols. Invalid or duplicate
// protocols are rejected.
func New(protocols ...*domain.Protocol) (*Catalog, error) {
	c := &Catalog{byID: make(map[string]*domain.Protocol)}
	for _, p := range protocols {
		if err := c.Register(p); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Default returns a catalog holding only the predefined protocols.
func Default() *Catalog {
	c, err := New(Predefined()...)
	if err != nil {
		panic(fmt.Sprintf("catalog: predefined protocols invalid: %v", err))
	}
	return c
}

// Register validates p and adds it to the catalog.
func (c *Catalog) Register(p *domain.Protocol) error {
	if err := Validate(p); err != nil {
		return err
	}
	if p.ID == "" {
		return domain.NewValidationError("protocol", []string{"id is required"})
	}
	if _, exists := c.byID[p.ID]; exists {
		return domain.NewValidationError(fmt.Sprintf("protocol %q", p.ID), []string{"id already registered"})
	}
	c.byID[p.ID] = p.Clone()
	c.order = append(c.order, p.ID)
	return nil
}

// Get returns the protocol with the given id.
func (c *Catalog) Get(id string) (*domain.Protocol, error) {
	p, ok := c.byID[id]
	if !ok {
		return nil, &domain.NotFoundError{Kind: "protocol", ID: id}
	}
	return p.Clone(), nil
}

// List returns predefined protocols in registration order followed by custom
// protocols sorted by name.
func (c *Catalog) List() []*domain.Protocol {
	var builtin, custom []*domain.Protocol
	for _, id := range c.order {
		p := c.byID[id]
		if p.IsCustom {
			custom = append(custom, p.Clone())
		} else {
			builtin = append(builtin, p.Clone())
		}
	}
	sort.SliceStable(custom, func(i, j int) bool { return custom[i].Name < custom[j].Name })
	return append(builtin, custom...)
}

// Len returns the number of registered protocols.
func (c *Catalog) Len() int { return len(c.order) }
