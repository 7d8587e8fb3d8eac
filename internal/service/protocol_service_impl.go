package service

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	"github.com/alexanderramin/herdsync/internal/catalog"
	"github.com/alexanderramin/herdsync/internal/db"
	"github.com/alexanderramin/herdsync/internal/domain"
	"github.com/alexanderramin/herdsync/internal/repository"
	"github.com/google/uuid"
)

type protocolService struct {
	protocols repository.ProtocolRepo
	catalog   *catalog.Catalog
	uow       db.UnitOfWork
	observer  UseCaseObserver
}

// NewProtocolService serves protocols from storage. cat holds the protocols
// SyncCatalog writes through; a nil catalog means the predefined set only.
func NewProtocolService(
	protocols repository.ProtocolRepo,
	cat *catalog.Catalog,
	uow db.UnitOfWork,
	observers ...UseCaseObserver,
) ProtocolService {
	if cat == nil {
		cat = catalog.Default()
	}
	return &protocolService{
		protocols: protocols,
		catalog:   cat,
		uow:       uow,
		observer:  useCaseObserverOrNoop(observers),
	}
}

func (s *protocolService) SyncCatalog(ctx context.Context) (err error) {
	fields := map[string]any{"protocols": s.catalog.Len()}
	done := track(ctx, s.observer, "sync-catalog", fields)
	defer func() { done(err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProtocols := repository.NewSQLProtocolRepo(tx)
		for _, p := range s.catalog.List() {
			if err := txProtocols.Save(ctx, p); err != nil {
				return fmt.Errorf("syncing protocol %s: %w", p.ID, err)
			}
		}
		return nil
	})
}

func (s *protocolService) List(ctx context.Context) ([]*domain.Protocol, error) {
	return s.protocols.List(ctx)
}

func (s *protocolService) GetByID(ctx context.Context, id string) (*domain.Protocol, error) {
	return s.protocols.GetByID(ctx, id)
}

// CreateCustom stores a user-defined protocol. Step ids default to their
// 1-based position.
func (s *protocolService) CreateCustom(ctx context.Context, p *domain.Protocol) (err error) {
	done := track(ctx, s.observer, "create-protocol", map[string]any{"name": p.Name, "steps": len(p.Steps)})
	defer func() { done(err) }()

	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	for i := range p.Steps {
		if p.Steps[i].ID == "" {
			p.Steps[i].ID = strconv.Itoa(i + 1)
		}
	}
	p.IsCustom = true
	p.HasWorkforceSettings = p.HasStepRatios()
	if err = catalog.Validate(p); err != nil {
		return err
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProtocols := repository.NewSQLProtocolRepo(tx)
		if _, err := txProtocols.GetByID(ctx, p.ID); err == nil {
			return domain.NewValidationError(fmt.Sprintf("protocol %q", p.ID), []string{"id already exists"})
		} else if !isNotFound(err) {
			return err
		}
		return txProtocols.Save(ctx, p)
	})
}

// ConfigureWorkforce replaces the capacity ratios of the named steps of a
// custom protocol. Steps not in ratios keep their current values.
func (s *protocolService) ConfigureWorkforce(ctx context.Context, id string, ratios map[string]domain.CapacityRatio) (protocol *domain.Protocol, err error) {
	done := track(ctx, s.observer, "configure-workforce", map[string]any{"protocol": id, "steps": len(ratios)})
	defer func() { done(err) }()

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProtocols := repository.NewSQLProtocolRepo(tx)
		p, err := txProtocols.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !p.IsCustom {
			return readOnlyProtocolError(p.ID)
		}

		var unknown []string
		for stepID := range ratios {
			if _, ok := p.Step(stepID); !ok {
				unknown = append(unknown, fmt.Sprintf("unknown step %q", stepID))
			}
		}
		if len(unknown) > 0 {
			sort.Strings(unknown)
			return domain.NewValidationError(fmt.Sprintf("protocol %q", p.ID), unknown)
		}

		for i := range p.Steps {
			if r, ok := ratios[p.Steps[i].ID]; ok {
				p.Steps[i].Ratios = r
			}
		}
		p.HasWorkforceSettings = p.HasStepRatios()
		if err := catalog.Validate(p); err != nil {
			return err
		}
		if err := txProtocols.Save(ctx, p); err != nil {
			return err
		}
		protocol = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return protocol, nil
}

func (s *protocolService) Delete(ctx context.Context, id string) (err error) {
	done := track(ctx, s.observer, "delete-protocol", map[string]any{"protocol": id})
	defer func() { done(err) }()

	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txProtocols := repository.NewSQLProtocolRepo(tx)
		p, err := txProtocols.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if !p.IsCustom {
			return readOnlyProtocolError(p.ID)
		}
		return txProtocols.Delete(ctx, id)
	})
}

func readOnlyProtocolError(id string) error {
	return domain.NewValidationError(fmt.Sprintf("protocol %q", id), []string{"predefined protocols are read-only"})
}
