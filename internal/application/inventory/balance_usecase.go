package inventory

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	domaininv "github.com/jhoicas/stock-ledger/internal/domain/inventory"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// Límites del listado de movimientos recientes.
const (
	DefaultRecentLimit = 20
	MaxRecentLimit     = 500
)

// BalanceUseCase lado de lectura: saldos derivados del libro y movimientos recientes.
// No mantiene estado: cada llamada recalcula desde el almacenamiento.
type BalanceUseCase struct {
	txRunner    TxRunner
	log         zerolog.Logger
	recentLimit int
	now         func() time.Time
}

// NewBalanceUseCase construye el caso de uso. recentLimit <= 0 usa DefaultRecentLimit.
func NewBalanceUseCase(txRunner TxRunner, log zerolog.Logger, recentLimit int) *BalanceUseCase {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &BalanceUseCase{
		txRunner:    txRunner,
		log:         log,
		recentLimit: recentLimit,
		now:         time.Now,
	}
}

// ComputeBalances devuelve un StockBalance por cada par (producto, ubicación) con saldo > 0,
// ordenado por nombre de producto y luego de ubicación.
func (uc *BalanceUseCase) ComputeBalances(ctx context.Context) ([]entity.StockBalance, error) {
	report, err := uc.fold(ctx)
	if err != nil {
		return nil, err
	}
	return report.Balances, nil
}

// Report igual que ComputeBalances pero incluye los pares con saldo negativo como anomalías.
func (uc *BalanceUseCase) Report(ctx context.Context) (*dto.StockReportResponse, error) {
	report, err := uc.fold(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.StockReportResponse{
		GeneratedAt: uc.now(),
		Balances:    toBalanceResponses(report.Balances),
		Anomalies:   toBalanceResponses(report.Negative),
	}, nil
}

// ListRecentMovements devuelve los últimos movimientos con nombres resueltos, más recientes primero.
// limit <= 0 usa el límite configurado; el máximo es MaxRecentLimit.
func (uc *BalanceUseCase) ListRecentMovements(ctx context.Context, limit int) (*dto.MovementListResponse, error) {
	if limit <= 0 {
		limit = uc.recentLimit
	}
	if limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}
	var views []*entity.MovementView
	err := uc.txRunner.RunReadOnly(ctx, func(repos repository.Repos) error {
		var err error
		views, err = repos.Movements.ListRecent(ctx, limit)
		return err
	})
	if err != nil {
		return nil, domain.WrapStorage("listar movimientos", err)
	}
	items := make([]dto.MovementViewResponse, 0, len(views))
	for _, v := range views {
		items = append(items, dto.MovementViewResponse{
			ID:               v.ID,
			Timestamp:        v.Timestamp,
			ProductID:        v.ProductID,
			ProductName:      v.ProductName,
			FromLocationID:   v.FromLocationID,
			FromLocationName: nonEmpty(v.FromLocationName, "—"),
			ToLocationID:     v.ToLocationID,
			ToLocationName:   nonEmpty(v.ToLocationName, "—"),
			Quantity:         v.Quantity,
		})
	}
	return &dto.MovementListResponse{Items: items, Limit: limit}, nil
}

// fold lee catálogo y libro de la misma instantánea y aplica FoldBalances.
func (uc *BalanceUseCase) fold(ctx context.Context) (domaininv.BalanceReport, error) {
	var (
		products, locations []*entity.Entity
		ledger              []*entity.Movement
	)
	err := uc.txRunner.RunReadOnly(ctx, func(repos repository.Repos) error {
		var err error
		if products, err = repos.Products.List(ctx); err != nil {
			return err
		}
		if locations, err = repos.Locations.List(ctx); err != nil {
			return err
		}
		ledger, err = repos.Movements.ListAll(ctx)
		return err
	})
	if err != nil {
		return domaininv.BalanceReport{}, domain.WrapStorage("calcular saldos", err)
	}

	report := domaininv.FoldBalances(ledger, domaininv.NameIndex(products), domaininv.NameIndex(locations))
	for _, n := range report.Negative {
		uc.log.Warn().
			Str("product_id", n.ProductID).
			Str("location_id", n.LocationID).
			Int64("qty", n.Quantity).
			Msg("saldo negativo en el libro de movimientos")
	}
	return report, nil
}

func toBalanceResponses(list []entity.StockBalance) []dto.StockBalanceResponse {
	out := make([]dto.StockBalanceResponse, 0, len(list))
	for _, b := range list {
		out = append(out, dto.StockBalanceResponse{
			ProductID:    b.ProductID,
			ProductName:  b.ProductName,
			LocationID:   b.LocationID,
			LocationName: b.LocationName,
			Quantity:     b.Quantity,
		})
	}
	return out
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
