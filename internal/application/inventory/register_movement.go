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

// RegisterMovementUseCase agrega movimientos al libro. Valida forma y referencias antes de escribir
// y hace la inserción en una sola transacción.
type RegisterMovementUseCase struct {
	txRunner TxRunner
	log      zerolog.Logger
	now      func() time.Time
}

// NewRegisterMovementUseCase construye el caso de uso.
func NewRegisterMovementUseCase(txRunner TxRunner, log zerolog.Logger) *RegisterMovementUseCase {
	return &RegisterMovementUseCase{
		txRunner: txRunner,
		log:      log,
		now:      time.Now,
	}
}

// MovementInputDTO entrada para registrar un movimiento.
// FromLocationID nil = entrada de stock; ToLocationID nil = salida; Timestamp nil = ahora.
type MovementInputDTO struct {
	ProductID      string
	FromLocationID *string
	ToLocationID   *string
	Quantity       int64
	Timestamp      *time.Time
}

// RecordMovement valida en orden: cantidad, extremos, origen≠destino, existencia del producto
// y de cada ubicación presente. Gana el primer fallo y no se escribe nada.
// Producto y ubicaciones se bloquean en modo compartido hasta el commit, de modo que
// una eliminación concurrente no puede dejar el movimiento huérfano.
func (uc *RegisterMovementUseCase) RecordMovement(ctx context.Context, in MovementInputDTO) (*dto.MovementResponse, error) {
	if err := domaininv.ValidateMovement(in.Quantity, in.FromLocationID, in.ToLocationID); err != nil {
		return nil, err
	}

	ts := uc.now()
	if in.Timestamp != nil && !in.Timestamp.IsZero() {
		ts = *in.Timestamp
	}
	mov := &entity.Movement{
		Timestamp:      ts,
		ProductID:      in.ProductID,
		FromLocationID: in.FromLocationID,
		ToLocationID:   in.ToLocationID,
		Quantity:       in.Quantity,
	}

	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		product, err := repos.Products.GetForShare(ctx, in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return &domain.NotFoundError{Resource: string(entity.KindProduct), ID: in.ProductID}
		}
		for _, locID := range []*string{in.FromLocationID, in.ToLocationID} {
			if locID == nil {
				continue
			}
			loc, err := repos.Locations.GetForShare(ctx, *locID)
			if err != nil {
				return err
			}
			if loc == nil {
				return &domain.NotFoundError{Resource: string(entity.KindLocation), ID: *locID}
			}
		}
		return repos.Movements.Append(ctx, mov)
	})
	if err != nil {
		return nil, domain.WrapStorage("registrar movimiento", err)
	}

	uc.log.Info().
		Int64("movement_id", mov.ID).
		Str("product_id", mov.ProductID).
		Str("from", derefOr(mov.FromLocationID, "-")).
		Str("to", derefOr(mov.ToLocationID, "-")).
		Int64("qty", mov.Quantity).
		Msg("movimiento registrado")

	return toMovementResponse(mov), nil
}

func toMovementResponse(m *entity.Movement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:             m.ID,
		Timestamp:      m.Timestamp,
		ProductID:      m.ProductID,
		FromLocationID: m.FromLocationID,
		ToLocationID:   m.ToLocationID,
		Quantity:       m.Quantity,
	}
}

func derefOr(s *string, fallback string) string {
	if s == nil {
		return fallback
	}
	return *s
}
