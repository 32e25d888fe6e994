package inventory

import (
	"context"

	"github.com/jhoicas/stock-ledger/internal/application/dto"
	domaininv "github.com/jhoicas/stock-ledger/internal/domain/inventory"
)

// RecordMovementFromRequest adapta el request HTTP al caso de uso RecordMovement(ctx, MovementInputDTO).
// Los IDs de ubicación vacíos se interpretan como extremo ausente.
func (uc *RegisterMovementUseCase) RecordMovementFromRequest(ctx context.Context, in dto.RecordMovementRequest) (*dto.MovementResponse, error) {
	input := MovementInputDTO{
		ProductID:      in.ProductID,
		FromLocationID: domaininv.OptionalID(in.FromLocationID),
		ToLocationID:   domaininv.OptionalID(in.ToLocationID),
		Quantity:       in.Quantity,
		Timestamp:      in.Timestamp,
	}
	return uc.RecordMovement(ctx, input)
}
