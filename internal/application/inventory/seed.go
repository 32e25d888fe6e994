package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/jhoicas/stock-ledger/internal/domain"
	"github.com/jhoicas/stock-ledger/internal/domain/entity"
	"github.com/jhoicas/stock-ledger/internal/domain/repository"
)

// SeedUseCase carga el dataset de demostración (3 productos, 3 ubicaciones, 20 movimientos).
// Solo actúa sobre un almacenamiento vacío.
type SeedUseCase struct {
	txRunner TxRunner
	log      zerolog.Logger
	now      func() time.Time
}

// NewSeedUseCase construye el caso de uso de carga inicial.
func NewSeedUseCase(txRunner TxRunner, log zerolog.Logger) *SeedUseCase {
	return &SeedUseCase{txRunner: txRunner, log: log, now: time.Now}
}

type seedMovement struct {
	product  string
	from, to string // nombre de ubicación; "" = sin extremo
	qty      int64
	offset   time.Duration // antigüedad respecto a now
}

var (
	seedProducts  = []string{"Laptop", "Mouse", "Keyboard"}
	seedLocations = []string{"Location X", "Location Y", "Location Z"}
)

func seedMovements() []seedMovement {
	list := []seedMovement{
		{"Laptop", "", "Location X", 50, 100 * time.Second},
		{"Mouse", "", "Location X", 100, 90 * time.Second},
		{"Keyboard", "", "Location Y", 15, 80 * time.Second},
	}
	for i := 0; i < 5; i++ {
		list = append(list, seedMovement{"Laptop", "Location X", "Location Y", 5, time.Duration(70-i) * time.Second})
	}
	for i := 0; i < 5; i++ {
		list = append(list, seedMovement{"Mouse", "Location X", "Location Z", 10, time.Duration(60-i) * time.Second})
	}
	for i := 0; i < 5; i++ {
		list = append(list, seedMovement{"Keyboard", "Location Y", "", 2, time.Duration(50-i) * time.Second})
	}
	return append(list,
		seedMovement{"Mouse", "", "Location X", 50, 40 * time.Second},
		seedMovement{"Laptop", "", "Location X", 10, 30 * time.Second},
	)
}

// Run carga el dataset en una sola transacción. Devuelve false sin tocar nada
// si ya existe algún producto, ubicación o movimiento.
func (uc *SeedUseCase) Run(ctx context.Context) (bool, error) {
	seeded := false
	err := uc.txRunner.Run(ctx, func(repos repository.Repos) error {
		empty, err := isEmpty(ctx, repos)
		if err != nil || !empty {
			return err
		}

		now := uc.now()
		ids := map[entity.Kind]map[string]string{
			entity.KindProduct:  {},
			entity.KindLocation: {},
		}
		create := func(kind entity.Kind, names []string) error {
			for _, name := range names {
				e := &entity.Entity{Kind: kind, ID: uuid.New().String(), Name: name, CreatedAt: now, UpdatedAt: now}
				if err := repos.Catalog(kind).Create(ctx, e); err != nil {
					return err
				}
				ids[kind][name] = e.ID
			}
			return nil
		}
		if err := create(entity.KindProduct, seedProducts); err != nil {
			return err
		}
		if err := create(entity.KindLocation, seedLocations); err != nil {
			return err
		}

		locRef := func(name string) *string {
			if name == "" {
				return nil
			}
			id := ids[entity.KindLocation][name]
			return &id
		}
		for _, sm := range seedMovements() {
			m := &entity.Movement{
				Timestamp:      now.Add(-sm.offset),
				ProductID:      ids[entity.KindProduct][sm.product],
				FromLocationID: locRef(sm.from),
				ToLocationID:   locRef(sm.to),
				Quantity:       sm.qty,
			}
			if err := repos.Movements.Append(ctx, m); err != nil {
				return err
			}
		}
		seeded = true
		return nil
	})
	if err != nil {
		return false, domain.WrapStorage("cargar datos iniciales", err)
	}
	if seeded {
		uc.log.Info().
			Int("products", len(seedProducts)).
			Int("locations", len(seedLocations)).
			Int("movements", len(seedMovements())).
			Msg("datos iniciales cargados")
	}
	return seeded, nil
}

func isEmpty(ctx context.Context, repos repository.Repos) (bool, error) {
	counters := []func(context.Context) (int, error){
		repos.Products.Count, repos.Locations.Count, repos.Movements.Count,
	}
	for _, count := range counters {
		n, err := count(ctx)
		if err != nil {
			return false, err
		}
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}
