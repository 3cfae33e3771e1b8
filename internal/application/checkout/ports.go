package checkout

import (
	"context"

	"github.com/jhoicas/freezer-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una unidad atómica: los repos que recibe el
// callback están atados a la misma transacción, y todo lo escrito dentro de fn
// se aplica completo o no se aplica.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		invRepo repository.InventoryRepository,
		coRepo repository.CheckoutRepository,
	) error) error
}
