package neograph

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/aetherchain/aetherchain-api/internal/domain"
	"github.com/aetherchain/aetherchain-api/pkg/config"
)

// NewDriver crea el driver bolt hacia Neo4j con autenticación básica y
// verifica conectividad. Handle explícito: se abre en el arranque, se
// inyecta al Store y se cierra en el apagado (nada de singletons globales).
func NewDriver(ctx context.Context, cfg config.GraphConfig) (neo4j.DriverWithContext, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.User, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("crear driver neo4j: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("conectar a neo4j: %w: %v", domain.ErrStoreUnavailable, err)
	}
	return driver, nil
}
