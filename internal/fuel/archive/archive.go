// Package archive serves the read-only historical fuel entries shipped as a
// JSON dataset next to the live ledger. Entries share the ledger's vehicle
// identifier space but carry no ids correlated with it.
package archive

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aivanlabs/fleetdash/internal/config"
	fueldomain "github.com/aivanlabs/fleetdash/internal/fuel/domain"
)

type Source interface {
	Entries(ctx context.Context) ([]fueldomain.FuelEvent, error)
}

type fileSource struct {
	path string
}

func NewSource(cfg config.Config) Source {
	return &fileSource{path: cfg.FuelArchivePath}
}

func (s *fileSource) Entries(ctx context.Context) ([]fueldomain.FuelEvent, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read fuel archive: %w", err)
	}

	var entries []fueldomain.FuelEvent
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse fuel archive: %w", err)
	}
	return entries, nil
}
