package redis

import (
	"github.com/MrSnakeDoc/marketmarket/internal/domain"
	"github.com/MrSnakeDoc/marketmarket/internal/logger"
)

type catalogSet map[domain.ListingID]bool

func (c catalogSet) Has(id domain.ListingID) bool { return c[id] }

func catalogOf(ids ...domain.ListingID) catalogSet {
	c := catalogSet{}
	for _, id := range ids {
		c[id] = true
	}
	return c
}

func nopLogger() logger.Logger { return logger.NewNop() }
