package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// NewID generates a collision-resistant entity identifier: the creation
// time in unix milliseconds plus a random suffix. The timestamp prefix
// keeps ids roughly sortable by creation order, the uuid fragment makes
// collisions between devices practically impossible.
func NewID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}
