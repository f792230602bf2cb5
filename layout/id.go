// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"strconv"
	"sync"
)

// ID identifies an element.
type ID uint64

// IDs hands out element identities. It is passed to element
// constructors and is safe for concurrent use. The zero IDs is
// ready to use and starts at id_0.
type IDs struct {
	mu   sync.Mutex
	next ID
}

// Next returns an identity never returned before by g.
func (g *IDs) Next() ID {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := g.next
	g.next++
	return id
}

func (id ID) String() string {
	return "id_" + strconv.FormatUint(uint64(id), 10)
}
