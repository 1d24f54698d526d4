// Package cursor hands out the one-shot continuation tokens every provider exposes as Explorer.Cursor.
package cursor

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/MCPEngu/fileprovider"
)

// Tracker maps opaque tokens to the backend state needed to fetch the next page. Only the latest token of the
// current lineage is valid, and only once. T is whatever the backend needs to continue: a Dropbox cursor, a page
// token, an offset.
type Tracker[T any] struct {
	mu    sync.Mutex
	token string
	state T
}

// Reset starts a new lineage, invalidating any outstanding token.
func (t *Tracker[T]) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	t.token, t.state = "", zero
}

// Issue registers state and returns the token that redeems it. The previous token, if any, stops being valid.
func (t *Tracker[T]) Issue(state T) string {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = uuid.NewString()
	t.state = state
	return t.token
}

// Redeem returns the state registered under token and forgets it. Unknown, stale and already redeemed tokens fail
// with fileprovider.ErrInvalidCursor.
func (t *Tracker[T]) Redeem(token string) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	var zero T
	if token == "" || token != t.token {
		return zero, fmt.Errorf("%w: %q", fileprovider.ErrInvalidCursor, token)
	}
	state := t.state
	t.token, t.state = "", zero
	return state, nil
}
