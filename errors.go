package pool

import "errors"

// ErrBadRequest is returned when a requested capacity is negative or when
// an ArenaConfig fails validation. Buffers carry no maximum capacity, so
// no upper bound on a requested capacity is checked.
var ErrBadRequest = errors.New("pool: bad request")

// ErrBelongsToOther is returned by Stack.Recycle when the handle being
// recycled was issued by a different Recycler than the one the calling
// Stack belongs to. The object is not pooled.
var ErrBelongsToOther = errors.New("pool: handle belongs to another recycler")

// ErrExhausted is returned internally when a chunk or chunk list cannot
// satisfy a request; callers of Arena never see it; it is always
// escalated (a new chunk, an unpooled chunk, or a dropped Stack push).
var ErrExhausted = errors.New("pool: no space available")
