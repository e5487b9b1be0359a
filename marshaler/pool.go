package marshaler

import "sync"

const (
	// Pool limits to prevent memory bloat
	poolMaxVisited  = 1024 // max references tracked at once
	poolInitVisited = 16
)

var statePool = sync.Pool{
	New: func() any {
		return &encodeState{visited: make(map[visitKey]struct{}, poolInitVisited)}
	},
}

func getState() *encodeState {
	return statePool.Get().(*encodeState)
}

func putState(st *encodeState) {
	if st == nil || st.peak > poolMaxVisited {
		return // reject oversized
	}
	clear(st.visited)
	st.depth = 0
	st.peak = 0
	statePool.Put(st)
}
