package fake

import "sync"

// Random replays fixed values. Once a queue runs dry it keeps returning zero.
type Random struct {
	mu     sync.Mutex
	ints   []int
	floats []float64

	IntnCalls    []int
	Float64Calls int
}

func NewRandom() *Random {
	return &Random{}
}

// WithInts queues results for Intn; each is reduced modulo n.
func (that *Random) WithInts(values ...int) *Random {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.ints = append(that.ints, values...)

	return that
}

func (that *Random) WithFloats(values ...float64) *Random {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.floats = append(that.floats, values...)

	return that
}

func (that *Random) Intn(n int) int {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.IntnCalls = append(that.IntnCalls, n)

	if len(that.ints) == 0 {
		return 0
	}

	value := that.ints[0]
	that.ints = that.ints[1:]

	return value % n
}

func (that *Random) Float64() float64 {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.Float64Calls++

	if len(that.floats) == 0 {
		return 0
	}

	value := that.floats[0]
	that.floats = that.floats[1:]

	return value
}
