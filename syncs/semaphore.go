package syncs

// Semaphore bounds how many holders run at once
type Semaphore chan struct{}

func NewSemaphore(n int) Semaphore {
	return make(chan struct{}, n)
}

func (s Semaphore) Acquire() {
	s <- struct{}{}
}

// TryAcquire acquires only if a slot is free
func (s Semaphore) TryAcquire() bool {
	select {
	case s <- struct{}{}:
		return true
	default:
		return false
	}
}

func (s Semaphore) Release() {
	<-s
}

// Do runs fn while holding a slot
func (s Semaphore) Do(fn func() error) error {
	s.Acquire()
	defer s.Release()
	return fn()
}
