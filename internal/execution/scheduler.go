package execution

// Scheduler distributes file indexes across workers
type Scheduler interface {
	Schedule(count int, workerCount int) [][]int
}

// RoundRobinScheduler distributes files evenly across workers
type RoundRobinScheduler struct{}

// NewRoundRobinScheduler creates a new RoundRobinScheduler
func NewRoundRobinScheduler() *RoundRobinScheduler {
	return &RoundRobinScheduler{}
}

// Schedule assigns indexes 0..count-1 to workers round-robin. Workers that
// would get nothing are left out.
func (s *RoundRobinScheduler) Schedule(count int, workerCount int) [][]int {
	if workerCount <= 0 {
		workerCount = 1
	}
	if workerCount > count {
		workerCount = count
	}

	distribution := make([][]int, workerCount)
	for i := 0; i < count; i++ {
		workerIndex := i % workerCount
		distribution[workerIndex] = append(distribution[workerIndex], i)
	}
	return distribution
}
