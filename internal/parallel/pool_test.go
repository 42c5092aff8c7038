package parallel

import (
	"errors"
	"runtime"
	"sync"
	"sync/atomic"
	"testing"
)

// =============================================================================
// Pool Creation Tests
// =============================================================================

func TestPool_Create(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	if pool.Workers() != 4 {
		t.Errorf("Workers() = %d, want 4", pool.Workers())
	}
	if !pool.IsRunning() {
		t.Error("Pool should be running after creation")
	}
}

func TestPool_CreateDefaultWorkers(t *testing.T) {
	for _, n := range []int{0, -3} {
		pool := NewPool(n)
		if got, want := pool.Workers(), runtime.GOMAXPROCS(0); got != want {
			t.Errorf("NewPool(%d).Workers() = %d, want %d", n, got, want)
		}
		pool.Close()
	}
}

// =============================================================================
// ExecuteAll Tests
// =============================================================================

func TestPool_ExecuteAll(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	const numTasks = 1000

	tasks := make([]func(), numTasks)
	for i := range tasks {
		tasks[i] = func() { counter.Add(1) }
	}

	if err := pool.ExecuteAll(tasks); err != nil {
		t.Fatalf("ExecuteAll: %v", err)
	}
	if counter.Load() != numTasks {
		t.Errorf("counter = %d, want %d", counter.Load(), numTasks)
	}
}

func TestPool_ExecuteAllEmpty(t *testing.T) {
	pool := NewPool(2)
	defer pool.Close()

	if err := pool.ExecuteAll(nil); err != nil {
		t.Errorf("ExecuteAll(nil) = %v, want nil", err)
	}
}

func TestPool_ExecuteAllDisjointWrites(t *testing.T) {
	pool := NewPool(8)
	defer pool.Close()

	out := make([]int, 512)
	tasks := make([]func(), len(out))
	for i := range tasks {
		tasks[i] = func() { out[i] = i * i }
	}
	if err := pool.ExecuteAll(tasks); err != nil {
		t.Fatal(err)
	}
	for i, v := range out {
		if v != i*i {
			t.Fatalf("out[%d] = %d, want %d", i, v, i*i)
		}
	}
}

func TestPool_StaticAssignment(t *testing.T) {
	const workers = 3
	pool := NewPool(workers)
	defer pool.Close()

	// Tasks landing on the same worker run sequentially on one goroutine,
	// so each worker's slice of tasks observes its own prior writes in order.
	var mu sync.Mutex
	order := make(map[int][]int)
	tasks := make([]func(), 30)
	for i := range tasks {
		tasks[i] = func() {
			mu.Lock()
			order[i%workers] = append(order[i%workers], i)
			mu.Unlock()
		}
	}
	if err := pool.ExecuteAll(tasks); err != nil {
		t.Fatal(err)
	}
	for w, got := range order {
		for j := 1; j < len(got); j++ {
			if got[j] <= got[j-1] {
				t.Errorf("worker %d ran tasks out of queue order: %v", w, got)
				break
			}
		}
	}
}

func TestPool_ConcurrentBatches(t *testing.T) {
	pool := NewPool(4)
	defer pool.Close()

	var counter atomic.Int64
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tasks := make([]func(), 50)
			for i := range tasks {
				tasks[i] = func() { counter.Add(1) }
			}
			if err := pool.ExecuteAll(tasks); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if counter.Load() != 400 {
		t.Errorf("counter = %d, want 400", counter.Load())
	}
}

// =============================================================================
// Close Tests
// =============================================================================

func TestPool_CloseRejectsWork(t *testing.T) {
	pool := NewPool(2)
	pool.Close()
	pool.Close()

	if pool.IsRunning() {
		t.Error("IsRunning() = true after Close")
	}

	ran := false
	err := pool.ExecuteAll([]func(){func() { ran = true }})
	if !errors.Is(err, ErrClosed) {
		t.Errorf("ExecuteAll after Close = %v, want ErrClosed", err)
	}
	if ran {
		t.Error("task ran on a closed pool")
	}
}

// =============================================================================
// Serial Tests
// =============================================================================

func TestSerial_RunsInOrder(t *testing.T) {
	var got []int
	tasks := make([]func(), 5)
	for i := range tasks {
		tasks[i] = func() { got = append(got, i) }
	}
	if err := (Serial{}).ExecuteAll(tasks); err != nil {
		t.Fatal(err)
	}
	for i, v := range got {
		if v != i {
			t.Fatalf("Serial order = %v, want 0..4", got)
		}
	}
	if len(got) != 5 {
		t.Fatalf("ran %d tasks, want 5", len(got))
	}
}
