package equiripple

import (
	"runtime"
	"sync"
)

// DesignBatch designs every specification concurrently. Each run owns
// its grid, extremal set and error curve exclusively, so independent
// runs parallelize without shared state. Results and errors are returned
// per specification, in input order.
//
// workers bounds the number of concurrent runs; values <= 0 use
// [runtime.NumCPU]. The options apply to every run.
func DesignBatch(specs []Spec, workers int, opts ...Option) ([][]float64, []error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(specs) {
		workers = len(specs)
	}

	results := make([][]float64, len(specs))
	errs := make([]error, len(specs))
	if len(specs) == 0 {
		return results, errs
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = Design(specs[i], opts...)
			}
		}()
	}
	for i := range specs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()
	return results, errs
}
