package game

import (
	"runtime"
	"sync"
)

// parallelThreshold is the minimum population size to use parallel
// processing. Below this, single-threaded is faster due to goroutine
// overhead.
const parallelThreshold = 64

// workChunk is a range of player indices for one worker.
type workChunk struct {
	start, end int
	dt         float32
}

// parallelState holds the persistent worker pool for the per-player
// update pass. Each player writes only its own state and reads only the
// shared read-only environment, so chunks never race.
type parallelState struct {
	numWorkers int

	workChan chan workChunk // sends work to workers
	doneChan chan struct{}  // workers signal chunk completion
	stopChan chan struct{}  // signals workers to exit
	wg       sync.WaitGroup
	running  bool
}

func newParallelState() *parallelState {
	return &parallelState{
		numWorkers: runtime.GOMAXPROCS(0),
	}
}

// startWorkers launches the persistent worker goroutines.
func (p *parallelState) startWorkers(g *Game) {
	if p.running {
		return
	}

	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan struct{}, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker(g)
	}
}

// stopWorkers signals all workers to exit and waits for them.
func (p *parallelState) stopWorkers() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

// worker processes chunks until stopped.
func (p *parallelState) worker(g *Game) {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			g.updateChunk(chunk)
			p.doneChan <- struct{}{}
		}
	}
}

// updatePlayers runs the per-player pass, parallel for large
// populations.
func (g *Game) updatePlayers(dt float32) {
	n := len(g.players)
	if n == 0 {
		return
	}

	if n < parallelThreshold {
		g.updateChunk(workChunk{start: 0, end: n, dt: dt})
		return
	}

	if !g.parallel.running {
		g.parallel.startWorkers(g)
	}

	chunkSize := (n + g.parallel.numWorkers - 1) / g.parallel.numWorkers

	dispatched := 0
	for w := 0; w < g.parallel.numWorkers; w++ {
		start := w * chunkSize
		end := start + chunkSize
		if end > n {
			end = n
		}
		if start >= end {
			continue
		}

		g.parallel.workChan <- workChunk{start: start, end: end, dt: dt}
		dispatched++
	}

	for i := 0; i < dispatched; i++ {
		<-g.parallel.doneChan
	}
}

// updateChunk updates one contiguous range of players. The environment
// stays read-only for the whole pass; the obstacle and turnover logic
// run strictly afterwards.
func (g *Game) updateChunk(c workChunk) {
	for i := c.start; i < c.end; i++ {
		g.players[i].update(c.dt, &g.env)
	}
}
