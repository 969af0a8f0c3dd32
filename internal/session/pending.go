package session

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
)

// pendingSet tracks requests in flight so duplicate submissions can be refused or
// reported. Generation is keyed per session, explanations per (session, question, option).
type pendingSet struct {
	mu         sync.Mutex
	generating map[uuid.UUID]struct{}
	explaining map[string]int
}

func newPendingSet() *pendingSet {
	return &pendingSet{
		generating: make(map[uuid.UUID]struct{}),
		explaining: make(map[string]int),
	}
}

func explainKey(id uuid.UUID, questionIndex, option int) string {
	return fmt.Sprintf("%s:%d:%d", id, questionIndex, option)
}

// beginGeneration reports false when a generation for id is already running.
func (p *pendingSet) beginGeneration(id uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, busy := p.generating[id]; busy {
		return false
	}
	p.generating[id] = struct{}{}
	return true
}

func (p *pendingSet) endGeneration(id uuid.UUID) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.generating, id)
}

func (p *pendingSet) isGenerating(id uuid.UUID) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, busy := p.generating[id]
	return busy
}

func (p *pendingSet) beginExplain(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.explaining[key]++
}

func (p *pendingSet) endExplain(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.explaining[key] <= 1 {
		delete(p.explaining, key)
		return
	}
	p.explaining[key]--
}

// explainingOptions lists the options of one question with an explanation in flight.
func (p *pendingSet) explainingOptions(id uuid.UUID, questionIndex, optionCount int) []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := []int{}
	for opt := 0; opt < optionCount; opt++ {
		if _, ok := p.explaining[explainKey(id, questionIndex, opt)]; ok {
			out = append(out, opt)
		}
	}
	return out
}
