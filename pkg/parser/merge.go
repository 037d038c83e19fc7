package parser

import (
	"container/heap"
	"context"
	"io"
)

// MergedSource combines multiple LineSources into a single stream ordered by
// entry time (oldest first). Lines with equal entry times keep the order of
// their sources. Lines without a parseable entry time sort as time 0.
type MergedSource struct {
	sources []LineSource
	heap    *lineHeap
	started bool
	seq     int
}

// NewMergedSource creates a LineSource that merges sources by entry time.
func NewMergedSource(sources ...LineSource) *MergedSource {
	return &MergedSource{
		sources: sources,
		heap:    &lineHeap{},
	}
}

// Next returns the next line in entry time order across all sources.
// Returns io.EOF when all sources are exhausted.
func (m *MergedSource) Next(ctx context.Context) (*RawLine, error) {
	if !m.started {
		m.started = true
		if err := m.initHeap(ctx); err != nil {
			return nil, err
		}
	}

	if m.heap.Len() == 0 {
		return nil, io.EOF
	}

	item := heap.Pop(m.heap).(*heapItem)

	// Refill from the same source
	if err := m.push(ctx, item.sourceIdx); err != nil {
		return nil, err
	}

	return item.line, nil
}

func (m *MergedSource) initHeap(ctx context.Context) error {
	heap.Init(m.heap)
	for i := range m.sources {
		if err := m.push(ctx, i); err != nil {
			return err
		}
	}
	return nil
}

func (m *MergedSource) push(ctx context.Context, idx int) error {
	line, err := m.sources[idx].Next(ctx)
	if err == io.EOF {
		return nil
	}
	if err != nil {
		return err
	}
	m.seq++
	heap.Push(m.heap, &heapItem{
		line:      line,
		entryTime: EntryTimeOf(line.Text),
		sourceIdx: idx,
		seq:       m.seq,
	})
	return nil
}

// Close releases all source resources.
func (m *MergedSource) Close() error {
	var firstErr error
	for _, src := range m.sources {
		if err := src.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

type heapItem struct {
	line      *RawLine
	entryTime uint64
	sourceIdx int
	seq       int
}

// lineHeap implements heap.Interface for entry time ordered merging.
type lineHeap []*heapItem

func (h lineHeap) Len() int { return len(h) }

func (h lineHeap) Less(i, j int) bool {
	if h[i].entryTime != h[j].entryTime {
		return h[i].entryTime < h[j].entryTime
	}
	if h[i].sourceIdx != h[j].sourceIdx {
		return h[i].sourceIdx < h[j].sourceIdx
	}
	return h[i].seq < h[j].seq
}

func (h lineHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *lineHeap) Push(x any) {
	*h = append(*h, x.(*heapItem))
}

func (h *lineHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[0 : n-1]
	return item
}
