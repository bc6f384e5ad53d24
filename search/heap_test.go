package search

import (
	"container/heap"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vilnius-transit/routesearch/model"
)

func TestFrontierPopsCheapestArrivalFirst(t *testing.T) {
	departure := model.NewTimestamp(model.Monday, model.NewDayTime(7, 0))
	fr := newFrontier(departure, 120)

	heap.Push(fr, heapItem{arrival: model.NewTimestamp(model.Monday, model.NewDayTime(8, 0)), stop: 1})
	heap.Push(fr, heapItem{arrival: model.NewTimestamp(model.Monday, model.NewDayTime(7, 30)), stop: 2})
	heap.Push(fr, heapItem{arrival: model.NewTimestamp(model.Monday, model.NewDayTime(9, 0)), stop: 3})

	first := heap.Pop(fr).(heapItem)
	assert.Equal(t, 2, first.stop)

	second := heap.Pop(fr).(heapItem)
	assert.Equal(t, 1, second.stop)

	third := heap.Pop(fr).(heapItem)
	assert.Equal(t, 3, third.stop)
}

func TestFrontierPenalizesExtraTransfers(t *testing.T) {
	departure := model.NewTimestamp(model.Monday, model.NewDayTime(7, 0))
	fr := newFrontier(departure, 600) // huge penalty to make the ordering obvious

	sameArrival := model.NewTimestamp(model.Monday, model.NewDayTime(8, 0))
	heap.Push(fr, heapItem{arrival: sameArrival, transfers: 2, stop: 1})
	heap.Push(fr, heapItem{arrival: sameArrival, transfers: 0, stop: 2})

	cheapest := heap.Pop(fr).(heapItem)
	assert.Equal(t, 2, cheapest.stop, "fewer transfers should win when raw arrival ties")
}
