package search

import (
	"container/heap"
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vilnius-transit/routesearch/graph"
	"github.com/vilnius-transit/routesearch/model"
	"github.com/vilnius-transit/routesearch/routeconfig"
)

// stopInfo records the best known way the search has found to reach a
// stop: its arrival, the segment that reached it, a back-pointer to
// its parent stop (or -1 if seeded from the origin), and — if the stop
// is within walking range of the destination — the timestamp at which
// walking the rest of the way would finish.
type stopInfo struct {
	arrival         model.Timestamp
	transfers       uint64
	arrivingSegment model.Segment
	parent          int
	walkFinish      *model.Timestamp
}

// FindRoute searches for the arrival-time-and-transfer-count-optimal
// itinerary from "from" to "to", departing no earlier than departure.
// Returns (nil, nil) if no stop within walking range of the
// destination is reachable from any stop within walking range of the
// origin. ctx is checked cooperatively between heap pops; cancellation
// does not change search semantics, it only stops it early.
func (s *Searcher) FindRoute(
	ctx context.Context,
	from, to model.Point,
	departure model.Timestamp,
	opts ...FindOption,
) (*model.Route, error) {
	var fo findOptions
	for _, opt := range opts {
		opt(&fo)
	}

	queryID := newQueryID()
	log := s.logger.WithField("query_id", queryID)
	started := time.Now()
	s.metrics.QueryStarted()

	log.WithField("departure", departure.String()).Debug("starting route search")

	route, raw, err := s.findRoute(ctx, from, to, departure, log)

	s.metrics.QueryCompleted(time.Since(started), route != nil)
	log.WithField("found", route != nil).Debug("finished route search")

	if err != nil {
		return nil, err
	}
	if fo.rawOut != nil {
		*fo.rawOut = raw
	}
	return route, nil
}

func (s *Searcher) findRoute(
	ctx context.Context,
	from, to model.Point,
	departure model.Timestamp,
	log logrus.FieldLogger,
) (*model.Route, []model.Segment, error) {
	g := s.graph
	p := s.params

	settled := make(map[int]stopInfo)
	fr := newFrontier(departure, p.TransferPenaltySeconds)

	for i := 0; i < g.NStops(); i++ {
		distance := model.Distance(from, g.StopLoc(i))
		if distance > p.MaxWalkDistanceMeters {
			continue
		}
		walkTime := model.WalkTime(distance, p.WalkingSpeedKmh)
		arrival := departure.Offset(walkTime)
		heap.Push(fr, heapItem{
			arrival:   arrival,
			transfers: 0,
			stop:      i,
			parent:    -1,
			segment: model.Segment{
				Kind: model.SegmentWalk,
				Walk: &model.WalkSegment{
					From:     model.NamedPoint{Loc: from},
					To:       model.NamedPoint{Loc: g.StopLoc(i), Name: g.StopName(i)},
					Start:    departure.Time,
					Duration: walkTime,
				},
			},
		})
	}

	peakFrontier := fr.Len()

	for fr.Len() > 0 {
		select {
		case <-ctx.Done():
			return nil, nil, ctx.Err()
		default:
		}

		if fr.Len() > peakFrontier {
			peakFrontier = fr.Len()
		}

		item := heap.Pop(fr).(heapItem)

		if _, already := settled[item.stop]; already {
			// First-settle-wins: the heap already delivered the
			// cheapest arrival at this stop.
			continue
		}

		reachedAt := item.arrival
		log.WithFields(logrus.Fields{
			"stop":    g.StopID(item.stop),
			"arrival": reachedAt.String(),
		}).Trace("reached stop")

		distToEnd := model.Distance(g.StopLoc(item.stop), to)
		var walkFinish *model.Timestamp
		if distToEnd <= p.MaxWalkDistanceMeters {
			wf := reachedAt.Offset(model.WalkTime(distToEnd, p.WalkingSpeedKmh))
			walkFinish = &wf
		}

		settled[item.stop] = stopInfo{
			arrival:         reachedAt,
			transfers:       item.transfers,
			arrivingSegment: item.segment,
			parent:          item.parent,
			walkFinish:      walkFinish,
		}

		expandRides(fr, g, item, reachedAt, p)

		if item.segment.Kind == model.SegmentRide {
			// Walking-after-walking is suppressed: chaining short
			// walks would let the search drift across the city one
			// hop at a time and blow up the frontier without ever
			// boarding anything.
			expandWalks(fr, g, item, reachedAt, p)
		}
	}

	s.metrics.FrontierSize(peakFrontier)

	finalStop, arrivalTime, ok := pickFinalStop(settled, departure, p.TransferPenaltySeconds)
	if !ok {
		return nil, nil, nil
	}

	log.WithField("arrival", arrivalTime.String()).Debug("found route")

	raw := reconstruct(g, settled, to, finalStop, p)
	coalesced := coalesce(raw)
	translateStopNames(g, coalesced)

	route := &model.Route{
		Segments:      coalesced,
		DepartureTime: raw[0].Walk.Start,
		ArrivalTime:   arrivalTime.Time,
	}

	return route, raw, nil
}

// expandRides enqueues a candidate arrival for every scheduled
// departure from item.stop that the rider can still catch, accounting
// for whether boarding requires a transfer. Boarding after a walk,
// boarding a different bus, and boarding the same bus after a layover
// (its departure doesn't exactly match the rider's arrival) all count
// as transferring; staying seated through a direct continuation does
// not.
func expandRides(
	fr *frontier,
	g *graph.Graph,
	item heapItem,
	reachedAt model.Timestamp,
	p *routeconfig.Parameters,
) {
	for _, r := range g.Routes(item.stop) {
		isTransferring := true
		if item.segment.Kind == model.SegmentRide &&
			item.segment.Ride.Bus == r.Bus &&
			reachedAt == r.Departure {
			isTransferring = false
		}

		effectiveReady := reachedAt
		if isTransferring {
			effectiveReady = reachedAt.Offset(p.TransferDelaySeconds)
		}

		if !effectiveReady.IsFollowedBy(r.Departure) {
			continue
		}

		transfers := item.transfers
		if isTransferring {
			transfers++
		}

		heap.Push(fr, heapItem{
			arrival:   r.Arrival,
			transfers: transfers,
			stop:      r.NextStop,
			parent:    item.stop,
			segment: model.Segment{
				Kind: model.SegmentRide,
				Ride: &model.RideSegment{
					Bus:      r.Bus,
					Type:     r.Type,
					FromStop: g.StopID(item.stop),
					ToStop:   g.StopID(r.NextStop),
					Start:    r.Departure.Time,
					Duration: r.Duration,
				},
			},
		})
	}
}

// expandWalks enqueues a candidate arrival for every other stop within
// walking range of item.stop.
func expandWalks(
	fr *frontier,
	g *graph.Graph,
	item heapItem,
	reachedAt model.Timestamp,
	p *routeconfig.Parameters,
) {
	for j := 0; j < g.NStops(); j++ {
		if j == item.stop {
			continue
		}
		distance := model.Distance(g.StopLoc(item.stop), g.StopLoc(j))
		if distance > p.MaxWalkDistanceMeters {
			continue
		}
		walkTime := model.WalkTime(distance, p.WalkingSpeedKmh)

		heap.Push(fr, heapItem{
			arrival:   reachedAt.Offset(walkTime),
			transfers: item.transfers,
			stop:      j,
			parent:    item.stop,
			segment: model.Segment{
				Kind: model.SegmentWalk,
				Walk: &model.WalkSegment{
					From:     model.NamedPoint{Loc: g.StopLoc(item.stop), Name: g.StopName(item.stop)},
					To:       model.NamedPoint{Loc: g.StopLoc(j), Name: g.StopName(j)},
					Start:    reachedAt.Time,
					Duration: walkTime,
				},
			},
		})
	}
}

// pickFinalStop selects, among settled stops within walking range of
// the destination, the one whose transfer-penalty-adjusted finish time
// is earliest relative to departure.
func pickFinalStop(settled map[int]stopInfo, departure model.Timestamp, penaltySeconds uint64) (int, model.Timestamp, bool) {
	best := -1
	var bestKey model.Timestamp

	for stopIdx, info := range settled {
		if info.walkFinish == nil {
			continue
		}
		key := info.walkFinish.Offset(info.transfers * penaltySeconds)
		if best == -1 || key.CompareUsingDeparture(bestKey, departure) == model.Less {
			best = stopIdx
			bestKey = key
		}
	}

	if best == -1 {
		return 0, model.Timestamp{}, false
	}
	return best, *settled[best].walkFinish, true
}
