package search

import (
	"github.com/vilnius-transit/routesearch/graph"
	"github.com/vilnius-transit/routesearch/model"
	"github.com/vilnius-transit/routesearch/routeconfig"
)

// reconstruct walks the parent pointers in settled backward from
// finalStop to the origin, producing the raw, uncoalesced segment
// trace in travel order, with a synthetic closing walk from finalStop
// to the destination appended.
func reconstruct(
	g *graph.Graph,
	settled map[int]stopInfo,
	to model.Point,
	finalStop int,
	p *routeconfig.Parameters,
) []model.Segment {
	var reversed []model.Segment

	stopIdx := finalStop
	for {
		info := settled[stopIdx]
		reversed = append(reversed, info.arrivingSegment)
		if info.parent == -1 {
			break
		}
		stopIdx = info.parent
	}

	segs := make([]model.Segment, len(reversed))
	for i, s := range reversed {
		segs[len(reversed)-1-i] = s
	}

	finalInfo := settled[finalStop]
	distance := model.Distance(g.StopLoc(finalStop), to)
	walkTime := model.WalkTime(distance, p.WalkingSpeedKmh)

	segs = append(segs, model.Segment{
		Kind: model.SegmentWalk,
		Walk: &model.WalkSegment{
			From:     model.NamedPoint{Loc: g.StopLoc(finalStop), Name: g.StopName(finalStop)},
			To:       model.NamedPoint{Loc: to},
			Start:    finalInfo.arrival.Time,
			Duration: walkTime,
		},
	})

	return segs
}

// coalesce merges adjacent segments that represent one continuous leg
// from the traveler's point of view: consecutive walks, and
// consecutive rides on the same run of the same bus with no layover
// between them.
func coalesce(raw []model.Segment) []model.Segment {
	if len(raw) == 0 {
		return raw
	}

	// Merging mutates the Walk/Ride values, so work on copies and leave
	// raw's segments untouched.
	clone := func(s model.Segment) model.Segment {
		if s.Walk != nil {
			w := *s.Walk
			s.Walk = &w
		}
		if s.Ride != nil {
			r := *s.Ride
			s.Ride = &r
		}
		return s
	}

	out := make([]model.Segment, 0, len(raw))
	out = append(out, clone(raw[0]))

	for _, seg := range raw[1:] {
		seg = clone(seg)
		last := &out[len(out)-1]

		if last.Kind == model.SegmentWalk && seg.Kind == model.SegmentWalk {
			last.Walk.To = seg.Walk.To
			last.Walk.Duration += seg.Walk.Duration
			continue
		}

		if last.Kind == model.SegmentRide && seg.Kind == model.SegmentRide &&
			last.Ride.Bus == seg.Ride.Bus &&
			last.Ride.Start.Offset(last.Ride.Duration) == seg.Ride.Start {
			last.Ride.ToStop = seg.Ride.ToStop
			last.Ride.Duration += seg.Ride.Duration
			continue
		}

		out = append(out, seg)
	}

	return out
}

// translateStopNames substitutes each ride segment's stop IDs with
// their human-readable names, now that the segment list is final.
func translateStopNames(g *graph.Graph, segs []model.Segment) {
	for i := range segs {
		if segs[i].Kind != model.SegmentRide {
			continue
		}
		r := segs[i].Ride
		if name, ok := g.NameByID(r.FromStop); ok {
			r.FromStop = name
		}
		if name, ok := g.NameByID(r.ToStop); ok {
			r.ToStop = name
		}
	}
}
