// Package pipeline runs the steps that turn a trip request into a stored trip.
//
// A TripPlan flows through an ordered list of steps. The default pipeline
// searches for suggestions and then saves the trip with them:
//
//	p := pipeline.DefaultPipeline(client, store, search.SentinelFallback, logger)
//	plan := model.NewTripPlan(query, "Madrid", "2025-09-26", "2025-09-28")
//	if err := p.Execute(ctx, plan); err != nil {
//	    return err
//	}
//
// Design decision: steps depend on small interfaces (Searcher, TripSaver)
// instead of the concrete search client and store, so each step is tested
// with in-memory fakes.
package pipeline
