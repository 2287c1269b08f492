package collect

import (
	"context"
	"regexp"
	"turkdata/lib/mturk"

	"github.com/antzucaro/matchr"
)

// Selector picks the parent HITs a collection runs over. Exactly one of
// the four selection modes must be supplied.
type Selector struct {
	HITID  string
	HITIDs []string
	// HITTypeID / HITTypeIDs select every HIT of the given type(s); both
	// fields belong to the same mode.
	HITTypeID  string
	HITTypeIDs []string
	// AnnotationPattern selects HITs whose requester annotation matches
	// the regular expression.
	AnnotationPattern string
}

func (s Selector) modes() int {
	count := 0
	if s.HITID != "" {
		count++
	}
	if len(s.HITIDs) > 0 {
		count++
	}
	if s.HITTypeID != "" || len(s.HITTypeIDs) > 0 {
		count++
	}
	if s.AnnotationPattern != "" {
		count++
	}
	return count
}

// resolve turns the selector into the concrete list of parent HIT ids, in
// a stable order. Type and annotation modes scan the full HIT listing.
func resolve(ctx context.Context, inv mturk.Invoker, sel Selector, pageSize int64, retry RetryOptions) ([]string, error) {
	switch modes := sel.modes(); {
	case modes == 0:
		return nil, inputErrorf("no HIT selector supplied")
	case modes > 1:
		return nil, inputErrorf("more than one HIT selector supplied")
	}

	if sel.HITID != "" {
		return []string{sel.HITID}, nil
	}
	if len(sel.HITIDs) > 0 {
		return sel.HITIDs, nil
	}
	if sel.HITTypeID != "" || len(sel.HITTypeIDs) > 0 {
		typeIDs := sel.HITTypeIDs
		if sel.HITTypeID != "" {
			typeIDs = append([]string{sel.HITTypeID}, typeIDs...)
		}
		return resolveByType(ctx, inv, typeIDs, pageSize, retry)
	}
	return resolveByAnnotation(ctx, inv, sel.AnnotationPattern, pageSize, retry)
}

// scanHITs pages through the full HIT listing, handing every HIT to keep.
func scanHITs(ctx context.Context, inv mturk.Invoker, pageSize int64, retry RetryOptions, keep func(hit mturk.HIT)) error {
	var token *string
	for {
		request := mturk.ListHITsRequest{
			NextToken:  token,
			MaxResults: &pageSize,
		}
		var res mturk.ListHITsResponse
		err := callWithRetry(ctx, "ListHITs", "", retry, func() error {
			var err error
			res, err = mturk.ListHITs(ctx, inv, request)
			return err
		})
		if err != nil {
			return err
		}

		for _, hit := range res.HITs {
			keep(hit)
		}
		if res.NextToken == nil {
			return nil
		}
		token = res.NextToken
	}
}

func resolveByType(ctx context.Context, inv mturk.Invoker, typeIDs []string, pageSize int64, retry RetryOptions) ([]string, error) {
	wanted := make(map[string]bool, len(typeIDs))
	for _, id := range typeIDs {
		wanted[id] = true
	}

	var hitIDs []string
	err := scanHITs(ctx, inv, pageSize, retry, func(hit mturk.HIT) {
		if hit.HITId == nil || hit.HITTypeId == nil {
			return
		}
		if wanted[*hit.HITTypeId] {
			hitIDs = append(hitIDs, *hit.HITId)
		}
	})
	if err != nil {
		return nil, err
	}
	if len(hitIDs) == 0 {
		return nil, &LookupError{Selector: "HIT type", Pattern: typeIDs[0]}
	}
	return hitIDs, nil
}

func resolveByAnnotation(ctx context.Context, inv mturk.Invoker, pattern string, pageSize int64, retry RetryOptions) ([]string, error) {
	matcher, err := regexp.Compile(pattern)
	if err != nil {
		return nil, inputErrorf("malformed annotation pattern %q: %s", pattern, err)
	}

	var hitIDs []string
	var seen []string
	err = scanHITs(ctx, inv, pageSize, retry, func(hit mturk.HIT) {
		if hit.HITId == nil || hit.RequesterAnnotation == nil {
			return
		}
		seen = append(seen, *hit.RequesterAnnotation)
		if matcher.MatchString(*hit.RequesterAnnotation) {
			hitIDs = append(hitIDs, *hit.HITId)
		}
	})
	if err != nil {
		return nil, err
	}
	if len(hitIDs) == 0 {
		return nil, &LookupError{
			Selector:   "annotation",
			Pattern:    pattern,
			Suggestion: closestAnnotation(pattern, seen),
		}
	}
	return hitIDs, nil
}

// closestAnnotation picks the annotation most similar to the pattern so
// the lookup error can point at a likely typo.
func closestAnnotation(pattern string, seen []string) string {
	var best string
	var bestSimilarity float64
	for _, annotation := range seen {
		similarity := matchr.JaroWinkler(pattern, annotation, false)
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = annotation
		}
	}
	return best
}
