// Package daterange resolves named relative date ranges into absolute
// inclusive bounds.
//
// A range arrives as a wire tag such as "last_3_months" or "custom" and is
// parsed once, at the validation boundary, into a Range value. Because a
// Range can only be built through Parse, downstream code never sees an
// unrecognized tag and needs no defensive re-validation. The zero value is
// the all-time range, which applies no bounds at all.
//
// # Usage
//
//	r, err := daterange.Parse("last_3_months", "", "")
//	if err != nil {
//		// 400, the tag or custom bounds were invalid
//	}
//
//	if start, end, ok := r.Bounds(time.Now()); ok {
//		filter.CreatedFrom, filter.CreatedTo = &start, &end
//	}
//
// Relative windows are anchored at resolution time: Bounds floors the start
// to the beginning of the day N months before the given instant and ceils
// the end to the last nanosecond of that instant's day, in UTC. Custom
// bounds are widened to the same day edges when parsed.
//
// # Error Handling
//
// Parse returns ErrUnknownTag, ErrMissingBounds, ErrInvalidBound or
// ErrInvertedBounds. All are user input problems and map to a 400 response
// at the transport layer.
package daterange
