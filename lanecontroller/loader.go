package lanecontroller

import "github.com/golangdaddy/turnpike/road"

// LaneControllersForCourse creates one lane controller per lane of the widest
// segment. Narrower segments simply get no spawns in their closed lanes.
func LaneControllersForCourse(course *road.Course) []*LaneController {
	n := course.MaxLanes()
	controllers := make([]*LaneController, 0, n)
	for i := 0; i < n; i++ {
		controllers = append(controllers, NewLaneController(i, course.LaneOffset(i)))
	}
	return controllers
}

// OpenIn reports whether the lane is open in the given course chunk
func (lc *LaneController) OpenIn(course *road.Course, chunk int) bool {
	seg := course.SegmentAt(chunk)
	return seg != nil && lc.LaneIndex < seg.NumLanes
}
