package camera

import "math"

// MoveToward eases cur toward goal along the shorter way around the circle.
// Each call closes a quarter of the remaining gap and snaps once the gap is
// within one degree. The result is wrapped back into [0, 360).
//
// maxSpeed does not limit the step.
func MoveToward(cur, goal, maxSpeed float32) float32 {
	_ = maxSpeed

	if cur != goal {
		if abs32(cur-goal) > 180.0 {
			if cur < goal {
				cur += 360.0
			} else {
				cur -= 360.0
			}
		}

		if cur < goal {
			if cur < goal-1.0 {
				cur += (goal - cur) / 4.0
			} else {
				cur = goal
			}
		} else {
			if cur > goal+1.0 {
				cur -= (cur - goal) / 4.0
			} else {
				cur = goal
			}
		}
	}

	if cur < 0 {
		cur += 360.0
	} else if cur >= 360 {
		cur -= 360.0
	}
	return cur
}

// easeDistance is the linear counterpart of MoveToward for the distance slot:
// no wraparound, snaps within 2 units.
func easeDistance(cur, goal float32) float32 {
	if abs32(cur-goal) < 2.0 {
		return goal
	}
	return cur + (goal-cur)/4.0
}

func clamp32(v, lo, hi float32) float32 {
	// hi first so a misconfigured lo > hi resolves to lo
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

func abs32(v float32) float32 {
	return float32(math.Abs(float64(v)))
}
