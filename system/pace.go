package system

import (
	"time"

	"github.com/lixenwraith/termsnake/constant"
)

// Interval returns the tick duration for a speed level
// Levels above MaxSpeed keep the MinInterval floor
func Interval(speed int) time.Duration {
	if speed < 0 {
		speed = 0
	}
	if speed > constant.MaxSpeed {
		speed = constant.MaxSpeed
	}
	return constant.MinInterval + constant.IntervalStep*time.Duration(constant.MaxSpeed-speed)
}

// SpeedUpStep returns how many points separate two speed-ups on a width x height board
func SpeedUpStep(width, height int) int {
	step := (width * height) / constant.MaxSpeed
	if step < 1 {
		return 1
	}
	return step
}

// ShouldSpeedUp reports whether reaching score earns a speed level
func ShouldSpeedUp(score, width, height int) bool {
	return score > 0 && score%SpeedUpStep(width, height) == 0
}
