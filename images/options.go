package images

import (
	"github.com/pkg/errors"
)

// Default thresholds. They were tuned by eye and carry no physical meaning.
const (
	// DefaultCartoonThreshold is the per-channel diagonal difference above
	// which Cartoonize marks a pixel as an edge.
	DefaultCartoonThreshold = 50
	// DefaultBlackWhiteThreshold is the channel sum above which BlackWhite
	// emits black.
	DefaultBlackWhiteThreshold = 200
	// DefaultRedFloor is the red value a pixel must exceed to count as red.
	DefaultRedFloor = 125
	// DefaultOtherCeiling is the value green and blue must stay below for a
	// pixel to count as red.
	DefaultOtherCeiling = 125
)

// Options holds the tunable thresholds used by the parameterized transforms.
type Options struct {
	// CartoonThreshold is used by Cartoonize.
	CartoonThreshold int `json:"cartoon_threshold" yaml:"cartoon_threshold"`
	// BlackWhiteThreshold is used by BlackWhite.
	BlackWhiteThreshold int `json:"black_white_threshold" yaml:"black_white_threshold"`
	// RedFloor is used by LeaveColor.
	RedFloor int `json:"red_floor" yaml:"red_floor"`
	// OtherCeiling is used by LeaveColor.
	OtherCeiling int `json:"other_ceiling" yaml:"other_ceiling"`
}

// DefaultOptions returns the stock thresholds.
func DefaultOptions() Options {
	return Options{
		CartoonThreshold:    DefaultCartoonThreshold,
		BlackWhiteThreshold: DefaultBlackWhiteThreshold,
		RedFloor:            DefaultRedFloor,
		OtherCeiling:        DefaultOtherCeiling,
	}
}

// Validate checks that every threshold is meaningful for 8-bit channels.
func (o Options) Validate() error {
	if o.CartoonThreshold < 0 || o.CartoonThreshold > 255 {
		return errors.Errorf("cartoon threshold %d outside [0, 255]", o.CartoonThreshold)
	}
	if o.BlackWhiteThreshold < 0 || o.BlackWhiteThreshold > 3*255 {
		return errors.Errorf("black/white threshold %d outside [0, 765]", o.BlackWhiteThreshold)
	}
	if o.RedFloor < 0 || o.RedFloor > 255 {
		return errors.Errorf("red floor %d outside [0, 255]", o.RedFloor)
	}
	if o.OtherCeiling < 0 || o.OtherCeiling > 255 {
		return errors.Errorf("other ceiling %d outside [0, 255]", o.OtherCeiling)
	}
	return nil
}
