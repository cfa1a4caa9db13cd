package lvm

import (
	"regexp"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
)

const AllFreeSpaceToken = "MAX"

var sizeTokenRegexp = regexp.MustCompile(`^[0-9]+[GMT]$`)

// GrowthSize is always added on top of the current size of a logical volume.
type GrowthSize struct {
	All    bool
	Amount string
}

type InvalidGrowthSizeError struct {
	Token string
}

func (e InvalidGrowthSizeError) Error() string {
	return "Invalid size format '" + e.Token + "'. Please use e.g. 10G or 500M."
}

// ParseGrowthSize accepts MAX or digits followed by one of G, M, T; case does
// not matter.
func ParseGrowthSize(token string) (GrowthSize, error) {
	normalized := strings.ToUpper(strings.TrimSpace(token))

	if normalized == AllFreeSpaceToken {
		return GrowthSize{All: true}, nil
	}

	if !sizeTokenRegexp.MatchString(normalized) {
		return GrowthSize{}, InvalidGrowthSizeError{Token: token}
	}

	return GrowthSize{Amount: normalized}, nil
}

func (s GrowthSize) LvextendArgs() []string {
	if s.All {
		return []string{"-l", "+100%FREE"}
	}

	return []string{"-L", "+" + s.Amount}
}

func (s GrowthSize) String() string {
	if s.All {
		return "all available space"
	}

	return s.Amount
}

func (s GrowthSize) validate() error {
	if s.All {
		return nil
	}

	if !sizeTokenRegexp.MatchString(s.Amount) {
		return bosherr.Errorf("Growth amount '%s' is not a size", s.Amount)
	}

	return nil
}
