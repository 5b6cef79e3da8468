package models

import (
	"strconv"

	"github.com/asaskevich/govalidator"
)

// Names are measured in characters, not bytes.
const (
	MinNameLength = 1
	MaxNameLength = 100
)

var (
	minLen = strconv.Itoa(MinNameLength)
	maxLen = strconv.Itoa(MaxNameLength)
)

func validNameLength(name string) bool {
	return govalidator.StringLength(name, minLen, maxLen)
}
