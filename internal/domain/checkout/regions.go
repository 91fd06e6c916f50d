package checkout

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownRegion     = errors.New("checkout: unknown delivery region")
	ErrUnknownMethod     = errors.New("checkout: unknown delivery method")
	ErrMethodUnavailable = errors.New("checkout: delivery method not available for region")
)

const (
	RegionLagos = "Lagos"
	RegionAbuja = "FCT - Abuja"
)

var regions = []string{
	"Abia", "Adamawa", "Akwa Ibom", "Anambra", "Bauchi", "Bayelsa", "Benue", "Borno",
	"Cross River", "Delta", "Ebonyi", "Edo", "Ekiti", "Enugu", "FCT - Abuja", "Gombe",
	"Imo", "Jigawa", "Kaduna", "Kano", "Katsina", "Kebbi", "Kogi", "Kwara", "Lagos",
	"Nasarawa", "Niger", "Ogun", "Ondo", "Osun", "Oyo", "Plateau", "Rivers", "Sokoto",
	"Taraba", "Yobe", "Zamfara",
}

// flatFees applies to every region whose fee does not depend on the method.
var flatFees = map[string]int64{
	"FCT - Abuja": 5000,

	"Jigawa": 9000, "Kaduna": 9000, "Kano": 9000, "Katsina": 9000, "Kebbi": 9000,
	"Sokoto": 9000, "Zamfara": 9000, "Adamawa": 9000, "Bauchi": 9000, "Borno": 9000,
	"Gombe": 9000, "Taraba": 9000, "Yobe": 9000,

	"Benue": 6000, "Kogi": 6000, "Kwara": 6000, "Nasarawa": 6000, "Niger": 6000,
	"Plateau": 6000, "Ekiti": 6000, "Ogun": 6000, "Ondo": 6000, "Osun": 6000,
	"Oyo": 6000, "Abia": 6000, "Anambra": 6000, "Ebonyi": 6000, "Enugu": 6000,
	"Imo": 6000, "Akwa Ibom": 6000, "Bayelsa": 6000, "Cross River": 6000,
	"Delta": 6000, "Edo": 6000, "Rivers": 6000,
}

var splitFees = map[string]map[Method]int64{
	"Lagos": {MethodDoorstep: 8000, MethodPickup: 6000},
}

// Regions lists every deliverable region in display order.
func Regions() []string {
	return append([]string(nil), regions...)
}

// LookupRegion matches a region name ignoring case and surrounding space.
func LookupRegion(name string) (string, error) {
	name = strings.TrimSpace(name)
	for _, r := range regions {
		if strings.EqualFold(r, name) {
			return r, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownRegion, name)
}

type Method string

const (
	MethodDoorstep Method = "doorstep"
	MethodPickup   Method = "pickup"
)

func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case MethodDoorstep:
		return MethodDoorstep, nil
	case MethodPickup:
		return MethodPickup, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// CanDoorstep reports whether home delivery reaches region.
func CanDoorstep(region string) bool {
	return region == RegionLagos || region == RegionAbuja
}

// CanPickup reports whether region has pickup. Abuja is doorstep only.
func CanPickup(region string) bool {
	return region != RegionAbuja
}

// Allowed reports whether m may be chosen for region.
func Allowed(region string, m Method) bool {
	switch m {
	case MethodDoorstep:
		return CanDoorstep(region)
	case MethodPickup:
		return CanPickup(region)
	}
	return false
}

// Fee is the delivery fee in whole naira. No region selected, or a region
// outside the table, costs nothing.
func Fee(region string, m Method) int64 {
	if split, ok := splitFees[region]; ok {
		return split[m]
	}
	return flatFees[region]
}
