// Package endpoints holds the static catalog of platform API endpoint
// templates. Templates contain :name tokens that are substituted with
// caller-supplied path parameters at request time.
package endpoints

import (
	"fmt"
	"sort"
	"strings"
)

const (
	RestaurantList    = "/restaurants"
	RestaurantDetails = "/restaurants/:id"
	RestaurantMenu    = "/restaurants/:id/menu"
	RestaurantStats   = "/restaurants/:id/stats"
	OrderList         = "/orders"
	OrderDetails      = "/orders/:id"
	OrderCreate       = "/orders"
	OrderUpdate       = "/orders/:id"
	StaffList         = "/restaurants/:id/staff"
	StaffInvite       = "/staff/invites"
	PaymentList       = "/payments"
	PaymentDetails    = "/payments/:id"
	ProfileDetails    = "/profile"
)

// Catalog maps logical operation names to their URL templates.
var Catalog = map[string]string{
	"RESTAURANT_LIST":    RestaurantList,
	"RESTAURANT_DETAILS": RestaurantDetails,
	"RESTAURANT_MENU":    RestaurantMenu,
	"RESTAURANT_STATS":   RestaurantStats,
	"ORDER_LIST":         OrderList,
	"ORDER_DETAILS":      OrderDetails,
	"ORDER_CREATE":       OrderCreate,
	"ORDER_UPDATE":       OrderUpdate,
	"STAFF_LIST":         StaffList,
	"STAFF_INVITE":       StaffInvite,
	"PAYMENT_LIST":       PaymentList,
	"PAYMENT_DETAILS":    PaymentDetails,
	"PROFILE_DETAILS":    ProfileDetails,
}

// Params maps template token names to their values. Values are stringified
// with fmt.Sprint, so numbers work as well as strings.
type Params map[string]any

// Resolve substitutes every :name token present in params into the template.
// Parameters without a matching token are ignored; tokens without a matching
// parameter are left in the path verbatim.
func Resolve(template string, params Params) string {
	resolved := template
	for name, value := range params {
		resolved = strings.ReplaceAll(resolved, ":"+name, fmt.Sprint(value))
	}
	return resolved
}

// Lookup returns the template registered under a logical operation name.
func Lookup(name string) (string, error) {
	template, ok := Catalog[strings.ToUpper(name)]
	if !ok {
		return "", fmt.Errorf("unknown endpoint %q", name)
	}
	return template, nil
}

// Names returns the logical operation names in the catalog, sorted.
func Names() []string {
	names := make([]string, 0, len(Catalog))
	for name := range Catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
