package endpoints_test

import (
	"sort"
	"testing"

	"github.com/fynlo/fynlo-go/api/endpoints"
	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
)

func TestUnitEndpoints(t *testing.T) {
	spec.Run(t, "Testing the endpoint catalog", testEndpoints, spec.Report(report.Terminal{}))
}

func testEndpoints(t *testing.T, when spec.G, it spec.S) {
	it.Before(func() {
		RegisterTestingT(t)
	})

	when("Resolve()", func() {
		it("substitutes a matching token and leaves unmatched tokens verbatim", func() {
			resolved := endpoints.Resolve("/things/:a/sub/:b", endpoints.Params{"a": "5"})
			Expect(resolved).To(Equal("/things/5/sub/:b"))
		})

		it("stringifies numeric parameter values", func() {
			resolved := endpoints.Resolve(endpoints.RestaurantDetails, endpoints.Params{"id": 42})
			Expect(resolved).To(Equal("/restaurants/42"))
		})

		it("ignores parameters that have no token in the template", func() {
			resolved := endpoints.Resolve(endpoints.RestaurantList, endpoints.Params{"id": "5"})
			Expect(resolved).To(Equal("/restaurants"))
		})

		it("returns the template untouched when no parameters are given", func() {
			Expect(endpoints.Resolve(endpoints.OrderDetails, nil)).To(Equal("/orders/:id"))
		})
	})

	when("Lookup()", func() {
		it("finds templates by logical name regardless of case", func() {
			template, err := endpoints.Lookup("restaurant_details")
			Expect(err).NotTo(HaveOccurred())
			Expect(template).To(Equal("/restaurants/:id"))
		})

		it("throws an error for unknown names", func() {
			_, err := endpoints.Lookup("NOPE")
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("unknown endpoint"))
		})
	})

	when("Names()", func() {
		it("lists every catalog entry in sorted order", func() {
			names := endpoints.Names()
			Expect(len(names)).To(Equal(len(endpoints.Catalog)))
			Expect(sort.StringsAreSorted(names)).To(BeTrue())
		})
	})
}
