package store_test

import (
	"context"
	"testing"

	"github.com/fynlo/fynlo-go/store"
	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
)

func TestUnitMemoryStore(t *testing.T) {
	spec.Run(t, "Testing the in-memory store", testMemoryStore, spec.Report(report.Terminal{}))
}

func testMemoryStore(t *testing.T, when spec.G, it spec.S) {
	var subject *store.Memory

	it.Before(func() {
		RegisterTestingT(t)
		subject = store.NewMemory()
		subject.Seed("restaurants", []store.Row{
			{"id": "1", "name": "Casa Jose", "status": "open"},
			{"id": "2", "name": "The Anchor", "status": "closed"},
			{"id": "3", "name": "Joe's Diner", "status": "open"},
			{"id": "4", "name": "Blue Finch", "status": "pending"},
		})
	})

	when("Eq()", func() {
		it("keeps only rows with a matching value", func() {
			rows, err := subject.From("restaurants").Eq("status", "open").Execute(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
		})
	})

	when("In()", func() {
		it("applies set membership", func() {
			rows, err := subject.From("restaurants").
				In("status", []any{"open", "closed"}).
				Execute(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(3))
		})
	})

	when("Like()", func() {
		it("matches substrings for %s% patterns", func() {
			rows, err := subject.From("restaurants").Like("name", "%Jo%").Execute(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
		})

		it("matches prefixes for s% patterns", func() {
			rows, err := subject.From("restaurants").Like("name", "The%").Execute(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(1))
			Expect(rows[0]["id"]).To(Equal("2"))
		})
	})

	when("Order() and Range()", func() {
		it("sorts ascending and slices the requested window", func() {
			rows, err := subject.From("restaurants").
				Order("name", true).
				Range(1, 2).
				Execute(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(HaveLen(2))
			Expect(rows[0]["name"]).To(Equal("Casa Jose"))
			Expect(rows[1]["name"]).To(Equal("Joe's Diner"))
		})

		it("returns nothing when the window starts past the result", func() {
			rows, err := subject.From("restaurants").Range(10, 19).Execute(context.Background())
			Expect(err).NotTo(HaveOccurred())
			Expect(rows).To(BeEmpty())
		})
	})

	when("Execute()", func() {
		it("respects a cancelled context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()

			_, err := subject.From("restaurants").Execute(ctx)
			Expect(err).To(MatchError(context.Canceled))
		})
	})
}
