package query_test

import (
	"testing"

	"github.com/fynlo/fynlo-go/query"
	"github.com/golang/mock/gomock"
	. "github.com/onsi/gomega"
	"github.com/sclevine/spec"
	"github.com/sclevine/spec/report"
)

func TestUnitFilters(t *testing.T) {
	spec.Run(t, "Testing filter translation", testFilters, spec.Report(report.Terminal{}))
}

func testFilters(t *testing.T, when spec.G, it spec.S) {
	var (
		mockCtrl  *gomock.Controller
		mockQuery *MockQuery
	)

	it.Before(func() {
		RegisterTestingT(t)
		mockCtrl = gomock.NewController(t)
		mockQuery = NewMockQuery(mockCtrl)
	})

	it.After(func() {
		mockCtrl.Finish()
	})

	when("Build()", func() {
		it("applies set membership for OneOf and substring match for Contains", func() {
			mockQuery.EXPECT().In("status", []any{"open", "closed"}).Return(mockQuery)
			mockQuery.EXPECT().Like("name", "%jo%").Return(mockQuery)

			result := query.Build(mockQuery, query.Filters{
				"status": query.OneOf("open", "closed"),
				"name":   query.Contains("jo"),
			})
			Expect(result).To(Equal(mockQuery))
		})

		it("applies equality for scalar values", func() {
			mockQuery.EXPECT().Eq("currency", "GBP").Return(mockQuery)

			query.Build(mockQuery, query.Filters{
				"currency": query.Equals("GBP"),
			})
		})

		it("omits empty-string, nil and empty-set conditions entirely", func() {
			query.Build(mockQuery, query.Filters{
				"status":   query.Equals(""),
				"owner":    query.Equals(nil),
				"currency": query.OneOf(),
				"name":     query.Contains(""),
			})
		})

		it("treats a literal % in an Equals value as data, not a wildcard", func() {
			mockQuery.EXPECT().Eq("discount", "10%").Return(mockQuery)

			query.Build(mockQuery, query.Filters{
				"discount": query.Equals("10%"),
			})
		})
	})

	when("BuildPaginated()", func() {
		it("adds ordering and an inclusive range window", func() {
			mockQuery.EXPECT().Eq("status", "open").Return(mockQuery)
			mockQuery.EXPECT().Order("name", true).Return(mockQuery)
			mockQuery.EXPECT().Range(20, 29).Return(mockQuery)

			query.BuildPaginated(mockQuery, query.Filters{
				"status": query.Equals("open"),
			}, "name", true, query.Page{Number: 3, Size: 10})
		})

		it("clamps page numbers below one", func() {
			mockQuery.EXPECT().Range(0, 9).Return(mockQuery)

			query.BuildPaginated(mockQuery, nil, "", false, query.Page{Number: 0, Size: 10})
		})
	})
}
