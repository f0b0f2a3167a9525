package borrow

import (
	"log/slog"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	borrowDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/borrow"
	inventoryDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/inventory"
	userDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/user"
)

func day(value string) time.Time {
	t, err := time.Parse(DateLayout, value)
	Expect(err).NotTo(HaveOccurred())
	return t
}

func dayPtr(value string) *time.Time {
	t := day(value)
	return &t
}

var _ = Describe("UsageAnalysis", func() {
	var (
		service *Service
		repo    *mockRepository
	)

	projector := &inventoryDatamodel.Inventory{InventoryID: 10, Name: "Proyektor", Category: "elektronik", Location: "lab"}
	microscope := &inventoryDatamodel.Inventory{InventoryID: 11, Name: "Mikroskop", Category: "alat lab", Location: "lab biologi"}
	budi := &userDatamodel.User{UserID: 1, Username: "budi", Role: "student"}
	siti := &userDatamodel.User{UserID: 2, Username: "siti", Role: "student"}

	addRecord := func(rec *borrowDatamodel.BorrowRecord) {
		rec.BorrowID = repo.nextID
		repo.nextID++
		repo.records[rec.BorrowID] = rec
	}

	BeforeEach(func() {
		repo = newMockRepository()
		service = NewService(repo, &mockUserReader{}, &mockInventoryReader{}, slog.Default())

		// two closed loans and one outstanding, all inside January
		addRecord(&borrowDatamodel.BorrowRecord{
			UserID: 1, InventoryID: 10,
			BorrowDate: day("2025-01-05"), DueDate: day("2025-01-10"), ReturnDate: dayPtr("2025-01-09"),
			User: budi, Inventory: projector,
		})
		addRecord(&borrowDatamodel.BorrowRecord{
			UserID: 2, InventoryID: 11,
			BorrowDate: day("2025-01-06"), DueDate: day("2025-01-12"), ReturnDate: dayPtr("2025-01-15"),
			User: siti, Inventory: microscope,
		})
		addRecord(&borrowDatamodel.BorrowRecord{
			UserID: 1, InventoryID: 11,
			BorrowDate: day("2025-01-08"), DueDate: day("2025-01-20"),
			User: budi, Inventory: microscope,
		})
	})

	Describe("UsageReport", func() {
		It("should require all fields", func() {
			_, err := service.UsageReport(UsageReportDTO{BorrowDate: "2025-01-01", ReturnDate: "2025-01-31"})
			Expect(err).To(HaveOccurred())
		})

		It("should reject an unknown group dimension", func() {
			_, err := service.UsageReport(UsageReportDTO{
				BorrowDate: "2025-01-01", ReturnDate: "2025-01-31", GroupBy: "color",
			})
			Expect(err).To(HaveOccurred())
		})

		It("should return an empty analysis for a window with no records", func() {
			report, err := service.UsageReport(UsageReportDTO{
				BorrowDate: "2030-01-01", ReturnDate: "2030-01-31", GroupBy: GroupByItem,
			})

			Expect(err).NotTo(HaveOccurred())
			Expect(report.UsageAnalysis).To(BeEmpty())
		})

		It("should partition every record into exactly one group", func() {
			for _, dim := range []string{GroupByUser, GroupByItem, GroupByCategory, GroupByLocation} {
				report, err := service.UsageReport(UsageReportDTO{
					BorrowDate: "2025-01-01", ReturnDate: "2025-01-31", GroupBy: dim,
				})
				Expect(err).NotTo(HaveOccurred())

				total := 0
				for _, g := range report.UsageAnalysis {
					total += g.TotalBorrowed
				}
				Expect(total).To(Equal(3), "dimension %s", dim)
			}
		})

		It("should split counters between returned and in-use", func() {
			report, err := service.UsageReport(UsageReportDTO{
				BorrowDate: "2025-01-01", ReturnDate: "2025-01-31", GroupBy: GroupByItem,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(report.UsageAnalysis).To(HaveLen(2))
			Expect(report.UsageAnalysis[0].Group).To(Equal("Mikroskop"))
			Expect(report.UsageAnalysis[0].TotalBorrowed).To(Equal(2))
			Expect(report.UsageAnalysis[0].TotalReturned).To(Equal(1))
			Expect(report.UsageAnalysis[0].ItemsInUse).To(Equal(1))
			Expect(report.UsageAnalysis[1].Group).To(Equal("Proyektor"))
			Expect(report.UsageAnalysis[1].TotalBorrowed).To(Equal(1))
		})

		It("should order groups lexicographically", func() {
			report, err := service.UsageReport(UsageReportDTO{
				BorrowDate: "2025-01-01", ReturnDate: "2025-01-31", GroupBy: GroupByUser,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(report.UsageAnalysis).To(HaveLen(2))
			Expect(report.UsageAnalysis[0].Group).To(Equal("budi"))
			Expect(report.UsageAnalysis[1].Group).To(Equal("siti"))
		})

		It("should bucket records with a missing inventory row as unknown", func() {
			addRecord(&borrowDatamodel.BorrowRecord{
				UserID: 1, InventoryID: 99,
				BorrowDate: day("2025-01-09"), DueDate: day("2025-01-11"), ReturnDate: dayPtr("2025-01-10"),
				User: budi,
			})

			report, err := service.UsageReport(UsageReportDTO{
				BorrowDate: "2025-01-01", ReturnDate: "2025-01-31", GroupBy: GroupByCategory,
			})
			Expect(err).NotTo(HaveOccurred())

			var groups []string
			for _, g := range report.UsageAnalysis {
				groups = append(groups, g.Group)
			}
			Expect(groups).To(ContainElement("Unknown Category"))
		})

		It("should echo the requested window and dimension", func() {
			report, err := service.UsageReport(UsageReportDTO{
				BorrowDate: "2025-01-01", ReturnDate: "2025-01-31", GroupBy: GroupByLocation,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(report.AnalysisPeriode.BorrowDate).To(Equal("2025-01-01"))
			Expect(report.AnalysisPeriode.ReturnDate).To(Equal("2025-01-31"))
			Expect(report.GroupBy).To(Equal(GroupByLocation))
		})
	})

	Describe("BorrowAnalysis", func() {
		It("should require both dates", func() {
			_, err := service.BorrowAnalysis(BorrowAnalysisDTO{StartDate: "2025-01-01"})
			Expect(err).To(HaveOccurred())
		})

		It("should count borrows per item, most borrowed first", func() {
			analysis, err := service.BorrowAnalysis(BorrowAnalysisDTO{
				StartDate: "2025-01-01", EndDate: "2025-01-31",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(analysis.FrequentlyBorrowedItems).To(HaveLen(2))
			Expect(analysis.FrequentlyBorrowedItems[0].ItemID).To(Equal(int64(11)))
			Expect(analysis.FrequentlyBorrowedItems[0].TotalBorrowed).To(Equal(2))
			Expect(analysis.FrequentlyBorrowedItems[1].ItemID).To(Equal(int64(10)))
			Expect(analysis.FrequentlyBorrowedItems[1].TotalBorrowed).To(Equal(1))
		})

		It("should flag only items returned after their due date", func() {
			analysis, err := service.BorrowAnalysis(BorrowAnalysisDTO{
				StartDate: "2025-01-01", EndDate: "2025-01-31",
			})
			Expect(err).NotTo(HaveOccurred())

			// only the microscope loan came back late; the outstanding one
			// and the on-time projector loan do not count
			Expect(analysis.InefficientItems).To(HaveLen(1))
			late := analysis.InefficientItems[0]
			Expect(late.ItemID).To(Equal(int64(11)))
			Expect(late.TotalLateReturns).To(Equal(1))
			Expect(late.TotalBorrowed).To(Equal(2))
		})

		It("should return empty lists for a window with no records", func() {
			analysis, err := service.BorrowAnalysis(BorrowAnalysisDTO{
				StartDate: "2030-01-01", EndDate: "2030-01-31",
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(analysis.FrequentlyBorrowedItems).To(BeEmpty())
			Expect(analysis.InefficientItems).To(BeEmpty())
		})
	})
})
