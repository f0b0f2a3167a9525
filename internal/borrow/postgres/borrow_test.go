package postgres_test

import (
	"testing"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/frahmantamala/inventory-management/internal"
	"github.com/frahmantamala/inventory-management/internal/borrow"
	borrowPostgres "github.com/frahmantamala/inventory-management/internal/borrow/postgres"
	borrowDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/borrow"
	inventoryDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/inventory"
	userDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/user"
)

func TestBorrowPostgres(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Borrow Postgres Suite")
}

func day(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	Expect(err).NotTo(HaveOccurred())
	return t
}

var _ = Describe("Borrow PostgreSQL Repository", func() {
	var (
		db   *gorm.DB
		repo borrow.RepositoryAPI
	)

	seedInventory := func(id int64, name string, quantity int) {
		item := &inventoryDatamodel.Inventory{
			InventoryID: id,
			Name:        name,
			Category:    "elektronik",
			Location:    "lab",
			Quantity:    quantity,
		}
		Expect(db.Create(item).Error).NotTo(HaveOccurred())
	}

	quantityOf := func(id int64) int {
		var item inventoryDatamodel.Inventory
		Expect(db.Where("inventory_id = ?", id).First(&item).Error).NotTo(HaveOccurred())
		return item.Quantity
	}

	BeforeEach(func() {
		var err error
		// SQLite in-memory database stands in for postgres
		db, err = gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		})
		Expect(err).NotTo(HaveOccurred())

		err = db.AutoMigrate(
			&userDatamodel.User{},
			&inventoryDatamodel.Inventory{},
			&borrowDatamodel.BorrowRecord{},
		)
		Expect(err).NotTo(HaveOccurred())

		user := &userDatamodel.User{UserID: 1, Username: "budi", Password: "hash", Role: "student"}
		Expect(db.Create(user).Error).NotTo(HaveOccurred())

		repo = borrowPostgres.NewBorrowRepository(db)
	})

	Describe("CreateBorrow", func() {
		It("should insert the record and decrement stock together", func() {
			seedInventory(10, "Proyektor", 2)

			rec := &borrowDatamodel.BorrowRecord{
				UserID:      1,
				InventoryID: 10,
				BorrowDate:  day("2025-01-10"),
				DueDate:     day("2025-01-20"),
			}
			Expect(repo.CreateBorrow(rec)).To(Succeed())

			Expect(rec.BorrowID).To(BeNumerically(">", 0))
			Expect(quantityOf(10)).To(Equal(1))
		})

		It("should refuse to borrow an out-of-stock item and persist nothing", func() {
			seedInventory(10, "Proyektor", 0)

			rec := &borrowDatamodel.BorrowRecord{
				UserID:      1,
				InventoryID: 10,
				BorrowDate:  day("2025-01-10"),
				DueDate:     day("2025-01-20"),
			}
			Expect(repo.CreateBorrow(rec)).To(MatchError(internal.ErrInventoryUnavailable))

			var count int64
			Expect(db.Model(&borrowDatamodel.BorrowRecord{}).Count(&count).Error).NotTo(HaveOccurred())
			Expect(count).To(BeZero())
			Expect(quantityOf(10)).To(Equal(0))
		})

		It("should never drive stock below zero across repeated borrows", func() {
			seedInventory(10, "Proyektor", 2)

			for i := 0; i < 2; i++ {
				rec := &borrowDatamodel.BorrowRecord{
					UserID:      1,
					InventoryID: 10,
					BorrowDate:  day("2025-01-10"),
					DueDate:     day("2025-01-20"),
				}
				Expect(repo.CreateBorrow(rec)).To(Succeed())
			}

			rec := &borrowDatamodel.BorrowRecord{
				UserID:      1,
				InventoryID: 10,
				BorrowDate:  day("2025-01-10"),
				DueDate:     day("2025-01-20"),
			}
			Expect(repo.CreateBorrow(rec)).To(MatchError(internal.ErrInventoryUnavailable))
			Expect(quantityOf(10)).To(Equal(0))
		})
	})

	Describe("CloseBorrow", func() {
		It("should stamp the return date and restore stock", func() {
			seedInventory(10, "Proyektor", 1)

			rec := &borrowDatamodel.BorrowRecord{
				UserID:      1,
				InventoryID: 10,
				BorrowDate:  day("2025-01-10"),
				DueDate:     day("2025-01-20"),
			}
			Expect(repo.CreateBorrow(rec)).To(Succeed())
			Expect(quantityOf(10)).To(Equal(0))

			closed, err := repo.CloseBorrow(rec.BorrowID, day("2025-01-18"))
			Expect(err).NotTo(HaveOccurred())

			Expect(closed.ReturnDate).NotTo(BeNil())
			Expect(closed.ReturnDate.Equal(day("2025-01-18"))).To(BeTrue())
			Expect(quantityOf(10)).To(Equal(1))
		})

		It("should return not found for an unknown record", func() {
			_, err := repo.CloseBorrow(99, day("2025-01-18"))
			Expect(err).To(MatchError(internal.ErrBorrowNotFound))
		})

		It("should still close the record when the inventory row is gone", func() {
			seedInventory(10, "Proyektor", 1)

			rec := &borrowDatamodel.BorrowRecord{
				UserID:      1,
				InventoryID: 10,
				BorrowDate:  day("2025-01-10"),
				DueDate:     day("2025-01-20"),
			}
			Expect(repo.CreateBorrow(rec)).To(Succeed())
			Expect(db.Where("inventory_id = ?", 10).Delete(&inventoryDatamodel.Inventory{}).Error).NotTo(HaveOccurred())

			closed, err := repo.CloseBorrow(rec.BorrowID, day("2025-01-18"))
			Expect(err).NotTo(HaveOccurred())
			Expect(closed.ReturnDate).NotTo(BeNil())
		})
	})

	Describe("GetByID", func() {
		It("should preload the user and inventory rows", func() {
			seedInventory(10, "Proyektor", 1)

			rec := &borrowDatamodel.BorrowRecord{
				UserID:      1,
				InventoryID: 10,
				BorrowDate:  day("2025-01-10"),
				DueDate:     day("2025-01-20"),
			}
			Expect(repo.CreateBorrow(rec)).To(Succeed())

			found, err := repo.GetByID(rec.BorrowID)
			Expect(err).NotTo(HaveOccurred())

			Expect(found.User).NotTo(BeNil())
			Expect(found.User.Username).To(Equal("budi"))
			Expect(found.Inventory).NotTo(BeNil())
			Expect(found.Inventory.Name).To(Equal("Proyektor"))
		})

		It("should return nil without error for an unknown ID", func() {
			found, err := repo.GetByID(99)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
		})
	})

	Describe("FindInRange", func() {
		It("should include closed records by return date and outstanding ones by due date", func() {
			seedInventory(10, "Proyektor", 5)

			inside := &borrowDatamodel.BorrowRecord{
				UserID: 1, InventoryID: 10,
				BorrowDate: day("2025-01-05"), DueDate: day("2025-01-25"),
			}
			Expect(repo.CreateBorrow(inside)).To(Succeed())
			_, err := repo.CloseBorrow(inside.BorrowID, day("2025-01-15"))
			Expect(err).NotTo(HaveOccurred())

			outstanding := &borrowDatamodel.BorrowRecord{
				UserID: 1, InventoryID: 10,
				BorrowDate: day("2025-01-08"), DueDate: day("2025-01-20"),
			}
			Expect(repo.CreateBorrow(outstanding)).To(Succeed())

			// closes after the window, so its return date pushes it out
			lateClose := &borrowDatamodel.BorrowRecord{
				UserID: 1, InventoryID: 10,
				BorrowDate: day("2025-01-09"), DueDate: day("2025-01-12"),
			}
			Expect(repo.CreateBorrow(lateClose)).To(Succeed())
			_, err = repo.CloseBorrow(lateClose.BorrowID, day("2025-02-10"))
			Expect(err).NotTo(HaveOccurred())

			before := &borrowDatamodel.BorrowRecord{
				UserID: 1, InventoryID: 10,
				BorrowDate: day("2024-12-20"), DueDate: day("2024-12-30"),
			}
			Expect(repo.CreateBorrow(before)).To(Succeed())

			records, err := repo.FindInRange(day("2025-01-01"), day("2025-01-31"))
			Expect(err).NotTo(HaveOccurred())

			ids := make([]int64, 0, len(records))
			for _, r := range records {
				ids = append(ids, r.BorrowID)
			}
			Expect(ids).To(ConsistOf(inside.BorrowID, outstanding.BorrowID))
		})
	})

	Describe("Delete", func() {
		It("should remove the record without touching stock", func() {
			seedInventory(10, "Proyektor", 1)

			rec := &borrowDatamodel.BorrowRecord{
				UserID:      1,
				InventoryID: 10,
				BorrowDate:  day("2025-01-10"),
				DueDate:     day("2025-01-20"),
			}
			Expect(repo.CreateBorrow(rec)).To(Succeed())

			Expect(repo.Delete(rec.BorrowID)).To(Succeed())

			found, err := repo.GetByID(rec.BorrowID)
			Expect(err).NotTo(HaveOccurred())
			Expect(found).To(BeNil())
			Expect(quantityOf(10)).To(Equal(0))
		})
	})
})
