package borrow

import (
	"sort"

	borrowDatamodel "github.com/frahmantamala/inventory-management/internal/core/datamodel/borrow"
)

// Group dimensions accepted by the usage report.
const (
	GroupByUser     = "user"
	GroupByItem     = "item"
	GroupByCategory = "category"
	GroupByLocation = "location"
)

const phantomQuantity = 1

// UsageReport partitions the borrow records of a date window into groups
// along one dimension and aggregates per-group counters. Every matching
// record lands in exactly one group. Outstanding records count against the
// window through their due date, so open loans inside the period are not
// silently dropped.
func (s *Service) UsageReport(dto UsageReportDTO) (*UsageReportResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}
	rows, err := s.repo.FindInRange(dto.from, dto.to)
	if err != nil {
		s.logger.Error("failed to query borrow records for report", "error", err)
		return nil, err
	}

	groups := make(map[string]*UsageGroup)
	for _, row := range rows {
		key := groupKey(dto.GroupBy, row)

		g, ok := groups[key]
		if !ok {
			g = &UsageGroup{Group: key}
			groups[key] = g
		}

		rec := FromDataModel(row)
		g.TotalBorrowed += phantomQuantity
		if rec.Status() == StatusReturned {
			g.TotalReturned += phantomQuantity
		} else {
			g.ItemsInUse += phantomQuantity
		}
	}

	analysis := make([]*UsageGroup, 0, len(groups))
	for _, g := range groups {
		analysis = append(analysis, g)
	}
	sort.Slice(analysis, func(i, j int) bool {
		return analysis[i].Group < analysis[j].Group
	})

	return &UsageReportResponse{
		AnalysisPeriode: AnalysisPeriode{
			BorrowDate: dto.BorrowDate,
			ReturnDate: dto.ReturnDate,
		},
		GroupBy:       dto.GroupBy,
		UsageAnalysis: analysis,
	}, nil
}

// BorrowAnalysis ranks items by borrow frequency and flags items that came
// back after their due date.
func (s *Service) BorrowAnalysis(dto BorrowAnalysisDTO) (*BorrowAnalysisResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	rows, err := s.repo.FindInRange(dto.from, dto.to)
	if err != nil {
		s.logger.Error("failed to query borrow records for analysis", "error", err)
		return nil, err
	}

	frequent := make(map[int64]*ItemUsage)
	late := make(map[int64]*LateItemUsage)
	for _, row := range rows {
		name, category := "Unknown Item", "Unknown Category"
		if row.Inventory != nil {
			name, category = row.Inventory.Name, row.Inventory.Category
		}

		f, ok := frequent[row.InventoryID]
		if !ok {
			f = &ItemUsage{ItemID: row.InventoryID, Name: name, Category: category}
			frequent[row.InventoryID] = f
		}
		f.TotalBorrowed++

		if !FromDataModel(row).IsLate() {
			continue
		}
		l, ok := late[row.InventoryID]
		if !ok {
			l = &LateItemUsage{ItemID: row.InventoryID, Name: name, Category: category}
			late[row.InventoryID] = l
		}
		l.TotalLateReturns++
	}

	frequentItems := make([]*ItemUsage, 0, len(frequent))
	for _, f := range frequent {
		frequentItems = append(frequentItems, f)
	}
	sort.Slice(frequentItems, func(i, j int) bool {
		if frequentItems[i].TotalBorrowed != frequentItems[j].TotalBorrowed {
			return frequentItems[i].TotalBorrowed > frequentItems[j].TotalBorrowed
		}
		return frequentItems[i].ItemID < frequentItems[j].ItemID
	})

	lateItems := make([]*LateItemUsage, 0, len(late))
	for _, l := range late {
		l.TotalBorrowed = frequent[l.ItemID].TotalBorrowed
		lateItems = append(lateItems, l)
	}
	sort.Slice(lateItems, func(i, j int) bool {
		if lateItems[i].TotalLateReturns != lateItems[j].TotalLateReturns {
			return lateItems[i].TotalLateReturns > lateItems[j].TotalLateReturns
		}
		return lateItems[i].ItemID < lateItems[j].ItemID
	})

	return &BorrowAnalysisResponse{
		AnalysisPeriod: AnalysisPeriod{
			StartDate: dto.StartDate,
			EndDate:   dto.EndDate,
		},
		FrequentlyBorrowedItems: frequentItems,
		InefficientItems:        lateItems,
	}, nil
}

// groupKey resolves the dimension value for one record. Records whose joined
// row went missing fall back to a sentinel bucket instead of being dropped.
func groupKey(groupBy string, row *borrowDatamodel.BorrowRecord) string {
	switch groupBy {
	case GroupByUser:
		if row.User != nil {
			return row.User.Username
		}
		return "Unknown User"
	case GroupByCategory:
		if row.Inventory != nil {
			return row.Inventory.Category
		}
		return "Unknown Category"
	case GroupByLocation:
		if row.Inventory != nil {
			return row.Inventory.Location
		}
		return "Unknown Location"
	default:
		if row.Inventory != nil {
			return row.Inventory.Name
		}
		return "Unknown Item"
	}
}
