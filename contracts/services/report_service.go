package services

import (
	"context"

	"licensing-backend/db/models"
	"licensing-backend/utils"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContractReportRow is one line of the per-software contract export.
type ContractReportRow struct {
	Contract  models.Contract
	Buyer     string
	Seller    string
	PaidTotal decimal.Decimal
}

var ContractReportHeaders = []string{
	"Contract ID", "Buyer", "Seller", "Start", "End", "Version",
	"Years of updates", "Price", "Paid", "Signed",
}

func (r ContractReportRow) Cells() []interface{} {
	return []interface{}{
		r.Contract.ID.String(),
		r.Buyer,
		r.Seller,
		r.Contract.StartDate.Format("2006-01-02"),
		r.Contract.EndDate.Format("2006-01-02"),
		r.Contract.SoftwareVersion,
		r.Contract.YearsOfUpdates,
		r.Contract.Price.InexactFloat64(),
		r.PaidTotal.InexactFloat64(),
		r.Contract.Signed,
	}
}

// SoftwareContractsReport lists every contract of a software with the
// parties' display names and the amount paid so far.
func (s *ContractService) SoftwareContractsReport(ctx context.Context, softwareID uuid.UUID) (*models.Software, []ContractReportRow, error) {
	software, err := s.store.Softwares().GetByID(ctx, softwareID)
	if err != nil {
		return nil, nil, wrapStoreError("get software", notFound(err, "software"))
	}

	contracts, err := s.store.Contracts().ListBySoftware(ctx, softwareID)
	if err != nil {
		return nil, nil, utils.NewInternalError("list contracts", err)
	}

	names := make(map[uuid.UUID]string)
	name := func(id uuid.UUID) (string, error) {
		if n, ok := names[id]; ok {
			return n, nil
		}
		client, err := s.store.Clients().GetByID(ctx, id)
		if err != nil {
			return "", err
		}
		names[id] = client.DisplayName()
		return names[id], nil
	}

	rows := make([]ContractReportRow, 0, len(contracts))
	for _, c := range contracts {
		buyer, err := name(c.BuyerID)
		if err != nil {
			return nil, nil, utils.NewInternalError("resolve buyer", err)
		}
		seller, err := name(c.SellerID)
		if err != nil {
			return nil, nil, utils.NewInternalError("resolve seller", err)
		}
		paid, err := s.store.Payments().SumActive(ctx, c.ID)
		if err != nil {
			return nil, nil, utils.NewInternalError("sum payments", err)
		}
		rows = append(rows, ContractReportRow{Contract: c, Buyer: buyer, Seller: seller, PaidTotal: paid})
	}
	return software, rows, nil
}
