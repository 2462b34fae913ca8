package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/mahirfaisal/estate-api/internal/domain/entity"
	"github.com/mahirfaisal/estate-api/internal/domain/enum"
	"github.com/mahirfaisal/estate-api/internal/domain/repository"
	infraRepo "github.com/mahirfaisal/estate-api/internal/infrastructure/repository"
	"github.com/mahirfaisal/estate-api/pkg/apperror"
	"github.com/mahirfaisal/estate-api/pkg/currency"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// ReportService builds owner statements and their spreadsheet exports
type ReportService struct {
	ownerRepo   repository.OwnerRepository
	shopRepo    repository.ShopRepository
	leaseRepo   repository.LeaseRepository
	paymentRepo repository.PaymentRepository
	expenseRepo repository.ExpenseRepository
	depositRepo repository.BankDepositRepository
	converter   *currency.Converter
}

// NewReportService creates a new report service
func NewReportService(
	ownerRepo repository.OwnerRepository,
	shopRepo repository.ShopRepository,
	leaseRepo repository.LeaseRepository,
	paymentRepo repository.PaymentRepository,
	expenseRepo repository.ExpenseRepository,
	depositRepo repository.BankDepositRepository,
	converter *currency.Converter,
) *ReportService {
	return &ReportService{
		ownerRepo:   ownerRepo,
		shopRepo:    shopRepo,
		leaseRepo:   leaseRepo,
		paymentRepo: paymentRepo,
		expenseRepo: expenseRepo,
		depositRepo: depositRepo,
		converter:   converter,
	}
}

// OwnerStatement is one owner's financial position. Common income and
// expenses are split equally across all owners.
type OwnerStatement struct {
	Owner              *entity.Owner   `json:"owner"`
	Currency           string          `json:"currency"`
	SoleIncome         decimal.Decimal `json:"sole_income"`
	CommonIncomeShare  decimal.Decimal `json:"common_income_share"`
	TotalIncome        decimal.Decimal `json:"total_income"`
	OwnerExpenses      decimal.Decimal `json:"owner_expenses"`
	CommonExpenseShare decimal.Decimal `json:"common_expense_share"`
	TotalExpenses      decimal.Decimal `json:"total_expenses"`
	TotalDeposited     decimal.Decimal `json:"total_deposited"`
	// NetPosition = income - expenses - deposits: what is collected on the
	// owner's behalf and not yet banked
	NetPosition decimal.Decimal `json:"net_position"`
}

// GetOwnerStatement computes an owner's statement across all time. When
// display is true and a display currency is configured, every amount is
// converted for presentation; the stored figures stay in the base currency.
func (s *ReportService) GetOwnerStatement(ctx context.Context, ownerID uuid.UUID, display bool) (*OwnerStatement, error) {
	owner, err := s.ownerRepo.GetByID(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if owner == nil {
		return nil, apperror.NewNotFoundError("Owner")
	}

	// Common shops carry no owner_id, so the owner scope must not apply here
	unscoped := infraRepo.WithSkipOwnerScope(ctx, true)

	ownerCount, err := s.ownerRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if ownerCount == 0 {
		ownerCount = 1
	}
	split := decimal.NewFromInt(ownerCount)

	shops, err := s.shopRepo.ListAll(unscoped)
	if err != nil {
		return nil, err
	}

	soleIncome := decimal.Zero
	commonIncome := decimal.Zero
	for i := range shops {
		shop := &shops[i]
		isSole := shop.OwnershipType == enum.OwnershipTypeSole && shop.OwnerID != nil && *shop.OwnerID == ownerID
		isCommon := shop.OwnershipType == enum.OwnershipTypeCommon
		if !isSole && !isCommon {
			continue
		}

		leases, err := s.leaseRepo.ListByShop(unscoped, shop.ID)
		if err != nil {
			return nil, err
		}
		for j := range leases {
			payments, err := s.paymentRepo.ListByLease(unscoped, leases[j].ID)
			if err != nil {
				return nil, err
			}
			for k := range payments {
				if isSole {
					soleIncome = soleIncome.Add(payments[k].Amount)
				} else {
					commonIncome = commonIncome.Add(payments[k].Amount)
				}
			}
		}
	}
	commonIncomeShare := commonIncome.Div(split).Round(2)

	expenses, err := s.expenseRepo.ListForStatement(unscoped, ownerID)
	if err != nil {
		return nil, err
	}
	ownerExpenses := decimal.Zero
	commonExpenses := decimal.Zero
	for i := range expenses {
		if expenses[i].Allocation == enum.ExpenseAllocationCommon {
			commonExpenses = commonExpenses.Add(expenses[i].Amount)
		} else {
			ownerExpenses = ownerExpenses.Add(expenses[i].Amount)
		}
	}
	commonExpenseShare := commonExpenses.Div(split).Round(2)

	deposits, err := s.depositRepo.ListByOwner(unscoped, ownerID)
	if err != nil {
		return nil, err
	}
	deposited := decimal.Zero
	for i := range deposits {
		deposited = deposited.Add(deposits[i].Amount)
	}

	statement := &OwnerStatement{
		Owner:              owner,
		Currency:           s.converter.BaseCode(),
		SoleIncome:         soleIncome,
		CommonIncomeShare:  commonIncomeShare,
		TotalIncome:        soleIncome.Add(commonIncomeShare),
		OwnerExpenses:      ownerExpenses,
		CommonExpenseShare: commonExpenseShare,
		TotalExpenses:      ownerExpenses.Add(commonExpenseShare),
		TotalDeposited:     deposited,
	}
	statement.NetPosition = statement.TotalIncome.Sub(statement.TotalExpenses).Sub(statement.TotalDeposited)

	if display && s.converter.Enabled() {
		statement.Currency = s.converter.DisplayCode()
		statement.SoleIncome = s.converter.Display(statement.SoleIncome)
		statement.CommonIncomeShare = s.converter.Display(statement.CommonIncomeShare)
		statement.TotalIncome = s.converter.Display(statement.TotalIncome)
		statement.OwnerExpenses = s.converter.Display(statement.OwnerExpenses)
		statement.CommonExpenseShare = s.converter.Display(statement.CommonExpenseShare)
		statement.TotalExpenses = s.converter.Display(statement.TotalExpenses)
		statement.TotalDeposited = s.converter.Display(statement.TotalDeposited)
		statement.NetPosition = s.converter.Display(statement.NetPosition)
	}

	return statement, nil
}

// ExportOwnerStatement renders the statement as an xlsx workbook
func (s *ReportService) ExportOwnerStatement(ctx context.Context, ownerID uuid.UUID, display bool) ([]byte, string, error) {
	statement, err := s.GetOwnerStatement(ctx, ownerID, display)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := "Statement"
	f.SetSheetName("Sheet1", sheet)

	rows := [][]interface{}{
		{"Owner Statement"},
		{"Owner", statement.Owner.Name},
		{"Generated", time.Now().Format("2006-01-02")},
		{"Currency", statement.Currency},
		{},
		{"Sole income", statement.SoleIncome.InexactFloat64()},
		{"Common income share", statement.CommonIncomeShare.InexactFloat64()},
		{"Total income", statement.TotalIncome.InexactFloat64()},
		{},
		{"Owner expenses", statement.OwnerExpenses.InexactFloat64()},
		{"Common expense share", statement.CommonExpenseShare.InexactFloat64()},
		{"Total expenses", statement.TotalExpenses.InexactFloat64()},
		{},
		{"Deposited to bank", statement.TotalDeposited.InexactFloat64()},
		{"Net position", statement.NetPosition.InexactFloat64()},
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, "", err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, "", err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := fmt.Sprintf("statement-%s-%s.xlsx", statement.Owner.Name, time.Now().Format("20060102"))
	return buf.Bytes(), filename, nil
}
