package app

import (
	"context"
	"fmt"
	"time"

	"billbook/internal/core"
)

// Services bundles the domain services the facade delegates to.
type Services struct {
	Companies  *core.CompanyService
	Invoices   *core.InvoiceService
	Receipts   *core.ReceiptService
	Prices     *core.PriceService
	Sync       *core.SyncService
	Statements *core.StatementService
	Notes      *core.NoteService
}

// NewServices wires the domain services over the given adapters.
func NewServices(local core.LocalStore, remote core.RemoteStore, conn core.Connectivity) *Services {
	companies := core.NewCompanyService(local, remote, conn)
	return &Services{
		Companies:  companies,
		Invoices:   core.NewInvoiceService(local, companies),
		Receipts:   core.NewReceiptService(local, companies),
		Prices:     core.NewPriceService(local, remote, conn),
		Sync:       core.NewSyncService(local, remote, conn),
		Statements: core.NewStatementService(local),
		Notes:      core.NewNoteService(local),
	}
}

type appService struct {
	svc *Services
}

// NewAppService returns the ApplicationService implementation.
func NewAppService(svc *Services) ApplicationService {
	return &appService{svc: svc}
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func (a *appService) ListCompanies(ctx context.Context) ([]core.Company, error) {
	return a.svc.Companies.List(ctx)
}

func (a *appService) GetCompany(ctx context.Context, docID string) (*core.Company, error) {
	return a.svc.Companies.Get(ctx, docID)
}

func (a *appService) CreateCompany(ctx context.Context, in core.CompanyInput) (*core.Company, error) {
	return a.svc.Companies.Create(ctx, in)
}

func (a *appService) UpdateCompany(ctx context.Context, docID string, in core.CompanyInput) (*core.Company, error) {
	return a.svc.Companies.Update(ctx, docID, in)
}

func (a *appService) DeleteCompany(ctx context.Context, docID string) error {
	return a.svc.Companies.Delete(ctx, docID)
}

func (a *appService) ListPrices(ctx context.Context) ([]core.PriceItem, error) {
	return a.svc.Prices.List(ctx)
}

func (a *appService) SavePrice(ctx context.Context, in core.PriceItem) (*core.PriceItem, error) {
	return a.svc.Prices.Save(ctx, in)
}

func (a *appService) DeletePrice(ctx context.Context, docID string) error {
	return a.svc.Prices.Delete(ctx, docID)
}

func (a *appService) ListInvoices(ctx context.Context, companyDocID string) ([]core.Invoice, error) {
	return a.svc.Invoices.ListByCompany(ctx, companyDocID)
}

func (a *appService) CreateInvoice(ctx context.Context, req InvoiceRequest) (*core.Invoice, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return a.svc.Invoices.Create(ctx, core.InvoiceInput{
		CompanyDocID: req.CompanyDocID,
		Date:         date,
		IsCredit:     req.IsCredit,
		Items:        req.Items,
	})
}

func (a *appService) UpdateInvoice(ctx context.Context, docID string, req InvoiceRequest) (*core.Invoice, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return a.svc.Invoices.Update(ctx, docID, core.InvoiceInput{
		CompanyDocID: req.CompanyDocID,
		Date:         date,
		IsCredit:     req.IsCredit,
		Items:        req.Items,
	})
}

func (a *appService) DeleteInvoice(ctx context.Context, docID string) error {
	return a.svc.Invoices.Delete(ctx, docID)
}

func (a *appService) ListReceipts(ctx context.Context, companyDocID string) ([]core.Receipt, error) {
	return a.svc.Receipts.ListByCompany(ctx, companyDocID)
}

func (a *appService) CreateReceipt(ctx context.Context, req ReceiptRequest) (*core.Receipt, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return a.svc.Receipts.Create(ctx, core.ReceiptInput{
		CompanyDocID: req.CompanyDocID,
		Amount:       req.Amount,
		Date:         date,
		Description:  req.Description,
	})
}

func (a *appService) DeleteReceipt(ctx context.Context, docID string) error {
	return a.svc.Receipts.Delete(ctx, docID)
}

func (a *appService) PullCompanies(ctx context.Context) (*SyncResult, error) {
	n, err := a.svc.Sync.PullCompanies(ctx)
	if err != nil {
		return nil, err
	}
	return &SyncResult{Count: n}, nil
}

func (a *appService) PullPrices(ctx context.Context) (*SyncResult, error) {
	n, err := a.svc.Sync.PullPrices(ctx)
	if err != nil {
		return nil, err
	}
	return &SyncResult{Count: n}, nil
}

func (a *appService) SyncCompanies(ctx context.Context) (*SyncResult, error) {
	n, err := a.svc.Sync.SyncCompanies(ctx)
	if err != nil {
		return nil, err
	}
	return &SyncResult{Count: n}, nil
}

func (a *appService) GetStatement(ctx context.Context, companyDocID, from, to string) (*core.Statement, error) {
	fromDate, err := parseDate(from)
	if err != nil {
		return nil, err
	}
	toDate, err := parseDate(to)
	if err != nil {
		return nil, err
	}
	return a.svc.Statements.Build(ctx, companyDocID, fromDate, toDate)
}

func (a *appService) SaveNote(ctx context.Context, req NoteRequest) (*core.Note, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return nil, err
	}
	return a.svc.Notes.Save(ctx, date, req.Note)
}

func (a *appService) ListNotes(ctx context.Context) ([]core.Note, error) {
	return a.svc.Notes.List(ctx)
}
