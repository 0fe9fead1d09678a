package payslip

import (
	"context"
	"errors"
	"strings"

	paysliperrors "go-hrm/internal/payslip/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	GetSingle(ctx context.Context, employeeID, year, month string) (PayslipResponse, error)
	GetMultiple(ctx context.Context, req MultiplePayslipsRequest) (MultiplePayslipsResponse, error)
	RenderPDF(ctx context.Context, employeeID, year, month string) ([]byte, string, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payslip.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payslip.service")
	}
	return &service{repo: repo, logger: l}
}

// GetSingle resolves employee, then year, then month, and reports the first
// stage that has no data.
func (s *service) GetSingle(ctx context.Context, employeeID, year, month string) (PayslipResponse, error) {
	if strings.TrimSpace(employeeID) == "" || strings.TrimSpace(year) == "" || strings.TrimSpace(month) == "" {
		return PayslipResponse{}, paysliperrors.ErrInvalidRequest
	}

	p, err := s.load(ctx, employeeID, paysliperrors.ErrPayslipNotFound)
	if err != nil {
		return PayslipResponse{}, err
	}

	y := p.findYear(year)
	if y == nil {
		return PayslipResponse{}, paysliperrors.ErrYearNotFound
	}

	key, ok := NormalizeMonth(month)
	if !ok {
		return PayslipResponse{}, paysliperrors.ErrMonthNotFound
	}
	m := y.findMonth(key)
	if m == nil {
		return PayslipResponse{}, paysliperrors.ErrMonthNotFound
	}

	return PayslipResponse{
		EmployeeInfo: toEmployeeInfo(p),
		Earnings:     m.Earnings,
		Deductions:   m.Deductions,
	}, nil
}

// GetMultiple returns the requested months that exist; the rest are left out
// without an error.
func (s *service) GetMultiple(ctx context.Context, req MultiplePayslipsRequest) (MultiplePayslipsResponse, error) {
	if strings.TrimSpace(req.EmployeeID) == "" || strings.TrimSpace(req.Year) == "" || req.Months == nil {
		return MultiplePayslipsResponse{}, paysliperrors.ErrInvalidRequest
	}

	p, err := s.load(ctx, req.EmployeeID, paysliperrors.ErrEmployeeNotFound)
	if err != nil {
		return MultiplePayslipsResponse{}, err
	}

	y := p.findYear(req.Year)
	if y == nil {
		return MultiplePayslipsResponse{}, paysliperrors.ErrYearNotFound
	}

	months := make(map[MonthKey]MonthData, len(req.Months))
	for _, raw := range req.Months {
		key, ok := NormalizeMonth(raw)
		if !ok {
			continue
		}
		if m := y.findMonth(key); m != nil {
			months[key] = MonthData{Earnings: m.Earnings, Deductions: m.Deductions}
		}
	}

	s.logger.Debug("multiple payslips resolved",
		zap.String("employee_id", req.EmployeeID),
		zap.String("year", req.Year),
		zap.Int("requested", len(req.Months)),
		zap.Int("found", len(months)),
	)

	return MultiplePayslipsResponse{
		EmployeeInfo: toEmployeeInfo(p),
		Months:       months,
	}, nil
}

func (s *service) RenderPDF(ctx context.Context, employeeID, year, month string) ([]byte, string, error) {
	slip, err := s.GetSingle(ctx, employeeID, year, month)
	if err != nil {
		return nil, "", err
	}

	key, _ := NormalizeMonth(month)
	data, err := buildPayslipPDF(slip, year, key)
	if err != nil {
		s.logger.Error("render payslip pdf failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, "", err
	}

	filename := "payslip_" + slip.EmployeeID + "_" + year + "_" + string(key) + ".pdf"
	return data, filename, nil
}

func (s *service) load(ctx context.Context, employeeID string, notFound error) (*Payslip, error) {
	p, err := s.repo.FindByEmployeeID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound
		}
		s.logger.Error("load payslip failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return p, nil
}

func toEmployeeInfo(p *Payslip) EmployeeInfo {
	lop := p.LOP
	if lop == "" {
		lop = "0.0"
	}
	return EmployeeInfo{
		Name:        p.Name,
		EmployeeID:  p.EmployeeID,
		Designation: p.Designation,
		BankName:    p.BankName,
		Department:  p.Department,
		AccountNo:   p.AccountNo,
		Location:    p.Location,
		LOP:         lop,
	}
}
