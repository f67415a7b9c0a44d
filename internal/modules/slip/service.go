package slip

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/hinode-pos/hinode-backend/internal/busdate"
)

// Service defines slip business logic.
type Service interface {
	RecordSlip(ctx context.Context, req CreateSlipRequest) (*Slip, error)
	GetSlip(ctx context.Context, id string) (*Slip, error)
	ListByDate(ctx context.Context, businessDate string) ([]*Slip, error)
	UpdateSlip(ctx context.Context, id string, req UpdateSlipRequest) (*Slip, error)
	DeleteSlip(ctx context.Context, id string) (businessDate string, err error)
}

type service struct {
	repo Repository
	now  func() time.Time
}

// NewService creates a new slip service.
func NewService(repo Repository) Service {
	return &service{repo: repo, now: time.Now}
}

// parseCount coerces a numeric form value; unparseable input is recorded
// as 0, never surfaced as an error.
func parseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

func validateMethod(raw string) (PaymentMethod, error) {
	if raw == "" {
		return PaymentCash, nil
	}
	method := PaymentMethod(strings.ToLower(strings.TrimSpace(raw)))
	for _, m := range PaymentMethods {
		if method == m {
			return method, nil
		}
	}
	return "", fmt.Errorf("invalid payment_method: %s (allowed: cash, credit, wechat, paypay, alipay)", raw)
}

func (s *service) RecordSlip(ctx context.Context, req CreateSlipRequest) (*Slip, error) {
	method, err := validateMethod(req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	now := s.now()
	slip := &Slip{
		ID:            uuid.New(),
		BusinessDate:  busdate.Resolve(req.BusinessDate, now),
		TableName:     strings.TrimSpace(req.TableName),
		People:        parseCount(req.People),
		Amount:        parseCount(req.Amount),
		PaymentMethod: method,
		CreatedAt:     busdate.Timestamp(now),
	}

	if err := s.repo.Create(ctx, slip); err != nil {
		return nil, err
	}
	return slip, nil
}

func (s *service) GetSlip(ctx context.Context, id string) (*Slip, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByDate(ctx context.Context, businessDate string) ([]*Slip, error) {
	return s.repo.ListByDate(ctx, businessDate)
}

func (s *service) UpdateSlip(ctx context.Context, id string, req UpdateSlipRequest) (*Slip, error) {
	slip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	slip.TableName = strings.TrimSpace(req.TableName)
	slip.People = parseCount(req.People)
	slip.Amount = parseCount(req.Amount)

	if err := s.repo.Update(ctx, slip); err != nil {
		return nil, err
	}
	return slip, nil
}

// DeleteSlip removes the slip and reports which business date it belonged
// to, so callers can refresh that day's report.
func (s *service) DeleteSlip(ctx context.Context, id string) (string, error) {
	slip, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return "", err
	}
	return slip.BusinessDate, nil
}
