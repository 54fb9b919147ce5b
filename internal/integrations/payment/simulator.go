package payment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// chargeRetention сколько одобренный платёж доступен для возврата
const chargeRetention = time.Hour

// Simulator имитация платёжного шлюза: ждёт delay и одобряет платёж
// Реальной обработки платежей нет.
// Платежи хранятся только для возврата: возвращённые удаляются сразу, остальные через chargeRetention
type Simulator struct {
	delay time.Duration
	log   Logger
	now   func() time.Time

	mu      sync.Mutex
	charges map[string]*Charge
}

// NewSimulator создаёт имитацию шлюза с задержкой обработки delay
func NewSimulator(delay time.Duration, log Logger) *Simulator {
	return &Simulator{
		delay:   delay,
		log:     log,
		now:     time.Now,
		charges: make(map[string]*Charge),
	}
}

// Charge "списывает" сумму после задержки
func (s *Simulator) Charge(ctx context.Context, req ChargeRequest) (*Charge, error) {
	if req.Amount <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAmount, req.Amount)
	}

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %v", ErrCancelled, ctx.Err())
		case <-timer.C:
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = CurrencyCLP
	}

	charge := &Charge{
		ID:          "sim_" + uuid.NewString(),
		Reference:   req.Reference,
		Amount:      req.Amount,
		Currency:    currency,
		Status:      StatusApproved,
		ProcessedAt: s.now(),
	}

	s.mu.Lock()
	s.pruneExpired(charge.ProcessedAt)
	s.charges[charge.ID] = charge
	s.mu.Unlock()

	s.log.Info("Payment simulator: approved charge id=%s, reference=%s, amount=%d %s",
		charge.ID, req.Reference, req.Amount, currency)

	return charge, nil
}

// Refund помечает платёж возвращённым и забывает его
// Повторный возврат того же платежа возвращает ErrChargeNotFound
func (s *Simulator) Refund(ctx context.Context, chargeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	charge, ok := s.charges[chargeID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrChargeNotFound, chargeID)
	}
	charge.Status = StatusRefunded
	delete(s.charges, chargeID)

	s.log.Warn("Payment simulator: refunded charge id=%s, reference=%s", chargeID, charge.Reference)
	return nil
}

// pruneExpired удаляет платежи старше chargeRetention. Вызывается под s.mu
func (s *Simulator) pruneExpired(now time.Time) {
	for id, charge := range s.charges {
		if now.Sub(charge.ProcessedAt) > chargeRetention {
			delete(s.charges, id)
		}
	}
}
