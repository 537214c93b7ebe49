// Package economy implements the virtual currency over the economy ledger.
// Every balance movement goes through a Service method that runs inside a
// single locked ledger mutation, so the non-negative balance invariant is
// enforced in one place instead of trusting each command's pre-check.
package economy

import (
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/PancyStudios/PancyStatsGo/pkg/models"
	"github.com/PancyStudios/PancyStatsGo/pkg/storage"
)

// Reward and penalty ranges, inclusive
const (
	dailyMin = 500
	dailyMax = 1000
	workMin  = 100
	workMax  = 500

	robVictimMin = 100
	robStealMin  = 50
	robStealCap  = 500
	robFineMin   = 100
	robFineMax   = 300
)

var jobs = []string{"programmer", "teacher", "doctor", "chef", "artist", "musician"}

// ErrInsufficientFunds means the source sub-balance does not cover the amount
var ErrInsufficientFunds = errors.New("fondos insuficientes")

// ErrInvalidAmount means a zero-or-negative amount where a positive one is required
var ErrInvalidAmount = errors.New("cantidad inválida")

// ErrVictimTooPoor means the rob target is below the eligibility threshold
var ErrVictimTooPoor = errors.New("la víctima no tiene suficiente dinero")

// CooldownError reports how long until /daily can be claimed again
type CooldownError struct {
	Remaining time.Duration
}

func (e *CooldownError) Error() string {
	return fmt.Sprintf("recompensa diaria ya reclamada, vuelve en %s", e.Remaining.Round(time.Second))
}

// RobResult describes the coin-flip outcome of a robbery
type RobResult struct {
	Success bool
	// Amount is the stolen sum on success, the fine actually paid on failure
	Amount int
	Robber models.EconomyAccount
	Victim models.EconomyAccount
}

// Service owns all mutations of the economy ledger
type Service struct {
	ledger *storage.Ledger[models.EconomyAccount]

	rngMu sync.Mutex
	rng   *rand.Rand

	// opt-in 24h limit for /daily; the original bot never enforced one
	dailyCooldown bool
	cdMu          sync.Mutex
	lastDaily     map[string]time.Time
}

var (
	service *Service
	once    sync.Once
)

// Init initializes the global economy service
func Init(ledger *storage.Ledger[models.EconomyAccount], dailyCooldown bool) *Service {
	once.Do(func() {
		service = NewService(ledger, dailyCooldown)
	})
	return service
}

// Get returns the global economy service
func Get() *Service {
	return service
}

// NewService creates an economy service over the given ledger
func NewService(ledger *storage.Ledger[models.EconomyAccount], dailyCooldown bool) *Service {
	return &Service{
		ledger:        ledger,
		rng:           rand.New(rand.NewSource(time.Now().UnixNano())),
		dailyCooldown: dailyCooldown,
		lastDaily:     make(map[string]time.Time),
	}
}

// WithRand replaces the randomness source, used by tests for determinism
func (s *Service) WithRand(r *rand.Rand) *Service {
	s.rng = r
	return s
}

func (s *Service) randInt(min, max int) int {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(max-min+1) + min
}

func (s *Service) coinFlip() bool {
	s.rngMu.Lock()
	defer s.rngMu.Unlock()
	return s.rng.Intn(2) == 0
}

// Account returns the account for (guild, user), creating the default
// (1000 in the wallet, empty bank) on first access
func (s *Service) Account(guildID, userID string) models.EconomyAccount {
	return s.ledger.GetOrCreate(guildID, userID, models.NewEconomyAccount)
}

// Daily credits the daily reward and returns the amount. With the cooldown
// enabled a second claim inside 24h returns a CooldownError and no credit.
func (s *Service) Daily(guildID, userID string) (int, error) {
	if s.dailyCooldown {
		key := guildID + ":" + userID
		s.cdMu.Lock()
		if last, ok := s.lastDaily[key]; ok {
			if wait := 24*time.Hour - time.Since(last); wait > 0 {
				s.cdMu.Unlock()
				return 0, &CooldownError{Remaining: wait}
			}
		}
		s.lastDaily[key] = time.Now()
		s.cdMu.Unlock()
	}

	reward := s.randInt(dailyMin, dailyMax)
	s.ledger.Update(guildID, userID, models.NewEconomyAccount, func(a models.EconomyAccount) models.EconomyAccount {
		a.Balance += reward
		return a
	})
	return reward, nil
}

// Work credits a random wage and returns the cosmetic job label with it
func (s *Service) Work(guildID, userID string) (string, int) {
	job := jobs[s.randInt(0, len(jobs)-1)]
	earnings := s.randInt(workMin, workMax)
	s.ledger.Update(guildID, userID, models.NewEconomyAccount, func(a models.EconomyAccount) models.EconomyAccount {
		a.Balance += earnings
		return a
	})
	return job, earnings
}

// Deposit moves amount from wallet to bank
func (s *Service) Deposit(guildID, userID string, amount int) (models.EconomyAccount, error) {
	return s.moveFunds(guildID, userID, amount, func(a *models.EconomyAccount) error {
		if amount > a.Balance {
			return ErrInsufficientFunds
		}
		a.Balance -= amount
		a.Bank += amount
		return nil
	})
}

// Withdraw moves amount from bank to wallet
func (s *Service) Withdraw(guildID, userID string, amount int) (models.EconomyAccount, error) {
	return s.moveFunds(guildID, userID, amount, func(a *models.EconomyAccount) error {
		if amount > a.Bank {
			return ErrInsufficientFunds
		}
		a.Bank -= amount
		a.Balance += amount
		return nil
	})
}

func (s *Service) moveFunds(guildID, userID string, amount int, fn func(*models.EconomyAccount) error) (models.EconomyAccount, error) {
	if amount < 0 {
		return s.Account(guildID, userID), ErrInvalidAmount
	}
	var moveErr error
	rec := s.ledger.Update(guildID, userID, models.NewEconomyAccount, func(a models.EconomyAccount) models.EconomyAccount {
		if err := fn(&a); err != nil {
			moveErr = err
		}
		return a
	})
	return rec, moveErr
}

// Give transfers amount between two users' wallets. A zero amount or a
// self-transfer succeeds without changing anything.
func (s *Service) Give(guildID, fromID, toID string, amount int) error {
	if amount < 0 {
		return ErrInvalidAmount
	}
	if amount == 0 || fromID == toID {
		// still touch both accounts so first-time users get their default
		s.Account(guildID, fromID)
		s.Account(guildID, toID)
		return nil
	}

	_, _, err := s.ledger.UpdatePair(guildID, fromID, toID, models.NewEconomyAccount,
		func(from, to models.EconomyAccount) (models.EconomyAccount, models.EconomyAccount, error) {
			if amount > from.Balance {
				return from, to, ErrInsufficientFunds
			}
			from.Balance -= amount
			to.Balance += amount
			return from, to, nil
		})
	return err
}

// Rob attempts to steal from another user's wallet. The victim needs at
// least 100 in the wallet; the outcome is a 50/50 coin flip. On failure the
// fine is clamped so the robber never goes negative.
func (s *Service) Rob(guildID, robberID, victimID string) (RobResult, error) {
	success := s.coinFlip()
	fine := s.randInt(robFineMin, robFineMax)

	var result RobResult
	_, _, err := s.ledger.UpdatePair(guildID, robberID, victimID, models.NewEconomyAccount,
		func(robber, victim models.EconomyAccount) (models.EconomyAccount, models.EconomyAccount, error) {
			if victim.Balance < robVictimMin {
				return robber, victim, ErrVictimTooPoor
			}

			if success {
				maxSteal := robStealCap
				if victim.Balance < maxSteal {
					maxSteal = victim.Balance
				}
				stolen := s.randInt(robStealMin, maxSteal)
				robber.Balance += stolen
				victim.Balance -= stolen
				result = RobResult{Success: true, Amount: stolen}
			} else {
				paid := fine
				if paid > robber.Balance {
					paid = robber.Balance
				}
				robber.Balance -= paid
				result = RobResult{Success: false, Amount: paid}
			}
			result.Robber = robber
			result.Victim = victim
			return robber, victim, nil
		})
	return result, err
}

// Top returns the n richest users of a guild by wallet plus bank
func (s *Service) Top(guildID string, n int) []storage.Entry[models.EconomyAccount] {
	return s.ledger.TopN(guildID, n, models.EconomyAccount.Total)
}

// Flush persists the economy document
func (s *Service) Flush() error {
	return s.ledger.Flush()
}
