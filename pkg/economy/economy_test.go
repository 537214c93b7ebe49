package economy

import (
	"errors"
	"testing"

	"github.com/PancyStudios/PancyStatsGo/pkg/models"
	"github.com/PancyStudios/PancyStatsGo/pkg/storage"
)

func newTestService(t *testing.T, dailyCooldown bool) (*Service, *storage.Ledger[models.EconomyAccount]) {
	t.Helper()
	store, err := storage.NewStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewStore falló: %v", err)
	}
	ledger, err := storage.NewLedger[models.EconomyAccount]("economy", store)
	if err != nil {
		t.Fatalf("NewLedger falló: %v", err)
	}
	return NewService(ledger, dailyCooldown), ledger
}

func TestAccountDefault(t *testing.T) {
	svc, _ := newTestService(t, false)

	account := svc.Account("g1", "u1")
	if account.Balance != 1000 || account.Bank != 0 {
		t.Errorf("cuenta por defecto = %+v, se esperaba {1000 0}", account)
	}
}

func TestDailyRange(t *testing.T) {
	svc, _ := newTestService(t, false)

	reward, err := svc.Daily("g1", "u1")
	if err != nil {
		t.Fatalf("Daily falló: %v", err)
	}
	if reward < 500 || reward > 1000 {
		t.Errorf("recompensa diaria fuera de rango: %d", reward)
	}

	account := svc.Account("g1", "u1")
	if account.Balance != 1000+reward {
		t.Errorf("Balance = %d, se esperaba %d", account.Balance, 1000+reward)
	}
}

func TestDailyWithoutCooldownAllowsRepeatClaims(t *testing.T) {
	svc, _ := newTestService(t, false)

	if _, err := svc.Daily("g1", "u1"); err != nil {
		t.Fatalf("primer Daily falló: %v", err)
	}
	if _, err := svc.Daily("g1", "u1"); err != nil {
		t.Errorf("segundo Daily sin cooldown falló: %v", err)
	}
}

func TestDailyCooldownBlocksSecondClaim(t *testing.T) {
	svc, _ := newTestService(t, true)

	if _, err := svc.Daily("g1", "u1"); err != nil {
		t.Fatalf("primer Daily falló: %v", err)
	}

	_, err := svc.Daily("g1", "u1")
	var cd *CooldownError
	if !errors.As(err, &cd) {
		t.Fatalf("se esperaba CooldownError, se obtuvo %v", err)
	}
	if cd.Remaining <= 0 {
		t.Errorf("Remaining = %v, se esperaba positivo", cd.Remaining)
	}

	// El cooldown es por (guild, user): otro usuario puede reclamar
	if _, err := svc.Daily("g1", "u2"); err != nil {
		t.Errorf("Daily de otro usuario falló: %v", err)
	}
}

func TestWorkRangeAndJob(t *testing.T) {
	svc, _ := newTestService(t, false)

	job, earnings := svc.Work("g1", "u1")
	if earnings < 100 || earnings > 500 {
		t.Errorf("salario fuera de rango: %d", earnings)
	}

	found := false
	for _, j := range jobs {
		if j == job {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("trabajo desconocido: %q", job)
	}
}

func TestDepositWithdrawRoundTrip(t *testing.T) {
	svc, _ := newTestService(t, false)

	account, err := svc.Deposit("g1", "u1", 400)
	if err != nil {
		t.Fatalf("Deposit falló: %v", err)
	}
	if account.Balance != 600 || account.Bank != 400 {
		t.Errorf("tras Deposit = %+v, se esperaba {600 400}", account)
	}

	account, err = svc.Withdraw("g1", "u1", 400)
	if err != nil {
		t.Fatalf("Withdraw falló: %v", err)
	}
	if account.Balance != 1000 || account.Bank != 0 {
		t.Errorf("tras Withdraw = %+v, se esperaba {1000 0}", account)
	}
}

func TestDepositInsufficientLeavesAccountUntouched(t *testing.T) {
	svc, _ := newTestService(t, false)

	_, err := svc.Deposit("g1", "u1", 5000)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("se esperaba ErrInsufficientFunds, se obtuvo %v", err)
	}

	account := svc.Account("g1", "u1")
	if account.Balance != 1000 || account.Bank != 0 {
		t.Errorf("la cuenta cambió tras un depósito fallido: %+v", account)
	}
}

func TestWithdrawInsufficient(t *testing.T) {
	svc, _ := newTestService(t, false)

	_, err := svc.Withdraw("g1", "u1", 50)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("se esperaba ErrInsufficientFunds con banco vacío, se obtuvo %v", err)
	}
}

func TestGiveConservesTotal(t *testing.T) {
	svc, _ := newTestService(t, false)

	if err := svc.Give("g1", "a", "b", 250); err != nil {
		t.Fatalf("Give falló: %v", err)
	}

	from := svc.Account("g1", "a")
	to := svc.Account("g1", "b")

	if from.Balance != 750 {
		t.Errorf("emisor = %d, se esperaba 750", from.Balance)
	}
	if to.Balance != 1250 {
		t.Errorf("receptor = %d, se esperaba 1250", to.Balance)
	}
	if from.Total()+to.Total() != 2000 {
		t.Errorf("la transferencia no conservó el total: %d", from.Total()+to.Total())
	}
}

func TestGiveInsufficientLeavesBothUntouched(t *testing.T) {
	svc, _ := newTestService(t, false)

	err := svc.Give("g1", "a", "b", 5000)
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Fatalf("se esperaba ErrInsufficientFunds, se obtuvo %v", err)
	}

	if a := svc.Account("g1", "a"); a.Balance != 1000 {
		t.Errorf("emisor cambió tras transferencia fallida: %d", a.Balance)
	}
	if b := svc.Account("g1", "b"); b.Balance != 1000 {
		t.Errorf("receptor cambió tras transferencia fallida: %d", b.Balance)
	}
}

func TestGiveZeroAndSelfSucceedWithoutChange(t *testing.T) {
	svc, _ := newTestService(t, false)

	if err := svc.Give("g1", "a", "b", 0); err != nil {
		t.Errorf("Give de cero falló: %v", err)
	}
	if err := svc.Give("g1", "a", "a", 300); err != nil {
		t.Errorf("Give a uno mismo falló: %v", err)
	}

	if a := svc.Account("g1", "a"); a.Balance != 1000 {
		t.Errorf("emisor = %d, se esperaba 1000", a.Balance)
	}
}

func TestGiveNegativeAmount(t *testing.T) {
	svc, _ := newTestService(t, false)

	if err := svc.Give("g1", "a", "b", -100); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("se esperaba ErrInvalidAmount, se obtuvo %v", err)
	}
}

func TestRobVictimTooPoor(t *testing.T) {
	svc, ledger := newTestService(t, false)

	ledger.Set("g1", "victim", models.EconomyAccount{Balance: 50, Bank: 9000})

	_, err := svc.Rob("g1", "robber", "victim")
	if !errors.Is(err, ErrVictimTooPoor) {
		t.Fatalf("se esperaba ErrVictimTooPoor, se obtuvo %v", err)
	}

	// El banco no cuenta para la elegibilidad ni se toca
	victim, _ := ledger.Get("g1", "victim")
	if victim.Balance != 50 || victim.Bank != 9000 {
		t.Errorf("la víctima cambió tras un robo rechazado: %+v", victim)
	}
}

func TestRobOutcomes(t *testing.T) {
	svc, ledger := newTestService(t, false)

	var sawSuccess, sawFailure bool
	for i := 0; i < 200 && !(sawSuccess && sawFailure); i++ {
		ledger.Set("g1", "robber", models.EconomyAccount{Balance: 0, Bank: 0})
		ledger.Set("g1", "victim", models.EconomyAccount{Balance: 1000, Bank: 0})

		result, err := svc.Rob("g1", "robber", "victim")
		if err != nil {
			t.Fatalf("Rob falló: %v", err)
		}

		if result.Success {
			sawSuccess = true
			if result.Amount < 50 || result.Amount > 500 {
				t.Errorf("botín fuera de rango: %d", result.Amount)
			}
			if result.Robber.Balance != result.Amount {
				t.Errorf("ladrón = %d, se esperaba %d", result.Robber.Balance, result.Amount)
			}
			if result.Victim.Balance != 1000-result.Amount {
				t.Errorf("víctima = %d, se esperaba %d", result.Victim.Balance, 1000-result.Amount)
			}
		} else {
			sawFailure = true
			// El ladrón no tenía nada: la multa se ajusta y nunca queda en negativo
			if result.Robber.Balance < 0 {
				t.Errorf("el ladrón quedó en negativo: %d", result.Robber.Balance)
			}
			if result.Amount != 0 {
				t.Errorf("multa pagada = %d con cartera vacía, se esperaba 0", result.Amount)
			}
		}
	}

	if !sawSuccess || !sawFailure {
		t.Fatalf("200 intentos sin observar ambos resultados (éxito=%v fallo=%v)", sawSuccess, sawFailure)
	}
}

func TestRobFineNeverExceedsWallet(t *testing.T) {
	svc, ledger := newTestService(t, false)

	for i := 0; i < 200; i++ {
		ledger.Set("g1", "robber", models.EconomyAccount{Balance: 120, Bank: 500})
		ledger.Set("g1", "victim", models.EconomyAccount{Balance: 1000, Bank: 0})

		result, err := svc.Rob("g1", "robber", "victim")
		if err != nil {
			t.Fatalf("Rob falló: %v", err)
		}
		if result.Success {
			continue
		}

		if result.Robber.Balance < 0 {
			t.Fatalf("el ladrón quedó en negativo: %d", result.Robber.Balance)
		}
		if result.Amount > 120 {
			t.Fatalf("multa pagada %d excede la cartera de 120", result.Amount)
		}
		// El banco nunca responde por la multa
		if result.Robber.Bank != 500 {
			t.Fatalf("el banco del ladrón cambió: %d", result.Robber.Bank)
		}
	}
}

func TestTopOrdersByTotal(t *testing.T) {
	svc, ledger := newTestService(t, false)

	ledger.Set("g1", "walletRich", models.EconomyAccount{Balance: 500, Bank: 0})
	ledger.Set("g1", "bankRich", models.EconomyAccount{Balance: 300, Bank: 200})
	ledger.Set("g1", "poor", models.EconomyAccount{Balance: 100, Bank: 0})

	top := svc.Top("g1", 0)
	if len(top) != 3 {
		t.Fatalf("Top devolvió %d entradas, se esperaban 3", len(top))
	}

	// walletRich y bankRich empatan a 500 en total: gana el orden de inserción
	if top[0].SubjectID != "walletRich" || top[1].SubjectID != "bankRich" || top[2].SubjectID != "poor" {
		t.Errorf("orden incorrecto: %s, %s, %s",
			top[0].SubjectID, top[1].SubjectID, top[2].SubjectID)
	}
}
