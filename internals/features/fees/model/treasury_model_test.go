package model

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAgentPaymentCommissionIsDerived(t *testing.T) {
	db := newModelDB(t)
	require.NoError(t, db.AutoMigrate(&AgentPaymentModel{}))

	m := AgentPaymentModel{
		AgentName:        "T. Ncube",
		AgentPhone:       "+263771234567",
		AgentStudentID:   uuid.New(),
		AgentAmount:      decimal.RequireFromString("200.00"),
		AgentReference:   "AGT-1001",
		AgentCollectedAt: time.Now(),
		AgentRecordedBy:  uuid.New(),
		AgentStatus:      AgentPaymentPending,
		CommissionRate:   decimal.RequireFromString("5"),
	}
	require.NoError(t, db.Create(&m).Error)
	require.True(t, decimal.RequireFromString("10.00").Equal(m.CommissionAmount),
		"commission must be amount x rate / 100, got %s", m.CommissionAmount)
}

func TestBankReconciliationDifferenceIsDerived(t *testing.T) {
	db := newModelDB(t)
	require.NoError(t, db.AutoMigrate(&BankReconciliationModel{}))

	m := BankReconciliationModel{
		ReconciliationDate: time.Now(),
		BankBalance:        decimal.RequireFromString("15230.40"),
		BookBalance:        decimal.RequireFromString("15410.00"),
		ReconciledByID:     uuid.New(),
	}
	require.NoError(t, db.Create(&m).Error)
	require.True(t, decimal.RequireFromString("-179.60").Equal(m.BalanceDifference),
		"difference must be bank minus book, got %s", m.BalanceDifference)
}
