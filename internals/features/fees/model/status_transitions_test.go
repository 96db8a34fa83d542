package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaymentStatusTransitions(t *testing.T) {
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusVerified))
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusFailed))
	assert.True(t, PaymentStatusPending.CanTransitionTo(PaymentStatusCancelled))

	for _, terminal := range []PaymentStatus{
		PaymentStatusVerified, PaymentStatusFailed, PaymentStatusCancelled,
	} {
		assert.False(t, terminal.CanTransitionTo(PaymentStatusPending), "%s must be terminal", terminal)
		assert.False(t, terminal.CanTransitionTo(PaymentStatusVerified), "%s must be terminal", terminal)
	}

	assert.False(t, PaymentStatusPending.CanTransitionTo(PaymentStatusPending))
}

func TestRefundStatusTransitions(t *testing.T) {
	assert.True(t, RefundPending.CanTransitionTo(RefundApproved))
	assert.True(t, RefundPending.CanTransitionTo(RefundRejected))
	assert.False(t, RefundPending.CanTransitionTo(RefundProcessed), "processing needs approval first")

	assert.True(t, RefundApproved.CanTransitionTo(RefundProcessed))
	assert.False(t, RefundApproved.CanTransitionTo(RefundRejected))

	assert.False(t, RefundProcessed.CanTransitionTo(RefundPending))
	assert.False(t, RefundRejected.CanTransitionTo(RefundApproved))
}
