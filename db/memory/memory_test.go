package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"licensing-backend/db/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTxRollsBackOnError(t *testing.T) {
	db := New()
	ctx := context.Background()

	boom := errors.New("boom")
	err := db.Tx(func() error {
		require.NoError(t, db.Softwares().Create(ctx, &models.Software{Name: "Office", BasePrice: decimal.NewFromInt(100)}))
		return boom
	})
	require.ErrorIs(t, err, boom)

	_, total, err := db.Softwares().List(ctx, 0, 10)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestClientsAreCopiedOnReadAndWrite(t *testing.T) {
	db := New()
	ctx := context.Background()

	client := &models.Client{
		Kind:       models.ClientKindIndividual,
		Individual: &models.Individual{Name: "Jan", Surname: "Kowalski", PESEL: "90010112345", Status: models.IndividualActive},
	}
	require.NoError(t, db.Clients().Create(ctx, client))
	client.Individual.Name = "changed"

	stored, err := db.Clients().GetByID(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jan", stored.Individual.Name)
}

func TestMarkSignedNeedsCoveringPayments(t *testing.T) {
	db := New()
	ctx := context.Background()

	contract := &models.Contract{Price: decimal.NewFromInt(1000)}
	require.NoError(t, db.Contracts().Create(ctx, contract))

	payment := &models.Payment{ContractID: contract.ID, ClientID: uuid.New(), Amount: decimal.NewFromInt(600), PaidAt: time.Now()}
	require.NoError(t, db.Payments().Create(ctx, payment))

	signed, err := db.Contracts().MarkSigned(ctx, contract.ID)
	require.NoError(t, err)
	assert.False(t, signed)

	require.NoError(t, db.Payments().Create(ctx, &models.Payment{ContractID: contract.ID, Amount: decimal.NewFromInt(400), PaidAt: time.Now()}))
	signed, err = db.Contracts().MarkSigned(ctx, contract.ID)
	require.NoError(t, err)
	assert.True(t, signed)

	// already signed: no second transition
	signed, err = db.Contracts().MarkSigned(ctx, contract.ID)
	require.NoError(t, err)
	assert.False(t, signed)
}

func TestSumActiveSkipsReturnedPayments(t *testing.T) {
	db := New()
	ctx := context.Background()

	contract := &models.Contract{Price: decimal.NewFromInt(1000)}
	require.NoError(t, db.Contracts().Create(ctx, contract))
	kept := &models.Payment{ContractID: contract.ID, Amount: decimal.NewFromInt(300)}
	returned := &models.Payment{ContractID: contract.ID, Amount: decimal.NewFromInt(200)}
	require.NoError(t, db.Payments().Create(ctx, kept))
	require.NoError(t, db.Payments().Create(ctx, returned))
	require.NoError(t, db.Payments().MarkReturned(ctx, returned.ID, time.Now()))

	sum, err := db.Payments().SumActive(ctx, contract.ID)
	require.NoError(t, err)
	assert.True(t, sum.Equal(decimal.NewFromInt(300)))

	rows, err := db.Payments().ListByContract(ctx, contract.ID)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
