package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientTombstone(t *testing.T) {
	id := uuid.New()
	c := &Client{
		ID:      id,
		Kind:    ClientKindIndividual,
		Address: "Warszawa, Marszałkowska 1",
		Email:   "jan@example.com",
		Phone:   "500600700",
		Individual: &Individual{
			ClientID: id,
			Name:     "Jan",
			Surname:  "Kowalski",
			PESEL:    "90010112345",
			Status:   IndividualActive,
		},
	}
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	c.Tombstone(now)

	assert.Equal(t, id, c.ID)
	assert.Equal(t, TombstoneText, c.Address)
	assert.Equal(t, TombstoneEmail, c.Email)
	assert.Equal(t, TombstonePhone, c.Phone)
	require.NotNil(t, c.Individual)
	assert.Equal(t, TombstoneText, c.Individual.Name)
	assert.Equal(t, TombstoneText, c.Individual.Surname)
	assert.Equal(t, TombstonePESEL, c.Individual.PESEL)
	assert.Equal(t, IndividualTombstoned, c.Individual.Status)
	require.NotNil(t, c.Individual.TombstonedAt)
	assert.True(t, c.Individual.TombstonedAt.Equal(now))
	assert.True(t, c.IsTombstoned())
}

func TestClientDisplayName(t *testing.T) {
	company := &Client{Kind: ClientKindCompany, Company: &Company{Name: "Acme Sp. z o.o."}}
	person := &Client{Kind: ClientKindIndividual, Individual: &Individual{Name: "Anna", Surname: "Nowak"}}

	assert.Equal(t, "Acme Sp. z o.o.", company.DisplayName())
	assert.Equal(t, "Anna Nowak", person.DisplayName())
	assert.True(t, company.IsCompany())
	assert.False(t, company.IsTombstoned())
}

func TestDiscountActiveAtIsInclusive(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	d := &Discount{Percentage: 10, StartDate: start, EndDate: end}

	assert.True(t, d.ActiveAt(start))
	assert.True(t, d.ActiveAt(end))
	assert.True(t, d.ActiveAt(start.AddDate(0, 0, 10)))
	assert.False(t, d.ActiveAt(start.Add(-time.Second)))
	assert.False(t, d.ActiveAt(end.Add(time.Second)))
}

func TestBeforeCreateAssignsID(t *testing.T) {
	s := &Software{}
	require.NoError(t, s.BeforeCreate(nil))
	assert.NotEqual(t, uuid.Nil, s.ID)

	fixed := uuid.New()
	p := &Payment{ID: fixed}
	require.NoError(t, p.BeforeCreate(nil))
	assert.Equal(t, fixed, p.ID)
}
