package services

import (
	"context"
	"testing"

	bleveRepositories "licensing-backend/bleve/repositories"
	bleveindex "licensing-backend/bleve/services"
	"licensing-backend/clients/repositories"
	"licensing-backend/db/memory"
	"licensing-backend/db/models"
	"licensing-backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*ClientService, bleveRepositories.BleveRepositoryInterface) {
	t.Helper()
	indexer := bleveindex.NewIndexingService(zap.NewNop(), "")
	t.Cleanup(func() { indexer.Close() })
	index := bleveRepositories.NewBleveRepository(indexer)
	return NewClientService(repositories.NewMemoryStore(memory.New()), index), index
}

func companyInput(krs string) AddClientInput {
	return AddClientInput{
		Address:     "ul. Prosta 1, Warszawa",
		Email:       "biuro@acme.pl",
		Phone:       "+48 600 100 200",
		IsCompany:   true,
		CompanyName: utils.StringPtr("Acme"),
		KRS:         utils.StringPtr(krs),
	}
}

func individualInput(pesel string) AddClientInput {
	return AddClientInput{
		Address: "ul. Krzywa 2, Kraków",
		Email:   "jan@kowalski.pl",
		Phone:   "600100200",
		Name:    utils.StringPtr("Jan"),
		Surname: utils.StringPtr("Kowalski"),
		PESEL:   utils.StringPtr(pesel),
	}
}

func TestAddClientCompany(t *testing.T) {
	svc, index := newTestService(t)
	ctx := context.Background()

	client, err := svc.AddClient(ctx, companyInput("0000123456"))
	require.NoError(t, err)
	assert.Equal(t, models.ClientKindCompany, client.Kind)
	require.NotNil(t, client.Company)
	assert.Nil(t, client.Individual)

	res, err := index.SearchClients("acme", 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Total)

	_, err = svc.AddClient(ctx, companyInput("0000123456"))
	assert.True(t, utils.IsKind(err, utils.KindConflict))
}

func TestAddClientValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := map[string]AddClientInput{
		"missing address": func() AddClientInput { in := individualInput("90010112345"); in.Address = " "; return in }(),
		"bad email":       func() AddClientInput { in := individualInput("90010112345"); in.Email = "nope"; return in }(),
		"bad phone":       func() AddClientInput { in := individualInput("90010112345"); in.Phone = "abc"; return in }(),
		"short pesel":     individualInput("123"),
		"tombstone pesel": individualInput(models.TombstonePESEL),
		"missing surname": func() AddClientInput { in := individualInput("90010112345"); in.Surname = nil; return in }(),
		"bad krs":         companyInput("12"),
		"missing company": func() AddClientInput { in := companyInput("0000123456"); in.CompanyName = nil; return in }(),
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.AddClient(ctx, in)
			assert.True(t, utils.IsKind(err, utils.KindBadRequest), "got %v", err)
		})
	}
}

func TestDeleteClientTombstonesIndividual(t *testing.T) {
	svc, index := newTestService(t)
	ctx := context.Background()

	client, err := svc.AddClient(ctx, individualInput("90010112345"))
	require.NoError(t, err)

	deleted, err := svc.DeleteClient(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, deleted.IsTombstoned())
	assert.Equal(t, models.TombstoneText, deleted.Individual.Name)
	assert.Equal(t, models.TombstoneText, deleted.Individual.Surname)
	assert.Equal(t, models.TombstonePESEL, deleted.Individual.PESEL)
	assert.Equal(t, models.TombstoneEmail, deleted.Email)
	assert.Equal(t, models.TombstonePhone, deleted.Phone)

	stored, err := svc.GetClient(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, stored.IsTombstoned())

	res, err := index.SearchClients("kowalski", 10)
	require.NoError(t, err)
	assert.Zero(t, res.Total)

	// a second delete is a no-op
	_, err = svc.DeleteClient(ctx, client.ID)
	assert.NoError(t, err)

	// the PESEL is free again once its owner is tombstoned
	_, err = svc.AddClient(ctx, individualInput("90010112345"))
	assert.NoError(t, err)
}

func TestDeleteClientRejectsCompany(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	client, err := svc.AddClient(ctx, companyInput("0000123456"))
	require.NoError(t, err)

	_, err = svc.DeleteClient(ctx, client.ID)
	assert.True(t, utils.IsKind(err, utils.KindBadRequest))

	stored, err := svc.GetClient(ctx, client.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", stored.Company.Name)
}

func TestDeleteClientNotFound(t *testing.T) {
	svc, _ := newTestService(t)
	_, err := svc.DeleteClient(context.Background(), uuid.New())
	assert.True(t, utils.IsKind(err, utils.KindNotFound))
}

func TestUpdateClientPartial(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	client, err := svc.AddClient(ctx, individualInput("90010112345"))
	require.NoError(t, err)

	updated, err := svc.UpdateClient(ctx, client.ID, UpdateClientInput{
		Address: "ul. Nowa 3, Gdańsk",
		Email:   "jan@nowy.pl",
		Phone:   "700700700",
		Surname: utils.StringPtr("Nowak"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ul. Nowa 3, Gdańsk", updated.Address)
	assert.Equal(t, "Jan", updated.Individual.Name)
	assert.Equal(t, "Nowak", updated.Individual.Surname)

	// company name is ignored for individuals
	_, err = svc.UpdateClient(ctx, client.ID, UpdateClientInput{
		Address:     "ul. Nowa 3, Gdańsk",
		Email:       "jan@nowy.pl",
		Phone:       "700700700",
		CompanyName: utils.StringPtr("Ignored"),
	})
	require.NoError(t, err)

	stored, err := svc.GetClient(ctx, client.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Company)
	assert.Equal(t, "Nowak", stored.Individual.Surname)
}

func TestUpdateTombstonedClientConflicts(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	client, err := svc.AddClient(ctx, individualInput("90010112345"))
	require.NoError(t, err)
	_, err = svc.DeleteClient(ctx, client.ID)
	require.NoError(t, err)

	_, err = svc.UpdateClient(ctx, client.ID, UpdateClientInput{Address: "x", Email: "a@b.c", Phone: "123"})
	assert.True(t, utils.IsKind(err, utils.KindConflict))
}

func TestListClientsByKind(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddClient(ctx, companyInput("0000123456"))
	require.NoError(t, err)
	_, err = svc.AddClient(ctx, individualInput("90010112345"))
	require.NoError(t, err)

	all, total, err := svc.ListClients(ctx, "", 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Len(t, all, 2)

	companies, total, err := svc.ListClients(ctx, models.ClientKindCompany, 0, 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Equal(t, models.ClientKindCompany, companies[0].Kind)

	_, _, err = svc.ListClients(ctx, "ROBOT", 0, 10)
	assert.True(t, utils.IsKind(err, utils.KindBadRequest))
}

func TestReindexClients(t *testing.T) {
	svc, index := newTestService(t)
	ctx := context.Background()

	_, err := svc.AddClient(ctx, companyInput("0000123456"))
	require.NoError(t, err)
	require.NoError(t, index.ResetClients())

	n, err := svc.ReindexClients(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	res, err := index.SearchClients("0000123456", 10)
	require.NoError(t, err)
	assert.EqualValues(t, 1, res.Total)
}
