package store

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"

	"credmgr/internal/account/models"
	"credmgr/internal/sentinel"
	"credmgr/pkg/testutil"
)

type InMemorySuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
}

func TestInMemorySuite(t *testing.T) {
	suite.Run(t, new(InMemorySuite))
}

func (s *InMemorySuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemorySuite) TestCreateAssignsIDAndRejectsDuplicates() {
	cfg := &models.TenantConfig{CompanyShortName: "acme", ActivationKey: "k1"}
	s.Require().NoError(s.store.Create(s.ctx, cfg))
	s.NotEmpty(cfg.ID)

	err := s.store.Create(s.ctx, &models.TenantConfig{CompanyShortName: "acme"})
	s.True(errors.Is(err, sentinel.ErrAlreadyUsed))
}

func (s *InMemorySuite) TestFindReturnsCopies() {
	s.Require().NoError(s.store.Create(s.ctx, &models.TenantConfig{CompanyShortName: "acme"}))

	got, err := s.store.FindByCompanyShortName(s.ctx, "acme")
	s.Require().NoError(err)
	got.ClientJKS = "/acme/mutated.jks"

	again, err := s.store.FindByCompanyShortName(s.ctx, "acme")
	s.Require().NoError(err)
	s.Empty(again.ClientJKS)
}

func (s *InMemorySuite) TestFindMissing() {
	_, err := s.store.FindByCompanyShortName(s.ctx, "nobody")
	s.ErrorIs(err, ErrNotFound)

	_, err = s.store.FindByActivationKey(s.ctx, "")
	s.ErrorIs(err, ErrNotFound)
}

func (s *InMemorySuite) TestSaveReindexesActivationKey() {
	s.Require().NoError(s.store.Create(s.ctx, &models.TenantConfig{CompanyShortName: "acme", ActivationKey: "k1"}))

	found, err := s.store.FindByActivationKey(s.ctx, "k1")
	s.Require().NoError(err)
	found.ActivationKey = ""
	found.Activated = true
	s.Require().NoError(s.store.Save(s.ctx, found))

	_, err = s.store.FindByActivationKey(s.ctx, "k1")
	s.ErrorIs(err, ErrNotFound)
}

func (s *InMemorySuite) TestDelete() {
	s.Require().NoError(s.store.Create(s.ctx, &models.TenantConfig{CompanyShortName: "acme", ActivationKey: "k1"}))
	s.Require().NoError(s.store.Delete(s.ctx, "acme"))

	_, err := s.store.FindByCompanyShortName(s.ctx, "acme")
	s.ErrorIs(err, ErrNotFound)
	_, err = s.store.FindByActivationKey(s.ctx, "k1")
	s.ErrorIs(err, ErrNotFound)
}

func (s *InMemorySuite) TestConcurrentCreateSameShortName() {
	res := testutil.RunConcurrent(20, func(idx int) error {
		return s.store.Create(s.ctx, &models.TenantConfig{
			CompanyShortName: "race",
			CompanyName:      fmt.Sprintf("Race %d", idx),
		})
	})

	s.Equal(1, res.Succeeded)
	s.Equal(19, res.AlreadyUsed)
	s.NoError(res.FirstFailure)
}
