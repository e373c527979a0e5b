//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"membership-backoffice/internal/infra"
	"membership-backoffice/internal/infra/commerce"
	"membership-backoffice/internal/pkg/clock"
	"membership-backoffice/internal/pkg/errs"
	"membership-backoffice/internal/usecase/commands"
	"membership-backoffice/tests/common/builder"
	commandsmock "membership-backoffice/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var errRepo = infra.WrapRepoErr("repository failure", errs.New("connection reset"))

type CouponCommandsTestSuite struct {
	suite.Suite
	mockCtrl    *gomock.Controller
	mockCoupons *commandsmock.MockCouponRepository
	mockGateway *commandsmock.MockCommerceGateway
	clk         *clock.MockClock
	cmd         commands.CouponCommands
}

func (s *CouponCommandsTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockCoupons = commandsmock.NewMockCouponRepository(s.mockCtrl)
	s.mockGateway = commandsmock.NewMockCommerceGateway(s.mockCtrl)
	s.clk = clock.NewMockClock(time.Now().UTC())
	s.cmd = commands.NewCouponCommands(s.mockCoupons, s.mockGateway, s.clk)
}

func (s *CouponCommandsTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCouponCommandsSuite(t *testing.T) {
	suite.Run(t, new(CouponCommandsTestSuite))
}

func notFoundErr() error {
	return infra.WrapRepoErr("coupon not found", nil, infra.KindNotFound)
}

func (s *CouponCommandsTestSuite) TestValidate() {
	s.Run("active coupon known to the platform is valid", func() {
		snap := builder.NewCouponBuilder().BuildSnapshot()

		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), snap.Code).Return(snap, nil)
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), snap.Code).
			Return(&commerce.CodeLookup{RuleID: 9001, CodeID: 7001, Code: snap.Code}, nil)

		result, err := s.cmd.Validate(context.Background(), snap.Code)

		s.Require().NoError(err)
		s.True(result.Valid)
		s.Equal(snap, result.Coupon)
	})

	s.Run("unknown code reports not_found without an error", func() {
		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), "MISSING1").Return(nil, notFoundErr())

		result, err := s.cmd.Validate(context.Background(), "MISSING1")

		s.Require().NoError(err)
		s.False(result.Valid)
		s.Equal(commands.ReasonNotFound, result.Reason)
	})

	s.Run("malformed code reports not_found without touching the store", func() {
		result, err := s.cmd.Validate(context.Background(), "no spaces allowed")

		s.Require().NoError(err)
		s.False(result.Valid)
		s.Equal(commands.ReasonNotFound, result.Reason)
	})

	s.Run("cancelled coupon reports cancelled", func() {
		snap := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.Status = "cancelled"
		}).BuildSnapshot()

		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), snap.Code).Return(snap, nil)

		result, err := s.cmd.Validate(context.Background(), snap.Code)

		s.Require().NoError(err)
		s.False(result.Valid)
		s.Equal(commands.ReasonCancelled, result.Reason)
	})

	s.Run("stale status cache is recomputed and persisted", func() {
		expired := s.clk.Now().Add(-time.Hour)
		snap := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ValidUntil = &expired
		}).BuildSnapshot()

		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), snap.Code).Return(snap, nil)
		s.mockCoupons.EXPECT().UpdateStatus(gomock.Any(), snap.ID, "expired").Return(nil)

		result, err := s.cmd.Validate(context.Background(), snap.Code)

		s.Require().NoError(err)
		s.False(result.Valid)
		s.Equal(commands.ReasonExpired, result.Reason)
		s.Equal("expired", result.Coupon.Status)
	})

	s.Run("fully used coupon reports used", func() {
		limit := int32(3)
		snap := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.UsageLimit = &limit
			b.UsageCount = 3
			b.Status = "used"
		}).BuildSnapshot()

		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), snap.Code).Return(snap, nil)

		result, err := s.cmd.Validate(context.Background(), snap.Code)

		s.Require().NoError(err)
		s.False(result.Valid)
		s.Equal(commands.ReasonUsed, result.Reason)
	})

	s.Run("locally active but externally absent reports not_valid_externally", func() {
		snap := builder.NewCouponBuilder().BuildSnapshot()

		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), snap.Code).Return(snap, nil)
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), snap.Code).
			Return(nil, commerce.ErrCodeNotFound)

		result, err := s.cmd.Validate(context.Background(), snap.Code)

		s.Require().NoError(err)
		s.False(result.Valid)
		s.Equal(commands.ReasonNotValidExternally, result.Reason)
	})

	s.Run("unreachable platform falls back to the local verdict", func() {
		snap := builder.NewCouponBuilder().BuildSnapshot()
		outage := &commerce.PlatformError{Kind: commerce.KindTransient, Op: "lookup discount code", Status: 503}

		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), snap.Code).Return(snap, nil)
		s.mockGateway.EXPECT().LookupCode(gomock.Any(), snap.Code).Return(nil, outage)

		result, err := s.cmd.Validate(context.Background(), snap.Code)

		s.Require().NoError(err)
		s.True(result.Valid)
	})
}

func (s *CouponCommandsTestSuite) TestRedeem() {
	customerID := uuid.New()

	s.Run("applies a percentage discount and consumes one use", func() {
		snap := builder.NewCouponBuilder().BuildSnapshot()
		orderAmount := int64(10000)

		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), snap.Code).Return(snap, nil)
		s.mockCoupons.EXPECT().RecordRedemption(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, rec commands.RedemptionRecord) (*commands.CouponUseSnapshot, error) {
				s.Equal(snap.ID, rec.CouponID)
				s.Equal(customerID, rec.CustomerID)
				s.Equal(int64(2000), rec.DiscountAppliedCents)
				return &commands.CouponUseSnapshot{
					ID:                   uuid.New(),
					CouponID:             snap.ID,
					CustomerID:           customerID,
					DiscountAppliedCents: rec.DiscountAppliedCents,
					UsedAt:               rec.UsedAt,
					NewUsageCount:        1,
				}, nil
			})

		result, err := s.cmd.Redeem(context.Background(), commands.RedeemParams{
			Code:             snap.Code,
			CustomerID:       customerID,
			OrderAmountCents: &orderAmount,
		})

		s.Require().NoError(err)
		s.Equal(int64(2000), result.DiscountAppliedCents)
		s.Equal(int32(1), result.NewUsageCount)
		s.Equal("active", result.Status)
	})

	s.Run("final use flips the status to used", func() {
		snap := builder.NewCouponBuilder().BuildSnapshot()
		orderAmount := int64(5000)

		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), snap.Code).Return(snap, nil)
		s.mockCoupons.EXPECT().RecordRedemption(gomock.Any(), gomock.Any()).
			Return(&commands.CouponUseSnapshot{
				CouponID:             snap.ID,
				CustomerID:           customerID,
				DiscountAppliedCents: 1000,
				NewUsageCount:        10,
				NowUsed:              true,
			}, nil)

		result, err := s.cmd.Redeem(context.Background(), commands.RedeemParams{
			Code:             snap.Code,
			CustomerID:       customerID,
			OrderAmountCents: &orderAmount,
		})

		s.Require().NoError(err)
		s.Equal("used", result.Status)
	})

	s.Run("order below the minimum purchase is rejected", func() {
		minimum := int64(5000)
		snap := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.MinimumPurchaseCents = &minimum
		}).BuildSnapshot()
		orderAmount := int64(1000)

		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), snap.Code).Return(snap, nil)

		result, err := s.cmd.Redeem(context.Background(), commands.RedeemParams{
			Code:             snap.Code,
			CustomerID:       customerID,
			OrderAmountCents: &orderAmount,
		})

		s.Require().ErrorIs(err, commands.ErrMinimumPurchaseNotMet)
		s.Nil(result)
	})

	s.Run("concurrent cap exhaustion maps to usage_exceeded", func() {
		snap := builder.NewCouponBuilder().BuildSnapshot()

		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), snap.Code).Return(snap, nil)
		s.mockCoupons.EXPECT().RecordRedemption(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("usage limit reached", nil, infra.KindConflict))

		result, err := s.cmd.Redeem(context.Background(), commands.RedeemParams{
			Code:       snap.Code,
			CustomerID: customerID,
		})

		s.Require().Error(err)
		var redemptionErr *commands.RedemptionError
		s.Require().ErrorAs(err, &redemptionErr)
		s.Equal(commands.ReasonUsageExceeded, redemptionErr.Reason)
		s.Nil(result)
	})

	s.Run("unknown code maps to a typed not_found redemption error", func() {
		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), "MISSING1").Return(nil, notFoundErr())

		_, err := s.cmd.Redeem(context.Background(), commands.RedeemParams{
			Code:       "MISSING1",
			CustomerID: customerID,
		})

		var redemptionErr *commands.RedemptionError
		s.Require().ErrorAs(err, &redemptionErr)
		s.Equal(commands.ReasonNotFound, redemptionErr.Reason)
	})

	s.Run("exhausted coupon is rejected as usage_exceeded before writing", func() {
		limit := int32(3)
		snap := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.UsageLimit = &limit
			b.UsageCount = 3
			b.Status = "used"
		}).BuildSnapshot()

		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), snap.Code).Return(snap, nil)

		_, err := s.cmd.Redeem(context.Background(), commands.RedeemParams{
			Code:       snap.Code,
			CustomerID: customerID,
		})

		var redemptionErr *commands.RedemptionError
		s.Require().ErrorAs(err, &redemptionErr)
		s.Equal(commands.ReasonUsageExceeded, redemptionErr.Reason)
	})

	s.Run("repository failure is marked as redemption failure", func() {
		snap := builder.NewCouponBuilder().BuildSnapshot()

		s.mockCoupons.EXPECT().FindByCode(gomock.Any(), snap.Code).Return(snap, nil)
		s.mockCoupons.EXPECT().RecordRedemption(gomock.Any(), gomock.Any()).Return(nil, errRepo)

		_, err := s.cmd.Redeem(context.Background(), commands.RedeemParams{
			Code:       snap.Code,
			CustomerID: customerID,
		})

		s.Require().ErrorIs(err, commands.ErrRedemptionFailed)
	})
}

func (s *CouponCommandsTestSuite) TestSetStatus() {
	id := uuid.New()

	s.Run("persists a recognized status", func() {
		s.mockCoupons.EXPECT().UpdateStatus(gomock.Any(), id, "cancelled").Return(nil)

		s.Require().NoError(s.cmd.SetStatus(context.Background(), id, "cancelled"))
	})

	s.Run("rejects an unrecognized status", func() {
		err := s.cmd.SetStatus(context.Background(), id, "paused")

		s.Require().ErrorIs(err, commands.ErrInvalidStatus)
	})

	s.Run("maps a missing row to coupon not found", func() {
		s.mockCoupons.EXPECT().UpdateStatus(gomock.Any(), id, "active").Return(notFoundErr())

		err := s.cmd.SetStatus(context.Background(), id, "active")

		s.Require().ErrorIs(err, commands.ErrCouponNotFound)
	})
}

func (s *CouponCommandsTestSuite) TestDelete() {
	s.Run("removes the external rule before the local row", func() {
		snap := builder.NewCouponBuilder().BuildSnapshot()

		gomock.InOrder(
			s.mockCoupons.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil),
			s.mockGateway.EXPECT().DeleteRule(gomock.Any(), int64(9001)).Return(nil),
			s.mockCoupons.EXPECT().Delete(gomock.Any(), snap.ID).Return(nil),
		)

		s.Require().NoError(s.cmd.Delete(context.Background(), snap.ID))
	})

	s.Run("platform delete failure never blocks the local delete", func() {
		snap := builder.NewCouponBuilder().BuildSnapshot()
		outage := &commerce.PlatformError{Kind: commerce.KindTransient, Op: "delete price rule", Status: 503}

		s.mockCoupons.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.mockGateway.EXPECT().DeleteRule(gomock.Any(), int64(9001)).Return(outage)
		s.mockCoupons.EXPECT().Delete(gomock.Any(), snap.ID).Return(nil)

		s.Require().NoError(s.cmd.Delete(context.Background(), snap.ID))
	})

	s.Run("coupon without an external rule skips the platform", func() {
		snap := builder.NewCouponBuilder().With(func(b *builder.CouponBuilder) {
			b.ExternalRuleID = nil
		}).BuildSnapshot()

		s.mockCoupons.EXPECT().FindByID(gomock.Any(), snap.ID).Return(snap, nil)
		s.mockCoupons.EXPECT().Delete(gomock.Any(), snap.ID).Return(nil)

		s.Require().NoError(s.cmd.Delete(context.Background(), snap.ID))
	})

	s.Run("missing coupon maps to coupon not found", func() {
		id := uuid.New()

		s.mockCoupons.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFoundErr())

		s.Require().ErrorIs(s.cmd.Delete(context.Background(), id), commands.ErrCouponNotFound)
	})
}
